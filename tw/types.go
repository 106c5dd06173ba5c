package tw

import (
	"sync"
	"sync/atomic"
)

// ThemeConfig holds the consumer's theme configuration.
// This is registered via SetConfig() at app startup.
type ThemeConfig struct {
	// Scales overrides individual token families; families left out keep the defaults.
	Scales      map[string][]string
	Breakpoints BreakpointConfig
}

var (
	registeredMu     sync.RWMutex
	registeredConfig *ThemeConfig
	defaultScales    = DefaultScales()

	configGeneration atomic.Uint64
)

// ConfigGeneration changes every time SetConfig or ResetConfig runs. Caches of
// scale-dependent output compare it to detect a stale entry.
func ConfigGeneration() uint64 { return configGeneration.Load() }

// SetConfig registers the consumer's theme configuration.
// This should be called at app startup before any class generation occurs.
func SetConfig(config ThemeConfig) {
	merged := make(map[string][]string, len(defaultScales))
	for family, steps := range defaultScales {
		merged[family] = steps
	}
	for family, steps := range config.Scales {
		merged[family] = append([]string(nil), steps...)
	}
	config.Scales = merged

	registeredMu.Lock()
	registeredConfig = &config
	configGeneration.Add(1)
	registeredMu.Unlock()
}

// ResetConfig drops the registered configuration and restores the defaults.
func ResetConfig() {
	registeredMu.Lock()
	registeredConfig = nil
	configGeneration.Add(1)
	registeredMu.Unlock()
}

// Scales returns the registered token scales or falls back to the defaults.
func Scales() map[string][]string {
	registeredMu.RLock()
	defer registeredMu.RUnlock()
	if registeredConfig != nil && registeredConfig.Scales != nil {
		return registeredConfig.Scales
	}
	return defaultScales
}

// GetBreakpoints returns the registered breakpoints or falls back to the defaults.
func GetBreakpoints() BreakpointConfig {
	registeredMu.RLock()
	defer registeredMu.RUnlock()
	if registeredConfig != nil && registeredConfig.Breakpoints != (BreakpointConfig{}) {
		return registeredConfig.Breakpoints
	}
	return DefaultBreakpoints()
}
