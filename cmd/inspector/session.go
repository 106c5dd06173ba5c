package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agiangrant/inspector"
	"github.com/agiangrant/inspector/export"
	"github.com/agiangrant/inspector/internal/config"
	"github.com/agiangrant/inspector/internal/document"
	"github.com/agiangrant/inspector/internal/logger"
	"github.com/agiangrant/inspector/state"
)

// session bundles what one command invocation works on: the resolved
// configuration, the loaded document and an inspector over it.
type session struct {
	cfg  config.Config
	log  *logger.Logger
	path string
	insp *inspector.Inspector
}

func openSession(cmd *cobra.Command, flags *rootFlags) (*session, error) {
	cfg, err := config.Load(flags.config)
	if err != nil {
		return nil, err
	}
	cfg.Apply()

	level := cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: cfg.Log.Human, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	path := flags.file
	if path == "" {
		path = cfg.Document.Path
	}
	snap, err := document.Load(path)
	if err != nil {
		return nil, err
	}
	log.Debug("document loaded", "path", path, "breakpoint", snap.Current.String())

	insp := inspector.New(state.NewStore(snap),
		inspector.WithLogger(log),
		inspector.WithRenderOptions(cfg.RenderOptions()),
		inspector.WithExportOptions(export.Options{
			Selector:              cfg.Export.Selector,
			PerspectiveMultiplier: cfg.Styles.PerspectiveMultiplier,
		}),
		inspector.WithBreakpoints(cfg.Breakpoints),
	)
	return &session{cfg: cfg, log: log, path: path, insp: insp}, nil
}

// save writes the current snapshot back to the document.
func (s *session) save() error {
	if err := document.Save(s.path, s.insp.Snapshot()); err != nil {
		return err
	}
	s.log.Debug("document saved", "path", s.path, "version", s.insp.Snapshot().Version)
	return nil
}

// reload re-reads the document and installs it as the next version.
func (s *session) reload() (state.Snapshot, error) {
	snap, err := document.Load(s.path)
	if err != nil {
		return state.Snapshot{}, err
	}
	return s.insp.Store().Replace(snap), nil
}
