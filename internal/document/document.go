// Package document loads and saves inspector state documents: a base
// StyleState, per-breakpoint overrides and the active breakpoint, stored as
// YAML, TOML or JSON.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/agiangrant/inspector/state"
	"github.com/agiangrant/inspector/tw"
)

// Document is the on-disk shape of a Snapshot.
type Document struct {
	Breakpoint string                        `yaml:"breakpoint,omitempty" toml:"breakpoint,omitempty" json:"breakpoint,omitempty" validate:"omitempty,breakpoint"`
	Base       state.StyleState              `yaml:"base" toml:"base" json:"base"`
	Overrides  map[string]state.PartialState `yaml:"overrides,omitempty" toml:"overrides,omitempty" json:"overrides,omitempty" validate:"dive,keys,breakpoint,endkeys"`
}

// Format identifies a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatOf picks the encoding from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unsupported document extension %q (want .yaml, .yml, .toml or .json)", filepath.Ext(path))
}

// Load reads and validates the document at path.
func Load(path string) (state.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return state.Snapshot{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	format, err := FormatOf(path)
	if err != nil {
		return state.Snapshot{}, err
	}
	return Parse(path, data, format)
}

// Parse decodes data. Fields absent from the document keep their neutral
// defaults; unknown fields are rejected.
func Parse(path string, data []byte, format Format) (state.Snapshot, error) {
	doc := Document{Base: state.Default()}
	if err := decode(data, format, &doc); err != nil {
		return state.Snapshot{}, newParseError(path, data, err)
	}
	if err := doc.Validate(); err != nil {
		return state.Snapshot{}, newValidationError(path, err)
	}
	return doc.Snapshot()
}

func decode(data []byte, format Format, doc *Document) error {
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(doc); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(doc)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(doc)
	}
	return fmt.Errorf("unknown format %q", format)
}

// Validate checks breakpoint names and the enumerated style fields.
func (d Document) Validate() error {
	return state.Validator().Struct(d)
}

// Snapshot converts the document to version 0 of a Snapshot.
func (d Document) Snapshot() (state.Snapshot, error) {
	snap := state.NewSnapshot(d.Base)
	for name, p := range d.Overrides {
		bp, err := tw.ParseBreakpoint(name)
		if err != nil {
			return state.Snapshot{}, err
		}
		if snap, err = snap.WithOverride(bp, p); err != nil {
			return state.Snapshot{}, err
		}
	}
	bp, err := tw.ParseBreakpoint(d.Breakpoint)
	if err != nil {
		return state.Snapshot{}, err
	}
	if snap, err = snap.WithBreakpoint(bp); err != nil {
		return state.Snapshot{}, err
	}
	snap.Version = 0
	return snap, nil
}

// FromSnapshot builds the document for s. Empty overrides are left out.
func FromSnapshot(s state.Snapshot) Document {
	doc := Document{Base: s.Base.Clone()}
	if s.Current != tw.BreakpointBase {
		doc.Breakpoint = s.Current.String()
	}
	for _, bp := range tw.Breakpoints()[1:] {
		o := s.Override(bp)
		if o.IsEmpty() {
			continue
		}
		if doc.Overrides == nil {
			doc.Overrides = make(map[string]state.PartialState)
		}
		doc.Overrides[bp.String()] = o.Clone()
	}
	return doc
}

// Marshal encodes s in format.
func Marshal(s state.Snapshot, format Format) ([]byte, error) {
	doc := FromSnapshot(s)
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatTOML:
		return toml.Marshal(doc)
	case FormatJSON:
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

// Save writes s to path, choosing the encoding from the extension. A state
// that would not load back is rejected with a ValidationError. The file is
// replaced atomically so a concurrent watcher never reads a partial write.
func Save(path string, s state.Snapshot) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	if err := FromSnapshot(s).Validate(); err != nil {
		return newValidationError(path, err)
	}
	data, err := Marshal(s, format)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ValidationErrors exposes the validator's field errors for callers that want
// every failure rather than the first.
func ValidationErrors(err error) validator.ValidationErrors {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}
	return nil
}
