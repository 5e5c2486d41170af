package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Loader reads the content tables from a YAML file, or from the embedded
// defaults when no file is configured.
type Loader struct {
	filePath string
}

// NewLoader creates a loader. An empty filePath selects the embedded defaults.
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Source describes where Load reads from, for logging.
func (l *Loader) Source() string {
	if l.filePath == "" {
		return "embedded"
	}
	return l.filePath
}

// Load reads, parses and validates the content tables.
func (l *Loader) Load() (*Tables, error) {
	data := defaultYAML
	if l.filePath != "" {
		raw, err := os.ReadFile(l.filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read content file: %w", err)
		}
		data = raw
	}

	tables, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if err := tables.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content %s: %w", l.Source(), err)
	}
	return tables, nil
}

// Parse decodes a YAML content document. Unknown keys are rejected so typos in
// optional fields do not silently drop a link.
func Parse(data []byte) (*Tables, error) {
	var tables Tables
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&tables); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse content yaml: %w", err)
	}
	return &tables, nil
}

// Default returns the embedded content tables. It panics if the embedded
// document is invalid, which can only happen at build time.
func Default() *Tables {
	tables, err := NewLoader("").Load()
	if err != nil {
		panic(err)
	}
	return tables
}
