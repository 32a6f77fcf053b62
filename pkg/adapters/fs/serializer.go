package fs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aretw0/notekeeper/pkg/core"
	"gopkg.in/yaml.v3"
)

// Indent is the indentation width used by every serializer.
const Indent = 4

// Serializer defines how to read and write a specific file format.
type Serializer interface {
	// Parse decodes the full note collection from r.
	Parse(r io.Reader) ([]core.Note, error)
	// Serialize encodes the full note collection.
	Serialize(notes []core.Note) ([]byte, error)
	// Format names the format (e.g. "json").
	Format() string
}

// DefaultSerializers returns the standard set of serializers keyed by extension.
func DefaultSerializers() map[string]Serializer {
	return map[string]Serializer{
		".json": NewJSONSerializer(),
		".yaml": NewYAMLSerializer(),
		".yml":  NewYAMLSerializer(),
	}
}

// SerializerFor picks a serializer by format name or, when format is empty,
// by the extension of path. Unknown extensions fall back to JSON.
func SerializerFor(path, format string) (Serializer, error) {
	switch strings.ToLower(format) {
	case "json":
		return NewJSONSerializer(), nil
	case "yaml", "yml":
		return NewYAMLSerializer(), nil
	case "", "auto":
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	if s, ok := DefaultSerializers()[strings.ToLower(filepath.Ext(path))]; ok {
		return s, nil
	}
	return NewJSONSerializer(), nil
}

// --- JSON Serializer ---

// JSONSerializer reads and writes a JSON array of notes.
type JSONSerializer struct{}

// NewJSONSerializer creates a new JSON serializer.
func NewJSONSerializer() *JSONSerializer {
	return &JSONSerializer{}
}

func (s *JSONSerializer) Format() string { return "json" }

func (s *JSONSerializer) Parse(r io.Reader) ([]core.Note, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var notes []core.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("%w: invalid json: %v", core.ErrCorruptData, err)
	}
	return notes, nil
}

func (s *JSONSerializer) Serialize(notes []core.Note) ([]byte, error) {
	if notes == nil {
		notes = []core.Note{}
	}
	return json.MarshalIndent(notes, "", strings.Repeat(" ", Indent))
}

// --- YAML Serializer ---

// YAMLSerializer reads and writes a YAML sequence of notes.
type YAMLSerializer struct{}

// NewYAMLSerializer creates a new YAML serializer.
func NewYAMLSerializer() *YAMLSerializer {
	return &YAMLSerializer{}
}

func (s *YAMLSerializer) Format() string { return "yaml" }

func (s *YAMLSerializer) Parse(r io.Reader) ([]core.Note, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var notes []core.Note
	if err := yaml.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("%w: invalid yaml: %v", core.ErrCorruptData, err)
	}
	return notes, nil
}

func (s *YAMLSerializer) Serialize(notes []core.Note) ([]byte, error) {
	if notes == nil {
		notes = []core.Note{}
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(Indent)
	if err := encoder.Encode(notes); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
