package simulation

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON string

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return jsonschema.CompileString("settings.schema.json", schemaJSON)
})

// LoadSettings reads a JSON or YAML settings file (chosen by extension),
// validates it against the embedded schema and decodes it over DefaultSettings.
func LoadSettings(path string) (Settings, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(b)
	default:
		return ParseJSON(b)
	}
}

// ParseYAML converts a YAML document to JSON and hands it to ParseJSON.
func ParseYAML(b []byte) (Settings, error) {
	var doc any
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return Settings{}, fmt.Errorf("failed to decode settings yaml: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	jb, err := json.Marshal(doc)
	if err != nil {
		return Settings{}, fmt.Errorf("settings yaml has no json form: %w", err)
	}
	return ParseJSON(jb)
}

// ParseJSON validates b against the schema, then decodes it.
func ParseJSON(b []byte) (Settings, error) {
	sch, err := compileSchema()
	if err != nil {
		return Settings{}, fmt.Errorf("failed to compile schema: %w", err)
	}

	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return Settings{}, fmt.Errorf("failed to decode settings json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return Settings{}, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}

	s := DefaultSettings()
	if err := json.Unmarshal(b, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// YAML renders the settings the way `boids settings` prints them.
func (s Settings) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}
