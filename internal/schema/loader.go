package schema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"termsheet/internal/domain"
)

//go:embed master_schemas.json
var defaultSchemas []byte

//go:embed schema_file.schema.json
var schemaFileDefinition []byte

// Default returns the registry built from the embedded schema table.
func Default() (*Registry, error) {
	return Parse(defaultSchemas, "json")
}

// Load reads the schema table at path, or the embedded default when path is
// empty. A configured path that is missing or invalid is an error.
func Load(path string) (*Registry, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema file: %w", err)
	}

	format := "json"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = "yaml"
	}

	reg, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("loading schema file %s: %w", path, err)
	}
	return reg, nil
}

// Parse decodes a schema table in the given format ("json" or "yaml"),
// checks it against the schema-file definition and builds a Registry.
// Entries for unrecognized document types are skipped.
func Parse(data []byte, format string) (*Registry, error) {
	doc, err := decode(data, format)
	if err != nil {
		return nil, err
	}

	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	// Round-trip through JSON so YAML and JSON share one typed decode.
	normalized, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("normalizing schema table: %w", err)
	}
	var raw map[string]domain.Schema
	if err := json.Unmarshal(normalized, &raw); err != nil {
		return nil, fmt.Errorf("decoding schema table: %w", err)
	}

	table := make(map[domain.DocumentType]domain.Schema, len(raw))
	for tag, s := range raw {
		t, ok := domain.ParseDocumentType(tag)
		if !ok {
			log.Printf("schema.Parse: ignoring unknown document type %q", tag)
			continue
		}
		table[t] = s
	}
	return NewRegistry(table), nil
}

func decode(data []byte, format string) (any, error) {
	var doc any
	switch format {
	case "yaml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing YAML schema table: %w", err)
		}
		// Re-encode so the validator sees JSON value types (float64 numbers).
		b, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("converting YAML schema table: %w", err)
		}
		doc = nil
		if err := json.Unmarshal(b, &doc); err != nil {
			return nil, fmt.Errorf("converting YAML schema table: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing JSON schema table: %w", err)
		}
	}
	return doc, nil
}

func validateDocument(doc any) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema_file.json", bytes.NewReader(schemaFileDefinition)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	def, err := compiler.Compile("schema_file.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	if err := def.Validate(doc); err != nil {
		return fmt.Errorf("schema table is invalid: %w", err)
	}
	return nil
}
