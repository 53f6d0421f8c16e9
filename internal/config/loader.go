// Package config loads and validates the organization input document. The
// document may be YAML or JSON; both are normalized to JSON and checked
// against an embedded JSON Schema before any typed decoding happens. Code
// downstream of LoadInput never sees a structurally invalid input.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/privacykit-dev/privacykit/internal/domain"
)

//go:embed schema/input.schema.json
var inputSchemaJSON []byte

var inputSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	compiler.AssertFormat = true
	if err := compiler.AddResource("input.schema.json", bytes.NewReader(inputSchemaJSON)); err != nil {
		panic(fmt.Sprintf("config: add input schema: %v", err))
	}
	schema, err := compiler.Compile("input.schema.json")
	if err != nil {
		panic(fmt.Sprintf("config: compile input schema: %v", err))
	}
	return schema
}

// LoadInput reads, validates, and decodes an input document from disk.
// On schema violations the returned error is a ValidationErrors value.
func LoadInput(path string) (domain.ValidatedInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.ValidatedInput{}, fmt.Errorf("failed to read input document: %w", err)
	}
	return ValidateInput(data)
}

// ValidateInput validates a raw YAML or JSON document against the input
// schema and decodes it into the typed model.
func ValidateInput(data []byte) (domain.ValidatedInput, error) {
	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return domain.ValidatedInput{}, fmt.Errorf("failed to parse input document: %w", err)
	}

	var raw any
	if err := json.Unmarshal(jsonData, &raw); err != nil {
		return domain.ValidatedInput{}, fmt.Errorf("failed to parse input document: %w", err)
	}

	if err := inputSchema.Validate(raw); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return domain.ValidatedInput{}, collectFieldErrors(verr)
		}
		return domain.ValidatedInput{}, fmt.Errorf("input validation failed: %w", err)
	}

	var input domain.ValidatedInput
	if err := json.Unmarshal(jsonData, &input); err != nil {
		return domain.ValidatedInput{}, fmt.Errorf("failed to decode input document: %w", err)
	}
	return input, nil
}

// collectFieldErrors flattens the validation error tree into leaf-level
// path/message pairs. Instance locations are JSON pointers; they are
// rewritten as dot paths for readability.
func collectFieldErrors(err *jsonschema.ValidationError) ValidationErrors {
	var out ValidationErrors

	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			if e.Message != "" {
				out = append(out, FieldError{
					Path:    pointerToDotPath(e.InstanceLocation),
					Message: e.Message,
				})
			}
			return
		}
		for _, cause := range e.Causes {
			walk(cause)
		}
	}
	walk(err)

	if len(out) == 0 {
		out = append(out, FieldError{Path: "(root)", Message: "document does not match the input schema"})
	}
	return out
}

func pointerToDotPath(pointer string) string {
	if pointer == "" || pointer == "/" {
		return "(root)"
	}
	segments := strings.Split(strings.TrimPrefix(pointer, "/"), "/")
	for i, seg := range segments {
		seg = strings.ReplaceAll(seg, "~1", "/")
		segments[i] = strings.ReplaceAll(seg, "~0", "~")
	}
	return strings.Join(segments, ".")
}
