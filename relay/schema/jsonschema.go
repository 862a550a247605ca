package schema

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
)

// JSONSchema renders a tool's field specs into the JSON Schema advertised to
// MCP clients. Unknown tools render as nil.
func JSONSchema(tool string) *jsonschema.Schema {
	specs, ok := For(tool)
	if !ok {
		return nil
	}
	return objectSchema(specs)
}

func objectSchema(specs []FieldSpec) *jsonschema.Schema {
	s := &jsonschema.Schema{
		Type:       "object",
		Properties: map[string]*jsonschema.Schema{},
	}
	for _, spec := range specs {
		s.Properties[spec.Name] = fieldSchema(spec)
		if spec.Required {
			s.Required = append(s.Required, spec.Name)
		}
	}
	return s
}

func fieldSchema(spec FieldSpec) *jsonschema.Schema {
	var s *jsonschema.Schema
	if spec.Type == TypeObject {
		s = objectSchema(spec.Fields)
	} else {
		s = &jsonschema.Schema{Type: string(spec.Type)}
	}
	s.Description = spec.Description
	for _, literal := range spec.Enum {
		s.Enum = append(s.Enum, literal)
	}
	if spec.Min != nil {
		min := float64(*spec.Min)
		s.Minimum = &min
	}
	if spec.Default != nil {
		if raw, err := json.Marshal(spec.Default); err == nil {
			s.Default = raw
		}
	}
	return s
}
