// Package validate turns a tool name plus loosely-typed arguments into a
// normalized ToolRequest, or a structured validation error. It is pure: no
// I/O, no state, and repeating a call on the same input yields a structurally
// identical request.
package validate

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/lumatools/luma-mcp/relay/model"
	"github.com/lumatools/luma-mcp/relay/schema"
)

var structValidator = validator.New()

// Validate checks args against the tool's field specs, applies defaults and
// builds the typed request. Unrecognized extra fields are ignored; any
// malformed recognized field aborts validation.
func Validate(tool string, args map[string]any) (model.ToolRequest, *model.ToolError) {
	specs, ok := schema.For(tool)
	if !ok {
		return nil, model.NewValidationError(model.KindUnknownTool, "",
			fmt.Sprintf("unknown tool: %s", tool))
	}

	normalized, terr := normalize(specs, args, "")
	if terr != nil {
		return nil, terr
	}

	req, terr := build(tool, normalized)
	if terr != nil {
		return nil, terr
	}

	// Final structural guard over the constructed request. Everything here
	// should already have been caught against the field specs.
	if err := structValidator.Struct(req); err != nil {
		field := ""
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			field = strings.ToLower(verrs[0].Field())
		}
		return nil, model.NewValidationError(model.KindInvalidValue, field,
			fmt.Sprintf("invalid request: %s", err.Error()))
	}
	return req, nil
}

// normalize checks presence, type and enum membership for every declared
// field and applies defaults for absent optional fields. prefix qualifies
// field names in error messages for nested objects.
func normalize(specs []schema.FieldSpec, args map[string]any, prefix string) (map[string]any, *model.ToolError) {
	out := make(map[string]any, len(specs))
	for _, spec := range specs {
		name := spec.Name
		if prefix != "" {
			name = prefix + "." + spec.Name
		}
		value, present := args[spec.Name]
		if !present || value == nil {
			if spec.Required {
				return nil, model.NewValidationError(model.KindMissingField, name,
					fmt.Sprintf("%s parameter is required", name))
			}
			if spec.Default != nil {
				out[spec.Name] = spec.Default
			}
			continue
		}

		switch spec.Type {
		case schema.TypeString:
			s, ok := value.(string)
			if !ok {
				return nil, invalidType(name, "a string")
			}
			if spec.Required && s == "" {
				return nil, model.NewValidationError(model.KindMissingField, name,
					fmt.Sprintf("%s parameter is required", name))
			}
			if len(spec.Enum) > 0 && !contains(spec.Enum, s) {
				return nil, model.NewValidationError(model.KindInvalidValue, name,
					fmt.Sprintf("invalid %s: %q, must be one of %s", name, s, strings.Join(spec.Enum, ", ")))
			}
			out[spec.Name] = s
		case schema.TypeInt:
			n, ok := intValue(value)
			if !ok {
				return nil, invalidType(name, "an integer")
			}
			if spec.Min != nil && n < *spec.Min {
				return nil, model.NewValidationError(model.KindInvalidValue, name,
					fmt.Sprintf("%s must be at least %d", name, *spec.Min))
			}
			out[spec.Name] = n
		case schema.TypeBool:
			b, ok := value.(bool)
			if !ok {
				return nil, invalidType(name, "a boolean")
			}
			out[spec.Name] = b
		case schema.TypeObject:
			m, ok := value.(map[string]any)
			if !ok {
				return nil, invalidType(name, "an object")
			}
			nested, terr := normalize(spec.Fields, m, name)
			if terr != nil {
				return nil, terr
			}
			out[spec.Name] = nested
		}
	}
	return out, nil
}

func invalidType(field, want string) *model.ToolError {
	return model.NewValidationError(model.KindInvalidValue, field,
		fmt.Sprintf("%s must be %s", field, want))
}

// intValue accepts native ints and integral JSON numbers. A fractional
// number is not silently truncated.
func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}

func contains(set []string, s string) bool {
	for _, item := range set {
		if item == s {
			return true
		}
	}
	return false
}

func stringArg(args map[string]any, name string) string {
	s, _ := args[name].(string)
	return s
}

func intArg(args map[string]any, name string) int {
	n, _ := args[name].(int)
	return n
}

// build constructs the typed request for a tool from normalized arguments.
func build(tool string, args map[string]any) (model.ToolRequest, *model.ToolError) {
	switch tool {
	case model.ToolPing:
		return model.PingRequest{}, nil
	case model.ToolCreateGeneration:
		req := model.CreateGenerationRequest{
			Prompt:      stringArg(args, "prompt"),
			Model:       stringArg(args, "model"),
			Resolution:  stringArg(args, "resolution"),
			Duration:    stringArg(args, "duration"),
			AspectRatio: stringArg(args, "aspect_ratio"),
			CallbackURL: stringArg(args, "callback_url"),
		}
		if loop, ok := args["loop"].(bool); ok {
			req.Loop = &loop
		}
		if raw, ok := args["keyframes"].(map[string]any); ok {
			keyframes, terr := buildKeyframes(raw)
			if terr != nil {
				return nil, terr
			}
			req.Keyframes = keyframes
		}
		return req, nil
	case model.ToolGetGeneration:
		return model.GetGenerationRequest{GenerationID: stringArg(args, "generation_id")}, nil
	case model.ToolListGenerations:
		return model.ListGenerationsRequest{
			Limit:  intArg(args, "limit"),
			Offset: intArg(args, "offset"),
		}, nil
	case model.ToolDeleteGeneration:
		return model.DeleteGenerationRequest{GenerationID: stringArg(args, "generation_id")}, nil
	case model.ToolUpscaleGeneration:
		return model.UpscaleGenerationRequest{
			GenerationID: stringArg(args, "generation_id"),
			Resolution:   stringArg(args, "resolution"),
		}, nil
	case model.ToolAddAudio:
		return model.AddAudioRequest{
			GenerationID:   stringArg(args, "generation_id"),
			Prompt:         stringArg(args, "prompt"),
			NegativePrompt: stringArg(args, "negative_prompt"),
			CallbackURL:    stringArg(args, "callback_url"),
		}, nil
	case model.ToolGenerateImage:
		return model.GenerateImageRequest{
			Prompt: stringArg(args, "prompt"),
			Model:  stringArg(args, "model"),
		}, nil
	case model.ToolGetCredits:
		return model.GetCreditsRequest{}, nil
	case model.ToolGetCameraMotions:
		return model.GetCameraMotionsRequest{}, nil
	}
	// Unreachable: schema.For already rejected unknown tools.
	return nil, model.NewValidationError(model.KindUnknownTool, "",
		fmt.Sprintf("unknown tool: %s", tool))
}

// buildKeyframes assembles the keyframe set. An empty set is rejected here
// rather than silently treated as absent.
func buildKeyframes(raw map[string]any) (*model.Keyframes, *model.ToolError) {
	keyframes := &model.Keyframes{}
	if frame, ok := raw["frame0"].(map[string]any); ok {
		f, terr := buildFrame(frame, "keyframes.frame0")
		if terr != nil {
			return nil, terr
		}
		keyframes.Frame0 = f
	}
	if frame, ok := raw["frame1"].(map[string]any); ok {
		f, terr := buildFrame(frame, "keyframes.frame1")
		if terr != nil {
			return nil, terr
		}
		keyframes.Frame1 = f
	}
	if keyframes.Empty() {
		return nil, model.NewValidationError(model.KindInvalidValue, "keyframes",
			"keyframes must contain frame0 or frame1")
	}
	return keyframes, nil
}

func buildFrame(raw map[string]any, name string) (*model.Frame, *model.ToolError) {
	frame := &model.Frame{Type: stringArg(raw, "type")}
	switch frame.Type {
	case model.KeyframeImage:
		frame.URL = stringArg(raw, "url")
		if frame.URL == "" {
			return nil, model.NewValidationError(model.KindMissingField, name+".url",
				"image keyframes require a url")
		}
	case model.KeyframeGeneration:
		frame.ID = stringArg(raw, "id")
		if frame.ID == "" {
			return nil, model.NewValidationError(model.KindMissingField, name+".id",
				"generation keyframes require an id")
		}
	default:
		// Unreachable: the type discriminator enum is checked during
		// normalization.
		return nil, model.NewValidationError(model.KindInvalidValue, name+".type",
			fmt.Sprintf("invalid keyframe type: %q", frame.Type))
	}
	return frame, nil
}
