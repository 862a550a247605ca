// Package schema declares the accepted argument shape for every tool. It is
// the single source of truth consumed by the validator and rendered into the
// JSON Schema advertised over MCP.
package schema

import "github.com/lumatools/luma-mcp/relay/model"

type FieldType string

const (
	TypeString FieldType = "string"
	TypeInt    FieldType = "integer"
	TypeBool   FieldType = "boolean"
	TypeObject FieldType = "object"
)

// FieldSpec describes one accepted argument. Enum constrains string fields to
// literal values; Min bounds integer fields; Fields describes nested objects.
type FieldSpec struct {
	Name        string
	Type        FieldType
	Required    bool
	Enum        []string
	Default     any
	Min         *int
	Description string
	Fields      []FieldSpec
}

func intPtr(v int) *int { return &v }

// frameSpec is shared by frame0 and frame1. Which of url/id is required
// depends on the type discriminator and is enforced by the validator.
var frameSpec = []FieldSpec{
	{Name: "type", Type: TypeString, Required: true, Enum: []string{model.KeyframeImage, model.KeyframeGeneration}},
	{Name: "url", Type: TypeString, Description: "Image URL, required when type is \"image\""},
	{Name: "id", Type: TypeString, Description: "Generation ID, required when type is \"generation\""},
}

var toolSpecs = map[string][]FieldSpec{
	model.ToolPing: {},
	model.ToolCreateGeneration: {
		{Name: "prompt", Type: TypeString, Required: true, Description: "Text prompt for the generation"},
		{Name: "model", Type: TypeString, Default: model.DefaultVideoModel, Description: "Model to use"},
		{Name: "resolution", Type: TypeString, Enum: model.Resolutions},
		{Name: "duration", Type: TypeString, Enum: model.Durations, Description: "Only \"5s\" and \"9s\" are supported"},
		{Name: "aspect_ratio", Type: TypeString, Description: "Aspect ratio for the video, e.g. \"16:9\""},
		{Name: "loop", Type: TypeBool, Description: "Whether the video should loop"},
		{Name: "keyframes", Type: TypeObject, Description: "frame0/frame1 anchors, each an image URL or a generation reference",
			Fields: []FieldSpec{
				{Name: "frame0", Type: TypeObject, Fields: frameSpec},
				{Name: "frame1", Type: TypeObject, Fields: frameSpec},
			}},
		{Name: "callback_url", Type: TypeString, Description: "URL notified when the generation completes"},
	},
	model.ToolGetGeneration: {
		{Name: "generation_id", Type: TypeString, Required: true},
	},
	model.ToolListGenerations: {
		{Name: "limit", Type: TypeInt, Default: 10, Min: intPtr(1)},
		{Name: "offset", Type: TypeInt, Default: 0, Min: intPtr(0)},
	},
	model.ToolDeleteGeneration: {
		{Name: "generation_id", Type: TypeString, Required: true},
	},
	model.ToolUpscaleGeneration: {
		{Name: "generation_id", Type: TypeString, Required: true},
		{Name: "resolution", Type: TypeString, Required: true, Enum: model.Resolutions,
			Description: "Target resolution, must be higher than the generation's current resolution"},
	},
	model.ToolAddAudio: {
		{Name: "generation_id", Type: TypeString, Required: true},
		{Name: "prompt", Type: TypeString, Required: true, Description: "Prompt for the audio generation"},
		{Name: "negative_prompt", Type: TypeString},
		{Name: "callback_url", Type: TypeString},
	},
	model.ToolGenerateImage: {
		{Name: "prompt", Type: TypeString, Required: true},
		{Name: "model", Type: TypeString, Default: model.DefaultImageModel, Enum: model.ImageModels},
	},
	model.ToolGetCredits:       {},
	model.ToolGetCameraMotions: {},
}

var toolDescriptions = map[string]string{
	model.ToolPing:              "Check if the Luma API is running",
	model.ToolCreateGeneration:  "Creates a new video generation from text, image, or existing video",
	model.ToolGetGeneration:     "Gets the status of a generation",
	model.ToolListGenerations:   "Lists all generations",
	model.ToolDeleteGeneration:  "Deletes a generation",
	model.ToolUpscaleGeneration: "Upscales a video generation to higher resolution",
	model.ToolAddAudio:          "Adds audio to a video generation",
	model.ToolGenerateImage:     "Generates an image from a text prompt",
	model.ToolGetCredits:        "Gets credit information for the current user",
	model.ToolGetCameraMotions:  "Gets all supported camera motions",
}

// For returns the field specs for a tool, or false for an unknown tool name.
func For(tool string) ([]FieldSpec, bool) {
	specs, ok := toolSpecs[tool]
	return specs, ok
}

func Description(tool string) string {
	return toolDescriptions[tool]
}
