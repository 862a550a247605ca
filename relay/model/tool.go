package model

// ToolRequest is the normalized form of an inbound tool call. Each variant
// carries only the fields relevant to its operation, with defaults already
// applied by the validator. Requests are immutable once constructed and live
// for a single dispatch.
type ToolRequest interface {
	ToolName() string
}

const (
	KeyframeImage      = "image"
	KeyframeGeneration = "generation"
)

// Frame anchors the start (frame0) or end (frame1) of a video. The type
// discriminator selects which of URL/ID is meaningful: "image" references a
// static image URL, "generation" references another generation's output.
type Frame struct {
	Type string `json:"type" validate:"required,oneof=image generation"`
	URL  string `json:"url,omitempty"`
	ID   string `json:"id,omitempty"`
}

// Keyframes holds up to two frames. All four type combinations are legal and
// map to distinct generation semantics; an entirely empty set is not.
type Keyframes struct {
	Frame0 *Frame `json:"frame0,omitempty"`
	Frame1 *Frame `json:"frame1,omitempty"`
}

func (k *Keyframes) Empty() bool {
	return k == nil || (k.Frame0 == nil && k.Frame1 == nil)
}

type PingRequest struct{}

func (PingRequest) ToolName() string { return ToolPing }

type CreateGenerationRequest struct {
	Prompt      string     `json:"prompt" validate:"required"`
	Model       string     `json:"model" validate:"required"`
	Resolution  string     `json:"resolution,omitempty" validate:"omitempty,oneof=540p 720p 1080p 4k"`
	Duration    string     `json:"duration,omitempty" validate:"omitempty,oneof=5s 9s"`
	AspectRatio string     `json:"aspect_ratio,omitempty"`
	Loop        *bool      `json:"loop,omitempty"`
	Keyframes   *Keyframes `json:"keyframes,omitempty"`
	CallbackURL string     `json:"callback_url,omitempty"`
}

func (CreateGenerationRequest) ToolName() string { return ToolCreateGeneration }

type GetGenerationRequest struct {
	GenerationID string `json:"generation_id" validate:"required"`
}

func (GetGenerationRequest) ToolName() string { return ToolGetGeneration }

type ListGenerationsRequest struct {
	Limit  int `json:"limit" validate:"gte=1"`
	Offset int `json:"offset" validate:"gte=0"`
}

func (ListGenerationsRequest) ToolName() string { return ToolListGenerations }

type DeleteGenerationRequest struct {
	GenerationID string `json:"generation_id" validate:"required"`
}

func (DeleteGenerationRequest) ToolName() string { return ToolDeleteGeneration }

type UpscaleGenerationRequest struct {
	GenerationID string `json:"generation_id" validate:"required"`
	Resolution   string `json:"resolution" validate:"required,oneof=540p 720p 1080p 4k"`
}

func (UpscaleGenerationRequest) ToolName() string { return ToolUpscaleGeneration }

type AddAudioRequest struct {
	GenerationID   string `json:"generation_id" validate:"required"`
	Prompt         string `json:"prompt" validate:"required"`
	NegativePrompt string `json:"negative_prompt,omitempty"`
	CallbackURL    string `json:"callback_url,omitempty"`
}

func (AddAudioRequest) ToolName() string { return ToolAddAudio }

type GenerateImageRequest struct {
	Prompt string `json:"prompt" validate:"required"`
	Model  string `json:"model" validate:"required,oneof=photon-1 photon-flash-1"`
}

func (GenerateImageRequest) ToolName() string { return ToolGenerateImage }

type GetCreditsRequest struct{}

func (GetCreditsRequest) ToolName() string { return ToolGetCredits }

type GetCameraMotionsRequest struct{}

func (GetCameraMotionsRequest) ToolName() string { return ToolGetCameraMotions }
