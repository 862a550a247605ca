package luma

import "github.com/lumatools/luma-mcp/relay/model"

// GenerationRequest is the wire body for POST generations.
type GenerationRequest struct {
	Prompt      string           `json:"prompt" binding:"required"`
	Model       string           `json:"model,omitempty"`
	Resolution  string           `json:"resolution,omitempty"`
	Duration    string           `json:"duration,omitempty"`
	AspectRatio string           `json:"aspect_ratio,omitempty"`
	Loop        *bool            `json:"loop,omitempty"`
	Keyframes   *model.Keyframes `json:"keyframes,omitempty"`
	CallbackURL string           `json:"callback_url,omitempty"`
}

type UpscaleRequest struct {
	Resolution string `json:"resolution" binding:"required"`
}

type AudioRequest struct {
	Prompt         string `json:"prompt" binding:"required"`
	NegativePrompt string `json:"negative_prompt,omitempty"`
	CallbackURL    string `json:"callback_url,omitempty"`
}

type ImageRequest struct {
	Prompt string `json:"prompt" binding:"required"`
	Model  string `json:"model,omitempty"`
}

type Assets struct {
	Video         string `json:"video,omitempty"`
	Image         string `json:"image,omitempty"`
	ProgressVideo string `json:"progress_video,omitempty"`
	Audio         string `json:"audio,omitempty"`
}

// Generation is the remote-owned view of a generation task. It is never
// persisted locally; every read is a fresh fetch.
type Generation struct {
	ID             string             `json:"id"`
	State          string             `json:"state"`
	FailureReason  *string            `json:"failure_reason,omitempty"`
	CreatedAt      string             `json:"created_at,omitempty"`
	GenerationType string             `json:"generation_type,omitempty"`
	Model          string             `json:"model,omitempty"`
	Resolution     string             `json:"resolution,omitempty"`
	Upscaled       bool               `json:"upscaled,omitempty"`
	Assets         *Assets            `json:"assets,omitempty"`
	Request        *GenerationRequest `json:"request,omitempty"`
}

// CurrentResolution prefers the top-level resolution and falls back to the
// resolution recorded on the original request.
func (g *Generation) CurrentResolution() string {
	if g.Resolution != "" {
		return g.Resolution
	}
	if g.Request != nil {
		return g.Request.Resolution
	}
	return ""
}

type GenerationList struct {
	Generations []Generation `json:"generations"`
	HasMore     bool         `json:"has_more,omitempty"`
	Count       int          `json:"count,omitempty"`
}

// DeleteAck acknowledges a successful deletion; the endpoint itself returns
// an empty body.
type DeleteAck struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// Credits covers both balance shapes the API has been observed to return.
type Credits struct {
	CreditBalance    *float64 `json:"credit_balance,omitempty"`
	CreditsAvailable *float64 `json:"credits_available,omitempty"`
	CreditsUsed      *float64 `json:"credits_used,omitempty"`
	CreditsTotal     *float64 `json:"credits_total,omitempty"`
}
