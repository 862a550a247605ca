package controller

import (
	"testing"

	"github.com/lumatools/luma-mcp/relay/channel/luma"
	"github.com/lumatools/luma-mcp/relay/model"
	"github.com/stretchr/testify/assert"
)

func TestRenderPing(t *testing.T) {
	assert.Equal(t, "Luma API is available and responding",
		RenderText(model.ToolPing, map[string]any{}))

	withBody := RenderText(model.ToolPing, map[string]any{"message": "pong"})
	assert.Contains(t, withBody, "Luma API is available and responding:")
	assert.Contains(t, withBody, "pong")
}

func TestRenderCreatedHeaders(t *testing.T) {
	tests := []struct {
		name       string
		generation *luma.Generation
		want       string
	}{
		{
			name:       "plain text-to-video",
			generation: &luma.Generation{ID: "gen_1", Request: &luma.GenerationRequest{Prompt: "p"}},
			want:       "Created text-to-video generation with ID: gen_1",
		},
		{
			name: "start image",
			generation: &luma.Generation{ID: "gen_2", Request: &luma.GenerationRequest{
				Prompt: "p",
				Keyframes: &model.Keyframes{
					Frame0: &model.Frame{Type: model.KeyframeImage, URL: "https://example.com/a.jpg"},
				},
			}},
			want: "Created advanced generation (starting from an image) with ID: gen_2",
		},
		{
			name: "extend",
			generation: &luma.Generation{ID: "gen_3", Request: &luma.GenerationRequest{
				Prompt: "p",
				Keyframes: &model.Keyframes{
					Frame0: &model.Frame{Type: model.KeyframeGeneration, ID: "gen_old"},
				},
			}},
			want: "Created advanced generation (extending an existing video) with ID: gen_3",
		},
		{
			name: "reverse extend",
			generation: &luma.Generation{ID: "gen_4", Request: &luma.GenerationRequest{
				Prompt: "p",
				Keyframes: &model.Keyframes{
					Frame1: &model.Frame{Type: model.KeyframeGeneration, ID: "gen_old"},
				},
			}},
			want: "Created advanced generation (reverse extending to an existing video) with ID: gen_4",
		},
		{
			name: "interpolate",
			generation: &luma.Generation{ID: "gen_5", Request: &luma.GenerationRequest{
				Prompt: "p",
				Keyframes: &model.Keyframes{
					Frame0: &model.Frame{Type: model.KeyframeGeneration, ID: "gen_a"},
					Frame1: &model.Frame{Type: model.KeyframeGeneration, ID: "gen_b"},
				},
			}},
			want: "Created advanced generation (interpolating between videos) with ID: gen_5",
		},
		{
			name: "image start and end",
			generation: &luma.Generation{ID: "gen_6", Request: &luma.GenerationRequest{
				Prompt: "p",
				Keyframes: &model.Keyframes{
					Frame0: &model.Frame{Type: model.KeyframeImage, URL: "https://example.com/a.jpg"},
					Frame1: &model.Frame{Type: model.KeyframeImage, URL: "https://example.com/b.jpg"},
				},
			}},
			want: "Created advanced generation (starting from an image, ending with an image) with ID: gen_6",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderText(model.ToolCreateGeneration, tt.generation)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestRenderGeneration(t *testing.T) {
	reason := "content policy"
	out := RenderText(model.ToolGetGeneration, &luma.Generation{
		ID:            "gen_1",
		State:         model.StateFailed,
		FailureReason: &reason,
		CreatedAt:     "2026-01-02T03:04:05Z",
		Model:         "ray-2",
		Request:       &luma.GenerationRequest{Prompt: "a whale"},
	})
	assert.Contains(t, out, "Generation ID: gen_1")
	assert.Contains(t, out, "State: failed (Reason: content policy)")
	assert.Contains(t, out, "Prompt: a whale")
	assert.Contains(t, out, "No assets available yet")

	out = RenderText(model.ToolGetGeneration, &luma.Generation{
		ID:     "gen_2",
		State:  model.StateCompleted,
		Assets: &luma.Assets{Video: "https://example.com/v.mp4"},
	})
	assert.Contains(t, out, "Video URL: https://example.com/v.mp4")
	assert.NotContains(t, out, "No assets available yet")
}

func TestRenderList(t *testing.T) {
	assert.Equal(t, "No generations found",
		RenderText(model.ToolListGenerations, &luma.GenerationList{}))

	out := RenderText(model.ToolListGenerations, &luma.GenerationList{
		Generations: []luma.Generation{
			{ID: "gen_a", State: model.StateCompleted, GenerationType: "image",
				Assets: &luma.Assets{Image: "https://example.com/i.png"}},
			{ID: "gen_b", State: model.StateDreaming},
		},
		HasMore: true,
		Count:   7,
	})
	assert.Contains(t, out, "Showing 2 of 7 generations (more available)")
	assert.Contains(t, out, "ID: gen_a")
	assert.Contains(t, out, "Image URL: https://example.com/i.png")
	assert.Contains(t, out, "Video URL: Not available yet")
}

func TestRenderDelete(t *testing.T) {
	out := RenderText(model.ToolDeleteGeneration, &luma.DeleteAck{ID: "gen_1", Deleted: true})
	assert.Equal(t, "Generation gen_1 deleted successfully", out)
}

func TestRenderCredits(t *testing.T) {
	balance := 1250.5
	out := RenderText(model.ToolGetCredits, &luma.Credits{CreditBalance: &balance})
	assert.Contains(t, out, "Available Credits: 1250.5")

	available, used, total := 100.0, 40.0, 140.0
	out = RenderText(model.ToolGetCredits, &luma.Credits{
		CreditsAvailable: &available,
		CreditsUsed:      &used,
		CreditsTotal:     &total,
	})
	assert.Contains(t, out, "Available Credits: 100")
	assert.Contains(t, out, "Used Credits: 40")
	assert.Contains(t, out, "Total Credits: 140")
}

func TestRenderCameraMotions(t *testing.T) {
	assert.Equal(t, "No camera motions available",
		RenderText(model.ToolGetCameraMotions, []string{}))

	out := RenderText(model.ToolGetCameraMotions, []string{"static", "zoom_in"})
	assert.Contains(t, out, "Available camera motions:")
	assert.Contains(t, out, "- static")
	assert.Contains(t, out, "- zoom_in")
}

func TestRenderUnknownPayloadFallsBackToJSON(t *testing.T) {
	out := RenderText(model.ToolGetGeneration, map[string]any{"id": "gen_1"})
	assert.JSONEq(t, `{"id":"gen_1"}`, out)
}
