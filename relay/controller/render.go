package controller

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/lumatools/luma-mcp/relay/channel/luma"
	"github.com/lumatools/luma-mcp/relay/model"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RenderText formats a tool's success payload as the human-readable text
// returned over MCP. Unknown payload shapes fall back to JSON.
func RenderText(tool string, payload any) string {
	switch tool {
	case model.ToolPing:
		return renderPing(payload)
	case model.ToolCreateGeneration:
		if g, ok := payload.(*luma.Generation); ok {
			return renderCreated(g)
		}
	case model.ToolGetGeneration:
		if g, ok := payload.(*luma.Generation); ok {
			return renderGeneration(g)
		}
	case model.ToolListGenerations:
		if list, ok := payload.(*luma.GenerationList); ok {
			return renderList(list)
		}
	case model.ToolDeleteGeneration:
		if ack, ok := payload.(*luma.DeleteAck); ok {
			return fmt.Sprintf("Generation %s deleted successfully", ack.ID)
		}
	case model.ToolUpscaleGeneration:
		if g, ok := payload.(*luma.Generation); ok {
			return renderUpscale(g)
		}
	case model.ToolAddAudio:
		if g, ok := payload.(*luma.Generation); ok {
			return renderAudio(g)
		}
	case model.ToolGenerateImage:
		if g, ok := payload.(*luma.Generation); ok {
			return renderImage(g)
		}
	case model.ToolGetCredits:
		if credits, ok := payload.(*luma.Credits); ok {
			return renderCredits(credits)
		}
	case model.ToolGetCameraMotions:
		if motions, ok := payload.([]string); ok {
			return renderCameraMotions(motions)
		}
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf("%v", payload)
	}
	return string(data)
}

func renderPing(payload any) string {
	details, ok := payload.(map[string]any)
	if !ok || len(details) == 0 {
		return "Luma API is available and responding"
	}
	data, err := json.Marshal(details)
	if err != nil {
		return "Luma API is available and responding"
	}
	return fmt.Sprintf("Luma API is available and responding: %s", string(data))
}

// describeKeyframes names the generation semantics implied by the frame
// types: start-image, end-image, extend, reverse-extend or interpolate.
func describeKeyframes(k *model.Keyframes) string {
	var parts []string
	if k.Frame0 != nil {
		switch k.Frame0.Type {
		case model.KeyframeImage:
			parts = append(parts, "starting from an image")
		case model.KeyframeGeneration:
			parts = append(parts, "extending an existing video")
		}
	}
	if k.Frame1 != nil {
		switch k.Frame1.Type {
		case model.KeyframeImage:
			parts = append(parts, "ending with an image")
		case model.KeyframeGeneration:
			if k.Frame0 != nil {
				parts = append(parts, "interpolating between videos")
			} else {
				parts = append(parts, "reverse extending to an existing video")
			}
		}
	}
	return strings.Join(parts, ", ")
}

func renderCreated(g *luma.Generation) string {
	header := fmt.Sprintf("Created text-to-video generation with ID: %s", orUnknown(g.ID))
	if g.GenerationType == "image" {
		header = fmt.Sprintf("Created image generation with ID: %s", orUnknown(g.ID))
	} else if g.Request != nil && !g.Request.Keyframes.Empty() {
		header = fmt.Sprintf("Created advanced generation (%s) with ID: %s",
			describeKeyframes(g.Request.Keyframes), orUnknown(g.ID))
	}

	lines := []string{
		header,
		fmt.Sprintf("State: %s", orDefault(g.State, "Processing")),
		fmt.Sprintf("Created at: %s", orUnknown(g.CreatedAt)),
		fmt.Sprintf("Model: %s", orUnknown(g.Model)),
	}
	if g.Request != nil && g.Request.Prompt != "" {
		lines = append(lines, fmt.Sprintf("Prompt: %s", g.Request.Prompt))
	}
	return strings.Join(lines, "\n")
}

func renderGeneration(g *luma.Generation) string {
	typeDisplay := "Text-to-video"
	if g.GenerationType == "image" {
		typeDisplay = "Image"
	} else if g.Request != nil && !g.Request.Keyframes.Empty() {
		typeDisplay = "Advanced"
	}

	prompt := "Unknown"
	if g.Request != nil && g.Request.Prompt != "" {
		prompt = g.Request.Prompt
	}

	lines := []string{
		fmt.Sprintf("Generation ID: %s", orUnknown(g.ID)),
		fmt.Sprintf("Type: %s", typeDisplay),
		stateLine("State: ", g),
		fmt.Sprintf("Created at: %s", orUnknown(g.CreatedAt)),
		fmt.Sprintf("Model: %s", orUnknown(g.Model)),
		fmt.Sprintf("Prompt: %s", prompt),
	}

	assets := assetLines(g)
	if len(assets) == 0 {
		lines = append(lines, "No assets available yet")
	} else {
		lines = append(lines, assets...)
	}
	return strings.Join(lines, "\n")
}

func renderList(list *luma.GenerationList) string {
	if len(list.Generations) == 0 {
		return "No generations found"
	}

	lines := []string{"Generations:"}
	count := list.Count
	if count == 0 {
		count = len(list.Generations)
	}
	pagination := fmt.Sprintf("Showing %d of %d generations", len(list.Generations), count)
	if list.HasMore {
		pagination += " (more available)"
	}
	lines = append(lines, pagination)

	for i := range list.Generations {
		g := &list.Generations[i]

		typeDisplay := "Text-to-video"
		if g.GenerationType == "image" {
			typeDisplay = "Image"
		} else if g.Request != nil && !g.Request.Keyframes.Empty() {
			typeDisplay = "Advanced"
		}

		prompt := "Unknown prompt"
		if g.Request != nil && g.Request.Prompt != "" {
			prompt = g.Request.Prompt
		}

		urlLabel, url := "Video URL", "Not available yet"
		if g.GenerationType == "image" {
			urlLabel = "Image URL"
			if g.Assets != nil && g.Assets.Image != "" {
				url = g.Assets.Image
			}
		} else if g.Assets != nil && g.Assets.Video != "" {
			url = g.Assets.Video
		}

		lines = append(lines, fmt.Sprintf("ID: %s\n  Type: %s\n  State: %s\n  Created at: %s\n  Prompt: %s\n  %s: %s\n",
			orDefault(g.ID, "Unknown ID"), typeDisplay, orDefault(g.State, "Unknown state"),
			orDefault(g.CreatedAt, "Unknown date"), prompt, urlLabel, url))
	}
	return strings.Join(lines, "\n")
}

func renderUpscale(g *luma.Generation) string {
	lines := []string{
		fmt.Sprintf("Upscale initiated for generation %s", orUnknown(g.ID)),
		fmt.Sprintf("Target resolution: %s", orUnknown(g.Resolution)),
		stateLine("Status: ", g),
		fmt.Sprintf("Created at: %s", orUnknown(g.CreatedAt)),
		fmt.Sprintf("Model: %s", orUnknown(g.Model)),
	}
	if assets := assetLines(g); len(assets) > 0 {
		lines = append(lines, "", "Assets:")
		lines = append(lines, assets...)
	}
	return strings.Join(lines, "\n")
}

func renderAudio(g *luma.Generation) string {
	lines := []string{
		fmt.Sprintf("Audio generation initiated for generation %s", orUnknown(g.ID)),
		stateLine("Status: ", g),
		fmt.Sprintf("Created at: %s", orUnknown(g.CreatedAt)),
		fmt.Sprintf("Model: %s", orUnknown(g.Model)),
	}
	if assets := assetLines(g); len(assets) > 0 {
		lines = append(lines, "", "Assets:")
		lines = append(lines, assets...)
	}
	return strings.Join(lines, "\n")
}

func renderImage(g *luma.Generation) string {
	imageURL := "Image will be available when processing completes"
	if g.Assets != nil && g.Assets.Image != "" {
		imageURL = g.Assets.Image
	}
	lines := []string{
		fmt.Sprintf("Image generation %s", orDefault(g.State, "Processing")),
		fmt.Sprintf("ID: %s", orUnknown(g.ID)),
		fmt.Sprintf("Created at: %s", orUnknown(g.CreatedAt)),
		fmt.Sprintf("Model: %s", orUnknown(g.Model)),
	}
	if g.Request != nil && g.Request.Prompt != "" {
		lines = append(lines, fmt.Sprintf("Prompt: %s", g.Request.Prompt))
	}
	lines = append(lines, fmt.Sprintf("Image URL: %s", imageURL))
	return strings.Join(lines, "\n")
}

func renderCredits(credits *luma.Credits) string {
	if credits.CreditBalance != nil {
		return fmt.Sprintf("Credit Information:\nAvailable Credits: %v", *credits.CreditBalance)
	}
	return fmt.Sprintf("Credit Information:\nAvailable Credits: %s\nUsed Credits: %s\nTotal Credits: %s",
		floatOrUnknown(credits.CreditsAvailable), floatOrUnknown(credits.CreditsUsed), floatOrUnknown(credits.CreditsTotal))
}

func renderCameraMotions(motions []string) string {
	if len(motions) == 0 {
		return "No camera motions available"
	}
	lines := []string{"Available camera motions:"}
	for _, motion := range motions {
		lines = append(lines, fmt.Sprintf("- %s", motion))
	}
	return strings.Join(lines, "\n")
}

func stateLine(prefix string, g *luma.Generation) string {
	state := orDefault(g.State, "Processing")
	if g.State == model.StateFailed && g.FailureReason != nil && *g.FailureReason != "" {
		return fmt.Sprintf("%s%s (Reason: %s)", prefix, state, *g.FailureReason)
	}
	return prefix + state
}

func assetLines(g *luma.Generation) []string {
	if g.Assets == nil {
		return nil
	}
	var lines []string
	if g.GenerationType == "image" {
		if g.Assets.Image != "" {
			lines = append(lines, fmt.Sprintf("Image URL: %s", g.Assets.Image))
		}
		return lines
	}
	if g.Assets.Video != "" {
		lines = append(lines, fmt.Sprintf("Video URL: %s", g.Assets.Video))
	}
	if g.Assets.ProgressVideo != "" {
		lines = append(lines, fmt.Sprintf("Progress video: %s", g.Assets.ProgressVideo))
	}
	if g.Assets.Image != "" {
		lines = append(lines, fmt.Sprintf("Thumbnail: %s", g.Assets.Image))
	}
	if g.Assets.Audio != "" {
		lines = append(lines, fmt.Sprintf("Audio URL: %s", g.Assets.Audio))
	}
	return lines
}

func floatOrUnknown(f *float64) string {
	if f == nil {
		return "Unknown"
	}
	return fmt.Sprintf("%v", *f)
}

func orUnknown(s string) string {
	return orDefault(s, "Unknown")
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
