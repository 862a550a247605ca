// Package luma is the remote client adaptor for the Luma Dream Machine API.
// It owns the endpoint mapping for every tool and classifies every outcome
// into exactly one of: success, network, cancelled, rejected or
// malformed_response. A non-2xx status is never swallowed.
package luma

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/lumatools/luma-mcp/common/client"
	"github.com/lumatools/luma-mcp/common/config"
	"github.com/lumatools/luma-mcp/relay/model"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Adaptor struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

func NewAdaptor() *Adaptor {
	return &Adaptor{
		BaseURL: config.LumaBaseURL,
		APIKey:  config.LumaAPIKey,
		Client:  client.HTTPClient,
	}
}

// Invoke maps a normalized request onto its remote endpoint and returns the
// tool-specific payload. The mapping is exhaustive over the tool variants.
func (a *Adaptor) Invoke(ctx context.Context, req model.ToolRequest) (any, *model.ToolError) {
	switch r := req.(type) {
	case model.PingRequest:
		return a.Ping(ctx)
	case model.CreateGenerationRequest:
		return a.CreateGeneration(ctx, r)
	case model.GetGenerationRequest:
		return a.GetGeneration(ctx, r.GenerationID)
	case model.ListGenerationsRequest:
		return a.ListGenerations(ctx, r.Limit, r.Offset)
	case model.DeleteGenerationRequest:
		if terr := a.DeleteGeneration(ctx, r.GenerationID); terr != nil {
			return nil, terr
		}
		return &DeleteAck{ID: r.GenerationID, Deleted: true}, nil
	case model.UpscaleGenerationRequest:
		return a.UpscaleGeneration(ctx, r.GenerationID, r.Resolution)
	case model.AddAudioRequest:
		return a.AddAudio(ctx, r)
	case model.GenerateImageRequest:
		return a.GenerateImage(ctx, r)
	case model.GetCreditsRequest:
		return a.GetCredits(ctx)
	case model.GetCameraMotionsRequest:
		return a.GetCameraMotions(ctx)
	default:
		return nil, model.NewValidationError(model.KindUnknownTool, "",
			fmt.Sprintf("unknown tool: %s", req.ToolName()))
	}
}

func (a *Adaptor) Ping(ctx context.Context) (map[string]any, *model.ToolError) {
	payload := map[string]any{}
	if terr := a.do(ctx, http.MethodGet, pathPing, nil, &payload); terr != nil {
		return nil, terr
	}
	return payload, nil
}

func (a *Adaptor) CreateGeneration(ctx context.Context, req model.CreateGenerationRequest) (*Generation, *model.ToolError) {
	body := GenerationRequest{
		Prompt:      req.Prompt,
		Model:       req.Model,
		Resolution:  req.Resolution,
		Duration:    req.Duration,
		AspectRatio: req.AspectRatio,
		Loop:        req.Loop,
		Keyframes:   req.Keyframes,
		CallbackURL: req.CallbackURL,
	}
	var generation Generation
	if terr := a.do(ctx, http.MethodPost, pathGenerations, body, &generation); terr != nil {
		return nil, terr
	}
	return &generation, nil
}

func (a *Adaptor) GetGeneration(ctx context.Context, id string) (*Generation, *model.ToolError) {
	var generation Generation
	if terr := a.do(ctx, http.MethodGet, generationPath(id), nil, &generation); terr != nil {
		return nil, terr
	}
	return &generation, nil
}

func (a *Adaptor) ListGenerations(ctx context.Context, limit, offset int) (*GenerationList, *model.ToolError) {
	path := fmt.Sprintf("%s?limit=%d&offset=%d", pathGenerations, limit, offset)
	var raw jsoniter.RawMessage
	if terr := a.do(ctx, http.MethodGet, path, nil, &raw); terr != nil {
		return nil, terr
	}
	return decodeGenerationList(raw)
}

// decodeGenerationList accepts both the wrapped list shape and a bare array.
func decodeGenerationList(raw jsoniter.RawMessage) (*GenerationList, *model.ToolError) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return &GenerationList{}, nil
	}
	if trimmed[0] == '[' {
		var generations []Generation
		if err := json.Unmarshal(trimmed, &generations); err != nil {
			return nil, malformed(err)
		}
		return &GenerationList{Generations: generations, Count: len(generations)}, nil
	}
	var list GenerationList
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return nil, malformed(err)
	}
	if list.Count == 0 {
		list.Count = len(list.Generations)
	}
	return &list, nil
}

func (a *Adaptor) DeleteGeneration(ctx context.Context, id string) *model.ToolError {
	return a.do(ctx, http.MethodDelete, generationPath(id), nil, nil)
}

func (a *Adaptor) UpscaleGeneration(ctx context.Context, id, resolution string) (*Generation, *model.ToolError) {
	var generation Generation
	if terr := a.do(ctx, http.MethodPost, upscalePath(id), UpscaleRequest{Resolution: resolution}, &generation); terr != nil {
		return nil, terr
	}
	return &generation, nil
}

func (a *Adaptor) AddAudio(ctx context.Context, req model.AddAudioRequest) (*Generation, *model.ToolError) {
	body := AudioRequest{
		Prompt:         req.Prompt,
		NegativePrompt: req.NegativePrompt,
		CallbackURL:    req.CallbackURL,
	}
	var generation Generation
	if terr := a.do(ctx, http.MethodPost, audioPath(req.GenerationID), body, &generation); terr != nil {
		return nil, terr
	}
	return &generation, nil
}

func (a *Adaptor) GenerateImage(ctx context.Context, req model.GenerateImageRequest) (*Generation, *model.ToolError) {
	body := ImageRequest{Prompt: req.Prompt, Model: req.Model}
	var generation Generation
	if terr := a.do(ctx, http.MethodPost, pathImage, body, &generation); terr != nil {
		return nil, terr
	}
	return &generation, nil
}

func (a *Adaptor) GetCredits(ctx context.Context) (*Credits, *model.ToolError) {
	var credits Credits
	if terr := a.do(ctx, http.MethodGet, pathCredits, nil, &credits); terr != nil {
		return nil, terr
	}
	return &credits, nil
}

func (a *Adaptor) GetCameraMotions(ctx context.Context) ([]string, *model.ToolError) {
	var raw any
	if terr := a.do(ctx, http.MethodGet, pathCameraMotions, nil, &raw); terr != nil {
		return nil, terr
	}
	return normalizeCameraMotions(raw)
}

// normalizeCameraMotions flattens the shapes the endpoint has been observed
// to return: a bare array of strings or objects, or a list wrapped under one
// of several keys.
func normalizeCameraMotions(raw any) ([]string, *model.ToolError) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case []any:
		motions := make([]string, 0, len(v))
		for _, item := range v {
			switch m := item.(type) {
			case string:
				motions = append(motions, m)
			case map[string]any:
				if name, ok := m["name"].(string); ok {
					motions = append(motions, name)
				} else if id, ok := m["id"].(string); ok {
					motions = append(motions, id)
				}
			}
		}
		return motions, nil
	case map[string]any:
		for _, key := range []string{"motions", "camera_motions", "data", "items", "results"} {
			if list, ok := v[key].([]any); ok {
				return normalizeCameraMotions(list)
			}
		}
	}
	return nil, model.NewRemoteError(model.KindMalformedResponse, 0,
		"camera motion response does not contain a motion list")
}

// do performs one outbound call. The credential check fails closed before
// any network attempt; context cancellation aborts the in-flight request.
func (a *Adaptor) do(ctx context.Context, method, path string, payload any, out any) *model.ToolError {
	if a.APIKey == "" {
		return model.NewConfigError(model.KindMissingCredential,
			"LUMA_API_KEY is not set")
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return model.NewRemoteError(model.KindMalformedResponse, 0,
				fmt.Sprintf("failed to encode request body: %s", err.Error()))
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.BaseURL+"/"+path, body)
	if err != nil {
		return model.NewRemoteError(model.KindNetwork, 0,
			fmt.Sprintf("failed to build request: %s", err.Error()))
	}
	req.Header.Set("Authorization", "Bearer "+a.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := a.Client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return model.NewRemoteError(model.KindCancelled, 0,
				fmt.Sprintf("request cancelled: %s", ctx.Err().Error()))
		}
		return model.NewRemoteError(model.KindNetwork, 0,
			fmt.Sprintf("network error: %s", err.Error()))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.NewRemoteError(model.KindNetwork, 0,
			fmt.Sprintf("failed to read response: %s", err.Error()))
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return model.NewRemoteError(model.KindRejected, resp.StatusCode, remoteMessage(resp.StatusCode, data))
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return model.NewRemoteError(model.KindMalformedResponse, resp.StatusCode,
			fmt.Sprintf("failed to parse response: %s", err.Error()))
	}
	return nil
}

// remoteMessage extracts the remote error detail, falling back to the raw
// body so the remote's own message is surfaced verbatim.
func remoteMessage(status int, data []byte) string {
	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		if payload.Detail != "" {
			return fmt.Sprintf("HTTP error %d: %s", status, payload.Detail)
		}
		if payload.Message != "" {
			return fmt.Sprintf("HTTP error %d: %s", status, payload.Message)
		}
	}
	if len(bytes.TrimSpace(data)) > 0 {
		return fmt.Sprintf("HTTP error %d: %s", status, string(data))
	}
	return fmt.Sprintf("HTTP error %d", status)
}

func malformed(err error) *model.ToolError {
	return model.NewRemoteError(model.KindMalformedResponse, 0,
		fmt.Sprintf("failed to parse response: %s", err.Error()))
}
