// Package rule enforces the invariants a schema cannot express: rules that
// depend on the current remote state of a referenced generation. This is the
// only place a remote read happens before deciding whether a write may
// proceed; well-formedness is the validator's job, permission against current
// state is ours.
package rule

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lumatools/luma-mcp/relay/channel/luma"
	"github.com/lumatools/luma-mcp/relay/model"
)

// GenerationReader fetches the current remote view of a generation. The Luma
// adaptor implements it; tests substitute their own.
type GenerationReader interface {
	GetGeneration(ctx context.Context, id string) (*luma.Generation, *model.ToolError)
}

type Engine struct {
	reader GenerationReader
}

func NewEngine(reader GenerationReader) *Engine {
	return &Engine{reader: reader}
}

// Apply checks a validated request against the current remote state and
// returns nil when the request may proceed. State is fetched fresh on every
// call; nothing is cached across requests.
//
// Two concurrent upscales of the same generation can both pass the pre-write
// read; the remote service decides the loser. Nothing here serializes them.
func (e *Engine) Apply(ctx context.Context, req model.ToolRequest) *model.ToolError {
	switch r := req.(type) {
	case model.UpscaleGenerationRequest:
		return e.applyUpscaleRules(ctx, r)
	case model.CreateGenerationRequest:
		// Safety net: the validator already rejects an empty keyframe set.
		// A set that slips through is still the same input defect, so it
		// keeps its validation classification instead of becoming a rule
		// violation raised here.
		if r.Keyframes != nil && r.Keyframes.Empty() {
			return model.NewValidationError(model.KindInvalidValue, "keyframes",
				"keyframes must contain frame0 or frame1")
		}
		return nil
	default:
		return nil
	}
}

func (e *Engine) applyUpscaleRules(ctx context.Context, req model.UpscaleGenerationRequest) *model.ToolError {
	generation, terr := e.reader.GetGeneration(ctx, req.GenerationID)
	if terr != nil {
		if terr.Kind == model.KindRejected && terr.StatusCode == http.StatusNotFound {
			return model.NewRuleViolation(model.KindGenerationNotFound,
				fmt.Sprintf("generation %s not found", req.GenerationID))
		}
		return terr
	}
	if generation.State != model.StateCompleted {
		return model.NewRuleViolation(model.KindNotCompleted,
			fmt.Sprintf("generation %s is not completed (state: %s)", req.GenerationID, generation.State))
	}
	// Checked before the resolution ordering so a spent upscale reports
	// already_upscaled whatever resolution was requested.
	if generation.Upscaled {
		return model.NewRuleViolation(model.KindAlreadyUpscaled,
			fmt.Sprintf("generation %s has already been upscaled", req.GenerationID))
	}
	if model.ResolutionRank(req.Resolution) <= model.ResolutionRank(generation.CurrentResolution()) {
		return model.NewRuleViolation(model.KindResolutionNotHigher,
			fmt.Sprintf("target resolution %s is not higher than the current resolution %s",
				req.Resolution, generation.CurrentResolution()))
	}
	return nil
}
