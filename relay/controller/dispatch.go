// Package controller orchestrates one tool call: validate, apply rules,
// invoke the remote adaptor, map the outcome. A single forward pass per
// call; the first failure is terminal and no stage is re-entered or retried.
package controller

import (
	"context"

	"github.com/lumatools/luma-mcp/common/logger"
	"github.com/lumatools/luma-mcp/relay/channel/luma"
	"github.com/lumatools/luma-mcp/relay/model"
	"github.com/lumatools/luma-mcp/relay/rule"
	"github.com/lumatools/luma-mcp/relay/validate"
)

type Dispatcher struct {
	adaptor *luma.Adaptor
	rules   *rule.Engine
}

// NewDispatcher wires the rule engine to the same adaptor used for writes,
// so rule-time reads hit the same upstream with the same credential.
func NewDispatcher(adaptor *luma.Adaptor) *Dispatcher {
	return &Dispatcher{
		adaptor: adaptor,
		rules:   rule.NewEngine(adaptor),
	}
}

// Handle processes one tool call. A validation failure returns before any
// network activity; a rule violation returns before any remote write.
func (d *Dispatcher) Handle(ctx context.Context, tool string, args map[string]any) *model.ToolResult {
	logger.Debugf(ctx, "tool call: %s", tool)

	req, terr := validate.Validate(tool, args)
	if terr != nil {
		logger.Infof(ctx, "tool %s rejected: %s", tool, terr.Error())
		return model.Failure(terr)
	}

	if terr := d.rules.Apply(ctx, req); terr != nil {
		logger.Infof(ctx, "tool %s blocked: %s", tool, terr.Error())
		return model.Failure(terr)
	}

	payload, terr := d.adaptor.Invoke(ctx, req)
	if terr != nil {
		if terr.Kind == model.KindMalformedResponse {
			// A 2xx we cannot parse is a defect, not a user error.
			logger.Errorf(ctx, "tool %s: %s", tool, terr.Error())
		} else {
			logger.Warnf(ctx, "tool %s failed: %s", tool, terr.Error())
		}
		return model.Failure(terr)
	}
	return model.Success(payload)
}
