// Package mcpserver exposes the tool surface over the Model Context
// Protocol. Each advertised tool routes through the dispatcher; results and
// errors alike come back as text content blocks, with errors flagged so the
// orchestrator can tell them apart.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lumatools/luma-mcp/common"
	"github.com/lumatools/luma-mcp/common/logger"
	"github.com/lumatools/luma-mcp/relay/controller"
	"github.com/lumatools/luma-mcp/relay/model"
	"github.com/lumatools/luma-mcp/relay/schema"
)

// New builds an MCP server advertising all ten tools with schemas rendered
// from the shared field specs.
func New(dispatcher *controller.Dispatcher) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "luma-mcp",
		Version: common.Version,
	}, nil)

	for _, name := range model.ToolNames() {
		registerTool(server, dispatcher, name)
	}
	return server
}

func registerTool(server *mcp.Server, dispatcher *controller.Dispatcher, name string) {
	tool := &mcp.Tool{
		Name:        name,
		Description: schema.Description(name),
		InputSchema: schema.JSONSchema(name),
	}
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args map[string]any) (*mcp.CallToolResult, any, error) {
		result := dispatcher.Handle(ctx, name, args)
		if result.Error != nil {
			return &mcp.CallToolResult{
				IsError: true,
				Content: []mcp.Content{&mcp.TextContent{Text: "Error: " + result.Error.Error()}},
			}, nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: controller.RenderText(name, result.Payload)}},
		}, nil, nil
	})
}

// Run serves MCP over stdin/stdout until the context is done.
func Run(ctx context.Context, dispatcher *controller.Dispatcher) error {
	logger.SysLog("starting MCP server on stdio")
	return New(dispatcher).Run(ctx, &mcp.StdioTransport{})
}
