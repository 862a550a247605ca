package mcpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumatools/luma-mcp/relay/channel/luma"
	"github.com/lumatools/luma-mcp/relay/controller"
	"github.com/lumatools/luma-mcp/relay/model"
)

// connect wires the server to a client session over in-memory transports.
func connect(t *testing.T, adaptor *luma.Adaptor) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	serverSession, err := New(controller.NewDispatcher(adaptor)).Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { session.Close() })
	return session
}

func TestServerAdvertisesAllTools(t *testing.T) {
	session := connect(t, &luma.Adaptor{Client: http.DefaultClient})

	result, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)

	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
		assert.NotNil(t, tool.InputSchema, tool.Name)
		assert.NotEmpty(t, tool.Description, tool.Name)
	}
	assert.ElementsMatch(t, model.ToolNames(), names)
}

func TestCallToolSuccessReturnsText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()
	session := connect(t, &luma.Adaptor{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Client:  server.Client(),
	})

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      model.ToolPing,
		Arguments: map[string]any{},
	})
	require.NoError(t, err)
	assert.False(t, result.IsError)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "Luma API is available and responding", text.Text)
}

func TestCallToolErrorIsFlagged(t *testing.T) {
	// No credential configured, so the call fails closed before any network
	// attempt and must come back flagged rather than as a protocol error.
	session := connect(t, &luma.Adaptor{Client: http.DefaultClient})

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      model.ToolPing,
		Arguments: map[string]any{},
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "Error: missing_credential")
}

func TestCallToolValidationErrorIsFlagged(t *testing.T) {
	session := connect(t, &luma.Adaptor{Client: http.DefaultClient})

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      model.ToolUpscaleGeneration,
		Arguments: map[string]any{"generation_id": "gen_123"},
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)
	text := result.Content[0].(*mcp.TextContent)
	assert.Contains(t, text.Text, "missing_field")
	assert.Contains(t, text.Text, "resolution")
}
