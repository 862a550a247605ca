package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lumatools/luma-mcp/relay/channel/luma"
	relay "github.com/lumatools/luma-mcp/relay/controller"
	"github.com/lumatools/luma-mcp/relay/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(handler http.Handler) (*gin.Engine, *httptest.Server) {
	gin.SetMode(gin.TestMode)
	server := httptest.NewServer(handler)
	InitDispatcher(relay.NewDispatcher(&luma.Adaptor{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Client:  server.Client(),
	}))

	engine := gin.New()
	engine.GET("/api/status", GetStatus)
	engine.GET("/api/tools", ListTools)
	engine.POST("/api/tools/:name", InvokeTool)
	return engine, server
}

func postTool(engine *gin.Engine, name, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tools/"+name, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	return w
}

func TestInvokeToolValidationStatuses(t *testing.T) {
	calls := 0
	engine, server := newTestRouter(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	w := postTool(engine, model.ToolCreateGeneration, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing_field")

	w = postTool(engine, "render_hologram", `{}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "unknown_tool")

	w = postTool(engine, model.ToolPing, `[1,2]`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, 0, calls, "validation failures must not reach the network")
}

func TestInvokeToolRuleViolationStatus(t *testing.T) {
	engine, server := newTestRouter(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"gen_123","state":"completed","resolution":"1080p","upscaled":true}`))
	}))
	defer server.Close()

	w := postTool(engine, model.ToolUpscaleGeneration, `{"generation_id":"gen_123","resolution":"4k"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "already_upscaled")
}

func TestInvokeToolConfigStatus(t *testing.T) {
	engine, server := newTestRouter(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()
	InitDispatcher(relay.NewDispatcher(&luma.Adaptor{
		BaseURL: server.URL,
		Client:  server.Client(),
	}))

	w := postTool(engine, model.ToolPing, ``)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "missing_credential")
}

func TestInvokeToolRejectedStatusPassthrough(t *testing.T) {
	engine, server := newTestRouter(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"detail":"over capacity"}`))
	}))
	defer server.Close()

	w := postTool(engine, model.ToolGetCredits, ``)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "over capacity")
}

func TestInvokeToolSuccess(t *testing.T) {
	engine, server := newTestRouter(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"gen_new","state":"queued","model":"ray-2"}`))
	}))
	defer server.Close()

	// Empty body means no arguments for zero-field tools; a JSON object
	// carries them for the rest.
	w := postTool(engine, model.ToolCreateGeneration, `{"prompt":"a whale breaching"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"gen_new"`)
	assert.Contains(t, w.Body.String(), "Created text-to-video generation")
}

func TestListToolsCatalog(t *testing.T) {
	engine, server := newTestRouter(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tools", nil))
	require.Equal(t, http.StatusOK, w.Code)
	for _, name := range model.ToolNames() {
		assert.Contains(t, w.Body.String(), `"`+name+`"`)
	}
}

func TestStatusForRemoteKinds(t *testing.T) {
	tests := []struct {
		name string
		terr *model.ToolError
		want int
	}{
		{"network", model.NewRemoteError(model.KindNetwork, 0, "connection refused"), http.StatusBadGateway},
		{"malformed response", model.NewRemoteError(model.KindMalformedResponse, 200, "not json"), http.StatusBadGateway},
		{"cancelled", model.NewRemoteError(model.KindCancelled, 0, "context deadline exceeded"), 499},
		{"rejected keeps upstream status", model.NewRemoteError(model.KindRejected, http.StatusTooManyRequests, "rate limited"), http.StatusTooManyRequests},
		{"rejected without status", model.NewRemoteError(model.KindRejected, 0, "declined"), http.StatusBadGateway},
		{"validation", model.NewValidationError(model.KindMissingField, "prompt", "prompt parameter is required"), http.StatusBadRequest},
		{"unknown tool", model.NewValidationError(model.KindUnknownTool, "", "unknown tool"), http.StatusNotFound},
		{"rule", model.NewRuleViolation(model.KindNotCompleted, "not completed"), http.StatusUnprocessableEntity},
		{"config", model.NewConfigError(model.KindMissingCredential, "LUMA_API_KEY is not set"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.terr))
		})
	}
}
