package config

import (
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/lumatools/luma-mcp/common/env"
)

var ServiceName = "luma-mcp"
var InstanceId = uuid.New().String()[:8]

// LumaAPIKey authenticates every outbound call. When empty, calls fail
// closed with a configuration error before any network attempt.
var LumaAPIKey = os.Getenv("LUMA_API_KEY")

var LumaBaseURL = env.String("LUMA_BASE_URL", "https://api.lumalabs.ai/dream-machine/v1")

// RelayTimeout bounds each outbound call, in seconds. 0 disables the bound.
var RelayTimeout = env.Int("RELAY_TIMEOUT", 30)

var DebugEnabled = strings.ToLower(os.Getenv("DEBUG")) == "true"

var LogDir = env.String("LOG_DIR", "")

// ServeMode selects the inbound surface: "stdio" runs the MCP server over
// stdin/stdout, "http" serves the gin API instead.
var ServeMode = env.String("MODE", "stdio")

var Port = env.String("PORT", "3000")
