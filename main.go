package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/lumatools/luma-mcp/common"
	"github.com/lumatools/luma-mcp/common/config"
	"github.com/lumatools/luma-mcp/common/logger"
	"github.com/lumatools/luma-mcp/controller"
	"github.com/lumatools/luma-mcp/mcpserver"
	"github.com/lumatools/luma-mcp/middleware"
	"github.com/lumatools/luma-mcp/relay/channel/luma"
	relay "github.com/lumatools/luma-mcp/relay/controller"
	"github.com/lumatools/luma-mcp/router"
)

func main() {
	logger.SetupLogger()
	logger.SysLog(fmt.Sprintf("Luma MCP %s started", common.Version))
	if config.DebugEnabled {
		logger.SysLog("running in debug mode")
	}
	if config.LumaAPIKey == "" {
		// Calls still fail closed individually; warn once up front.
		logger.SysError("LUMA_API_KEY is not set, every tool call will fail with a configuration error")
	}

	dispatcher := relay.NewDispatcher(luma.NewAdaptor())

	if config.ServeMode == "http" {
		runHTTPServer(dispatcher)
		return
	}
	runStdioServer(dispatcher)
}

func runStdioServer(dispatcher *relay.Dispatcher) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mcpserver.Run(ctx, dispatcher); err != nil && ctx.Err() == nil {
		logger.FatalLog("MCP server terminated: " + err.Error())
	}
	logger.SysLog("MCP server stopped")
}

func runHTTPServer(dispatcher *relay.Dispatcher) {
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	server := gin.New()
	server.Use(middleware.RelayPanicRecover())

	controller.InitDispatcher(dispatcher)
	router.SetApiRouter(server)

	logger.SysLog("HTTP server listening on port " + config.Port)
	if err := server.Run(":" + config.Port); err != nil {
		logger.FatalLog("failed to start HTTP server: " + err.Error())
	}
}
