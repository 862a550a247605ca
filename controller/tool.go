package controller

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/lumatools/luma-mcp/common"
	"github.com/lumatools/luma-mcp/common/config"
	relay "github.com/lumatools/luma-mcp/relay/controller"
	"github.com/lumatools/luma-mcp/relay/model"
	"github.com/lumatools/luma-mcp/relay/schema"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var toolDispatcher *relay.Dispatcher

func InitDispatcher(d *relay.Dispatcher) {
	toolDispatcher = d
}

func GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "",
		"data": gin.H{
			"version":    common.Version,
			"start_time": common.StartTime,
			"service":    config.ServiceName,
			"instance":   config.InstanceId,
		},
	})
}

// ListTools returns the tool catalog with the same schemas advertised over
// MCP.
func ListTools(c *gin.Context) {
	tools := make([]gin.H, 0, len(model.ToolNames()))
	for _, name := range model.ToolNames() {
		tools = append(tools, gin.H{
			"name":         name,
			"description":  schema.Description(name),
			"input_schema": schema.JSONSchema(name),
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    tools,
	})
}

// InvokeTool runs one tool call. The body is the raw argument object; an
// empty body means no arguments.
func InvokeTool(c *gin.Context) {
	name := c.Param("name")

	args := map[string]any{}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": model.NewValidationError(model.KindInvalidValue, "", "failed to read request body"),
		})
		return
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &args); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": model.NewValidationError(model.KindInvalidValue, "", "request body must be a JSON object"),
			})
			return
		}
	}

	result := toolDispatcher.Handle(c.Request.Context(), name, args)
	if result.Error != nil {
		c.JSON(statusFor(result.Error), gin.H{"error": result.Error})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Payload,
		"text":    relay.RenderText(name, result.Payload),
	})
}

// statusFor maps the error taxonomy onto HTTP statuses. Remote rejections
// pass the upstream status through untouched.
func statusFor(terr *model.ToolError) int {
	switch terr.Category {
	case model.CategoryValidation:
		if terr.Kind == model.KindUnknownTool {
			return http.StatusNotFound
		}
		return http.StatusBadRequest
	case model.CategoryRule:
		return http.StatusUnprocessableEntity
	case model.CategoryConfig:
		return http.StatusInternalServerError
	case model.CategoryRemote:
		switch terr.Kind {
		case model.KindRejected:
			if terr.StatusCode >= http.StatusBadRequest {
				return terr.StatusCode
			}
			return http.StatusBadGateway
		case model.KindCancelled:
			// Client closed request; nginx convention.
			return 499
		default:
			return http.StatusBadGateway
		}
	}
	return http.StatusInternalServerError
}
