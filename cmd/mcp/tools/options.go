package tools

import (
	"encoding/json"
	"fmt"

	"github.com/elC0mpa/cloud-advisor/pricing"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"
)

// Options carries the server-wide settings shared by every tool
type Options struct {
	AWSRegion          string
	AWSProfile         string
	GCPCredentialsFile string
	Concurrency        int
	Prices             *pricing.Table
	Logger             zerolog.Logger
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func toolError(logger zerolog.Logger, tool, message string, err error) *mcp.CallToolResult {
	logger.Warn().Err(err).Str("tool", tool).Msg(message)
	return mcp.NewToolResultError(fmt.Sprintf("%s: %v", message, err))
}
