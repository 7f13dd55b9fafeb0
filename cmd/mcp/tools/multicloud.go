package tools

import (
	"context"

	"github.com/elC0mpa/cloud-advisor/model"
	"github.com/elC0mpa/cloud-advisor/response"
	"github.com/elC0mpa/cloud-advisor/service/orchestrator"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterMultiCloudTools registers multi-cloud aggregate tools with the MCP server
func RegisterMultiCloudTools(s *server.MCPServer, opts Options) {
	s.AddTool(
		mcp.NewTool("multicloud_get_savings_summary",
			mcp.WithDescription("Get savings recommendations across all configured cloud providers (AWS S3 storage tiers, GCP machine types) with per-provider totals. GCP is included when GCP_CREDENTIALS_FILE is set."),
		),
		makeMultiCloudSavingsSummaryHandler(opts),
	)
}

func makeMultiCloudSavingsSummaryHandler(opts Options) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		flags := model.Flags{
			Provider:        "all",
			Region:          opts.AWSRegion,
			Profile:         opts.AWSProfile,
			Concurrency:     opts.Concurrency,
			CredentialsFile: opts.GCPCredentialsFile,
		}

		results := orchestrator.NewService(opts.Prices, opts.Logger).CollectAll(ctx, flags)

		return jsonResult(response.ConvertAdvisoryResults(results))
	}
}
