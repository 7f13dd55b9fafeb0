package tools

import (
	"context"

	"github.com/elC0mpa/cloud-advisor/response"
	gcpconfig "github.com/elC0mpa/cloud-advisor/service/gcp/config"
	gcprecommender "github.com/elC0mpa/cloud-advisor/service/gcp/recommender"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const gcpRecommendationsTool = "gcp_get_machine_type_recommendations"

// RegisterGCPTools registers all GCP tools with the MCP server
func RegisterGCPTools(s *server.MCPServer, opts Options) {
	s.AddTool(
		mcp.NewTool(gcpRecommendationsTool,
			mcp.WithDescription("List Compute Engine machine-type right-sizing recommendations for a GCP project with current and recommended hourly prices and the potential monthly savings. Requires a service account key file."),
			mcp.WithString("credentials_file",
				mcp.Description("Path to the service account key file (defaults to GCP_CREDENTIALS_FILE)"),
			),
			mcp.WithString("project_id",
				mcp.Description("Project to query (defaults to the key's project)"),
			),
		),
		makeGCPRecommendationsHandler(opts),
	)
}

func makeGCPRecommendationsHandler(opts Options) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := request.GetString("credentials_file", opts.GCPCredentialsFile)
		if path == "" {
			return mcp.NewToolResultError("GCP credentials not configured. Set GCP_CREDENTIALS_FILE or pass credentials_file."), nil
		}

		bundle, err := gcpconfig.LoadBundleFile(path)
		if err != nil {
			return toolError(opts.Logger, gcpRecommendationsTool, "Failed to load credentials", err), nil
		}
		if projectID := request.GetString("project_id", ""); projectID != "" {
			bundle.ProjectID = projectID
		}

		recommendations, err := gcprecommender.FetchRecommendations(ctx, bundle, opts.Prices, opts.Logger)
		if err != nil {
			return toolError(opts.Logger, gcpRecommendationsTool, "Failed to fetch recommendations", err), nil
		}

		return jsonResult(response.ConvertRecommendationReport(bundle.ProjectID, recommendations))
	}
}
