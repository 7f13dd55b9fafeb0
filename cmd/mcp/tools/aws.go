package tools

import (
	"context"

	"github.com/elC0mpa/cloud-advisor/response"
	awsconfig "github.com/elC0mpa/cloud-advisor/service/aws/config"
	awscostexplorer "github.com/elC0mpa/cloud-advisor/service/aws/costexplorer"
	awss3 "github.com/elC0mpa/cloud-advisor/service/aws/s3"
	awssts "github.com/elC0mpa/cloud-advisor/service/aws/sts"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterAWSTools registers all AWS tools with the MCP server
func RegisterAWSTools(s *server.MCPServer, opts Options) {
	// Account info
	s.AddTool(
		mcp.NewTool("aws_get_account_info",
			mcp.WithDescription("Get AWS account identity information including account ID and ARN"),
		),
		makeAWSAccountInfoHandler(opts),
	)

	// Bucket storage-tier advice
	s.AddTool(
		mcp.NewTool("aws_get_s3_bucket_summary",
			mcp.WithDescription("List every S3 bucket with its size, storage class and region, and suggest a cheaper storage class with the estimated monthly savings"),
			mcp.WithNumber("concurrency",
				mcp.Description("Number of buckets analyzed in parallel (defaults to ADVISOR_CONCURRENCY)"),
			),
			mcp.WithBoolean("include_spend",
				mcp.Description("Also report the actual S3 month-to-date spend from Cost Explorer"),
			),
		),
		makeAWSBucketSummaryHandler(opts),
	)
}

func makeAWSAccountInfoHandler(opts Options) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		awsCfg, err := awsconfig.NewService().GetAWSCfg(ctx, opts.AWSRegion, opts.AWSProfile)
		if err != nil {
			return toolError(opts.Logger, "aws_get_account_info", "Failed to load AWS config", err), nil
		}

		info, err := awssts.NewService(awsCfg).GetAccountInfo(ctx)
		if err != nil {
			return toolError(opts.Logger, "aws_get_account_info", "Failed to get account info", err), nil
		}

		return jsonResult(response.ConvertAccountInfo(info))
	}
}

func makeAWSBucketSummaryHandler(opts Options) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		concurrency := request.GetInt("concurrency", opts.Concurrency)
		if concurrency < 1 {
			return mcp.NewToolResultError("concurrency must be at least 1"), nil
		}

		awsCfg, err := awsconfig.NewService().GetAWSCfg(ctx, opts.AWSRegion, opts.AWSProfile)
		if err != nil {
			return toolError(opts.Logger, "aws_get_s3_bucket_summary", "Failed to load AWS config", err), nil
		}

		info, err := awssts.NewService(awsCfg).GetAccountInfo(ctx)
		if err != nil {
			return toolError(opts.Logger, "aws_get_s3_bucket_summary", "Failed to get account info", err), nil
		}

		buckets, err := awss3.NewService(awsCfg, opts.Prices.Storage, concurrency, opts.Logger).AnalyzeBuckets(ctx)
		if err != nil {
			return toolError(opts.Logger, "aws_get_s3_bucket_summary", "Failed to analyze buckets", err), nil
		}

		var spend string
		if request.GetBool("include_spend", false) {
			amount, err := awscostexplorer.NewService(awsCfg).GetServiceMonthToDateCost(ctx, awscostexplorer.S3ServiceName)
			if err != nil {
				opts.Logger.Warn().Err(err).Msg("month-to-date S3 spend unavailable")
			} else {
				spend = *amount
			}
		}

		return jsonResult(response.ConvertBucketReport(info.AccountID, buckets, spend))
	}
}
