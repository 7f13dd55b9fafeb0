package gcprecommender

import (
	"context"

	recommender "cloud.google.com/go/recommender/apiv1"
	"cloud.google.com/go/recommender/apiv1/recommenderpb"
	"github.com/elC0mpa/cloud-advisor/model"
	"github.com/elC0mpa/cloud-advisor/pricing"
	"github.com/rs/zerolog"
)

type service struct {
	client recommendationClient
	prices *pricing.Table
	logger zerolog.Logger
}

type RecommenderService interface {
	GetMachineTypeRecommendations(ctx context.Context, projectID string) ([]model.InstanceRecommendation, error)
	Close() error
}

// recommendationIterator is satisfied by *recommender.RecommendationIterator
type recommendationIterator interface {
	Next() (*recommenderpb.Recommendation, error)
}

type recommendationClient interface {
	ListRecommendations(ctx context.Context, req *recommenderpb.ListRecommendationsRequest) recommendationIterator
	Close() error
}

// apiClient adapts the generated client to recommendationClient
type apiClient struct {
	client *recommender.Client
}

func (c *apiClient) ListRecommendations(ctx context.Context, req *recommenderpb.ListRecommendationsRequest) recommendationIterator {
	return c.client.ListRecommendations(ctx, req)
}

func (c *apiClient) Close() error {
	return c.client.Close()
}
