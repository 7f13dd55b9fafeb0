package gcprecommender

import (
	"context"
	"errors"
	"fmt"
	"strings"

	recommender "cloud.google.com/go/recommender/apiv1"
	"cloud.google.com/go/recommender/apiv1/recommenderpb"
	"github.com/elC0mpa/cloud-advisor/model"
	"github.com/elC0mpa/cloud-advisor/pricing"
	gcpconfig "github.com/elC0mpa/cloud-advisor/service/gcp/config"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

const (
	MachineTypeRecommender = "google.compute.instance.MachineTypeRecommender"

	pathMachineType            = "/machineType"
	pathInstance               = "/instance"
	pathRecommendedMachineType = "/recommendedMachineType"

	unknownZone = "unknown"
)

func NewService(ctx context.Context, creds *google.Credentials, prices *pricing.Table, logger zerolog.Logger) (*service, error) {
	client, err := recommender.NewClient(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to create Recommender client: %w", err)
	}

	return newService(&apiClient{client: client}, prices, logger), nil
}

func newService(client recommendationClient, prices *pricing.Table, logger zerolog.Logger) *service {
	if prices == nil {
		prices = pricing.Default()
	}
	return &service{
		client: client,
		prices: prices,
		logger: logger,
	}
}

// Close releases the Recommender client
func (s *service) Close() error {
	return s.client.Close()
}

// FetchRecommendations builds credentials from the bundle, opens a client for
// the duration of the call and returns every machine-type recommendation of
// the bundle's project.
func FetchRecommendations(ctx context.Context, bundle model.CredentialBundle, prices *pricing.Table, logger zerolog.Logger) ([]model.InstanceRecommendation, error) {
	creds, err := gcpconfig.NewService(bundle).GetCredentials(ctx)
	if err != nil {
		return nil, err
	}

	svc, err := NewService(ctx, creds, prices, logger)
	if err != nil {
		return nil, err
	}
	defer svc.Close()

	return svc.GetMachineTypeRecommendations(ctx, bundle.ProjectID)
}

// MachineTypeRecommenderParent returns the recommender resource path of a project
func MachineTypeRecommenderParent(projectID string) string {
	return fmt.Sprintf("projects/%s/locations/global/recommenders/%s", projectID, MachineTypeRecommender)
}

// GetMachineTypeRecommendations implements RecommenderService
func (s *service) GetMachineTypeRecommendations(ctx context.Context, projectID string) ([]model.InstanceRecommendation, error) {
	parent := MachineTypeRecommenderParent(projectID)
	it := s.client.ListRecommendations(ctx, &recommenderpb.ListRecommendationsRequest{
		Parent: parent,
	})

	var result []model.InstanceRecommendation
	for {
		rec, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list recommendations for %s: %w", parent, err)
		}

		instanceRec, ok := s.toInstanceRecommendation(rec)
		if !ok {
			s.logger.Debug().Str("recommendation", rec.GetName()).Msg("skipping recommendation without operations")
			continue
		}
		result = append(result, instanceRec)
	}

	s.logger.Info().
		Str("project", projectID).
		Int("recommendations", len(result)).
		Msg("machine type recommendations fetched")

	return result, nil
}

func (s *service) toInstanceRecommendation(rec *recommenderpb.Recommendation) (model.InstanceRecommendation, bool) {
	groups := rec.GetContent().GetOperationGroups()
	if len(groups) == 0 {
		return model.InstanceRecommendation{}, false
	}

	var instanceID, currentType, recommendedType string
	for _, group := range groups {
		for _, op := range group.GetOperations() {
			value := op.GetValue().GetStringValue()
			switch op.GetPath() {
			case pathMachineType:
				currentType = value
			case pathInstance:
				instanceID = value
			case pathRecommendedMachineType:
				recommendedType = value
			}
		}
	}

	currentPrice := s.prices.MachineTypePrice(currentType)
	recommendedPrice := s.prices.MachineTypePrice(recommendedType)

	return model.InstanceRecommendation{
		InstanceID:              instanceID,
		Zone:                    ExtractZone(rec.GetName()),
		CurrentMachineType:      currentType,
		RecommendedMachineType:  recommendedType,
		CurrentCost:             currentPrice,
		RecommendedCost:         recommendedPrice,
		PotentialMonthlySavings: MonthlySavings(currentPrice, recommendedPrice),
		RecommendationReason:    rec.GetDescription(),
	}, true
}

// MonthlySavings converts an hourly price difference into a monthly figure.
// The result is negative when the recommended price is higher.
func MonthlySavings(currentPrice, recommendedPrice float64) float64 {
	return (currentPrice - recommendedPrice) * pricing.HoursPerMonth
}

// ExtractZone returns the path segment following "locations" in a resource
// name, e.g. "projects/p/locations/us-central1-a/recommenders/x" gives
// "us-central1-a".
func ExtractZone(name string) string {
	parts := strings.Split(name, "/")
	for i := 0; i < len(parts)-1; i++ {
		if parts[i] == "locations" {
			return parts[i+1]
		}
	}
	return unknownZone
}
