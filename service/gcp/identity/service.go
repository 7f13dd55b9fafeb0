package gcpidentity

import (
	"context"
	"fmt"

	"github.com/elC0mpa/cloud-advisor/model"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/cloudresourcemanager/v1"
	"google.golang.org/api/option"
)

// NewService opens a Resource Manager client authenticated with creds
func NewService(ctx context.Context, projectID string, creds *google.Credentials) (*service, error) {
	client, err := cloudresourcemanager.NewService(ctx,
		option.WithCredentials(creds),
		option.WithScopes(cloudresourcemanager.CloudPlatformReadOnlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Resource Manager client: %w", err)
	}

	return &service{
		projectID: projectID,
		projects:  &projectsAPI{client: client},
	}, nil
}

// GetAccountInfo implements service.IdentityService
func (s *service) GetAccountInfo(ctx context.Context) (*model.AccountInfo, error) {
	name, err := s.projects.GetProjectName(ctx, s.projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project %s: %w", s.projectID, err)
	}

	return &model.AccountInfo{
		Provider:    "gcp",
		AccountID:   s.projectID,
		AccountName: name,
	}, nil
}

func (p *projectsAPI) GetProjectName(ctx context.Context, projectID string) (string, error) {
	project, err := p.client.Projects.Get(projectID).Context(ctx).Do()
	if err != nil {
		return "", err
	}
	return project.Name, nil
}
