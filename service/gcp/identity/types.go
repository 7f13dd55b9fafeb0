package gcpidentity

import (
	"context"

	"github.com/elC0mpa/cloud-advisor/model"
	"google.golang.org/api/cloudresourcemanager/v1"
)

type service struct {
	projectID string
	projects  projectGetter
}

type IdentityService interface {
	GetAccountInfo(ctx context.Context) (*model.AccountInfo, error)
}

type projectGetter interface {
	GetProjectName(ctx context.Context, projectID string) (string, error)
}

type projectsAPI struct {
	client *cloudresourcemanager.Service
}
