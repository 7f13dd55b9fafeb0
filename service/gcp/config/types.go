package gcpconfig

import (
	"context"

	"github.com/elC0mpa/cloud-advisor/model"
	"golang.org/x/oauth2/google"
)

type credentialsFromJSON func(ctx context.Context, jsonData []byte, scopes ...string) (*google.Credentials, error)

type service struct {
	bundle   model.CredentialBundle
	fromJSON credentialsFromJSON
}

type ConfigService interface {
	GetCredentials(ctx context.Context) (*google.Credentials, error)
	GetProjectID() string
}

// serviceAccountKey mirrors the JSON key document issued for a service account
type serviceAccountKey struct {
	Type                    string `json:"type"`
	ProjectID               string `json:"project_id"`
	PrivateKeyID            string `json:"private_key_id"`
	PrivateKey              string `json:"private_key"`
	ClientEmail             string `json:"client_email"`
	ClientID                string `json:"client_id"`
	AuthURI                 string `json:"auth_uri"`
	TokenURI                string `json:"token_uri"`
	AuthProviderX509CertURL string `json:"auth_provider_x509_cert_url"`
	ClientX509CertURL       string `json:"client_x509_cert_url"`
}
