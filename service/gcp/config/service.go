package gcpconfig

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/elC0mpa/cloud-advisor/model"
	"golang.org/x/oauth2/google"
)

const (
	authURI           = "https://accounts.google.com/o/oauth2/auth"
	tokenURI          = "https://oauth2.googleapis.com/token"
	authProviderCerts = "https://www.googleapis.com/oauth2/v1/certs"
	clientCertsPrefix = "https://www.googleapis.com/robot/v1/metadata/x509/"

	cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"
)

var (
	ErrIncompleteCredentials = errors.New("incomplete service account credentials")
	ErrInvalidPrivateKey     = errors.New("private key is not PEM encoded")
)

func NewService(bundle model.CredentialBundle) *service {
	return &service{
		bundle:   bundle,
		fromJSON: google.CredentialsFromJSON,
	}
}

// GetCredentials builds signed service account credentials from the bundle
func (s *service) GetCredentials(ctx context.Context) (*google.Credentials, error) {
	doc, err := BuildServiceAccountJSON(s.bundle)
	if err != nil {
		return nil, err
	}

	// the key is parsed lazily on first token fetch, so check it here
	if block, _ := pem.Decode([]byte(normalizeKey(s.bundle.PrivateKey))); block == nil {
		return nil, fmt.Errorf("failed to build credentials for %s: %w", s.bundle.ClientEmail, ErrInvalidPrivateKey)
	}

	creds, err := s.fromJSON(ctx, doc, cloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("failed to build credentials for %s: %w", s.bundle.ClientEmail, err)
	}

	return creds, nil
}

func (s *service) GetProjectID() string {
	return s.bundle.ProjectID
}

// BuildServiceAccountJSON renders the bundle as a service account key document
func BuildServiceAccountJSON(bundle model.CredentialBundle) ([]byte, error) {
	if err := validate(bundle); err != nil {
		return nil, err
	}

	key := serviceAccountKey{
		Type:                    "service_account",
		ProjectID:               bundle.ProjectID,
		PrivateKeyID:            bundle.PrivateKeyID,
		PrivateKey:              normalizeKey(bundle.PrivateKey),
		ClientEmail:             bundle.ClientEmail,
		ClientID:                bundle.ClientID,
		AuthURI:                 authURI,
		TokenURI:                tokenURI,
		AuthProviderX509CertURL: authProviderCerts,
		ClientX509CertURL:       clientCertsPrefix + strings.ReplaceAll(bundle.ClientEmail, "@", "%40"),
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(key); err != nil {
		return nil, fmt.Errorf("failed to encode service account key: %w", err)
	}

	return buf.Bytes(), nil
}

// normalizeKey turns escaped "\n" sequences into real newlines
func normalizeKey(privateKey string) string {
	return strings.ReplaceAll(privateKey, `\n`, "\n")
}

// LoadBundleFile reads a downloaded service account key file
func LoadBundleFile(path string) (model.CredentialBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.CredentialBundle{}, fmt.Errorf("failed to read credentials file: %w", err)
	}

	var key serviceAccountKey
	if err := json.Unmarshal(data, &key); err != nil {
		return model.CredentialBundle{}, fmt.Errorf("failed to parse credentials file %s: %w", path, err)
	}

	bundle := model.CredentialBundle{
		ClientEmail:  key.ClientEmail,
		PrivateKey:   key.PrivateKey,
		PrivateKeyID: key.PrivateKeyID,
		ClientID:     key.ClientID,
		ProjectID:    key.ProjectID,
	}

	if err := validate(bundle); err != nil {
		return model.CredentialBundle{}, fmt.Errorf("credentials file %s: %w", path, err)
	}

	return bundle, nil
}

func validate(bundle model.CredentialBundle) error {
	var missing []string
	if bundle.ClientEmail == "" {
		missing = append(missing, "client_email")
	}
	if bundle.PrivateKey == "" {
		missing = append(missing, "private_key")
	}
	if bundle.ProjectID == "" {
		missing = append(missing, "project_id")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrIncompleteCredentials, strings.Join(missing, ", "))
	}
	return nil
}
