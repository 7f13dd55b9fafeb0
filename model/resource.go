package model

// AccountInfo represents cloud account/project identity
type AccountInfo struct {
	Provider    string
	AccountID   string
	AccountName string
}

// CredentialBundle carries the fields of a GCP service account key.
// It is built per request and must never be logged or persisted.
type CredentialBundle struct {
	ClientEmail  string
	PrivateKey   string
	PrivateKeyID string
	ClientID     string
	ProjectID    string
}

// InstanceRecommendation is a machine-type right-sizing suggestion for one VM
type InstanceRecommendation struct {
	InstanceID             string
	Zone                   string
	CurrentMachineType     string
	RecommendedMachineType string
	CurrentCost            float64 // USD/hour
	RecommendedCost        float64 // USD/hour
	// PotentialMonthlySavings may be negative when the recommended type costs more
	PotentialMonthlySavings float64
	RecommendationReason    string
}

// BucketSummary is the storage-tier advice for one S3 bucket
type BucketSummary struct {
	Name             string
	FormattedSize    string
	StorageClass     string
	Region           string
	Recommendation   string
	EstimatedSavings string
}

// ProviderAdvisoryResult holds the advisory output of a single provider
type ProviderAdvisoryResult struct {
	Provider         string
	AccountID        string
	Recommendations  []InstanceRecommendation
	Buckets          []BucketSummary
	MonthToDateSpend string
	Error            error
}
