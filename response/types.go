package response

// AccountInfo represents cloud account/project identity
type AccountInfo struct {
	Provider    string `json:"provider"`
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
}

// InstanceRecommendation represents a machine-type right-sizing suggestion
type InstanceRecommendation struct {
	InstanceID              string  `json:"instance_id"`
	Zone                    string  `json:"zone"`
	CurrentMachineType      string  `json:"current_machine_type"`
	RecommendedMachineType  string  `json:"recommended_machine_type"`
	CurrentCost             float64 `json:"current_cost_per_hour"`
	RecommendedCost         float64 `json:"recommended_cost_per_hour"`
	PotentialMonthlySavings float64 `json:"potential_monthly_savings"`
	RecommendationReason    string  `json:"recommendation_reason"`
}

// RecommendationReport lists the recommendations of a GCP project
type RecommendationReport struct {
	Provider         string                   `json:"provider"`
	ProjectID        string                   `json:"project_id"`
	Recommendations  []InstanceRecommendation `json:"recommendations"`
	NetMonthlySaving float64                  `json:"net_monthly_savings"`
	Currency         string                   `json:"currency"`
}

// BucketSummary represents the storage-tier advice for one bucket
type BucketSummary struct {
	Name             string `json:"name"`
	Size             string `json:"size"`
	StorageClass     string `json:"storage_class"`
	Region           string `json:"region"`
	Recommendation   string `json:"recommendation"`
	EstimatedSavings string `json:"estimated_monthly_savings"`
}

// BucketReport lists the bucket summaries of an AWS account
type BucketReport struct {
	Provider              string          `json:"provider"`
	AccountID             string          `json:"account_id"`
	Buckets               []BucketSummary `json:"buckets"`
	TotalEstimatedSavings float64         `json:"total_estimated_monthly_savings"`
	MonthToDateSpend      string          `json:"month_to_date_spend,omitempty"`
	Currency              string          `json:"currency"`
}

// ProviderSavingsSummary represents the savings summary for a single provider
type ProviderSavingsSummary struct {
	Provider                string  `json:"provider"`
	AccountID               string  `json:"account_id"`
	Findings                int     `json:"findings"`
	EstimatedMonthlySavings float64 `json:"estimated_monthly_savings"`
	Error                   string  `json:"error,omitempty"`
}

// MultiCloudSavingsSummary represents savings across all providers
type MultiCloudSavingsSummary struct {
	Providers []ProviderSavingsSummary `json:"providers"`
	Total     float64                  `json:"total"`
	Currency  string                   `json:"currency"`
	GCP       *RecommendationReport    `json:"gcp,omitempty"`
	AWS       *BucketReport            `json:"aws,omitempty"`
}
