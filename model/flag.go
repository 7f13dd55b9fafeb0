package model

type Flags struct {
	Provider string
	Output   string
	Chart    bool
	LogLevel string

	// Pricing overrides (YAML)
	PricingFile string

	// AWS-specific flags
	Region      string
	Profile     string
	Concurrency int
	Spend       bool

	// GCP-specific flags
	CredentialsFile string
	Project         string
}
