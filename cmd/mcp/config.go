package main

import (
	"os"
	"strconv"

	awss3 "github.com/elC0mpa/cloud-advisor/service/aws/s3"
)

// Config holds environment-based configuration for all cloud providers
type Config struct {
	// AWS configuration
	AWSRegion  string
	AWSProfile string

	// GCP configuration
	GCPCredentialsFile string

	PricingFile string
	Concurrency int
	LogLevel    string
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		AWSRegion:          getEnvOrDefault("AWS_REGION", "us-east-1"),
		AWSProfile:         os.Getenv("AWS_PROFILE"),
		GCPCredentialsFile: os.Getenv("GCP_CREDENTIALS_FILE"),
		PricingFile:        os.Getenv("ADVISOR_PRICING_FILE"),
		Concurrency:        getEnvIntOrDefault("ADVISOR_CONCURRENCY", awss3.DefaultConcurrency),
		LogLevel:           getEnvOrDefault("ADVISOR_LOG_LEVEL", "info"),
	}
}

// HasGCP returns true if a GCP service account key is configured
func (c *Config) HasGCP() bool {
	return c.GCPCredentialsFile != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value < 1 {
		return defaultValue
	}
	return value
}
