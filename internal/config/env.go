package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// DatabaseEnv holds the connection strings for the four target databases.
// Only the PHD URL is unconditionally required; platform URLs may be empty
// when the corresponding generation step is skipped.
type DatabaseEnv struct {
	PHDURL       string `envconfig:"PHD_DATABASE_URL"`
	SRTURL       string `envconfig:"SRT_DATABASE_URL"`
	FeatherURL   string `envconfig:"FEATHER_DATABASE_URL"`
	FairtableURL string `envconfig:"FAIRTABLE_DATABASE_URL"`
}

// StorageEnv configures the S3 bucket used for generated artifacts.
type StorageEnv struct {
	S3Bucket string `envconfig:"S3_BUCKET" default:"peregrine-human-data"`
	S3Prefix string `envconfig:"S3_PREFIX" default:"profile-images"`
	S3Region string `envconfig:"S3_REGION" default:"us-east-1"`
}

// ImageEnv configures the external image-generation API.
type ImageEnv struct {
	FalKey     string `envconfig:"FAL_KEY"`
	FalBaseURL string `envconfig:"FAL_BASE_URL" default:"https://fal.run/fal-ai/flux-2-dev"`
}

// Env is the full process environment for the generation tools.
type Env struct {
	DatabaseEnv
	StorageEnv
	ImageEnv
	RandomSeed int64 `envconfig:"RANDOM_SEED" default:"42"`
	BatchSize  int   `envconfig:"BATCH_SIZE" default:"5000"`
}

// LoadEnv reads configuration from environment variables.
func LoadEnv() (*Env, error) {
	var env Env
	if err := envconfig.Process("", &env); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}
	return &env, nil
}
