package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// runConfig is the YAML run file accepted by "lloyd run --config".
// Flags given on the command line take precedence.
type runConfig struct {
	K           int          `yaml:"k"`
	Iterations  int          `yaml:"iterations"`
	Seed        *uint64      `yaml:"seed,omitempty"`
	Integral    bool         `yaml:"integral"`
	EmptyPolicy string       `yaml:"empty_policy"`
	Inputs      []string     `yaml:"inputs"`
	S3          *s3Config    `yaml:"s3,omitempty"`
	MinIO       *minioConfig `yaml:"minio,omitempty"`
}

type s3Config struct {
	Region  string `yaml:"region"`
	Profile string `yaml:"profile"`
}

type minioConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Secure    bool   `yaml:"secure"`
}

func defaultRunConfig() runConfig {
	return runConfig{K: 2, Iterations: 10}
}

func loadRunConfig(path string) (runConfig, error) {
	cfg := defaultRunConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}
