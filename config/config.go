// Package config provides configuration loading and management for the
// footballgraph pipeline.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete footballgraph configuration.
type Config struct {
	NATS     NATSConfig     `yaml:"nats"`
	Database DatabaseConfig `yaml:"database"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Graph    GraphConfig    `yaml:"graph"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// NATSConfig configures the connection to the change log.
type NATSConfig struct {
	// URL is the NATS server URL.
	URL string `yaml:"url"`
	// Stream is the JetStream stream carrying change messages.
	Stream string `yaml:"stream"`
	// SubjectPrefix prefixes per-table subjects (e.g. cdc.team).
	SubjectPrefix string `yaml:"subject_prefix"`
	// QuarantineSubject receives batches whose commit retries ran out.
	QuarantineSubject string `yaml:"quarantine_subject"`
	// VersionBucket is the KV bucket persisting the version chain.
	VersionBucket string `yaml:"version_bucket"`
}

// DatabaseConfig configures the optional relational-source lookup.
type DatabaseConfig struct {
	// URL is the Postgres connection string. Empty disables reference
	// existence checks.
	URL string `yaml:"url"`
}

// PipelineConfig configures the consumer and validation behavior.
type PipelineConfig struct {
	// Partitions lists the source tables to consume, one consumer task
	// per table partition.
	Partitions []string `yaml:"partitions"`
	// BatchSize is the buffered-event count that triggers a commit.
	BatchSize int `yaml:"batch_size"`
	// FailFast stops validation at the first failing stage per entity.
	// Nil means unset; use FailFastEnabled.
	FailFast *bool `yaml:"fail_fast"`
	// ParallelValidation runs independent validation stages concurrently.
	// Nil means unset; use ParallelValidationEnabled.
	ParallelValidation *bool `yaml:"parallel_validation"`
	// MaxRetries bounds commit retries before a batch is quarantined.
	MaxRetries int `yaml:"max_retries"`
	// RetryDelay is the pause between commit retries.
	RetryDelay time.Duration `yaml:"retry_delay"`
	// TrackProvenance attaches PROV metadata to committed versions.
	// Nil means unset; use TrackProvenanceEnabled.
	TrackProvenance *bool `yaml:"track_provenance"`
	// VersionControl grows the version chain on commit; when false,
	// deltas apply to the materialized graph without version records.
	// Nil means unset; use VersionControlEnabled.
	VersionControl *bool `yaml:"version_control"`
	// Author is recorded on committed versions.
	Author string `yaml:"author"`
}

// The pipeline flags are tri-state so a config file can turn them off:
// a plain bool cannot distinguish `fail_fast: false` from an absent key
// when layered configs are merged. Unset means enabled.

// FailFastEnabled reports whether validation stops at the first failing
// stage per entity.
func (p PipelineConfig) FailFastEnabled() bool {
	return p.FailFast == nil || *p.FailFast
}

// ParallelValidationEnabled reports whether independent validation stages
// run concurrently.
func (p PipelineConfig) ParallelValidationEnabled() bool {
	return p.ParallelValidation == nil || *p.ParallelValidation
}

// TrackProvenanceEnabled reports whether committed versions carry PROV
// metadata.
func (p PipelineConfig) TrackProvenanceEnabled() bool {
	return p.TrackProvenance == nil || *p.TrackProvenance
}

// VersionControlEnabled reports whether commits grow the version chain.
func (p PipelineConfig) VersionControlEnabled() bool {
	return p.VersionControl == nil || *p.VersionControl
}

func boolPtr(v bool) *bool {
	return &v
}

// GraphConfig configures IRI minting and the mapping registry.
type GraphConfig struct {
	// Namespace is the base IRI for entity instance IRIs.
	Namespace string `yaml:"namespace"`
	// MappingDir optionally overlays YAML mapping files over the
	// built-in registry.
	MappingDir string `yaml:"mapping_dir"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	// Addr is the listen address for /metrics and /health.
	Addr string `yaml:"addr"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		NATS: NATSConfig{
			URL:               "nats://localhost:4222",
			Stream:            "CDC",
			SubjectPrefix:     "cdc",
			QuarantineSubject: "cdc.quarantine",
			VersionBucket:     "FOOTBALLGRAPH_VERSIONS",
		},
		Pipeline: PipelineConfig{
			Partitions:         []string{"country", "venue", "league", "team", "season", "fixture", "player"},
			BatchSize:          1000,
			FailFast:           boolPtr(true),
			ParallelValidation: boolPtr(true),
			MaxRetries:         3,
			RetryDelay:         5 * time.Second,
			TrackProvenance:    boolPtr(true),
			VersionControl:     boolPtr(true),
			Author:             "cdc-consumer",
		},
		Graph: GraphConfig{
			Namespace: "http://example.org/football/",
		},
		Metrics: MetricsConfig{
			Addr: ":9102",
		},
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.NATS.URL == "" {
		return fmt.Errorf("nats.url is required")
	}
	if c.NATS.Stream == "" {
		return fmt.Errorf("nats.stream is required")
	}
	if len(c.Pipeline.Partitions) == 0 {
		return fmt.Errorf("pipeline.partitions must not be empty")
	}
	if c.Pipeline.BatchSize <= 0 {
		return fmt.Errorf("pipeline.batch_size must be positive")
	}
	if c.Pipeline.MaxRetries < 0 {
		return fmt.Errorf("pipeline.max_retries must not be negative")
	}
	if c.Pipeline.RetryDelay < 0 {
		return fmt.Errorf("pipeline.retry_delay must not be negative")
	}
	if c.Graph.Namespace == "" {
		return fmt.Errorf("graph.namespace is required")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file over the defaults.
func LoadFromFile(path string) (*Config, error) {
	overlay, err := parseFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	config.Merge(overlay)
	return config, nil
}

// parseFile reads a YAML file into a bare Config with no defaults applied,
// so Merge can tell set fields from absent ones.
func parseFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for
// non-zero values).
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.NATS.URL != "" {
		c.NATS.URL = other.NATS.URL
	}
	if other.NATS.Stream != "" {
		c.NATS.Stream = other.NATS.Stream
	}
	if other.NATS.SubjectPrefix != "" {
		c.NATS.SubjectPrefix = other.NATS.SubjectPrefix
	}
	if other.NATS.QuarantineSubject != "" {
		c.NATS.QuarantineSubject = other.NATS.QuarantineSubject
	}
	if other.NATS.VersionBucket != "" {
		c.NATS.VersionBucket = other.NATS.VersionBucket
	}
	if other.Database.URL != "" {
		c.Database.URL = other.Database.URL
	}
	if len(other.Pipeline.Partitions) > 0 {
		c.Pipeline.Partitions = other.Pipeline.Partitions
	}
	if other.Pipeline.BatchSize != 0 {
		c.Pipeline.BatchSize = other.Pipeline.BatchSize
	}
	if other.Pipeline.FailFast != nil {
		c.Pipeline.FailFast = other.Pipeline.FailFast
	}
	if other.Pipeline.ParallelValidation != nil {
		c.Pipeline.ParallelValidation = other.Pipeline.ParallelValidation
	}
	if other.Pipeline.TrackProvenance != nil {
		c.Pipeline.TrackProvenance = other.Pipeline.TrackProvenance
	}
	if other.Pipeline.VersionControl != nil {
		c.Pipeline.VersionControl = other.Pipeline.VersionControl
	}
	if other.Pipeline.MaxRetries != 0 {
		c.Pipeline.MaxRetries = other.Pipeline.MaxRetries
	}
	if other.Pipeline.RetryDelay != 0 {
		c.Pipeline.RetryDelay = other.Pipeline.RetryDelay
	}
	if other.Pipeline.Author != "" {
		c.Pipeline.Author = other.Pipeline.Author
	}
	if other.Graph.Namespace != "" {
		c.Graph.Namespace = other.Graph.Namespace
	}
	if other.Graph.MappingDir != "" {
		c.Graph.MappingDir = other.Graph.MappingDir
	}
	if other.Metrics.Addr != "" {
		c.Metrics.Addr = other.Metrics.Addr
	}
}
