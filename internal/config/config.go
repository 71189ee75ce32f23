package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/mersenne/internal/stream"
	"github.com/lox/mersenne/mt64"
)

// Config represents the complete mt64 configuration file
type Config struct {
	Generator *GeneratorSettings `hcl:"generator,block"`
	Server    *ServerSettings    `hcl:"server,block"`
	Streams   []StreamConfig     `hcl:"stream,block"`
}

// GeneratorSettings controls one-shot generation
type GeneratorSettings struct {
	Seed   *uint64  `hcl:"seed,optional"`
	Key    []uint64 `hcl:"key,optional"`
	Count  int      `hcl:"count,optional"`
	Skip   int      `hcl:"skip,optional"`
	Format string   `hcl:"format,optional"`
}

// ServerSettings contains websocket service configuration
type ServerSettings struct {
	Address     string `hcl:"address,optional"`
	Port        int    `hcl:"port,optional"`
	LogLevel    string `hcl:"log_level,optional"`
	IdleTimeout int    `hcl:"idle_timeout,optional"` // seconds
	MaxBatch    int    `hcl:"max_batch,optional"`
}

// StreamConfig defines one named independent stream
type StreamConfig struct {
	Name  string   `hcl:"name,label"`
	Seed  uint64   `hcl:"seed,optional"`
	Key   []uint64 `hcl:"key,optional"`
	Skip  int      `hcl:"skip,optional"`
	Count int      `hcl:"count,optional"`
}

const (
	defaultCount       = 10
	defaultAddress     = "localhost"
	defaultPort        = 8080
	defaultLogLevel    = "info"
	defaultIdleTimeout = 60
	defaultMaxBatch    = 10000
	defaultStreamCount = 1000
)

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig loads configuration from an HCL file. A missing file yields the
// defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Generator == nil {
		c.Generator = &GeneratorSettings{}
	}
	if c.Generator.Seed == nil && len(c.Generator.Key) == 0 {
		seed := mt64.DefaultSeed
		c.Generator.Seed = &seed
	}
	if c.Generator.Count == 0 {
		c.Generator.Count = defaultCount
	}
	if c.Generator.Format == "" {
		c.Generator.Format = string(stream.FormatDec)
	}

	if c.Server == nil {
		c.Server = &ServerSettings{}
	}
	if c.Server.Address == "" {
		c.Server.Address = defaultAddress
	}
	if c.Server.Port == 0 {
		c.Server.Port = defaultPort
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = defaultLogLevel
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = defaultIdleTimeout
	}
	if c.Server.MaxBatch == 0 {
		c.Server.MaxBatch = defaultMaxBatch
	}

	for i := range c.Streams {
		if c.Streams[i].Count == 0 {
			c.Streams[i].Count = defaultStreamCount
		}
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Generator.Count < 0 {
		return fmt.Errorf("generator: count must not be negative")
	}
	if c.Generator.Skip < 0 {
		return fmt.Errorf("generator: skip must not be negative")
	}
	if _, err := stream.ParseFormat(c.Generator.Format); err != nil {
		return fmt.Errorf("generator: %w", err)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("server: idle_timeout must not be negative")
	}
	if c.Server.MaxBatch < 1 {
		return fmt.Errorf("server: max_batch must be positive")
	}

	names := make(map[string]bool)
	for _, s := range c.Streams {
		if names[s.Name] {
			return fmt.Errorf("stream %s: duplicate name", s.Name)
		}
		names[s.Name] = true
		if s.Count < 0 || s.Skip < 0 {
			return fmt.Errorf("stream %s: count and skip must not be negative", s.Name)
		}
	}

	return nil
}

// ServerAddress returns the full server address
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

// IdleTimeout returns the server idle timeout as a duration
func (c *Config) IdleTimeout() time.Duration {
	return time.Duration(c.Server.IdleTimeout) * time.Second
}

// GeneratorJob converts the generator block into a stream job
func (c *Config) GeneratorJob() stream.Job {
	job := stream.Job{
		Name:  "generator",
		Key:   c.Generator.Key,
		Skip:  c.Generator.Skip,
		Count: c.Generator.Count,
	}
	if c.Generator.Seed != nil {
		job.Seed = *c.Generator.Seed
	}
	return job
}

// StreamJobs converts the stream blocks into jobs, in file order
func (c *Config) StreamJobs() []stream.Job {
	jobs := make([]stream.Job, 0, len(c.Streams))
	for _, s := range c.Streams {
		jobs = append(jobs, stream.Job{
			Name:  s.Name,
			Seed:  s.Seed,
			Key:   s.Key,
			Skip:  s.Skip,
			Count: s.Count,
		})
	}
	return jobs
}
