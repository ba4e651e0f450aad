// Package config loads the assortment binary configuration.
//
// Sources are layered, later ones win:
//
//  1. built-in defaults (k=5, 30/70 split, 20% sample, info JSON logs);
//  2. an optional YAML file: $ASSORTMENT_CONFIG, else the first existing
//     entry of DefaultConfigPaths;
//  3. environment variables ASSORTMENT_<SECTION>_<KEY>, for example
//     ASSORTMENT_SELECTION_K=8 or ASSORTMENT_INPUT_PATH=scores.csv.
//
// The merged result is validated with go-playground/validator struct tags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/katalvlaran/assortment/greedy"
	"github.com/katalvlaran/assortment/logging"
	"github.com/katalvlaran/assortment/partition"
	"github.com/katalvlaran/assortment/pipeline"
)

const (
	// EnvPrefix starts every recognised environment variable.
	EnvPrefix = "ASSORTMENT_"

	// ConfigPathEnvVar overrides the config file location.
	ConfigPathEnvVar = EnvPrefix + "CONFIG"
)

// DefaultConfigPaths are searched in order; the first existing file is used.
var DefaultConfigPaths = []string{
	"assortment.yaml",
	"assortment.yml",
	"/etc/assortment/config.yaml",
}

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the full binary configuration.
type Config struct {
	Input     InputConfig     `koanf:"input"`
	Selection SelectionConfig `koanf:"selection"`
	Sampling  SamplingConfig  `koanf:"sampling"`
	Pipeline  PipelineConfig  `koanf:"pipeline"`
	Logging   LoggingConfig   `koanf:"logging"`
	Metrics   MetricsConfig   `koanf:"metrics"`
}

// InputConfig locates the cached score matrix (.csv or .json).
// CustomerRows marks a file stored one customer per line.
type InputConfig struct {
	Path         string `koanf:"path" validate:"required"`
	CustomerRows bool   `koanf:"customer_rows"`
}

// SelectionConfig parameterises the greedy selectors. FinalAlgorithm picks
// whose selection the run reports as its answer.
type SelectionConfig struct {
	K               int    `koanf:"k" validate:"gte=1"`
	ExistingPercent int    `koanf:"existing_percent" validate:"gte=0,lte=100"`
	Workers         int    `koanf:"workers" validate:"gte=1"`
	Lazy            bool   `koanf:"lazy"`
	FinalAlgorithm  string `koanf:"final_algorithm" validate:"oneof=ig incremental spg single-product single_product"`
}

// SamplingConfig drives the sampled pre-filter stage.
type SamplingConfig struct {
	Ratio float64 `koanf:"ratio" validate:"gt=0,lte=1"`
	Seed  int64   `koanf:"seed"`
}

// PipelineConfig holds the refinement failure policy. SeedFilter adds a
// refinement stage scoring only the sampled pre-filter candidates;
// ChainRefiners feeds each refiner its predecessor's partition.
type PipelineConfig struct {
	Fallback      string `koanf:"fallback" validate:"oneof=previous abort"`
	SeedFilter    bool   `koanf:"seed_filter"`
	ChainRefiners bool   `koanf:"chain_refiners"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// MetricsConfig enables the Prometheus textfile written after a run.
// An empty Textfile disables metrics.
type MetricsConfig struct {
	Textfile string `koanf:"textfile"`
}

func defaultConfig() *Config {
	return &Config{
		Selection: SelectionConfig{
			K:               pipeline.DefaultK,
			ExistingPercent: partition.DefaultExistingPercent,
			Workers:         1,
			FinalAlgorithm:  greedy.SingleProductGreedy.String(),
		},
		Sampling: SamplingConfig{
			Ratio: pipeline.DefaultSampleRatio,
		},
		Pipeline: PipelineConfig{
			Fallback: pipeline.FallbackPrevious.String(),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load merges defaults, the config file found by findConfigFile and the
// environment, then validates the result.
func Load() (*Config, error) {
	return LoadFile(findConfigFile())
}

// LoadFile is Load with an explicit YAML path; "" skips the file layer.
func LoadFile(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// findConfigFile returns $ASSORTMENT_CONFIG if it exists, else the first
// existing DefaultConfigPaths entry, else "".
func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// envTransformFunc maps ASSORTMENT_SELECTION_EXISTING_PERCENT to
// selection.existing_percent. Variables without a section (ASSORTMENT_CONFIG)
// are dropped.
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	section, field, ok := strings.Cut(key, "_")
	if !ok || section == "" || field == "" {
		return ""
	}

	return section + "." + field
}

// Validate checks the struct tags.
func (c *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, len(verrs))
			for i, fe := range verrs {
				msgs[i] = fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag())
			}
			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// ToPipeline converts the selection, sampling and fallback sections.
func (c *Config) ToPipeline() (pipeline.Config, error) {
	fb, err := pipeline.ParseFallback(c.Pipeline.Fallback)
	if err != nil {
		return pipeline.Config{}, err
	}
	final, err := greedy.ParseAlgorithm(c.Selection.FinalAlgorithm)
	if err != nil {
		return pipeline.Config{}, err
	}

	return pipeline.Config{
		K:               c.Selection.K,
		ExistingPercent: c.Selection.ExistingPercent,
		SampleRatio:     c.Sampling.Ratio,
		Seed:            c.Sampling.Seed,
		Workers:         c.Selection.Workers,
		Lazy:            c.Selection.Lazy,
		Fallback:        fb,
		ChainRefiners:   c.Pipeline.ChainRefiners,
		Final:           final,
	}, nil
}

// ToLogging converts the logging section; output goes to stderr.
func (c *Config) ToLogging() logging.Config {
	return logging.Config{
		Level:     c.Logging.Level,
		Format:    c.Logging.Format,
		Caller:    c.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	}
}
