package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	apperrors "github.com/cloudsecure-ai/cloudsecure/internal/errors"
)

type Config struct {
	Groq           GroqConfig     `mapstructure:"groq"     validate:"required"`
	AWS            AWSConfig      `mapstructure:"aws"`
	Pipeline       PipelineConfig `mapstructure:"pipeline" validate:"required"`
	Report         ReportConfig   `mapstructure:"report"   validate:"required"`
	ServiceVersion string
}

// GroqConfig configures the LLM classification backend. The API key may
// come from the GROQ_API_KEY environment variable instead of the file.
type GroqConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	BaseURL     string  `mapstructure:"base_url"    validate:"required,url"`
	Model       string  `mapstructure:"model"       validate:"required"`
	Temperature float64 `mapstructure:"temperature" validate:"gte=0,lte=2"`
	MaxTokens   int     `mapstructure:"max_tokens"  validate:"required,gt=0"`
	TimeoutSec  int     `mapstructure:"timeout_sec" validate:"required,gt=0"`
}

// AWSConfig configures the remote CloudTrail source used by fetchlogs.
type AWSConfig struct {
	Region        string `mapstructure:"region"         validate:"required"`
	LookbackHours int    `mapstructure:"lookback_hours" validate:"required,gt=0"`
	MaxEvents     int    `mapstructure:"max_events"     validate:"required,gt=0,lte=50"`
}

// PipelineConfig controls classification concurrency and backend pacing.
// Workers=1 is the sequential baseline; higher values enable the bounded
// pool. Rate limiting is policy, so it lives here rather than in code.
type PipelineConfig struct {
	Workers    int     `mapstructure:"workers"      validate:"required,gte=1,lte=32"`
	QueueDepth int     `mapstructure:"queue_depth"  validate:"required,gte=1"`
	RatePerSec float64 `mapstructure:"rate_per_sec" validate:"required,gt=0"`
	Burst      int     `mapstructure:"burst"        validate:"required,gte=1"`
}

type ReportConfig struct {
	InputPath  string `mapstructure:"input_path"  validate:"required"`
	OutputPath string `mapstructure:"output_path" validate:"required"`
}

func Load(path string) (*Config, error) {
	vip := viper.New()
	if path != "" {
		vip.SetConfigFile(path)
	} else {
		vip.SetConfigName("config")
		vip.AddConfigPath("./configs")
		vip.AddConfigPath(".")
	}

	vip.SetConfigType("yaml")
	vip.AutomaticEnv()
	vip.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Empty default registers the key so GROQ_API_KEY is picked up by
	// AutomaticEnv even without a config file entry.
	vip.SetDefault("groq.api_key", "")
	vip.SetDefault("groq.base_url", "https://api.groq.com/openai/v1")
	vip.SetDefault("groq.model", "llama-3.3-70b-versatile")
	vip.SetDefault("groq.temperature", 0.2)
	vip.SetDefault("groq.max_tokens", 500)
	vip.SetDefault("groq.timeout_sec", 30)
	vip.SetDefault("aws.region", "us-east-1")
	vip.SetDefault("aws.lookback_hours", 72)
	vip.SetDefault("aws.max_events", 15)
	vip.SetDefault("pipeline.workers", 1)
	vip.SetDefault("pipeline.queue_depth", 16)
	vip.SetDefault("pipeline.rate_per_sec", 2)
	vip.SetDefault("pipeline.burst", 1)
	vip.SetDefault("report.input_path", "sample_logs/cloudtrail_events.json")
	vip.SetDefault("report.output_path", "reports/security_report.html")

	if err := vip.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("%w: failed to read config file: %v", apperrors.ErrInvalidConfig, err)
		}
	}

	var cfg Config
	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal config: %v", apperrors.ErrInvalidConfig, err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidConfig, err)
	}

	cfg.ServiceVersion = getenv("CLOUDSECURE_VERSION", "dev")

	return &cfg, nil
}

// RequireCredentials reports whether the classification backend can be
// called. Kept out of struct validation so fetchlogs can run without a key.
func (c *Config) RequireCredentials() error {
	if c.Groq.APIKey == "" {
		return apperrors.ErrMissingCredentials
	}
	return nil
}

// getenv returns an environment variable or a default value.
func getenv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
