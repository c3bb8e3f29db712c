package config

import (
	"log/slog"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server   ServerConfig
	OpenAI   OpenAIConfig
	Database DatabaseConfig
	Analysis AnalysisConfig
}

type ServerConfig struct {
	Port         string        `envconfig:"SERVER_PORT" default:"8000"`
	Host         string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"120s"`
	WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"120s"`
	CORSOrigins  []string      `envconfig:"SERVER_CORS_ORIGINS" default:"http://localhost:3000"`
}

type OpenAIConfig struct {
	APIKey      string `envconfig:"OPENAI_API_KEY" required:"true"`
	APIEndpoint string `envconfig:"OPENAI_ENDPOINT" default:"https://api.openai.com/v1"`

	// Ordered model tiers for the fallback chain
	PrimaryModel   string `envconfig:"OPENAI_PRIMARY_MODEL" default:"gpt-4-turbo-preview"`
	SecondaryModel string `envconfig:"OPENAI_SECONDARY_MODEL" default:"gpt-4o-mini"`
	TertiaryModel  string `envconfig:"OPENAI_TERTIARY_MODEL" default:"gpt-3.5-turbo-1106"`

	AttemptsPerTier int           `envconfig:"OPENAI_ATTEMPTS_PER_TIER" default:"2"`
	RetryDelay      time.Duration `envconfig:"OPENAI_RETRY_DELAY" default:"500ms"`
	RequestTimeout  time.Duration `envconfig:"OPENAI_REQUEST_TIMEOUT" default:"60s"`
	MaxTokens       int64         `envconfig:"OPENAI_MAX_TOKENS" default:"2000"`
	Temperature     float64       `envconfig:"OPENAI_TEMPERATURE" default:"0.3"`
}

// Tiers returns the fallback chain in degrade order, skipping unset entries.
func (c OpenAIConfig) Tiers() []string {
	var tiers []string
	for _, m := range []string{c.PrimaryModel, c.SecondaryModel, c.TertiaryModel} {
		if m != "" {
			tiers = append(tiers, m)
		}
	}
	return tiers
}

type DatabaseConfig struct {
	Path string `envconfig:"DATABASE_PATH" default:"database/crm_analytics.db"`
}

type AnalysisConfig struct {
	// Row cap appended to SQL that carries no LIMIT of its own
	RowLimit int `envconfig:"ANALYSIS_ROW_LIMIT" default:"1000"`

	// Row cap for each visualization query
	ChartRowLimit int `envconfig:"ANALYSIS_CHART_ROW_LIMIT" default:"50"`

	// Maximum number of charts per response
	ChartLimit int `envconfig:"ANALYSIS_CHART_LIMIT" default:"5"`

	// Rows handed to the text-summary formatting call
	SummaryRowLimit int `envconfig:"ANALYSIS_SUMMARY_ROW_LIMIT" default:"10"`

	// How long a session's last result stays convertible
	SessionTTL time.Duration `envconfig:"ANALYSIS_SESSION_TTL" default:"30m"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}
	slog.Info("configuration loaded successfully")
	return &cfg, nil
}
