package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App         App     `mapstructure:"app"`
	DatabaseURL string  `mapstructure:"database_url"`
	Tracker     Tracker `mapstructure:"tracker"`
	AI          AI      `mapstructure:"ai"`
	Retry       Retry   `mapstructure:"retry"`
}

type App struct {
	Port            string        `mapstructure:"port"`
	LogLevel        string        `mapstructure:"log_level"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MigrationDir    string        `mapstructure:"migration_dir"`
}

type Tracker struct {
	Token    string `mapstructure:"token"`
	PageSize int    `mapstructure:"page_size"`
}

type AI struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`

	// Inter-item delays inside one evaluation batch, per axis.
	QualityDelay     time.Duration `mapstructure:"quality_delay"`
	ConsistencyDelay time.Duration `mapstructure:"consistency_delay"`
}

type Retry struct {
	MaxAttempts int           `mapstructure:"max_attempts"`
	Backoff     string        `mapstructure:"backoff"`
	Base        time.Duration `mapstructure:"base"`
	Factor      float64       `mapstructure:"factor"`
	Max         time.Duration `mapstructure:"max"`
	Jitter      bool          `mapstructure:"jitter"`
}

// Load reads the YAML config at path. Any key can be overridden through
// the environment with the SPRINTPULSE_ prefix, e.g. SPRINTPULSE_TRACKER_TOKEN.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetEnvPrefix("SPRINTPULSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app.port", "8080")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.shutdown_timeout", 10*time.Second)
	v.SetDefault("app.migration_dir", "migrations")
	v.SetDefault("tracker.page_size", 100)
	v.SetDefault("ai.base_url", "https://api.openai.com")
	v.SetDefault("ai.model", "gpt-4o-mini")
	v.SetDefault("ai.quality_delay", time.Second)
	v.SetDefault("ai.consistency_delay", 2*time.Second)
	v.SetDefault("retry.max_attempts", 3)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("database_url is required")
	}
	if c.Tracker.Token == "" {
		return fmt.Errorf("tracker.token is required")
	}
	if c.Tracker.PageSize <= 0 {
		return fmt.Errorf("tracker.page_size must be positive")
	}
	if c.AI.APIKey == "" {
		return fmt.Errorf("ai.api_key is required")
	}
	return nil
}
