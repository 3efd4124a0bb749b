package config

import "time"

// LoaderConfig tunes HTTP retrieval of component definitions.
type LoaderConfig struct {
	Timeout          time.Duration `koanf:"timeout"             validate:"gt=0"`
	RetryCount       int           `koanf:"retry_count"         validate:"gte=0"`
	RetryWaitTime    time.Duration `koanf:"retry_wait_time"     validate:"gte=0"`
	RetryMaxWaitTime time.Duration `koanf:"retry_max_wait_time" validate:"gte=0"`
	UserAgent        string        `koanf:"user_agent"          validate:"required"`
	MaxResponseBytes int64         `koanf:"max_response_bytes"  validate:"gte=0"`
}

// EvaluatorConfig tunes the branch-condition evaluator.
type EvaluatorConfig struct {
	CostLimit uint64 `koanf:"cost_limit" validate:"gt=0"`
	CacheSize int64  `koanf:"cache_size" validate:"gt=0"`
}

// LogConfig selects the SDK's logging behavior.
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	JSON   bool   `koanf:"json"`
	Source bool   `koanf:"source"`
}

// Config is the SDK's runtime configuration.
type Config struct {
	Loader    LoaderConfig    `koanf:"loader"`
	Evaluator EvaluatorConfig `koanf:"evaluator"`
	Log       LogConfig       `koanf:"log"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Loader: LoaderConfig{
			Timeout:          30 * time.Second,
			RetryCount:       3,
			RetryWaitTime:    100 * time.Millisecond,
			RetryMaxWaitTime: 2 * time.Second,
			UserAgent:        "pipewright",
			MaxResponseBytes: 4 << 20,
		},
		Evaluator: EvaluatorConfig{
			CostLimit: 1000,
			CacheSize: 1 << 10,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
