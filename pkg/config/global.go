package config

import "sync/atomic"

var global atomic.Pointer[Config]

// Global returns the process-wide configuration, falling back to the
// defaults when Set was never called.
func Global() *Config {
	if cfg := global.Load(); cfg != nil {
		return cfg
	}
	return Default()
}

// Set installs the process-wide configuration.
func Set(cfg *Config) {
	global.Store(cfg)
}
