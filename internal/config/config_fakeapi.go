package config

import (
	"fmt"
	"time"
)

// FakeAPIAuth holds the token settings of the fixture server.
type FakeAPIAuth struct {
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
}

// FakeAPIConfig is the configuration of the fixture API server.
type FakeAPIConfig struct {
	Server   Server
	Auth     FakeAPIAuth
	LogLevel string
}

// GetFakeAPIConfig builds and validates the fixture server view of the
// merged structured configuration.
func GetFakeAPIConfig() (*FakeAPIConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	apiCfg := newFakeAPIConfig(cfg)
	return apiCfg, apiCfg.validate()
}

func newFakeAPIConfig(cfg *StructuredConfig) *FakeAPIConfig {
	return &FakeAPIConfig{
		Server: cfg.Server,
		Auth: FakeAPIAuth{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
		},
		LogLevel: cfg.App.LogLevel,
	}
}
