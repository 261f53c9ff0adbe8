package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds the settings of the outbound API client.
type ClientAdapter struct {
	// BaseURL is the API root every request path is appended to.
	BaseURL string
	// RequestTimeout is the timeout of a single API call.
	RequestTimeout time.Duration
}

// ClientLog holds client logging settings.
type ClientLog struct {
	File  string
	Level string
}

// ClientConfig is the configuration of the terminal client assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Log     ClientLog
}

// GetClientConfig builds and validates the client view of the merged
// structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Log: ClientLog{
			File:  cfg.Client.LogFile,
			Level: cfg.App.LogLevel,
		},
	}
}
