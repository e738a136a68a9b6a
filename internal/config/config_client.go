// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the server API.
	// Env: CLIENT_SERVER_ADDRESS
	HTTPAddress string `env:"SERVER_ADDRESS"`

	// RequestTimeout is the default timeout for outbound client requests.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the top-level client configuration.
type ClientConfig struct {
	// Adapter contains the server address and timeouts.
	Adapter ClientAdapter `envPrefix:"CLIENT_"`

	// TokenFile is where the session token is persisted between runs.
	// Env: CLIENT_TOKEN_FILE
	TokenFile string `env:"CLIENT_TOKEN_FILE"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CLIENT_CONFIG
	JSONFilePath string `env:"CLIENT_CONFIG"`
}

type clientJSONConfig struct {
	ServerAddress  string   `json:"server_address"`
	RequestTimeout Duration `json:"request_timeout"`
	TokenFile      string   `json:"token_file"`
}

// GetClientConfig loads the client configuration from environment variables
// and, when CLIENT_CONFIG points at one, a JSON file. The JSON file wins for
// non-zero fields.
func GetClientConfig() (*ClientConfig, error) {
	cfg := new(ClientConfig)
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	if cfg.JSONFilePath != "" {
		jsonCfg, err := parseClientJSON(cfg.JSONFilePath)
		if err != nil {
			return nil, err
		}
		if err = mergo.Merge(cfg, jsonCfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	cfg.applyDefaults()

	return cfg, cfg.validate()
}

func parseClientJSON(path string) (*ClientConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}

	var jsonCfg clientJSONConfig
	if err = json.Unmarshal(data, &jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    jsonCfg.ServerAddress,
			RequestTimeout: time.Duration(jsonCfg.RequestTimeout),
		},
		TokenFile: jsonCfg.TokenFile,
	}, nil
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = defaultClientServerAddr
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if cfg.TokenFile == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.TokenFile = filepath.Join(home, defaultClientTokenDir, defaultClientTokenFile)
		}
	}
}
