// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"dario.cat/mergo"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the users service.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the configuration of cmd/client.
type ClientConfig struct {
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// LogLevel is a zerolog level name.
	LogLevel string
}

// GetClientConfig builds and validates the client configuration from
// ADAPTER_* / APP_LOG_LEVEL environment variables and the -server and
// -timeout flags found in args. Remaining positional args are returned
// untouched so the caller can dispatch sub-commands.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, nil, err
	}

	var serverAddress string
	var requestTimeout time.Duration
	var logLevel string

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&serverAddress, "server", "", "Users service base URL")
	fs.DurationVar(&requestTimeout, "timeout", 0, "Request timeout")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	flagCfg := &StructuredConfig{
		App:     App{LogLevel: logLevel},
		Adapter: Adapter{HTTPAddress: serverAddress, RequestTimeout: requestTimeout},
	}

	merged := new(StructuredConfig)
	var err error
	for _, cfg := range []*StructuredConfig{envCfg, flagCfg} {
		err = errors.Join(err, mergo.Merge(merged, cfg, mergo.WithOverride))
	}
	err = errors.Join(err, mergo.Merge(merged, defaultStructuredConfig()))
	if err != nil {
		return nil, nil, fmt.Errorf("error merging client configs: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    merged.Adapter.HTTPAddress,
			RequestTimeout: merged.Adapter.RequestTimeout,
		},
		LogLevel: merged.App.LogLevel,
	}

	if err := clientCfg.validate(); err != nil {
		return nil, nil, err
	}

	return clientCfg, fs.Args(), nil
}
