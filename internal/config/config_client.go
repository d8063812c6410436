// SPDX-License-Identifier: Apache-2.0

package config

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the portfolio API server.
	// Env: CLIENT_SERVER_URL
	HTTPAddress string `env:"SERVER_URL"`

	// RequestTimeout is the default timeout for outbound client requests.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientSession holds settings for the local persisted session store.
type ClientSession struct {
	// DBPath is the path of the SQLite file holding the persisted
	// {user, token} session pair.
	// Env: CLIENT_SESSION_DB_PATH
	DBPath string `env:"DB_PATH"`
}

// ClientConfig is the top-level configuration container for the terminal
// client. Populated from environment variables and command-line flags;
// unset fields fall back to built-in defaults.
type ClientConfig struct {
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter `envPrefix:"CLIENT_"`

	// Session contains local session storage settings.
	Session ClientSession `envPrefix:"CLIENT_SESSION_"`
}

// GetClientConfig loads and validates the client configuration from
// environment variables and flags, with defaults merged last.
func GetClientConfig() (*ClientConfig, error) {
	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	cfg := parseClientFlags()
	if err := mergo.Merge(cfg, envCfg); err != nil {
		return nil, err
	}
	if err := mergo.Merge(cfg, clientDefaults()); err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

// parseClientFlags parses all client configuration flags.
//
// Flags:
//
//	-server base URL of the portfolio API server
//	-request-timeout outbound request timeout (e.g., "15s")
//	-session-db path of the local SQLite session file
func parseClientFlags() *ClientConfig {
	var serverURL string
	var requestTimeout time.Duration
	var sessionDBPath string

	flag.StringVar(&serverURL, "server", "", "Portfolio API server base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	flag.StringVar(&sessionDBPath, "session-db", "", "Local session database path")

	flag.Parse()

	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    serverURL,
			RequestTimeout: requestTimeout,
		},
		Session: ClientSession{
			DBPath: sessionDBPath,
		},
	}
}

func clientDefaults() ClientConfig {
	// Keep the session file next to the executable, matching where the
	// client writes its log file.
	sessionPath := "portfolio-session.db"
	if execPath, err := os.Executable(); err == nil {
		sessionPath = filepath.Join(filepath.Dir(execPath), "portfolio-session.db")
	}

	return ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    "http://localhost:5001",
			RequestTimeout: 15 * time.Second,
		},
		Session: ClientSession{
			DBPath: sessionPath,
		},
	}
}
