package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// config is read from the environment.
type config struct {
	// Log level for the stderr and file handlers: debug, info, warn, or error.
	LogLevel string `env:"ZKGUEST_LOG_LEVEL" envDefault:"info"`

	// When set, logs are also written as JSON to this file.
	LogFile string `env:"ZKGUEST_LOG_FILE"`

	// When set, the encoded session is written to this file.
	SessionOut string `env:"ZKGUEST_SESSION_OUT"`

	// Bytes the sample guest commits, hex encoded.
	PayloadHex string `env:"ZKGUEST_PAYLOAD_HEX" envDefault:"00010203"`

	// Exit code the sample guest halts with.
	ExitCode uint8 `env:"ZKGUEST_EXIT_CODE" envDefault:"0"`

	// Per-channel output limit; zero means unlimited.
	MaxChannelBytes int `env:"ZKGUEST_MAX_CHANNEL_BYTES" envDefault:"0"`
}

func parseConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c config) validate() error {
	var errs error

	if _, err := c.logLevel(); err != nil {
		errs = errors.Join(errs, err)
	}

	if _, err := c.payload(); err != nil {
		errs = errors.Join(errs, err)
	}

	if c.MaxChannelBytes < 0 {
		errs = errors.Join(errs, errors.New("ZKGUEST_MAX_CHANNEL_BYTES must not be negative"))
	}

	return errs
}

func (c config) logLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return lvl, fmt.Errorf("invalid ZKGUEST_LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

func (c config) payload() ([]byte, error) {
	b, err := hex.DecodeString(c.PayloadHex)
	if err != nil {
		return nil, fmt.Errorf("invalid ZKGUEST_PAYLOAD_HEX: %w", err)
	}
	return b, nil
}
