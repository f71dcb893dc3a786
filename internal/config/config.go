// Package config loads runtime settings for the rankcode command from the
// environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/klauspost/compress/zstd"
)

const (
	defaultAddr         = ":8080"
	defaultMaxBodyBytes = 64 << 20
)

type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string

	// MaxBodyBytes caps the size of a request body accepted by the server.
	MaxBodyBytes int64

	// ZstdLevel is the level used for the zstd baseline in size reports.
	ZstdLevel zstd.EncoderLevel
}

// Load reads RANKCODE_ADDR, RANKCODE_MAX_BODY and RANKCODE_ZSTD_LEVEL,
// falling back to defaults for unset variables.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	cfg := Config{
		Addr:         defaultAddr,
		MaxBodyBytes: defaultMaxBodyBytes,
		ZstdLevel:    zstd.SpeedDefault,
	}

	if v := getenv("RANKCODE_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := getenv("RANKCODE_MAX_BODY"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("RANKCODE_MAX_BODY: invalid size %q", v)
		}
		cfg.MaxBodyBytes = n
	}
	if v := getenv("RANKCODE_ZSTD_LEVEL"); v != "" {
		ok, level := zstd.EncoderLevelFromString(v)
		if !ok {
			return Config{}, fmt.Errorf("RANKCODE_ZSTD_LEVEL: unknown level %q", v)
		}
		cfg.ZstdLevel = level
	}
	return cfg, nil
}
