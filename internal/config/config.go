// Package config provides configuration helpers for the Light Curve commands.
// Every value has a default; environment variables override defaults and
// command-line flags override both.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Defaults.
const (
	DefaultArtNetAddr  = "0.0.0.0:6454"
	DefaultWebPort     = "8080"
	DefaultLogLevel    = "info"
	DefaultTarget      = "127.0.0.1:6454"
	DefaultServer      = "localhost:8080"
	DefaultTick        = 16 * time.Millisecond
	DefaultStats       = 30 * time.Second
	DefaultPaletteSeed = 6454
)

// Env returns the value of key, or def when unset or empty.
func Env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// EnvInt64 returns key parsed as an integer, or def when unset or invalid.
func EnvInt64(key string, def int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring %s=%q: %v\n", key, v, err)
		return def
	}
	return n
}

// EnvDuration returns key parsed as a duration, or def when unset or invalid.
func EnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring %s=%q: %v\n", key, v, err)
		return def
	}
	return d
}

// ArtNetAddr returns the ArtNet listen address from ARTNET_ADDR.
func ArtNetAddr() string {
	return Env("ARTNET_ADDR", DefaultArtNetAddr)
}

// WebPort returns the dashboard port from WEB_PORT. "off" disables it.
func WebPort() string {
	if p := Env("WEB_PORT", DefaultWebPort); p != "off" {
		return p
	}
	return ""
}

// LogLevel returns the log level from LOG_LEVEL.
func LogLevel() string {
	return Env("LOG_LEVEL", DefaultLogLevel)
}

// PaletteSeed returns the panel color seed from PALETTE_SEED.
func PaletteSeed() int64 {
	return EnvInt64("PALETTE_SEED", DefaultPaletteSeed)
}

// Target returns the ArtNet destination for senders from LIGHTCURVE_TARGET.
func Target() string {
	return Env("LIGHTCURVE_TARGET", DefaultTarget)
}

// Server returns the simulator dashboard address from LIGHTCURVE_SERVER.
func Server() string {
	return Env("LIGHTCURVE_SERVER", DefaultServer)
}

// ServerURL returns the dashboard base URL for a host:port.
func ServerURL(server string) string {
	return fmt.Sprintf("http://%s", server)
}
