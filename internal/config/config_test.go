package config

import (
	"testing"
	"time"
)

func TestEnvFallbacks(t *testing.T) {
	t.Setenv("ARTNET_ADDR", "")
	t.Setenv("WEB_PORT", "")
	t.Setenv("PALETTE_SEED", "")

	if got := ArtNetAddr(); got != DefaultArtNetAddr {
		t.Errorf("ArtNetAddr() = %q, want %q", got, DefaultArtNetAddr)
	}
	if got := WebPort(); got != DefaultWebPort {
		t.Errorf("WebPort() = %q, want %q", got, DefaultWebPort)
	}
	if got := PaletteSeed(); got != DefaultPaletteSeed {
		t.Errorf("PaletteSeed() = %d, want %d", got, DefaultPaletteSeed)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ARTNET_ADDR", "127.0.0.1:7000")
	t.Setenv("WEB_PORT", "off")
	t.Setenv("PALETTE_SEED", "42")
	t.Setenv("TICK", "5ms")

	if got := ArtNetAddr(); got != "127.0.0.1:7000" {
		t.Errorf("ArtNetAddr() = %q", got)
	}
	if got := WebPort(); got != "" {
		t.Errorf("WebPort() = %q, want disabled", got)
	}
	if got := PaletteSeed(); got != 42 {
		t.Errorf("PaletteSeed() = %d, want 42", got)
	}
	if got := EnvDuration("TICK", time.Second); got != 5*time.Millisecond {
		t.Errorf("EnvDuration() = %v, want 5ms", got)
	}
}

func TestEnvInvalidValuesUseDefault(t *testing.T) {
	t.Setenv("PALETTE_SEED", "many")
	t.Setenv("TICK", "soon")

	if got := PaletteSeed(); got != DefaultPaletteSeed {
		t.Errorf("PaletteSeed() = %d, want default", got)
	}
	if got := EnvDuration("TICK", time.Second); got != time.Second {
		t.Errorf("EnvDuration() = %v, want 1s", got)
	}
}
