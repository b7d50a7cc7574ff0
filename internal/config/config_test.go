package config

import (
	"math"
	"strings"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}
}

func TestIntroEnd(t *testing.T) {
	c := Default()
	if got, want := c.IntroEnd(), 4785*time.Millisecond; got != want {
		t.Errorf("IntroEnd() = %v, want %v", got, want)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"no particles", func(c *Config) { c.ParticleCount = 0 }, "particle count"},
		{"zero intro", func(c *Config) { c.IntroDuration = 0 }, "intro duration"},
		{"negative radius", func(c *Config) { c.RepulsionRadius = -1 }, "repulsion radius"},
		{"nan padding", func(c *Config) { c.SpawnPadding = math.NaN() }, "spawn padding"},
		{"inf rotation", func(c *Config) { c.RotationSpeed = math.Inf(1) }, "rotation speed"},
		{"early complete", func(c *Config) { c.IntroCompleteFactor = 0.5 }, "intro complete factor"},
		{"delay of one", func(c *Config) { c.MaxDelay = 1 }, "max delay"},
		{"zero settle", func(c *Config) { c.SettleBlend = 0 }, "settle blend"},
		{"overshooting repel", func(c *Config) { c.RepelBlend = 1.5 }, "repel blend"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateReportsEveryField(t *testing.T) {
	c := Default()
	c.ParticleCount = -3
	c.DotSize = -1
	err := c.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "particle count") || !strings.Contains(msg, "dot size") {
		t.Errorf("expected both fields reported, got %q", msg)
	}
}
