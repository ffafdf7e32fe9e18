package model

import (
	"testing"

	"github.com/verte-zerg/tuitrace/internal/difficulty"
)

func validConfig() Config {
	return Config{
		Lang:       "he",
		Difficulty: difficulty.Easy,
		Order:      OrderSequential,
		CanvasSize: 300,
		Sound:      true,
		Player:     "paplay",
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	cases := map[string]func(*Config){
		"unknown lang":       func(c *Config) { c.Lang = "fr" },
		"unknown difficulty": func(c *Config) { c.Difficulty = "insane" },
		"unknown order":      func(c *Config) { c.Order = "shuffle" },
		"zero canvas":        func(c *Config) { c.CanvasSize = 0 },
		"negative window":    func(c *Config) { c.WeakWindow = -1 },
		"sound w/o player":   func(c *Config) { c.Player = "" },
	}
	for name, mutate := range cases {
		cfg := validConfig()
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}

	silent := validConfig()
	silent.Sound = false
	silent.Player = ""
	if err := silent.Validate(); err != nil {
		t.Fatalf("expected player to be optional without sound, got %v", err)
	}
}

func TestStatsConfigValidate(t *testing.T) {
	if err := (&StatsConfig{CurveWindow: 1}).Validate(); err != nil {
		t.Fatalf("expected empty lang to be valid, got %v", err)
	}
	if err := (&StatsConfig{Lang: "he", Last: 10, CurveWindow: 5}).Validate(); err != nil {
		t.Fatalf("expected valid filters, got %v", err)
	}
	bad := []StatsConfig{
		{Lang: "xx", CurveWindow: 1},
		{Last: -1, CurveWindow: 1},
		{CurveWindow: 0},
	}
	for _, cfg := range bad {
		if err := cfg.Validate(); err == nil {
			t.Fatalf("expected validation error for %+v", cfg)
		}
	}
}
