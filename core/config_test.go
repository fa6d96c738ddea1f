package core

import (
	"strings"
	"testing"
)

func fullOptions() map[string]interface{} {
	return map[string]interface{}{
		"episodes":       50,
		"steps":          10,
		"critic_type":    CriticTable,
		"critic_nn_dims": []int{16, 16},
		"actor_lr":       0.1,
		"critic_lr":      0.2,
		"decay":          0.9,
		"discount":       0.9,
		"epsilon":        0.5,
		"epsilon_decay":  0.99,
		"visualise":      false,
		"verbose":        true,
		"seed":           42,
	}
}

func TestConfigFromMap(t *testing.T) {
	config, err := ConfigFromMap(fullOptions())
	if err != nil {
		t.Fatal(err)
	}
	if config.Episodes != 50 || config.Steps != 10 {
		t.Errorf("episodes/steps not parsed: %d/%d", config.Episodes, config.Steps)
	}
	if config.CriticType != CriticTable {
		t.Errorf("critic type not parsed: %s", config.CriticType)
	}
	if config.ActorLR != 0.1 || config.CriticLR != 0.2 {
		t.Errorf("learning rates not parsed: %f/%f", config.ActorLR, config.CriticLR)
	}
	if config.Seed != 42 {
		t.Errorf("seed not parsed: %d", config.Seed)
	}
	if !config.Verbose || config.Visualise {
		t.Errorf("toggles not parsed: verbose=%v visualise=%v", config.Verbose, config.Visualise)
	}
	if err := config.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}

func TestConfigFromMapMissingOption(t *testing.T) {
	required := []string{
		"episodes", "steps", "critic_type", "critic_nn_dims", "actor_lr",
		"critic_lr", "decay", "discount", "epsilon", "epsilon_decay",
		"visualise", "verbose",
	}
	for _, key := range required {
		options := fullOptions()
		delete(options, key)
		_, err := ConfigFromMap(options)
		if err == nil {
			t.Errorf("missing option %q not rejected", key)
			continue
		}
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error for missing %q does not name the option: %v", key, err)
		}
	}
}

func TestConfigFromMapSeedOptional(t *testing.T) {
	options := fullOptions()
	delete(options, "seed")
	if _, err := ConfigFromMap(options); err != nil {
		t.Errorf("missing seed should not be an error: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero episodes", func(c *Config) { c.Episodes = 0 }},
		{"zero steps", func(c *Config) { c.Steps = 0 }},
		{"bogus critic", func(c *Config) { c.CriticType = "quantum" }},
		{"negative actor lr", func(c *Config) { c.ActorLR = -0.1 }},
		{"zero critic lr", func(c *Config) { c.CriticLR = 0 }},
		{"decay above one", func(c *Config) { c.Decay = 1.5 }},
		{"negative discount", func(c *Config) { c.Discount = -0.1 }},
		{"epsilon above one", func(c *Config) { c.Epsilon = 1.2 }},
		{"epsilon decay above one", func(c *Config) { c.EpsilonDecay = 1.2 }},
	}
	for _, tc := range cases {
		config := DefaultConfig()
		tc.mutate(config)
		if err := config.Validate(); err == nil {
			t.Errorf("%s: invalid config accepted", tc.name)
		}
	}
}
