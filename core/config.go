package core

import (
	"fmt"
	"time"
)

// Config carries every option of a training run.
type Config struct {
	// number of training episodes
	Episodes int
	// maximum steps per episode before forced truncation
	Steps int
	// selects the critic variant, CriticTable or CriticNN
	CriticType string
	// layer sizing for the nn critic, ignored by the table critic
	CriticNNDims []int
	// learning rates for the policy and value updates
	ActorLR  float64
	CriticLR float64
	// eligibility trace decay factor (lambda)
	Decay float64
	// reward discount factor (gamma)
	Discount float64
	// initial exploration probability and its per-episode decay
	Epsilon      float64
	EpsilonDecay float64
	// diagnostic toggles, no effect on learned values
	Visualise bool
	Verbose   bool
	// seed of the single random source used by the run
	Seed uint64
}

// DefaultConfig returns a Config with workable defaults for a small domain.
func DefaultConfig() *Config {
	return &Config{
		Episodes:     500,
		Steps:        100,
		CriticType:   CriticTable,
		CriticNNDims: []int{16, 16},
		ActorLR:      0.1,
		CriticLR:     0.1,
		Decay:        0.9,
		Discount:     0.9,
		Epsilon:      0.5,
		EpsilonDecay: 0.99,
		Visualise:    false,
		Verbose:      false,
		Seed:         uint64(time.Now().UnixNano()),
	}
}

// ConfigFromMap builds a Config from a flat mapping of named options. Every
// option except "seed" is required; a missing or mistyped option is an
// error identifying the key. "seed" defaults to the current time.
func ConfigFromMap(options map[string]interface{}) (*Config, error) {
	config := &Config{Seed: uint64(time.Now().UnixNano())}
	var err error

	if config.Episodes, err = intOption(options, "episodes"); err != nil {
		return nil, err
	}
	if config.Steps, err = intOption(options, "steps"); err != nil {
		return nil, err
	}
	if config.CriticType, err = stringOption(options, "critic_type"); err != nil {
		return nil, err
	}
	if config.CriticNNDims, err = intSliceOption(options, "critic_nn_dims"); err != nil {
		return nil, err
	}
	if config.ActorLR, err = floatOption(options, "actor_lr"); err != nil {
		return nil, err
	}
	if config.CriticLR, err = floatOption(options, "critic_lr"); err != nil {
		return nil, err
	}
	if config.Decay, err = floatOption(options, "decay"); err != nil {
		return nil, err
	}
	if config.Discount, err = floatOption(options, "discount"); err != nil {
		return nil, err
	}
	if config.Epsilon, err = floatOption(options, "epsilon"); err != nil {
		return nil, err
	}
	if config.EpsilonDecay, err = floatOption(options, "epsilon_decay"); err != nil {
		return nil, err
	}
	if config.Visualise, err = boolOption(options, "visualise"); err != nil {
		return nil, err
	}
	if config.Verbose, err = boolOption(options, "verbose"); err != nil {
		return nil, err
	}
	if seed, ok := options["seed"]; ok {
		switch v := seed.(type) {
		case uint64:
			config.Seed = v
		case int:
			config.Seed = uint64(v)
		default:
			return nil, fmt.Errorf("option %q: expected integer, got %T", "seed", seed)
		}
	}

	return config, nil
}

// Validate ensures that the Config describes a runnable training run.
func (c *Config) Validate() error {
	if c.Episodes < 1 {
		return fmt.Errorf("episodes must be at least 1, got %d", c.Episodes)
	}
	if c.Steps < 1 {
		return fmt.Errorf("steps must be at least 1, got %d", c.Steps)
	}
	if c.CriticType != CriticTable && c.CriticType != CriticNN {
		return fmt.Errorf("unknown critic type %q", c.CriticType)
	}
	if c.ActorLR <= 0 || c.CriticLR <= 0 {
		return fmt.Errorf("learning rates must be positive, got actor %f critic %f", c.ActorLR, c.CriticLR)
	}
	if c.Decay < 0 || c.Decay > 1 {
		return fmt.Errorf("decay must be in [0,1], got %f", c.Decay)
	}
	if c.Discount < 0 || c.Discount > 1 {
		return fmt.Errorf("discount must be in [0,1], got %f", c.Discount)
	}
	if c.Epsilon < 0 || c.Epsilon > 1 {
		return fmt.Errorf("epsilon must be in [0,1], got %f", c.Epsilon)
	}
	if c.EpsilonDecay < 0 || c.EpsilonDecay > 1 {
		return fmt.Errorf("epsilon decay must be in [0,1], got %f", c.EpsilonDecay)
	}
	return nil
}

func intOption(options map[string]interface{}, key string) (int, error) {
	raw, ok := options[key]
	if !ok {
		return 0, fmt.Errorf("missing required option %q", key)
	}
	value, ok := raw.(int)
	if !ok {
		return 0, fmt.Errorf("option %q: expected int, got %T", key, raw)
	}
	return value, nil
}

func floatOption(options map[string]interface{}, key string) (float64, error) {
	raw, ok := options[key]
	if !ok {
		return 0, fmt.Errorf("missing required option %q", key)
	}
	switch v := raw.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("option %q: expected float, got %T", key, raw)
	}
}

func stringOption(options map[string]interface{}, key string) (string, error) {
	raw, ok := options[key]
	if !ok {
		return "", fmt.Errorf("missing required option %q", key)
	}
	value, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("option %q: expected string, got %T", key, raw)
	}
	return value, nil
}

func boolOption(options map[string]interface{}, key string) (bool, error) {
	raw, ok := options[key]
	if !ok {
		return false, fmt.Errorf("missing required option %q", key)
	}
	value, ok := raw.(bool)
	if !ok {
		return false, fmt.Errorf("option %q: expected bool, got %T", key, raw)
	}
	return value, nil
}

func intSliceOption(options map[string]interface{}, key string) ([]int, error) {
	raw, ok := options[key]
	if !ok {
		return nil, fmt.Errorf("missing required option %q", key)
	}
	value, ok := raw.([]int)
	if !ok {
		return nil, fmt.Errorf("option %q: expected []int, got %T", key, raw)
	}
	return value, nil
}
