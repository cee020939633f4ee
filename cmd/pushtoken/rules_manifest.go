package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"pushtoken/internal/classify"
)

// rulesConfig is the on-disk shape of an optional pushtoken.toml.
// Only the [rules] table is recognized; absent fields keep their defaults.
type rulesConfig struct {
	Rules rulesTable `toml:"rules"`
}

type rulesTable struct {
	APNsHexLength   int `toml:"apns_hex_length"`
	FCMMinLength    int `toml:"fcm_min_length"`
	ShortTokenLimit int `toml:"short_token_limit"`
	LongTokenLimit  int `toml:"long_token_limit"`
}

// findPushtokenToml ищет pushtoken.toml вверх по дереву директорий
func findPushtokenToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "pushtoken.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadRules returns the classifier thresholds, overridden by a manifest when
// one is present anywhere above startDir.
func loadRules(startDir string) (classify.Rules, error) {
	path, ok, err := findPushtokenToml(startDir)
	if err != nil {
		return classify.Rules{}, err
	}
	if !ok {
		return classify.DefaultRules(), nil
	}

	var cfg rulesConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return classify.Rules{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return classify.Rules{
		APNsHexLength:   cfg.Rules.APNsHexLength,
		FCMMinLength:    cfg.Rules.FCMMinLength,
		ShortTokenLimit: cfg.Rules.ShortTokenLimit,
		LongTokenLimit:  cfg.Rules.LongTokenLimit,
	}, nil
}
