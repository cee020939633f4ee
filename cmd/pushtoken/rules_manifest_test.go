package main

import (
	"os"
	"path/filepath"
	"testing"

	"pushtoken/internal/classify"
)

func TestLoadRulesDefaultsWithoutManifest(t *testing.T) {
	root := t.TempDir()
	rules, err := loadRules(root)
	if err != nil {
		t.Fatalf("loadRules: %v", err)
	}
	if rules != classify.DefaultRules() {
		t.Fatalf("rules = %+v, want defaults", rules)
	}
}

func TestLoadRulesFromManifest(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "pushtoken.toml")
	data := `# test manifest
[rules]
apns_hex_length = 32
fcm_min_length = 80
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write pushtoken.toml: %v", err)
	}

	rules, err := loadRules(root)
	if err != nil {
		t.Fatalf("loadRules: %v", err)
	}
	if rules.APNsHexLength != 32 {
		t.Errorf("APNsHexLength = %d, want 32", rules.APNsHexLength)
	}
	if rules.FCMMinLength != 80 {
		t.Errorf("FCMMinLength = %d, want 80", rules.FCMMinLength)
	}
	// Omitted fields stay zero here; Classify fills them with defaults.
	if rules.ShortTokenLimit != 0 {
		t.Errorf("ShortTokenLimit = %d, want 0", rules.ShortTokenLimit)
	}
}

func TestLoadRulesWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	data := "[rules]\nfcm_min_length = 60\n"
	if err := os.WriteFile(filepath.Join(root, "pushtoken.toml"), []byte(data), 0o600); err != nil {
		t.Fatalf("write pushtoken.toml: %v", err)
	}

	rules, err := loadRules(nested)
	if err != nil {
		t.Fatalf("loadRules: %v", err)
	}
	if rules.FCMMinLength != 60 {
		t.Fatalf("manifest above start dir not found, rules = %+v", rules)
	}
}

func TestLoadRulesRejectsBadTOML(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "pushtoken.toml"), []byte("rules = ["), 0o600); err != nil {
		t.Fatalf("write pushtoken.toml: %v", err)
	}
	if _, err := loadRules(root); err == nil {
		t.Fatal("malformed manifest should fail to load")
	}
}
