package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fcmToken = "eQkAAABbGGM:APA91bFexample_registration_token_body_long_enough_to_clear_the_floor_0123456789abcdefghijklmnop"

func TestRunBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.txt")
	content := strings.Join([]string{
		"# two real tokens and one stray",
		apnsToken,
		fcmToken,
		"stray-token",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write token list: %v", err)
	}

	var out, errOut bytes.Buffer
	batchCmd.SetOut(&out)
	batchCmd.SetErr(&errOut)
	defer func() {
		batchCmd.SetOut(nil)
		batchCmd.SetErr(nil)
	}()

	if err := runBatch(batchCmd, []string{path}); err != nil {
		t.Fatalf("runBatch: %v", err)
	}
	if !strings.Contains(out.String(), "# line 2") {
		t.Errorf("output missing line marker:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Firebase Cloud Messaging (FCM)") {
		t.Errorf("output missing FCM verdict:\n%s", out.String())
	}
	if !strings.Contains(errOut.String(), "3 tokens: 1 apple, 1 android, 1 unknown") {
		t.Errorf("summary missing or wrong:\n%s", errOut.String())
	}
}

func TestRunBatchMissingFile(t *testing.T) {
	if err := runBatch(batchCmd, []string{filepath.Join(t.TempDir(), "nope.txt")}); err == nil {
		t.Fatal("missing file should fail")
	}
}
