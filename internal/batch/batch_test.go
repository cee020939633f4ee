package batch

import (
	"context"
	"strings"
	"testing"

	"pushtoken/internal/classify"
)

const (
	apnsToken = "d4c3b2a1e5f6789012345678901234567890abcdef1234567890abcdef123456"
	fcmToken  = "eQkAAABbGGM:APA91bFexample_registration_token_body_long_enough_to_clear_the_floor_0123456789abcdefghijklmnop"
)

func TestSplitTokens(t *testing.T) {
	content := strings.Join([]string{
		"# fixture list",
		apnsToken,
		"",
		"   " + fcmToken + "   ",
		"short",
	}, "\n")

	items := SplitTokens(content)
	if len(items) != 3 {
		t.Fatalf("SplitTokens returned %d items, want 3", len(items))
	}
	if items[0].Line != 2 || items[0].Token != apnsToken {
		t.Errorf("item 0 = %+v", items[0])
	}
	if items[1].Line != 4 || items[1].Token != fcmToken {
		t.Errorf("item 1 not trimmed: %+v", items[1])
	}
}

func TestRunCountsKinds(t *testing.T) {
	items := SplitTokens(strings.Join([]string{
		apnsToken,
		fcmToken,
		"mystery-token",
		apnsToken,
	}, "\n"))

	results, summary, err := Run(context.Background(), items, Options{Jobs: 2})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}
	// Результаты сохраняют порядок входа
	if results[0].Result.Kind != classify.KindApple {
		t.Errorf("result 0 kind = %v", results[0].Result.Kind)
	}
	if results[1].Result.Kind != classify.KindAndroid {
		t.Errorf("result 1 kind = %v", results[1].Result.Kind)
	}
	want := Summary{Total: 4, Apple: 2, Android: 1, Unknown: 1}
	if summary != want {
		t.Fatalf("summary = %+v, want %+v", summary, want)
	}
}

func TestRunEmptyInput(t *testing.T) {
	results, summary, err := Run(context.Background(), nil, Options{})
	if err != nil {
		t.Fatalf("Run(nil): %v", err)
	}
	if results != nil || summary.Total != 0 {
		t.Fatalf("empty input should produce empty output, got %v %+v", results, summary)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items := SplitTokens(strings.Repeat(apnsToken+"\n", 64))
	if _, _, err := Run(ctx, items, Options{Jobs: 1}); err == nil {
		t.Fatal("Run on cancelled context should fail")
	}
}
