package latency

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestFixed_Waits(t *testing.T) {
	start := time.Now()
	if err := Fixed(20 * time.Millisecond).Wait(context.Background()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Fatalf("expected at least 20ms, got %s", elapsed)
	}
}

func TestFixed_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Fixed(time.Hour).Wait(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNone(t *testing.T) {
	if err := None.Wait(context.Background()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}
