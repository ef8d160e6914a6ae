package app

import (
	"context"
	"testing"
)

func TestCache(t *testing.T) {
	ctx := ContextWithCache(context.Background())

	if _, found := GetCached[string](ctx, "a", "b"); found {
		t.Fatal("empty cache must miss")
	}

	SetCached(ctx, "value", "a", "b")
	val, found := GetCached[string](ctx, "a", "b")
	if !found || val != "value" {
		t.Fatalf("expected cached value, got (%q, %v)", val, found)
	}

	// Same key, wrong type assertion is a miss, not a panic.
	if _, found := GetCached[int](ctx, "a", "b"); found {
		t.Fatal("type mismatch must miss")
	}
}

func TestCacheWithoutMiddleware(t *testing.T) {
	ctx := context.Background()

	// A context without a cache is a silent no-op, so plain handler tests
	// work without the middleware chain.
	SetCached(ctx, "value", "a")
	if _, found := GetCached[string](ctx, "a"); found {
		t.Fatal("context without cache must always miss")
	}
}
