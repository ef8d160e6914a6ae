package square

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/anotherroundslc/disc-inventory/app"
)

func TestListCatalogItemsFollowsCursor(t *testing.T) {
	var calledUrls []string
	reset := CallConfig.SetJsonCall(func(ctx context.Context, method string, url string, token string, body any) (any, error) {
		calledUrls = append(calledUrls, url)
		if strings.Contains(url, "cursor=page-2") {
			return map[string]any{
				"objects": []any{
					map[string]any{"type": "ITEM", "id": "item-2"},
				},
			}, nil
		}
		return map[string]any{
			"objects": []any{
				map[string]any{"type": "ITEM", "id": "item-1"},
			},
			"cursor": "page-2",
		}, nil
	}, false)
	defer reset()

	objects, err := ListCatalogItems(context.Background(), "token")
	if err != nil {
		t.Fatalf("no error expected, but got one: %v", err)
	}
	if len(objects) != 2 || objects[0].Id != "item-1" || objects[1].Id != "item-2" {
		t.Fatalf("expected items from both pages, got: %#v", objects)
	}
	if len(calledUrls) != 2 {
		t.Fatalf("expected 2 page fetches, got %v: %v", len(calledUrls), calledUrls)
	}
	if !strings.Contains(calledUrls[0], "types=ITEM") {
		t.Fatalf("first page must request ITEM objects: %v", calledUrls[0])
	}
}

func TestListCatalogItemsAbortsOnPageError(t *testing.T) {
	calls := 0
	reset := CallConfig.SetJsonCall(func(ctx context.Context, method string, url string, token string, body any) (any, error) {
		calls++
		if calls == 1 {
			return map[string]any{
				"objects": []any{map[string]any{"type": "ITEM", "id": "item-1"}},
				"cursor":  "page-2",
			}, nil
		}
		return nil, fmt.Errorf("upstream unreachable")
	}, false)
	defer reset()

	_, err := ListCatalogItems(context.Background(), "token")
	if err == nil {
		t.Fatal("expected an error from the failed page")
	}
	if !strings.Contains(err.Error(), "upstream unreachable") {
		t.Fatalf("expected wrapped upstream error, got: %v", err)
	}
	if calls != 2 {
		t.Fatalf("pagination must abort on first failure, got %v calls", calls)
	}
}

func TestListCatalogItemsUsesRequestCache(t *testing.T) {
	calls := 0
	reset := CallConfig.SetJsonCall(func(ctx context.Context, method string, url string, token string, body any) (any, error) {
		calls++
		return map[string]any{
			"objects": []any{map[string]any{"type": "ITEM", "id": "item-1"}},
		}, nil
	}, false)
	defer reset()

	ctx := app.ContextWithCache(context.Background())
	if _, err := ListCatalogItems(ctx, "token"); err != nil {
		t.Fatalf("no error expected, but got one: %v", err)
	}
	if _, err := ListCatalogItems(ctx, "token"); err != nil {
		t.Fatalf("no error expected, but got one: %v", err)
	}
	if calls != 1 {
		t.Fatalf("second call within one invocation must hit the cache, got %v fetches", calls)
	}
}

func TestListCatalogItemsErrorsResponse(t *testing.T) {
	reset := CallConfig.SetJsonCall(func(ctx context.Context, method string, url string, token string, body any) (any, error) {
		return map[string]any{
			"errors": []any{map[string]any{"code": "UNAUTHORIZED"}},
		}, nil
	}, false)
	defer reset()

	_, err := ListCatalogItems(context.Background(), "token")
	if err == nil {
		t.Fatal("expected an error from the errors payload")
	}
	if !strings.Contains(err.Error(), "UNAUTHORIZED") {
		t.Fatalf("expected the Square error in the message, got: %v", err)
	}
}
