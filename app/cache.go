package app

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/aws/aws-lambda-go/events"
)

type contextKey string

const cacheContextKey = contextKey("app-cache")

// Cache is a per-invocation memo. It is installed fresh by CacheMiddleware,
// so nothing survives between requests and every invocation re-fetches from
// the upstream API.
type Cache struct {
	items map[string]any
	mu    sync.RWMutex
}

func cacheKey(args ...any) string {
	largs := make([]string, len(args))
	for i, a := range args {
		largs[i] = fmt.Sprintf("%v", a)
	}
	return strings.Join(largs, "/")
}

func cacheFromContext(ctx context.Context) (*Cache, bool) {
	cache, ok := ctx.Value(cacheContextKey).(*Cache)
	return cache, ok
}

// GetCached returns a previously stored value. A context without a cache
// (plain handler tests) is always a miss.
func GetCached[T any](ctx context.Context, key ...any) (val T, found bool) {
	cache, ok := cacheFromContext(ctx)
	if !ok {
		return val, false
	}
	cache.mu.RLock()
	defer cache.mu.RUnlock()

	res, inCache := cache.items[cacheKey(key...)]
	if inCache {
		typedVal, assertOk := res.(T)
		if assertOk {
			return typedVal, true
		}
	}
	return val, false
}

func SetCached(ctx context.Context, val any, key ...any) {
	cache, ok := cacheFromContext(ctx)
	if !ok {
		return
	}
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.items[cacheKey(key...)] = val
}

func ContextWithCache(ctx context.Context) context.Context {
	return context.WithValue(ctx, cacheContextKey, &Cache{
		items: map[string]any{},
	})
}

func CacheMiddleware(function NetlifyFunction) NetlifyFunction {
	return func(ctx context.Context, request events.APIGatewayProxyRequest) (*events.APIGatewayProxyResponse, error) {
		return function(ContextWithCache(ctx), request)
	}
}
