// Package square is a thin client for the Square Connect v2 REST API,
// covering only the endpoints the inventory dashboard needs: catalog listing,
// inventory counts, inventory adjustments, merchant locations and the OAuth
// code exchange.
package square

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/anotherroundslc/disc-inventory/helpers"
)

const (
	connectBaseUrl = "https://connect.squareup.com"
	apiVersion     = "2023-09-25"
)

type callConfig struct {
	JsonCall func(ctx context.Context, method string, url string, token string, body any) (any, error)
}

func (c *callConfig) SetJsonCall(jsonCall func(context.Context, string, string, string, any) (any, error), onlyIfNull bool) (reset func()) {
	current := c.JsonCall
	if onlyIfNull && current != nil {
		return func() {}
	}
	c.JsonCall = jsonCall
	return func() {
		c.JsonCall = current
	}
}

// CallConfig lets tests swap the wire call out for a stub.
var CallConfig = callConfig{}

func jsonCall(ctx context.Context, method string, url string, token string, body any) (any, error) {
	headers := map[string]string{
		"Square-Version": apiVersion,
	}
	if token != "" {
		headers["Authorization"] = fmt.Sprintf("Bearer %s", token)
	}
	return helpers.JsonRequest(ctx, method, url, headers, body)
}

type endpoint[T any] struct{}

func (e *endpoint[T]) CallGeneric(ctx context.Context, method string, path string, token string, body any) (any, error) {
	defer CallConfig.SetJsonCall(jsonCall, true)()
	resp, err := CallConfig.JsonCall(ctx, method, connectBaseUrl+path, token, body)
	if err != nil {
		return nil, err
	}
	respMap, ok := resp.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("invalid Square API response, expected map, got: %v", resp)
	}
	if respErrors, foundErrors := respMap["errors"]; foundErrors {
		return nil, fmt.Errorf("errors in Square API response: %v", respErrors)
	}
	return respMap, nil
}

func (e *endpoint[T]) Call(ctx context.Context, method string, path string, token string, body any) (*T, error) {
	resultAny, err := e.CallGeneric(ctx, method, path, token, body)
	if err != nil {
		return nil, err
	}
	resultJson, err := json.Marshal(resultAny)
	if err != nil {
		return nil, fmt.Errorf("error re-marshalling Square API response:\n>>> %v\n>>> %w", resultAny, err)
	}
	var result T
	// Square responses carry plenty of fields the dashboard never reads, so
	// unknown fields are allowed here, unlike a strict decode.
	if err := json.NewDecoder(bytes.NewReader(resultJson)).Decode(&result); err != nil {
		return nil, fmt.Errorf("error decoding Square API response:\n>>> %v\n>>> %w", string(resultJson), err)
	}
	return &result, nil
}
