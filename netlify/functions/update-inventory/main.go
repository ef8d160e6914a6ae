package main

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/anotherroundslc/disc-inventory/app"
	"github.com/anotherroundslc/disc-inventory/config"
	"github.com/anotherroundslc/disc-inventory/rabbitmq"
	"github.com/anotherroundslc/disc-inventory/square"
)

type updateRequest struct {
	VariationId string `json:"variationId"`
	Quantity    int    `json:"quantity"`
	FromState   string `json:"fromState"`
	ToState     string `json:"toState"`
}

func handler(ctx context.Context, request events.APIGatewayProxyRequest) (*events.APIGatewayProxyResponse, error) {
	if request.HTTPMethod != http.MethodPost {
		return app.NetlifyJsonResponse(405, map[string]any{"success": false, "error": "Method Not Allowed"})
	}

	var update updateRequest
	if err := json.Unmarshal([]byte(request.Body), &update); err != nil {
		return app.NetlifyLogAndJsonResponse(400, map[string]any{"success": false, "error": "Invalid JSON in request body"}, err)
	}
	if update.VariationId == "" {
		return app.NetlifyLogAndJsonResponse(400, map[string]any{"success": false, "error": "Variation ID is required"}, nil)
	}
	if update.Quantity <= 0 {
		return app.NetlifyLogAndJsonResponse(400, map[string]any{"success": false, "error": "Quantity must be a positive integer"}, nil)
	}
	if update.FromState == "" {
		update.FromState = "NONE"
	}
	if update.ToState == "" {
		update.ToState = "IN_STOCK"
	}

	cfg, err := config.LoadSquare()
	if err != nil {
		return app.NetlifyLogAndJsonResponse(500, map[string]any{"success": false, "error": err.Error()}, err)
	}

	adjustment := square.Adjustment{
		CatalogObjectId: update.VariationId,
		LocationId:      cfg.LocationId,
		FromState:       update.FromState,
		ToState:         update.ToState,
		Quantity:        update.Quantity,
		OccurredAt:      time.Now(),
	}

	// A write is never simulated: an upstream failure surfaces as a real
	// error instead of demo data.
	counts, err := square.ApplyAdjustment(ctx, cfg.AccessToken, adjustment)
	if err != nil {
		return app.NetlifyLogAndJsonResponse(500, map[string]any{"success": false, "error": "Failed to update inventory"}, err)
	}

	rabbitmq.PublishInventoryAdjusted(ctx, map[string]any{
		"variationId": update.VariationId,
		"fromState":   adjustment.FromState,
		"toState":     adjustment.ToState,
		"quantity":    update.Quantity,
		"locationId":  cfg.LocationId,
		"occurredAt":  adjustment.OccurredAt.UTC().Format(time.RFC3339),
	})

	return app.NetlifyJsonResponse(200, map[string]any{
		"success": true,
		"counts":  counts,
	})
}

func main() {
	lambda.Start(app.ProfilingMiddleware(
		app.TimeoutMiddleware(app.CacheMiddleware(app.CheckEnvMiddleware(app.CorsMiddleware(handler)))),
		"update-inventory",
	))
}
