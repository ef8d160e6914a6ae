package main

import (
	"context"
	"log"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/anotherroundslc/disc-inventory/app"
	"github.com/anotherroundslc/disc-inventory/config"
	"github.com/anotherroundslc/disc-inventory/discs"
	"github.com/anotherroundslc/disc-inventory/square"
)

func handler(ctx context.Context, request events.APIGatewayProxyRequest) (*events.APIGatewayProxyResponse, error) {
	if request.HTTPMethod != http.MethodGet {
		return app.NetlifyJsonResponse(405, map[string]any{"success": false, "error": "Method Not Allowed"})
	}

	cfg, err := config.LoadSquare()
	if err != nil {
		return app.NetlifyLogAndJsonResponse(500, map[string]any{"success": false, "error": err.Error()}, err)
	}

	objects, err := square.ListCatalogItems(ctx, cfg.AccessToken)
	if err != nil {
		// Degraded read: keep the dashboard rendering with the defaults and
		// report the failure alongside them.
		log.Printf("Falling back to default vendors: %v", err)
		return app.NetlifyJsonResponse(200, map[string]any{
			"success": false,
			"vendors": discs.DefaultVendors(),
			"source":  "demo",
			"error":   err.Error(),
		})
	}

	return app.NetlifyJsonResponse(200, map[string]any{
		"success": true,
		"vendors": discs.ExtractVendors(objects),
		"source":  "square",
	})
}

func main() {
	lambda.Start(app.ProfilingMiddleware(
		app.TimeoutMiddleware(app.CacheMiddleware(app.CheckEnvMiddleware(app.CorsMiddleware(handler)))),
		"get-vendors",
	))
}
