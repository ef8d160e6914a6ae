package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/anotherroundslc/disc-inventory/app"
	"github.com/anotherroundslc/disc-inventory/config"
	"github.com/anotherroundslc/disc-inventory/square"
)

var credentialSuggestions = []string{
	"Verify that SQUARE_ACCESS_TOKEN is correct",
	"Confirm that SQUARE_LOCATION_ID exists",
	"Make sure the token has the necessary permissions",
}

func disconnectedResponse(err error) (*events.APIGatewayProxyResponse, error) {
	return app.NetlifyLogAndJsonResponse(200, map[string]any{
		"success":     false,
		"status":      "disconnected",
		"error":       err.Error(),
		"message":     "Could not connect to Square. Please check your credentials.",
		"suggestions": credentialSuggestions,
	}, err)
}

// handler is a connectivity probe: it retrieves the configured location and
// always answers 200, with the connection state embedded in the body.
func handler(ctx context.Context, request events.APIGatewayProxyRequest) (*events.APIGatewayProxyResponse, error) {
	cfg, err := config.LoadSquare()
	if err != nil {
		return disconnectedResponse(err)
	}

	location, err := square.RetrieveLocation(ctx, cfg.AccessToken, cfg.LocationId)
	if err != nil {
		return disconnectedResponse(err)
	}

	return app.NetlifyJsonResponse(200, map[string]any{
		"success": true,
		"status":  "connected",
		"location": map[string]any{
			"id":     location.Id,
			"name":   location.Name,
			"status": location.Status,
		},
		"message": "Your Square account is connected successfully!",
	})
}

func main() {
	lambda.Start(app.ProfilingMiddleware(
		app.TimeoutMiddleware(app.CacheMiddleware(app.CheckEnvMiddleware(app.CorsMiddleware(handler)))),
		"square-status",
	))
}
