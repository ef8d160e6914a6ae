package main

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/anotherroundslc/disc-inventory/app"
	"github.com/anotherroundslc/disc-inventory/square"
)

// handler lists the merchant locations for the token the dashboard obtained
// through the OAuth flow. The caller's own token is used here, not the
// server-side credentials.
func handler(ctx context.Context, request events.APIGatewayProxyRequest) (*events.APIGatewayProxyResponse, error) {
	if request.HTTPMethod != http.MethodGet {
		return app.NetlifyJsonResponse(405, map[string]any{"error": "Method Not Allowed"})
	}

	token, err := app.BearerToken(request)
	if err != nil {
		return app.NetlifyLogAndJsonResponse(401, map[string]any{"error": "Authorization token is required"}, err)
	}

	locations, err := square.ListLocations(ctx, token)
	if err != nil {
		return app.NetlifyLogAndJsonResponse(500, map[string]any{"error": "Failed to fetch locations"}, err)
	}

	return app.NetlifyJsonResponse(200, map[string]any{
		"success":   true,
		"locations": locations,
	})
}

func main() {
	lambda.Start(app.ProfilingMiddleware(
		app.TimeoutMiddleware(app.CacheMiddleware(app.CheckEnvMiddleware(app.CorsMiddleware(handler)))),
		"locations",
	))
}
