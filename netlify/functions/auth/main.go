package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/anotherroundslc/disc-inventory/app"
	"github.com/anotherroundslc/disc-inventory/config"
	"github.com/anotherroundslc/disc-inventory/square"
)

func handler(ctx context.Context, request events.APIGatewayProxyRequest) (*events.APIGatewayProxyResponse, error) {
	if request.HTTPMethod != http.MethodGet {
		return app.NetlifyJsonResponse(405, map[string]any{"error": "Method Not Allowed"})
	}

	code := request.QueryStringParameters["code"]
	if code == "" {
		return app.NetlifyLogAndJsonResponse(400, map[string]any{"error": "Authorization code is required"}, nil)
	}

	cfg, err := config.LoadOAuth()
	if err != nil {
		return app.NetlifyLogAndJsonResponse(500, map[string]any{"error": err.Error()}, err)
	}

	token, err := square.ExchangeCode(ctx, cfg.AppId, cfg.AppSecret, code)
	if err != nil {
		return app.NetlifyLogAndJsonResponse(500, map[string]any{"error": "Failed to exchange code for token"}, err)
	}

	// The token rides back to the dashboard in the URL fragment so it never
	// hits server logs.
	return app.NetlifyRedirectResponse(fmt.Sprintf("/%s#dashboard", token.AccessToken))
}

func main() {
	lambda.Start(app.ProfilingMiddleware(
		app.TimeoutMiddleware(app.CacheMiddleware(app.CheckEnvMiddleware(app.CorsMiddleware(handler)))),
		"auth",
	))
}
