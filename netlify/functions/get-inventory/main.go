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

// fetchInventory reconciles the live catalog and counts, substituting the
// demo dataset per the fallback policy. Returns the records, where they came
// from ("square" or "demo") and a diagnostic for the degraded cases.
func fetchInventory(ctx context.Context, cfg *config.Square, policy discs.FallbackPolicy) (inventory []discs.Disc, source string, diagnostic string) {
	if policy == discs.FallbackAlways {
		return discs.DefaultInventory(), "demo", ""
	}

	objects, err := square.ListCatalogItems(ctx, cfg.AccessToken)
	if err != nil {
		log.Printf("Falling back to demo inventory: %v", err)
		return discs.DefaultInventory(), "demo", err.Error()
	}

	counts, err := square.RetrieveInventoryCounts(ctx, cfg.AccessToken, cfg.LocationId)
	if err != nil {
		log.Printf("Falling back to demo inventory: %v", err)
		return discs.DefaultInventory(), "demo", err.Error()
	}

	// An empty reconciliation is not an upstream failure, so the demo
	// substitute still reports success.
	inventory = discs.Reconcile(objects, counts)
	if policy.ShouldFallback(nil, len(inventory)) {
		log.Println("No usable catalog data, falling back to demo inventory")
		return discs.DefaultInventory(), "demo", ""
	}
	return inventory, "square", ""
}

func handler(ctx context.Context, request events.APIGatewayProxyRequest) (*events.APIGatewayProxyResponse, error) {
	if request.HTTPMethod != http.MethodGet {
		return app.NetlifyJsonResponse(405, map[string]any{"success": false, "error": "Method Not Allowed"})
	}

	cfg, err := config.LoadSquare()
	if err != nil {
		return app.NetlifyLogAndJsonResponse(500, map[string]any{"success": false, "error": err.Error()}, err)
	}

	policy := discs.ParseFallbackPolicy(config.LoadApp().FallbackPolicy)
	inventory, source, diagnostic := fetchInventory(ctx, cfg, policy)

	response := map[string]any{
		"success":   diagnostic == "",
		"inventory": inventory,
		"source":    source,
	}
	if diagnostic != "" {
		response["error"] = diagnostic
	}
	return app.NetlifyJsonResponse(200, response)
}

func main() {
	lambda.Start(app.ProfilingMiddleware(
		app.TimeoutMiddleware(app.CacheMiddleware(app.CheckEnvMiddleware(app.CorsMiddleware(handler)))),
		"get-inventory",
	))
}
