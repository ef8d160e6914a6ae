package square

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type inventoryCountsResponse struct {
	Counts []InventoryCount `json:"counts"`
	Cursor string           `json:"cursor"`
}

// RetrieveInventoryCounts fetches all inventory counts for a location,
// following the pagination cursor. A failure on any page aborts the listing.
func RetrieveInventoryCounts(ctx context.Context, token string, locationId string) ([]InventoryCount, error) {
	var counts []InventoryCount
	cursor := ""
	for {
		body := map[string]any{
			"location_ids": []string{locationId},
		}
		if cursor != "" {
			body["cursor"] = cursor
		}
		page, err := (&endpoint[inventoryCountsResponse]{}).Call(ctx, "POST", "/v2/inventory/counts/batch-retrieve", token, body)
		if err != nil {
			return nil, fmt.Errorf("error retrieving Square inventory counts:\n>>> %w", err)
		}
		counts = append(counts, page.Counts...)
		if page.Cursor == "" {
			break
		}
		cursor = page.Cursor
	}
	return counts, nil
}

// Adjustment moves Quantity units of a variation from one inventory state to
// another at a location.
type Adjustment struct {
	CatalogObjectId string
	LocationId      string
	FromState       string
	ToState         string
	Quantity        int
	OccurredAt      time.Time
}

// ApplyAdjustment submits a single ADJUSTMENT change. Each call generates a
// fresh idempotency key, so retrying a failed HTTP request is a new change
// while Square-side retries of the same request apply at most once.
func ApplyAdjustment(ctx context.Context, token string, adjustment Adjustment) ([]InventoryCount, error) {
	body := map[string]any{
		"idempotency_key": uuid.NewString(),
		"changes": []any{
			map[string]any{
				"type": "ADJUSTMENT",
				"adjustment": map[string]any{
					"catalog_object_id": adjustment.CatalogObjectId,
					"location_id":       adjustment.LocationId,
					"from_state":        adjustment.FromState,
					"to_state":          adjustment.ToState,
					"quantity":          strconv.Itoa(adjustment.Quantity),
					"occurred_at":       adjustment.OccurredAt.UTC().Format(time.RFC3339),
				},
			},
		},
	}
	response, err := (&endpoint[inventoryCountsResponse]{}).Call(ctx, "POST", "/v2/inventory/changes/batch-create", token, body)
	if err != nil {
		return nil, fmt.Errorf("error applying Square inventory adjustment:\n>>> %w", err)
	}
	return response.Counts, nil
}
