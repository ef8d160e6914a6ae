package square

import (
	"context"
	"fmt"
	"net/url"

	"github.com/anotherroundslc/disc-inventory/app"
)

type catalogListResponse struct {
	Objects []CatalogObject `json:"objects"`
	Cursor  string          `json:"cursor"`
}

// ListCatalogItems fetches every ITEM catalog object, following the
// pagination cursor page by page. A failure on any page aborts the whole
// listing. The result is memoized in the per-invocation cache so a handler
// that needs the catalog twice only pays for one fetch.
func ListCatalogItems(ctx context.Context, token string) ([]CatalogObject, error) {
	if cached, found := app.GetCached[[]CatalogObject](ctx, "square", "catalog", "ITEM"); found {
		return cached, nil
	}

	var objects []CatalogObject
	cursor := ""
	for {
		path := "/v2/catalog/list?types=ITEM"
		if cursor != "" {
			path += fmt.Sprintf("&cursor=%s", url.QueryEscape(cursor))
		}
		page, err := (&endpoint[catalogListResponse]{}).Call(ctx, "GET", path, token, nil)
		if err != nil {
			return nil, fmt.Errorf("error listing Square catalog:\n>>> %w", err)
		}
		objects = append(objects, page.Objects...)
		if page.Cursor == "" {
			break
		}
		cursor = page.Cursor
	}

	app.SetCached(ctx, objects, "square", "catalog", "ITEM")
	return objects, nil
}
