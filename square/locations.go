package square

import (
	"context"
	"fmt"
	"net/url"
)

type locationsResponse struct {
	Locations []Location `json:"locations"`
}

type locationResponse struct {
	Location Location `json:"location"`
}

// ListLocations fetches all of the merchant's locations.
func ListLocations(ctx context.Context, token string) ([]Location, error) {
	response, err := (&endpoint[locationsResponse]{}).Call(ctx, "GET", "/v2/locations", token, nil)
	if err != nil {
		return nil, fmt.Errorf("error listing Square locations:\n>>> %w", err)
	}
	return response.Locations, nil
}

// RetrieveLocation fetches a single location by id.
func RetrieveLocation(ctx context.Context, token string, locationId string) (*Location, error) {
	path := fmt.Sprintf("/v2/locations/%s", url.PathEscape(locationId))
	response, err := (&endpoint[locationResponse]{}).Call(ctx, "GET", path, token, nil)
	if err != nil {
		return nil, fmt.Errorf("error retrieving Square location:\n>>> %w", err)
	}
	return &response.Location, nil
}
