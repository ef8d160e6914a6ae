package square

import (
	"context"
	"fmt"
)

// ExchangeCode trades an OAuth authorization code for an access token.
func ExchangeCode(ctx context.Context, appId string, appSecret string, code string) (*TokenResponse, error) {
	body := map[string]any{
		"client_id":     appId,
		"client_secret": appSecret,
		"code":          code,
		"grant_type":    "authorization_code",
	}
	response, err := (&endpoint[TokenResponse]{}).Call(ctx, "POST", "/oauth2/token", "", body)
	if err != nil {
		return nil, fmt.Errorf("error exchanging code for Square token:\n>>> %w", err)
	}
	if response.AccessToken == "" {
		return nil, fmt.Errorf("no access token in Square OAuth response")
	}
	return response, nil
}
