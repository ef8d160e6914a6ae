package square

import (
	"strconv"
	"strings"
)

// CustomAttributeValue is one vendor-defined key/value tag on a catalog
// object. Only string-valued attributes are used here.
type CustomAttributeValue struct {
	Name        string `json:"name"`
	StringValue string `json:"string_value"`
}

type CustomAttributeValues map[string]CustomAttributeValue

// Lookup returns the attribute's string value. An empty value reads the same
// as an absent attribute, matching how the dashboard treats untagged items.
func (c CustomAttributeValues) Lookup(name string) (string, bool) {
	attribute, found := c[name]
	if !found || attribute.StringValue == "" {
		return "", false
	}
	return attribute.StringValue, true
}

type CatalogObject struct {
	Type     string    `json:"type"`
	Id       string    `json:"id"`
	ItemData *ItemData `json:"item_data,omitempty"`
}

type ItemData struct {
	Name                  string                `json:"name"`
	Description           string                `json:"description,omitempty"`
	Variations            []ItemVariation       `json:"variations,omitempty"`
	CustomAttributeValues CustomAttributeValues `json:"custom_attribute_values,omitempty"`
}

type ItemVariation struct {
	Type              string             `json:"type"`
	Id                string             `json:"id"`
	ItemVariationData *ItemVariationData `json:"item_variation_data,omitempty"`
}

type ItemVariationData struct {
	Name                  string                `json:"name,omitempty"`
	Sku                   string                `json:"sku,omitempty"`
	PriceMoney            *Money                `json:"price_money,omitempty"`
	CustomAttributeValues CustomAttributeValues `json:"custom_attribute_values,omitempty"`
}

// Money is an amount in the currency's minor unit (cents for USD).
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency,omitempty"`
}

// Dollars converts the minor-unit amount to major units. A nil or absent
// price reads as zero.
func (m *Money) Dollars() float64 {
	if m == nil {
		return 0
	}
	return float64(m.Amount) / 100
}

// InventoryCount is one point-in-time quantity for a catalog object at a
// location. Square transmits the quantity as a decimal string so it never
// hits JSON number precision limits.
type InventoryCount struct {
	CatalogObjectId string `json:"catalog_object_id"`
	State           string `json:"state"`
	LocationId      string `json:"location_id,omitempty"`
	Quantity        string `json:"quantity"`
}

// Count converts the wire quantity to an int. Malformed, negative or
// out-of-range quantities read as zero; strconv.Atoi already rejects values
// that overflow the host int.
func (c *InventoryCount) Count() int {
	quantity, err := strconv.Atoi(strings.TrimSpace(c.Quantity))
	if err != nil || quantity < 0 {
		return 0
	}
	return quantity
}

type Location struct {
	Id      string `json:"id"`
	Name    string `json:"name"`
	Status  string `json:"status"`
	Country string `json:"country,omitempty"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   string `json:"expires_at"`
	MerchantId  string `json:"merchant_id"`
}
