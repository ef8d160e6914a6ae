// Package discs turns Square catalog and inventory payloads into the flat
// disc records the dashboard renders: one record per sellable variation, with
// vendor, plastic and mold filled in from explicit custom attributes or
// inferred from the item's name.
package discs

// Disc is one sellable disc variation with its reconciled stock and
// attributes. Field names mirror the dashboard's JSON contract.
type Disc struct {
	Id            string  `json:"id"`
	Name          string  `json:"name"`
	Sku           string  `json:"sku"`
	Stock         int     `json:"stock"`
	Price         float64 `json:"price"`
	Vendor        string  `json:"vendor"`
	Plastic       string  `json:"plastic"`
	Mold          string  `json:"mold"`
	Sales30       int     `json:"sales30"`
	Sales90       int     `json:"sales90"`
	VariationName string  `json:"variationName"`
	ItemId        string  `json:"itemId"`
}

// Vendor is a disc manufacturer with its default reorder lead time in days.
// Lead times can be overridden in the dashboard's local settings; these are
// only starting values.
type Vendor struct {
	Name     string `json:"name"`
	LeadTime int    `json:"leadTime"`
}

// Mold is a disc design with the vendor it belongs to and a default par
// level.
type Mold struct {
	Name     string `json:"name"`
	Vendor   string `json:"vendor"`
	ParLevel int    `json:"parLevel"`
	Archived bool   `json:"archived"`
}
