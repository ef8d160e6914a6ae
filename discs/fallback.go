package discs

// FallbackPolicy decides when a read endpoint substitutes the demo dataset
// for live data. Each level includes the previous one: on-error only degrades
// on a failed Square call, on-empty additionally treats a usable-record count
// of zero as no data, always skips Square entirely.
type FallbackPolicy string

const (
	FallbackOnError FallbackPolicy = "on-error"
	FallbackOnEmpty FallbackPolicy = "on-empty"
	FallbackAlways  FallbackPolicy = "always"
)

// ParseFallbackPolicy reads a policy name, defaulting to on-empty for empty
// or unrecognized input (the dominant behavior of the dashboard).
func ParseFallbackPolicy(name string) FallbackPolicy {
	switch FallbackPolicy(name) {
	case FallbackOnError, FallbackOnEmpty, FallbackAlways:
		return FallbackPolicy(name)
	}
	return FallbackOnEmpty
}

// ShouldFallback reports whether the demo data should replace a result that
// came back with the given error and record count.
func (p FallbackPolicy) ShouldFallback(err error, records int) bool {
	switch p {
	case FallbackAlways:
		return true
	case FallbackOnEmpty:
		return err != nil || records == 0
	default:
		return err != nil
	}
}

// DefaultInventory is the demo dataset shown when no live inventory is
// available. Representative of the shop's actual wall, never empty.
func DefaultInventory() []Disc {
	return []Disc{
		{Id: "demo-1", Name: "Star Destroyer", Sku: "INN-STAR-DEST", Stock: 12, Price: 19.99, Vendor: "Innova", Plastic: "Star", Mold: "Destroyer", VariationName: "175g", ItemId: "demo-item-1"},
		{Id: "demo-2", Name: "Champion Wraith", Sku: "INN-CHAMP-WRAITH", Stock: 8, Price: 18.99, Vendor: "Innova", Plastic: "Champion", Mold: "Wraith", VariationName: "173g", ItemId: "demo-item-2"},
		{Id: "demo-3", Name: "ESP Buzzz", Sku: "DIS-ESP-BUZZZ", Stock: 15, Price: 17.99, Vendor: "Discraft", Plastic: "ESP", Mold: "Buzzz", VariationName: "177g", ItemId: "demo-item-3"},
		{Id: "demo-4", Name: "Jawbreaker Zone", Sku: "DIS-JAW-ZONE", Stock: 10, Price: 15.99, Vendor: "Discraft", Plastic: "Jawbreaker", Mold: "Zone", VariationName: "174g", ItemId: "demo-item-4"},
		{Id: "demo-5", Name: "Neutron Envy", Sku: "MVP-NEU-ENVY", Stock: 6, Price: 16.99, Vendor: "MVP", Plastic: "Neutron", Mold: "Envy", VariationName: "172g", ItemId: "demo-item-5"},
		{Id: "demo-6", Name: "Lucid Truth", Sku: "DD-LUC-TRUTH", Stock: 9, Price: 15.99, Vendor: "Dynamic Discs", Plastic: "Lucid", Mold: "Truth", VariationName: "176g", ItemId: "demo-item-6"},
		{Id: "demo-7", Name: "Opto River", Sku: "L64-OPTO-RIVER", Stock: 5, Price: 15.99, Vendor: "Latitude 64", Plastic: "Opto", Mold: "River", VariationName: "173g", ItemId: "demo-item-7"},
	}
}

// DefaultVendors is the demo vendor list.
func DefaultVendors() []Vendor {
	return []Vendor{
		{Name: "Innova", LeadTime: 7},
		{Name: "Discraft", LeadTime: 7},
		{Name: "MVP", LeadTime: 14},
		{Name: "Dynamic Discs", LeadTime: 10},
		{Name: "Latitude 64", LeadTime: 10},
		{Name: "Westside", LeadTime: 10},
	}
}

// DefaultMolds is the demo mold list.
func DefaultMolds() []Mold {
	return []Mold{
		{Name: "Destroyer", Vendor: "Innova", ParLevel: 15, Archived: false},
		{Name: "Zone", Vendor: "Discraft", ParLevel: 15, Archived: false},
		{Name: "Envy", Vendor: "MVP", ParLevel: 15, Archived: false},
		{Name: "Wraith", Vendor: "Innova", ParLevel: 15, Archived: false},
	}
}
