package discs

import (
	"github.com/samber/lo"

	"github.com/anotherroundslc/disc-inventory/helpers"
	"github.com/anotherroundslc/disc-inventory/square"
)

const defaultParLevel = 15

// defaultLeadTimes are per-vendor reorder lead times in days; vendors not
// listed get leadTimeFallback. Matched ignoring case and accents.
var defaultLeadTimes = map[string]int{
	"Innova":        7,
	"Discraft":      7,
	"MVP":           14,
	"Dynamic Discs": 10,
	"Latitude 64":   10,
	"Westside":      10,
}

const leadTimeFallback = 7

func leadTimeFor(vendorName string) int {
	for name, days := range defaultLeadTimes {
		if equal, err := helpers.CompareStrings(name, vendorName); err == nil && equal {
			return days
		}
	}
	return leadTimeFallback
}

func catalogItems(objects []square.CatalogObject) []square.CatalogObject {
	return lo.Filter(objects, func(object square.CatalogObject, _ int) bool {
		return object.Type == "ITEM" && object.ItemData != nil
	})
}

// ExtractVendors collects the distinct vendors named by explicit `vendor`
// custom attributes. Items without the attribute are skipped (no inference
// here - a guessed vendor should not become a reorder contact). First
// occurrence of a name wins. An empty result is replaced by the defaults so
// the dashboard always has vendors to show.
func ExtractVendors(objects []square.CatalogObject) []Vendor {
	seen := map[string]bool{}
	vendors := []Vendor{}

	for _, item := range catalogItems(objects) {
		vendorName, hasVendor := item.ItemData.CustomAttributeValues.Lookup("vendor")
		if !hasVendor || seen[vendorName] {
			continue
		}
		seen[vendorName] = true
		vendors = append(vendors, Vendor{
			Name:     vendorName,
			LeadTime: leadTimeFor(vendorName),
		})
	}

	if len(vendors) == 0 {
		return DefaultVendors()
	}
	return vendors
}

// ExtractMolds collects the distinct molds in the catalog, named by the
// explicit `mold` custom attribute or the item name. The vendor shown next to
// each mold is inferred from the mold name when not tagged. First occurrence
// of a name wins. An empty result is replaced by the defaults.
func ExtractMolds(objects []square.CatalogObject) []Mold {
	seen := map[string]bool{}
	molds := []Mold{}

	for _, item := range catalogItems(objects) {
		moldName, hasMold := item.ItemData.CustomAttributeValues.Lookup("mold")
		if !hasMold {
			moldName = item.ItemData.Name
		}
		if moldName == "" || seen[moldName] {
			continue
		}

		vendor, hasVendor := item.ItemData.CustomAttributeValues.Lookup("vendor")
		if !hasVendor {
			vendor = InferVendor(moldName)
		}

		seen[moldName] = true
		molds = append(molds, Mold{
			Name:     moldName,
			Vendor:   vendor,
			ParLevel: defaultParLevel,
			Archived: false,
		})
	}

	if len(molds) == 0 {
		return DefaultMolds()
	}
	return molds
}
