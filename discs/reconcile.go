package discs

import (
	"github.com/anotherroundslc/disc-inventory/square"
)

// stateInStock is the only inventory state that counts toward stock on hand.
const stateInStock = "IN_STOCK"

// Reconcile joins catalog items with inventory counts into one Disc per
// variation. Items and variations keep their input order; non-ITEM objects
// and objects without data are skipped; a variation with no matching count
// simply has zero stock.
//
// The composed display name is "{plastic} {mold}" plus the variation label
// when present. When the inferred plastic is the variation label, the label
// appears twice ("Star Innova Destroyer Star"); the dashboard has always
// shown names this way, so the duplication is kept deliberately.
func Reconcile(objects []square.CatalogObject, counts []square.InventoryCount) []Disc {
	stock := map[string]int{}
	for _, count := range counts {
		if count.State == stateInStock {
			// Counts are a point-in-time snapshot; a repeated id replaces the
			// earlier entry rather than summing.
			stock[count.CatalogObjectId] = count.Count()
		}
	}

	discs := []Disc{}
	for _, object := range objects {
		if object.Type != "ITEM" || object.ItemData == nil {
			continue
		}
		item := object.ItemData

		mold, hasMold := item.CustomAttributeValues.Lookup("mold")
		if !hasMold {
			mold = item.Name
		}

		vendor, hasVendor := item.CustomAttributeValues.Lookup("vendor")
		if !hasVendor {
			vendor = InferVendor(item.Name)
		}

		for _, variation := range item.Variations {
			if variation.ItemVariationData == nil {
				continue
			}
			variationData := variation.ItemVariationData

			plastic, hasPlastic := variationData.CustomAttributeValues.Lookup("plastic")
			if !hasPlastic {
				plastic, hasPlastic = item.CustomAttributeValues.Lookup("plastic")
			}
			if !hasPlastic {
				plastic = InferPlastic(item.Name, variationData.Name)
			}

			name := plastic + " " + mold
			if variationData.Name != "" {
				name += " " + variationData.Name
			}

			discs = append(discs, Disc{
				Id:            variation.Id,
				Name:          name,
				Sku:           variationData.Sku,
				Stock:         stock[variation.Id],
				Price:         variationData.PriceMoney.Dollars(),
				Vendor:        vendor,
				Plastic:       plastic,
				Mold:          mold,
				Sales30:       0,
				Sales90:       0,
				VariationName: variationData.Name,
				ItemId:        object.Id,
			})
		}
	}

	return discs
}
