package discs

import (
	"reflect"
	"strconv"
	"testing"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/anotherroundslc/disc-inventory/square"
)

func item(id string, name string, attrs square.CustomAttributeValues, variations ...square.ItemVariation) square.CatalogObject {
	return square.CatalogObject{
		Type: "ITEM",
		Id:   id,
		ItemData: &square.ItemData{
			Name:                  name,
			Variations:            variations,
			CustomAttributeValues: attrs,
		},
	}
}

func variation(id string, name string, price *square.Money) square.ItemVariation {
	return square.ItemVariation{
		Type: "ITEM_VARIATION",
		Id:   id,
		ItemVariationData: &square.ItemVariationData{
			Name:       name,
			PriceMoney: price,
		},
	}
}

func attrs(pairs map[string]string) square.CustomAttributeValues {
	values := square.CustomAttributeValues{}
	for name, value := range pairs {
		values[name] = square.CustomAttributeValue{Name: name, StringValue: value}
	}
	return values
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		Title    string
		Objects  []square.CatalogObject
		Counts   []square.InventoryCount
		Expected []Disc
	}{
		{
			Title:    "empty inputs",
			Expected: []Disc{},
		},
		{
			Title: "non-ITEM objects are skipped",
			Objects: []square.CatalogObject{
				{Type: "CATEGORY", Id: "cat-1"},
				{Type: "ITEM", Id: "item-1"},
			},
			Expected: []Disc{},
		},
		{
			Title: "item with no variations yields nothing",
			Objects: []square.CatalogObject{
				item("item-1", "Innova Destroyer", nil),
			},
			Expected: []Disc{},
		},
		{
			Title: "inferred attributes and duplicated label in display name",
			Objects: []square.CatalogObject{
				item("item-1", "Innova Destroyer", nil, variation("v1", "Star", nil)),
			},
			Expected: []Disc{
				{
					Id:            "v1",
					Name:          "Star Innova Destroyer Star",
					Vendor:        "Innova",
					Plastic:       "Star",
					Mold:          "Innova Destroyer",
					VariationName: "Star",
					ItemId:        "item-1",
				},
			},
		},
		{
			Title: "stock and price from matching count",
			Objects: []square.CatalogObject{
				item("item-1", "Zone", nil, variation("v1", "Z", &square.Money{Amount: 1799})),
			},
			Counts: []square.InventoryCount{
				{CatalogObjectId: "v1", State: "IN_STOCK", Quantity: "3"},
			},
			Expected: []Disc{
				{
					Id:            "v1",
					Name:          "Z Zone Z",
					Stock:         3,
					Price:         17.99,
					Vendor:        "Unknown",
					Plastic:       "Z",
					Mold:          "Zone",
					VariationName: "Z",
					ItemId:        "item-1",
				},
			},
		},
		{
			Title: "explicit attributes beat inference",
			Objects: []square.CatalogObject{
				item("item-1", "Innova Destroyer",
					attrs(map[string]string{"mold": "Destroyer", "vendor": "Innova Champion Discs", "plastic": "Halo"}),
					variation("v1", "Star", nil)),
			},
			Expected: []Disc{
				{
					Id:            "v1",
					Name:          "Halo Destroyer Star",
					Vendor:        "Innova Champion Discs",
					Plastic:       "Halo",
					Mold:          "Destroyer",
					VariationName: "Star",
					ItemId:        "item-1",
				},
			},
		},
		{
			Title: "variation plastic attribute beats item plastic attribute",
			Objects: []square.CatalogObject{
				{
					Type: "ITEM",
					Id:   "item-1",
					ItemData: &square.ItemData{
						Name:                  "Destroyer",
						CustomAttributeValues: attrs(map[string]string{"plastic": "Star"}),
						Variations: []square.ItemVariation{
							{
								Type: "ITEM_VARIATION",
								Id:   "v1",
								ItemVariationData: &square.ItemVariationData{
									Name:                  "173g",
									CustomAttributeValues: attrs(map[string]string{"plastic": "Halo"}),
								},
							},
						},
					},
				},
			},
			Expected: []Disc{
				{
					Id:            "v1",
					Name:          "Halo Destroyer 173g",
					Vendor:        "Unknown",
					Plastic:       "Halo",
					Mold:          "Destroyer",
					VariationName: "173g",
					ItemId:        "item-1",
				},
			},
		},
		{
			Title: "non-IN_STOCK counts never contribute",
			Objects: []square.CatalogObject{
				item("item-1", "Zone", nil, variation("v1", "", nil)),
			},
			Counts: []square.InventoryCount{
				{CatalogObjectId: "v1", State: "SOLD", Quantity: "7"},
				{CatalogObjectId: "v1", State: "WASTE", Quantity: "2"},
			},
			Expected: []Disc{
				{
					Id:      "v1",
					Name:    "Unknown Zone",
					Vendor:  "Unknown",
					Plastic: "Unknown",
					Mold:    "Zone",
					ItemId:  "item-1",
				},
			},
		},
		{
			Title: "repeated count id is last-write-wins",
			Objects: []square.CatalogObject{
				item("item-1", "Zone", nil, variation("v1", "", nil)),
			},
			Counts: []square.InventoryCount{
				{CatalogObjectId: "v1", State: "IN_STOCK", Quantity: "4"},
				{CatalogObjectId: "v1", State: "IN_STOCK", Quantity: "9"},
			},
			Expected: []Disc{
				{
					Id:      "v1",
					Name:    "Unknown Zone",
					Stock:   9,
					Vendor:  "Unknown",
					Plastic: "Unknown",
					Mold:    "Zone",
					ItemId:  "item-1",
				},
			},
		},
		{
			Title: "variation without data is skipped",
			Objects: []square.CatalogObject{
				{
					Type: "ITEM",
					Id:   "item-1",
					ItemData: &square.ItemData{
						Name: "Zone",
						Variations: []square.ItemVariation{
							{Type: "ITEM_VARIATION", Id: "v1"},
						},
					},
				},
			},
			Expected: []Disc{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.Title, func(t *testing.T) {
			res := Reconcile(tt.Objects, tt.Counts)
			if !reflect.DeepEqual(res, tt.Expected) {
				t.Fatalf("expected:\n%#v\ngot:\n%#v", tt.Expected, res)
			}
		})
	}
}

func TestReconcileIsPure(t *testing.T) {
	faker := gofakeit.New(42)

	var objects []square.CatalogObject
	for range 25 {
		var variations []square.ItemVariation
		for range faker.IntRange(0, 4) {
			variations = append(variations, variation(
				faker.UUID(),
				faker.Word(),
				&square.Money{Amount: int64(faker.IntRange(500, 3000))},
			))
		}
		objects = append(objects, item(faker.UUID(), faker.Word()+" "+faker.Word(), nil, variations...))
	}

	var counts []square.InventoryCount
	for _, object := range objects {
		for _, v := range object.ItemData.Variations {
			counts = append(counts, square.InventoryCount{
				CatalogObjectId: v.Id,
				State:           faker.RandomString([]string{"IN_STOCK", "SOLD", "WASTE"}),
				Quantity:        strconv.Itoa(faker.IntRange(0, 50)),
			})
		}
	}

	first := Reconcile(objects, counts)
	second := Reconcile(objects, counts)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("reconciling the same inputs twice produced different output")
	}

	for _, disc := range first {
		if disc.Stock < 0 {
			t.Fatalf("negative stock for %v: %v", disc.Id, disc.Stock)
		}
		if disc.Sales30 != 0 || disc.Sales90 != 0 {
			t.Fatalf("sales fields must stay zero, got %v/%v", disc.Sales30, disc.Sales90)
		}
	}
}
