package discs

import (
	"strings"
	"testing"
)

func TestInferVendor(t *testing.T) {
	tests := []struct {
		Title     string
		Candidate string
		Expected  string
	}{
		{
			Title:     "vendor in item name",
			Candidate: "Innova Destroyer",
			Expected:  "Innova",
		},
		{
			Title:     "multi-word vendor",
			Candidate: "Dynamic Discs Truth",
			Expected:  "Dynamic Discs",
		},
		{
			Title:     "no known vendor",
			Candidate: "Zone",
			Expected:  "Unknown",
		},
		{
			Title:     "empty candidate",
			Candidate: "",
			Expected:  "Unknown",
		},
		{
			Title:     "match is case-sensitive",
			Candidate: "innova destroyer",
			Expected:  "Unknown",
		},
	}
	for _, tt := range tests {
		t.Run(tt.Title, func(t *testing.T) {
			res := InferVendor(tt.Candidate)
			if res != tt.Expected {
				t.Fatalf("expected %q, got %q", tt.Expected, res)
			}
		})
	}
}

func TestInferPlastic(t *testing.T) {
	tests := []struct {
		Title         string
		ItemName      string
		VariationName string
		Expected      string
	}{
		{
			Title:         "plastic in variation name",
			ItemName:      "Innova Destroyer",
			VariationName: "Star",
			Expected:      "Star",
		},
		{
			Title:         "plastic in item name",
			ItemName:      "Champion Wraith",
			VariationName: "173g",
			Expected:      "Champion",
		},
		{
			Title:         "unmatched variation label wins over Unknown",
			ItemName:      "Zone",
			VariationName: "Z",
			Expected:      "Z",
		},
		{
			Title:         "no plastic and no label",
			ItemName:      "Buzzz",
			VariationName: "",
			Expected:      "Unknown",
		},
		{
			Title:         "longer name listed before its substring",
			ItemName:      "Tern",
			VariationName: "GStar",
			Expected:      "GStar",
		},
	}
	for _, tt := range tests {
		t.Run(tt.Title, func(t *testing.T) {
			res := InferPlastic(tt.ItemName, tt.VariationName)
			if res != tt.Expected {
				t.Fatalf("expected %q, got %q", tt.Expected, res)
			}
		})
	}
}

// Every known plastic that contains another known plastic as a substring must
// be listed first, or the shorter name would always shadow it.
func TestKnownPlasticsOrdering(t *testing.T) {
	for i, plastic := range KnownPlastics {
		for _, earlier := range KnownPlastics[:i] {
			if strings.Contains(plastic, earlier) {
				t.Fatalf("%q contains %q but is listed after it", plastic, earlier)
			}
		}
	}
}
