package discs

import "strings"

// UnknownAttribute is the value for a vendor or plastic that could not be
// determined. It is a normal outcome, not an error.
const UnknownAttribute = "Unknown"

// KnownVendors are the disc golf manufacturers the shop stocks. Scanned in
// order, first substring match wins, so a name that contains another known
// name must come before it.
var KnownVendors = []string{
	"Innova", "Discraft", "Dynamic Discs", "MVP", "Axiom", "Streamline",
	"Latitude 64", "Westside", "Prodigy", "Gateway", "Kastaplast", "Discmania",
}

// KnownPlastics are common plastic blend names across those vendors. Same
// ordering rule as KnownVendors: "GStar" before "Star", "Lucid-X" before
// "Lucid", "Proton" before "Pro".
var KnownPlastics = []string{
	"GStar", "Star", "Champion", "Halo", "Shimmer", "Metal Flake", "DX",
	"Jawbreaker", "Big Z", "Titanium", "Z FLX", "ESP FLX", "ESP", "Z Glo", "Z Line",
	"Neutron", "Proton", "Plasma", "Electron Firm", "Electron Soft", "Electron",
	"Fission", "Cosmic", "Eclipse",
	"Opto-X", "Opto", "Gold Line", "Royal", "Frost",
	"Lucid-X", "Lucid Air", "Lucid", "Fuzion Burst", "Fuzion", "Prime Burst", "Prime",
	"K1 Soft", "K1", "K3", "VIP Air", "VIP", "Tournament", "Origio",
	"400G", "400", "500", "750", "300",
	"S-Line", "C-Line", "D-Line", "P-Line",
}

// InferVendor finds a known vendor name inside the candidate text. The match
// is a case-sensitive substring check; no match yields UnknownAttribute.
func InferVendor(candidate string) string {
	for _, vendor := range KnownVendors {
		if strings.Contains(candidate, vendor) {
			return vendor
		}
	}
	return UnknownAttribute
}

// InferPlastic finds a known plastic name inside the combined item and
// variation names. When nothing matches but the variation has a label, the
// label itself is the best available plastic name (variations are usually
// labelled by blend).
func InferPlastic(itemName string, variationName string) string {
	candidate := itemName + " " + variationName
	for _, plastic := range KnownPlastics {
		if strings.Contains(candidate, plastic) {
			return plastic
		}
	}
	if variationName != "" {
		return variationName
	}
	return UnknownAttribute
}
