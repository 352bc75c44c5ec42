package view

import (
	"rtalks.io/rtalks-web/internal/backend"
	"rtalks.io/rtalks-web/internal/content"
	"rtalks.io/rtalks-web/internal/format"
)

// PackageCard is one pricing tier as rendered.
type PackageCard struct {
	PackageType string
	Category    string
	Name        string
	PriceLabel  string
	Features    []string
}

// PackagesView is the pricing grid view model.
type PackagesView struct {
	Cards   []PackageCard
	Message string
}

// BuildPackages maps fetched tiers onto cards, applying the original page's
// defaults for missing names and categories.
func BuildPackages(section content.PackagesSection) PackagesView {
	if section.State != content.StateLoaded {
		return PackagesView{Message: content.Message(content.WidgetPackages, section.State)}
	}
	cards := make([]PackageCard, 0, len(section.Items))
	for _, pkg := range section.Items {
		card := PackageCard{
			PackageType: pkg.PackageType,
			Category:    pkg.Category,
			Name:        pkg.Name,
			PriceLabel:  format.Rupees(pkg.Price),
			Features:    pkg.Features,
		}
		if card.PackageType == "" {
			card.PackageType = "general"
		}
		if card.Category == "" {
			card.Category = "Package"
		}
		if card.Name == "" {
			card.Name = "Event Package"
		}
		cards = append(cards, card)
	}
	return PackagesView{Cards: cards}
}

// Seeded tiers used when the packages fetch has not populated the table.
var defaultPrices = map[string]int64{
	"professional": 299,
	"executive":    2999,
	"leadership":   4999,
}

var defaultNames = map[string]string{
	"professional": "Professional Pass",
	"executive":    "Executive Pass",
	"leadership":   "Leadership Pass",
}

// PriceTable builds the package_type → price map the purchase flow validates
// against. Fetched packages overlay the seeded defaults.
func PriceTable(items []backend.Package) map[string]int64 {
	table := make(map[string]int64, len(defaultPrices)+len(items))
	for k, v := range defaultPrices {
		table[k] = v
	}
	for _, pkg := range items {
		if pkg.PackageType != "" {
			table[pkg.PackageType] = pkg.Price
		}
	}
	return table
}

// DisplayName resolves the customer-facing package name for a tier key.
func DisplayName(items []backend.Package, packageType string) string {
	for _, pkg := range items {
		if pkg.PackageType == packageType && pkg.Name != "" {
			return pkg.Name
		}
	}
	if name, ok := defaultNames[packageType]; ok {
		return name
	}
	return "Ticket Package"
}
