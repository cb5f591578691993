package bill

import "strings"

// CategoryShelfLife pairs a product-category keyword with a default shelf
// life in days. The table is scanned in order against the uppercased source
// text of the receipt line: first keyword found wins, so more perishable
// categories come first.
type CategoryShelfLife struct {
	Keyword string
	Days    int
}

// DefaultShelfLifeDays applies when no category keyword appears in the line.
const DefaultShelfLifeDays = 365

var DefaultCategories = []CategoryShelfLife{
	{"FISH", 2},
	{"SEAFOOD", 2},
	{"MEAT", 4},
	{"CHICKEN", 4},
	{"BREAD", 5},
	{"VEG", 7},
	{"FRUIT", 7},
	{"DAIRY", 7},
	{"MILK", 7},
	{"EGG", 21},
	{"FROZEN", 90},
	{"SNACK", 120},
	{"GRAIN", 180},
	{"BEVERAGE", 180},
}

// EstimateShelfLife scans the full source text of a receipt line, not just
// the parsed name: category class markers often sit outside the name span.
func EstimateShelfLife(sourceText string, categories []CategoryShelfLife) int {
	upper := strings.ToUpper(sourceText)
	for _, category := range categories {
		if strings.Contains(upper, category.Keyword) {
			return category.Days
		}
	}
	return DefaultShelfLifeDays
}
