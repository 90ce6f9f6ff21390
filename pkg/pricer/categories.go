package pricer

import (
	"strings"
)

// Category is one row of the pricing table: the price band a dataset in that
// category may land in and how many times its cleaning cost the starting
// price must cover.
type Category struct {
	Name               string  `json:"name"`
	FloorUSD           float64 `json:"floor_usd"`
	CeilingUSD         float64 `json:"ceiling_usd"`
	CleaningMultiplier float64 `json:"cleaning_multiplier"`
}

// Categories is the fixed pricing table. Order matters only for display.
var Categories = []Category{
	{Name: "Finance", FloorUSD: 500, CeilingUSD: 50_000, CleaningMultiplier: 4.0},
	{Name: "Healthcare", FloorUSD: 1_000, CeilingUSD: 100_000, CleaningMultiplier: 5.0},
	{Name: "Marketing", FloorUSD: 200, CeilingUSD: 20_000, CleaningMultiplier: 3.0},
	{Name: "Technology", FloorUSD: 500, CeilingUSD: 50_000, CleaningMultiplier: 4.0},
	{Name: "Legal", FloorUSD: 1_000, CeilingUSD: 80_000, CleaningMultiplier: 4.5},
	{Name: "Real Estate", FloorUSD: 300, CeilingUSD: 30_000, CleaningMultiplier: 3.5},
}

// DefaultCategory applies when no label matches the table.
var DefaultCategory = Category{Name: "Default", FloorUSD: 100, CeilingUSD: 20_000, CleaningMultiplier: 3.0}

// LookupCategory returns the table entry for the first label that names a
// known category. Labels are compared case-insensitively after trimming.
func LookupCategory(labels []string) Category {
	for _, label := range labels {
		label = strings.TrimSpace(label)
		for i := range Categories {
			if strings.EqualFold(Categories[i].Name, label) {
				return Categories[i]
			}
		}
	}
	return DefaultCategory
}
