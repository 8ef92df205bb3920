package config

import (
	"github.com/iwvelando/pieces-planner/internal/planner"
	"github.com/iwvelando/pieces-planner/pkg/constants"
)

// DefaultPlanner returns the plan-wide inputs used when none are configured.
func DefaultPlanner() planner.Config {
	return planner.Config{
		MonthlyRevenueTarget: constants.DefaultMonthlyRevenueTarget,
		DaysInMonth:          constants.DefaultDaysInMonth,
		LaborPercent:         constants.DefaultLaborPercent,
		NormalizeMix:         constants.DefaultNormalizeMix,
	}
}

// DefaultCategories returns the starter category list. The mix totals 98%,
// so the defaults rely on normalization.
func DefaultCategories() []planner.CategoryAssumption {
	return []planner.CategoryAssumption{
		{Name: "Apparel", MixPercent: 50, AvgSale: 6.5},
		{Name: "Wares", MixPercent: 23, AvgSale: 5},
		{Name: "Shoes", MixPercent: 7, AvgSale: 9},
		{Name: "Accessories", MixPercent: 7, AvgSale: 4},
		{Name: "E&M", MixPercent: 5, AvgSale: 18},
		{Name: "Media", MixPercent: 2, AvgSale: 3},
		{Name: "Furniture", MixPercent: 4, AvgSale: 55},
	}
}
