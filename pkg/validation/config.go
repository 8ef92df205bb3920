package validation

import (
	"fmt"

	"github.com/iwvelando/pieces-planner/internal/planner"
	"github.com/iwvelando/pieces-planner/pkg/constants"
)

// ValidatePlanner checks plan-wide inputs against the ranges the planner is
// designed for and returns warnings for values outside them.
func ValidatePlanner(cfg planner.Config) []string {
	var warnings []string

	if cfg.MonthlyRevenueTarget < 0 {
		warnings = append(warnings, fmt.Sprintf("Monthly revenue target is negative (%.2f)", cfg.MonthlyRevenueTarget))
	}
	if cfg.LaborPercent < 0 || cfg.LaborPercent > constants.PercentageMultiplier {
		warnings = append(warnings, fmt.Sprintf("Labor percent %.2f is outside 0-100", cfg.LaborPercent))
	}

	return warnings
}

// ValidateCategory checks one category's assumptions against the editor's
// input ranges. Out-of-range values are still calculated: the planner clamps
// average sale and sell-through itself.
func ValidateCategory(c planner.CategoryAssumption) []string {
	var warnings []string

	if c.MixPercent < 0 || c.MixPercent > constants.FullMixPercent {
		warnings = append(warnings, fmt.Sprintf("Category '%s' mix %.2f%% is outside 0-100", c.Name, c.MixPercent))
	}
	if c.AvgSale < constants.MinAverageSale {
		warnings = append(warnings, fmt.Sprintf("Category '%s' average sale %.2f is below %.2f and will be raised to it",
			c.Name, c.AvgSale, constants.MinAverageSale))
	}
	if c.SellThroughPercent < 0 || c.SellThroughPercent > constants.PercentageMultiplier {
		warnings = append(warnings, fmt.Sprintf("Category '%s' sell-through %.2f%% is outside 0-100", c.Name, c.SellThroughPercent))
	}
	if c.ASPDeltaPercent < constants.MinASPDeltaPercent || c.ASPDeltaPercent > constants.MaxASPDeltaPercent {
		warnings = append(warnings, fmt.Sprintf("Category '%s' ASP change %.2f%% is outside %.0f to %.0f",
			c.Name, c.ASPDeltaPercent, constants.MinASPDeltaPercent, constants.MaxASPDeltaPercent))
	}
	if c.STDeltaPercent < constants.MinSTDeltaPercent || c.STDeltaPercent > constants.MaxSTDeltaPercent {
		warnings = append(warnings, fmt.Sprintf("Category '%s' sell-through change %.2f%% is outside %.0f to %.0f",
			c.Name, c.STDeltaPercent, constants.MinSTDeltaPercent, constants.MaxSTDeltaPercent))
	}

	return warnings
}
