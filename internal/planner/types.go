package planner

// CategoryAssumption holds the caller-supplied planning inputs for one
// category. Percentages are expressed on a 0-100 scale.
type CategoryAssumption struct {
	Name               string  `json:"name" yaml:"name"`
	MixPercent         float64 `json:"mixPercent" yaml:"mixPercent"`
	AvgSale            float64 `json:"avgSale" yaml:"avgSale"`
	SellThroughPercent float64 `json:"sellThroughPercent" yaml:"sellThroughPercent"`
	ASPDeltaPercent    float64 `json:"aspDeltaPercent" yaml:"aspDeltaPercent"`
	STDeltaPercent     float64 `json:"stDeltaPercent" yaml:"stDeltaPercent"`
}

// Config holds the plan-wide inputs.
type Config struct {
	MonthlyRevenueTarget float64 `json:"monthlyRevenueTarget" yaml:"monthlyRevenueTarget"`
	DaysInMonth          int     `json:"daysInMonth" yaml:"daysInMonth"`
	LaborPercent         float64 `json:"laborPercent" yaml:"laborPercent"`
	NormalizeMix         bool    `json:"normalizeMix" yaml:"normalizeMix"`
}

// CategoryResult is the calculated plan for one category. The assumption it
// was computed from is echoed with non-finite values zeroed.
type CategoryResult struct {
	CategoryAssumption

	UsedMixFraction       float64 `json:"usedMixFraction"`
	TargetRevenue         float64 `json:"targetRevenue"`
	RequiredSoldUnits     float64 `json:"requiredSoldUnits"`
	RequiredProducedUnits float64 `json:"requiredProducedUnits"`
	DailyRequiredPieces   float64 `json:"dailyRequiredPieces"`
	BaselineRevenue       float64 `json:"baselineRevenue"`
	WhatIfRevenue         float64 `json:"whatIfRevenue"`
	IncrementalRevenue    float64 `json:"incrementalRevenue"`
}

// Plan is the full output of one calculation. Rows follow input order.
type Plan struct {
	Rows             []CategoryResult `json:"rows"`
	TotalDailyPieces float64          `json:"totalDailyPieces"`
	TotalBonus       float64          `json:"totalBonus"`
	LaborAllocation  float64          `json:"laborAllocation"`
	MixSum           float64          `json:"mixSum"`
	Advisories       []string         `json:"advisories,omitempty"`
}
