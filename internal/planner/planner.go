// Package planner turns a monthly revenue target and a category sales mix
// into production quotas, and projects the revenue gained by changing a
// category's average selling price or sell-through while holding produced
// volume fixed.
//
// Every function here is pure: it reads only its arguments and shares no
// state, so plans may be calculated concurrently.
package planner

import (
	"fmt"

	"github.com/iwvelando/pieces-planner/pkg/constants"
	"github.com/iwvelando/pieces-planner/pkg/mathutil"
	"go.uber.org/zap"
)

// NormalizeMix converts each category's mix percent into the fraction of the
// revenue target allocated to it. It also returns the raw mix total and, when
// normalization is off and the total is not close to 100, an advisory message.
// The advisory never stops the calculation.
func NormalizeMix(assumptions []CategoryAssumption, normalize bool) ([]float64, float64, string) {
	mixes := make([]float64, len(assumptions))
	for i, a := range assumptions {
		mixes[i] = mathutil.Finite(a.MixPercent)
	}
	mixSum := mathutil.Sum(mixes)

	factor := 1.0
	if normalize && !mathutil.WithinTolerance(mixSum, constants.FullMixPercent, constants.MixNormalizeTolerance) {
		factor = 0.0
		if mixSum != 0 {
			factor = constants.FullMixPercent / mixSum
		}
	}

	fractions := make([]float64, len(mixes))
	for i, mix := range mixes {
		fractions[i] = mathutil.Fraction(mix * factor)
	}

	var advisory string
	if !normalize && !mathutil.WithinTolerance(mixSum, constants.FullMixPercent, constants.MixAdvisoryTolerance) {
		advisory = fmt.Sprintf("Category mix totals %.2f%%. Enable mix normalization or adjust values to sum to 100%%.", mixSum)
	}

	return fractions, mixSum, advisory
}

// ComputeCategory calculates the baseline quotas and the what-if revenue for
// one category given the share of revenue allocated to it.
//
// Produced units stay fixed between baseline and what-if; only sell-through
// and price move. Incremental revenue is never negative.
func ComputeCategory(assumption CategoryAssumption, mixFraction float64, cfg Config) CategoryResult {
	mustHaveDays(cfg.DaysInMonth)

	a := sanitize(assumption)
	result := CategoryResult{
		CategoryAssumption: a,
		UsedMixFraction:    mathutil.Finite(mixFraction),
	}

	asp := mathutil.AtLeast(a.AvgSale, constants.MinAverageSale)
	st := mathutil.AtLeast(mathutil.Fraction(a.SellThroughPercent), constants.MinSellThrough)

	result.TargetRevenue = mathutil.Finite(cfg.MonthlyRevenueTarget) * result.UsedMixFraction
	result.RequiredSoldUnits = result.TargetRevenue / asp
	result.RequiredProducedUnits = result.RequiredSoldUnits / st
	result.DailyRequiredPieces = result.RequiredProducedUnits / float64(cfg.DaysInMonth)

	// What-if ASP is deliberately unbounded; a delta at or below -100% yields a
	// non-positive price and the incremental floor absorbs it.
	aspWhatIf := asp * (1 + mathutil.Fraction(a.ASPDeltaPercent))
	stWhatIf := mathutil.Clamp(st*(1+mathutil.Fraction(a.STDeltaPercent)), constants.MinSellThrough, constants.MaxWhatIfSellThrough)

	result.BaselineRevenue = result.RequiredProducedUnits * st * asp
	result.WhatIfRevenue = result.RequiredProducedUnits * stWhatIf * aspWhatIf
	result.IncrementalRevenue = mathutil.AtLeast(result.WhatIfRevenue-result.BaselineRevenue, 0)

	return result
}

// Aggregate totals the daily production quota across categories and derives
// the manager bonus from the summed incremental revenue.
func Aggregate(results []CategoryResult) (float64, float64) {
	totalDailyPieces := 0.0
	totalIncremental := 0.0
	for _, r := range results {
		totalDailyPieces += r.DailyRequiredPieces
		totalIncremental += r.IncrementalRevenue
	}
	return totalDailyPieces, totalIncremental * constants.BonusRate
}

// LaborAllocation returns the labor dollars implied by the revenue target.
func LaborAllocation(cfg Config) float64 {
	return mathutil.ApplyPercentage(mathutil.Finite(cfg.MonthlyRevenueTarget), mathutil.Finite(cfg.LaborPercent))
}

// Calculate runs a full plan: mix normalization, per-category quotas and
// what-if projections, then the aggregate metrics. Rows are returned in the
// same order as assumptions.
//
// cfg.DaysInMonth must be at least 1; Calculate panics otherwise.
func Calculate(logger *zap.Logger, cfg Config, assumptions []CategoryAssumption) Plan {
	if logger == nil {
		logger = zap.NewNop()
	}
	mustHaveDays(cfg.DaysInMonth)

	fractions, mixSum, advisory := NormalizeMix(assumptions, cfg.NormalizeMix)

	plan := Plan{
		Rows:            make([]CategoryResult, 0, len(assumptions)),
		LaborAllocation: LaborAllocation(cfg),
		MixSum:          mixSum,
	}

	if advisory != "" {
		logger.Warn(advisory,
			zap.String("op", "planner.Calculate"),
			zap.Float64("mixSum", mixSum),
		)
		plan.Advisories = append(plan.Advisories, advisory)
	}

	for i, assumption := range assumptions {
		result := ComputeCategory(assumption, fractions[i], cfg)
		logger.Debug("category planned",
			zap.String("op", "planner.Calculate"),
			zap.String("category", result.Name),
			zap.Float64("mixFraction", result.UsedMixFraction),
			zap.Float64("dailyRequiredPieces", result.DailyRequiredPieces),
			zap.Float64("incrementalRevenue", result.IncrementalRevenue),
		)
		plan.Rows = append(plan.Rows, result)
	}

	plan.TotalDailyPieces, plan.TotalBonus = Aggregate(plan.Rows)

	logger.Debug("plan calculated",
		zap.String("op", "planner.Calculate"),
		zap.Int("categories", len(plan.Rows)),
		zap.Float64("totalDailyPieces", plan.TotalDailyPieces),
		zap.Float64("totalBonus", plan.TotalBonus),
	)

	return plan
}

func sanitize(a CategoryAssumption) CategoryAssumption {
	a.MixPercent = mathutil.Finite(a.MixPercent)
	a.AvgSale = mathutil.Finite(a.AvgSale)
	a.SellThroughPercent = mathutil.Finite(a.SellThroughPercent)
	a.ASPDeltaPercent = mathutil.Finite(a.ASPDeltaPercent)
	a.STDeltaPercent = mathutil.Finite(a.STDeltaPercent)
	return a
}

func mustHaveDays(days int) {
	if days < constants.MinDaysInMonth {
		panic(fmt.Sprintf("planner: days in month must be at least %d, got %d", constants.MinDaysInMonth, days))
	}
}
