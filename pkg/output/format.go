// Package output provides utilities for formatting and displaying plan results.
package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/iwvelando/pieces-planner/internal/planner"
	"github.com/iwvelando/pieces-planner/pkg/constants"
	"github.com/iwvelando/pieces-planner/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Columns is the header shared by the pretty table and the CSV export.
var Columns = []string{
	"Category", "Mix %", "Avg Sale", "Sell-through %",
	"Target Revenue", "Req Sold Units", "Req Produced Units", "Daily Required Pieces",
	"ASP Δ%", "ST Δ%", "Revenue What-If", "Incremental Revenue",
}

var titleStyle = lipgloss.NewStyle().Bold(true)

// PrettyFormat writes a human-readable table followed by the plan metrics.
// Currency is rounded to whole dollars, units to whole numbers and pieces to
// one decimal.
func PrettyFormat(w io.Writer, plan planner.Plan) {
	p := message.NewPrinter(language.English)

	fmt.Fprintln(w, titleStyle.Render("--- Results by category ---"))

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(Columns...)
	for _, row := range plan.Rows {
		t.Row(
			row.Name,
			format.Number(row.MixPercent, 1),
			format.Currency(row.AvgSale),
			format.Number(row.SellThroughPercent, 1),
			format.WholeCurrency(row.TargetRevenue),
			format.Units(row.RequiredSoldUnits),
			format.Units(row.RequiredProducedUnits),
			format.Pieces(row.DailyRequiredPieces),
			format.Number(row.ASPDeltaPercent, 1),
			format.Number(row.STDeltaPercent, 1),
			format.WholeCurrency(row.WhatIfRevenue),
			format.WholeCurrency(row.IncrementalRevenue),
		)
	}
	fmt.Fprintln(w, t.String())

	_, _ = p.Fprintf(w, "Daily Production Needed (pcs/day): %.1f\n", plan.TotalDailyPieces)
	_, _ = p.Fprintf(w, "Labor Allocation (FYI): $%.0f\n", plan.LaborAllocation)
	_, _ = p.Fprintf(w, "What-If: Assistant Manager Bonus (%.0f%%): $%.0f\n", constants.BonusRate*constants.PercentageMultiplier, plan.TotalBonus)

	for _, advisory := range plan.Advisories {
		fmt.Fprintf(w, "Warning: %s\n", advisory)
	}
}

// CsvFormat writes the plan rows in comma-separated value format. Values are
// written at full precision.
func CsvFormat(w io.Writer, plan planner.Plan) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range plan.Rows {
		record := []string{
			row.Name,
			formatFloat(row.MixPercent),
			formatFloat(row.AvgSale),
			formatFloat(row.SellThroughPercent),
			formatFloat(row.TargetRevenue),
			formatFloat(row.RequiredSoldUnits),
			formatFloat(row.RequiredProducedUnits),
			formatFloat(row.DailyRequiredPieces),
			formatFloat(row.ASPDeltaPercent),
			formatFloat(row.STDeltaPercent),
			formatFloat(row.WhatIfRevenue),
			formatFloat(row.IncrementalRevenue),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", row.Name, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// CsvString returns the CSV export as a string.
func CsvString(plan planner.Plan) string {
	var buf bytes.Buffer
	if err := CsvFormat(&buf, plan); err != nil {
		return ""
	}
	return buf.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
