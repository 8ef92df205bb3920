package integration

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
	"testing"

	"github.com/iwvelando/pieces-planner/internal/config"
	"github.com/iwvelando/pieces-planner/internal/planner"
	"github.com/iwvelando/pieces-planner/pkg/output"
	"github.com/iwvelando/pieces-planner/pkg/testutil"
	"go.uber.org/zap"
)

const tolerance = 1e-6

func loadPlan(t *testing.T) planner.Plan {
	t.Helper()

	conf, err := config.LoadConfiguration("../test_config.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if err := conf.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	return planner.Calculate(zap.NewNop(), conf.PlannerConfig(), conf.Assumptions())
}

// TestMainIntegrationBaseline checks the test configuration against values
// worked out by hand.
func TestMainIntegrationBaseline(t *testing.T) {
	plan := loadPlan(t)

	if len(plan.Rows) != 5 {
		t.Fatalf("Expected 5 rows, got %d", len(plan.Rows))
	}

	baselineChecks := []struct {
		category    string
		target      float64
		produced    float64
		daily       float64
		whatIf      float64
		incremental float64
	}{
		{"Apparel", 100000, 24813.89578163772, 800.4482510205715, 105000, 5000},
		{"Wares", 50000, 18181.81818181818, 586.5102639296188, 55000, 5000},
		{"Shoes", 20000, 4629.62962962963, 149.34289127837513, 20000, 0},
		{"Accessories", 14000, 5000, 161.29032258064518, 12600, 0},
		{"Furniture", 16000, 831.1688311688313, 26.811897779639718, 19200, 3200},
	}

	for _, check := range baselineChecks {
		row := testutil.FindRow(plan.Rows, check.category)
		if row == nil {
			t.Errorf("Missing category %s", check.category)
			continue
		}

		if !testutil.ApproxEqual(row.TargetRevenue, check.target, tolerance) {
			t.Errorf("%s target revenue = %v, expected %v", check.category, row.TargetRevenue, check.target)
		}
		if !testutil.ApproxEqual(row.RequiredProducedUnits, check.produced, tolerance) {
			t.Errorf("%s produced units = %v, expected %v", check.category, row.RequiredProducedUnits, check.produced)
		}
		if !testutil.ApproxEqual(row.DailyRequiredPieces, check.daily, tolerance) {
			t.Errorf("%s daily pieces = %v, expected %v", check.category, row.DailyRequiredPieces, check.daily)
		}
		if !testutil.ApproxEqual(row.WhatIfRevenue, check.whatIf, tolerance) {
			t.Errorf("%s what-if revenue = %v, expected %v", check.category, row.WhatIfRevenue, check.whatIf)
		}
		if !testutil.ApproxEqual(row.IncrementalRevenue, check.incremental, tolerance) {
			t.Errorf("%s incremental revenue = %v, expected %v", check.category, row.IncrementalRevenue, check.incremental)
		}
	}

	if !testutil.ApproxEqual(plan.TotalDailyPieces, 1724.4036265888506, tolerance) {
		t.Errorf("Total daily pieces = %v, expected 1724.4036", plan.TotalDailyPieces)
	}
	if !testutil.ApproxEqual(plan.TotalBonus, 264, tolerance) {
		t.Errorf("Total bonus = %v, expected 264", plan.TotalBonus)
	}
	if plan.LaborAllocation != 70000 {
		t.Errorf("Labor allocation = %v, expected 70000", plan.LaborAllocation)
	}
	if len(plan.Advisories) != 0 {
		t.Errorf("Expected no advisories, got %v", plan.Advisories)
	}
}

// TestPlanInvariants checks the relationships every row must satisfy.
func TestPlanInvariants(t *testing.T) {
	plan := loadPlan(t)

	var fractionSum, dailySum, incrementalSum float64
	for _, row := range plan.Rows {
		fractionSum += row.UsedMixFraction
		dailySum += row.DailyRequiredPieces
		incrementalSum += row.IncrementalRevenue

		if !testutil.ApproxEqual(row.BaselineRevenue, row.TargetRevenue, tolerance*row.TargetRevenue) {
			t.Errorf("%s baseline %v does not reproduce target %v", row.Name, row.BaselineRevenue, row.TargetRevenue)
		}
		if row.IncrementalRevenue < 0 {
			t.Errorf("%s incremental revenue is negative: %v", row.Name, row.IncrementalRevenue)
		}
		if row.RequiredProducedUnits < row.RequiredSoldUnits {
			t.Errorf("%s produces fewer units than it sells", row.Name)
		}
	}

	if !testutil.ApproxEqual(fractionSum, 1, tolerance) {
		t.Errorf("Mix fractions sum to %v, expected 1", fractionSum)
	}
	if !testutil.ApproxEqual(dailySum, plan.TotalDailyPieces, tolerance) {
		t.Errorf("Row daily pieces sum to %v, total reports %v", dailySum, plan.TotalDailyPieces)
	}
	if !testutil.ApproxEqual(incrementalSum*0.02, plan.TotalBonus, tolerance) {
		t.Errorf("Bonus %v is not 2%% of incremental revenue %v", plan.TotalBonus, incrementalSum)
	}
}

func TestCSVOutputFormat(t *testing.T) {
	plan := loadPlan(t)

	var buf bytes.Buffer
	if err := output.CsvFormat(&buf, plan); err != nil {
		t.Fatalf("CsvFormat() error = %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse CSV output: %v", err)
	}
	if len(records) != len(plan.Rows)+1 {
		t.Fatalf("Expected %d records, got %d", len(plan.Rows)+1, len(records))
	}
	if strings.Join(records[0], ",") != strings.Join(output.Columns, ",") {
		t.Errorf("Unexpected header %v", records[0])
	}

	dailyIndex := -1
	for i, column := range output.Columns {
		if column == "Daily Required Pieces" {
			dailyIndex = i
		}
	}
	if dailyIndex < 0 {
		t.Fatal("Daily Required Pieces column not found")
	}

	for i, record := range records[1:] {
		if record[0] != plan.Rows[i].Name {
			t.Errorf("Record %d name = %q, expected %q", i, record[0], plan.Rows[i].Name)
		}
		daily, err := strconv.ParseFloat(record[dailyIndex], 64)
		if err != nil {
			t.Errorf("Record %d daily pieces %q is not numeric: %v", i, record[dailyIndex], err)
			continue
		}
		if daily != plan.Rows[i].DailyRequiredPieces {
			t.Errorf("Record %d daily pieces = %v, expected full precision %v", i, daily, plan.Rows[i].DailyRequiredPieces)
		}
	}
}

func TestPrettyOutputFormat(t *testing.T) {
	plan := loadPlan(t)

	var buf bytes.Buffer
	output.PrettyFormat(&buf, plan)
	out := buf.String()

	expected := []string{
		"--- Results by category ---",
		"Apparel",
		"Furniture",
		"Daily Production Needed (pcs/day): 1,724.4",
		"Labor Allocation (FYI): $70,000",
		"What-If: Assistant Manager Bonus (2%): $264",
	}
	for _, want := range expected {
		if !strings.Contains(out, want) {
			t.Errorf("Pretty output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigurationVariations(t *testing.T) {
	tests := []struct {
		name           string
		config         string
		wantAdvisory   bool
		wantFractionA  float64
		wantTotalDaily float64
	}{
		{
			name: "Normalized partial mix",
			config: `planner:
  monthlyRevenueTarget: 30000
  daysInMonth: 30
  normalizeMix: true
categories:
  - name: A
    mixPercent: 30
    avgSale: 10
    sellThroughPercent: 100
  - name: B
    mixPercent: 30
    avgSale: 10
    sellThroughPercent: 100
`,
			wantFractionA:  0.5,
			wantTotalDaily: 100,
		},
		{
			name: "Un-normalized partial mix",
			config: `planner:
  monthlyRevenueTarget: 30000
  daysInMonth: 30
  normalizeMix: false
categories:
  - name: A
    mixPercent: 30
    avgSale: 10
    sellThroughPercent: 100
  - name: B
    mixPercent: 30
    avgSale: 10
    sellThroughPercent: 100
`,
			wantAdvisory:   true,
			wantFractionA:  0.3,
			wantTotalDaily: 60,
		},
		{
			name: "Zero mix",
			config: `planner:
  monthlyRevenueTarget: 30000
  daysInMonth: 30
categories:
  - name: A
    mixPercent: 0
    avgSale: 10
    sellThroughPercent: 100
`,
			wantFractionA:  0,
			wantTotalDaily: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf, err := config.LoadConfigurationFromReader(strings.NewReader(tt.config))
			if err != nil {
				t.Fatalf("LoadConfigurationFromReader() error = %v", err)
			}

			plan := planner.Calculate(zap.NewNop(), conf.PlannerConfig(), conf.Assumptions())

			if got := len(plan.Advisories) > 0; got != tt.wantAdvisory {
				t.Errorf("advisory present = %v, expected %v (%v)", got, tt.wantAdvisory, plan.Advisories)
			}
			row := testutil.FindRow(plan.Rows, "A")
			if row == nil {
				t.Fatal("category A missing")
			}
			if !testutil.ApproxEqual(row.UsedMixFraction, tt.wantFractionA, tolerance) {
				t.Errorf("A fraction = %v, expected %v", row.UsedMixFraction, tt.wantFractionA)
			}
			if !testutil.ApproxEqual(plan.TotalDailyPieces, tt.wantTotalDaily, tolerance) {
				t.Errorf("total daily = %v, expected %v", plan.TotalDailyPieces, tt.wantTotalDaily)
			}
		})
	}
}
