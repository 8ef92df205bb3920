// Package constants provides shared constants for the pieces-planner application.
package constants

// Planning constants
const (
	// BonusRate is the share of incremental revenue paid as the manager bonus.
	BonusRate = 0.02

	// MinAverageSale is the floor applied to a category's average selling price.
	MinAverageSale = 0.01

	// MinSellThrough is the floor applied to a sell-through fraction so that
	// produced units never divide by zero.
	MinSellThrough = 0.001

	// MaxWhatIfSellThrough caps the what-if sell-through multiplier.
	MaxWhatIfSellThrough = 10.0

	// MixNormalizeTolerance is how far the mix total may drift from 100 before
	// normalization rescales it.
	MixNormalizeTolerance = 1e-6

	// MixAdvisoryTolerance is how far an un-normalized mix total may drift from
	// 100 before an advisory is raised.
	MixAdvisoryTolerance = 0.5

	// FullMixPercent is the mix total every category share is measured against.
	FullMixPercent = 100.0

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Input ranges accepted by the category editor. Values outside them are
// still calculated but produce configuration warnings.
const (
	MinDaysInMonth = 1
	MaxDaysInMonth = 31

	MinASPDeltaPercent = -100.0
	MaxASPDeltaPercent = 500.0

	MinSTDeltaPercent = -90.0
	MaxSTDeltaPercent = 500.0
)

// Default planner inputs
const (
	// DefaultMonthlyRevenueTarget is the revenue goal used when none is configured.
	DefaultMonthlyRevenueTarget = 180000.0

	// DefaultDaysInMonth is the day count used when none is configured.
	DefaultDaysInMonth = 30

	// DefaultLaborPercent is the labor share of revenue used when none is configured.
	DefaultLaborPercent = 40.0

	// DefaultNormalizeMix controls mix normalization when it is not configured.
	DefaultNormalizeMix = true
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// DefaultEnvFile is the dotenv file loaded before environment overrides are read
	DefaultEnvFile = ".env"

	// EnvPrefix prefixes environment variable overrides, e.g. PIECES_PLANNER_DAYSINMONTH
	EnvPrefix = "PIECES"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)
