// Package constants provides shared constants for the compound-interest application.
package constants

// Time constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DaysPerYear is the day count used for horizons and tax brackets
	DaysPerYear = 365

	// MaxHorizonYears is the longest horizon a calculation may ask for.
	MaxHorizonYears = 100

	// MaxSimulatedMonths bounds the month-by-month simulation.
	MaxSimulatedMonths = MaxHorizonYears * MonthsPerYear
)

// Financial constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// AnnualRatePlaces is the number of decimals an annual rate is rendered with
	AnnualRatePlaces = 2

	// MonthlyRatePlaces is the number of decimals a monthly rate is rendered with
	MonthlyRatePlaces = 4

	// MonthlyRateTolerance is how far a given monthly rate may sit from the
	// one derived from the annual rate and still count as the same rate
	MonthlyRateTolerance = 0.0001

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// DefaultCompoundingFrequency is used when no frequency is given.
	DefaultCompoundingFrequency = 1
)

// CompoundingFrequencies lists the supported compounding periods per year.
var CompoundingFrequencies = []int{1, 2, 4, 12, 365}

// TaxBracket is one step of the regressive withholding table.
type TaxBracket struct {
	// MaxDays is the inclusive upper bound of the holding period; 0 means unbounded.
	MaxDays float64
	Rate    float64
}

// TaxBrackets is the fixed Brazilian income tax table for fixed income,
// ordered by holding period.
var TaxBrackets = []TaxBracket{
	{MaxDays: 180, Rate: 22.5},
	{MaxDays: 360, Rate: 20},
	{MaxDays: 720, Rate: 17.5},
	{MaxDays: 0, Rate: 15},
}

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
	DefaultConfigFile = "calculations.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "calculations.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum request body size (64 KB)
	DefaultMaxUploadSizeBytes int64 = 64 * 1024

	// DefaultRequestsPerSecond is the sustained API request rate
	DefaultRequestsPerSecond = 10.0

	// DefaultRequestBurst is the API request burst size
	DefaultRequestBurst = 30
)
