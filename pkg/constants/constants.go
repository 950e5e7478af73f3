// Package constants provides shared constants for the youth-budget application.
package constants

// Staffing and logistics rules
const (
	// ParticipantsPerCoordinator is how many participants one coordinator supervises.
	ParticipantsPerCoordinator = 5

	// VanCapacity is the largest group moved by a single van; larger groups need a bus.
	VanCapacity = 10

	// DailyBusHours is the fixed daily transport window billed for a bus.
	DailyBusHours = 2

	// TempEmploymentDayLimit is the longest paid program allowed under temporary
	// casual employment.
	TempEmploymentDayLimit = 60
)

// Default program configuration
const (
	DefaultParticipants = 10
	DefaultProgramDays  = 30
	DefaultHoursPerDay  = 6.0
)

// Default rate table (USD)
const (
	DefaultInternHourlyRate      = 16.50
	DefaultCoordinatorHourlyRate = 28.00
	DefaultDailyFoodCost         = 20.00
	DefaultDailySupplies         = 14.00
	DefaultLaptopCost            = 600.00
	DefaultTrainingMaterials     = 200.00
	DefaultVanCost               = 56.00
	DefaultBusCostPerHour        = 100.00
)

// Financial constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix prefixes environment overrides, e.g. YOUTH_BUDGET_PROGRAM_PROGRAMDAYS.
	EnvPrefix = "YOUTH_BUDGET"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024

	// MaxBodySizeLimitBytes caps the configurable request body size (8 MB)
	MaxBodySizeLimitBytes int64 = 8 * 1024 * 1024

	// ServerEnvPrefix prefixes server overrides, e.g. YOUTH_BUDGET_SERVER_ADDRESS.
	ServerEnvPrefix = EnvPrefix + "_SERVER"
)

// Capacity planner limits
const (
	// DefaultCapacitySearchLimit bounds the participant search when no limit is given.
	DefaultCapacitySearchLimit = 100000
)
