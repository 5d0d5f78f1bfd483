// Package config contains compile-time defaults for the bank.
// Business thresholds live here; runtime settings are in Config.
package config

// =============================================================================
// ACCOUNT RULES
// =============================================================================

// Opening minimums, in whole dollars
const (
	// MoneyMarketMinimum is the smallest deposit that opens a Money Market
	// account; withdrawals leaving less than this are flagged
	MoneyMarketMinimum = 2000

	// CDMinimum is the smallest deposit that opens a Certificate of Deposit
	CDMinimum = 1000
)

// Loyalty
const (
	// MoneyMarketLoyaltyThreshold is the balance at which a Money Market
	// account becomes loyal; it stops being loyal below this
	MoneyMarketLoyaltyThreshold = 5000
)

// =============================================================================
// RUNTIME DEFAULTS
// =============================================================================

const (
	// DefaultSeed seeds the account number generator so numbers repeat across runs
	DefaultSeed = 9999

	// DefaultLogLevel is the zap level used when none is configured
	DefaultLogLevel = "warn"

	// ConfigName is the config file name searched for, without extension
	ConfigName = "rubank"

	// EnvPrefix prefixes environment overrides (RUBANK_SEED, ...)
	EnvPrefix = "RUBANK"
)
