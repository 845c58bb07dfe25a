package constants

const (
	// Version griddle version
	Version = "v1.0.0"
	// DefaultGearFloor lowest gear a ladder walks down to
	DefaultGearFloor = 0.4
	// DefaultFormat default report format
	DefaultFormat = "markdown"
	// DefaultConfigFile config file looked up when none is given
	DefaultConfigFile = "griddle.toml"
	// DefaultInputFile instrument file looked up when none is given
	DefaultInputFile = "griddle.csv"
	// ConfigEnvKey environment variable naming the config file
	ConfigEnvKey = "GRIDDLE_CONFIG"
	// DefaultLogLevel default log level
	DefaultLogLevel = "info"
	// DefaultLogMaxSize rotate log file every 10 megabytes
	DefaultLogMaxSize = 10
	// DefaultLogMaxBackups keep 3 rotated log files
	DefaultLogMaxBackups = 3
	// DefaultLogMaxAge keep rotated log files 28 days
	DefaultLogMaxAge = 28
)
