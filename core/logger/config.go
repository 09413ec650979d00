package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum enabled level (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info"`
	// Format is the console encoding (console, json).
	Format string `mapstructure:"format" default:"console"`
	// Dir receives one translation_log_<timestamp>.txt per run. Empty disables the file.
	Dir string `mapstructure:"dir" default:"logs"`
}
