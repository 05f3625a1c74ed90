package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info"`
	// Format is the log encoding (console, json).
	Format string `mapstructure:"format" default:"console"`
	// File is the path of the rotating log file. Empty disables file output.
	File string `mapstructure:"file" default:""`
	// MaxSizeMB is the size in megabytes at which the log file is rotated.
	MaxSizeMB int `mapstructure:"max_size_mb" default:"1"`
	// MaxBackups is the number of rotated log files to retain.
	MaxBackups int `mapstructure:"max_backups" default:"10"`
}
