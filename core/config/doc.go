// Package config provides configuration management for the stock sync tool.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file, with defaults taken from struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all settings, divided into
// subsections:
//   - Transfer: snapshot origin (ftp or object) and its credentials
//   - Storage: S3/MinIO credentials for the object origin
//   - Snapshot: workbook column mapping
//   - Sync: store and record concurrency limits
//   - Log: logging level, format, and rotating file
//
// Stores are discovered separately through the numeric suffix convention
// (SHOP_NAME_1 / ACCESS_TOKEN_1 / API_VERSION_1, then _2, ...) until the
// first index missing a name or token.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config
