// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and mirrors every entry into an append-only
// rotating log file when one is configured.
//
// # Run Correlation
//
// Each sync run is assigned a run ID. The WithRun helper attaches it to the
// logger so that entries from concurrent store syncs within the same run can
// be correlated after the fact.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: console (development) or json (production)
//   - File: rotating log file path, with size and backup limits
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", File: "app.log"})
//	log.Info("Sync started")
package logger
