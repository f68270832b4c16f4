// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and console or JSON encodings.
//
// # Run Correlation
//
// Every engine invocation is tagged with a run ID. The WithRunID helper
// attaches that ID to the logger so all entries produced while one playbook
// run is in flight can be correlated afterwards.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Launching engine")
//
//	// While a run is active:
//	l := logger.WithRunID(log, runID)
//	l.Error("Engine failed", zap.Error(err))
package logger
