// Package logging provides structured logging for the ecfg library and
// its command line tool.
//
// This package wraps zap with the small set of conveniences the project
// needs: level selection from the environment, a silent-by-default
// logger so library consumers and CLI pipelines see no unexpected
// output, and package-level helpers for the common levels.
//
// # Configuration
//
// Verbosity is controlled by the ECFG_LOG_LEVEL environment variable
// ("debug", "info", "warn", "error"). When unset, logging is disabled
// entirely (a nop logger is used).
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Debug("configuration saved",
//	    zap.String("name", "myapp"),
//	    zap.String("path", path),
//	)
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
