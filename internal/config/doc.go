// Package config defines the configuration structure for asyncd.
//
// Configuration is organized into two sections (Scheduler, Server) plus the
// logging knobs, and uses code generation via optgen to create functional
// option helpers.
//
// # Configuration Structure
//
//	Configuration
//	├── Scheduler      - Worker pool sizing
//	├── Server         - Admin HTTP server settings
//	├── LogFormat      - Logging format
//	├── LogLevel       - Logging verbosity
//	└── LogFile        - Optional rotated log file
//
// # Scheduler Configuration
//
//	┌──────────────┬─────────┬──────────────────────────────────────────────┐
//	│ Field        │ Default │ Description                                  │
//	├──────────────┼─────────┼──────────────────────────────────────────────┤
//	│ NumThreads   │ -1      │ Desired pool workers, negative = one per CPU │
//	│ MaxThreads   │ 64      │ Upper bound of the pool                      │
//	└──────────────┴─────────┴──────────────────────────────────────────────┘
//
// NumThreads is the value watched at runtime: editing it in the config file
// resizes the running pool without a restart (see services.Parallelism).
//
// # Server Configuration
//
//	┌──────────────────┬─────────┬────────────────────────────────────────┐
//	│ Field            │ Default │ Description                            │
//	├──────────────────┼─────────┼────────────────────────────────────────┤
//	│ ServerMode       │ "dev"   │ Server mode: "prod" or "dev"           │
//	│ HTTPPort         │ 8000    │ HTTP server listen port                │
//	└──────────────────┴─────────┴────────────────────────────────────────┘
//
// # Code Generation
//
// The package uses optgen to generate functional option helpers:
//
//	//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Scheduler Server
//
// Generated helpers include:
//
//   - NewConfigurationWithOptions(...ConfigurationOption) - Create with options
//   - NewConfigurationWithOptionsAndDefaults(...ConfigurationOption) - Create with defaults + options
//   - WithScheduler(Scheduler), WithServer(Server), etc. - Set nested structs
//   - DebugMap() - Returns map for debug logging (respects debugmap tags)
//
// # Usage Example
//
//	cfg := config.NewConfigurationWithOptionsAndDefaults(
//	    config.WithScheduler(*config.NewSchedulerWithOptionsAndDefaults(
//	        config.WithNumThreads(4),
//	    )),
//	    config.WithLogLevel("debug"),
//	)
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//
//	log.Info("configuration loaded", zap.Any("config", cfg.DebugMap()))
package config
