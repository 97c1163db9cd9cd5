package config

import "flag"

var (
	flagConfig        = flag.String("config", "", "Path to YAML config file")
	flagBatchSize     = flag.Int("batch-size", 0, "Approximate batch size in bytes (0 = default)")
	flagConsumers     = flag.Int("consumers", 0, "Number of consumer goroutines (0 = default)")
	flagQueueCapacity = flag.Int("queue-capacity", 0, "Ring buffer slot count (0 = default)")
	flagLogLevel      = flag.String("log-level", "", "Log level: debug, info, warn, error")
	flagLogFile       = flag.String("log-file", "", "Path to a rotating log file")
)

// ConfigPath returns the explicit config path provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to cfg. Flags take priority over
// both defaults and a loaded YAML file.
func applyFlags(cfg *Config) {
	if *flagBatchSize > 0 {
		cfg.BatchSize = *flagBatchSize
	}
	if *flagConsumers > 0 {
		cfg.NumConsumers = *flagConsumers
	}
	if *flagQueueCapacity > 0 {
		cfg.QueueCapacity = *flagQueueCapacity
	}
	if *flagLogLevel != "" {
		cfg.LogLevel = *flagLogLevel
	}
	if *flagLogFile != "" {
		cfg.LogFile = *flagLogFile
	}
}
