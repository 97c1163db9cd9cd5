// Package config handles CLI harness configuration loading, with priority
// defaults < YAML file < flags.
package config

// Config holds the settings recognized by the objmesh CLI harness. Fields
// mirror objmesh.Option (BatchSize, NumConsumers, QueueCapacity) plus
// harness-only fields for logging.
type Config struct {
	BatchSize     int    `yaml:"batch_size"`
	NumConsumers  int    `yaml:"num_consumers"`
	QueueCapacity int    `yaml:"queue_capacity"`
	LogLevel      string `yaml:"log_level"`
	LogFile       string `yaml:"log_file"`
}

// Default returns a Config with sensible defaults. A zero BatchSize,
// NumConsumers, or QueueCapacity tells objmesh.Option to use its own
// built-in default instead of an explicit value.
func Default() *Config {
	return &Config{
		BatchSize:     0,
		NumConsumers:  0,
		QueueCapacity: 0,
		LogLevel:      "info",
		LogFile:       "",
	}
}
