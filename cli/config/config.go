package config

// Config represents a launcher defaults file, given with --config.
// All values are optional and act as defaults for run flags; CLI
// flags always override config values. Pointer fields distinguish
// "unset" from an explicit false for options that default to on.
type Config struct {
	MaxWorkers      int      `yaml:"max_workers"`
	TestRunner      string   `yaml:"test_runner"`
	TestPathPattern string   `yaml:"test_path_pattern"`
	WatchExtensions []string `yaml:"watch_extensions"`
	Coverage        *bool    `yaml:"coverage"`
	Bail            *bool    `yaml:"bail"`
	Cache           *bool    `yaml:"cache"`
	Watcher         *bool    `yaml:"watcher"`
}
