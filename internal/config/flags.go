package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagOutput  = flag.String("o", "", "Default output path")
	flagFormat  = flag.String("format", "", "Output format (stl, stl-ascii)")
	flagHeader  = flag.String("header", "", "STL header text or solid name")
	flagWorkers = flag.Int("workers", -1, "Goroutines for mesh queries")
	flagLogFile = flag.String("log-file", "", "Also write logs to this file")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagOutput != "" {
		cfg.Convert.Output = *flagOutput
	}
	if *flagFormat != "" {
		cfg.Convert.Format = *flagFormat
	}
	if *flagHeader != "" {
		cfg.Convert.Header = *flagHeader
	}
	if *flagWorkers >= 0 {
		cfg.Geometry.Workers = *flagWorkers
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
