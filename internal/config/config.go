package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything a run needs beyond the log file path.
type Config struct {
	Oracle     Oracle
	ReportPath string
	Output     string
	Verbose    bool
}

// Oracle selects and addresses the local model.
type Oracle struct {
	Backend string        // cli, http or stub
	Model   string        // model identifier passed to ollama
	Binary  string        // cli backend executable
	URL     string        // http backend base URL
	Timeout time.Duration // per call; zero means no timeout
}

// Keys understood in config files, flags and ANALYSER_* environment variables.
const (
	KeyBackend = "backend"
	KeyModel   = "model"
	KeyBinary  = "ollama_bin"
	KeyURL     = "ollama_url"
	KeyTimeout = "timeout"
	KeyReport  = "report"
	KeyOutput  = "output"
	KeyVerbose = "verbose"
)

const (
	DefaultBackend    = "cli"
	DefaultModel      = "llama3.2"
	DefaultBinary     = "ollama"
	DefaultURL        = "http://localhost:11434"
	DefaultReportPath = "log_analysis_report.txt"
	DefaultOutput     = "text"

	EnvPrefix = "ANALYSER"
)

var (
	backends = []string{"cli", "http", "stub"}
	outputs  = []string{"text", "json"}
)

// SetDefaults registers default values and environment lookup on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyBackend, DefaultBackend)
	v.SetDefault(KeyModel, DefaultModel)
	v.SetDefault(KeyBinary, DefaultBinary)
	v.SetDefault(KeyURL, DefaultURL)
	v.SetDefault(KeyTimeout, time.Duration(0))
	v.SetDefault(KeyReport, DefaultReportPath)
	v.SetDefault(KeyOutput, DefaultOutput)
	v.SetDefault(KeyVerbose, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
}

// Load resolves a Config from v and validates it.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Oracle: Oracle{
			Backend: strings.ToLower(strings.TrimSpace(v.GetString(KeyBackend))),
			Model:   strings.TrimSpace(v.GetString(KeyModel)),
			Binary:  strings.TrimSpace(v.GetString(KeyBinary)),
			URL:     strings.TrimRight(strings.TrimSpace(v.GetString(KeyURL)), "/"),
			Timeout: v.GetDuration(KeyTimeout),
		},
		ReportPath: strings.TrimSpace(v.GetString(KeyReport)),
		Output:     strings.ToLower(strings.TrimSpace(v.GetString(KeyOutput))),
		Verbose:    v.GetBool(KeyVerbose),
	}

	if cfg.Oracle.Model == "" {
		cfg.Oracle.Model = DefaultModel
	}
	if cfg.Oracle.Binary == "" {
		cfg.Oracle.Binary = DefaultBinary
	}
	if cfg.Oracle.URL == "" {
		cfg.Oracle.URL = DefaultURL
	}
	if cfg.ReportPath == "" {
		cfg.ReportPath = DefaultReportPath
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects unknown backends, output formats and negative timeouts.
func (c Config) Validate() error {
	if !contains(backends, c.Oracle.Backend) {
		return fmt.Errorf("unknown backend %q (want one of %s)", c.Oracle.Backend, strings.Join(backends, ", "))
	}
	if !contains(outputs, c.Output) {
		return fmt.Errorf("unknown output format %q (want one of %s)", c.Output, strings.Join(outputs, ", "))
	}
	if c.Oracle.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Oracle.Timeout)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
