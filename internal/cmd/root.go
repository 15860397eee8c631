package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sukanto-m/smart-log-analyser/internal/config"
)

// NewRootCmd builds the analyser command with its own viper instance.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "analyser <logfile>",
		Short: "Explain the errors in a log file with a local LLM",
		Long: `analyser scans a log file for lines containing ERROR, FATAL, Exception
or CRITICAL, asks a locally running model (ollama) to explain each one,
asks once more for an overall summary, and writes log_analysis_report.txt.

Examples:
  analyser /var/log/app.log
  analyser app.log --model mistral --backend http
  analyser app.log --output json > analyses.jsonl`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return runAnalyze(cmd, cfg, args[0])
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default: $HOME/.analyser.yaml or ./.analyser.yaml)")
	flags.StringP("output", "o", config.DefaultOutput, "console output format: text, json")
	flags.StringP("model", "m", config.DefaultModel, "model identifier passed to ollama")
	flags.String("backend", config.DefaultBackend, "oracle backend: cli, http, stub")
	flags.String("ollama-bin", config.DefaultBinary, "ollama executable for the cli backend")
	flags.String("ollama-url", config.DefaultURL, "ollama server for the http backend")
	flags.Duration("timeout", 0, "per-call oracle timeout (0 waits forever)")
	flags.StringP("report", "r", config.DefaultReportPath, "report file, overwritten on each run")
	flags.BoolP("verbose", "v", false, "log progress to stderr")

	config.SetDefaults(v)
	for key, flag := range map[string]string{
		config.KeyOutput:  "output",
		config.KeyModel:   "model",
		config.KeyBackend: "backend",
		config.KeyBinary:  "ollama-bin",
		config.KeyURL:     "ollama-url",
		config.KeyTimeout: "timeout",
		config.KeyReport:  "report",
		config.KeyVerbose: "verbose",
	} {
		cobra.CheckErr(v.BindPFlag(key, flags.Lookup(flag)))
	}

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "analyser:", err)
		stop()
		os.Exit(1)
	}
}

func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
		return nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath(".")
	v.SetConfigName(".analyser")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}
