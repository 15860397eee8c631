package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sukanto-m/smart-log-analyser/internal/aggregator"
	"github.com/sukanto-m/smart-log-analyser/internal/analyzer"
	"github.com/sukanto-m/smart-log-analyser/internal/config"
	"github.com/sukanto-m/smart-log-analyser/internal/ingest"
	"github.com/sukanto-m/smart-log-analyser/internal/logging"
	"github.com/sukanto-m/smart-log-analyser/internal/oracle"
	"github.com/sukanto-m/smart-log-analyser/internal/output"
	"github.com/sukanto-m/smart-log-analyser/internal/report"
)

func runAnalyze(cmd *cobra.Command, cfg config.Config, path string) error {
	logger := logging.New(cfg.Verbose, cmd.ErrOrStderr())

	// --- Ingest: fails before any oracle call ---
	lines, err := ingest.ReadFile(path)
	if err != nil {
		return err
	}
	logger.Info().Str("file", path).Int("kept", len(lines)).Msg("log file scanned")

	// --- Oracle ---
	o, err := oracle.New(cfg.Oracle)
	if err != nil {
		return err
	}
	o = oracle.WithTimeout(o, cfg.Oracle.Timeout)

	// --- Analyze, rendering as we go ---
	renderer := output.New(cfg.Output, cmd.OutOrStdout())
	rep, err := analyzer.New(o, renderer, logger).Run(cmd.Context(), lines)
	if err != nil {
		return err
	}

	if err := renderer.Stats(aggregator.Tally(rep.Records)); err != nil {
		logger.Warn().Err(err).Msg("render stats")
	}

	// --- Report: only after every call succeeded ---
	if err := report.Write(cfg.ReportPath, rep); err != nil {
		return err
	}
	logger.Info().Str("path", cfg.ReportPath).Msg("report written")
	fmt.Fprintf(cmd.ErrOrStderr(), "Report saved to %s\n", cfg.ReportPath)

	return nil
}
