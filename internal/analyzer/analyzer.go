package analyzer

import (
	"context"
	"fmt"
	"time"

	"github.com/phuslu/log"

	"github.com/sukanto-m/smart-log-analyser/internal/model"
	"github.com/sukanto-m/smart-log-analyser/internal/oracle"
	"github.com/sukanto-m/smart-log-analyser/internal/prompt"
)

// Sink receives progress as the run advances. output.Renderer satisfies it.
type Sink interface {
	Begin(total int) error
	Record(index int, rec model.ErrorRecord) error
	Summary(text string) error
}

// Analyzer asks the oracle about each kept line, then for a summary.
type Analyzer struct {
	oracle oracle.Oracle
	sink   Sink
	logger *log.Logger
	now    func() time.Time
}

// New wires an Analyzer. sink may be nil.
func New(o oracle.Oracle, sink Sink, logger *log.Logger) *Analyzer {
	if logger == nil {
		logger = &log.DefaultLogger
	}
	return &Analyzer{oracle: o, sink: sink, logger: logger, now: time.Now}
}

// Run processes lines strictly in order, one blocking oracle call at a time.
// The first oracle failure ends the run and nothing gathered so far is
// returned. The summary call happens even when lines is empty.
func (a *Analyzer) Run(ctx context.Context, lines []model.LogLine) (model.Report, error) {
	a.logger.Info().Str("oracle", a.oracle.Name()).Int("lines", len(lines)).Msg("analysis started")

	if a.sink != nil {
		if err := a.sink.Begin(len(lines)); err != nil {
			return model.Report{}, fmt.Errorf("render: %w", err)
		}
	}

	records := make([]model.ErrorRecord, 0, len(lines))
	for i, line := range lines {
		start := time.Now()
		analysis, err := a.oracle.Invoke(ctx, prompt.ForLine(line))
		if err != nil {
			a.logger.Error().Err(err).Int("index", i+1).Str("line", line).Msg("oracle call failed")
			return model.Report{}, fmt.Errorf("analyze line %d: %w", i+1, err)
		}

		rec := model.ErrorRecord{Line: line, Analysis: analysis}
		records = append(records, rec)
		a.logger.Debug().Int("index", i+1).Dur("took", time.Since(start)).Msg("line analyzed")

		if a.sink != nil {
			if err := a.sink.Record(i+1, rec); err != nil {
				return model.Report{}, fmt.Errorf("render: %w", err)
			}
		}
	}

	summary, err := a.oracle.Invoke(ctx, prompt.ForSummary(lines))
	if err != nil {
		a.logger.Error().Err(err).Msg("summary call failed")
		return model.Report{}, fmt.Errorf("summarize: %w", err)
	}

	if a.sink != nil {
		if err := a.sink.Summary(summary); err != nil {
			return model.Report{}, fmt.Errorf("render: %w", err)
		}
	}

	a.logger.Info().Int("records", len(records)).Msg("analysis finished")

	return model.Report{
		GeneratedAt: a.now(),
		Records:     records,
		Summary:     summary,
	}, nil
}
