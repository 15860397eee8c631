package aggregator

import (
	"fmt"
	"strings"

	"github.com/sukanto-m/smart-log-analyser/internal/model"
	"github.com/sukanto-m/smart-log-analyser/internal/severity"
)

// Stats is a tally of detected severities across a run's records.
type Stats struct {
	Total      int                    `json:"total"`
	Counts     map[model.Severity]int `json:"counts"`
	Undetected int                    `json:"undetected"`
}

// Aggregator counts severities as records are produced.
type Aggregator struct {
	total      int
	counts     map[model.Severity]int
	undetected int
}

// New returns an empty Aggregator.
func New() *Aggregator {
	return &Aggregator{counts: make(map[model.Severity]int)}
}

// Record adds one record to the tally.
func (a *Aggregator) Record(rec model.ErrorRecord) {
	a.total++
	if sev, ok := severity.Detect(rec.Analysis); ok {
		a.counts[sev]++
		return
	}
	a.undetected++
}

// Snapshot returns a copy of the current tally.
func (a *Aggregator) Snapshot() Stats {
	counts := make(map[model.Severity]int, len(a.counts))
	for k, v := range a.counts {
		counts[k] = v
	}
	return Stats{Total: a.total, Counts: counts, Undetected: a.undetected}
}

// Tally is a one-shot helper over a finished record list.
func Tally(records []model.ErrorRecord) Stats {
	a := New()
	for _, r := range records {
		a.Record(r)
	}
	return a.Snapshot()
}

// String renders the tally in severity priority order, e.g.
// "3 error(s): LOW 1, MEDIUM 0, HIGH 2, CRITICAL 0, undetected 0".
func (s Stats) String() string {
	parts := make([]string, 0, 5)
	for _, sev := range severity.Levels() {
		parts = append(parts, fmt.Sprintf("%s %d", sev, s.Counts[sev]))
	}
	parts = append(parts, fmt.Sprintf("undetected %d", s.Undetected))
	return fmt.Sprintf("%d error(s): %s", s.Total, strings.Join(parts, ", "))
}
