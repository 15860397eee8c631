package aggregator

import (
	"testing"

	"github.com/sukanto-m/smart-log-analyser/internal/model"
)

func TestSeverityCounts(t *testing.T) {
	records := []model.ErrorRecord{
		{Line: "ERROR a", Analysis: "Severity: HIGH"},
		{Line: "ERROR b", Analysis: "Severity: HIGH"},
		{Line: "FATAL c", Analysis: "Severity: CRITICAL"},
		{Line: "Exception d", Analysis: "Severity: LOW"},
		{Line: "ERROR e", Analysis: "no idea"},
	}

	stats := Tally(records)

	if stats.Total != 5 {
		t.Errorf("expected 5 total, got %d", stats.Total)
	}
	if stats.Counts[model.SeverityHigh] != 2 {
		t.Errorf("expected 2 HIGH, got %d", stats.Counts[model.SeverityHigh])
	}
	if stats.Counts[model.SeverityCritical] != 1 {
		t.Errorf("expected 1 CRITICAL, got %d", stats.Counts[model.SeverityCritical])
	}
	if stats.Counts[model.SeverityLow] != 1 {
		t.Errorf("expected 1 LOW, got %d", stats.Counts[model.SeverityLow])
	}
	if stats.Undetected != 1 {
		t.Errorf("expected 1 undetected, got %d", stats.Undetected)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	a := New()
	a.Record(model.ErrorRecord{Analysis: "MEDIUM"})

	snap := a.Snapshot()
	a.Record(model.ErrorRecord{Analysis: "MEDIUM"})

	if snap.Counts[model.SeverityMedium] != 1 {
		t.Errorf("expected snapshot to stay at 1, got %d", snap.Counts[model.SeverityMedium])
	}
	if a.Snapshot().Counts[model.SeverityMedium] != 2 {
		t.Errorf("expected live count 2, got %d", a.Snapshot().Counts[model.SeverityMedium])
	}
}

func TestStatsString(t *testing.T) {
	stats := Tally([]model.ErrorRecord{{Analysis: "HIGH"}, {Analysis: "?"}})

	want := "2 error(s): LOW 0, MEDIUM 0, HIGH 1, CRITICAL 0, undetected 1"
	if got := stats.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestEmptyTally(t *testing.T) {
	stats := Tally(nil)
	if stats.Total != 0 || stats.Undetected != 0 {
		t.Errorf("expected empty stats, got %+v", stats)
	}
}
