package model

import "time"

// LogLine is one kept line from the source file, whitespace-trimmed.
type LogLine = string

// ErrorRecord pairs a kept log line with the oracle's explanation of it.
type ErrorRecord struct {
	Line     string `json:"line"`     // trimmed source line
	Analysis string `json:"analysis"` // oracle output, verbatim
}

// Severity is the tag detected inside an analysis text.
type Severity string

const (
	SeverityNone     Severity = ""
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// Report is the write-once result of a run.
type Report struct {
	GeneratedAt time.Time     `json:"generated_at"`
	Records     []ErrorRecord `json:"records"`
	Summary     string        `json:"summary"`
}
