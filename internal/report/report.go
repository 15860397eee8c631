package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sukanto-m/smart-log-analyser/internal/model"
)

const (
	title        = "LOG ANALYSIS REPORT"
	summaryTitle = "OVERALL SUMMARY"
	footerTitle  = "END OF REPORT"
	timeLayout   = "2006-01-02 15:04:05"
)

var (
	banner = strings.Repeat("=", 80)
	rule   = strings.Repeat("-", 80)

	summaryHead = banner + "\n" + summaryTitle + "\n" + banner + "\n"
	footer      = banner + "\n" + footerTitle + "\n" + banner + "\n"
)

// OutputError reports a report file that could not be written.
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("write report %s: %v", e.Path, e.Err)
}

func (e *OutputError) Unwrap() error { return e.Err }

func recordHead(i int) string {
	return fmt.Sprintf("ERROR #%d\nLog line: ", i)
}

// Format renders r as plain text. Analyses and the summary are written
// verbatim.
func Format(r model.Report) string {
	var b strings.Builder

	b.WriteString(banner + "\n")
	b.WriteString(title + "\n")
	b.WriteString("Generated: " + r.GeneratedAt.Format(timeLayout) + "\n")
	fmt.Fprintf(&b, "Errors found: %d\n", len(r.Records))
	b.WriteString(banner + "\n\n")

	for i, rec := range r.Records {
		b.WriteString(recordHead(i + 1))
		b.WriteString(rec.Line + "\n")
		b.WriteString(rule + "\n")
		b.WriteString(rec.Analysis)
		b.WriteString("\n\n")
	}

	b.WriteString(summaryHead)
	b.WriteString(r.Summary)
	b.WriteString("\n\n")
	b.WriteString(footer)

	return b.String()
}

// Write replaces the file at path with the formatted report. The content
// goes to a temp file first and is renamed into place.
func Write(path string, r model.Report) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &OutputError{Path: path, Err: err}
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(Format(r)), 0644); err != nil {
		_ = os.Remove(tmp)
		return &OutputError{Path: path, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &OutputError{Path: path, Err: err}
	}
	return nil
}

// Parse reads a report produced by Format back into its parts. Analyses are
// free text and may quote block headers, so each candidate block boundary is
// tried in turn until the remainder of the report parses.
func Parse(text string) (model.Report, error) {
	var r model.Report

	headPrefix := banner + "\n" + title + "\nGenerated: "
	if !strings.HasPrefix(text, headPrefix) {
		return r, fmt.Errorf("missing report header")
	}
	rest := text[len(headPrefix):]

	nl := strings.IndexByte(rest, '\n')
	if nl < 0 {
		return r, fmt.Errorf("truncated header")
	}
	ts, err := time.ParseInLocation(timeLayout, rest[:nl], time.Local)
	if err != nil {
		return r, fmt.Errorf("parse timestamp: %w", err)
	}
	r.GeneratedAt = ts
	rest = rest[nl+1:]

	var count int
	nl = strings.IndexByte(rest, '\n')
	if nl < 0 {
		return r, fmt.Errorf("truncated header")
	}
	if _, err := fmt.Sscanf(rest[:nl], "Errors found: %d", &count); err != nil || count < 0 {
		return r, fmt.Errorf("malformed error count %q", rest[:nl])
	}
	rest = rest[nl+1:]

	if !strings.HasPrefix(rest, banner+"\n\n") {
		return r, fmt.Errorf("malformed header banner")
	}
	rest = rest[len(banner)+2:]

	records, summary, err := parseBlocks(rest, 1, count)
	if err != nil {
		return r, err
	}
	r.Records = records
	r.Summary = summary
	return r, nil
}

// parseBlocks parses record i of n and everything after it.
func parseBlocks(rest string, i, n int) ([]model.ErrorRecord, string, error) {
	if i > n {
		if !strings.HasPrefix(rest, summaryHead) {
			return nil, "", fmt.Errorf("expected %s after ERROR #%d", summaryTitle, n)
		}
		body := rest[len(summaryHead):]
		tail := "\n\n" + footer
		if !strings.HasSuffix(body, tail) {
			return nil, "", fmt.Errorf("missing report footer")
		}
		return nil, body[:len(body)-len(tail)], nil
	}

	head := recordHead(i)
	if !strings.HasPrefix(rest, head) {
		return nil, "", fmt.Errorf("expected block ERROR #%d", i)
	}
	rest = rest[len(head):]

	nl := strings.IndexByte(rest, '\n')
	if nl < 0 {
		return nil, "", fmt.Errorf("ERROR #%d: truncated log line", i)
	}
	line := rest[:nl]
	rest = rest[nl+1:]

	if !strings.HasPrefix(rest, rule+"\n") {
		return nil, "", fmt.Errorf("ERROR #%d: missing separator", i)
	}
	rest = rest[len(rule)+1:]

	marker := "\n\n" + recordHead(i+1)
	if i == n {
		marker = "\n\n" + summaryHead
	}

	lastErr := fmt.Errorf("ERROR #%d: unterminated analysis", i)
	for from := 0; from <= len(rest); {
		idx := strings.Index(rest[from:], marker)
		if idx < 0 {
			break
		}
		end := from + idx
		records, summary, err := parseBlocks(rest[end+2:], i+1, n)
		if err == nil {
			rec := model.ErrorRecord{Line: line, Analysis: rest[:end]}
			return append([]model.ErrorRecord{rec}, records...), summary, nil
		}
		lastErr = err
		from = end + 1
	}
	return nil, "", lastErr
}
