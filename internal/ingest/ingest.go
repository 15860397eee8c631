package ingest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sukanto-m/smart-log-analyser/internal/model"
)

// Keywords are the literal, case-sensitive markers of an error line.
// Order matters only for Match's reported keyword.
var Keywords = []string{"ERROR", "FATAL", "Exception", "CRITICAL"}

// InputError reports a log file that could not be opened or read.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("read log file %s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// Match reports whether raw contains any keyword and returns the first one
// found in Keywords order. No regex, no word boundaries.
func Match(raw string) (string, bool) {
	for _, kw := range Keywords {
		if strings.Contains(raw, kw) {
			return kw, true
		}
	}
	return "", false
}

// Read scans r once, front to back, and returns the trimmed form of every
// line whose untrimmed text matches a keyword. Lines of any length are read.
func Read(r io.Reader) ([]model.LogLine, error) {
	br := bufio.NewReader(r)

	var kept []model.LogLine
	for {
		raw, err := br.ReadString('\n')
		if raw != "" {
			if _, ok := Match(raw); ok {
				kept = append(kept, strings.TrimSpace(raw))
			}
		}
		if err == io.EOF {
			return kept, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// ReadFile opens path and runs Read over it. Any failure is an *InputError.
func ReadFile(path string) ([]model.LogLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	defer f.Close()

	lines, err := Read(f)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	return lines, nil
}
