package prompt

import (
	"fmt"
	"strings"
)

// ForLine builds the per-line prompt: classify the severity of one log line
// and explain it in plain language.
func ForLine(line string) string {
	var parts []string

	parts = append(parts, "You are helping an operator understand an error found in an application log.")
	parts = append(parts, "")
	parts = append(parts, "LOG LINE:")
	parts = append(parts, line)
	parts = append(parts, "")
	parts = append(parts, "TASK:")
	parts = append(parts, "1. Classify the severity as exactly one of: LOW, MEDIUM, HIGH, CRITICAL.")
	parts = append(parts, "   Start your answer with \"Severity: <LEVEL>\".")
	parts = append(parts, "2. Explain this log error in simple terms.")
	parts = append(parts, "3. Suggest the most likely cause and one next step.")

	return strings.Join(parts, "\n")
}

// ForSummary builds the single aggregation prompt embedding every kept line.
// An empty list still yields a valid prompt.
func ForSummary(lines []string) string {
	var parts []string

	parts = append(parts, "Here are multiple log errors. Provide a brief summary of the overall issue.")
	parts = append(parts, "")
	parts = append(parts, fmt.Sprintf("ERRORS (%d):", len(lines)))
	if len(lines) == 0 {
		parts = append(parts, "(none)")
	}
	for _, l := range lines {
		parts = append(parts, "- "+l)
	}
	parts = append(parts, "")
	parts = append(parts, "TASK:")
	parts = append(parts, "Describe what is going wrong overall, which component is most affected, and what to check first.")

	return strings.Join(parts, "\n")
}
