package severity

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sukanto-m/smart-log-analyser/internal/model"
)

// token pairs a severity tag with the literal searched for in text.
type token struct {
	tag     model.Severity
	literal string
}

// order is the scan priority. The first entry whose literal appears anywhere
// in the text wins, regardless of where it appears.
var order = []token{
	{model.SeverityLow, "LOW"},
	{model.SeverityMedium, "MEDIUM"},
	{model.SeverityHigh, "HIGH"},
	{model.SeverityCritical, "CRITICAL"},
}

// Levels returns the severities in scan priority order.
func Levels() []model.Severity {
	out := make([]model.Severity, len(order))
	for i, t := range order {
		out[i] = t.tag
	}
	return out
}

// Detect returns the first severity token present in text.
func Detect(text string) (model.Severity, bool) {
	sev, _, ok := find(text)
	return sev, ok
}

func find(text string) (model.Severity, int, bool) {
	for _, t := range order {
		if idx := strings.Index(text, t.literal); idx >= 0 {
			return t.tag, idx, true
		}
	}
	return model.SeverityNone, -1, false
}

// Highlighter wraps the detected severity token in a terminal style.
type Highlighter struct {
	styles map[model.Severity]lipgloss.Style
}

// NewHighlighter builds styles against r, which decides the color profile.
func NewHighlighter(r *lipgloss.Renderer) *Highlighter {
	return &Highlighter{
		styles: map[model.Severity]lipgloss.Style{
			model.SeverityLow:      r.NewStyle().Foreground(lipgloss.Color("39")),                                           // cyan
			model.SeverityMedium:   r.NewStyle().Foreground(lipgloss.Color("220")),                                          // yellow
			model.SeverityHigh:     r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),                               // red bold
			model.SeverityCritical: r.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("196")).Bold(true), // white on red
		},
	}
}

// style returns the display style for sev.
func (h *Highlighter) style(sev model.Severity) (lipgloss.Style, bool) {
	s, ok := h.styles[sev]
	return s, ok
}

// Colorize styles the first occurrence of the detected token and leaves the
// rest of text as is. Text without a token is returned unchanged.
func (h *Highlighter) Colorize(text string) string {
	sev, idx, ok := find(text)
	if !ok {
		return text
	}
	lit := string(sev)
	st, _ := h.style(sev)
	return text[:idx] + st.Render(lit) + text[idx+len(lit):]
}
