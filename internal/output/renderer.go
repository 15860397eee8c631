package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sukanto-m/smart-log-analyser/internal/aggregator"
	"github.com/sukanto-m/smart-log-analyser/internal/model"
	"github.com/sukanto-m/smart-log-analyser/internal/severity"
)

// Renderer writes run progress to the console as the pipeline advances.
type Renderer interface {
	Begin(total int) error
	Record(index int, rec model.ErrorRecord) error
	Summary(text string) error
	Stats(stats aggregator.Stats) error
}

// ---------------------------------------------------------------------------
// Text Renderer (colorized terminal output)
// ---------------------------------------------------------------------------

var separator = strings.Repeat("-", 80)

// TextRenderer prints analyses with the severity token highlighted.
type TextRenderer struct {
	w       io.Writer
	hl      *severity.Highlighter
	heading lipgloss.Style
	label   lipgloss.Style
}

// NewTextRenderer returns a Renderer that writes colorized text to w. Colors
// are dropped when w is not a terminal.
func NewTextRenderer(w io.Writer) *TextRenderer {
	return newTextRenderer(w, lipgloss.NewRenderer(w))
}

func newTextRenderer(w io.Writer, r *lipgloss.Renderer) *TextRenderer {
	return &TextRenderer{
		w:       w,
		hl:      severity.NewHighlighter(r),
		heading: r.NewStyle().Bold(true),
		label:   r.NewStyle().Foreground(lipgloss.Color("245")), // gray
	}
}

func (t *TextRenderer) Begin(total int) error {
	_, err := fmt.Fprintf(t.w, "\nFound %d error(s). Analyzing with LLM...\n\n", total)
	return err
}

func (t *TextRenderer) Record(index int, rec model.ErrorRecord) error {
	_, err := fmt.Fprintf(t.w, "%s %s\n%s %s\n\n%s\n",
		t.label.Render(fmt.Sprintf("[%d] Error:", index)), rec.Line,
		t.label.Render("Analysis:"), t.hl.Colorize(rec.Analysis),
		separator)
	return err
}

func (t *TextRenderer) Summary(text string) error {
	_, err := fmt.Fprintf(t.w, "\n%s\n%s\n", t.heading.Render("OVERALL SUMMARY"), text)
	return err
}

func (t *TextRenderer) Stats(stats aggregator.Stats) error {
	_, err := fmt.Fprintln(t.w, t.label.Render(stats.String()))
	return err
}

// ---------------------------------------------------------------------------
// JSON Renderer (structured output for piping)
// ---------------------------------------------------------------------------

// event is one JSON line emitted by JSONRenderer.
type event struct {
	Type     string            `json:"type"`
	Total    *int              `json:"total,omitempty"`
	Index    int               `json:"index,omitempty"`
	Line     string            `json:"line,omitempty"`
	Analysis string            `json:"analysis,omitempty"`
	Severity model.Severity    `json:"severity,omitempty"`
	Summary  string            `json:"summary,omitempty"`
	Stats    *aggregator.Stats `json:"stats,omitempty"`
}

// JSONRenderer prints one JSON object per pipeline event.
type JSONRenderer struct {
	enc *json.Encoder
}

// NewJSONRenderer returns a Renderer that writes JSON lines to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{enc: json.NewEncoder(w)}
}

func (j *JSONRenderer) Begin(total int) error {
	return j.enc.Encode(event{Type: "begin", Total: &total})
}

func (j *JSONRenderer) Record(index int, rec model.ErrorRecord) error {
	sev, _ := severity.Detect(rec.Analysis)
	return j.enc.Encode(event{
		Type:     "record",
		Index:    index,
		Line:     rec.Line,
		Analysis: rec.Analysis,
		Severity: sev,
	})
}

func (j *JSONRenderer) Summary(text string) error {
	return j.enc.Encode(event{Type: "summary", Summary: text})
}

func (j *JSONRenderer) Stats(stats aggregator.Stats) error {
	return j.enc.Encode(event{Type: "stats", Stats: &stats})
}

// New picks a renderer by format name; anything but "json" is text.
func New(format string, w io.Writer) Renderer {
	if strings.EqualFold(format, "json") {
		return NewJSONRenderer(w)
	}
	return NewTextRenderer(w)
}
