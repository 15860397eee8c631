package logging

import (
	"io"
	"os"

	"github.com/phuslu/log"
)

// New returns a console logger writing to w. Verbose runs log everything from
// debug up, including per-line timings; otherwise only warnings and errors get
// through so that the analysis output owns the terminal.
func New(verbose bool, w io.Writer) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}

	color := false
	if f, ok := w.(*os.File); ok {
		color = log.IsTerminal(f.Fd())
	}

	return &log.Logger{
		Level: level,
		Writer: &log.ConsoleWriter{
			ColorOutput:    color,
			QuoteString:    true,
			EndWithMessage: true,
			Writer:         w,
		},
	}
}

// Discard returns a logger that drops everything; handy in tests.
func Discard() *log.Logger {
	return &log.Logger{Level: log.PanicLevel, Writer: &log.IOWriter{Writer: io.Discard}}
}
