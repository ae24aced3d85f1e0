package pass

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Logger receives a line of narration per pass as the pipeline runs.
// The default implementation writes colored status lines to stderr,
// following the teacher's direct color.Red/color.Green call style
// rather than a structured logging library.
type Logger interface {
	PassStarted(name string)
	PassSucceeded(name string, produced []string)
	PassFailed(name string, err error)
}

// ColorLogger is the default Logger, writing to w (stderr in normal
// use) with green for success, red for failure, yellow while running.
type ColorLogger struct {
	w io.Writer
}

// NewColorLogger returns a ColorLogger writing to os.Stderr.
func NewColorLogger() *ColorLogger {
	return &ColorLogger{w: os.Stderr}
}

func (l *ColorLogger) PassStarted(name string) {
	fmt.Fprintln(l.w, color.YellowString("▶ running %s", name))
}

func (l *ColorLogger) PassSucceeded(name string, produced []string) {
	if len(produced) == 0 {
		fmt.Fprintln(l.w, color.GreenString("✓ %s", name))
		return
	}
	fmt.Fprintln(l.w, color.GreenString("✓ %s (produced %v)", name, produced))
}

func (l *ColorLogger) PassFailed(name string, err error) {
	fmt.Fprintln(l.w, color.RedString("✗ %s: %s", name, err))
}

// noopLogger discards every line; used when the pipeline is built
// without an explicit logger (e.g. under test).
type noopLogger struct{}

func (noopLogger) PassStarted(string)             {}
func (noopLogger) PassSucceeded(string, []string) {}
func (noopLogger) PassFailed(string, error)       {}
