package run

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/precheck-tools/kdrc/pkg/checks"
)

type colorFunc func(a ...interface{}) string

// Result is the outcome of a single check.
type Result struct {
	Check      *checks.Check
	Passed     bool
	ReportPath string
}

type Logger struct {
	stderr io.Writer
	red    colorFunc
	green  colorFunc
}

func NewLogger(stderr io.Writer) *Logger {
	return &Logger{
		red:    color.New(color.FgRed).SprintFunc(),
		green:  color.New(color.FgGreen).SprintFunc(),
		stderr: stderr,
	}
}

func (l *Logger) Output(result *Result) {
	if l.stderr == nil {
		return
	}
	if result.Passed {
		fmt.Fprintf(l.stderr, "%s %s\n", l.green("PASSED"), result.Check.Surname)
		return
	}
	fmt.Fprintf(l.stderr, "%s %s\n%s\n", l.red("FAILED"), result.Check.Surname, result.ReportPath)
}

func (l *Logger) Summary(results []*Result) {
	for _, result := range results {
		l.Output(result)
	}
}
