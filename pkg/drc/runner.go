// Package drc runs KLayout DRC rule scripts against a GDS layout and
// counts the violation markers in the generated report.
// KLayout does all of the rule checking. This package only builds the
// command line, runs the tool with its output captured in a log file,
// and scans the XML report for <item> markers.
package drc

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const (
	// DefaultExecutable is the KLayout binary looked up on PATH.
	DefaultExecutable = "klayout"
	violationMarker   = "<item>"

	dirPermission  os.FileMode = 0o755
	filePermission os.FileMode = 0o644
)

// Invocation is a single DRC check run.
type Invocation struct {
	CheckName       string
	RuleScriptPath  string
	InputFilePath   string
	OutputDirectory string
	ExtraArgs       []string
}

type Runner struct {
	fs         afero.Fs
	executor   Executor
	executable string
}

// NewRunner creates a Runner. If executable is empty, DefaultExecutable is used.
func NewRunner(fs afero.Fs, executor Executor, executable string) *Runner {
	if executable == "" {
		executable = DefaultExecutable
	}
	return &Runner{
		fs:         fs,
		executor:   executor,
		executable: executable,
	}
}

func ReportPath(outputDirectory, checkName string) string {
	return filepath.Join(outputDirectory, "outputs", "reports", checkName+"_check.xml")
}

func LogPath(outputDirectory, checkName string) string {
	return filepath.Join(outputDirectory, "logs", checkName+"_check.log")
}

func TotalPath(outputDirectory, checkName string) string {
	return filepath.Join(outputDirectory, "logs", checkName+"_check.total")
}

// BuildCommand returns the KLayout arguments for inv, without the executable name.
// The order is fixed: batch mode, rule script, input, report, then the extra args.
func BuildCommand(inv *Invocation) []string {
	args := make([]string, 0, 7+len(inv.ExtraArgs)) //nolint:mnd
	args = append(args,
		"-b",
		"-r", inv.RuleScriptPath,
		"-rd", "input="+inv.InputFilePath,
		"-rd", "report="+ReportPath(inv.OutputDirectory, inv.CheckName),
	)
	return append(args, inv.ExtraArgs...)
}

// CountViolations counts non-overlapping occurrences of <item> in a report.
func CountViolations(report string) int {
	return strings.Count(report, violationMarker)
}

// Run executes the check and returns true if the report has no violations.
// The exit status of KLayout is not checked; a missing report is an error.
func (r *Runner) Run(ctx context.Context, logE *logrus.Entry, inv *Invocation) (bool, error) {
	reportPath := ReportPath(inv.OutputDirectory, inv.CheckName)
	logPath := LogPath(inv.OutputDirectory, inv.CheckName)
	logE = logE.WithFields(logrus.Fields{
		"check":       inv.CheckName,
		"report_file": reportPath,
	})

	if err := r.prepareDirs(inv.OutputDirectory); err != nil {
		return false, err
	}

	if err := r.execute(ctx, logE, logPath, BuildCommand(inv)); err != nil {
		return false, err
	}

	b, err := afero.ReadFile(r.fs, reportPath)
	if err != nil {
		return false, fmt.Errorf("read a DRC report: %w", err)
	}
	count := CountViolations(string(b))

	if err := afero.WriteFile(r.fs, TotalPath(inv.OutputDirectory, inv.CheckName), []byte(strconv.Itoa(count)), filePermission); err != nil {
		return false, fmt.Errorf("write the total number of DRC violations: %w", err)
	}

	if count == 0 {
		logE.Info("No DRC Violations found")
		return true, nil
	}
	logE.WithField("violations", count).Errorf("Total # of DRC violations is %d Please check %s For more details", count, reportPath)
	return false, nil
}

func (r *Runner) prepareDirs(outputDirectory string) error {
	for _, dir := range []string{
		filepath.Join(outputDirectory, "logs"),
		filepath.Join(outputDirectory, "outputs", "reports"),
	} {
		if err := r.fs.MkdirAll(dir, dirPermission); err != nil {
			return fmt.Errorf("create a directory %s: %w", dir, err)
		}
	}
	return nil
}

func (r *Runner) execute(ctx context.Context, logE *logrus.Entry, logPath string, args []string) error {
	f, err := r.fs.Create(logPath)
	if err != nil {
		return fmt.Errorf("create a log file: %w", err)
	}
	defer f.Close()

	logE.WithField("command", r.executable+" "+strings.Join(args, " ")).Debug("run klayout")
	if err := r.executor.Exec(ctx, r.executable, args, f); err != nil {
		var exitErr HasExitCode
		if errors.As(err, &exitErr) {
			logE.WithField("exit_code", exitErr.ExitCode()).Warn("klayout exited with a non-zero status")
			return nil
		}
		return fmt.Errorf("run klayout: %w", err)
	}
	return nil
}
