// Package run defines the flags and the action of the DRC run, the default
// action of kdrc.
package run

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/precheck-tools/kdrc/pkg/cli/flag"
	"github.com/precheck-tools/kdrc/pkg/config"
	"github.com/precheck-tools/kdrc/pkg/controller/run"
	"github.com/precheck-tools/kdrc/pkg/drc"
	"github.com/precheck-tools/kdrc/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

type Flags struct {
	GDSInputFilePath string
	OutputDirectory  string
	PDKRoot          string
	DesignName       string
	Checks           []string
	FailOnViolation  bool
}

// Validate fails if a required flag isn't set.
func (f *Flags) Validate() error {
	for _, p := range []struct {
		name  string
		value string
	}{
		{name: "gds_input_file_path", value: f.GDSInputFilePath},
		{name: "output_directory", value: f.OutputDirectory},
		{name: "pdk_root", value: f.PDKRoot},
		{name: "design_name", value: f.DesignName},
	} {
		if p.value == "" {
			return fmt.Errorf("--%s is required", p.name)
		}
	}
	return nil
}

type Runner struct {
	logE   *logrus.Entry
	gflags *flag.GlobalFlags
	flags  *Flags
	stderr io.Writer
}

func New(logE *logrus.Entry, gflags *flag.GlobalFlags, stderr io.Writer) *Runner {
	return &Runner{
		logE:   logE,
		gflags: gflags,
		flags:  &Flags{},
		stderr: stderr,
	}
}

func (r *Runner) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gds_input_file_path",
			Aliases:     []string{"g"},
			Usage:       "GDS File to apply DRC checks on (required)",
			Destination: &r.flags.GDSInputFilePath,
		},
		&cli.StringFlag{
			Name:        "output_directory",
			Aliases:     []string{"o"},
			Usage:       "Output Directory (required)",
			Destination: &r.flags.OutputDirectory,
		},
		&cli.StringFlag{
			Name:        "pdk_root",
			Aliases:     []string{"p"},
			Usage:       "PDK Path (required)",
			Destination: &r.flags.PDKRoot,
		},
		&cli.StringFlag{
			Name:        "design_name",
			Aliases:     []string{"d"},
			Usage:       "Design Name (required)",
			Destination: &r.flags.DesignName,
		},
		&cli.StringSliceFlag{
			Name:        "check",
			Usage:       "DRC check to run. Run 'kdrc list' to see available checks. By default feol",
			Destination: &r.flags.Checks,
		},
		&cli.BoolFlag{
			Name:        "fail-on-violation",
			Usage:       "Exit with a non-zero status code if DRC violations are found",
			Sources:     cli.EnvVars("KDRC_FAIL_ON_VIOLATION"),
			Destination: &r.flags.FailOnViolation,
		},
	}
}

func (r *Runner) Action(ctx context.Context, _ *cli.Command) error {
	if err := log.SetLevel(r.gflags.LogLevel, r.logE); err != nil {
		return fmt.Errorf("set log level: %w", err)
	}
	if err := log.SetColor(r.gflags.LogColor, r.logE); err != nil {
		return fmt.Errorf("set log color: %w", err)
	}
	if err := r.flags.Validate(); err != nil {
		return err
	}

	fs := afero.NewOsFs()
	cfg, err := readConfig(fs, r.gflags.Config)
	if err != nil {
		return err
	}
	scriptDir, err := executableDir()
	if err != nil {
		return err
	}

	param := &run.ParamRun{
		InputFilePath:   r.flags.GDSInputFilePath,
		OutputDirectory: r.flags.OutputDirectory,
		PDKRoot:         r.flags.PDKRoot,
		DesignName:      r.flags.DesignName,
		Checks:          r.flags.Checks,
		ScriptDir:       scriptDir,
		FailOnViolation: r.flags.FailOnViolation,
		Stderr:          r.stderr,
	}
	ctrl := run.New(fs, drc.NewRunner(fs, drc.NewOSExecutor(), cfg.Executable()), cfg, param)
	return ctrl.Run(ctx, r.logE) //nolint:wrapcheck
}

func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("get the path of the executable: %w", err)
	}
	if p, err := filepath.EvalSymlinks(exe); err == nil {
		exe = p
	}
	return filepath.Dir(exe), nil
}

func readConfig(fs afero.Fs, configFilePath string) (*config.Config, error) {
	cfgPath, err := config.NewFinder(fs).Find(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("find a configuration file: %w", err)
	}
	cfg := &config.Config{}
	if err := config.NewReader(fs).Read(cfg, cfgPath); err != nil {
		return nil, fmt.Errorf("read a configuration file: %w", err)
	}
	return cfg, nil
}

// IsInvalidInput reports whether err comes from the validation of the layout
// file or the output directory. The error has already been logged.
func IsInvalidInput(err error) bool {
	return errors.Is(err, run.ErrInvalidInput)
}
