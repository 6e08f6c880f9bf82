// Package list implements the 'kdrc list' command.
package list

import (
	"context"
	"fmt"
	"io"

	"github.com/precheck-tools/kdrc/pkg/cli/flag"
	"github.com/precheck-tools/kdrc/pkg/config"
	"github.com/precheck-tools/kdrc/pkg/controller/list"
	"github.com/precheck-tools/kdrc/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

// Flags holds the command-line flags for the list command.
type Flags struct {
	LineTemplate string
	Design       string
}

type runner struct {
	logE   *logrus.Entry
	gflags *flag.GlobalFlags
	stdout io.Writer
}

// New creates the list command.
func New(logE *logrus.Entry, gflags *flag.GlobalFlags, stdout io.Writer) *cli.Command {
	r := &runner{
		logE:   logE,
		gflags: gflags,
		stdout: stdout,
	}
	return r.Command()
}

func (r *runner) Command() *cli.Command {
	flags := &Flags{}
	return &cli.Command{
		Name:  "list",
		Usage: "List DRC checks",
		Description: `List DRC checks kdrc can run.

$ kdrc list

Output format (default CSV):
<Key>,<Ref>,<Script>,<ExtraArgs>

Custom output format using Go template:
$ kdrc list --line-template "{{.Key}}: {{.Surname}}"

Arguments derived from the design name show <design> unless --design is set:
$ kdrc list --design user_project_wrapper

Available template fields:
  Key       - Check key passed to --check (e.g., feol)
  Ref       - Name of the report, log and total files (e.g., klayout_feol)
  Surname   - Display name (e.g., Klayout FEOL)
  Script    - Rule script path
  ExtraArgs - Extra KLayout arguments
`,
		Action: func(_ context.Context, _ *cli.Command) error {
			return r.action(flags)
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "line-template",
				Usage:       "Go text/template format for each line",
				Destination: &flags.LineTemplate,
			},
			&cli.StringFlag{
				Name:        "design",
				Usage:       "design name used to render the extra arguments",
				Destination: &flags.Design,
			},
		},
	}
}

func (r *runner) action(flags *Flags) error {
	if err := log.SetLevel(r.gflags.LogLevel, r.logE); err != nil {
		return fmt.Errorf("set log level: %w", err)
	}
	fs := afero.NewOsFs()
	cfgPath, err := config.NewFinder(fs).Find(r.gflags.Config)
	if err != nil {
		return fmt.Errorf("find a configuration file: %w", err)
	}
	cfg := &config.Config{}
	if err := config.NewReader(fs).Read(cfg, cfgPath); err != nil {
		return fmt.Errorf("read a configuration file: %w", err)
	}
	return list.New(cfg, &list.Param{ //nolint:wrapcheck
		LineTemplate: flags.LineTemplate,
		DesignName:   flags.Design,
	}, r.stdout).List()
}
