// Package cli defines the kdrc command line.
package cli

import (
	"context"
	"io"

	"github.com/precheck-tools/kdrc/pkg/cli/flag"
	"github.com/precheck-tools/kdrc/pkg/cli/initcmd"
	"github.com/precheck-tools/kdrc/pkg/cli/list"
	"github.com/precheck-tools/kdrc/pkg/cli/run"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/go-stdutil"
	"github.com/suzuki-shunsuke/urfave-cli-v3-util/urfave"
	"github.com/urfave/cli/v3"
)

type Runner struct {
	Stdout  io.Writer
	Stderr  io.Writer
	LDFlags *stdutil.LDFlags
	LogE    *logrus.Entry
}

func (r *Runner) Run(ctx context.Context, args ...string) error {
	gflags := &flag.GlobalFlags{}
	runCmd := run.New(r.LogE, gflags, r.Stderr)
	cmd := urfave.Command(r.LDFlags, &cli.Command{
		Name:  "kdrc",
		Usage: "Run KLayout DRC checks against a GDS layout",
		Description: `Run KLayout in batch mode with a DRC rule script and count the violations in the report.

$ kdrc -g gds/user_project_wrapper.gds -o precheck_results -p "$PDK_ROOT" -d user_project_wrapper

By default the feol check is run. Other checks can be selected with --check.

$ kdrc -g gds/user_project_wrapper.gds -o precheck_results -p "$PDK_ROOT" -d user_project_wrapper --check feol --check beol

Each check writes <output_directory>/outputs/reports/<ref>_check.xml, <output_directory>/logs/<ref>_check.log
and <output_directory>/logs/<ref>_check.total, where <ref> is the name kdrc list shows (e.g. klayout_feol).
The feol run of the precheck named its files klayout_feol_drc_check.*; scripts reading those names need updating.
`,
		Writer:    r.Stdout,
		ErrWriter: r.Stderr,
		Flags:     append(gflags.Flags(), runCmd.Flags()...),
		Action:    runCmd.Action,
		Commands: []*cli.Command{
			initcmd.New(r.LogE, gflags),
			list.New(r.LogE, gflags, r.Stdout),
		},
	})

	return cmd.Run(ctx, args) //nolint:wrapcheck
}
