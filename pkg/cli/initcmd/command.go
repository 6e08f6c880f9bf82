// Package initcmd implements the 'kdrc init' command.
package initcmd

import (
	"context"
	"fmt"

	"github.com/precheck-tools/kdrc/pkg/cli/flag"
	"github.com/precheck-tools/kdrc/pkg/controller/initcmd"
	"github.com/precheck-tools/kdrc/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

type runner struct {
	logE   *logrus.Entry
	gflags *flag.GlobalFlags
	fs     afero.Fs
}

func New(logE *logrus.Entry, gflags *flag.GlobalFlags) *cli.Command {
	r := &runner{
		logE:   logE,
		gflags: gflags,
		fs:     afero.NewOsFs(),
	}
	return r.Command()
}

func (r *runner) Command() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create .kdrc.yaml if it doesn't exist",
		Description: `Create .kdrc.yaml if it doesn't exist

$ kdrc init

You can also pass configuration file path.

e.g.

$ kdrc init precheck/kdrc.yaml
`,
		Action: r.action,
	}
}

func (r *runner) action(_ context.Context, c *cli.Command) error {
	if err := log.SetLevel(r.gflags.LogLevel, r.logE); err != nil {
		return fmt.Errorf("set log level: %w", err)
	}
	configFilePath := c.Args().First()
	if configFilePath == "" {
		configFilePath = r.gflags.Config
	}
	if configFilePath == "" {
		configFilePath = ".kdrc.yaml"
	}
	r.logE.WithField("config", configFilePath).Debug("create a configuration file")
	return initcmd.New(r.fs).Init(configFilePath) //nolint:wrapcheck
}
