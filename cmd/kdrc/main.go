package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/precheck-tools/kdrc/pkg/cli"
	"github.com/precheck-tools/kdrc/pkg/cli/run"
	controller "github.com/precheck-tools/kdrc/pkg/controller/run"
	"github.com/precheck-tools/kdrc/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/go-stdutil"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

var (
	version = ""
	commit  = "" //nolint:gochecknoglobals
	date    = "" //nolint:gochecknoglobals
)

func main() {
	logE := log.New(os.Stderr, version)
	if err := core(logE); err != nil {
		if run.IsInvalidInput(err) {
			return
		}
		if errors.Is(err, controller.ErrDRCDirty) {
			os.Exit(1)
		}
		logerr.WithError(logE, err).Fatal("kdrc failed")
	}
}

func core(logE *logrus.Entry) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	runner := &cli.Runner{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		LDFlags: &stdutil.LDFlags{
			Version: version,
			Commit:  commit,
			Date:    date,
		},
		LogE: logE,
	}
	return runner.Run(ctx, os.Args...)
}
