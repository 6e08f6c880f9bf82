// Package run implements the DRC run of kdrc.
// It validates the layout and the output directory, resolves the requested
// checks from the catalog and the configuration file, runs each check with
// KLayout one after another, and reports a clean or dirty result.
package run

import (
	"context"

	"github.com/precheck-tools/kdrc/pkg/config"
	"github.com/precheck-tools/kdrc/pkg/drc"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

type Controller struct {
	fs     afero.Fs
	runner CheckRunner
	cfg    *config.Config
	param  *ParamRun
	logger *Logger
}

type CheckRunner interface {
	Run(ctx context.Context, logE *logrus.Entry, inv *drc.Invocation) (bool, error)
	CheckMinVersion(ctx context.Context, constraint string) error
}

func New(fs afero.Fs, runner CheckRunner, cfg *config.Config, param *ParamRun) *Controller {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return &Controller{
		fs:     fs,
		runner: runner,
		cfg:    cfg,
		param:  param,
		logger: NewLogger(param.Stderr),
	}
}
