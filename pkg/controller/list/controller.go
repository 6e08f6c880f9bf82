// Package list prints the DRC checks kdrc can run.
package list

import (
	"io"

	"github.com/precheck-tools/kdrc/pkg/config"
)

// Controller handles the list command operations.
type Controller struct {
	cfg    *config.Config
	param  *Param
	stdout io.Writer
}

// Param contains parameters for the list command.
type Param struct {
	LineTemplate string
	DesignName   string
}

// New creates a new Controller for running list operations.
func New(cfg *config.Config, param *Param, stdout io.Writer) *Controller {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return &Controller{
		cfg:    cfg,
		param:  param,
		stdout: stdout,
	}
}
