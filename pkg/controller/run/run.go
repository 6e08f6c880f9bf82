package run

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/precheck-tools/kdrc/pkg/checks"
	"github.com/precheck-tools/kdrc/pkg/drc"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

type ParamRun struct {
	InputFilePath   string
	OutputDirectory string
	PDKRoot         string
	DesignName      string
	Checks          []string
	// ScriptDir is used if the configuration file doesn't set script_dir.
	ScriptDir       string
	FailOnViolation bool
	Stderr          io.Writer
}

var (
	ErrInvalidInput = errors.New("input is invalid")
	ErrDRCDirty     = errors.New("DRC violations are found")
)

const gdsSuffix = ".gds"

// Validate checks the layout file and the output directory before KLayout is run.
func (c *Controller) Validate(logE *logrus.Entry) error {
	if !c.isGDSFile(c.param.InputFilePath) {
		logE.Errorf("%s is not valid", c.param.InputFilePath)
		return ErrInvalidInput
	}
	if f, err := afero.IsDir(c.fs, c.param.OutputDirectory); err != nil || !f {
		logE.Errorf("%s is not valid", c.param.OutputDirectory)
		return ErrInvalidInput
	}
	return nil
}

func (c *Controller) isGDSFile(p string) bool {
	if filepath.Ext(p) != gdsSuffix {
		return false
	}
	f, err := afero.Exists(c.fs, p)
	return err == nil && f
}

func (c *Controller) Run(ctx context.Context, logE *logrus.Entry) error {
	if err := c.Validate(logE); err != nil {
		return err
	}
	list, err := c.resolveChecks()
	if err != nil {
		return err
	}
	if err := c.runner.CheckMinVersion(ctx, c.cfg.MinVersion()); err != nil {
		return fmt.Errorf("check the klayout version: %w", err)
	}
	logE.WithFields(logrus.Fields{
		"pdk_root":    c.param.PDKRoot,
		"design_name": c.param.DesignName,
	}).Debug("run DRC checks")

	results := make([]*Result, 0, len(list))
	clean := true
	for _, check := range list {
		logE := logE.WithField("check", check.Key)
		passed, err := c.runner.Run(ctx, logE, c.invocation(check))
		if err != nil {
			return fmt.Errorf("run the check %s: %w", check.Key, err)
		}
		gdsName := filepath.Base(c.param.InputFilePath)
		if passed {
			logE.Infof("{{%s CHECK PASSED}} The GDS file, %s, has no DRC violations.", check.Surname, gdsName)
		} else {
			clean = false
			logE.Warnf("{{%s CHECK FAILED}} The GDS file, %s, has DRC violations.", check.Surname, gdsName)
		}
		results = append(results, &Result{
			Check:      check,
			Passed:     passed,
			ReportPath: drc.ReportPath(c.param.OutputDirectory, check.Ref),
		})
	}

	c.logger.Summary(results)
	if clean {
		logE.Info("Klayout GDS DRC Clean")
		return nil
	}
	logE.Info("Klayout GDS DRC Dirty")
	if c.param.FailOnViolation {
		return ErrDRCDirty
	}
	return nil
}

func (c *Controller) resolveChecks() ([]*checks.Check, error) {
	keys := c.param.Checks
	if len(keys) == 0 {
		keys = []string{checks.DefaultKey}
	}
	list := make([]*checks.Check, len(keys))
	for i, key := range keys {
		check, err := checks.Get(key)
		if err != nil {
			return nil, fmt.Errorf("get a check: %w", err)
		}
		list[i] = check
	}
	return list, nil
}

func (c *Controller) scriptDir() string {
	if c.cfg.ScriptDir != "" {
		return c.cfg.ScriptDir
	}
	return c.param.ScriptDir
}

func (c *Controller) invocation(check *checks.Check) *drc.Invocation {
	script := check.Script
	extraArgs := check.ExtraArgs(&checks.Context{
		DesignName:      c.param.DesignName,
		InputFilePath:   c.param.InputFilePath,
		OutputDirectory: c.param.OutputDirectory,
	})
	if o := c.cfg.Override(check.Key); o != nil {
		if o.Script != "" {
			script = o.Script
		}
		if o.ExtraArgs != nil {
			extraArgs = o.ExtraArgs
		}
	}
	if !filepath.IsAbs(script) {
		script = filepath.Join(c.scriptDir(), script)
	}
	return &drc.Invocation{
		CheckName:       check.Ref,
		RuleScriptPath:  script,
		InputFilePath:   c.param.InputFilePath,
		OutputDirectory: c.param.OutputDirectory,
		ExtraArgs:       extraArgs,
	}
}
