package drc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/hashicorp/go-version"
)

var toolVersionPattern = regexp.MustCompile(`(?i)klayout\s+v?(\d+(?:\.\d+)*)`)

// ParseToolVersion extracts the version from the output of `klayout -v`,
// e.g. "KLayout 0.28.12".
func ParseToolVersion(output string) (*version.Version, error) {
	m := toolVersionPattern.FindStringSubmatch(output)
	if m == nil {
		return nil, errors.New("klayout version isn't found in the output")
	}
	v, err := version.NewVersion(m[1])
	if err != nil {
		return nil, fmt.Errorf("parse a klayout version: %w", err)
	}
	return v, nil
}

// ToolVersion runs `klayout -v` and returns the installed version.
func (r *Runner) ToolVersion(ctx context.Context) (*version.Version, error) {
	buf := &bytes.Buffer{}
	if err := r.executor.Exec(ctx, r.executable, []string{"-v"}, buf); err != nil {
		return nil, fmt.Errorf("get the klayout version: %w", err)
	}
	return ParseToolVersion(buf.String())
}

// CheckMinVersion fails unless the installed KLayout satisfies constraint.
// An empty constraint always passes without running KLayout.
func (r *Runner) CheckMinVersion(ctx context.Context, constraint string) error {
	if constraint == "" {
		return nil
	}
	c, err := version.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("parse a version constraint: %w", err)
	}
	v, err := r.ToolVersion(ctx)
	if err != nil {
		return err
	}
	if !c.Check(v) {
		return fmt.Errorf("klayout %s doesn't satisfy the constraint %q", v.String(), constraint)
	}
	return nil
}
