// Package checks is the catalog of KLayout DRC checks for the sky130A
// precheck. Each check pairs a rule script with the -rd arguments that
// select a mode of the script.
package checks

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var ErrCheckNotFound = errors.New("the check does not exist")

// Context holds the values some checks derive their arguments from.
type Context struct {
	DesignName      string
	InputFilePath   string
	OutputDirectory string
}

type Check struct {
	Key     string
	Ref     string
	Surname string
	// Script is relative to the script directory.
	Script    string
	extraArgs func(c *Context) []string
}

// ExtraArgs returns a new slice on every call.
func (c *Check) ExtraArgs(ctx *Context) []string {
	if c.extraArgs == nil {
		return nil
	}
	return c.extraArgs(ctx)
}

const (
	sky130AScript = "tech-files/sky130A_mr.drc"
	klayoutDir    = "drc_checks/klayout"
)

func define(name string) func(*Context) []string {
	return func(*Context) []string {
		return []string{"-rd", name + "=true"}
	}
}

var catalog = []*Check{ //nolint:gochecknoglobals
	{
		Key:       "feol",
		Ref:       "klayout_feol",
		Surname:   "Klayout FEOL",
		Script:    sky130AScript,
		extraArgs: define("feol"),
	},
	{
		Key:       "beol",
		Ref:       "klayout_beol",
		Surname:   "Klayout BEOL",
		Script:    sky130AScript,
		extraArgs: define("beol"),
	},
	{
		Key:       "offgrid",
		Ref:       "klayout_offgrid",
		Surname:   "Klayout Offgrid",
		Script:    sky130AScript,
		extraArgs: define("offgrid"),
	},
	{
		Key:     "met_min_ca_density",
		Ref:     "klayout_met_min_ca_density",
		Surname: "Klayout Metal Minimum Clear Area Density",
		Script:  klayoutDir + "/met_min_ca_density.lydrc",
	},
	{
		Key:     "pin_label_purposes_overlapping_drawing",
		Ref:     "klayout_pin_label_purposes_overlapping_drawing",
		Surname: "Klayout Pin Label Purposes Overlapping Drawing",
		Script:  klayoutDir + "/pin_label_purposes_overlapping_drawing.rb.drc",
		extraArgs: func(c *Context) []string {
			return []string{"-rd", "top_cell_name=" + c.DesignName}
		},
	},
	{
		Key:     "zeroarea",
		Ref:     "klayout_zeroarea",
		Surname: "Klayout ZeroArea",
		Script:  klayoutDir + "/zeroarea.rb.drc",
		extraArgs: func(c *Context) []string {
			stem := strings.TrimSuffix(filepath.Base(c.InputFilePath), filepath.Ext(c.InputFilePath))
			return []string{"-rd", "cleaned_output=" + filepath.Join(c.OutputDirectory, "outputs", stem+"_no_zero_areas.gds")}
		},
	},
}

// DefaultKey is the check run when none is requested.
const DefaultKey = "feol"

// Get looks up a check by key, ignoring case.
func Get(key string) (*Check, error) {
	k := strings.ToLower(key)
	for _, c := range catalog {
		if c.Key == k {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrCheckNotFound, k)
}

// List returns all checks in catalog order.
func List() []*Check {
	list := make([]*Check, len(catalog))
	copy(list, catalog)
	return list
}
