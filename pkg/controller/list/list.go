package list

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/precheck-tools/kdrc/pkg/checks"
)

// List writes a line per check, applying configuration overrides.
func (c *Controller) List() error {
	tmpl, err := c.parseTemplate()
	if err != nil {
		return err
	}
	designName := c.param.DesignName
	if designName == "" {
		designName = "<design>"
	}
	ctx := &checks.Context{
		DesignName:      designName,
		InputFilePath:   "<input>.gds",
		OutputDirectory: "<output>",
	}
	for _, check := range checks.List() {
		info := &CheckInfo{
			Key:       check.Key,
			Ref:       check.Ref,
			Surname:   check.Surname,
			Script:    check.Script,
			ExtraArgs: strings.Join(check.ExtraArgs(ctx), " "),
		}
		if o := c.cfg.Override(check.Key); o != nil {
			if o.Script != "" {
				info.Script = o.Script
			}
			if o.ExtraArgs != nil {
				info.ExtraArgs = strings.Join(o.ExtraArgs, " ")
			}
		}
		if err := c.output(info, tmpl); err != nil {
			return err
		}
	}
	return nil
}

func (c *Controller) parseTemplate() (*template.Template, error) {
	if c.param.LineTemplate == "" {
		return nil, nil //nolint:nilnil
	}
	tmpl, err := template.New("line").Parse(c.param.LineTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse line template: %w", err)
	}
	return tmpl, nil
}

func (c *Controller) output(info *CheckInfo, tmpl *template.Template) error {
	if tmpl != nil {
		if err := tmpl.Execute(c.stdout, info); err != nil {
			return fmt.Errorf("execute template: %w", err)
		}
		fmt.Fprintln(c.stdout)
		return nil
	}
	// <Key>,<Ref>,<Script>,<ExtraArgs>
	fmt.Fprintf(c.stdout, "%s,%s,%s,%s\n", info.Key, info.Ref, info.Script, info.ExtraArgs)
	return nil
}
