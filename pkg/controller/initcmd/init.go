package initcmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

const (
	templateConfig = `# yaml-language-server: $schema=https://raw.githubusercontent.com/precheck-tools/kdrc/refs/heads/main/json-schema/kdrc.json
# kdrc - https://github.com/precheck-tools/kdrc
# klayout:
#   executable: klayout
#   min_version: ">= 0.28"
# script_dir: /opt/precheck/checks
checks:
# - key: feol
#   script: tech-files/sky130A_mr.drc
#   extra_args: ["-rd", "feol=true"]
`
	filePermission os.FileMode = 0o644
)

// Init creates a configuration file if it doesn't exist.
func (c *Controller) Init(configFilePath string) error {
	f, err := afero.Exists(c.fs, configFilePath)
	if err != nil {
		return fmt.Errorf("check if a configuration file exists: %w", err)
	}
	if f {
		return nil
	}
	if err := afero.WriteFile(c.fs, configFilePath, []byte(templateConfig), filePermission); err != nil {
		return fmt.Errorf("create a configuration file: %w", err)
	}
	return nil
}
