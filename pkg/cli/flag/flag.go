package flag

import "github.com/urfave/cli/v3"

type GlobalFlags struct {
	LogLevel string
	LogColor string
	Config   string
}

func (gf *GlobalFlags) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level",
			Sources:     cli.EnvVars("KDRC_LOG_LEVEL"),
			Destination: &gf.LogLevel,
		},
		&cli.StringFlag{
			Name:        "log-color",
			Usage:       "log color. One of 'auto' (default), 'always', 'never'",
			Sources:     cli.EnvVars("KDRC_LOG_COLOR"),
			Destination: &gf.LogColor,
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "configuration file path",
			Sources:     cli.EnvVars("KDRC_CONFIG"),
			Destination: &gf.Config,
		},
	}
}
