package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	domainConfig "github.com/buyops-dev/creative-relay/pkg/domain/model/config"
)

// AppConfig represents the optional application configuration file
type AppConfig struct {
	path string

	Messages domainConfig.Messages `toml:"messages"`
}

func (x *AppConfig) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to a TOML file overriding message texts",
			Sources:     cli.EnvVars("CREATIVE_RELAY_CONFIG"),
			Destination: &x.path,
		},
	}
}

// Configure loads the config file when one is given and returns the
// message texts with defaults applied.
func (x *AppConfig) Configure() (*domainConfig.Messages, error) {
	if x.path != "" {
		data, err := os.ReadFile(x.path)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", x.path))
		}
		if err := toml.Unmarshal(data, x); err != nil {
			return nil, goerr.Wrap(err, "failed to parse config file", goerr.V("path", x.path))
		}
	}

	x.Messages.Normalize()
	if err := x.Messages.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid messages config", goerr.V("path", x.path))
	}

	return &x.Messages, nil
}
