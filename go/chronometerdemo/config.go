package main

import (
	"github.com/Symantec/chronometer/go/chronometer/duration"
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

const envPrefix = "CHRONOMETER_"

// Config holds the settings of the demo server. Environment variables
// prefixed with CHRONOMETER_ set the defaults; command line flags override
// them.
type Config struct {
	Address  string            `env:"ADDRESS" envDefault:":8080"`
	LogLevel string            `env:"LOG_LEVEL" envDefault:"info"`
	MaxSleep duration.Duration `env:"MAX_SLEEP" envDefault:"10"`
}

func loadConfig(args []string, environment map[string]string) (*Config, error) {
	config := &Config{}
	opts := env.Options{Prefix: envPrefix}
	if environment != nil {
		opts.Environment = environment
	}
	if err := env.ParseWithOptions(config, opts); err != nil {
		return nil, errors.Wrap(err, "reading environment")
	}
	maxSleep := config.MaxSleep.String()
	flags := pflag.NewFlagSet("chronometerdemo", pflag.ContinueOnError)
	flags.StringVar(&config.Address, "address", config.Address,
		"address to listen on")
	flags.StringVar(&config.LogLevel, "log-level", config.LogLevel,
		"zerolog level such as debug, info or warn")
	flags.StringVar(&maxSleep, "max-sleep", maxSleep,
		"longest sleep /sleep accepts in seconds e.g 2.5")
	if err := flags.Parse(args); err != nil {
		return nil, errors.Wrap(err, "parsing flags")
	}
	var err error
	if config.MaxSleep, err = duration.Parse(maxSleep); err != nil {
		return nil, errors.Wrap(err, "max-sleep")
	}
	if _, err := zerolog.ParseLevel(config.LogLevel); err != nil {
		return nil, errors.Wrap(err, "log-level")
	}
	return config, nil
}
