package main

import (
	stderrors "errors"

	"github.com/joeshaw/envdecode"
)

var errItemTooShort = stderrors.New("wrapped-items: item must have at least 3 letters")

// config holds flag defaults taken from the environment.
type config struct {
	// ENV: WRAPPED_ITEMS_HOST
	Host string `env:"WRAPPED_ITEMS_HOST,default=localhost"`
	// ENV: WRAPPED_ITEMS_VERBOSE
	Verbose bool `env:"WRAPPED_ITEMS_VERBOSE,default=false"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := envdecode.Decode(&cfg); err != nil && !stderrors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return config{}, err
	}
	return cfg, nil
}
