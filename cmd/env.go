package cmd

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

// EnvDefaults are the flag defaults sourced from GRIDIRON_* environment
// variables (after an optional .env load). Explicit flags win.
type EnvDefaults struct {
	Seed      int64  `envconfig:"SEED" default:"42"`
	Years     int    `envconfig:"YEARS" default:"30"`
	StartYear int    `envconfig:"START_YEAR" default:"0"`
	Log       string `envconfig:"LOG" default:"info"`
}

// loadEnvDefaults reads the environment; a malformed variable falls
// back to the built-in defaults rather than aborting flag setup.
func loadEnvDefaults() EnvDefaults {
	var env EnvDefaults
	if err := envconfig.Process("GRIDIRON", &env); err != nil {
		logrus.Warnf("ignoring malformed GRIDIRON_* environment: %v", err)
		env = EnvDefaults{Seed: 42, Years: 30, Log: "info"}
	}
	if env.StartYear == 0 {
		env.StartYear = time.Now().Year()
	}
	return env
}
