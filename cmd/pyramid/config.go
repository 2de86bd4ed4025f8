// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix scopes environment overrides: PYRAMID_FORMAT, PYRAMID_LOG_LEVEL ...
const envPrefix = "PYRAMID"

// loadConfig wires precedence flag > environment > config file > default
// into v. A config file is read only when --config (or PYRAMID_CONFIG)
// names one; a named but missing file is an error.
func loadConfig(v *viper.Viper, flags *pflag.FlagSet) error {
	if err := v.BindPFlags(flags); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	path := v.GetString(flagConfig)
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	return nil
}
