/*
 * config.go, part of gostoich.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * gostoich is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BalanceConfig holds the equation balancing configuration
type BalanceConfig struct {
	MaxCoefficient int           `mapstructure:"max_coefficient"` // Largest coefficient tried by the search
	Timeout        time.Duration `mapstructure:"timeout"`         // Time allowed for one equation (e.g., "5s")
	Workers        int           `mapstructure:"workers"`         // Equations balanced concurrently
	Solver         string        `mapstructure:"solver"`          // "search" or "linear"
}

// Config holds configuration for the stoich command
type Config struct {
	Debug        bool          `mapstructure:"debug"`
	ElementsFile string        `mapstructure:"elements_file"` // Empty means the built-in periodic table
	Balance      BalanceConfig `mapstructure:"balance"`
}

// Load loads the configuration from configFile, or from config.yaml in the usual places
// if configFile is empty, and from the environment. A missing config.yaml is not an error.
func Load(configFile string, envPath string) (*Config, error) {
	v := configureViper(configFile, envPath)

	v.SetDefault("debug", false)
	v.SetDefault("elements_file", "")
	v.SetDefault("balance.max_coefficient", 20)
	v.SetDefault("balance.timeout", "5s")
	v.SetDefault("balance.workers", 1)
	v.SetDefault("balance.solver", "search")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) validate() error {
	if c.Balance.MaxCoefficient < 1 {
		return fmt.Errorf("balance.max_coefficient must be at least 1, got %d", c.Balance.MaxCoefficient)
	}
	if c.Balance.Workers < 1 {
		return fmt.Errorf("balance.workers must be at least 1, got %d", c.Balance.Workers)
	}
	if c.Balance.Timeout < 0 {
		return fmt.Errorf("balance.timeout can't be negative, got %s", c.Balance.Timeout)
	}
	switch c.Balance.Solver {
	case "search", "linear":
	default:
		return fmt.Errorf("unknown balance.solver %q", c.Balance.Solver)
	}
	return nil
}

func configureViper(configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("config/")
	}

	// STOICH_BALANCE_MAX_COEFFICIENT and so on
	v.SetEnvPrefix("STOICH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal only sees env vars for keys viper knows about
	for _, key := range []string{
		"debug",
		"elements_file",
		"balance.max_coefficient",
		"balance.timeout",
		"balance.workers",
		"balance.solver",
	} {
		_ = v.BindEnv(key)
	}
	return v
}

// loadEnv loads .env and then .env.local from envPath, or from config/ if envPath is empty
func loadEnv(envPath string) {
	if envPath == "" {
		envPath = "config/"
	}
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Overload(filepath.Join(envPath, envFile)) // later files override earlier ones
	}
}
