/*
 * config_test.go, part of gostoich.
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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *Config)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
elements_file: "elements.csv.gz"
balance:
  max_coefficient: 12
  timeout: "250ms"
  workers: 4
  solver: linear
`,
			validate: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "elements.csv.gz", cfg.ElementsFile)
				assert.Equal(t, 12, cfg.Balance.MaxCoefficient)
				assert.Equal(t, 250*time.Millisecond, cfg.Balance.Timeout)
				assert.Equal(t, 4, cfg.Balance.Workers)
				assert.Equal(t, "linear", cfg.Balance.Solver)
			},
		},
		{
			name:       "config with defaults",
			configFile: "debug: false\n",
			validate: func(t *testing.T, cfg *Config) {
				assert.False(t, cfg.Debug)
				assert.Empty(t, cfg.ElementsFile)
				assert.Equal(t, 20, cfg.Balance.MaxCoefficient)
				assert.Equal(t, 5*time.Second, cfg.Balance.Timeout)
				assert.Equal(t, 1, cfg.Balance.Workers)
				assert.Equal(t, "search", cfg.Balance.Solver)
			},
		},
		{
			name: "unknown solver",
			configFile: `
balance:
  solver: guess
`,
			expectError: true,
		},
		{
			name: "zero max coefficient",
			configFile: `
balance:
  max_coefficient: 0
`,
			expectError: true,
		},
		{
			name: "invalid value",
			configFile: `
balance:
  workers: many
`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			require.NoError(t, os.WriteFile(configFile, []byte(tt.configFile), 0600))

			cfg, err := Load(configFile, tmpDir)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadEnv(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("balance:\n  workers: 2\n"), 0600))
	env := "STOICH_BALANCE_MAX_COEFFICIENT=7\nSTOICH_DEBUG=true\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".env"), []byte(env), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".env.local"), []byte("STOICH_BALANCE_MAX_COEFFICIENT=9\n"), 0600))
	for _, k := range []string{"STOICH_BALANCE_MAX_COEFFICIENT", "STOICH_DEBUG"} {
		t.Setenv(k, "") // restored after the test
		os.Unsetenv(k)
	}

	cfg, err := Load(configFile, tmpDir)
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 9, cfg.Balance.MaxCoefficient)
	assert.Equal(t, 2, cfg.Balance.Workers)
}
