/* Copyright (C) 2019 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

// Package config is for app-wide settings unmarshalled from Viper (see
// tools/), adapted from jjti-repp/config/config.go: an optional
// settings.yaml merged with CLI-flag overrides, decoded into a plain
// struct with mapstructure tags rather than threading dozens of flags
// through every tool by hand.
package config

/* -------------------------------------------------------------------------- */

import (
  "log"

  "github.com/spf13/viper"
)

/* -------------------------------------------------------------------------- */

// ModeThresholds mirrors the §4.1 profiler thresholds: the coverage and
// entropy bands that pick Conservative/Aggressive/Rescue.
type ModeThresholds struct {
  ConservativeCoverageLow  float64 `mapstructure:"conservative-coverage-low"`
  ConservativeCoverageHigh float64 `mapstructure:"conservative-coverage-high"`
  ConservativeDuplication  float64 `mapstructure:"conservative-duplication"`
  ConservativeEntropy      float64 `mapstructure:"conservative-entropy"`
  AggressiveCoverageLow    float64 `mapstructure:"aggressive-coverage-low"`
  AggressiveCoverageHigh   float64 `mapstructure:"aggressive-coverage-high"`
  AggressiveEntropy        float64 `mapstructure:"aggressive-entropy"`
}

// CandidateSizes is the per-mode candidate_size default of §4.6,
// overridable per run by Options.CandidateSize.
type CandidateSizes struct {
  Conservative int `mapstructure:"conservative"`
  Aggressive   int `mapstructure:"aggressive"`
  Rescue       int `mapstructure:"rescue"`
}

// Budgets collects the §6 defaults for the adaptive extender.
type Budgets struct {
  ErrorThreshold   float64 `mapstructure:"error-threshold"`
  MaxIterationsPerN int    `mapstructure:"max-iterations-per-n"`
  MaxBacktracks    int     `mapstructure:"max-backtracks"`
  WallTimeMs       int     `mapstructure:"wall-time-ms"`
}

// Config is the root-level settings struct, a mix of settings available
// in settings.yaml and those overridable from the command line.
type Config struct {
  ModeThresholds ModeThresholds `mapstructure:"mode-thresholds"`
  CandidateSizes CandidateSizes `mapstructure:"candidate-sizes"`
  Budgets        Budgets        `mapstructure:"budgets"`
  DatabaseDSN    string         `mapstructure:"database-dsn"`
  Verbose        int
}

/* -------------------------------------------------------------------------- */

// setDefaults installs the §4.1/§4.6 normative defaults so a Config is
// usable with no settings.yaml present at all.
func setDefaults() {
  viper.SetDefault("mode-thresholds.conservative-coverage-low", 0.95)
  viper.SetDefault("mode-thresholds.conservative-coverage-high", 1.05)
  viper.SetDefault("mode-thresholds.conservative-duplication", 0.05)
  viper.SetDefault("mode-thresholds.conservative-entropy", 1.9)
  viper.SetDefault("mode-thresholds.aggressive-coverage-low", 0.80)
  viper.SetDefault("mode-thresholds.aggressive-coverage-high", 1.20)
  viper.SetDefault("mode-thresholds.aggressive-entropy", 1.7)
  viper.SetDefault("candidate-sizes.conservative", 8)
  viper.SetDefault("candidate-sizes.aggressive", 20)
  viper.SetDefault("candidate-sizes.rescue", 30)
  viper.SetDefault("budgets.error-threshold", 0.15)
  viper.SetDefault("budgets.max-iterations-per-n", 4)
  viper.SetDefault("budgets.max-backtracks", 10)
  viper.SetDefault("budgets.wall-time-ms", 30000)
}

// NewConfig returns a Config populated from an optional settings.yaml
// (searched for under settingsPath, if non-empty) and Viper's process
// defaults, following jjti-repp's NewConfig(): callers overlay CLI
// flags onto the returned value afterwards.
func NewConfig(settingsPath string) Config {
  setDefaults()

  if settingsPath != "" {
    viper.SetConfigFile(settingsPath)
    viper.SetConfigType("yaml")
    if err := viper.ReadInConfig(); err != nil {
      log.Printf("config: no settings file at `%s', using defaults (%s)", settingsPath, err)
    }
  }

  var c Config
  if err := viper.Unmarshal(&c); err != nil {
    log.Fatalf("config: unable to decode into struct, %v", err)
  }
  return c
}
