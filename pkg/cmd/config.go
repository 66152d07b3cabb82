// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "STEPRANGE_"

// Config holds default settings for the various commands.  Flags given
// explicitly on the command line take precedence over these.
type Config struct {
	Bench BenchConfig `koanf:"bench"`
	Seq   SeqConfig   `koanf:"seq"`
}

// BenchConfig holds default settings for the bench command.
type BenchConfig struct {
	// Number of iterations of the unit stepped loops
	N uint `koanf:"n"`
	// Step of the stepped loops
	Step uint `koanf:"step"`
}

// SeqConfig holds default settings for the seq command.
type SeqConfig struct {
	// Fill lines up to the terminal width
	Columns bool `koanf:"columns"`
	// Text printed between values
	Separator string `koanf:"separator"`
}

// DefaultConfig returns the settings used in the absence of a config file or
// environment variables.
func DefaultConfig() Config {
	return Config{
		Bench: BenchConfig{N: 1_000_000, Step: 10},
		Seq:   SeqConfig{Columns: false, Separator: "\n"},
	}
}

// ConfigOption configures LoadConfig.
type ConfigOption func(*configOptions)

type configOptions struct {
	environ func() []string
}

// WithEnviron sets the source of environment variables, which otherwise
// defaults to os.Environ.
func WithEnviron(environ func() []string) ConfigOption {
	return func(o *configOptions) {
		o.environ = environ
	}
}

// LoadConfig reads settings in layers (highest precedence last):
//
//  1. Defaults (see DefaultConfig)
//  2. YAML file (if filename is non-empty)
//  3. Environment variables (STEPRANGE_ prefix)
//
// Environment variables map onto keys by replacing underscores with dots, such
// that STEPRANGE_BENCH_N sets bench.n.
func LoadConfig(filename string, opts ...ConfigOption) (Config, error) {
	o := &configOptions{environ: os.Environ}
	for _, opt := range opts {
		opt(o)
	}
	//
	cfg := DefaultConfig()
	k := koanf.New(".")
	//
	if filename != "" {
		if err := k.Load(file.Provider(filename), yaml.Parser()); err != nil {
			return cfg, fmt.Errorf("loading config %s: %w", filename, err)
		}
	}
	//
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:      envPrefix,
		EnvironFunc: o.environ,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.TrimPrefix(key, envPrefix)
			return strings.ReplaceAll(strings.ToLower(key), "_", "."), value
		},
	}), nil); err != nil {
		return cfg, fmt.Errorf("loading env vars: %w", err)
	}
	//
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshalling config: %w", err)
	}
	//
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config: %w", err)
	}
	//
	return cfg, nil
}

// Validate checks the settings are usable.
func (c Config) Validate() error {
	var errs []error
	//
	if c.Bench.N == 0 {
		errs = append(errs, errors.New("bench.n must be positive"))
	}
	//
	if c.Bench.Step == 0 {
		errs = append(errs, errors.New("bench.step must be positive"))
	}
	//
	return errors.Join(errs...)
}
