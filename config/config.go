/*
 *  Copyright (C) 2017 gyee authors
 *
 *  This file is part of the gyee library.
 *
 *  The gyee library is free software: you can redistribute it and/or modify
 *  it under the terms of the GNU General Public License as published by
 *  the Free Software Foundation, either version 3 of the License, or
 *  (at your option) any later version.
 *
 *  The gyee library is distributed in the hope that it will be useful,
 *  but WITHOUT ANY WARRANTY; without even the implied warranty of
 *  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 *  GNU General Public License for more details.
 *
 *  You should have received a copy of the GNU General Public License
 *  along with the gyee library.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

package config

import (
	_ "embed"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/yeeco/seedgen/crypto/random"
)

//go:embed seedgen.toml
var defaultConfig string

var ErrInvalidConfig = errors.New("config: invalid")

type Config struct {
	Name    string         `toml:"name"`
	App     *AppConfig     `toml:"app"`
	Entropy *EntropyConfig `toml:"entropy"`
	Pool    *PoolConfig    `toml:"pool"`
	Gcm     *GcmConfig     `toml:"gcm"`
	Output  *OutputConfig  `toml:"output"`
}

type AppConfig struct {
	LogLevel string `toml:"log_level"`
	LogDir   string `toml:"log_dir"`
	LogCount uint   `toml:"log_count"`
}

//Source kind (device, getrandom, csprng) and device path
type EntropyConfig struct {
	Source string `toml:"source"`
	Device string `toml:"device"`
}

//Pool sizes as log2 of their bit counts
type PoolConfig struct {
	InputShift  int `toml:"input_shift"`
	OutputShift int `toml:"output_shift"`
}

//Rows of 128-bit hash constants plus the trailing counter region
type GcmConfig struct {
	Rows         int `toml:"rows"`
	CounterWords int `toml:"counter_words"`
}

type OutputConfig struct {
	PerLine int    `toml:"per_line"`
	Title   string `toml:"title"`
}

// GetDefaultConfig decodes the configuration compiled into the binary.
func GetDefaultConfig() (*Config, error) {
	return Decode(defaultConfig)
}

func Decode(data string) (*Config, error) {
	var config Config
	if _, err := toml.Decode(data, &config); err != nil {
		return nil, errors.Wrap(err, "config: decode")
	}
	getAppConfig(&config)
	getEntropyConfig(&config)
	getPoolConfig(&config)
	getGcmConfig(&config)
	getOutputConfig(&config)
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if c.Pool.InputShift < 5 || c.Pool.OutputShift < 5 {
		return errors.Wrapf(ErrInvalidConfig, "pool shifts %d/%d below 5", c.Pool.InputShift, c.Pool.OutputShift)
	}
	if c.Pool.InputShift > 25 || c.Pool.OutputShift > 25 {
		return errors.Wrapf(ErrInvalidConfig, "pool shifts %d/%d above 25", c.Pool.InputShift, c.Pool.OutputShift)
	}
	if c.Gcm.Rows < 1 || c.Gcm.CounterWords < 0 {
		return errors.Wrapf(ErrInvalidConfig, "gcm rows %d, counter words %d", c.Gcm.Rows, c.Gcm.CounterWords)
	}
	if c.Output.PerLine < 1 {
		return errors.Wrapf(ErrInvalidConfig, "per_line %d", c.Output.PerLine)
	}
	switch c.Entropy.Source {
	case random.SourceDevice, random.SourceGetrandom, random.SourceCSPRNG:
	default:
		return errors.Wrapf(ErrInvalidConfig, "entropy source %q", c.Entropy.Source)
	}
	return nil
}

// InputPoolWords is the input pool size in 32-bit words.
func (c *Config) InputPoolWords() int {
	return 1 << uint(c.Pool.InputShift-5)
}

func (c *Config) OutputPoolWords() int {
	return 1 << uint(c.Pool.OutputShift-5)
}

// TotalPoolWords covers the input pool and two output pools.
func (c *Config) TotalPoolWords() int {
	return c.InputPoolWords() + 2*c.OutputPoolWords()
}

// ArrayWords is the number of words in the GCM constants, 128 bits per row.
func (c *Config) ArrayWords() int {
	return 4 * c.Gcm.Rows
}

func (c *Config) ConstantsWords() int {
	return c.ArrayWords() + c.Gcm.CounterWords
}

func getAppConfig(cfg *Config) {
	if cfg.App == nil {
		cfg.App = &AppConfig{}
	}
}

func getEntropyConfig(cfg *Config) {
	if cfg.Entropy == nil {
		cfg.Entropy = &EntropyConfig{}
	}
	if cfg.Entropy.Source == "" {
		cfg.Entropy.Source = random.SourceDevice
	}
	if cfg.Entropy.Device == "" {
		cfg.Entropy.Device = random.DefaultDevice
	}
}

func getPoolConfig(cfg *Config) {
	if cfg.Pool == nil {
		cfg.Pool = &PoolConfig{}
	}
}

func getGcmConfig(cfg *Config) {
	if cfg.Gcm == nil {
		cfg.Gcm = &GcmConfig{}
	}
}

func getOutputConfig(cfg *Config) {
	if cfg.Output == nil {
		cfg.Output = &OutputConfig{}
	}
}
