/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"dirpx.dev/clsx/apis"
	"dirpx.dev/clsx/strategy"
)

// EnvPrefix prefixes environment overrides, e.g. CLSX_INITFORM_STRATEGY.
const EnvPrefix = "CLSX"

// File is the on-disk / environment form of the configuration.
type File struct {
	InitformStrategy string `mapstructure:"initform_strategy"` // zero-value (default), required, nil-fallback
	TypeInference    string `mapstructure:"type_inference"`    // basic (default) or none
	HiddenSeparator  string `mapstructure:"hidden_separator"`
	LogLevel         string `mapstructure:"log_level"` // debug, info (default), warn, error
}

// DefaultFile returns the file-level defaults.
func DefaultFile() File {
	return File{
		InitformStrategy: DefaultInitform.String(),
		TypeInference:    DefaultTypeInference,
		HiddenSeparator:  DefaultHiddenSeparator,
		LogLevel:         "info",
	}
}

// Load reads path (YAML, JSON or TOML by extension) and CLSX_* environment
// overrides on top of the defaults. An empty path reads the environment only.
func Load(path string) (File, error) {
	v := viper.New()
	defaults := DefaultFile()
	v.SetDefault("initform_strategy", defaults.InitformStrategy)
	v.SetDefault("type_inference", defaults.TypeInference)
	v.SetDefault("hidden_separator", defaults.HiddenSeparator)
	v.SetDefault("log_level", defaults.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return File{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var f File
	if err := v.Unmarshal(&f); err != nil {
		return File{}, fmt.Errorf("decoding config: %w", err)
	}
	return f, nil
}

// Config converts f into an apis.Config.
func (f File) Config() (apis.Config, error) {
	kind, err := strategy.Parse(f.InitformStrategy)
	if err != nil {
		return apis.Config{}, err
	}
	initform, err := strategy.New(kind)
	if err != nil {
		return apis.Config{}, err
	}
	types, err := strategy.ParseTypeInference(f.TypeInference)
	if err != nil {
		return apis.Config{}, err
	}
	return NewConfig(
		WithInitform(initform),
		WithTypeInference(types),
		WithHiddenSeparator(f.HiddenSeparator),
	), nil
}
