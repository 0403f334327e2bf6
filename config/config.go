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
	"dirpx.dev/clsx/apis"
	"dirpx.dev/clsx/strategy"
)

const (
	// DefaultInitform represents the default initform strategy kind.
	DefaultInitform = strategy.ZeroValue
	// DefaultTypeInference represents the default type inference token.
	DefaultTypeInference = "basic"
	// DefaultHiddenSeparator joins a class name and the unique token of its
	// hidden layer class, e.g. "widget@<uuid>".
	DefaultHiddenSeparator = "@"
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.HiddenSeparator == "" {
		cfg.HiddenSeparator = DefaultHiddenSeparator
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided:
// zero-value initform inference, basic type inference.
func DefaultConfig() apis.Config {
	return apis.Config{
		Initform:        strategy.NewZeroValue(),
		TypeInference:   strategy.NewBasicTypeInference(),
		HiddenSeparator: DefaultHiddenSeparator,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithInitform sets the default initform strategy. Nil disables it.
func WithInitform(s apis.Strategy) Option {
	return func(c *apis.Config) {
		c.Initform = s
	}
}

// WithInitformKind sets the default initform strategy to a built-in kind.
// Kinds without a built-in strategy (Custom, unknown) leave it unchanged.
func WithInitformKind(k strategy.Kind) Option {
	return func(c *apis.Config) {
		if s, err := strategy.New(k); err == nil {
			c.Initform = s
		}
	}
}

// WithTypeInference sets the default type inference. Nil disables it.
func WithTypeInference(t apis.TypeInferrer) Option {
	return func(c *apis.Config) {
		c.TypeInference = t
	}
}

// WithHiddenSeparator sets the separator used in hidden class names.
// An empty separator resets to the default.
func WithHiddenSeparator(sep string) Option {
	return func(c *apis.Config) {
		if sep == "" {
			c.HiddenSeparator = DefaultHiddenSeparator
			return
		}
		c.HiddenSeparator = sep
	}
}
