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

package main

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"dirpx.dev/clsx/apis"
	"dirpx.dev/clsx/builder"
	"dirpx.dev/clsx/config"
	"dirpx.dev/clsx/logging"
	"dirpx.dev/clsx/manifest"
)

// env is the state shared by subcommands, prepared before each run.
type env struct {
	cfgFile  string
	logLevel string

	log *slog.Logger
	reg apis.Registry
	def apis.Definer
}

// NewRootCmd builds the clsx command tree.
func NewRootCmd() *cobra.Command {
	e := &env{}
	root := &cobra.Command{
		Use:           "clsx",
		Short:         "Define classes from YAML manifests",
		Long:          `clsx applies class manifests to a fresh registry, completing missing slot initforms and types with the configured inference strategies.`,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.init(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&e.cfgFile, "config", "c", "",
		"config file (yaml, json or toml); CLSX_* environment variables override it")
	root.PersistentFlags().StringVar(&e.logLevel, "log-level", "",
		"log level: debug, info, warn or error (overrides config)")

	root.AddCommand(newDefineCmd(e), newDescribeCmd(e))
	return root
}

func (e *env) init(cmd *cobra.Command) error {
	file, err := config.Load(e.cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		file.LogLevel = e.logLevel
	}
	cfg, err := file.Config()
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	e.log = logging.New(file.LogLevel, cmd.ErrOrStderr())

	b := builder.New()
	e.reg = b.BuildRegistry(cfg, nil)
	e.def = b.BuildDefiner(cfg, e.reg, e.log)
	return nil
}

// apply loads the manifest at path into the command registry.
func (e *env) apply(path string) ([]*apis.Class, error) {
	m, err := manifest.Load(path)
	if err != nil {
		return nil, err
	}
	classes, err := manifest.Apply(e.def, m, nil)
	if err != nil {
		return nil, err
	}
	e.log.Info("manifest applied", "path", path, "classes", len(classes))
	return classes, nil
}
