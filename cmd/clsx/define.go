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
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"dirpx.dev/clsx/manifest"
)

// binding is one registry entry in command output.
type binding struct {
	Name  string         `yaml:"name"`
	Class manifest.Class `yaml:"class"`
}

func newDefineCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "define <manifest>",
		Short: "Apply a manifest and print the resulting registry",
		Long: `Apply a manifest to an empty registry and print every binding as YAML.

A layered redefinition shows up as a binding whose class has a hidden name
and lists the previous class among its supers.

Examples:
  clsx define classes.yaml
  clsx define classes.yaml --log-level debug`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := e.apply(args[0]); err != nil {
				return err
			}
			var out struct {
				Bindings []binding `yaml:"bindings"`
			}
			for _, entry := range e.reg.Entries() {
				out.Bindings = append(out.Bindings, binding{Name: entry.Name, Class: manifest.FromClass(entry.Class)})
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(out)
		},
	}
}
