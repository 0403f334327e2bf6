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
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"dirpx.dev/clsx/apis"
	"dirpx.dev/clsx/manifest"
	"dirpx.dev/clsx/override"
)

// description is the output of describe.
type description struct {
	Name          string          `yaml:"name"`
	Class         string          `yaml:"class"`
	Hidden        bool            `yaml:"hidden,omitempty"`
	Documentation string          `yaml:"documentation,omitempty"`
	Precedence    []string        `yaml:"precedence"`
	Slots         []manifest.Slot `yaml:"slots,omitempty"`
	Original      string          `yaml:"original,omitempty"`
}

func newDescribeCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <manifest> <class>",
		Short: "Apply a manifest and describe one class",
		Long: `Apply a manifest and print the class bound to a name: its precedence
list, its effective slots and, after a layered redefinition, the class it
superseded.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := e.apply(args[0]); err != nil {
				return err
			}
			name := args[1]
			c, ok := e.reg.Lookup(name)
			if !ok {
				return errors.Wrapf(apis.ErrUnboundName, "class %s", name)
			}
			out := description{
				Name:          name,
				Class:         c.Name,
				Hidden:        c.Hidden,
				Documentation: c.Documentation,
			}
			for _, p := range c.Precedence() {
				out.Precedence = append(out.Precedence, p.Name)
			}
			for _, s := range c.EffectiveSlots() {
				out.Slots = append(out.Slots, manifest.FromSlot(s))
			}
			if orig, ok := override.Original(e.reg, name); ok {
				out.Original = orig.Name
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(out)
		},
	}
}
