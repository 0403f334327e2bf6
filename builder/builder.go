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

package builder

import (
	"log/slog"

	"dirpx.dev/clsx/apis"
	"dirpx.dev/clsx/expander"
	"dirpx.dev/clsx/registry"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds and returns a new apis.Registry. If a pre-existing
// registry is provided, its bindings are copied into the new registry, so
// a name bound to the same class under several names keeps sharing it.
func (b *builder) BuildRegistry(_ apis.Config, preg apis.Registry) apis.Registry {
	nreg := registry.New()
	if preg != nil {
		for _, e := range preg.Entries() {
			_ = nreg.Register(e.Name, e.Class)
		}
	}
	return nreg
}

// BuildDefiner builds and returns a new apis.Definer that defines classes
// into reg using the defaults of cfg.
func (b *builder) BuildDefiner(cfg apis.Config, reg apis.Registry, log *slog.Logger) apis.Definer {
	return expander.New(cfg, reg, log)
}
