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

// Package clsx provides a process-wide class definition service.
//
// Classes are declared with partial slot information: a slot may carry only
// a name, a default value (initform) or a declared type. The missing pieces
// are filled in by pluggable inference strategies:
//
//	clsx.Define("point", nil, []apis.SlotSpec{
//		{"x", apis.KeyType, reflect.TypeOf(0)}, // initform 0
//		{"y", 5},                               // type int
//	})
//
// # Layered definitions
//
// A declaration that lists the class currently bound to its own name among
// its supertypes, directly or transitively, does not replace that class. A
// new class is built under a hidden unique name with the previous class as
// a supertype, and the public name is rebound to it:
//
//	clsx.Define("widget", []string{"widget"}, moreSlots)
//	prev, _ := clsx.OriginalClass("widget")
//
// Layered definitions always use the configured default strategies.
//
// # Scoped override
//
// Override binds a name to another class for the duration of a call and
// restores the previous binding on every exit path, including panics:
//
//	err := clsx.Override("db", "mock-db", func() error { return run() })
//
// # Snapshot
//
// As in the rest of the DIRPX libraries, the global state is a read-mostly
// immutable snapshot holding the Config, Registry, Definer, Builder and
// logger. Readers load it atomically without locks; writers (SetConfig,
// SetRegistry, SetDefiner, SetBuilder, SetLogger, SetAll) take a build
// mutex, derive a new snapshot and publish it.
//
// SetRegistry and SetDefiner pin the layer they set: pinned layers are not
// rebuilt by later reconfigurations until UnpinRegistry or UnpinDefiner.
// A rebuilt registry receives the bindings of the previous one.
//
// The snapshot wrappers are conveniences. Every package below works on an
// explicit apis.Registry, so independent registries can coexist:
//
//	reg := registry.New()
//	def := expander.New(config.DefaultConfig(), reg, nil)
//
// Compound operations such as Define and Override are not atomic with
// respect to each other; callers serialize them.
package clsx
