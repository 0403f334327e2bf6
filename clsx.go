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

package clsx

import (
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"dirpx.dev/clsx/apis"
	"dirpx.dev/clsx/builder"
	"dirpx.dev/clsx/config"
	"dirpx.dev/clsx/cycle"
	"dirpx.dev/clsx/logging"
	"dirpx.dev/clsx/object"
	"dirpx.dev/clsx/override"
)

// init initializes the global clsx state.
func init() {
	s := &state{cfg: config.DefaultConfig(), log: logging.Discard()}
	b := builder.New()
	s.reg = b.BuildRegistry(s.cfg, nil)
	s.def = b.BuildDefiner(s.cfg, s.reg, s.log)
	s.bld = b
	st.Store(s)
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("clsx: builder returned nil registry")
	// ErrNilDefiner is returned when a builder returns a nil definer.
	ErrNilDefiner = errors.New("clsx: builder returned nil definer")
)

// Define declares a class in the global registry.
// This is a convenience wrapper around the global definer.
func Define(name string, supers []string, slots []apis.SlotSpec, opts ...apis.DefineOption) (*apis.Class, error) {
	return st.Load().def.Define(name, supers, slots, opts...)
}

// FindClass returns the class bound to name in the global registry.
func FindClass(name string) (*apis.Class, bool) {
	return st.Load().reg.Lookup(name)
}

// HasCycle reports whether defining name with supers in the global
// registry would be a layered redefinition.
func HasCycle(name string, supers []string) bool {
	return cycle.HasCycle(st.Load().reg, name, supers)
}

// OriginalClass returns the class superseded by the latest layered
// definition of name in the global registry.
func OriginalClass(name string) (*apis.Class, bool) {
	return override.Original(st.Load().reg, name)
}

// Override binds name to the class of overrideName in the global registry
// while body runs. See override.Scoped.
func Override(name, overrideName string, body func() error) error {
	return override.Scoped(st.Load().reg, name, overrideName, body)
}

// New instantiates the class bound to name in the global registry.
func New(name string, initargs map[string]any) (*object.Object, error) {
	c, ok := st.Load().reg.Lookup(name)
	if !ok {
		return nil, &apis.RegistryError{Name: name, Err: apis.ErrUnboundName}
	}
	return object.New(c, initargs)
}

// SetAll explicitly sets all global clsx state components.
//
// Nil arguments leave the corresponding component unchanged, except that
// a nil reg or def is rebuilt through the builder and unpinned.
//
// This is mainly used by tests to get a clean deterministic snapshot.
func SetAll(cfg *apis.Config, reg apis.Registry, def apis.Definer, bld apis.Builder, log *slog.Logger) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()

	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}
	nlog := old.log
	if log != nil {
		nlog = log
	}

	nreg, npreg := reg, reg != nil
	if nreg == nil {
		nreg = nbld.BuildRegistry(ncfg, old.reg)
	}
	ndef, npdef := def, def != nil
	if ndef == nil {
		ndef = nbld.BuildDefiner(ncfg, nreg, nlog)
	}

	publish(&state{cfg: ncfg, reg: nreg, def: ndef, bld: nbld, log: nlog, preg: npreg, pdef: npdef})
}

// Config returns the global clsx configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global clsx configuration to cfg and rebuilds the
// layers that are not pinned. Bindings migrate to a rebuilt registry.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	next.cfg = cfg
	rebuild(&next, old, !old.preg)
}

// Registry returns the global clsx registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry pins reg as the global registry and rebuilds the definer
// unless it is pinned.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	next.reg = reg
	next.preg = true
	rebuild(&next, old, false)
}

// Definer returns the global clsx definer.
func Definer() apis.Definer {
	return st.Load().def
}

// SetDefiner pins def as the global definer.
func SetDefiner(def apis.Definer) {
	if def == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	next.def = def
	next.pdef = true
	publish(&next)
}

// Builder returns the global clsx builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global clsx builder to b and rebuilds the layers
// that are not pinned.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	next.bld = b
	rebuild(&next, old, !old.preg)
}

// Logger returns the global clsx logger.
func Logger() *slog.Logger {
	return st.Load().log
}

// SetLogger sets the global clsx logger and rebuilds the definer unless
// it is pinned.
func SetLogger(log *slog.Logger) {
	if log == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	next.log = log
	rebuild(&next, old, false)
}

// IsRegistryPinned returns whether the global clsx registry is pinned.
func IsRegistryPinned() bool {
	return st.Load().preg
}

// PinRegistry stops automatic rebuilds of the global registry.
func PinRegistry() { pin(func(s *state) { s.preg = true }) }

// UnpinRegistry allows automatic rebuilds of the global registry again.
func UnpinRegistry() { pin(func(s *state) { s.preg = false }) }

// IsDefinerPinned returns whether the global clsx definer is pinned.
func IsDefinerPinned() bool {
	return st.Load().pdef
}

// PinDefiner stops automatic rebuilds of the global definer.
func PinDefiner() { pin(func(s *state) { s.pdef = true }) }

// UnpinDefiner allows automatic rebuilds of the global definer again.
func UnpinDefiner() { pin(func(s *state) { s.pdef = false }) }

func pin(set func(*state)) {
	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	set(&next)
	publish(&next)
}

// rebuild refreshes the unpinned layers of next and publishes it.
// Must be called with buildMu held.
func rebuild(next, old *state, withRegistry bool) {
	if withRegistry {
		next.reg = next.bld.BuildRegistry(next.cfg, old.reg)
	}
	if !next.pdef {
		next.def = next.bld.BuildDefiner(next.cfg, next.reg, next.log)
	}
	publish(next)
}

// publish validates and stores s. Must be called with buildMu held.
func publish(s *state) {
	if s.reg == nil {
		panic(ErrNilRegistry)
	}
	if s.def == nil {
		panic(ErrNilDefiner)
	}
	st.Store(s)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global clsx state.
var st atomic.Pointer[state]

// state is the global clsx state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global clsx configuration.
	cfg apis.Config
	// reg is the global clsx registry.
	reg apis.Registry
	// def is the global clsx definer.
	def apis.Definer
	// bld is the global clsx builder.
	bld apis.Builder
	// log is the logger handed to built definers.
	log *slog.Logger
	// preg indicates whether the reg is pinned.
	preg bool
	// pdef indicates whether the def is pinned.
	pdef bool
}
