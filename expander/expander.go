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

// Package expander turns partial class declarations into registered classes.
//
// A declaration whose supertypes route through the class currently bound to
// its own name is a layered redefinition: the new class is built under a
// hidden, unique name with the previous class among its supertypes, and the
// public name is rebound to it. Layered definitions always use the
// configured default strategies; per-call strategy options are ignored.
package expander

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"dirpx.dev/clsx/apis"
	"dirpx.dev/clsx/config"
	"dirpx.dev/clsx/cycle"
	"dirpx.dev/clsx/logging"
	"dirpx.dev/clsx/slot"
)

// ErrEmptyName is returned when a definition has no name.
var ErrEmptyName = errors.New("clsx(expander): empty class name")

// New constructs a Definer that defines classes into reg.
// A nil logger discards log output.
func New(cfg apis.Config, reg apis.Registry, log *slog.Logger) apis.Definer {
	if log == nil {
		log = logging.Discard()
	}
	if cfg.HiddenSeparator == "" {
		cfg.HiddenSeparator = config.DefaultHiddenSeparator
	}
	return &expander{cfg: cfg, reg: reg, log: log, token: uuid.NewString}
}

// expander is the default Definer.
type expander struct {
	cfg apis.Config
	reg apis.Registry
	log *slog.Logger
	// token generates the unique part of hidden class names.
	token func() string
}

// Ensure expander implements apis.Definer.
var _ apis.Definer = (*expander)(nil)

// Define builds the class and binds name to it.
func (e *expander) Define(name string, supers []string, specs []apis.SlotSpec, opts ...apis.DefineOption) (*apis.Class, error) {
	if name == "" {
		return nil, &apis.DefinitionError{Err: ErrEmptyName}
	}
	var o apis.DefineOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if cycle.HasCycle(e.reg, name, supers) {
		return e.defineLayer(name, supers, specs, o)
	}

	initform := e.cfg.Initform
	if o.InitformSet {
		initform = o.Initform
	}
	types := e.cfg.TypeInference
	if o.TypeInferenceSet {
		types = o.TypeInference
	}

	c, err := e.build(name, name, supers, specs, initform, types)
	if err != nil {
		return nil, err
	}
	c.Documentation = o.Documentation
	if err := e.reg.Register(name, c); err != nil {
		return nil, &apis.DefinitionError{Class: name, Err: err}
	}
	e.log.Debug("class defined", "class", name, "supers", supers, "slots", len(c.Slots))
	return c, nil
}

// defineLayer handles a cyclic declaration of name.
func (e *expander) defineLayer(name string, supers []string, specs []apis.SlotSpec, o apis.DefineOptions) (*apis.Class, error) {
	if o.InitformSet || o.TypeInferenceSet {
		e.log.Debug("per-call inference options ignored on layered definition", "class", name)
	}
	previous, _ := e.reg.Lookup(name)
	hidden := name + e.cfg.HiddenSeparator + e.token()

	c, err := e.build(name, hidden, supers, specs, e.cfg.Initform, e.cfg.TypeInference)
	if err != nil {
		return nil, err
	}
	c.Hidden = true
	c.Documentation = o.Documentation

	if err := e.reg.Register(hidden, c); err != nil {
		return nil, &apis.DefinitionError{Class: name, Err: err}
	}
	// The hidden binding only exists to be copied; the class stays
	// reachable through name.
	defer e.reg.Unregister(hidden)
	if err := e.reg.Rebind(name, hidden); err != nil {
		return nil, err
	}
	e.log.Debug("class layered", "class", name, "hidden", hidden, "previous", previous.Name)
	return c, nil
}

// build resolves supertypes and slots of a class named className that will
// be bound to bindName.
func (e *expander) build(bindName, className string, supers []string, specs []apis.SlotSpec, initform apis.Strategy, types apis.TypeInferrer) (*apis.Class, error) {
	c := &apis.Class{Name: className}

	for _, s := range supers {
		sc, ok := e.reg.Lookup(s)
		if !ok {
			if s == bindName {
				// Self-reference with no previous version to layer over.
				continue
			}
			return nil, &apis.DefinitionError{Class: bindName, Err: fmt.Errorf("%w: %s", apis.ErrUnknownSuper, s)}
		}
		c.Supers = append(c.Supers, sc)
	}

	seen := make(map[string]bool, len(specs))
	for _, spec := range specs {
		sl, err := slot.Process(spec, initform, types)
		if err != nil {
			return nil, definitionError(bindName, err)
		}
		if seen[sl.Name] {
			return nil, &apis.DefinitionError{Class: bindName, Slot: sl.Name, Err: apis.ErrDuplicateSlot}
		}
		seen[sl.Name] = true
		c.Slots = append(c.Slots, sl)
	}
	return c, nil
}

// definitionError attributes err to class.
func definitionError(class string, err error) error {
	if derr, ok := err.(*apis.DefinitionError); ok {
		if derr.Class == "" {
			derr.Class = class
		}
		return derr
	}
	return &apis.DefinitionError{Class: class, Err: err}
}
