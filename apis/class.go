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

package apis

import "reflect"

// Class is the runtime representation of a declared class.
// Identity is pointer identity: two *Class values denote the same class
// only if they are the same pointer, regardless of Name.
type Class struct {
	// Name is the declared name. For a hidden layer class this is the
	// generated name, not the name it ends up bound to.
	Name string
	// Supers is the ordered list of direct supertypes.
	Supers []*Class
	// Slots holds the direct (non-inherited) slot definitions.
	Slots []Slot
	// Documentation is an optional docstring.
	Documentation string
	// Hidden marks a class created to break a cyclic declaration.
	Hidden bool
}

// Precedence returns c followed by its supertypes in depth-first,
// left-to-right order. Each class appears once, at its first occurrence.
func (c *Class) Precedence() []*Class {
	if c == nil {
		return nil
	}
	var out []*Class
	seen := make(map[*Class]bool)
	var walk func(k *Class)
	walk = func(k *Class) {
		if k == nil || seen[k] {
			return
		}
		seen[k] = true
		out = append(out, k)
		for _, s := range k.Supers {
			walk(s)
		}
	}
	walk(c)
	return out
}

// EffectiveSlots merges slots along the precedence list.
// The most specific definition of a slot name wins.
func (c *Class) EffectiveSlots() []Slot {
	var out []Slot
	seen := make(map[string]bool)
	for _, k := range c.Precedence() {
		for _, s := range k.Slots {
			if seen[s.Name] {
				continue
			}
			seen[s.Name] = true
			out = append(out, s)
		}
	}
	return out
}

// Slot is a resolved slot definition.
type Slot struct {
	// Name is the slot name.
	Name string
	// Initform is the default value. Meaningful only if HasInitform.
	Initform any
	// HasInitform reports whether the slot carries a default.
	HasInitform bool
	// Type is the declared or inferred type, nil if none.
	Type reflect.Type
	// Options holds the remaining key/value options in declaration order.
	Options []Option
}

// Option returns the value of the first option with key k.
func (s Slot) Option(k Keyword) (any, bool) {
	for _, o := range s.Options {
		if o.Key == k {
			return o.Value, true
		}
	}
	return nil, false
}

// Initarg returns the initialization argument name of the slot.
// It defaults to the slot name.
func (s Slot) Initarg() string {
	if v, ok := s.Option(KeyInitarg); ok {
		if name, ok := v.(string); ok && name != "" {
			return name
		}
	}
	return s.Name
}

// Option is a single key/value slot option.
type Option struct {
	Key   Keyword
	Value any
}

// Unbound is the deferred initform installed by the "required" strategy.
// Reading a slot that still holds it fails with UnboundFieldError.
type Unbound struct {
	// Slot is the name of the slot that must be set before first use.
	Slot string
}
