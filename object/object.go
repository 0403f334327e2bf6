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

// Package object instantiates classes. Slot values start from initargs or
// initforms; a slot left without a value, or holding the deferred
// apis.Unbound initform, fails with *apis.UnboundFieldError when read.
package object

import (
	"fmt"
	"reflect"

	"dirpx.dev/clsx/apis"
	uref "dirpx.dev/clsx/utils/reflect"
)

// Object is an instance of a class.
type Object struct {
	class  *apis.Class
	slots  map[string]apis.Slot
	values map[string]any
}

// New instantiates c. initargs are matched against each slot's initarg
// (which defaults to the slot name); unknown initargs are an error.
func New(c *apis.Class, initargs map[string]any) (*Object, error) {
	if c == nil {
		return nil, fmt.Errorf("object: nil class")
	}
	o := &Object{
		class:  c,
		slots:  make(map[string]apis.Slot),
		values: make(map[string]any),
	}

	used := make(map[string]bool, len(initargs))
	for _, s := range c.EffectiveSlots() {
		o.slots[s.Name] = s
		if v, ok := initargs[s.Initarg()]; ok {
			used[s.Initarg()] = true
			if err := o.Set(s.Name, v); err != nil {
				return nil, err
			}
			continue
		}
		if s.HasInitform {
			o.values[s.Name] = uref.Clone(s.Initform)
		}
	}
	for k := range initargs {
		if !used[k] {
			return nil, fmt.Errorf("%w: initarg %s for %s", apis.ErrUnknownSlot, k, c.Name)
		}
	}
	return o, nil
}

// Class returns the class o was instantiated from.
func (o *Object) Class() *apis.Class { return o.class }

// Get reads a slot.
func (o *Object) Get(name string) (any, error) {
	if _, ok := o.slots[name]; !ok {
		return nil, fmt.Errorf("%w: %s in %s", apis.ErrUnknownSlot, name, o.class.Name)
	}
	v, ok := o.values[name]
	if !ok {
		return nil, &apis.UnboundFieldError{Class: o.class.Name, Slot: name}
	}
	if _, unbound := v.(apis.Unbound); unbound {
		return nil, &apis.UnboundFieldError{Class: o.class.Name, Slot: name}
	}
	return v, nil
}

// Bound reports whether the slot holds a usable value.
func (o *Object) Bound(name string) bool {
	_, err := o.Get(name)
	return err == nil
}

// Set writes a slot. A value that does not fit the slot type is rejected;
// numeric values are converted when the conversion is lossless in kind.
func (o *Object) Set(name string, v any) error {
	s, ok := o.slots[name]
	if !ok {
		return fmt.Errorf("%w: %s in %s", apis.ErrUnknownSlot, name, o.class.Name)
	}
	cv, err := coerce(s.Type, v)
	if err != nil {
		return fmt.Errorf("%s.%s: %w", o.class.Name, name, err)
	}
	o.values[name] = cv
	return nil
}

// coerce fits v to t. A nil t accepts anything.
func coerce(t reflect.Type, v any) (any, error) {
	if t == nil {
		return v, nil
	}
	if v == nil {
		switch t.Kind() {
		case reflect.Slice, reflect.Map, reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan:
			return reflect.Zero(t).Interface(), nil
		}
		return nil, fmt.Errorf("%w: nil for %v", apis.ErrTypeMismatch, t)
	}
	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(t) {
		return v, nil
	}
	src, dst := uref.Classify(rv.Type()), uref.Classify(t)
	if src == dst && (src == uref.Integer || src == uref.Real || src == uref.Complex) && rv.CanConvert(t) {
		return rv.Convert(t).Interface(), nil
	}
	return nil, fmt.Errorf("%w: %v for %v", apis.ErrTypeMismatch, rv.Type(), t)
}
