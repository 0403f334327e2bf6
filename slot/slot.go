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

// Package slot parses raw slot specifications and completes missing
// initforms and types through inference strategies.
//
// A raw spec is a name optionally followed by a positional initform and
// keyword/value options. Whether the initform is present is decided by
// parity alone: after the name, an odd number of elements means the first
// one is the initform.
//
//	apis.SlotSpec{"x"}                                  // name only
//	apis.SlotSpec{"x", 5}                               // initform 5
//	apis.SlotSpec{"x", apis.KeyType, reflect.TypeOf(0)} // type only
//	apis.SlotSpec{"x", 5, apis.KeyType, reflect.TypeOf(0)}
package slot

import (
	"fmt"
	"reflect"

	"dirpx.dev/clsx/apis"
)

// Normalize turns raw into spec-list form. raw may be a bare name (string),
// an apis.SlotSpec or a []any.
func Normalize(raw any) (apis.SlotSpec, error) {
	var spec apis.SlotSpec
	switch v := raw.(type) {
	case string:
		spec = apis.SlotSpec{v}
	case apis.SlotSpec:
		spec = v
	case []any:
		spec = apis.SlotSpec(v)
	default:
		return nil, fmt.Errorf("%w: unsupported form %T", apis.ErrMalformedSlot, raw)
	}
	if len(spec) == 0 {
		return nil, fmt.Errorf("%w: empty specification", apis.ErrMalformedSlot)
	}
	name, ok := spec[0].(string)
	if !ok || name == "" {
		return nil, fmt.Errorf("%w: slot name must be a non-empty string, got %#v", apis.ErrMalformedSlot, spec[0])
	}
	return spec, nil
}

// ParseInitform reports whether raw carries a positional initform and
// returns it.
func ParseInitform(raw any) (found bool, value any, err error) {
	spec, err := Normalize(raw)
	if err != nil {
		return false, nil, err
	}
	if hasInitform(spec) {
		return true, spec[1], nil
	}
	return false, nil, nil
}

// ParseType returns the explicit :type option of raw, if any.
func ParseType(raw any) (reflect.Type, bool, error) {
	spec, err := Normalize(raw)
	if err != nil {
		return nil, false, err
	}
	opts, err := options(spec)
	if err != nil {
		return nil, false, err
	}
	return typeOption(spec[0].(string), opts)
}

// Process resolves raw into a slot definition.
//
// With an explicit initform, the type is left alone if declared; otherwise,
// if types is non-nil, it is inferred from the initform. Without an
// initform, if initform is non-nil, one is synthesized from the (possibly
// nil) declared type; otherwise the slot stays without an initform.
// An explicit initform is never overwritten.
func Process(raw any, initform apis.Strategy, types apis.TypeInferrer) (apis.Slot, error) {
	spec, err := Normalize(raw)
	if err != nil {
		return apis.Slot{}, err
	}
	name := spec[0].(string)

	opts, err := options(spec)
	if err != nil {
		return apis.Slot{}, err
	}
	typ, hasType, err := typeOption(name, opts)
	if err != nil {
		return apis.Slot{}, err
	}

	out := apis.Slot{Name: name, Type: typ}
	for _, o := range opts {
		if o.Key != apis.KeyType {
			out.Options = append(out.Options, o)
		}
	}

	if hasInitform(spec) {
		out.Initform = spec[1]
		out.HasInitform = true
		if !hasType && types != nil {
			if t, ok := types.InferType(out.Initform); ok {
				out.Type = t
			}
		}
		return out, nil
	}

	if initform != nil {
		v, err := initform.Infer(name, typ)
		if err != nil {
			return apis.Slot{}, err
		}
		out.Initform = v
		out.HasInitform = true
	}
	return out, nil
}

// Spec renders a resolved slot back into spec-list form.
func Spec(s apis.Slot) apis.SlotSpec {
	spec := apis.SlotSpec{s.Name}
	if s.HasInitform {
		spec = append(spec, s.Initform)
	}
	if s.Type != nil {
		spec = append(spec, apis.KeyType, s.Type)
	}
	for _, o := range s.Options {
		spec = append(spec, o.Key, o.Value)
	}
	return spec
}

func hasInitform(spec apis.SlotSpec) bool {
	return (len(spec)-1)%2 == 1
}

// options collects the key/value pairs that follow the name and initform.
func options(spec apis.SlotSpec) ([]apis.Option, error) {
	start := 1
	if hasInitform(spec) {
		start = 2
	}
	var out []apis.Option
	for i := start; i+1 < len(spec); i += 2 {
		key, ok := spec[i].(apis.Keyword)
		if !ok {
			return nil, fmt.Errorf("%w: slot %s: option key must be a keyword, got %#v", apis.ErrMalformedSlot, spec[0], spec[i])
		}
		out = append(out, apis.Option{Key: key, Value: spec[i+1]})
	}
	return out, nil
}

func typeOption(name string, opts []apis.Option) (reflect.Type, bool, error) {
	for _, o := range opts {
		if o.Key != apis.KeyType {
			continue
		}
		t, ok := o.Value.(reflect.Type)
		if !ok || t == nil {
			return nil, false, fmt.Errorf("%w: slot %s: :type must be a reflect.Type, got %#v", apis.ErrMalformedSlot, name, o.Value)
		}
		return t, true, nil
	}
	return nil, false, nil
}
