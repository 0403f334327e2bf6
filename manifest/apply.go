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

package manifest

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"dirpx.dev/clsx/apis"
	"dirpx.dev/clsx/expander"
	"dirpx.dev/clsx/strategy"
)

// Apply defines the classes of m through def, in order, and returns them.
// types may be nil when the manifest only uses builtin type names. The
// first failing declaration stops the run.
func Apply(def apis.Definer, m *Manifest, types *Types) ([]*apis.Class, error) {
	if types == nil {
		types = NewTypes()
	}
	out := make([]*apis.Class, 0, len(m.Classes))
	for i, c := range m.Classes {
		specs, err := Specs(c, types)
		if err != nil {
			return out, errors.Wrapf(err, "class #%d %s", i+1, c.Name)
		}
		opts, err := Options(c)
		if err != nil {
			return out, errors.Wrapf(err, "class #%d %s", i+1, c.Name)
		}
		defined, err := def.Define(c.Name, c.Supers, specs, opts...)
		if err != nil {
			return out, errors.Wrapf(err, "class #%d %s", i+1, c.Name)
		}
		out = append(out, defined)
	}
	return out, nil
}

// Options turns the per-declaration settings of c into define options.
func Options(c Class) ([]apis.DefineOption, error) {
	var opts []apis.DefineOption
	if c.Documentation != "" {
		opts = append(opts, expander.WithDocumentation(c.Documentation))
	}
	switch name := strings.ToLower(strings.TrimSpace(c.Initform)); name {
	case "":
	case "none", "off":
		opts = append(opts, expander.WithInitform(nil))
	default:
		kind, err := strategy.Parse(name)
		if err != nil {
			return nil, err
		}
		s, err := strategy.New(kind)
		if err != nil {
			return nil, err
		}
		opts = append(opts, expander.WithInitform(s))
	}
	if c.TypeInference != "" {
		t, err := strategy.ParseTypeInference(c.TypeInference)
		if err != nil {
			return nil, err
		}
		opts = append(opts, expander.WithTypeInference(t))
	}
	return opts, nil
}

// Specs turns the slot declarations of c into raw slot specifications.
// Declared initforms are converted to the declared type.
func Specs(c Class, types *Types) ([]apis.SlotSpec, error) {
	specs := make([]apis.SlotSpec, 0, len(c.Slots))
	for _, s := range c.Slots {
		spec := apis.SlotSpec{s.Name}
		var rType reflect.Type
		if s.Type != "" {
			var err error
			if rType, err = types.Resolve(s.Type); err != nil {
				return nil, errors.Wrapf(err, "slot %s", s.Name)
			}
		}
		if s.HasInitform {
			v := s.Initform
			if rType != nil {
				var err error
				if v, err = convert(v, rType); err != nil {
					return nil, errors.Wrapf(err, "slot %s: initform", s.Name)
				}
			}
			spec = append(spec, v)
		}
		if rType != nil {
			spec = append(spec, apis.KeyType, rType)
		}
		for _, o := range []struct {
			key   apis.Keyword
			value string
		}{
			{apis.KeyDocumentation, s.Documentation},
			{apis.KeyInitarg, s.Initarg},
			{apis.KeyReader, s.Reader},
			{apis.KeyWriter, s.Writer},
			{apis.KeyAccessor, s.Accessor},
		} {
			if o.value != "" {
				spec = append(spec, o.key, o.value)
			}
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// FromClass renders the direct declaration of c back into manifest form.
// Supertypes are listed by class name; hidden names are reported as is.
func FromClass(c *apis.Class) Class {
	out := Class{Name: c.Name, Documentation: c.Documentation}
	for _, s := range c.Supers {
		out.Supers = append(out.Supers, s.Name)
	}
	for _, s := range c.Slots {
		out.Slots = append(out.Slots, FromSlot(s))
	}
	return out
}

// FromSlot renders a resolved slot in manifest form.
func FromSlot(s apis.Slot) Slot {
	out := Slot{Name: s.Name, HasInitform: s.HasInitform, Initform: s.Initform}
	if u, ok := s.Initform.(apis.Unbound); ok {
		out.Initform = fmt.Sprintf("<unbound %s>", u.Slot)
	}
	if s.Type != nil {
		out.Type = s.Type.String()
	}
	str := func(k apis.Keyword) string {
		if v, ok := s.Option(k); ok {
			return fmt.Sprint(v)
		}
		return ""
	}
	out.Documentation = str(apis.KeyDocumentation)
	out.Initarg = str(apis.KeyInitarg)
	out.Reader = str(apis.KeyReader)
	out.Writer = str(apis.KeyWriter)
	out.Accessor = str(apis.KeyAccessor)
	return out
}

// convert fits a decoded YAML value to t.
func convert(v any, t reflect.Type) (any, error) {
	if v == nil {
		switch t.Kind() {
		case reflect.Slice, reflect.Map, reflect.Pointer, reflect.Interface:
			return reflect.Zero(t).Interface(), nil
		}
		return nil, errors.Errorf("null for %v", t)
	}
	rv, err := convertValue(reflect.ValueOf(v), t)
	if err != nil {
		return nil, err
	}
	return rv.Interface(), nil
}

func convertValue(rv reflect.Value, t reflect.Type) (reflect.Value, error) {
	if rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Zero(t), nil
		}
		rv = rv.Elem()
	}
	if rv.Type().AssignableTo(t) {
		return rv, nil
	}
	switch t.Kind() {
	case reflect.Slice:
		if rv.Kind() != reflect.Slice {
			break
		}
		out := reflect.MakeSlice(t, rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			ev, err := convertValue(rv.Index(i), t.Elem())
			if err != nil {
				return reflect.Value{}, errors.Wrapf(err, "[%d]", i)
			}
			out.Index(i).Set(ev)
		}
		return out, nil
	case reflect.Array:
		if rv.Kind() != reflect.Slice || rv.Len() != t.Len() {
			break
		}
		out := reflect.New(t).Elem()
		for i := 0; i < rv.Len(); i++ {
			ev, err := convertValue(rv.Index(i), t.Elem())
			if err != nil {
				return reflect.Value{}, errors.Wrapf(err, "[%d]", i)
			}
			out.Index(i).Set(ev)
		}
		return out, nil
	case reflect.Map:
		if rv.Kind() != reflect.Map {
			break
		}
		out := reflect.MakeMapWithSize(t, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			kv, err := convertValue(iter.Key(), t.Key())
			if err != nil {
				return reflect.Value{}, err
			}
			ev, err := convertValue(iter.Value(), t.Elem())
			if err != nil {
				return reflect.Value{}, errors.Wrapf(err, "[%v]", iter.Key())
			}
			out.SetMapIndex(kv, ev)
		}
		return out, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		if isNumber(rv.Kind()) && rv.CanConvert(t) {
			return rv.Convert(t), nil
		}
		if !isComplex(t.Kind()) {
			break
		}
		if isNumber(rv.Kind()) && !isComplex(rv.Kind()) && rv.CanConvert(reflect.TypeOf(0.0)) {
			re := rv.Convert(reflect.TypeOf(0.0)).Float()
			return reflect.ValueOf(complex(re, 0)).Convert(t), nil
		}
		if rv.Kind() == reflect.String {
			c, err := strconv.ParseComplex(rv.String(), t.Bits())
			if err != nil {
				return reflect.Value{}, errors.Wrapf(err, "cannot use %q as %v", rv.String(), t)
			}
			return reflect.ValueOf(c).Convert(t), nil
		}
	}
	return reflect.Value{}, errors.Errorf("cannot use %v as %v", rv.Type(), t)
}

func isNumber(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Complex128
}

func isComplex(k reflect.Kind) bool {
	return k == reflect.Complex64 || k == reflect.Complex128
}
