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

package reflect

import (
	"fmt"
	"reflect"
	"sync"

	"dirpx.dev/clsx/apis"
)

// Category is a family of types that share a canonical empty value.
type Category int

const (
	// None means the type belongs to no supported category.
	None Category = iota
	Text
	Boolean
	Sequence
	Array
	Mapping
	Integer
	Complex
	Real
)

// Categories lists the supported categories in match priority order.
var Categories = []Category{Text, Boolean, Sequence, Array, Mapping, Integer, Complex, Real}

// String returns the lower-case category name.
func (c Category) String() string {
	switch c {
	case None:
		return "none"
	case Text:
		return "text"
	case Boolean:
		return "boolean"
	case Sequence:
		return "sequence"
	case Array:
		return "array"
	case Mapping:
		return "mapping"
	case Integer:
		return "integer"
	case Complex:
		return "complex"
	case Real:
		return "real"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// Matches reports whether t belongs to c.
func (c Category) Matches(t reflect.Type) bool {
	if t == nil {
		return false
	}
	switch c {
	case Text:
		return t.Kind() == reflect.String
	case Boolean:
		return t.Kind() == reflect.Bool
	case Sequence:
		return t.Kind() == reflect.Slice
	case Array:
		return t.Kind() == reflect.Array
	case Mapping:
		return t.Kind() == reflect.Map
	case Integer:
		switch t.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return true
		}
	case Complex:
		return t.Kind() == reflect.Complex64 || t.Kind() == reflect.Complex128
	case Real:
		return t.Kind() == reflect.Float32 || t.Kind() == reflect.Float64
	}
	return false
}

// categoryCache memoizes Classify by type.
var categoryCache sync.Map // key: reflect.Type, val: Category

// Classify returns the first category in priority order that t matches.
func Classify(t reflect.Type) Category {
	if t == nil {
		return None
	}
	if v, ok := categoryCache.Load(t); ok {
		return v.(Category)
	}
	c := None
	for _, cand := range Categories {
		if cand.Matches(t) {
			c = cand
			break
		}
	}
	categoryCache.Store(t, c)
	return c
}

// ZeroValue returns the canonical empty value of t:
//
//   - text, boolean, array, integer, complex, real: the Go zero value of t
//   - sequence: an empty, non-nil slice of t
//   - mapping: an empty, non-nil map of t
//
// Any other type yields apis.ErrNoZeroValue.
func ZeroValue(t reflect.Type) (any, error) {
	switch Classify(t) {
	case Text, Boolean, Array, Integer, Complex, Real:
		return reflect.Zero(t).Interface(), nil
	case Sequence:
		return reflect.MakeSlice(t, 0, 0).Interface(), nil
	case Mapping:
		return reflect.MakeMap(t).Interface(), nil
	}
	if t == nil {
		return nil, apis.ErrNoZeroValue
	}
	return nil, fmt.Errorf("%w: %v", apis.ErrNoZeroValue, t)
}

// InferType returns the type to declare for a slot whose initform is v:
// the value's own Go type. A Go value carries no type more general than its
// declared one, so no category lookup is involved, and the result keeps the
// category of v (Classify(InferType(v)) == Classify(reflect.TypeOf(v))).
// Untyped nil and apis.Unbound infer nothing.
func InferType(v any) (reflect.Type, bool) {
	if v == nil {
		return nil, false
	}
	if _, ok := v.(apis.Unbound); ok {
		return nil, false
	}
	return reflect.TypeOf(v), true
}

// Clone returns a shallow copy of slice and map values so that instances do
// not share a mutable default. Other values are returned as is.
func Clone(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		reflect.Copy(out, rv)
		return out.Interface()
	case reflect.Map:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), iter.Value())
		}
		return out.Interface()
	}
	return v
}
