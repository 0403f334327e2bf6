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

package strategy

import (
	"fmt"
	"reflect"

	"dirpx.dev/clsx/apis"
	uref "dirpx.dev/clsx/utils/reflect"
)

// NewZeroValue creates the zero-value strategy.
func NewZeroValue() apis.Strategy {
	return zeroValue{}
}

// zeroValue fails fast: a slot without a usable type is a definition error.
type zeroValue struct{}

// Ensure zeroValue implements apis.Strategy.
var _ apis.Strategy = zeroValue{}

// Infer returns the canonical empty value of t.
func (zeroValue) Infer(slot string, t reflect.Type) (any, error) {
	if t == nil {
		return nil, &apis.DefinitionError{Slot: slot, Err: fmt.Errorf("%w: no type declared", apis.ErrMissingDefault)}
	}
	v, err := uref.ZeroValue(t)
	if err != nil {
		return nil, &apis.DefinitionError{Slot: slot, Err: fmt.Errorf("%w: %w", apis.ErrMissingDefault, err)}
	}
	return v, nil
}

// NewRequired creates the required strategy.
func NewRequired() apis.Strategy {
	return required{}
}

// required defers the failure to the first read of the slot.
type required struct{}

var _ apis.Strategy = required{}

// Infer returns the canonical empty value of t, or apis.Unbound.
func (required) Infer(slot string, t reflect.Type) (any, error) {
	if v, err := uref.ZeroValue(t); err == nil {
		return v, nil
	}
	return apis.Unbound{Slot: slot}, nil
}

// NewNilFallback creates the nil-fallback strategy.
func NewNilFallback() apis.Strategy {
	return nilFallback{}
}

// nilFallback never fails.
type nilFallback struct{}

var _ apis.Strategy = nilFallback{}

// Infer returns the canonical empty value of t, or nil.
func (nilFallback) Infer(_ string, t reflect.Type) (any, error) {
	if v, err := uref.ZeroValue(t); err == nil {
		return v, nil
	}
	return nil, nil
}

// Func adapts a function into a Custom strategy.
type Func func(slot string, t reflect.Type) (any, error)

var _ apis.Strategy = Func(nil)

// Infer calls f.
func (f Func) Infer(slot string, t reflect.Type) (any, error) {
	return f(slot, t)
}
