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
	"reflect"

	"dirpx.dev/clsx/apis"
)

// Chain constructs a strategy that tries the given strategies in order and
// returns the first successful default. Nil strategies are ignored.
// If every strategy fails, the last error is returned.
func Chain(strategies ...apis.Strategy) apis.Strategy {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return chain{strats: out}
}

// chain is an immutable, order-preserving strategy list.
type chain struct {
	strats []apis.Strategy
}

// Infer runs strategies in order until one succeeds.
func (c chain) Infer(slot string, t reflect.Type) (any, error) {
	var err error
	for _, s := range c.strats {
		v, e := s.Infer(slot, t)
		if e == nil {
			return v, nil
		}
		err = e
	}
	if err == nil {
		// Empty chain behaves like the default strategy.
		return NewZeroValue().Infer(slot, t)
	}
	return nil, err
}
