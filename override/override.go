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

// Package override swaps registry bindings for the duration of a call and
// exposes the class a layered redefinition superseded.
package override

import "dirpx.dev/clsx/apis"

// Scoped binds name to the class bound to overrideName, runs body, and
// restores the previous binding of name on every exit path, including a
// panic in body. A name that was unbound before is unbound again afterwards.
// The error of body is returned unchanged. If the rebind itself fails, body
// is not run and the *apis.RegistryError is returned.
func Scoped(reg apis.Registry, name, overrideName string, body func() error) error {
	_, err := With(reg, name, overrideName, func() (struct{}, error) {
		return struct{}{}, body()
	})
	return err
}

// With is Scoped for a body that produces a result.
func With[T any](reg apis.Registry, name, overrideName string, body func() (T, error)) (T, error) {
	old, bound := reg.Lookup(name)
	if err := reg.Rebind(name, overrideName); err != nil {
		var zero T
		return zero, err
	}
	defer restore(reg, name, old, bound)
	return body()
}

func restore(reg apis.Registry, name string, old *apis.Class, bound bool) {
	if !bound {
		reg.Unregister(name)
		return
	}
	// Register only fails on an empty name or nil class, neither of which
	// can reach this point.
	_ = reg.Register(name, old)
}

// Original returns the class that the class bound to name superseded, i.e.
// the direct supertype declared under the same name.
func Original(reg apis.Registry, name string) (*apis.Class, bool) {
	c, ok := reg.Lookup(name)
	if !ok {
		return nil, false
	}
	for _, s := range c.Supers {
		if s != nil && s.Name == name {
			return s, true
		}
	}
	return nil, false
}
