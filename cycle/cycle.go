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

// Package cycle decides whether a proposed supertype list would make a
// class inherit from the class currently registered under its own name.
package cycle

import "dirpx.dev/clsx/apis"

// HasCycle reports whether defining name with supers would route through
// the class currently bound to name. It never mutates reg.
//
// Unbound names in supers are skipped. The direct supertypes are checked
// first; the transitive closure is walked only when that check fails.
func HasCycle(reg apis.Registry, name string, supers []string) bool {
	if reg == nil {
		return false
	}
	current, ok := reg.Lookup(name)
	if !ok {
		return false
	}

	resolved := make([]*apis.Class, 0, len(supers))
	for _, s := range supers {
		if c, ok := reg.Lookup(s); ok {
			resolved = append(resolved, c)
		}
	}

	for _, c := range resolved {
		if c == current {
			return true
		}
	}

	seen := make(map[*apis.Class]bool)
	for _, c := range resolved {
		if inherits(c, current, seen) {
			return true
		}
	}
	return false
}

// inherits reports whether target is a strict ancestor of c.
func inherits(c, target *apis.Class, seen map[*apis.Class]bool) bool {
	for _, s := range c.Supers {
		if s == target {
			return true
		}
		if seen[s] {
			continue
		}
		seen[s] = true
		if inherits(s, target, seen) {
			return true
		}
	}
	return false
}
