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

package cycle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dirpx.dev/clsx/apis"
	"dirpx.dev/clsx/cycle"
	"dirpx.dev/clsx/registry"
)

// fixture registers:
//
//	base
//	mid    (base)
//	leaf   (mid)
//	other
func fixture(t *testing.T) apis.Registry {
	t.Helper()
	reg := registry.New()
	base := &apis.Class{Name: "base"}
	mid := &apis.Class{Name: "mid", Supers: []*apis.Class{base}}
	leaf := &apis.Class{Name: "leaf", Supers: []*apis.Class{mid}}
	other := &apis.Class{Name: "other"}
	for _, c := range []*apis.Class{base, mid, leaf, other} {
		require.NoError(t, reg.Register(c.Name, c))
	}
	return reg
}

func TestHasCycle(t *testing.T) {
	reg := fixture(t)

	cases := []struct {
		name   string
		class  string
		supers []string
		want   bool
	}{
		{"never registered", "fresh", []string{"fresh"}, false},
		{"never registered with supers", "fresh", []string{"base", "leaf"}, false},
		{"self reference", "base", []string{"base"}, true},
		{"self reference among others", "base", []string{"other", "base"}, true},
		{"transitive through one level", "base", []string{"mid"}, true},
		{"transitive through two levels", "base", []string{"leaf"}, true},
		{"unrelated supers", "base", []string{"other"}, false},
		{"descendant is not an ancestor", "leaf", []string{"base"}, false},
		{"unbound supers skipped", "base", []string{"nope"}, false},
		{"no supers", "base", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, cycle.HasCycle(reg, tc.class, tc.supers))
		})
	}
}

func TestHasCycle_DoesNotMutate(t *testing.T) {
	reg := fixture(t)
	before := reg.Entries()

	_ = cycle.HasCycle(reg, "base", []string{"leaf"})
	_ = cycle.HasCycle(reg, "fresh", []string{"fresh"})

	require.Equal(t, before, reg.Entries())
}

// A diamond must terminate and still find the ancestor.
func TestHasCycle_Diamond(t *testing.T) {
	reg := registry.New()
	root := &apis.Class{Name: "root"}
	left := &apis.Class{Name: "left", Supers: []*apis.Class{root}}
	right := &apis.Class{Name: "right", Supers: []*apis.Class{root}}
	bottom := &apis.Class{Name: "bottom", Supers: []*apis.Class{left, right}}
	for _, c := range []*apis.Class{root, left, right, bottom} {
		require.NoError(t, reg.Register(c.Name, c))
	}

	require.True(t, cycle.HasCycle(reg, "root", []string{"bottom"}))
	require.False(t, cycle.HasCycle(reg, "left", []string{"right"}))
}

func TestHasCycle_NilRegistry(t *testing.T) {
	require.False(t, cycle.HasCycle(nil, "x", []string{"x"}))
}
