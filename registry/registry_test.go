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

package registry_test

import (
	"errors"
	"testing"

	"dirpx.dev/clsx/apis"
	"dirpx.dev/clsx/registry"
)

func TestRegister_ReplaceAndLookup(t *testing.T) {
	reg := registry.New()
	c1 := &apis.Class{Name: "point"}
	c2 := &apis.Class{Name: "point"}

	if err := reg.Register("point", c1); err != nil {
		t.Fatalf("Register(point): unexpected error: %v", err)
	}
	if got, ok := reg.Lookup("point"); !ok || got != c1 {
		t.Fatalf("Lookup(point): got (%p,%v), want (%p,true)", got, ok, c1)
	}

	// A second registration replaces the binding.
	if err := reg.Register("point", c2); err != nil {
		t.Fatalf("Register(point) again: unexpected error: %v", err)
	}
	if got, _ := reg.Lookup("point"); got != c2 {
		t.Fatalf("Lookup(point) after replace: got %p, want %p", got, c2)
	}
	if reg.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", reg.Count())
	}
}

func TestRegister_Errors(t *testing.T) {
	reg := registry.New()

	if err := reg.Register("", &apis.Class{}); err != registry.ErrEmptyName {
		t.Fatalf("empty name: want ErrEmptyName, got %v", err)
	}
	if err := reg.Register("x", nil); err != registry.ErrNilClass {
		t.Fatalf("nil class: want ErrNilClass, got %v", err)
	}
}

func TestRebind(t *testing.T) {
	reg := registry.New()
	mock := &apis.Class{Name: "mock-db"}
	_ = reg.Register("mock-db", mock)

	if err := reg.Rebind("db", "mock-db"); err != nil {
		t.Fatalf("Rebind(db, mock-db): %v", err)
	}
	if got, ok := reg.Lookup("db"); !ok || got != mock {
		t.Fatalf("Lookup(db): got (%p,%v), want (%p,true)", got, ok, mock)
	}
}

func TestRebind_UnboundTarget(t *testing.T) {
	reg := registry.New()
	orig := &apis.Class{Name: "db"}
	_ = reg.Register("db", orig)

	err := reg.Rebind("db", "missing")
	var rerr *apis.RegistryError
	if !errors.As(err, &rerr) {
		t.Fatalf("Rebind to unbound name: want *RegistryError, got %v", err)
	}
	if rerr.Name != "missing" || !errors.Is(err, apis.ErrUnboundName) {
		t.Fatalf("unexpected registry error: %v", err)
	}
	// The failed rebind leaves the source untouched.
	if got, _ := reg.Lookup("db"); got != orig {
		t.Fatalf("Lookup(db) after failed rebind: got %p, want %p", got, orig)
	}
}

func TestEntriesUnregisterAndReset(t *testing.T) {
	reg := registry.New()

	_ = reg.Register("b", &apis.Class{Name: "b"})
	_ = reg.Register("a", &apis.Class{Name: "a"})
	_ = reg.Register("c", &apis.Class{Name: "c"})

	entries := reg.Entries()
	if len(entries) != 3 {
		t.Fatalf("Entries len = %d, want 3", len(entries))
	}
	for i, want := range []string{"a", "b", "c"} {
		if entries[i].Name != want {
			t.Fatalf("Entries[%d].Name = %q, want %q", i, entries[i].Name, want)
		}
	}

	reg.Unregister("b")
	reg.Unregister("never-bound")
	if _, ok := reg.Lookup("b"); ok {
		t.Fatal("Lookup(b) after Unregister: still bound")
	}
	if reg.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", reg.Count())
	}

	reg.Reset()
	if reg.Count() != 0 {
		t.Fatalf("after Reset, Count() = %d, want 0", reg.Count())
	}
	if c, ok := reg.Lookup("a"); ok || c != nil {
		t.Fatalf("Lookup after Reset: got (%p,%v), want (nil,false)", c, ok)
	}
}
