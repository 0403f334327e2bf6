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

package registry

import (
	"errors"
	"sort"
	"sync"

	"dirpx.dev/clsx/apis"
)

var (
	// ErrNilClass is returned when a nil class is registered.
	ErrNilClass = errors.New("clsx(registry): nil class provided")
	// ErrEmptyName is returned when an empty name is provided.
	ErrEmptyName = errors.New("clsx(registry): empty name provided")
)

// New constructs an empty Registry.
func New() apis.Registry {
	return &registry{m: make(map[string]*apis.Class)}
}

// registry is a map-backed Registry. The mutex keeps single operations
// consistent; compound operations are serialized by callers.
type registry struct {
	mu sync.RWMutex
	// m maps class names to class objects.
	m map[string]*apis.Class
}

// Register binds name to c, replacing any prior binding.
func (r *registry) Register(name string, c *apis.Class) error {
	if name == "" {
		return ErrEmptyName
	}
	if c == nil {
		return ErrNilClass
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[name] = c
	return nil
}

// Lookup returns the class bound to name.
func (r *registry) Lookup(name string) (*apis.Class, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.m[name]
	return c, ok
}

// Rebind copies the binding of to onto from.
func (r *registry) Rebind(from, to string) error {
	if from == "" {
		return ErrEmptyName
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.m[to]
	if !ok {
		return &apis.RegistryError{Name: to, Err: apis.ErrUnboundName}
	}
	r.m[from] = c
	return nil
}

// Unregister removes the binding of name.
func (r *registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.m, name)
}

// Entries returns a snapshot of all bindings sorted by name.
func (r *registry) Entries() []apis.Entry {
	r.mu.RLock()
	entries := make([]apis.Entry, 0, len(r.m))
	for name, c := range r.m {
		entries = append(entries, apis.Entry{Name: name, Class: c})
	}
	r.mu.RUnlock()
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// Count returns the number of bindings.
func (r *registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.m)
}

// Reset clears all bindings.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m = make(map[string]*apis.Class)
}
