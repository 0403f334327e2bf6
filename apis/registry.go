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

package apis

// Registry binds class names to class objects, at most one class per name.
type Registry interface {
	// Register binds name to c, replacing any prior binding.
	Register(name string, c *Class) error
	// Lookup returns the class bound to name, if any.
	Lookup(name string) (c *Class, ok bool)
	// Rebind sets registry[from] = registry[to].
	// It fails with *RegistryError if to is unbound.
	Rebind(from, to string) error
	// Unregister removes the binding of name. Unbound names are ignored.
	Unregister(name string)
	// Entries returns a snapshot of all bindings sorted by name.
	Entries() []Entry
	// Count returns the number of bindings.
	Count() int
	// Reset clears all bindings.
	Reset()
}

// Entry is a single (name, class) binding in a Registry snapshot.
type Entry struct {
	// Name is the bound name.
	Name string
	// Class is the class bound to Name.
	Class *Class
}
