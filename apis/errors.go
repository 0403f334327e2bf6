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

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingDefault is reported when no default value can be inferred
	// for a slot under the zero-value strategy.
	ErrMissingDefault = errors.New("clsx: missing default value")
	// ErrNoZeroValue indicates that a type belongs to no category with a
	// canonical empty value.
	ErrNoZeroValue = errors.New("clsx: type has no zero value")
	// ErrUnknownSuper indicates a supertype name that is not registered.
	ErrUnknownSuper = errors.New("clsx: unknown supertype")
	// ErrDuplicateSlot indicates two direct slots with the same name.
	ErrDuplicateSlot = errors.New("clsx: duplicate slot")
	// ErrMalformedSlot indicates a raw slot spec that cannot be parsed.
	ErrMalformedSlot = errors.New("clsx: malformed slot specification")
	// ErrUnboundName indicates a registry name with no class bound to it.
	ErrUnboundName = errors.New("clsx: name is not bound to a class")
	// ErrUnknownSlot indicates access to a slot the class does not declare.
	ErrUnknownSlot = errors.New("clsx: unknown slot")
	// ErrTypeMismatch indicates a value that does not fit the slot type.
	ErrTypeMismatch = errors.New("clsx: value does not match slot type")
)

// DefinitionError is raised while a class is being defined.
type DefinitionError struct {
	// Class is the name being defined, if known.
	Class string
	// Slot is the offending slot, if any.
	Slot string
	// Err is the underlying cause.
	Err error
}

func (e *DefinitionError) Error() string {
	switch {
	case e.Class != "" && e.Slot != "":
		return fmt.Sprintf("define %s: slot %s: %v", e.Class, e.Slot, e.Err)
	case e.Slot != "":
		return fmt.Sprintf("slot %s: %v", e.Slot, e.Err)
	case e.Class != "":
		return fmt.Sprintf("define %s: %v", e.Class, e.Err)
	}
	return e.Err.Error()
}

func (e *DefinitionError) Unwrap() error { return e.Err }

// UnboundFieldError is raised when a slot is read before it was given a value.
type UnboundFieldError struct {
	Class string
	Slot  string
}

func (e *UnboundFieldError) Error() string {
	return fmt.Sprintf("clsx: slot %s of %s is unbound", e.Slot, e.Class)
}

// RegistryError is raised by registry operations on unbound names.
type RegistryError struct {
	// Name is the name that failed to resolve.
	Name string
	// Err is the underlying cause.
	Err error
}

func (e *RegistryError) Error() string {
	return fmt.Sprintf("registry %q: %v", e.Name, e.Err)
}

func (e *RegistryError) Unwrap() error { return e.Err }
