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

import "reflect"

// Strategy synthesizes a default value for a slot that has no initform.
type Strategy interface {
	// Infer returns the default for the named slot. t is the declared
	// type, or nil if the slot declares none.
	Infer(slot string, t reflect.Type) (any, error)
}

// TypeInferrer derives a slot type from an explicit initform value.
type TypeInferrer interface {
	// InferType returns the type for v, or (nil, false) if none applies.
	InferType(v any) (reflect.Type, bool)
}
