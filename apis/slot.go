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

// Keyword is an option key inside a raw slot specification.
type Keyword string

const (
	// KeyType declares the slot type; its value is a reflect.Type.
	KeyType Keyword = ":type"
	// KeyDocumentation attaches a docstring to the slot.
	KeyDocumentation Keyword = ":documentation"
	// KeyInitarg names the initialization argument of the slot.
	KeyInitarg Keyword = ":initarg"
	// KeyReader names a reader accessor.
	KeyReader Keyword = ":reader"
	// KeyWriter names a writer accessor.
	KeyWriter Keyword = ":writer"
	// KeyAccessor names a reader/writer accessor.
	KeyAccessor Keyword = ":accessor"
)

// SlotSpec is a raw, possibly partial slot declaration:
//
//	{name}
//	{name, initform}
//	{name, key, value, ...}
//	{name, initform, key, value, ...}
//
// The first element is the slot name (a string). The positional initform is
// present iff the elements after the name have odd length.
type SlotSpec []any
