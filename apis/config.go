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

// Config carries the process-wide inference defaults.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// Initform is the default initform strategy. Nil disables initform
	// inference unless a definition supplies its own strategy.
	Initform Strategy

	// TypeInference is the default type inference. Nil disables it unless
	// a definition supplies its own.
	TypeInference TypeInferrer

	// HiddenSeparator joins a class name and the unique token of the hidden
	// class created for a cyclic declaration.
	HiddenSeparator string
}
