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

package expander

import "dirpx.dev/clsx/apis"

// WithInitform selects the initform strategy for one definition.
// A nil strategy disables initform inference for that definition.
func WithInitform(s apis.Strategy) apis.DefineOption {
	return func(o *apis.DefineOptions) {
		o.Initform = s
		o.InitformSet = true
	}
}

// WithTypeInference selects the type inference for one definition.
// A nil inferrer disables type inference for that definition.
func WithTypeInference(t apis.TypeInferrer) apis.DefineOption {
	return func(o *apis.DefineOptions) {
		o.TypeInference = t
		o.TypeInferenceSet = true
	}
}

// WithDocumentation sets the class docstring.
func WithDocumentation(doc string) apis.DefineOption {
	return func(o *apis.DefineOptions) {
		o.Documentation = doc
	}
}
