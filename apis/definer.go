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

// Definer expands partial class declarations into registered classes.
type Definer interface {
	// Define builds the class and binds name to it in the registry.
	Define(name string, supers []string, slots []SlotSpec, opts ...DefineOption) (*Class, error)
}

// DefineOptions are per-call declaration options.
type DefineOptions struct {
	// Initform overrides Config.Initform when InitformSet is true.
	Initform    Strategy
	InitformSet bool
	// TypeInference overrides Config.TypeInference when TypeInferenceSet is true.
	TypeInference    TypeInferrer
	TypeInferenceSet bool
	// Documentation is the class docstring.
	Documentation string
}

// DefineOption mutates DefineOptions.
type DefineOption func(*DefineOptions)
