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

package strategy

import (
	"fmt"
	"reflect"
	"strings"

	"dirpx.dev/clsx/apis"
	uref "dirpx.dev/clsx/utils/reflect"
)

// NewBasicTypeInference creates the default type inference, which declares
// a slot with the type of its explicit initform.
func NewBasicTypeInference() apis.TypeInferrer {
	return basicTypes{}
}

type basicTypes struct{}

var _ apis.TypeInferrer = basicTypes{}

func (basicTypes) InferType(v any) (reflect.Type, bool) {
	return uref.InferType(v)
}

// TypeFunc adapts a function into an apis.TypeInferrer.
type TypeFunc func(v any) (reflect.Type, bool)

var _ apis.TypeInferrer = TypeFunc(nil)

// InferType calls f.
func (f TypeFunc) InferType(v any) (reflect.Type, bool) {
	return f(v)
}

// ParseTypeInference maps a configuration token to a type inference.
// "basic" selects NewBasicTypeInference; "none" or "off" disables type
// inference and returns nil.
func ParseTypeInference(s string) (apis.TypeInferrer, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basic", "":
		return NewBasicTypeInference(), nil
	case "none", "off":
		return nil, nil
	default:
		return nil, fmt.Errorf("strategy: unknown type inference %q", s)
	}
}
