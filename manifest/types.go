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

package manifest

import (
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/viant/xreflect"
)

// builtins are the type names every manifest can use.
var builtins = map[string]reflect.Type{
	"bool":       reflect.TypeOf(false),
	"string":     reflect.TypeOf(""),
	"int":        reflect.TypeOf(int(0)),
	"int8":       reflect.TypeOf(int8(0)),
	"int16":      reflect.TypeOf(int16(0)),
	"int32":      reflect.TypeOf(int32(0)),
	"int64":      reflect.TypeOf(int64(0)),
	"uint":       reflect.TypeOf(uint(0)),
	"uint8":      reflect.TypeOf(uint8(0)),
	"uint16":     reflect.TypeOf(uint16(0)),
	"uint32":     reflect.TypeOf(uint32(0)),
	"uint64":     reflect.TypeOf(uint64(0)),
	"byte":       reflect.TypeOf(byte(0)),
	"rune":       reflect.TypeOf(rune(0)),
	"float32":    reflect.TypeOf(float32(0)),
	"float64":    reflect.TypeOf(float64(0)),
	"complex64":  reflect.TypeOf(complex64(0)),
	"complex128": reflect.TypeOf(complex128(0)),
	"any":        reflect.TypeOf((*any)(nil)).Elem(),
	"time.Time":  reflect.TypeOf(time.Time{}),
	"duration":   reflect.TypeOf(time.Duration(0)),
}

// Types resolves the type expressions of slot declarations: builtin names,
// names registered with Register, and the composite forms []T, [N]T,
// map[K]V and *T built from them.
type Types struct {
	registry *xreflect.Types
}

// NewTypes creates an empty type registry.
func NewTypes() *Types {
	return &Types{registry: xreflect.NewTypes()}
}

// Register makes t available under name.
func (t *Types) Register(name string, rType reflect.Type) error {
	if rType == nil {
		return errors.Errorf("type %s: nil reflect type", name)
	}
	return t.registry.Register(name, xreflect.WithReflectType(rType))
}

// Resolve parses expr into a reflect.Type.
func (t *Types) Resolve(expr string) (reflect.Type, error) {
	expr = strings.TrimSpace(expr)
	switch {
	case expr == "":
		return nil, errors.New("empty type expression")
	case strings.HasPrefix(expr, "*"):
		elem, err := t.Resolve(expr[1:])
		if err != nil {
			return nil, err
		}
		return reflect.PointerTo(elem), nil
	case strings.HasPrefix(expr, "[]"):
		elem, err := t.Resolve(expr[2:])
		if err != nil {
			return nil, err
		}
		return reflect.SliceOf(elem), nil
	case strings.HasPrefix(expr, "["):
		end := strings.IndexByte(expr, ']')
		if end < 0 {
			return nil, errors.Errorf("type %q: unterminated array length", expr)
		}
		n, err := arrayLen(expr[1:end])
		if err != nil {
			return nil, errors.Wrapf(err, "type %q", expr)
		}
		elem, err := t.Resolve(expr[end+1:])
		if err != nil {
			return nil, err
		}
		return reflect.ArrayOf(n, elem), nil
	case strings.HasPrefix(expr, "map["):
		end := matchingBracket(expr, len("map"))
		if end < 0 {
			return nil, errors.Errorf("type %q: unterminated map key", expr)
		}
		key, err := t.Resolve(expr[len("map["):end])
		if err != nil {
			return nil, err
		}
		if !key.Comparable() {
			return nil, errors.Errorf("type %q: map key %v is not comparable", expr, key)
		}
		elem, err := t.Resolve(expr[end+1:])
		if err != nil {
			return nil, err
		}
		return reflect.MapOf(key, elem), nil
	}
	if rType, ok := builtins[expr]; ok {
		return rType, nil
	}
	rType, err := t.registry.Lookup(expr)
	if err != nil {
		return nil, errors.Wrapf(err, "unknown type %q", expr)
	}
	return rType, nil
}

func arrayLen(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, errors.Errorf("invalid array length %q", s)
	}
	return n, nil
}

// matchingBracket returns the index of the ']' closing the '[' at open.
func matchingBracket(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
