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
	"strings"

	"dirpx.dev/clsx/apis"
)

// Kind selects one of the built-in initform strategies.
//
// # Values
//
//   - ZeroValue: canonical empty value of the declared type; a slot with
//     no type, or a type without one, fails the definition.
//   - Required: canonical empty value if the type has one; otherwise the
//     slot must be set before it is first read.
//   - NilFallback: canonical empty value if the type has one; otherwise nil.
//   - Custom: a caller-provided function (see Func).
//
// Kind values are plain integers and safe to share across goroutines.
// Custom cannot be turned into a Strategy by New because it carries no
// function; use Func instead.
type Kind int

const (
	// ZeroValue is the process-wide default.
	ZeroValue Kind = iota
	Required
	NilFallback
	Custom
)

// String returns a stable, hyphenated token for k.
// Unknown values render as "Unknown(<n>)" and never panic.
func (k Kind) String() string {
	switch k {
	case ZeroValue:
		return "zero-value"
	case Required:
		return "required"
	case NilFallback:
		return "nil-fallback"
	case Custom:
		return "custom"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Parse parses a textual Kind. Matching is case-insensitive, surrounding
// whitespace is trimmed and "_" is accepted in place of "-".
//
// Example:
//
//	kind, err := Parse("nil_fallback")
//	if err != nil {
//	    // handle invalid configuration
//	}
//
//	_ = kind // NilFallback
func Parse(s string) (Kind, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ZeroValue, fmt.Errorf("strategy: empty kind")
	}

	switch strings.ReplaceAll(strings.ToLower(trimmed), "_", "-") {
	case "zero-value", "zero":
		return ZeroValue, nil
	case "required":
		return Required, nil
	case "nil-fallback", "nil":
		return NilFallback, nil
	case "custom":
		return Custom, nil
	default:
		return ZeroValue, fmt.Errorf("strategy: unknown kind %q", s)
	}
}

// MustParse is like Parse but panics on invalid input.
func MustParse(s string) Kind {
	kind, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return kind
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case ZeroValue, Required, NilFallback, Custom:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("strategy: cannot marshal unknown kind %d", int(k))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	value, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = value
	return nil
}

// New returns the built-in strategy for k.
func New(k Kind) (apis.Strategy, error) {
	switch k {
	case ZeroValue:
		return NewZeroValue(), nil
	case Required:
		return NewRequired(), nil
	case NilFallback:
		return NewNilFallback(), nil
	case Custom:
		return nil, fmt.Errorf("strategy: custom kind requires a function, use Func")
	default:
		return nil, fmt.Errorf("strategy: unknown kind %d", int(k))
	}
}

// KindOf reports the Kind of a strategy built by this package.
// Any other implementation is reported as Custom.
func KindOf(s apis.Strategy) Kind {
	switch s.(type) {
	case zeroValue, *zeroValue:
		return ZeroValue
	case required, *required:
		return Required
	case nilFallback, *nilFallback:
		return NilFallback
	default:
		return Custom
	}
}
