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

package slot_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"dirpx.dev/clsx/apis"
	"dirpx.dev/clsx/slot"
	"dirpx.dev/clsx/strategy"
)

var (
	intType    = reflect.TypeOf(0)
	stringType = reflect.TypeOf("")
)

func TestNormalize(t *testing.T) {
	spec, err := slot.Normalize("x")
	require.NoError(t, err)
	require.Equal(t, apis.SlotSpec{"x"}, spec)

	spec, err = slot.Normalize([]any{"y", 1})
	require.NoError(t, err)
	require.Equal(t, apis.SlotSpec{"y", 1}, spec)

	for _, bad := range []any{42, apis.SlotSpec{}, apis.SlotSpec{""}, apis.SlotSpec{7, 1}} {
		_, err := slot.Normalize(bad)
		require.ErrorIs(t, err, apis.ErrMalformedSlot, "Normalize(%#v)", bad)
	}
}

func TestParseInitform(t *testing.T) {
	cases := []struct {
		name      string
		raw       any
		wantFound bool
		wantValue any
	}{
		{"bare name", "x", false, nil},
		{"name only", apis.SlotSpec{"x"}, false, nil},
		{"initform", apis.SlotSpec{"x", 5}, true, 5},
		{"options only", apis.SlotSpec{"x", apis.KeyType, intType}, false, nil},
		{"initform and options", apis.SlotSpec{"x", 5, apis.KeyType, intType}, true, 5},
		{"nil initform", apis.SlotSpec{"x", nil}, true, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			found, v, err := slot.ParseInitform(tc.raw)
			require.NoError(t, err)
			require.Equal(t, tc.wantFound, found)
			require.Equal(t, tc.wantValue, v)
		})
	}
}

func TestParseType(t *testing.T) {
	typ, ok, err := slot.ParseType(apis.SlotSpec{"x", 5, apis.KeyDocumentation, "doc", apis.KeyType, intType})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, intType, typ)

	// A positional initform is skipped before options are read.
	typ, ok, err = slot.ParseType(apis.SlotSpec{"x", apis.KeyType})
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, typ)

	_, _, err = slot.ParseType(apis.SlotSpec{"x", apis.KeyType, "int"})
	require.ErrorIs(t, err, apis.ErrMalformedSlot)

	_, _, err = slot.ParseType(apis.SlotSpec{"x", "type", intType})
	require.ErrorIs(t, err, apis.ErrMalformedSlot)
}

func TestProcess_Resolution(t *testing.T) {
	zero := strategy.NewZeroValue()
	basic := strategy.NewBasicTypeInference()

	// (x): no strategies -> no initform, no type.
	s, err := slot.Process(apis.SlotSpec{"x"}, nil, nil)
	require.NoError(t, err)
	require.False(t, s.HasInitform)
	require.Nil(t, s.Type)
	require.Equal(t, apis.SlotSpec{"x"}, slot.Spec(s))

	// (x 5): initform 5; type inferred only when a type strategy is given.
	s, err = slot.Process(apis.SlotSpec{"x", 5}, zero, nil)
	require.NoError(t, err)
	require.True(t, s.HasInitform)
	require.Equal(t, 5, s.Initform)
	require.Nil(t, s.Type)

	s, err = slot.Process(apis.SlotSpec{"x", 5}, zero, basic)
	require.NoError(t, err)
	require.Equal(t, 5, s.Initform)
	require.Equal(t, intType, s.Type)

	// (x :type integer): initform is the integer zero value.
	s, err = slot.Process(apis.SlotSpec{"x", apis.KeyType, intType}, zero, basic)
	require.NoError(t, err)
	require.True(t, s.HasInitform)
	require.Equal(t, 0, s.Initform)
	require.Equal(t, intType, s.Type)

	// (x 5 :type integer): explicit initform is never overwritten.
	s, err = slot.Process(apis.SlotSpec{"x", 5, apis.KeyType, intType}, zero, basic)
	require.NoError(t, err)
	require.Equal(t, 5, s.Initform)
	require.Equal(t, intType, s.Type)

	// A declared type is kept even when it disagrees with the inferred one.
	s, err = slot.Process(apis.SlotSpec{"x", "five", apis.KeyType, intType}, zero, basic)
	require.NoError(t, err)
	require.Equal(t, intType, s.Type)
}

func TestProcess_Strategies(t *testing.T) {
	_, err := slot.Process(apis.SlotSpec{"x"}, strategy.NewZeroValue(), nil)
	require.ErrorIs(t, err, apis.ErrMissingDefault)

	s, err := slot.Process(apis.SlotSpec{"x"}, strategy.NewRequired(), nil)
	require.NoError(t, err)
	require.Equal(t, apis.Unbound{Slot: "x"}, s.Initform)

	s, err = slot.Process(apis.SlotSpec{"x"}, strategy.NewNilFallback(), nil)
	require.NoError(t, err)
	require.True(t, s.HasInitform)
	require.Nil(t, s.Initform)

	s, err = slot.Process(apis.SlotSpec{"name", apis.KeyType, stringType}, strategy.NewRequired(), nil)
	require.NoError(t, err)
	require.Equal(t, "", s.Initform)
}

func TestProcess_KeepsOptions(t *testing.T) {
	s, err := slot.Process(apis.SlotSpec{"x", 1, apis.KeyDocumentation, "the x", apis.KeyInitarg, "x0"}, nil, nil)
	require.NoError(t, err)
	require.Equal(t, []apis.Option{
		{Key: apis.KeyDocumentation, Value: "the x"},
		{Key: apis.KeyInitarg, Value: "x0"},
	}, s.Options)
	require.Equal(t, "x0", s.Initarg())
	require.Equal(t, apis.SlotSpec{"x", 1, apis.KeyDocumentation, "the x", apis.KeyInitarg, "x0"}, slot.Spec(s))
}
