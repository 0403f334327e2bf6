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

package expander_test

import (
	"bytes"
	"errors"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"dirpx.dev/clsx/apis"
	"dirpx.dev/clsx/config"
	"dirpx.dev/clsx/expander"
	"dirpx.dev/clsx/object"
	"dirpx.dev/clsx/override"
	"dirpx.dev/clsx/registry"
	"dirpx.dev/clsx/strategy"
)

var intType = reflect.TypeOf(0)

func newDefiner(cfg apis.Config) (apis.Definer, apis.Registry) {
	reg := registry.New()
	return expander.New(cfg, reg, nil), reg
}

func TestDefine_RegistersProcessedSlots(t *testing.T) {
	def, reg := newDefiner(config.DefaultConfig())

	c, err := def.Define("point", nil, []apis.SlotSpec{
		{"x", apis.KeyType, intType},
		{"y", 5},
		{"label", "origin", apis.KeyDocumentation, "a label"},
	}, expander.WithDocumentation("a 2D point"))
	require.NoError(t, err)

	got, ok := reg.Lookup("point")
	require.True(t, ok)
	require.Same(t, c, got)
	require.Equal(t, "point", c.Name)
	require.Equal(t, "a 2D point", c.Documentation)
	require.False(t, c.Hidden)

	require.Len(t, c.Slots, 3)
	require.Equal(t, 0, c.Slots[0].Initform)
	require.Equal(t, 5, c.Slots[1].Initform)
	require.Equal(t, intType, c.Slots[1].Type)
	require.Equal(t, reflect.TypeOf(""), c.Slots[2].Type)
}

func TestDefine_ZeroValueFailsWithoutType(t *testing.T) {
	def, reg := newDefiner(config.DefaultConfig())

	_, err := def.Define("bad", nil, []apis.SlotSpec{{"x"}})
	var derr *apis.DefinitionError
	require.ErrorAs(t, err, &derr)
	require.Equal(t, "bad", derr.Class)
	require.Equal(t, "x", derr.Slot)
	require.ErrorIs(t, err, apis.ErrMissingDefault)

	_, ok := reg.Lookup("bad")
	require.False(t, ok, "failed definitions must not register")
}

func TestDefine_PerCallStrategies(t *testing.T) {
	def, _ := newDefiner(config.DefaultConfig())

	c, err := def.Define("conn", nil, []apis.SlotSpec{{"dsn"}},
		expander.WithInitform(strategy.NewRequired()))
	require.NoError(t, err)
	require.Equal(t, apis.Unbound{Slot: "dsn"}, c.Slots[0].Initform)

	o, err := object.New(c, nil)
	require.NoError(t, err)
	_, err = o.Get("dsn")
	var uerr *apis.UnboundFieldError
	require.ErrorAs(t, err, &uerr)

	c, err = def.Define("plain", nil, []apis.SlotSpec{{"x"}, {"y", 1}},
		expander.WithInitform(nil), expander.WithTypeInference(nil))
	require.NoError(t, err)
	require.False(t, c.Slots[0].HasInitform)
	require.Nil(t, c.Slots[1].Type)
}

func TestDefine_SupersAndErrors(t *testing.T) {
	def, _ := newDefiner(config.DefaultConfig())

	base, err := def.Define("base", nil, nil)
	require.NoError(t, err)
	child, err := def.Define("child", []string{"base"}, nil)
	require.NoError(t, err)
	require.Equal(t, []*apis.Class{base}, child.Supers)

	_, err = def.Define("orphan", []string{"nowhere"}, nil)
	require.ErrorIs(t, err, apis.ErrUnknownSuper)

	_, err = def.Define("dup", nil, []apis.SlotSpec{{"x", 1}, {"x", 2}})
	require.ErrorIs(t, err, apis.ErrDuplicateSlot)

	_, err = def.Define("", nil, nil)
	require.ErrorIs(t, err, expander.ErrEmptyName)

	_, err = def.Define("malformed", nil, []apis.SlotSpec{{"x", "type", intType}})
	require.ErrorIs(t, err, apis.ErrMalformedSlot)
}

func TestDefine_CyclicTwice(t *testing.T) {
	def, reg := newDefiner(config.DefaultConfig())

	first, err := def.Define("foo", []string{"foo"}, []apis.SlotSpec{{"a", 1}})
	require.NoError(t, err)
	require.Empty(t, first.Supers)
	_, ok := override.Original(reg, "foo")
	require.False(t, ok, "no original before a layered redefinition")

	second, err := def.Define("foo", []string{"foo"}, []apis.SlotSpec{{"b", 2}})
	require.NoError(t, err)
	require.True(t, second.Hidden)
	require.True(t, strings.HasPrefix(second.Name, "foo"+config.DefaultHiddenSeparator))

	bound, _ := reg.Lookup("foo")
	require.Same(t, second, bound)

	orig, ok := override.Original(reg, "foo")
	require.True(t, ok)
	require.Same(t, first, orig)

	// The hidden name is not left in the registry.
	_, ok = reg.Lookup(second.Name)
	require.False(t, ok)
	require.Equal(t, 1, reg.Count())

	// Layered instances see slots of both versions.
	o, err := object.New(bound, nil)
	require.NoError(t, err)
	a, err := o.Get("a")
	require.NoError(t, err)
	require.Equal(t, 1, a)
}

func TestDefine_TransitiveCycle(t *testing.T) {
	def, reg := newDefiner(config.DefaultConfig())

	base, err := def.Define("base", nil, nil)
	require.NoError(t, err)
	_, err = def.Define("mixin", []string{"base"}, nil)
	require.NoError(t, err)

	layered, err := def.Define("base", []string{"mixin"}, nil)
	require.NoError(t, err)
	require.True(t, layered.Hidden)

	bound, _ := reg.Lookup("base")
	require.Same(t, layered, bound)
	// The previous base is reachable only through mixin, not directly.
	_, ok := override.Original(reg, "base")
	require.False(t, ok)
	require.Contains(t, bound.Precedence(), base)
}

func TestDefine_CyclicIgnoresPerCallStrategies(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	reg := registry.New()
	def := expander.New(config.DefaultConfig(), reg, log)

	_, err := def.Define("svc", nil, []apis.SlotSpec{{"x", 1}})
	require.NoError(t, err)

	// Required would make this succeed; the default zero-value strategy
	// is used instead and fails on the untyped slot.
	_, err = def.Define("svc", []string{"svc"}, []apis.SlotSpec{{"y"}},
		expander.WithInitform(strategy.NewRequired()))
	require.ErrorIs(t, err, apis.ErrMissingDefault)
	require.Contains(t, buf.String(), "per-call inference options ignored")

	// The failed layered definition leaves the old binding in place.
	c, _ := reg.Lookup("svc")
	require.False(t, c.Hidden)
	require.Equal(t, 1, reg.Count())
}

func TestDefine_CustomStrategy(t *testing.T) {
	def, _ := newDefiner(config.NewConfig(config.WithInitform(strategy.Func(
		func(slot string, _ reflect.Type) (any, error) {
			if slot == "fail" {
				return nil, errors.New("custom failure")
			}
			return "default-" + slot, nil
		}))))

	c, err := def.Define("thing", nil, []apis.SlotSpec{{"name"}})
	require.NoError(t, err)
	require.Equal(t, "default-name", c.Slots[0].Initform)

	_, err = def.Define("thing", nil, []apis.SlotSpec{{"fail"}})
	var derr *apis.DefinitionError
	require.ErrorAs(t, err, &derr)
	require.Equal(t, "thing", derr.Class)
	require.EqualError(t, derr.Err, "custom failure")
}
