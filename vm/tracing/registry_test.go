// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tracing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryDropsWhenDisabled(t *testing.T) {
	require := require.New(t)

	r := NewRegistry[int]("test")
	var got []int
	r.Using(ListenerFunc[int](func(e int) { got = append(got, e) }), func() {
		r.Emit(1)
	})
	require.Empty(got)

	r.EnableTracing(true)
	r.Emit(2)
	require.Empty(got)
}

func TestRegistryUsing(t *testing.T) {
	require := require.New(t)

	r := NewRegistry[int]("test")
	r.EnableTracing(true)
	require.False(r.Listening())

	var got []int
	r.Using(ListenerFunc[int](func(e int) { got = append(got, e) }), func() {
		require.True(r.Listening())
		r.Emit(1)
		r.Emit(2)
	})
	require.False(r.Listening())
	require.Equal([]int{1, 2}, got)

	r.Emit(3)
	require.Equal([]int{1, 2}, got)
}

func TestRegistryUsingRestoresPrevious(t *testing.T) {
	require := require.New(t)

	r := NewRegistry[string]("test")
	r.EnableTracing(true)

	var outer, inner []string
	r.Using(ListenerFunc[string](func(e string) { outer = append(outer, e) }), func() {
		r.Emit("a")
		r.Using(ListenerFunc[string](func(e string) { inner = append(inner, e) }), func() {
			r.Emit("b")
		})
		r.Emit("c")
	})
	require.Equal([]string{"a", "c"}, outer)
	require.Equal([]string{"b"}, inner)
}

func TestRegistryUsingPanic(t *testing.T) {
	require := require.New(t)

	r := NewRegistry[int]("test")
	r.EnableTracing(true)
	require.Panics(func() {
		r.Using(ListenerFunc[int](func(int) {}), func() {
			panic("abort")
		})
	})
	require.False(r.Listening())
}

func TestRegistryEnableIdempotent(t *testing.T) {
	require := require.New(t)

	r := NewRegistry[int]("gasometer")
	require.Equal("gasometer", r.Name())
	require.False(r.Enabled())
	r.EnableTracing(true)
	r.EnableTracing(true)
	require.True(r.Enabled())
	r.EnableTracing(false)
	require.False(r.Enabled())
}
