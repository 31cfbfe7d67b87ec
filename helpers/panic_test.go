package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrPanic(t *testing.T) {
	t.Run("empty_panics", func(t *testing.T) {
		assert.PanicsWithValue(t, "data root is required", func() {
			StrPanic("", "data root is required")
		})
	})
	t.Run("non_empty_returns_value", func(t *testing.T) {
		require.Equal(t, "/tmp", StrPanic("/tmp", "data root is required"))
	})
}

func TestNilPanic(t *testing.T) {
	t.Run("nil_interface_panics", func(t *testing.T) {
		var v any
		assert.PanicsWithValue(t, "source is required", func() {
			NilPanic(v, "source is required")
		})
	})
	t.Run("nil_func_panics", func(t *testing.T) {
		var f func() int
		assert.PanicsWithValue(t, "factory is required", func() {
			NilPanic(f, "factory is required")
		})
	})
	t.Run("nil_map_panics", func(t *testing.T) {
		var m map[string]string
		assert.PanicsWithValue(t, "values are required", func() {
			NilPanic(m, "values are required")
		})
	})
	t.Run("nil_pointer_panics", func(t *testing.T) {
		var p *int
		assert.PanicsWithValue(t, "pointer is required", func() {
			NilPanic(p, "pointer is required")
		})
	})
	t.Run("non_nil_returns_value", func(t *testing.T) {
		m := map[string]string{"a": "b"}
		got := NilPanic(m, "values are required")
		require.Equal(t, m, got)
	})
	t.Run("value_types_never_panic", func(t *testing.T) {
		require.Equal(t, 0, NilPanic(0, "int is required"))
	})
}
