package guard_test

import (
	"errors"
	"testing"

	"foodorders/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("entity not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_GuardedType(t *testing.T) {
	type reason struct {
		text  string
		guard guard.ConstructorGuard
	}

	errReasonNotConstructed := errors.New("reason must be created via newReason")

	newReason := func(text string) (reason, error) {
		if text == "" {
			return reason{}, errors.New("text is required")
		}
		return reason{text: text, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_passes", func(t *testing.T) {
		r, err := newReason("out of stock")
		require.NoError(t, err)
		require.NoError(t, r.guard.Validate(errReasonNotConstructed))
	})

	t.Run("zero_value_fails", func(t *testing.T) {
		var r reason
		err := r.guard.Validate(errReasonNotConstructed)
		require.Error(t, err)
		assert.Equal(t, errReasonNotConstructed, err)
	})
}
