package guard_test

import (
	"errors"
	"testing"

	"shiftbooker/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		// When
		err := g.Validate(customError)

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample shows how the guard backs a value object
// that must be built through its constructor.
func TestConstructorGuardUsageExample(t *testing.T) {
	type shiftWindow struct {
		start string
		end   string
		guard guard.ConstructorGuard
	}

	var errShiftWindowNotConstructed = errors.New("shiftWindow must be created via newShiftWindow")

	newShiftWindow := func(start, end string) (shiftWindow, error) {
		if start == "" || end == "" {
			return shiftWindow{}, errors.New("start and end are required")
		}
		return shiftWindow{
			start: start,
			end:   end,
			guard: guard.NewConstructorGuard(),
		}, nil
	}

	validateShiftWindow := func(w shiftWindow) error {
		return w.guard.Validate(errShiftWindowNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		// When
		w, err := newShiftWindow("07:00", "15:30")

		// Then
		require.NoError(t, err)
		require.NoError(t, validateShiftWindow(w))
		assert.Equal(t, "07:00", w.start)
		assert.Equal(t, "15:30", w.end)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		// Given
		var w shiftWindow // zero value

		// When
		err := validateShiftWindow(w)

		// Then
		require.Error(t, err)
		assert.Equal(t, errShiftWindowNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newShiftWindow("", "15:30")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "start and end are required")
	})
}
