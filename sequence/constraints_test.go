package sequence

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstraints(t *testing.T) {
	t.Run("zero value is inactive", func(t *testing.T) {
		var c Constraints
		assert.False(t, c.Active())
		assert.NoError(t, c.Validate())
		assert.Equal(t, "none", c.String())

		_, ok := c.MinGap()
		assert.False(t, ok)
	})

	t.Run("with methods return copies", func(t *testing.T) {
		base := Constraints{}.WithMinGap(1)
		derived := base.WithMaxGap(5)

		_, ok := base.MaxGap()
		assert.False(t, ok)

		g, ok := derived.MaxGap()
		require.True(t, ok)
		assert.Equal(t, 5.0, g)
	})

	t.Run("zero-valued bound is still set", func(t *testing.T) {
		c := Constraints{}.WithMinGap(0)
		assert.True(t, c.Active())
		assert.NoError(t, c.Validate())
	})

	t.Run("string renders set bounds", func(t *testing.T) {
		c := Constraints{}.WithMinGap(2).WithMaxSpan(10)
		assert.Equal(t, "mingap=2 maxspan=10", c.String())
	})
}

func TestConstraintsValidate(t *testing.T) {
	tests := []struct {
		name  string
		c     Constraints
		field string
	}{
		{"negative mingap", Constraints{}.WithMinGap(-1), "mingap"},
		{"negative maxgap", Constraints{}.WithMaxGap(-0.5), "maxgap"},
		{"negative maxspan", Constraints{}.WithMaxSpan(-2), "maxspan"},
		{"mingap above maxgap", Constraints{}.WithMinGap(5).WithMaxGap(2), "mingap"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConstraints)

			var cerr *ConstraintError
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, tt.field, cerr.Field)
		})
	}

	t.Run("equal mingap and maxgap is valid", func(t *testing.T) {
		assert.NoError(t, Constraints{}.WithMinGap(3).WithMaxGap(3).Validate())
	})
}
