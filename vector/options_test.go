// Package vector_test contains unit tests for the functional options and
// their documented defaults.
package vector_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/densevec/vector"
	"github.com/stretchr/testify/require"
)

// TestDefaultOptions verifies the documented zero-config behavior.
func TestDefaultOptions(t *testing.T) {
	v, err := vector.NewDense(2) // no options
	require.NoError(t, err)      // creation succeeded

	require.Equal(t, vector.DefaultOrient, v.Orient())         // default tag is Col
	require.ErrorIs(t, v.Set(0, math.NaN()), vector.ErrNaNInf) // validation on by default
}

// TestWithCapacityPanicsOnNegative ensures option misuse is a programmer
// error surfaced at option construction, not later.
func TestWithCapacityPanicsOnNegative(t *testing.T) {
	require.Panics(t, func() { vector.WithCapacity(-1) }) // negative hint is nonsensical
}

// TestWithOrientPanicsOnUnknown ensures only the declared tags are legal.
func TestWithOrientPanicsOnUnknown(t *testing.T) {
	require.Panics(t, func() { vector.WithOrient(vector.Orient(42)) }) // unknown tag
}

// TestOptionsLastWriteWins verifies options apply in declaration order.
func TestOptionsLastWriteWins(t *testing.T) {
	v, err := vector.NewDense(1,
		vector.WithOrient(vector.Row), // first write
		vector.WithOrient(vector.Col), // overridden by the last write
	)
	require.NoError(t, err)                  // creation succeeded
	require.Equal(t, vector.Col, v.Orient()) // the last option won
}
