// Package vector_test contains unit tests for the generic kernels written
// against the Vector trait.
package vector_test

import (
	"testing"

	"github.com/katalvlaran/densevec/vector"
	"github.com/stretchr/testify/require"
)

// TestDot verifies the inner product and its fail-fast validation.
func TestDot(t *testing.T) {
	a, err := vector.FromSlice([]float64{1, 2, 3}) // a = [1,2,3]
	require.NoError(t, err)                        // creation succeeded
	b, err := vector.FromSlice([]float64{4, 5, 6}) // b = [4,5,6]
	require.NoError(t, err)                        // creation succeeded

	got, err := vector.Dot(a, b) // 1*4 + 2*5 + 3*6
	require.NoError(t, err)      // kernel succeeded
	require.Equal(t, 32.0, got)  // expected inner product

	short, err := vector.NewDense(2) // a mismatching operand
	require.NoError(t, err)          // creation succeeded
	_, err = vector.Dot(a, short)    // sizes differ
	require.ErrorIs(t, err, vector.ErrSizeMismatch)

	_, err = vector.Dot(nil, b) // nil operand
	require.ErrorIs(t, err, vector.ErrNilVector)
}

// TestAXPY verifies y += alpha*x, including the aliased y == x case.
func TestAXPY(t *testing.T) {
	x, err := vector.FromSlice([]float64{1, 2})   // x = [1,2]
	require.NoError(t, err)                       // creation succeeded
	y, err := vector.FromSlice([]float64{10, 20}) // y = [10,20]
	require.NoError(t, err)                       // creation succeeded

	require.NoError(t, vector.AXPY(3, x, y)) // y = y + 3x
	require.Equal(t, "[13, 26]", y.String()) // expected update

	// Aliased operands: y == x reads pre-update values via the snapshot.
	require.NoError(t, vector.AXPY(1, y, y)) // y = y + y
	require.Equal(t, "[26, 52]", y.String()) // doubled, no feedback loop

	require.ErrorIs(t, vector.AXPY(1, x, nil), vector.ErrNilVector) // nil target
}

// TestReductions verifies Norm2, Sum and MaxAbs on a known vector.
func TestReductions(t *testing.T) {
	v, err := vector.FromSlice([]float64{3, -4}) // norm 5, sum -1, maxabs 4
	require.NoError(t, err)                      // creation succeeded

	norm, err := vector.Norm2(v) // sqrt(9 + 16)
	require.NoError(t, err)      // kernel succeeded
	require.Equal(t, 5.0, norm)  // Euclidean norm

	sum, err := vector.Sum(v) // 3 + (-4)
	require.NoError(t, err)   // kernel succeeded
	require.Equal(t, -1.0, sum)

	m, err := vector.MaxAbs(v) // max(|3|, |-4|)
	require.NoError(t, err)    // kernel succeeded
	require.Equal(t, 4.0, m)
}

// TestEqual verifies tolerance-based comparison.
func TestEqual(t *testing.T) {
	a, err := vector.FromSlice([]float64{1, 2})            // baseline
	require.NoError(t, err)                                // creation succeeded
	b, err := vector.FromSlice([]float64{1, 2.0000000001}) // tiny drift
	require.NoError(t, err)                                // creation succeeded

	eq, err := vector.Equal(a, b, 1e-9) // within tolerance
	require.NoError(t, err)             // kernel succeeded
	require.True(t, eq)                 // considered equal

	eq, err = vector.Equal(a, b, 0) // exact comparison
	require.NoError(t, err)         // kernel succeeded
	require.False(t, eq)            // drift detected

	c, err := vector.NewDense(3) // mismatching size
	require.NoError(t, err)      // creation succeeded
	_, err = vector.Equal(a, c, 0)
	require.ErrorIs(t, err, vector.ErrSizeMismatch)
}
