// Package vector_test contains unit tests for the Dense implementation of
// the Vector trait in the vector package.
package vector_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/densevec/vector"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidSize ensures that NewDense rejects negative sizes.
func TestNewDenseInvalidSize(t *testing.T) {
	_, err := vector.NewDense(-1)              // attempt to create with a negative size
	require.ErrorIs(t, err, vector.ErrBadSize) // expect ErrBadSize
}

// TestNewDenseZeroSize verifies that an empty vector is a legal state.
func TestNewDenseZeroSize(t *testing.T) {
	v, err := vector.NewDense(0) // the empty vector is valid
	require.NoError(t, err)      // assert creation succeeded

	require.Equal(t, 0, v.Size())     // size is zero
	require.Equal(t, 0, v.NonZeros()) // no stored non-zeros either
}

// TestSizeCapacity verifies Size() and the WithCapacity preallocation hint.
func TestSizeCapacity(t *testing.T) {
	v, err := vector.NewDense(3, vector.WithCapacity(10)) // 3 elements, capacity hint 10
	require.NoError(t, err)                               // assert creation succeeded

	require.Equal(t, 3, v.Size())                  // size follows the requested length
	require.GreaterOrEqual(t, v.Capacity(), 10)    // capacity honors the hint
	require.LessOrEqual(t, v.NonZeros(), v.Size()) // invariant: NonZeros <= Size
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on
// invalid access instead of panicking.
func TestAtSetOutOfRange(t *testing.T) {
	v, err := vector.NewDense(2) // create a 2-element vector
	require.NoError(t, err)      // assert creation succeeded

	_, err = v.At(-1)                             // negative index
	require.ErrorIs(t, err, vector.ErrOutOfRange) // expect ErrOutOfRange

	_, err = v.At(2)                              // index == size
	require.ErrorIs(t, err, vector.ErrOutOfRange) // expect ErrOutOfRange

	err = v.Set(2, 1.23)                          // write past the end
	require.ErrorIs(t, err, vector.ErrOutOfRange) // expect ErrOutOfRange

	err = v.Set(-1, 4.56)                         // write at a negative index
	require.ErrorIs(t, err, vector.ErrOutOfRange) // expect ErrOutOfRange
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	v, err := vector.NewDense(3) // create a 3-element vector
	require.NoError(t, err)      // ensure valid creation

	err = v.Set(1, 7.89)    // set the middle element
	require.NoError(t, err) // assert Set() succeeded

	got, err := v.At(1)         // read it back
	require.NoError(t, err)     // assert At() succeeded
	require.Equal(t, 7.89, got) // value round-trips
}

// TestNaNInfPolicy ensures the default numeric policy rejects non-finite
// values in Set and Scale, and that WithValidateNaNInf(false) lifts it.
func TestNaNInfPolicy(t *testing.T) {
	v, err := vector.NewDense(2) // default policy: validation on
	require.NoError(t, err)      // creation succeeded

	require.ErrorIs(t, v.Set(0, math.NaN()), vector.ErrNaNInf)  // NaN rejected
	require.ErrorIs(t, v.Set(0, math.Inf(1)), vector.ErrNaNInf) // +Inf rejected
	require.ErrorIs(t, v.Scale(math.Inf(-1)), vector.ErrNaNInf) // non-finite scalar rejected
	require.ErrorIs(t, v.Apply(func(int, float64) float64 {     // non-finite replacement rejected
		return math.NaN()
	}), vector.ErrNaNInf)

	relaxed, err := vector.NewDense(2, vector.WithValidateNaNInf(false)) // policy off
	require.NoError(t, err)                                              // creation succeeded
	require.NoError(t, relaxed.Set(0, math.Inf(1)))                      // +Inf now accepted
}

// TestFromSliceCopies ensures FromSlice detaches from the input slice and
// validates ingestion under the numeric policy.
func TestFromSliceCopies(t *testing.T) {
	src := []float64{1, 2, 3}                 // source values
	v, err := vector.FromSlice(src)           // ingest a copy
	require.NoError(t, err)                   // creation succeeded
	src[0] = 99                               // mutate the source afterwards
	got, err := v.At(0)                       // read the vector's element
	require.NoError(t, err)                   // assert At() succeeded
	require.Equal(t, 1.0, got)                // the vector is unaffected
	require.Equal(t, "[1, 2, 3]", v.String()) // Stringer formats all values

	_, err = vector.FromSlice([]float64{1, math.NaN()}) // non-finite ingestion
	require.ErrorIs(t, err, vector.ErrNaNInf)           // rejected under default policy
}

// TestResizeRoundTrip verifies that resize(n, true) followed by
// resize(originalSize, true) preserves all original values for indices
// < min(n, originalSize).
func TestResizeRoundTrip(t *testing.T) {
	v, err := vector.FromSlice([]float64{1, 2, 3}) // start with [1,2,3]
	require.NoError(t, err)                        // creation succeeded

	require.NoError(t, v.Resize(5, true))     // grow, preserving values
	require.Equal(t, 5, v.Size())             // new size applied
	got, err := v.At(3)                       // a freshly exposed element
	require.NoError(t, err)                   // read succeeded
	require.Equal(t, 0.0, got)                // new elements are zeroed
	require.NoError(t, v.Resize(3, true))     // shrink back, preserving values
	require.Equal(t, "[1, 2, 3]", v.String()) // originals survived the round trip
}

// TestResizeDiscard verifies preserve=false zeroes every element.
func TestResizeDiscard(t *testing.T) {
	v, err := vector.FromSlice([]float64{1, 2, 3}) // start with values
	require.NoError(t, err)                        // creation succeeded

	require.NoError(t, v.Resize(3, false)) // same size, discard values
	require.Equal(t, 0, v.NonZeros())      // everything zeroed
}

// TestResizeRejectsNegative ensures Resize/Extend/Reserve validate sizes.
func TestResizeRejectsNegative(t *testing.T) {
	v, err := vector.NewDense(2) // create a 2-element vector
	require.NoError(t, err)      // creation succeeded

	require.ErrorIs(t, v.Resize(-1, true), vector.ErrBadSize) // negative size
	require.ErrorIs(t, v.Extend(-1, true), vector.ErrBadSize) // negative delta
	require.ErrorIs(t, v.Reserve(-1), vector.ErrBadSize)      // negative capacity
}

// TestExtendEmpty verifies that [] extended by 3 without
// preservation yields size 3 with zeroed elements.
func TestExtendEmpty(t *testing.T) {
	v, err := vector.NewDense(0) // the empty vector
	require.NoError(t, err)      // creation succeeded

	require.NoError(t, v.Extend(3, false)) // grow by three
	require.Equal(t, 3, v.Size())          // size is now 3
	require.Equal(t, 0, v.NonZeros())      // new elements are zero per policy
}

// TestReservePreservesValues verifies that reserve(10) over
// [5,6] keeps size and values, capacity grows.
func TestReservePreservesValues(t *testing.T) {
	v, err := vector.FromSlice([]float64{5, 6}) // start with [5,6]
	require.NoError(t, err)                     // creation succeeded

	require.NoError(t, v.Reserve(10))           // grow capacity only
	require.Equal(t, 2, v.Size())               // size unchanged
	require.GreaterOrEqual(t, v.Capacity(), 10) // capacity satisfied
	require.Equal(t, "[5, 6]", v.String())      // values unchanged
}

// TestScale verifies that [1,2,3] scaled by 2 becomes [2,4,6].
func TestScale(t *testing.T) {
	v, err := vector.FromSlice([]float64{1, 2, 3}) // start with [1,2,3]
	require.NoError(t, err)                        // creation succeeded

	require.NoError(t, v.Scale(2))            // in-place scaling
	require.Equal(t, "[2, 4, 6]", v.String()) // every element doubled
}

// TestResetClearIdempotent verifies Reset zeroes in place and Clear is
// idempotent: clearing twice equals clearing once (size 0).
func TestResetClearIdempotent(t *testing.T) {
	v, err := vector.FromSlice([]float64{1, 2}) // start with values
	require.NoError(t, err)                     // creation succeeded

	v.Reset()                         // zero all elements
	require.Equal(t, 2, v.Size())     // size unchanged by Reset
	require.Equal(t, 0, v.NonZeros()) // all values zeroed

	v.Clear()                     // empty the vector
	require.Equal(t, 0, v.Size()) // size is zero
	v.Clear()                     // clear again
	require.Equal(t, 0, v.Size()) // idempotent: still zero
}

// TestClearThenResizeZeroed ensures memory exposed by a Resize after Clear
// holds no stale values from before the Clear.
func TestClearThenResizeZeroed(t *testing.T) {
	v, err := vector.FromSlice([]float64{9, 9, 9}) // non-zero content
	require.NoError(t, err)                        // creation succeeded

	v.Clear()                             // shrink to zero, capacity kept
	require.NoError(t, v.Resize(3, true)) // re-expose three elements
	require.Equal(t, 0, v.NonZeros())     // stale 9s must not reappear
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not
// share storage with the original.
func TestCloneIndependence(t *testing.T) {
	v, err := vector.FromSlice([]float64{1, 2}) // original values
	require.NoError(t, err)                     // creation succeeded

	clone := v.Clone()                  // deep copy
	require.NoError(t, clone.Set(0, 3)) // mutate the clone only

	got, err := v.At(0)        // read the original
	require.NoError(t, err)    // read succeeded
	require.Equal(t, 1.0, got) // original unaffected
}

// TestApplyRange verifies in-place visitation and read-only iteration with
// early exit.
func TestApplyRange(t *testing.T) {
	v, err := vector.FromSlice([]float64{1, 2, 3}) // start with [1,2,3]
	require.NoError(t, err)                        // creation succeeded

	// Square every element in place.
	require.NoError(t, v.Apply(func(_ int, x float64) float64 { return x * x }))
	require.Equal(t, "[1, 4, 9]", v.String()) // applied in index order

	// Range with early exit visits a prefix only.
	visited := 0
	v.Range(func(i int, _ float64) bool {
		visited++

		return i < 1 // stop after visiting index 1
	})
	require.Equal(t, 2, visited) // indices 0 and 1 were seen

	// A nil Apply visitor is a sentinel, not a panic.
	require.ErrorIs(t, v.Apply(nil), vector.ErrNilVisitor)
}

// TestOrientTag verifies the construction-time orientation tag.
func TestOrientTag(t *testing.T) {
	v, err := vector.NewDense(1, vector.WithOrient(vector.Row)) // tag as row vector
	require.NoError(t, err)                                     // creation succeeded

	require.Equal(t, vector.Row, v.Orient())         // tag is readable
	require.Equal(t, vector.Row, v.Clone().Orient()) // and survives Clone
}

// TestDataIsLiveView ensures Data() exposes the real backing storage.
func TestDataIsLiveView(t *testing.T) {
	v, err := vector.FromSlice([]float64{1, 2}) // start with values
	require.NoError(t, err)                     // creation succeeded

	data, err := v.Data() // borrow the backing slice
	require.NoError(t, err)
	data[0] = 42 // write through the slice

	got, err := v.At(0)         // read through the vector
	require.NoError(t, err)     // read succeeded
	require.Equal(t, 42.0, got) // the write is visible
}
