package nn

import (
	"testing"

	"github.com/go-highway/rtneural/internal/randweights"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filled[T float32 | float64](rows, cols int, v T) [][]T {
	m := make([][]T, rows)
	for i := range m {
		m[i] = make([]T, cols)
		for j := range m[i] {
			m[i][j] = v
		}
	}
	return m
}

// Pinned three-step trace for in=1, out=2, all weights 0.1, zero bias and
// input 1, 0, 0.
var gruGolden = []float64{
	0.04734437178909115,
	0.026151407209174495,
	0.014417456753273317,
}

func TestGRUGoldenTrace(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testGRUGolden[float32](t) })
	t.Run("float64", func(t *testing.T) { testGRUGolden[float64](t) })
}

func testGRUGolden[T float32 | float64](t *testing.T) {
	for _, k := range kernelSets[T]() {
		g := NewGRU(1, 2, WithKernels(k))
		require.NoError(t, g.SetWVals(filled[T](1, 6, 0.1)))
		require.NoError(t, g.SetUVals(filled[T](2, 6, 0.1)))
		require.NoError(t, g.SetBVals(filled[T](2, 6, 0)))
		g.Reset()
		out := make([]T, 2)
		for step, x := range []T{1, 0, 0} {
			g.Forward([]T{x}, out)
			for i := range out {
				assert.InDelta(t, gruGolden[step], float64(out[i]), 1e-6, "%s step %d unit %d", k.Name, step, i)
			}
		}
	}
}

func TestGRUZeroWeightsHalves(t *testing.T) {
	g := NewGRU[float32](3, 5)
	out := make([]float32, 5)
	in := []float32{0.3, -2, 1}
	g.Forward(in, out)
	assert.Equal(t, make([]float32, 5), out, "zero weights from zero state")

	for i := range g.State() {
		g.State()[i] = 1
	}
	want := float32(1)
	for range 20 {
		g.Forward(make([]float32, 3), out)
		want *= 0.5
		for _, v := range out {
			assert.InDelta(t, want, v, 1e-6)
		}
	}
	assert.Less(t, out[0], float32(1e-5))
}

func TestGRUMatchesReference(t *testing.T) {
	for _, sz := range [][2]int{{1, 2}, {1, 8}, {5, 7}, {8, 8}, {3, 17}} {
		in, out := sz[0], sz[1]
		src := randweights.New(uint64(in*100 + out))
		w := randweights.Matrix[float64](src, in, 3*out)
		u := randweights.Matrix[float64](src, out, 3*out)
		b := randweights.Matrix[float64](src, 2, 3*out)
		seq := sineInput[float64](12, in)
		want := referenceGRU(w, u, b, seq)
		for _, k := range kernelSets[float64]() {
			g := NewGRU(in, out, WithKernels(k))
			require.NoError(t, g.SetWVals(w))
			require.NoError(t, g.SetUVals(u))
			require.NoError(t, g.SetBVals(b))
			assertClose(t, run[float64](g, seq), want, 1e-9)
		}
	}
}

func TestGRUGetters(t *testing.T) {
	src := randweights.New(2)
	g := NewGRU[float32](3, 4)
	w := randweights.Matrix[float32](src, 3, 12)
	u := randweights.Matrix[float32](src, 4, 12)
	b := randweights.Matrix[float32](src, 2, 12)
	require.NoError(t, g.SetWVals(w))
	require.NoError(t, g.SetUVals(u))
	require.NoError(t, g.SetBVals(b))
	for i := range 3 {
		for k := range 12 {
			assert.Equal(t, w[i][k], g.WVal(i, k))
		}
	}
	for i := range 4 {
		for k := range 12 {
			assert.Equal(t, u[i][k], g.UVal(i, k))
		}
	}
	for i := range 2 {
		for k := range 12 {
			assert.Equal(t, b[i][k], g.BVal(i, k))
		}
	}
}

func TestGRUShapeErrors(t *testing.T) {
	g := NewGRU[float32](2, 3)
	assert.ErrorIs(t, g.SetWVals(filled[float32](2, 6, 0)), ErrShape)
	assert.ErrorIs(t, g.SetUVals(filled[float32](3, 8, 0)), ErrShape)
	assert.ErrorIs(t, g.SetBVals(filled[float32](1, 9, 0)), ErrShape)
}

func TestGRUResetMatchesFresh(t *testing.T) {
	src := randweights.New(3)
	g := NewGRU[float32](4, 6)
	require.NoError(t, randweights.Randomise[float32](src, g))
	fresh := g.Clone()

	seq := sineInput[float32](10, 4)
	run[float32](g, sineInput[float32](7, 4))
	g.Reset()
	assertClose(t, run[float32](g, seq), run(fresh, seq), 0)
}

func TestGRUCloneDoesNotAlias(t *testing.T) {
	src := randweights.New(4)
	g := NewGRU[float32](2, 3)
	require.NoError(t, randweights.Randomise[float32](src, g))
	run[float32](g, sineInput[float32](3, 2))

	c := g.Clone().(*GRU[float32])
	ref := g.Clone()
	assert.Equal(t, g.State(), c.State())
	w01 := g.WVal(0, 1)

	require.NoError(t, g.SetWVals(filled[float32](2, 9, 0)))
	g.Reset()
	seq := sineInput[float32](5, 2)
	run[float32](g, seq)

	assert.Equal(t, w01, c.WVal(0, 1))
	assertClose(t, run[float32](c, seq), run(ref, seq), 0)
}
