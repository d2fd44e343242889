package static

import (
	"errors"
	"math"
	"testing"

	"github.com/go-highway/rtneural/hwy"
	"github.com/go-highway/rtneural/hwy/contrib/nn"
	"github.com/go-highway/rtneural/internal/randweights"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dynamicFor builds the nn layer computing the same function as shape.
func dynamicFor[T hwy.Floats](t *testing.T, s Shape) nn.Layer[T] {
	t.Helper()
	switch s.Kind {
	case "dense":
		return nn.NewDense[T](s.In, s.Out)
	case "conv1d":
		return nn.NewConv1D[T](s.In, s.Out, s.Kernel, s.Dilation)
	case "gru":
		return nn.NewGRU[T](s.In, s.Out)
	case "lstm":
		return nn.NewLSTM[T](s.In, s.Out)
	}
	kind, err := nn.ParseActivation(s.Kind)
	require.NoError(t, err)
	return nn.NewActivation[T](kind, s.Out)
}

func sequence[T hwy.Floats](frames, size int) [][]T {
	seq := make([][]T, frames)
	for f := range seq {
		seq[f] = make([]T, size)
		for i := range seq[f] {
			seq[f][i] = T(2 * math.Sin(float64(f*size+i)*0.61))
		}
	}
	return seq
}

func run[T hwy.Floats](l nn.Layer[T], seq [][]T) [][]T {
	out := make([][]T, len(seq))
	for f, x := range seq {
		out[f] = make([]T, l.OutSize())
		l.Forward(x, out[f])
	}
	return out
}

func requireClose[T hwy.Floats](t *testing.T, want, got [][]T, tol float64) {
	t.Helper()
	for f := range want {
		for i := range want[f] {
			w, g := float64(want[f][i]), float64(got[f][i])
			if math.Abs(w-g) > tol*math.Max(1, math.Abs(w)) {
				t.Fatalf("frame %d element %d: static %v, dynamic %v", f, i, g, w)
			}
		}
	}
}

func TestMatchesDynamic(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testMatchesDynamic[float32](t, 1e-5) })
	t.Run("float64", func(t *testing.T) { testMatchesDynamic[float64](t, 1e-9) })
}

func testMatchesDynamic[T hwy.Floats](t *testing.T, tol float64) {
	for i, s := range Shapes() {
		t.Run(s.String(), func(t *testing.T) {
			st, err := New[T](s)
			require.NoError(t, err)
			dyn := dynamicFor[T](t, s)
			require.Equal(t, dyn.Name(), st.Name())
			require.Equal(t, dyn.InSize(), st.InSize())
			require.Equal(t, dyn.OutSize(), st.OutSize())

			require.NoError(t, randweights.Randomise[T](randweights.New(uint64(i)), st))
			require.NoError(t, randweights.Randomise[T](randweights.New(uint64(i)), dyn))

			seq := sequence[T](24, s.In)
			requireClose(t, run(dyn, seq), run(st, seq), tol)
		})
	}
}

func TestNewUnknownShape(t *testing.T) {
	_, err := New[float32](Shape{Kind: "gru", In: 3, Out: 3})
	assert.True(t, errors.Is(err, ErrNoShape), "got %v", err)
	assert.Contains(t, err.Error(), "gru 3x3")
}

func filled[T hwy.Floats](rows, cols int, v T) [][]T {
	m := make([][]T, rows)
	for i := range m {
		m[i] = make([]T, cols)
		for j := range m[i] {
			m[i][j] = v
		}
	}
	return m
}

func TestGRUGoldenTrace(t *testing.T) {
	want := []float32{0.04734437178909115, 0.026151407209174495, 0.014417456753273317}
	g := NewGRU1x2[float32]()
	require.NoError(t, g.SetWVals(filled[float32](1, 6, 0.1)))
	require.NoError(t, g.SetUVals(filled[float32](2, 6, 0.1)))
	require.NoError(t, g.SetBVals(filled[float32](2, 6, 0)))
	g.Reset()
	out := make([]float32, 2)
	for step, x := range []float32{1, 0, 0} {
		g.Forward([]float32{x}, out)
		assert.InDelta(t, want[step], out[0], 1e-6)
		assert.InDelta(t, want[step], out[1], 1e-6)
	}
}

func TestGRUGetters(t *testing.T) {
	src := randweights.New(17)
	w := randweights.Matrix[float32](src, 5, 21)
	u := randweights.Matrix[float32](src, 7, 21)
	b := randweights.Matrix[float32](src, 2, 21)
	g := NewGRU5x7[float32]()
	require.NoError(t, g.SetWVals(w))
	require.NoError(t, g.SetUVals(u))
	require.NoError(t, g.SetBVals(b))
	for k := range 21 {
		for i := range 5 {
			assert.Equal(t, w[i][k], g.WVal(i, k))
		}
		for i := range 7 {
			assert.Equal(t, u[i][k], g.UVal(i, k))
		}
		assert.Equal(t, b[0][k], g.BVal(0, k))
		assert.Equal(t, b[1][k], g.BVal(1, k))
	}

	g1 := NewGRU1x3[float32]()
	require.NoError(t, g1.SetWVals(randweights.Matrix[float32](src, 1, 9)))
	assert.ErrorIs(t, g1.SetWVals(filled[float32](2, 9, 0)), nn.ErrShape)
}

func TestLSTMGetters(t *testing.T) {
	src := randweights.New(18)
	w := randweights.Matrix[float32](src, 1, 12)
	u := randweights.Matrix[float32](src, 3, 12)
	b := randweights.Vector[float32](src, 12)
	l := NewLSTM1x3[float32]()
	require.NoError(t, l.SetWVals(w))
	require.NoError(t, l.SetUVals(u))
	require.NoError(t, l.SetBVals(b))
	for k := range 12 {
		assert.Equal(t, w[0][k], l.WVal(0, k))
		assert.Equal(t, u[2][k], l.UVal(2, k))
		assert.Equal(t, b[k], l.BVal(k))
	}
}

func TestPaddingStaysZero(t *testing.T) {
	g := NewGRU5x7[float32]()
	require.NoError(t, randweights.Randomise[float32](randweights.New(3), g))
	run[float32](g, sequence[float32](10, 5))
	assert.Zero(t, g.Outs[1][3])

	l := NewLSTM5x7[float32]()
	require.NoError(t, randweights.Randomise[float32](randweights.New(4), l))
	run[float32](l, sequence[float32](10, 5))
	assert.Zero(t, l.Outs[1][3])

	s := NewSoftmax5[float32]()
	run[float32](s, sequence[float32](1, 5))
	assert.Equal(t, hwy.Vec4[float32]{s.Outs[1][0]}, s.Outs[1])
}

func TestResetAndClone(t *testing.T) {
	for _, l := range []nn.Layer[float32]{NewGRU8x8[float32](), NewLSTM8x8[float32](), NewConv1D8x8K7D2[float32]()} {
		t.Run(l.Name(), func(t *testing.T) {
			require.NoError(t, randweights.Randomise[float32](randweights.New(9), l))
			fresh := l.Clone()
			seq := sequence[float32](16, 8)

			run(l, sequence[float32](5, 8))
			mid := l.Clone()
			want := run(mid, seq)

			l.Reset()
			requireClose(t, run(fresh, seq), run(l, seq), 0)

			l.Reset()
			run(l, sequence[float32](5, 8))
			requireClose(t, want, run(l, seq), 0)
		})
	}
}

func TestForwardLanesChain(t *testing.T) {
	src := randweights.New(33)
	gru := NewGRU1x8[float32]()
	dense := NewDense8x1[float32]()
	require.NoError(t, randweights.Randomise[float32](src, gru))
	require.NoError(t, randweights.Randomise[float32](src, dense))
	gru2 := gru.Clone()
	dense2 := dense.Clone()

	hidden := make([]float32, 8)
	out := make([]float32, 1)
	for _, x := range []float32{0.5, -1, 0.25, 0} {
		in := [1]hwy.Vec4[float32]{{x}}
		gru.ForwardLanes(&in)
		dense.ForwardLanes(&gru.Outs)

		gru2.Forward([]float32{x}, hidden)
		dense2.Forward(hidden, out)
		assert.Equal(t, out[0], dense.Outs[0][0])
	}
}

func TestForwardNoAllocs(t *testing.T) {
	for _, s := range []Shape{
		{Kind: "gru", In: 16, Out: 16},
		{Kind: "lstm", In: 5, Out: 7},
		{Kind: "conv1d", In: 8, Out: 8, Kernel: 7, Dilation: 2},
		{Kind: "softmax", In: 16, Out: 16},
	} {
		l, err := New[float32](s)
		require.NoError(t, err)
		in := sequence[float32](1, s.In)[0]
		out := make([]float32, s.Out)
		allocs := testing.AllocsPerRun(100, func() { l.Forward(in, out) })
		assert.Zero(t, allocs, s.String())
	}
}

func BenchmarkStaticVsDynamic(b *testing.B) {
	for _, s := range []Shape{
		{Kind: "gru", In: 1, Out: 16},
		{Kind: "gru", In: 16, Out: 16},
		{Kind: "lstm", In: 16, Out: 16},
		{Kind: "dense", In: 16, Out: 16},
	} {
		st, _ := New[float32](s)
		dyn := map[string]nn.Layer[float32]{
			"gru":   nn.NewGRU[float32](s.In, s.Out),
			"lstm":  nn.NewLSTM[float32](s.In, s.Out),
			"dense": nn.NewDense[float32](s.In, s.Out),
		}[s.Kind]
		in := sequence[float32](1, s.In)[0]
		out := make([]float32, s.Out)
		for name, l := range map[string]nn.Layer[float32]{"static": st, "dynamic": dyn} {
			b.Run(s.String()+"/"+name, func(b *testing.B) {
				for b.Loop() {
					l.Forward(in, out)
				}
			})
		}
	}
}
