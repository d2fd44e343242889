package nn

import (
	"math"
	"testing"

	"github.com/go-highway/rtneural/internal/randweights"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLSTMZeroWeights(t *testing.T) {
	l := NewLSTM[float64](3, 4)
	out := make([]float64, 4)
	l.Forward([]float64{1, 2, 3}, out)
	assert.Equal(t, make([]float64, 4), out)

	// With every gate at 0.5 and a zero candidate, the cell halves and the
	// output is 0.5*tanh(cell).
	_, cell := l.State()
	for i := range cell {
		cell[i] = 1
	}
	want := 1.0
	for range 5 {
		l.Forward(make([]float64, 3), out)
		want *= 0.5
		for _, v := range out {
			assert.InDelta(t, 0.5*math.Tanh(want), v, 1e-12)
		}
	}
}

func TestLSTMMatchesReference(t *testing.T) {
	for _, sz := range [][2]int{{1, 3}, {1, 8}, {5, 7}, {8, 8}, {4, 13}} {
		in, out := sz[0], sz[1]
		src := randweights.New(uint64(in*31 + out))
		w := randweights.Matrix[float64](src, in, 4*out)
		u := randweights.Matrix[float64](src, out, 4*out)
		b := randweights.Vector[float64](src, 4*out)
		seq := sineInput[float64](12, in)
		want := referenceLSTM(w, u, b, seq)
		for _, k := range kernelSets[float64]() {
			l := NewLSTM(in, out, WithKernels(k))
			require.NoError(t, l.SetWVals(w))
			require.NoError(t, l.SetUVals(u))
			require.NoError(t, l.SetBVals(b))
			assertClose(t, run[float64](l, seq), want, 1e-9)
		}
	}
}

func TestLSTMGetters(t *testing.T) {
	src := randweights.New(9)
	l := NewLSTM[float32](2, 3)
	w := randweights.Matrix[float32](src, 2, 12)
	u := randweights.Matrix[float32](src, 3, 12)
	b := randweights.Vector[float32](src, 12)
	require.NoError(t, l.SetWVals(w))
	require.NoError(t, l.SetUVals(u))
	require.NoError(t, l.SetBVals(b))
	for k := range 12 {
		assert.Equal(t, w[1][k], l.WVal(1, k))
		assert.Equal(t, u[2][k], l.UVal(2, k))
		assert.Equal(t, b[k], l.BVal(k))
	}
	assert.ErrorIs(t, l.SetBVals(b[:11]), ErrShape)
}

func TestLSTMResetAndClone(t *testing.T) {
	src := randweights.New(10)
	l := NewLSTM[float32](3, 5)
	require.NoError(t, randweights.Randomise[float32](src, l))
	fresh := l.Clone()
	seq := sineInput[float32](8, 3)

	run[float32](l, seq)
	hidden, cell := l.State()
	assert.NotZero(t, hidden[0])
	assert.NotZero(t, cell[0])

	mid := l.Clone()
	l.Reset()
	hidden, cell = l.State()
	assert.Equal(t, make([]float32, 5), hidden)
	assert.Equal(t, make([]float32, 5), cell)
	assertClose(t, run[float32](l, seq), run(fresh, seq), 0)

	h, _ := mid.(*LSTM[float32]).State()
	assert.NotZero(t, h[0], "clone state must survive Reset of the source")
}

func TestLSTMGatesHaveSingleBias(t *testing.T) {
	l := NewLSTM[float32](2, 4)
	c := l.Clone().(*LSTM[float32])
	for _, g := range []gate[float32]{l.i, l.f, l.c, l.o, c.i, c.f, c.c, c.o} {
		assert.Len(t, g.b0, 4)
		assert.Nil(t, g.b1)
	}

	gru := NewGRU[float32](2, 4)
	for _, g := range []gate[float32]{gru.z, gru.r, gru.c} {
		assert.Len(t, g.b1, 4)
	}
}
