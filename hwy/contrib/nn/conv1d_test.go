package nn

import (
	"fmt"
	"testing"

	"github.com/go-highway/rtneural/internal/randweights"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConv1DImpulse(t *testing.T) {
	for _, tc := range []struct{ kernel, dilation int }{{1, 1}, {3, 1}, {3, 2}, {4, 3}, {7, 2}} {
		t.Run(fmt.Sprintf("k%d_d%d", tc.kernel, tc.dilation), func(t *testing.T) {
			const in, out = 2, 3
			src := randweights.New(uint64(tc.kernel*10 + tc.dilation))
			w := randweights.Tensor3[float64](src, out, in, tc.kernel)
			l := NewConv1D[float64](in, out, tc.kernel, tc.dilation)
			require.NoError(t, l.SetWeights(w))

			// Impulse on channel 1 only.
			steps := (tc.kernel-1)*tc.dilation + 5
			got := make([]float64, out)
			for step := range steps {
				x := []float64{0, 0}
				if step == 0 {
					x[1] = 1
				}
				l.Forward(x, got)
				for o := range out {
					want := 0.0
					if step%tc.dilation == 0 && step/tc.dilation < tc.kernel {
						want = w[o][1][step/tc.dilation]
					}
					assert.Equal(t, want, got[o], "step %d output %d", step, o)
				}
			}
		})
	}
}

func TestConv1DBiasAndSum(t *testing.T) {
	for _, k := range kernelSets[float32]() {
		l := NewConv1D(1, 1, 2, 1, WithKernels(k))
		require.NoError(t, l.SetWeights([][][]float32{{{1, 10}}}))
		require.NoError(t, l.SetBias([]float32{0.5}))
		out := make([]float32, 1)
		var got []float32
		for _, x := range []float32{1, 2, 3} {
			l.Forward([]float32{x}, out)
			got = append(got, out[0])
		}
		assert.Equal(t, []float32{10.5, 21.5, 32.5}, got, k.Name)
	}
}

func TestConv1DResetAndClone(t *testing.T) {
	src := randweights.New(21)
	l := NewConv1D[float32](4, 4, 3, 2)
	require.NoError(t, randweights.Randomise[float32](src, l))
	fresh := l.Clone()
	seq := sineInput[float32](9, 4)

	run[float32](l, sineInput[float32](4, 4))
	mid := l.Clone()
	l.Reset()
	assertClose(t, run[float32](l, seq), run(fresh, seq), 0)

	l.Reset()
	run[float32](l, sineInput[float32](4, 4))
	assertClose(t, run(mid, seq), run[float32](l, seq), 0)
}

func TestConv1DGetters(t *testing.T) {
	l := NewConv1D[float32](2, 1, 3, 1)
	w := [][][]float32{{{1, 2, 3}, {4, 5, 6}}}
	require.NoError(t, l.SetWeights(w))
	assert.Equal(t, float32(6), l.Weight(0, 1, 2))
	assert.Equal(t, float32(2), l.Weight(0, 0, 1))
	assert.ErrorIs(t, l.SetWeights([][][]float32{{{1, 2}, {3, 4}}}), ErrShape)
	assert.Equal(t, "conv1d(2->1, kernel=3, dilation=1)", l.String())
}
