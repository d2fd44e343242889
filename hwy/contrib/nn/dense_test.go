// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package nn

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-highway/rtneural/internal/randweights"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDenseZeroWeights(t *testing.T) {
	for _, sz := range [][2]int{{1, 1}, {3, 5}, {8, 8}, {17, 9}} {
		d := NewDense[float32](sz[0], sz[1])
		out := make([]float32, sz[1])
		for i := range out {
			out[i] = 42
		}
		d.Forward(sineInput[float32](1, sz[0])[0], out)
		assert.Equal(t, make([]float32, sz[1]), out, "size %v", sz)
	}
}

func TestDenseForward(t *testing.T) {
	for _, k := range kernelSets[float32]() {
		t.Run(k.Name, func(t *testing.T) {
			d := NewDense(3, 2, WithKernels(k))
			require.NoError(t, d.SetWeights([][]float32{
				{1, 2, 3},
				{4, 5, 6},
			}))
			require.NoError(t, d.SetBias([]float32{0.5, -1}))
			out := make([]float32, 2)
			d.Forward([]float32{1, 0, 1}, out)
			assert.Equal(t, []float32{4.5, 9}, out)
		})
	}
}

func TestDenseKernelsAgree(t *testing.T) {
	src := randweights.New(11)
	w := randweights.Matrix[float64](src, 13, 21)
	b := randweights.Vector[float64](src, 13)
	seq := sineInput[float64](4, 21)

	var want [][]float64
	for _, k := range kernelSets[float64]() {
		d := NewDense(21, 13, WithKernels(k))
		require.NoError(t, d.SetWeights(w))
		require.NoError(t, d.SetBias(b))
		got := run[float64](d, seq)
		if want == nil {
			want = got
			continue
		}
		if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
			t.Errorf("%s disagrees with scalar (-want +got):\n%s", k.Name, diff)
		}
	}
}

func TestKernelsUseShortestLength(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{10, 20, 30}
	for _, k := range kernelSets[float64]() {
		t.Run(k.Name, func(t *testing.T) {
			assert.Equal(t, 140.0, k.Dot(a, b))

			dst := []float64{-1, -1, -1, -1, -1}
			k.AddTo(dst, a, b)
			assert.Equal(t, []float64{11, 22, 33, -1, -1}, dst)
			k.SubTo(dst[:2], a, b)
			assert.Equal(t, []float64{-9, -18, 33, -1, -1}, dst)
			k.MulTo(dst, b, a)
			assert.Equal(t, []float64{10, 40, 90, -1, -1}, dst)
		})
	}
}

func TestDenseGetters(t *testing.T) {
	d := NewDense[float32](2, 3)
	require.NoError(t, d.SetWeights([][]float32{{1, 2}, {3, 4}, {5, 6}}))
	require.NoError(t, d.SetBias([]float32{7, 8, 9}))
	assert.Equal(t, float32(4), d.Weight(1, 1))
	assert.Equal(t, float32(5), d.Weight(2, 0))
	assert.Equal(t, float32(9), d.Bias(2))
}

func TestDenseShapeErrors(t *testing.T) {
	d := NewDense[float32](2, 3)
	tests := []struct {
		name string
		err  error
	}{
		{"too few rows", d.SetWeights([][]float32{{1, 2}})},
		{"ragged row", d.SetWeights([][]float32{{1, 2}, {3}, {5, 6}})},
		{"bias length", d.SetBias([]float32{1})},
	}
	for _, tt := range tests {
		if !errors.Is(tt.err, ErrShape) {
			t.Errorf("%s: got %v, want ErrShape", tt.name, tt.err)
		}
	}
	assert.Zero(t, d.Weight(0, 0), "failed set must not modify weights")
}

func TestDenseClone(t *testing.T) {
	d := NewDense[float32](2, 2)
	require.NoError(t, d.SetWeights([][]float32{{1, 0}, {0, 1}}))
	c := d.Clone().(*Dense[float32])
	require.NoError(t, d.SetWeights([][]float32{{2, 2}, {2, 2}}))
	assert.Equal(t, float32(1), c.Weight(0, 0))
	assert.Equal(t, float32(0), c.Weight(0, 1))
}

func TestConstructorPanics(t *testing.T) {
	assert.Panics(t, func() { NewDense[float32](0, 3) })
	assert.Panics(t, func() { NewGRU[float32](1, -1) })
	assert.Panics(t, func() { NewConv1D[float32](2, 2, 3, 0) })
	assert.Panics(t, func() { NewActivation[float32](ActivationKind(99), 4) })
}

func TestForwardNoAllocs(t *testing.T) {
	src := randweights.New(5)
	layers := []Layer[float32]{
		NewDense[float32](9, 7),
		NewConv1D[float32](5, 6, 3, 2),
		NewGRU[float32](5, 7),
		NewLSTM[float32](5, 7),
		NewActivation[float32](ActivationSoftmax, 9),
		NewActivation[float32](ActivationFastTanh, 9),
	}
	for _, l := range layers {
		require.NoError(t, randweights.Randomise[float32](src, l))
		in := sineInput[float32](1, l.InSize())[0]
		out := make([]float32, l.OutSize())
		allocs := testing.AllocsPerRun(100, func() { l.Forward(in, out) })
		assert.Zero(t, allocs, "%s allocates in Forward", l.Name())
	}
}

func BenchmarkLayers(b *testing.B) {
	src := randweights.New(1)
	for _, size := range []int{8, 16, 32} {
		for _, l := range []Layer[float32]{
			NewDense[float32](size, size),
			NewGRU[float32](size, size),
			NewLSTM[float32](size, size),
			NewConv1D[float32](size, size, 3, 2),
		} {
			_ = randweights.Randomise[float32](src, l)
			in := sineInput[float32](1, size)[0]
			out := make([]float32, size)
			b.Run(fmt.Sprintf("%s/%d", l.Name(), size), func(b *testing.B) {
				for b.Loop() {
					l.Forward(in, out)
				}
			})
		}
	}
}
