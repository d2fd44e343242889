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

package activation

import (
	"fmt"
	stdmath "math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

func testData(n int) []float32 {
	data := make([]float32, n)
	for i := range data {
		data[i] = float32(stdmath.Sin(float64(i)*0.7)) * 4
	}
	return data
}

func TestLaneMatchesScalar(t *testing.T) {
	elu := func(in, out []float32) { ELU(in, out, 0.5) }
	eluScalar := func(in, out []float32) { ELUScalar(in, out, 0.5) }

	tests := []struct {
		name         string
		lane, scalar func(in, out []float32)
		tol          float64
	}{
		{"sigmoid", Sigmoid[float32], SigmoidScalar[float32], 1e-6},
		{"tanh", Tanh[float32], TanhScalar[float32], 2e-6},
		{"fast_tanh", FastTanh[float32], FastTanhScalar[float32], 1e-6},
		{"relu", ReLU[float32], ReLUScalar[float32], 0},
		{"elu", elu, eluScalar, 1e-6},
		{"softmax", Softmax[float32], SoftmaxScalar[float32], 2e-6},
	}
	for _, tt := range tests {
		for _, n := range []int{1, 3, 4, 5, 8, 16, 17, 24, 33} {
			t.Run(fmt.Sprintf("%s/%d", tt.name, n), func(t *testing.T) {
				in := testData(n)
				got := make([]float32, n)
				want := make([]float32, n)
				tt.lane(in, got)
				tt.scalar(in, want)
				if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, tt.tol)); diff != "" {
					t.Errorf("mismatch (-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestInPlace(t *testing.T) {
	for name, fn := range map[string]func(in, out []float64){
		"sigmoid": Sigmoid[float64],
		"tanh":    Tanh[float64],
		"relu":    ReLU[float64],
		"softmax": Softmax[float64],
	} {
		t.Run(name, func(t *testing.T) {
			in := []float64{-2, -0.5, 0, 0.25, 1, 3, 7}
			want := make([]float64, len(in))
			fn(in, want)
			fn(in, in)
			assert.Equal(t, want, in)
		})
	}
}

func TestSoftmaxSumsToOne(t *testing.T) {
	for _, n := range []int{1, 2, 5, 8, 13, 16} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			in := testData(n)
			out := make([]float32, n)
			Softmax(in, out)
			var sum float64
			for _, p := range out {
				assert.GreaterOrEqual(t, p, float32(0))
				sum += float64(p)
			}
			assert.InDelta(t, 1.0, sum, 1e-5)
		})
	}
}

func TestSoftmaxShiftInvariant(t *testing.T) {
	in := []float32{0.5, -1, 2, 3.5, 0, -4, 1}
	base := make([]float32, len(in))
	Softmax(in, base)

	for _, shift := range []float32{-50, 10, 80, 1000} {
		shifted := make([]float32, len(in))
		for i := range in {
			shifted[i] = in[i] + shift
		}
		out := make([]float32, len(in))
		Softmax(shifted, out)
		if diff := cmp.Diff(base, out, cmpopts.EquateApprox(1e-3, 1e-5)); diff != "" {
			t.Errorf("shift %v: mismatch (-want +got):\n%s", shift, diff)
		}
	}
}

func TestReLUAndELU(t *testing.T) {
	in := []float64{-2, -1, 0, 1, 2}
	out := make([]float64, len(in))

	ReLU(in, out)
	assert.Equal(t, []float64{0, 0, 0, 1, 2}, out)

	ELU(in, out, 1)
	for i, x := range in {
		want := x
		if x <= 0 {
			want = stdmath.Exp(x) - 1
		}
		assert.InDelta(t, want, out[i], 1e-12, "elu(%v)", x)
	}
}

func TestNoAllocs(t *testing.T) {
	in := testData(24)
	out := make([]float32, 24)
	fns := map[string]func(){
		"sigmoid":   func() { Sigmoid(in, out) },
		"tanh":      func() { Tanh(in, out) },
		"fast_tanh": func() { FastTanh(in, out) },
		"elu":       func() { ELU(in, out, 1) },
		"softmax":   func() { Softmax(in, out) },
	}
	for name, fn := range fns {
		if allocs := testing.AllocsPerRun(50, fn); allocs != 0 {
			t.Errorf("%s: got %v allocs per run, want 0", name, allocs)
		}
	}
}

func BenchmarkActivations(b *testing.B) {
	in := testData(16)
	out := make([]float32, 16)
	for _, bench := range []struct {
		name string
		fn   func(in, out []float32)
	}{
		{"tanh", Tanh[float32]},
		{"fast_tanh", FastTanh[float32]},
		{"sigmoid", Sigmoid[float32]},
		{"softmax", Softmax[float32]},
	} {
		b.Run(bench.name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				bench.fn(in, out)
			}
		})
	}
}
