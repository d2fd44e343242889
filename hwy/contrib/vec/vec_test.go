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

package vec

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func ramp(n int, scale float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = scale * float32(i%7-3)
	}
	return out
}

func TestElementwise(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-6)
	ops := []struct {
		name   string
		lane   func(dst, a, b []float32)
		scalar func(dst, a, b []float32)
	}{
		{"add", AddTo[float32], AddToScalar[float32]},
		{"sub", SubTo[float32], SubToScalar[float32]},
		{"mul", MulTo[float32], MulToScalar[float32]},
	}
	for _, op := range ops {
		// Sizes straddle every lane width from SSE2 to AVX-512.
		for _, n := range []int{0, 1, 3, 4, 5, 8, 15, 16, 17, 33} {
			t.Run(fmt.Sprintf("%s/%d", op.name, n), func(t *testing.T) {
				a, b := ramp(n, 0.5), ramp(n, -1.25)
				got := make([]float32, n)
				want := make([]float32, n)
				op.lane(got, a, b)
				op.scalar(want, a, b)
				if diff := cmp.Diff(want, got, approx); diff != "" {
					t.Errorf("mismatch (-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestInPlace(t *testing.T) {
	a := ramp(19, 1)
	b := ramp(19, 2)
	want := make([]float32, len(a))
	AddToScalar(want, a, b)

	AddTo(a, a, b)
	if diff := cmp.Diff(want, a); diff != "" {
		t.Errorf("in-place AddTo mismatch (-want +got):\n%s", diff)
	}

	MulTo(b, b, b)
	for i, v := range b {
		w := 2 * float32(i%7-3)
		if v != w*w {
			t.Errorf("in-place MulTo[%d]: got %v, want %v", i, v, w*w)
		}
	}
}

func TestDot(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"empty", nil, nil, 0},
		{"3", []float64{1, 2, 3}, []float64{4, 5, 6}, 32},
		{"uneven", []float64{1, 2, 3, 4, 5}, []float64{1, 1, 1}, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Dot(tt.a, tt.b); got != tt.want {
				t.Errorf("Dot: got %v, want %v", got, tt.want)
			}
			if got := DotScalar(tt.a, tt.b); got != tt.want {
				t.Errorf("DotScalar: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGonumAgrees(t *testing.T) {
	a32, b32 := ramp(37, 0.1), ramp(37, 0.3)
	if got, want := DotFloat32(a32, b32), DotScalar(a32, b32); !cmp.Equal(got, want, cmpopts.EquateApprox(1e-6, 1e-6)) {
		t.Errorf("DotFloat32: got %v, want %v", got, want)
	}

	a := []float64{1, -2, 3.5, 4, 0.25}
	b := []float64{0.5, 2, -1, 8, 4}
	if got, want := DotFloat64(a, b), DotScalar(a, b); got != want {
		t.Errorf("DotFloat64: got %v, want %v", got, want)
	}

	got := make([]float64, len(a))
	want := make([]float64, len(a))
	for _, tt := range []struct {
		name   string
		g, ref func(dst, a, b []float64)
	}{
		{"add", AddToFloat64, AddToScalar[float64]},
		{"sub", SubToFloat64, SubToScalar[float64]},
		{"mul", MulToFloat64, MulToScalar[float64]},
	} {
		tt.g(got, a, b)
		tt.ref(want, a, b)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestGonumUnequalLengths(t *testing.T) {
	a32, b32 := ramp(9, 0.5), ramp(6, 1)
	if got, want := DotFloat32(a32, b32), DotScalar(a32, b32); !cmp.Equal(got, want, cmpopts.EquateApprox(1e-6, 1e-6)) {
		t.Errorf("DotFloat32: got %v, want %v", got, want)
	}

	a := []float64{1, 2, 3, 4}
	b := []float64{10, 20, 30}
	if got, want := DotFloat64(a, b), 140.0; got != want {
		t.Errorf("DotFloat64: got %v, want %v", got, want)
	}

	dst := []float64{-1, -1, -1, -1, -1}
	AddToFloat64(dst, a, b)
	if diff := cmp.Diff([]float64{11, 22, 33, -1, -1}, dst); diff != "" {
		t.Errorf("AddToFloat64 mismatch (-want +got):\n%s", diff)
	}
	SubToFloat64(dst[:2], a, b)
	if diff := cmp.Diff([]float64{-9, -18, 33, -1, -1}, dst); diff != "" {
		t.Errorf("SubToFloat64 mismatch (-want +got):\n%s", diff)
	}
	MulToFloat64(dst, b, a)
	if diff := cmp.Diff([]float64{10, 40, 90, -1, -1}, dst); diff != "" {
		t.Errorf("MulToFloat64 mismatch (-want +got):\n%s", diff)
	}
}

func TestNoAllocs(t *testing.T) {
	a, b := ramp(64, 1), ramp(64, 2)
	dst := make([]float32, 64)
	allocs := testing.AllocsPerRun(100, func() {
		AddTo(dst, a, b)
		MulTo(dst, dst, b)
		_ = Dot(dst, a)
	})
	if allocs != 0 {
		t.Errorf("got %v allocs per run, want 0", allocs)
	}
}

func BenchmarkDot(b *testing.B) {
	for _, n := range []int{8, 24, 64} {
		x, y := ramp(n, 1), ramp(n, 2)
		b.Run(fmt.Sprint(n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = Dot(x, y)
			}
		})
	}
}
