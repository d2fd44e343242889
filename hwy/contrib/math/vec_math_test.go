package math

import (
	stdmath "math"
	"testing"

	"github.com/go-highway/rtneural/hwy"
)

func sweep(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	return out
}

func TestExpVec(t *testing.T) {
	tests := []struct {
		name string
		tol  float64
		f    func(x float64) float64
	}{
		{"float32", 2e-6, func(x float64) float64 {
			return float64(ExpVec(hwy.Set(float32(x))).Get(0))
		}},
		{"float64", 1e-13, func(x float64) float64 {
			return ExpVec(hwy.Set(x)).Get(0)
		}},
		{"float32/vec4", 2e-6, func(x float64) float64 {
			return float64(Exp4(hwy.Set4(float32(x)))[1])
		}},
		{"float64/vec4", 1e-13, func(x float64) float64 {
			return Exp4(hwy.Set4(x))[2]
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, x := range sweep(-80, 80, 1001) {
				want := stdmath.Exp(x)
				if tt.name == "float32" || tt.name == "float32/vec4" {
					want = float64(float32(want))
				}
				got := tt.f(x)
				if rel := stdmath.Abs(got-want) / want; rel > tt.tol {
					t.Fatalf("exp(%v): got %v, want %v (rel err %g)", x, got, want, rel)
				}
			}
		})
	}
}

func TestExpSpecialCases(t *testing.T) {
	if got := ExpVec(hwy.Set[float32](100)).Get(0); !stdmath.IsInf(float64(got), 1) {
		t.Errorf("exp(100) float32: got %v, want +Inf", got)
	}
	if got := ExpVec(hwy.Set[float32](-100)).Get(0); got != 0 {
		t.Errorf("exp(-100) float32: got %v, want 0", got)
	}
	if got := Exp4(hwy.Set4[float64](-1000))[0]; got != 0 {
		t.Errorf("exp(-1000) float64: got %v, want 0", got)
	}
	if got := ExpVec(hwy.Zero[float64]()).Get(0); got != 1 {
		t.Errorf("exp(0): got %v, want 1", got)
	}
}

func TestSigmoidTanh(t *testing.T) {
	for _, x := range sweep(-30, 30, 601) {
		wantS := 1 / (1 + stdmath.Exp(-x))
		wantT := stdmath.Tanh(x)

		if got := float64(SigmoidVec(hwy.Set(float32(x))).Get(0)); stdmath.Abs(got-wantS) > 1e-6 {
			t.Errorf("sigmoid(%v) float32: got %v, want %v", x, got, wantS)
		}
		if got := Sigmoid4(hwy.Set4(x))[0]; stdmath.Abs(got-wantS) > 1e-12 {
			t.Errorf("sigmoid(%v) float64: got %v, want %v", x, got, wantS)
		}
		if got := float64(TanhVec(hwy.Set(float32(x))).Get(0)); stdmath.Abs(got-wantT) > 2e-6 {
			t.Errorf("tanh(%v) float32: got %v, want %v", x, got, wantT)
		}
		if got := Tanh4(hwy.Set4(x))[3]; stdmath.Abs(got-wantT) > 1e-12 {
			t.Errorf("tanh(%v) float64: got %v, want %v", x, got, wantT)
		}
		if got := float64(Tanh(float32(x))); stdmath.Abs(got-wantT) > 1e-6 {
			t.Errorf("scalar tanh(%v): got %v, want %v", x, got, wantT)
		}
		if got := Sigmoid(x); stdmath.Abs(got-wantS) > 1e-15 {
			t.Errorf("scalar sigmoid(%v): got %v, want %v", x, got, wantS)
		}
	}
}

func TestTanhRelativeErrorNearZero(t *testing.T) {
	for _, x := range []float64{1e-8, -3e-6, 1e-4, -7.5e-4, 1e-3, 0.01, -0.05, 0.1249, 0.125, -0.2} {
		want := stdmath.Tanh(x)
		if got := float64(TanhVec(hwy.Set(float32(x))).Get(0)); stdmath.Abs(got-want) > 5e-6*stdmath.Abs(want) {
			t.Errorf("tanh(%v) float32: got %v, want %v", x, got, want)
		}
		if got := float64(Tanh4(hwy.Set4(float32(x)))[2]); stdmath.Abs(got-want) > 5e-6*stdmath.Abs(want) {
			t.Errorf("tanh4(%v) float32: got %v, want %v", x, got, want)
		}
		if got := TanhVec(hwy.Set(x)).Get(0); stdmath.Abs(got-want) > 1e-14*stdmath.Abs(want) {
			t.Errorf("tanh(%v) float64: got %v, want %v", x, got, want)
		}
	}
	if got := TanhVec(hwy.Zero[float32]()).Get(0); got != 0 {
		t.Errorf("tanh(0): got %v, want 0", got)
	}
}

func TestFastTanhErrorBound(t *testing.T) {
	for _, x := range sweep(-12, 12, 4801) {
		want := stdmath.Tanh(x)
		for name, got := range map[string]float64{
			"scalar":  FastTanh(x),
			"vec":     FastTanhVec(hwy.Set(x)).Get(0),
			"vec4":    FastTanh4(hwy.Set4(x))[1],
			"float32": float64(FastTanhVec(hwy.Set(float32(x))).Get(0)),
		} {
			if stdmath.Abs(got-want) > FastTanhMaxError {
				t.Errorf("%s fast_tanh(%v): got %v, want %v", name, x, got, want)
			}
		}
	}
}

func TestVecAndVec4Agree(t *testing.T) {
	for _, x := range sweep(-6, 6, 97) {
		v := float32(x)
		if a, b := TanhVec(hwy.Set(v)).Get(0), Tanh4(hwy.Set4(v))[0]; stdmath.Abs(float64(a-b)) > 1e-6 {
			t.Errorf("tanh(%v): Vec %v, Vec4 %v", v, a, b)
		}
		if a, b := SigmoidVec(hwy.Set(v)).Get(0), Sigmoid4(hwy.Set4(v))[0]; stdmath.Abs(float64(a-b)) > 1e-6 {
			t.Errorf("sigmoid(%v): Vec %v, Vec4 %v", v, a, b)
		}
	}
}

func BenchmarkTanhVec(b *testing.B) {
	x := hwy.Set[float32](0.3)
	b.ReportAllocs()
	for b.Loop() {
		x = TanhVec(x)
	}
}
