package nn

import (
	"math"
	"testing"

	"github.com/go-highway/rtneural/hwy"
)

func kernelSets[T hwy.Floats]() []Kernels[T] {
	return []Kernels[T]{ScalarKernels[T](), LaneKernels[T](), BLASKernels[T]()}
}

func sineInput[T hwy.Floats](frames, size int) [][]T {
	seq := make([][]T, frames)
	for t := range seq {
		seq[t] = make([]T, size)
		for i := range seq[t] {
			seq[t][i] = T(math.Sin(float64(t*size+i) * 0.37))
		}
	}
	return seq
}

func run[T hwy.Floats](l Layer[T], seq [][]T) [][]T {
	out := make([][]T, len(seq))
	for t, x := range seq {
		out[t] = make([]T, l.OutSize())
		l.Forward(x, out[t])
	}
	return out
}

func assertClose[T hwy.Floats](t *testing.T, got, want [][]T, tol float64) {
	t.Helper()
	for f := range want {
		for i := range want[f] {
			g, w := float64(got[f][i]), float64(want[f][i])
			if math.Abs(g-w) > tol*math.Max(1, math.Abs(w)) {
				t.Fatalf("frame %d, element %d: got %v, want %v", f, i, g, w)
			}
		}
	}
}

func sigmoidRef(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

// referenceGRU is a direct float64 transcription of the gate equations,
// taking weights in the SetWVals/SetUVals/SetBVals layouts.
func referenceGRU(w, u, b [][]float64, seq [][]float64) [][]float64 {
	out := len(u)
	h := make([]float64, out)
	var res [][]float64
	for _, x := range seq {
		pre := func(j int, withU bool) (kern, rec float64) {
			for i := range x {
				kern += w[i][j] * x[i]
			}
			if withU {
				for i := range h {
					rec += u[i][j] * h[i]
				}
			}
			return kern, rec
		}
		next := make([]float64, out)
		for j := range out {
			zk, zr := pre(j, true)
			z := sigmoidRef(zk + zr + b[0][j] + b[1][j])
			rk, rr := pre(out+j, true)
			r := sigmoidRef(rk + rr + b[0][out+j] + b[1][out+j])
			ck, cr := pre(2*out+j, true)
			c := math.Tanh(ck + b[0][2*out+j] + r*(cr+b[1][2*out+j]))
			next[j] = (1-z)*c + z*h[j]
		}
		h = next
		res = append(res, append([]float64(nil), h...))
	}
	return res
}

func referenceLSTM(w, u [][]float64, b []float64, seq [][]float64) [][]float64 {
	out := len(u)
	h := make([]float64, out)
	c := make([]float64, out)
	var res [][]float64
	for _, x := range seq {
		pre := func(j int) float64 {
			s := b[j]
			for i := range x {
				s += w[i][j] * x[i]
			}
			for i := range h {
				s += u[i][j] * h[i]
			}
			return s
		}
		next := make([]float64, out)
		for j := range out {
			ig := sigmoidRef(pre(j))
			fg := sigmoidRef(pre(out + j))
			cg := math.Tanh(pre(2*out + j))
			og := sigmoidRef(pre(3*out + j))
			c[j] = fg*c[j] + ig*cg
			next[j] = og * math.Tanh(c[j])
		}
		h = next
		res = append(res, append([]float64(nil), h...))
	}
	return res
}
