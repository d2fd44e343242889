package vec

import (
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/floats"
)

// The functions below route the same primitives through gonum's assembly
// kernels. Like the lane forms they process min(len) elements; gonum itself
// requires equal lengths, so inputs are trimmed first.

// DotFloat32 is Dot for float32 via blas32.
func DotFloat32(a, b []float32) float32 {
	n := min(len(a), len(b))
	return blas32.Dot(blas32.Vector{N: n, Inc: 1, Data: a[:n]}, blas32.Vector{N: n, Inc: 1, Data: b[:n]})
}

// DotFloat64 is Dot for float64 via gonum/floats.
func DotFloat64(a, b []float64) float64 {
	n := min(len(a), len(b))
	return floats.Dot(a[:n], b[:n])
}

// AddToFloat64 is AddTo for float64 via gonum/floats.
func AddToFloat64(dst, a, b []float64) {
	n := min(len(dst), len(a), len(b))
	floats.AddTo(dst[:n], a[:n], b[:n])
}

// SubToFloat64 is SubTo for float64 via gonum/floats.
func SubToFloat64(dst, a, b []float64) {
	n := min(len(dst), len(a), len(b))
	floats.SubTo(dst[:n], a[:n], b[:n])
}

// MulToFloat64 is MulTo for float64 via gonum/floats.
func MulToFloat64(dst, a, b []float64) {
	n := min(len(dst), len(a), len(b))
	floats.MulTo(dst[:n], a[:n], b[:n])
}
