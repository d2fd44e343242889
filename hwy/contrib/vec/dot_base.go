package vec

import "github.com/go-highway/rtneural/hwy"

// Dot computes the inner product of a weight row and an input vector:
// Σ(a[i] * b[i]) over min(len(a), len(b)) elements.
//
// Lanes accumulate with MulAdd and are reduced once at the end, so the
// summation order differs from DotScalar and results agree only within
// rounding.
//
// Example:
//
//	a := []float32{1, 2, 3}
//	b := []float32{4, 5, 6}
//	result := Dot(a, b)  // 1*4 + 2*5 + 3*6 = 32
func Dot[T hwy.Floats](a, b []T) T {
	n := min(len(a), len(b))
	sum := hwy.Zero[T]()
	lanes := sum.NumLanes()

	// Process full vectors
	var i int
	for i = 0; i+lanes <= n; i += lanes {
		sum = hwy.MulAdd(hwy.Load(a[i:]), hwy.Load(b[i:]), sum)
	}

	// Reduce vector sum to scalar
	result := hwy.ReduceSum(sum)

	// Handle tail elements with scalar code
	for ; i < n; i++ {
		result += a[i] * b[i]
	}
	return result
}

// DotScalar is the reference form of Dot, accumulating left to right.
func DotScalar[T hwy.Floats](a, b []T) T {
	n := min(len(a), len(b))
	var result T
	for i := range n {
		result += a[i] * b[i]
	}
	return result
}
