package nn

import (
	"github.com/go-highway/rtneural/hwy"
	"github.com/go-highway/rtneural/hwy/contrib/activation"
	"github.com/go-highway/rtneural/hwy/contrib/matvec"
	"github.com/go-highway/rtneural/hwy/contrib/vec"
)

// Kernels is the set of vector primitives a runtime-sized layer computes
// with. In every set the element-wise functions and Dot process min(len)
// elements and allow dst to alias an input. MatVec panics when m, v or
// result are shorter than rows and cols require.
type Kernels[T hwy.Floats] struct {
	Name string

	AddTo func(dst, a, b []T)
	SubTo func(dst, a, b []T)
	MulTo func(dst, a, b []T)
	Dot   func(a, b []T) T

	// MatVec computes result = M * v for a row-major [rows, cols] matrix.
	MatVec func(m []T, rows, cols int, v, result []T)

	Sigmoid  func(input, output []T)
	Tanh     func(input, output []T)
	FastTanh func(input, output []T)
	ReLU     func(input, output []T)
	Softmax  func(input, output []T)
	ELU      func(input, output []T, alpha T)
}

// ScalarKernels returns the scalar reference primitives.
func ScalarKernels[T hwy.Floats]() Kernels[T] {
	return Kernels[T]{
		Name:     "scalar",
		AddTo:    vec.AddToScalar[T],
		SubTo:    vec.SubToScalar[T],
		MulTo:    vec.MulToScalar[T],
		Dot:      vec.DotScalar[T],
		MatVec:   matvec.MatVecScalar[T],
		Sigmoid:  activation.SigmoidScalar[T],
		Tanh:     activation.TanhScalar[T],
		FastTanh: activation.FastTanhScalar[T],
		ReLU:     activation.ReLUScalar[T],
		Softmax:  activation.SoftmaxScalar[T],
		ELU:      activation.ELUScalar[T],
	}
}

// LaneKernels returns the hwy.Vec primitives.
func LaneKernels[T hwy.Floats]() Kernels[T] {
	return Kernels[T]{
		Name:     "lanes",
		AddTo:    vec.AddTo[T],
		SubTo:    vec.SubTo[T],
		MulTo:    vec.MulTo[T],
		Dot:      vec.Dot[T],
		MatVec:   matvec.MatVec[T],
		Sigmoid:  activation.Sigmoid[T],
		Tanh:     activation.Tanh[T],
		FastTanh: activation.FastTanh[T],
		ReLU:     activation.ReLU[T],
		Softmax:  activation.Softmax[T],
		ELU:      activation.ELU[T],
	}
}

// BLASKernels returns LaneKernels with the reductions routed through gonum
// for float32 and float64. Other element types get LaneKernels unchanged.
func BLASKernels[T hwy.Floats]() Kernels[T] {
	k := LaneKernels[T]()
	switch kk := any(&k).(type) {
	case *Kernels[float32]:
		kk.Name = "blas"
		kk.MatVec = matvec.MatVecFloat32
		kk.Dot = vec.DotFloat32
	case *Kernels[float64]:
		kk.Name = "blas"
		kk.MatVec = matvec.MatVecFloat64
		kk.Dot = vec.DotFloat64
		kk.AddTo = vec.AddToFloat64
		kk.SubTo = vec.SubToFloat64
		kk.MulTo = vec.MulToFloat64
	}
	return k
}

// DefaultKernels returns ScalarKernels when hwy dispatches to scalar code
// (including when HWY_NO_SIMD is set) and BLASKernels otherwise.
func DefaultKernels[T hwy.Floats]() Kernels[T] {
	if hwy.CurrentLevel() == hwy.DispatchScalar {
		return ScalarKernels[T]()
	}
	return BLASKernels[T]()
}
