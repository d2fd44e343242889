package math

import (
	stdmath "math"
	"unsafe"

	"github.com/chewxy/math32"

	"github.com/go-highway/rtneural/hwy"
)

func isFloat32[T hwy.Floats]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 4
}

// Exp is the scalar reference for ExpVec.
func Exp[T hwy.Floats](x T) T {
	if isFloat32[T]() {
		return T(math32.Exp(float32(x)))
	}
	return T(stdmath.Exp(float64(x)))
}

// Sigmoid is the scalar reference for SigmoidVec.
func Sigmoid[T hwy.Floats](x T) T {
	return 1 / (1 + Exp(-x))
}

// Tanh is the scalar reference for TanhVec.
func Tanh[T hwy.Floats](x T) T {
	if isFloat32[T]() {
		return T(math32.Tanh(float32(x)))
	}
	return T(stdmath.Tanh(float64(x)))
}

// FastTanh is the scalar form of FastTanhVec.
func FastTanh[T hwy.Floats](x T) T {
	x = max(min(x, fastTanhClamp), -fastTanhClamp)
	x2 := x * x
	num := x * (fastTanhN0 + x2*(fastTanhN1+x2*(fastTanhN2+x2*fastTanhN3)))
	den := fastTanhD0 + x2*(fastTanhD1+x2*(fastTanhD2+x2*(fastTanhD3+x2)))
	return num / den
}
