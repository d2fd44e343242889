package activation

import (
	"github.com/go-highway/rtneural/hwy"
	"github.com/go-highway/rtneural/hwy/contrib/math"
)

// SigmoidScalar is the reference form of Sigmoid.
func SigmoidScalar[T hwy.Floats](input, output []T) {
	size := min(len(input), len(output))
	for i := range size {
		output[i] = math.Sigmoid(input[i])
	}
}

// TanhScalar is the reference form of Tanh.
func TanhScalar[T hwy.Floats](input, output []T) {
	size := min(len(input), len(output))
	for i := range size {
		output[i] = math.Tanh(input[i])
	}
}

// FastTanhScalar is the reference form of FastTanh.
func FastTanhScalar[T hwy.Floats](input, output []T) {
	size := min(len(input), len(output))
	for i := range size {
		output[i] = math.FastTanh(input[i])
	}
}

// ReLUScalar is the reference form of ReLU.
func ReLUScalar[T hwy.Floats](input, output []T) {
	size := min(len(input), len(output))
	for i := range size {
		output[i] = max(input[i], 0)
	}
}

// ELUScalar is the reference form of ELU.
func ELUScalar[T hwy.Floats](input, output []T, alpha T) {
	size := min(len(input), len(output))
	for i := range size {
		if x := input[i]; x > 0 {
			output[i] = x
		} else {
			output[i] = alpha * (math.Exp(x) - 1)
		}
	}
}

// SoftmaxScalar is the reference form of Softmax.
func SoftmaxScalar[T hwy.Floats](input, output []T) {
	size := min(len(input), len(output))
	if size == 0 {
		return
	}
	maxVal := input[0]
	for _, x := range input[1:size] {
		maxVal = max(maxVal, x)
	}
	var sum T
	for i := range size {
		output[i] = math.Exp(input[i] - maxVal)
		sum += output[i]
	}
	for i := range size {
		output[i] /= sum
	}
}
