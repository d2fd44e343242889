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

// Package activation applies pointwise activation functions to slices.
//
// Every function takes (input, output) and processes
// min(len(input), len(output)) elements; input and output may be the same
// slice. The lane forms run the hwy/contrib/math vector kernels, including
// for the tail, where Load zero-fills the missing lanes and Store writes only
// the remaining elements. The Scalar forms are the reference implementations.
package activation

import (
	"github.com/go-highway/rtneural/hwy"
	"github.com/go-highway/rtneural/hwy/contrib/math"
)

func apply[T hwy.Floats](input, output []T, fn func(hwy.Vec[T]) hwy.Vec[T]) {
	size := min(len(input), len(output))
	lanes := hwy.MaxLanes[T]()
	for ii := 0; ii < size; ii += lanes {
		hwy.Store(fn(hwy.Load(input[ii:size])), output[ii:size])
	}
}

// Sigmoid computes 1 / (1 + e^(-x)).
func Sigmoid[T hwy.Floats](input, output []T) {
	apply(input, output, math.SigmoidVec[T])
}

// Tanh computes the hyperbolic tangent.
func Tanh[T hwy.Floats](input, output []T) {
	apply(input, output, math.TanhVec[T])
}

// FastTanh computes a rational approximation of tanh whose absolute error
// is bounded by math.FastTanhMaxError.
func FastTanh[T hwy.Floats](input, output []T) {
	apply(input, output, math.FastTanhVec[T])
}

// ReLU computes the Rectified Linear Unit activation: max(0, x).
func ReLU[T hwy.Floats](input, output []T) {
	apply(input, output, relu[T])
}

func relu[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Max(x, hwy.Zero[T]())
}

// ELU computes the Exponential Linear Unit activation.
//
// ELU(x) = x if x > 0, else alpha * (exp(x) - 1)
func ELU[T hwy.Floats](input, output []T, alpha T) {
	size := min(len(input), len(output))
	vZero := hwy.Zero[T]()
	vOne := hwy.Set(T(1))
	vAlpha := hwy.Set(alpha)
	lanes := hwy.MaxLanes[T]()

	for ii := 0; ii < size; ii += lanes {
		x := hwy.Load(input[ii:size])

		// Compute exp(x) - 1 for negative values
		negPart := hwy.Mul(vAlpha, hwy.Sub(math.ExpVec(hwy.Min(x, vZero)), vOne))

		// Select x for positive, alpha*(exp(x)-1) for negative
		result := hwy.IfThenElse(hwy.GreaterThan(x, vZero), x, negPart)
		hwy.Store(result, output[ii:size])
	}
}

// Softmax normalizes input into a probability distribution.
//
// The maximum is found in a first pass and subtracted before
// exponentiation, so large inputs cannot overflow and the result is
// invariant to adding a constant to every element.
func Softmax[T hwy.Floats](input, output []T) {
	size := min(len(input), len(output))
	if size == 0 {
		return
	}
	lanes := hwy.MaxLanes[T]()
	tail := hwy.TailStart[T](size)

	// Pass 1: maximum.
	maxVal := input[0]
	if tail > 0 {
		vmax := hwy.Load(input)
		for ii := lanes; ii < tail; ii += lanes {
			vmax = hwy.Max(vmax, hwy.Load(input[ii:]))
		}
		maxVal = hwy.ReduceMax(vmax)
	}
	for _, x := range input[tail:size] {
		maxVal = max(maxVal, x)
	}

	// Pass 2: exponentiate, sum, normalize.
	vmax := hwy.Set(maxVal)
	for ii := 0; ii < size; ii += lanes {
		hwy.Store(math.ExpVec(hwy.Sub(hwy.Load(input[ii:size]), vmax)), output[ii:size])
	}

	vsum := hwy.Zero[T]()
	for ii := 0; ii < tail; ii += lanes {
		vsum = hwy.Add(vsum, hwy.Load(output[ii:]))
	}
	sum := hwy.ReduceSum(vsum)
	for _, e := range output[tail:size] {
		sum += e
	}

	scale := hwy.Set(1 / sum)
	for ii := 0; ii < size; ii += lanes {
		hwy.Store(hwy.Mul(hwy.Load(output[ii:size]), scale), output[ii:size])
	}
}
