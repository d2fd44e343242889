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

package nn

import "github.com/go-highway/rtneural/hwy"

// Dense is a fully-connected layer: output[i] = bias[i] + Σ_j W[i][j]*input[j].
type Dense[T hwy.Floats] struct {
	inSize, outSize int

	weights []T // row-major [outSize, inSize]
	bias    []T
	k       Kernels[T]
}

// NewDense creates a Dense layer with zero weights and bias.
func NewDense[T hwy.Floats](inSize, outSize int, opts ...Option[T]) *Dense[T] {
	mustPositive("dense", inSize, outSize)
	o := buildOptions(opts)
	return &Dense[T]{
		inSize:  inSize,
		outSize: outSize,
		weights: make([]T, outSize*inSize),
		bias:    make([]T, outSize),
		k:       o.kernels,
	}
}

func (d *Dense[T]) Name() string { return "dense" }
func (d *Dense[T]) InSize() int  { return d.inSize }
func (d *Dense[T]) OutSize() int { return d.outSize }

// Reset is a no-op; Dense has no state.
func (d *Dense[T]) Reset() {}

// Forward computes one output frame.
func (d *Dense[T]) Forward(input, output []T) {
	output = output[:d.outSize]
	d.k.MatVec(d.weights, d.outSize, d.inSize, input, output)
	d.k.AddTo(output, output, d.bias)
}

// SetWeights copies an [outSize][inSize] weight matrix.
func (d *Dense[T]) SetWeights(w [][]T) error {
	if err := CheckMatrix("dense", "weights", w, d.outSize, d.inSize); err != nil {
		return err
	}
	for i, row := range w {
		copy(d.weights[i*d.inSize:], row)
	}
	return nil
}

// SetBias copies an [outSize] bias vector.
func (d *Dense[T]) SetBias(b []T) error {
	if err := CheckVector("dense", "bias", b, d.outSize); err != nil {
		return err
	}
	copy(d.bias, b)
	return nil
}

// Weight returns W[i][j].
func (d *Dense[T]) Weight(i, j int) T { return d.weights[i*d.inSize+j] }

// Bias returns bias[i].
func (d *Dense[T]) Bias(i int) T { return d.bias[i] }

// Clone returns a deep copy of the layer.
func (d *Dense[T]) Clone() Layer[T] {
	c := *d
	c.weights = append([]T(nil), d.weights...)
	c.bias = append([]T(nil), d.bias...)
	return &c
}
