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

import (
	"fmt"

	"github.com/go-highway/rtneural/hwy"
)

// Layer is the capability set shared by every layer, runtime-sized or
// size-specialized.
type Layer[T hwy.Floats] interface {
	// Name identifies the layer kind, e.g. "gru" or "fast_tanh".
	Name() string
	InSize() int
	OutSize() int

	// Reset zeroes recurrent and convolution state.
	Reset()

	// Forward consumes InSize elements of input and writes OutSize
	// elements of output, advancing any internal state by one frame.
	Forward(input, output []T)

	// Clone returns a deep copy sharing no storage with the receiver.
	Clone() Layer[T]
}

// Option configures a layer at construction.
type Option[T hwy.Floats] func(*options[T])

type options[T hwy.Floats] struct {
	kernels Kernels[T]
	alpha   T
}

func buildOptions[T hwy.Floats](opts []Option[T]) options[T] {
	o := options[T]{kernels: DefaultKernels[T](), alpha: 1}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithKernels selects the vector primitives a layer runs with.
func WithKernels[T hwy.Floats](k Kernels[T]) Option[T] {
	return func(o *options[T]) { o.kernels = k }
}

// WithAlpha sets the negative-side scale of an ELU activation. It defaults
// to 1 and is ignored by other layers.
func WithAlpha[T hwy.Floats](alpha T) Option[T] {
	return func(o *options[T]) { o.alpha = alpha }
}

func mustPositive(layer string, sizes ...int) {
	for _, s := range sizes {
		if s <= 0 {
			panic(fmt.Sprintf("%s: sizes must be positive, got %v", layer, sizes))
		}
	}
}
