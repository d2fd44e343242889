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

// ActivationKind selects the function applied by an Activation layer.
type ActivationKind int

const (
	ActivationTanh ActivationKind = iota
	ActivationFastTanh
	ActivationReLU
	ActivationSigmoid
	ActivationSoftmax
	ActivationELU
)

var activationNames = [...]string{
	ActivationTanh:     "tanh",
	ActivationFastTanh: "fast_tanh",
	ActivationReLU:     "relu",
	ActivationSigmoid:  "sigmoid",
	ActivationSoftmax:  "softmax",
	ActivationELU:      "elu",
}

func (k ActivationKind) String() string {
	if k < 0 || int(k) >= len(activationNames) {
		return fmt.Sprintf("ActivationKind(%d)", int(k))
	}
	return activationNames[k]
}

// ParseActivation maps a name such as "tanh" or "fast_tanh" to its kind.
func ParseActivation(name string) (ActivationKind, error) {
	for k, n := range activationNames {
		if n == name {
			return ActivationKind(k), nil
		}
	}
	return 0, fmt.Errorf("nn: unknown activation %q", name)
}

// Activation is a stateless layer applying an elementwise function, or
// softmax, to its input. InSize equals OutSize.
type Activation[T hwy.Floats] struct {
	kind  ActivationKind
	size  int
	alpha T
	k     Kernels[T]
}

// NewActivation creates an activation layer of the given kind. WithAlpha sets
// the ELU alpha; it defaults to 1.
func NewActivation[T hwy.Floats](kind ActivationKind, size int, opts ...Option[T]) *Activation[T] {
	mustPositive(kind.String(), size)
	if int(kind) < 0 || int(kind) >= len(activationNames) {
		panic(fmt.Sprintf("nn: invalid activation kind %d", int(kind)))
	}
	o := buildOptions(opts)
	return &Activation[T]{kind: kind, size: size, alpha: o.alpha, k: o.kernels}
}

func (a *Activation[T]) Name() string         { return a.kind.String() }
func (a *Activation[T]) Kind() ActivationKind { return a.kind }
func (a *Activation[T]) InSize() int          { return a.size }
func (a *Activation[T]) OutSize() int         { return a.size }
func (a *Activation[T]) Alpha() T             { return a.alpha }
func (a *Activation[T]) Reset()               {}

func (a *Activation[T]) Forward(input, output []T) {
	input, output = input[:a.size], output[:a.size]
	switch a.kind {
	case ActivationTanh:
		a.k.Tanh(input, output)
	case ActivationFastTanh:
		a.k.FastTanh(input, output)
	case ActivationReLU:
		a.k.ReLU(input, output)
	case ActivationSigmoid:
		a.k.Sigmoid(input, output)
	case ActivationSoftmax:
		a.k.Softmax(input, output)
	case ActivationELU:
		a.k.ELU(input, output, a.alpha)
	}
}

func (a *Activation[T]) Clone() Layer[T] {
	c := *a
	return &c
}
