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

package math

import (
	"unsafe"

	"github.com/go-highway/rtneural/hwy"
)

func sigmoidSat[T hwy.Floats]() T {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return sigmoidSat_f32
	}
	return sigmoidSat_f64
}

// SigmoidVec computes sigmoid(x) = 1 / (1 + e^(-x)) using ExpVec.
// Inputs are clamped to the saturation bound first, so e^(-x) never
// overflows and the result stays in [0, 1].
func SigmoidVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	one := hwy.Set(T(1))
	sat := sigmoidSat[T]()
	clampedX := hwy.Max(hwy.Min(x, hwy.Set(sat)), hwy.Set(-sat))
	return hwy.Div(one, hwy.Add(one, ExpVec(hwy.Neg(clampedX))))
}

// Sigmoid4 is the Vec4 form of SigmoidVec.
func Sigmoid4[T hwy.Floats](x hwy.Vec4[T]) hwy.Vec4[T] {
	one := hwy.Set4(T(1))
	sat := sigmoidSat[T]()
	clampedX := hwy.Max4(hwy.Min4(x, hwy.Set4(sat)), hwy.Set4(-sat))
	return hwy.Div4(one, hwy.Add4(one, Exp4(hwy.Neg4(clampedX))))
}
