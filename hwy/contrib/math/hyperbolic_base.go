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

func tanhClamp[T hwy.Floats]() T {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return tanhClamp_f32
	}
	return tanhClamp_f64
}

// TanhVec computes tanh(x) = 2*sigmoid(2x) - 1 using SigmoidVec. Lanes with
// |x| < tanhSmall use x*P(x^2) instead, keeping the relative error near
// zero at a few ulps.
func TanhVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	two := hwy.Set(T(2))
	one := hwy.Set(T(1))
	c := tanhClamp[T]()
	x = hwy.Max(hwy.Min(x, hwy.Set(c)), hwy.Set(-c))
	large := hwy.Sub(hwy.Mul(two, SigmoidVec(hwy.Mul(two, x))), one)

	x2 := hwy.Mul(x, x)
	p := hwy.Set(T(tanhTaylor[len(tanhTaylor)-1]))
	for i := len(tanhTaylor) - 2; i >= 0; i-- {
		p = hwy.MulAdd(p, x2, hwy.Set(T(tanhTaylor[i])))
	}
	small := hwy.Mul(x, p)

	return hwy.IfThenElse(hwy.LessThan(hwy.Abs(x), hwy.Set(T(tanhSmall))), small, large)
}

// Tanh4 is the Vec4 form of TanhVec.
func Tanh4[T hwy.Floats](x hwy.Vec4[T]) hwy.Vec4[T] {
	two := hwy.Set4(T(2))
	one := hwy.Set4(T(1))
	c := tanhClamp[T]()
	x = hwy.Max4(hwy.Min4(x, hwy.Set4(c)), hwy.Set4(-c))
	result := hwy.Sub4(hwy.Mul4(two, Sigmoid4(hwy.Mul4(two, x))), one)

	x2 := hwy.Mul4(x, x)
	p := hwy.Set4(T(tanhTaylor[len(tanhTaylor)-1]))
	for i := len(tanhTaylor) - 2; i >= 0; i-- {
		p = hwy.MulAdd4(p, x2, hwy.Set4(T(tanhTaylor[i])))
	}
	small := hwy.Mul4(x, p)

	for i := range result {
		if x[i] > -tanhSmall && x[i] < tanhSmall {
			result[i] = small[i]
		}
	}
	return result
}

// FastTanhVec approximates tanh with a rational function in x^2. The
// absolute error stays below FastTanhMaxError.
func FastTanhVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	x = hwy.Max(hwy.Min(x, hwy.Set(T(fastTanhClamp))), hwy.Set(T(-fastTanhClamp)))
	x2 := hwy.Mul(x, x)

	num := hwy.MulAdd(x2, hwy.Set(T(fastTanhN3)), hwy.Set(T(fastTanhN2)))
	num = hwy.MulAdd(x2, num, hwy.Set(T(fastTanhN1)))
	num = hwy.MulAdd(x2, num, hwy.Set(T(fastTanhN0)))
	num = hwy.Mul(x, num)

	den := hwy.Add(x2, hwy.Set(T(fastTanhD3)))
	den = hwy.MulAdd(x2, den, hwy.Set(T(fastTanhD2)))
	den = hwy.MulAdd(x2, den, hwy.Set(T(fastTanhD1)))
	den = hwy.MulAdd(x2, den, hwy.Set(T(fastTanhD0)))

	return hwy.Div(num, den)
}

// FastTanh4 is the Vec4 form of FastTanhVec.
func FastTanh4[T hwy.Floats](x hwy.Vec4[T]) hwy.Vec4[T] {
	x = hwy.Max4(hwy.Min4(x, hwy.Set4(T(fastTanhClamp))), hwy.Set4(T(-fastTanhClamp)))
	x2 := hwy.Mul4(x, x)

	num := hwy.MulAdd4(x2, hwy.Set4(T(fastTanhN3)), hwy.Set4(T(fastTanhN2)))
	num = hwy.MulAdd4(x2, num, hwy.Set4(T(fastTanhN1)))
	num = hwy.MulAdd4(x2, num, hwy.Set4(T(fastTanhN0)))
	num = hwy.Mul4(x, num)

	den := hwy.Add4(x2, hwy.Set4(T(fastTanhD3)))
	den = hwy.MulAdd4(x2, den, hwy.Set4(T(fastTanhD2)))
	den = hwy.MulAdd4(x2, den, hwy.Set4(T(fastTanhD1)))
	den = hwy.MulAdd4(x2, den, hwy.Set4(T(fastTanhD0)))

	return hwy.Div4(num, den)
}
