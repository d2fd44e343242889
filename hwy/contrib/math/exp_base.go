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
	stdmath "math"
	"unsafe"

	"github.com/go-highway/rtneural/hwy"
)

func paramsFor[T hwy.Floats]() *expParams {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return &expF32
	}
	return &expF64
}

// ExpVec computes e^x lane-wise.
//
// Range reduction splits x = k*ln(2) + r with |r| <= ln(2)/2, e^r is
// evaluated with a Horner polynomial and the result is scaled by 2^k.
// Lanes above the overflow bound return +Inf, lanes below the underflow
// bound return 0.
func ExpVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	c := paramsFor[T]()

	overflowMask := hwy.GreaterThan(x, hwy.Set(T(c.overflow)))
	underflowMask := hwy.LessThan(x, hwy.Set(T(c.underflow)))

	// Range reduction: k = round(x / ln(2)), r = x - k * ln(2)
	k := hwy.RoundToEven(hwy.Mul(x, hwy.Set(T(c.invLn2))))

	// r = x - k*ln(2) using high/low split for precision
	r := hwy.Sub(x, hwy.Mul(k, hwy.Set(T(c.ln2Hi))))
	r = hwy.Sub(r, hwy.Mul(k, hwy.Set(T(c.ln2Lo))))

	p := hwy.Set(T(expPoly[c.degree]))
	for i := c.degree - 1; i >= 0; i-- {
		p = hwy.MulAdd(p, r, hwy.Set(T(expPoly[i])))
	}

	// Scale by 2^k using IEEE 754 bit manipulation
	k = hwy.Min(hwy.Max(k, hwy.Set(T(c.minK))), hwy.Set(T(c.maxK)))
	result := hwy.Mul(p, hwy.Pow2(k))

	// Handle special cases
	result = hwy.IfThenElse(overflowMask, hwy.Set(T(stdmath.Inf(1))), result)
	result = hwy.IfThenElse(underflowMask, hwy.Zero[T](), result)
	return result
}

// Exp4 is the Vec4 form of ExpVec.
func Exp4[T hwy.Floats](x hwy.Vec4[T]) hwy.Vec4[T] {
	c := paramsFor[T]()

	k := hwy.RoundToEven4(hwy.Mul4(x, hwy.Set4(T(c.invLn2))))
	r := hwy.Sub4(x, hwy.Mul4(k, hwy.Set4(T(c.ln2Hi))))
	r = hwy.Sub4(r, hwy.Mul4(k, hwy.Set4(T(c.ln2Lo))))

	p := hwy.Set4(T(expPoly[c.degree]))
	for i := c.degree - 1; i >= 0; i-- {
		p = hwy.MulAdd4(p, r, hwy.Set4(T(expPoly[i])))
	}

	k = hwy.Min4(hwy.Max4(k, hwy.Set4(T(c.minK))), hwy.Set4(T(c.maxK)))
	result := hwy.Mul4(p, hwy.Pow2x4(k))

	for i := range result {
		switch {
		case x[i] > T(c.overflow):
			result[i] = T(stdmath.Inf(1))
		case x[i] < T(c.underflow):
			result[i] = 0
		}
	}
	return result
}
