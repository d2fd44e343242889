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

package hwy

import (
	"math"
	"unsafe"
)

// This file provides the pure Go lane implementations of the Vec operations.
// Every operation works on fixed-size arrays passed by value, so the
// compiler keeps them on the stack and nothing here allocates.

// Load creates a vector by loading data from a slice.
// Lanes past the end of src are zero.
func Load[T Floats](src []T) Vec[T] {
	var v Vec[T]
	v.n = MaxLanes[T]()
	copy(v.data[:v.n], src)
	return v
}

// Store writes a vector's data to a slice.
// At most min(len(dst), NumLanes) elements are written.
func Store[T Floats](v Vec[T], dst []T) {
	n := min(len(dst), v.n)
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Floats](value T) Vec[T] {
	var v Vec[T]
	v.n = MaxLanes[T]()
	for i := range v.n {
		v.data[i] = value
	}
	return v
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Floats]() Vec[T] {
	return Vec[T]{n: MaxLanes[T]()}
}

// Add performs element-wise addition.
func Add[T Floats](a, b Vec[T]) Vec[T] {
	for i := range a.n {
		a.data[i] += b.data[i]
	}
	return a
}

// Sub performs element-wise subtraction.
func Sub[T Floats](a, b Vec[T]) Vec[T] {
	for i := range a.n {
		a.data[i] -= b.data[i]
	}
	return a
}

// Mul performs element-wise multiplication.
func Mul[T Floats](a, b Vec[T]) Vec[T] {
	for i := range a.n {
		a.data[i] *= b.data[i]
	}
	return a
}

// Div performs element-wise division.
func Div[T Floats](a, b Vec[T]) Vec[T] {
	for i := range a.n {
		a.data[i] /= b.data[i]
	}
	return a
}

// Neg negates all lanes.
func Neg[T Floats](v Vec[T]) Vec[T] {
	for i := range v.n {
		v.data[i] = -v.data[i]
	}
	return v
}

// Abs computes absolute value.
func Abs[T Floats](v Vec[T]) Vec[T] {
	for i := range v.n {
		if v.data[i] < 0 {
			v.data[i] = -v.data[i]
		}
	}
	return v
}

// Min returns element-wise minimum.
func Min[T Floats](a, b Vec[T]) Vec[T] {
	for i := range a.n {
		if b.data[i] < a.data[i] {
			a.data[i] = b.data[i]
		}
	}
	return a
}

// Max returns element-wise maximum.
func Max[T Floats](a, b Vec[T]) Vec[T] {
	for i := range a.n {
		if b.data[i] > a.data[i] {
			a.data[i] = b.data[i]
		}
	}
	return a
}

// MulAdd performs fused multiply-add: a*b + c.
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	for i := range a.n {
		c.data[i] = a.data[i]*b.data[i] + c.data[i]
	}
	return c
}

// ReduceSum returns the sum of all lanes.
func ReduceSum[T Floats](v Vec[T]) T {
	var sum T
	for i := range v.n {
		sum += v.data[i]
	}
	return sum
}

// ReduceMax returns the maximum value across all lanes.
func ReduceMax[T Floats](v Vec[T]) T {
	m := v.data[0]
	for i := 1; i < v.n; i++ {
		if v.data[i] > m {
			m = v.data[i]
		}
	}
	return m
}

// RoundToEven rounds each lane to the nearest integer, ties to even.
func RoundToEven[T Floats](v Vec[T]) Vec[T] {
	for i := range v.n {
		v.data[i] = T(math.RoundToEven(float64(v.data[i])))
	}
	return v
}

// LessThan returns a mask of lanes where a < b.
func LessThan[T Floats](a, b Vec[T]) Mask[T] {
	m := Mask[T]{n: a.n}
	for i := range a.n {
		m.bits[i] = a.data[i] < b.data[i]
	}
	return m
}

// GreaterThan returns a mask of lanes where a > b.
func GreaterThan[T Floats](a, b Vec[T]) Mask[T] {
	m := Mask[T]{n: a.n}
	for i := range a.n {
		m.bits[i] = a.data[i] > b.data[i]
	}
	return m
}

// IfThenElse selects lanes from yes where the mask is active, otherwise from no.
func IfThenElse[T Floats](mask Mask[T], yes, no Vec[T]) Vec[T] {
	for i := range mask.n {
		if mask.bits[i] {
			no.data[i] = yes.data[i]
		}
	}
	return no
}

// Pow2 computes 2^k for integral-valued lanes k by building the IEEE 754
// exponent bits directly. k must lie in the normal exponent range.
func Pow2[T Floats](k Vec[T]) Vec[T] {
	for i := range k.n {
		k.data[i] = pow2(k.data[i])
	}
	return k
}

func pow2[T Floats](k T) T {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return T(math.Float32frombits(uint32(int32(k)+127) << 23))
	}
	return T(math.Float64frombits(uint64(int64(k)+1023) << 52))
}
