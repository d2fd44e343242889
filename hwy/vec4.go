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

import "math"

// Vec4Lanes is the lane count of Vec4, fixed at compile time for both
// float32 and float64.
const Vec4Lanes = 4

// Vec4 is a four-lane vector whose width does not depend on the dispatch
// level. Size-specialized layers store their weights as arrays of Vec4
// tiles, so the tile layout is known when the layer type is generated.
//
// Vec4 is an array type: assignment copies, and individual lanes can be
// addressed directly as v[i].
type Vec4[T Floats] [Vec4Lanes]T

// Set4 broadcasts value to all four lanes.
func Set4[T Floats](value T) Vec4[T] {
	return Vec4[T]{value, value, value, value}
}

// Load4 loads up to four elements from src. Missing lanes are zero.
func Load4[T Floats](src []T) Vec4[T] {
	var v Vec4[T]
	copy(v[:], src)
	return v
}

// Store4 writes up to four lanes of v into dst.
func Store4[T Floats](v Vec4[T], dst []T) {
	copy(dst, v[:])
}

// LoadTiles4 packs src into consecutive tiles. Lanes past len(src) are zero.
func LoadTiles4[T Floats](dst []Vec4[T], src []T) {
	for i := range dst {
		if len(src) >= Vec4Lanes {
			dst[i] = Vec4[T](src[:Vec4Lanes])
			src = src[Vec4Lanes:]
			continue
		}
		dst[i] = Load4(src)
		src = nil
	}
}

// StoreTiles4 unpacks tiles into dst, writing len(dst) elements at most.
func StoreTiles4[T Floats](dst []T, src []Vec4[T]) {
	for _, v := range src {
		if len(dst) == 0 {
			return
		}
		n := copy(dst, v[:])
		dst = dst[n:]
	}
}

// Add4 performs element-wise addition.
func Add4[T Floats](a, b Vec4[T]) Vec4[T] {
	return Vec4[T]{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

// Sub4 performs element-wise subtraction.
func Sub4[T Floats](a, b Vec4[T]) Vec4[T] {
	return Vec4[T]{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

// Mul4 performs element-wise multiplication.
func Mul4[T Floats](a, b Vec4[T]) Vec4[T] {
	return Vec4[T]{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

// Div4 performs element-wise division.
func Div4[T Floats](a, b Vec4[T]) Vec4[T] {
	return Vec4[T]{a[0] / b[0], a[1] / b[1], a[2] / b[2], a[3] / b[3]}
}

// Neg4 negates all lanes.
func Neg4[T Floats](v Vec4[T]) Vec4[T] {
	return Vec4[T]{-v[0], -v[1], -v[2], -v[3]}
}

// MulAdd4 computes a*b + c.
func MulAdd4[T Floats](a, b, c Vec4[T]) Vec4[T] {
	return Vec4[T]{a[0]*b[0] + c[0], a[1]*b[1] + c[1], a[2]*b[2] + c[2], a[3]*b[3] + c[3]}
}

// Min4 returns element-wise minimum.
func Min4[T Floats](a, b Vec4[T]) Vec4[T] {
	for i := range a {
		a[i] = min(a[i], b[i])
	}
	return a
}

// Max4 returns element-wise maximum.
func Max4[T Floats](a, b Vec4[T]) Vec4[T] {
	for i := range a {
		a[i] = max(a[i], b[i])
	}
	return a
}

// ReduceSum4 is the horizontal add of the four lanes.
func ReduceSum4[T Floats](v Vec4[T]) T {
	return (v[0] + v[1]) + (v[2] + v[3])
}

// ReduceMax4 returns the largest lane.
func ReduceMax4[T Floats](v Vec4[T]) T {
	return max(max(v[0], v[1]), max(v[2], v[3]))
}

// RoundToEven4 rounds each lane to the nearest integer, ties to even.
func RoundToEven4[T Floats](v Vec4[T]) Vec4[T] {
	for i := range v {
		v[i] = T(math.RoundToEven(float64(v[i])))
	}
	return v
}

// Pow2x4 is the Vec4 form of Pow2.
func Pow2x4[T Floats](k Vec4[T]) Vec4[T] {
	for i := range k {
		k[i] = pow2(k[i])
	}
	return k
}
