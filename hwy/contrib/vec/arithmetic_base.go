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

// Package vec provides the element-wise slice primitives the layer kernels
// are built from.
//
// Each operation has a lane form running on hwy.Vec with a scalar tail and
// a Scalar reference form. All of them process min(len) elements and allow
// dst to alias an input, so dst[i] = a[i] + dst[i] style in-place updates
// are safe.
package vec

import "github.com/go-highway/rtneural/hwy"

// AddTo performs element-wise addition: dst[i] = a[i] + b[i].
//
// Example:
//
//	a := []float32{1, 2, 3, 4}
//	b := []float32{5, 6, 7, 8}
//	dst := make([]float32, 4)
//	AddTo(dst, a, b)  // dst is now {6, 8, 10, 12}
func AddTo[T hwy.Floats](dst, a, b []T) {
	n := min(len(dst), len(a), len(b))
	lanes := hwy.MaxLanes[T]()

	// Process full vectors
	var i int
	for i = 0; i+lanes <= n; i += lanes {
		hwy.Store(hwy.Add(hwy.Load(a[i:]), hwy.Load(b[i:])), dst[i:])
	}

	// Handle tail elements with scalar code
	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

// SubTo performs element-wise subtraction: dst[i] = a[i] - b[i].
func SubTo[T hwy.Floats](dst, a, b []T) {
	n := min(len(dst), len(a), len(b))
	lanes := hwy.MaxLanes[T]()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		hwy.Store(hwy.Sub(hwy.Load(a[i:]), hwy.Load(b[i:])), dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] - b[i]
	}
}

// MulTo performs element-wise multiplication: dst[i] = a[i] * b[i].
func MulTo[T hwy.Floats](dst, a, b []T) {
	n := min(len(dst), len(a), len(b))
	lanes := hwy.MaxLanes[T]()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		hwy.Store(hwy.Mul(hwy.Load(a[i:]), hwy.Load(b[i:])), dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] * b[i]
	}
}

// Copy copies min(len(dst), len(src)) elements.
func Copy[T hwy.Floats](dst, src []T) {
	copy(dst, src)
}

// AddToScalar is the reference form of AddTo.
func AddToScalar[T hwy.Floats](dst, a, b []T) {
	n := min(len(dst), len(a), len(b))
	for i := range n {
		dst[i] = a[i] + b[i]
	}
}

// SubToScalar is the reference form of SubTo.
func SubToScalar[T hwy.Floats](dst, a, b []T) {
	n := min(len(dst), len(a), len(b))
	for i := range n {
		dst[i] = a[i] - b[i]
	}
}

// MulToScalar is the reference form of MulTo.
func MulToScalar[T hwy.Floats](dst, a, b []T) {
	n := min(len(dst), len(a), len(b))
	for i := range n {
		dst[i] = a[i] * b[i]
	}
}
