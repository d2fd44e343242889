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

// Package matvec provides row-major matrix-vector products for the layer
// kernels.
//
// # Matrix-Vector Product
//
// Three forms compute result = M * v with M of shape [rows, cols]:
//   - MatVec(m, rows, cols, v, result) - lane-parallel dot per row
//   - MatVecScalar(m, rows, cols, v, result) - scalar reference
//   - MatVecFloat32 / MatVecFloat64 - gonum BLAS Gemv
//
// Each output element result[i] is the dot product of row i with vector v.
// None of them allocate.
//
// # Example Usage
//
//	import "github.com/go-highway/rtneural/hwy/contrib/matvec"
//
//	m := []float32{1, 2, 3, 4, 5, 6}
//	v := []float32{1, 0, 1}
//	result := make([]float32, 2)
//	matvec.MatVec(m, 2, 3, v, result)  // result = [4, 10]
package matvec
