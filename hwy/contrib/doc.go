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

// Package contrib holds the numeric kernels and the inference layers built
// on the hwy lane types.
//
// # Subpackages
//
//   - math: lane-wise exp, sigmoid, tanh and fast tanh, in Vec and Vec4 form
//   - vec: element-wise arithmetic and dot products over slices
//   - matvec: matrix-vector products, lane and gonum BLAS variants
//   - activation: slice activations (tanh, fast_tanh, relu, sigmoid, softmax, elu)
//   - nn: runtime-sized Dense, Conv1D, GRU, LSTM and activation layers
//   - nn/static: generated size-specialized layers on hwy.Vec4 tiles
//   - model: sequential container and the RTNeural JSON loader
//   - voice: a bank of independent model copies run on a worker pool
//   - workerpool: persistent goroutines for ParallelFor
//
// A typical program loads a model once and calls Forward per sample:
//
//	import "github.com/go-highway/rtneural/hwy/contrib/model"
//
//	m, err := model.LoadJSON[float32](f, model.WithStatic[float32](true))
//	if err != nil {
//		return err
//	}
//	for i, x := range samples {
//		out[i] = m.Forward([]float32{x})
//	}
package contrib
