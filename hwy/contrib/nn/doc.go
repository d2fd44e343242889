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

// Package nn provides runtime-sized neural network layers for real-time
// inference.
//
// # Layers
//
// Every layer implements Layer and processes one frame per Forward call:
//   - Dense - affine transform, out = W*x + b
//   - Conv1D - causal dilated 1-D convolution over a ring of past frames
//   - GRU - gated recurrent unit with the split-bias (reset_after) convention
//   - LSTM - long short-term memory cell, gate order i, f, c, o
//   - Activation - tanh, fast_tanh, relu, sigmoid, softmax or elu
//
// Sizes are fixed at construction. All weights, recurrent state and scratch
// buffers are allocated by the constructor, so Forward never allocates,
// locks or blocks. Forward does not validate its arguments: input must hold
// at least InSize elements and output at least OutSize.
//
// Weight setters validate shapes and return an error wrapping ErrShape.
// Fresh layers hold zero weights and zero state.
//
// # Kernels
//
// The vector primitives a layer runs with are chosen once, at construction,
// from the dispatch level detected by package hwy. With HWY_NO_SIMD set the
// scalar reference kernels are used. WithKernels overrides the choice.
//
// The size-specialized counterparts of these layers live in package
// nn/static.
//
// # Example Usage
//
//	gru := nn.NewGRU[float32](1, 8)
//	if err := gru.SetWVals(w); err != nil {
//	    return err
//	}
//	// ... SetUVals, SetBVals
//	out := make([]float32, 8)
//	for _, x := range samples {
//	    gru.Forward([]float32{x}, out)
//	}
package nn
