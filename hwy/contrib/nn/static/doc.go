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

// Package static provides size-specialized layers whose weights and state
// are fixed-size arrays of hwy.Vec4 tiles.
//
// Each type, such as GRU1x8 or Dense16x16, is generated by cmd/rtgen and
// computes the same function as the corresponding layer in package nn. The
// sizes are part of the type, so a layer is one contiguous value: Clone is a
// struct copy and Forward never touches the heap.
//
// Sizes that are not a multiple of four are padded to whole tiles. Padding
// lanes of weights and biases are zero and are never written by the setters,
// so padded outputs cannot leak into real ones.
//
// Layers can be chained without unpacking by passing one layer's Outs to the
// next layer's ForwardLanes:
//
//	in := [1]hwy.Vec4[float32]{{0.5}}
//	gru := static.NewGRU1x8[float32]()
//	dense := static.NewDense8x1[float32]()
//	gru.ForwardLanes(&in)
//	dense.ForwardLanes(&gru.Outs)
//
// New looks a layer up by Shape for code that only knows sizes at run time.
package static

//go:generate go run ../../../../cmd/rtgen -output .
