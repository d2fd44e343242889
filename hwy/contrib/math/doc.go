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

// Package math provides lane-wise transcendental functions for the
// activation kernels.
//
// Every function comes in three shapes:
//
//   - a Vec form (ExpVec, SigmoidVec, TanhVec, FastTanhVec) for runtime-width
//     kernels,
//   - a Vec4 form (Exp4, Sigmoid4, Tanh4, FastTanh4) for size-specialized
//     layers, evaluating the same polynomial with the same operation order,
//   - a scalar reference (Exp, Sigmoid, Tanh, FastTanh) backed by
//     github.com/chewxy/math32 for float32 and the standard library for
//     float64.
//
// The vector forms compose hwy operations on stack values and never allocate.
package math
