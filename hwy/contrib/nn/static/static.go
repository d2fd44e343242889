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

package static

import (
	"errors"
	"fmt"

	"github.com/go-highway/rtneural/hwy"
)

// ErrNoShape is returned by New when no layer was generated for a shape.
var ErrNoShape = errors.New("static: no generated layer for shape")

// Shape identifies a generated layer. Kernel and Dilation are only set for
// conv1d; activations have In == Out.
type Shape struct {
	Kind     string
	In, Out  int
	Kernel   int
	Dilation int
}

func (s Shape) String() string {
	if s.Kind == "conv1d" {
		return fmt.Sprintf("conv1d %dx%d k%d d%d", s.In, s.Out, s.Kernel, s.Dilation)
	}
	return fmt.Sprintf("%s %dx%d", s.Kind, s.In, s.Out)
}

// dotTiles multiplies a and b lane-wise, accumulating in one tile, and
// reduces the accumulator to a scalar.
func dotTiles[T hwy.Floats](a, b []hwy.Vec4[T]) T {
	var acc hwy.Vec4[T]
	for k := range a {
		acc = hwy.MulAdd4(a[k], b[k], acc)
	}
	return hwy.ReduceSum4(acc)
}
