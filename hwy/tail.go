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

// TailStart returns the offset of the first element that does not fit in a
// full Vec[T] when processing size elements.
//
// Example:
//
//	lanes := hwy.MaxLanes[float32]()
//	tail := hwy.TailStart[float32](len(data))
//	for i := 0; i < tail; i += lanes {
//	    hwy.Store(hwy.Add(hwy.Load(data[i:]), one), out[i:])
//	}
//	if tail < len(data) {
//	    // Load zero-fills the missing lanes, Store writes only len(out[tail:]).
//	    hwy.Store(hwy.Add(hwy.Load(data[tail:]), one), out[tail:])
//	}
func TailStart[T Floats](size int) int {
	maxLanes := MaxLanes[T]()
	return size - size%maxLanes
}

// AlignedSize rounds up size to the next multiple of vector width.
func AlignedSize[T Floats](size int) int {
	maxLanes := MaxLanes[T]()
	return ((size + maxLanes - 1) / maxLanes) * maxLanes
}

// Tiles4 returns the number of Vec4 tiles needed to hold size elements.
func Tiles4(size int) int {
	return (size + Vec4Lanes - 1) / Vec4Lanes
}
