// Package hwy provides portable lane-wise vector operations with runtime CPU
// dispatch, sized for allocation-free use inside real-time callbacks.
//
// Two vector shapes are provided. Vec has as many lanes as the detected
// dispatch level allows and backs the runtime-sized kernels. Vec4 always has
// four lanes and backs the size-specialized layers, whose weight tiles are
// laid out at compile time.
//
// Basic usage:
//
//	import "github.com/go-highway/rtneural/hwy"
//
//	a := hwy.Load(data1)
//	b := hwy.Load(data2)
//	hwy.Store(hwy.MulAdd(a, b, hwy.Zero[float32]()), output)
//
// Both vector types are plain values backed by fixed-size arrays, so none of
// the operations in this package allocate.
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// MaxLaneCount is the largest lane count any dispatch level uses
// (AVX-512 with float32).
const MaxLaneCount = 16

// Vec is a portable vector of MaxLanes[T]() lanes.
//
// Vec instances should not be created directly; use Load, Set, or Zero instead.
type Vec[T Floats] struct {
	data [MaxLaneCount]T
	n    int
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return v.n
}

// Get returns lane i.
func (v Vec[T]) Get(i int) T {
	return v.data[i]
}

// Data returns a copy of the active lanes.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	out := make([]T, v.n)
	copy(out, v.data[:v.n])
	return out
}

// Store writes the vector's data to a slice.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}

// Mask represents the result of a comparison operation.
//
// Mask instances should not be created directly; use comparison operations
// like LessThan or GreaterThan instead.
type Mask[T Floats] struct {
	bits [MaxLaneCount]bool
	n    int
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return m.n
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits[:m.n] {
		if !bit {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits[:m.n] {
		if bit {
			return true
		}
	}
	return false
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= m.n {
		return false
	}
	return m.bits[i]
}
