package nn

import (
	"fmt"

	"github.com/go-highway/rtneural/hwy"
)

// Conv1D is a causal dilated 1-D convolution processing one frame per call:
//
//	output[o] = bias[o] + Σ_c Σ_k W[o][c][k] * x[t - k*dilation][c]
//
// Tap k = 0 applies to the current frame. Past frames are kept in a ring of
// (kernelSize-1)*dilation + 1 frames, the shortest window that holds every
// tap.
type Conv1D[T hwy.Floats] struct {
	inSize, outSize      int
	kernelSize, dilation int

	weights []T // [outSize][kernelSize][inSize]
	bias    []T

	state     []T // [stateSize][inSize], zero-initialized
	stateSize int
	statePtr  int
	taps      []int // ring row of each tap, scratch for Forward

	k Kernels[T]
}

// NewConv1D creates a Conv1D layer with zero weights, bias and state.
func NewConv1D[T hwy.Floats](inSize, outSize, kernelSize, dilation int, opts ...Option[T]) *Conv1D[T] {
	mustPositive("conv1d", inSize, outSize, kernelSize, dilation)
	o := buildOptions(opts)
	stateSize := (kernelSize-1)*dilation + 1
	return &Conv1D[T]{
		inSize:     inSize,
		outSize:    outSize,
		kernelSize: kernelSize,
		dilation:   dilation,
		weights:    make([]T, outSize*kernelSize*inSize),
		bias:       make([]T, outSize),
		state:      make([]T, stateSize*inSize),
		stateSize:  stateSize,
		taps:       make([]int, kernelSize),
		k:          o.kernels,
	}
}

func (l *Conv1D[T]) Name() string    { return "conv1d" }
func (l *Conv1D[T]) InSize() int     { return l.inSize }
func (l *Conv1D[T]) OutSize() int    { return l.outSize }
func (l *Conv1D[T]) KernelSize() int { return l.kernelSize }
func (l *Conv1D[T]) Dilation() int   { return l.dilation }

// Reset clears the frame window.
func (l *Conv1D[T]) Reset() {
	clear(l.state)
	l.statePtr = 0
}

// Forward inserts the input frame into the window and computes one output
// frame.
func (l *Conv1D[T]) Forward(input, output []T) {
	in := l.inSize
	copy(l.state[l.statePtr*in:(l.statePtr+1)*in], input[:in])

	for k := range l.taps {
		l.taps[k] = (l.statePtr + l.stateSize - k*l.dilation) % l.stateSize
	}

	for o := range l.outSize {
		sum := l.bias[o]
		row := l.weights[o*l.kernelSize*in : (o+1)*l.kernelSize*in]
		for k, tap := range l.taps {
			sum += l.k.Dot(row[k*in:(k+1)*in], l.state[tap*in:(tap+1)*in])
		}
		output[o] = sum
	}

	l.statePtr++
	if l.statePtr == l.stateSize {
		l.statePtr = 0
	}
}

// SetWeights copies an [outSize][inSize][kernelSize] weight tensor.
func (l *Conv1D[T]) SetWeights(w [][][]T) error {
	if err := CheckTensor3("conv1d", "weights", w, l.outSize, l.inSize, l.kernelSize); err != nil {
		return err
	}
	for o := range l.outSize {
		for c := range l.inSize {
			for k := range l.kernelSize {
				l.weights[(o*l.kernelSize+k)*l.inSize+c] = w[o][c][k]
			}
		}
	}
	return nil
}

// SetBias copies an [outSize] bias vector.
func (l *Conv1D[T]) SetBias(b []T) error {
	if err := CheckVector("conv1d", "bias", b, l.outSize); err != nil {
		return err
	}
	copy(l.bias, b)
	return nil
}

// Weight returns W[o][c][k].
func (l *Conv1D[T]) Weight(o, c, k int) T {
	return l.weights[(o*l.kernelSize+k)*l.inSize+c]
}

// Bias returns bias[o].
func (l *Conv1D[T]) Bias(o int) T { return l.bias[o] }

// Clone returns a deep copy of the layer, including its frame window.
func (l *Conv1D[T]) Clone() Layer[T] {
	c := *l
	c.weights = append([]T(nil), l.weights...)
	c.bias = append([]T(nil), l.bias...)
	c.state = append([]T(nil), l.state...)
	c.taps = make([]int, len(l.taps))
	return &c
}

func (l *Conv1D[T]) String() string {
	return fmt.Sprintf("conv1d(%d->%d, kernel=%d, dilation=%d)", l.inSize, l.outSize, l.kernelSize, l.dilation)
}
