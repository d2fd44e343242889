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

package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/go-highway/rtneural/hwy"
	"github.com/go-highway/rtneural/hwy/contrib/nn"
	"github.com/go-highway/rtneural/hwy/contrib/nn/static"
	"github.com/samber/lo"
)

// ErrFormat is returned for model files that are not valid RTNeural JSON.
var ErrFormat = errors.New("model: invalid model file")

// File is the RTNeural JSON model format.
type File struct {
	InShape []*int      `json:"in_shape"`
	Layers  []LayerSpec `json:"layers"`
}

// LayerSpec describes one layer of a model file. Shape's last element is
// the layer's output size. Weights holds the layer's tensors in the order
// the exporting framework stores them.
type LayerSpec struct {
	Type       string            `json:"type"`
	Activation string            `json:"activation"`
	Shape      []*int            `json:"shape"`
	KernelSize []int             `json:"kernel_size,omitempty"`
	Dilation   []int             `json:"dilation,omitempty"`
	Weights    []json.RawMessage `json:"weights"`
}

// LoadJSON reads a model file from r.
func LoadJSON[T hwy.Floats](r io.Reader, opts ...Option[T]) (*Model[T], error) {
	var f File
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	return Build(&f, opts...)
}

// ParseJSON parses a model file held in memory.
func ParseJSON[T hwy.Floats](data []byte, opts ...Option[T]) (*Model[T], error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	return Build(&f, opts...)
}

// Build constructs a model from a decoded model file.
func Build[T hwy.Floats](f *File, opts ...Option[T]) (*Model[T], error) {
	c := buildConfig(opts)
	inSize, err := lastDim(f.InShape)
	if err != nil {
		return nil, fmt.Errorf("%w: in_shape: %w", ErrFormat, err)
	}
	m := New(inSize, opts...)
	for i, spec := range f.Layers {
		if err := c.addLayer(m, spec); err != nil {
			return nil, fmt.Errorf("layer %d (%s): %w", i, spec.Type, err)
		}
	}
	c.logger.Debug("model: loaded", "layers", len(m.layers), "in", m.InSize(), "out", m.OutSize())
	return m, nil
}

func lastDim(shape []*int) (int, error) {
	if len(shape) == 0 || shape[len(shape)-1] == nil {
		return 0, errors.New("missing last dimension")
	}
	n := *shape[len(shape)-1]
	if n <= 0 {
		return 0, fmt.Errorf("non-positive size %d", n)
	}
	return n, nil
}

func (c *config[T]) addLayer(m *Model[T], spec LayerSpec) error {
	in := m.OutSize()
	if spec.Type == "activation" {
		return c.addActivation(m, spec.Activation, in)
	}

	out, err := lastDim(spec.Shape)
	if err != nil {
		return fmt.Errorf("%w: shape: %w", ErrFormat, err)
	}

	var l nn.Layer[T]
	switch spec.Type {
	case "dense", "time-distributed-dense":
		l, err = c.loadDense(spec, in, out)
	case "conv1d":
		l, err = c.loadConv1D(spec, in, out)
	case "gru":
		l, err = c.loadGRU(spec, in, out)
	case "lstm":
		l, err = c.loadLSTM(spec, in, out)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLayer, spec.Type)
	}
	if err != nil {
		return err
	}
	if err := m.Add(l); err != nil {
		return err
	}
	return c.addActivation(m, spec.Activation, out)
}

func (c *config[T]) addActivation(m *Model[T], name string, size int) error {
	if name == "" || name == "linear" {
		return nil
	}
	kind, err := nn.ParseActivation(name)
	if err != nil {
		return fmt.Errorf("%w: activation %q", ErrUnknownLayer, name)
	}
	dyn := nn.NewActivation(kind, size, c.layerOpts...)
	var l nn.Layer[T] = dyn
	if c.static {
		switch s := c.staticLayer(static.Shape{Kind: kind.String(), In: size, Out: size}).(type) {
		case nil:
		case alphaSetter[T]:
			s.SetAlpha(dyn.Alpha())
			l = s
		default:
			if kind != nn.ActivationELU {
				l = s
			}
		}
	}
	return m.Add(l)
}

// alphaSetter is implemented by the generated ELU layers.
type alphaSetter[T hwy.Floats] interface {
	nn.Layer[T]
	SetAlpha(alpha T)
}

// staticLayer returns nil when no generated layer matches s.
func (c *config[T]) staticLayer(s static.Shape) nn.Layer[T] {
	l, err := static.New[T](s)
	if err != nil {
		return nil
	}
	c.logger.Debug("model: using static layer", "shape", s.String())
	return l
}

// pick returns the generated layer for s when static layers are enabled and
// one exists, and dynamic() otherwise.
func pick[L any, T hwy.Floats](c *config[T], s static.Shape, dynamic func() L) L {
	if c.static {
		if l, ok := c.staticLayer(s).(L); ok {
			return l
		}
	}
	return dynamic()
}

type denseLayer[T hwy.Floats] interface {
	nn.Layer[T]
	SetWeights(w [][]T) error
	SetBias(b []T) error
}

type convLayer[T hwy.Floats] interface {
	nn.Layer[T]
	SetWeights(w [][][]T) error
	SetBias(b []T) error
}

type gruLayer[T hwy.Floats] interface {
	nn.Layer[T]
	SetWVals(w [][]T) error
	SetUVals(u [][]T) error
	SetBVals(b [][]T) error
}

type lstmLayer[T hwy.Floats] interface {
	nn.Layer[T]
	SetWVals(w [][]T) error
	SetUVals(u [][]T) error
	SetBVals(b []T) error
}

func (c *config[T]) loadDense(spec LayerSpec, in, out int) (nn.Layer[T], error) {
	var kernel [][]float64
	var bias []float64
	if err := decodeWeights(spec.Weights, &kernel, &bias); err != nil {
		return nil, err
	}
	if err := nn.CheckMatrix("dense", "kernel", kernel, in, out); err != nil {
		return nil, err
	}

	l := pick(c, static.Shape{Kind: "dense", In: in, Out: out}, func() denseLayer[T] {
		return nn.NewDense(in, out, c.layerOpts...)
	})
	// The file stores the kernel as [in][out].
	w := make([][]T, out)
	for o := range w {
		w[o] = make([]T, in)
		for i := range in {
			w[o][i] = T(kernel[i][o])
		}
	}
	if err := l.SetWeights(w); err != nil {
		return nil, err
	}
	if err := l.SetBias(toVector[T](bias)); err != nil {
		return nil, err
	}
	return l, nil
}

func (c *config[T]) loadConv1D(spec LayerSpec, in, out int) (nn.Layer[T], error) {
	if len(spec.KernelSize) == 0 || spec.KernelSize[0] <= 0 {
		return nil, fmt.Errorf("%w: conv1d needs a positive kernel_size", ErrFormat)
	}
	kernelSize := spec.KernelSize[0]
	dilation := 1
	if len(spec.Dilation) > 0 {
		dilation = spec.Dilation[0]
	}
	if dilation <= 0 {
		return nil, fmt.Errorf("%w: conv1d dilation %d", ErrFormat, dilation)
	}

	var kernel [][][]float64
	var bias []float64
	if err := decodeWeights(spec.Weights, &kernel, &bias); err != nil {
		return nil, err
	}
	if err := nn.CheckTensor3("conv1d", "kernel", kernel, kernelSize, in, out); err != nil {
		return nil, err
	}

	s := static.Shape{Kind: "conv1d", In: in, Out: out, Kernel: kernelSize, Dilation: dilation}
	l := pick(c, s, func() convLayer[T] {
		return nn.NewConv1D(in, out, kernelSize, dilation, c.layerOpts...)
	})
	// The file stores the kernel as [kernel][in][out] with the oldest tap
	// first; layers expect [out][in][kernel] with the newest tap first.
	w := make([][][]T, out)
	for o := range w {
		w[o] = make([][]T, in)
		for i := range in {
			w[o][i] = make([]T, kernelSize)
			for k := range kernelSize {
				w[o][i][k] = T(kernel[kernelSize-1-k][i][o])
			}
		}
	}
	if err := l.SetWeights(w); err != nil {
		return nil, err
	}
	if err := l.SetBias(toVector[T](bias)); err != nil {
		return nil, err
	}
	return l, nil
}

func (c *config[T]) loadGRU(spec LayerSpec, in, out int) (nn.Layer[T], error) {
	var w, u, b [][]float64
	if err := decodeWeights(spec.Weights, &w, &u, &b); err != nil {
		return nil, err
	}
	l := pick(c, static.Shape{Kind: "gru", In: in, Out: out}, func() gruLayer[T] {
		return nn.NewGRU(in, out, c.layerOpts...)
	})
	if err := l.SetWVals(toMatrix[T](w)); err != nil {
		return nil, err
	}
	if err := l.SetUVals(toMatrix[T](u)); err != nil {
		return nil, err
	}
	if err := l.SetBVals(toMatrix[T](b)); err != nil {
		return nil, err
	}
	return l, nil
}

func (c *config[T]) loadLSTM(spec LayerSpec, in, out int) (nn.Layer[T], error) {
	var w, u [][]float64
	var b []float64
	if err := decodeWeights(spec.Weights, &w, &u, &b); err != nil {
		return nil, err
	}
	l := pick(c, static.Shape{Kind: "lstm", In: in, Out: out}, func() lstmLayer[T] {
		return nn.NewLSTM(in, out, c.layerOpts...)
	})
	if err := l.SetWVals(toMatrix[T](w)); err != nil {
		return nil, err
	}
	if err := l.SetUVals(toMatrix[T](u)); err != nil {
		return nil, err
	}
	if err := l.SetBVals(toVector[T](b)); err != nil {
		return nil, err
	}
	return l, nil
}

// decodeWeights unmarshals the weight tensors into dst in order.
func decodeWeights(weights []json.RawMessage, dst ...any) error {
	if len(weights) != len(dst) {
		return fmt.Errorf("%w: got %d weight tensors, want %d", ErrFormat, len(weights), len(dst))
	}
	for i, raw := range weights {
		if err := json.Unmarshal(raw, dst[i]); err != nil {
			return fmt.Errorf("%w: weights[%d]: %w", ErrFormat, i, err)
		}
	}
	return nil
}

func toVector[T hwy.Floats](v []float64) []T {
	return lo.Map(v, func(x float64, _ int) T { return T(x) })
}

func toMatrix[T hwy.Floats](m [][]float64) [][]T {
	return lo.Map(m, func(row []float64, _ int) []T { return toVector[T](row) })
}
