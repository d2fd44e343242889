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

// Package model chains nn layers into a single-input model and loads models
// exported in the RTNeural JSON format.
//
// A Model owns one output buffer per layer, allocated when the layer is
// added, so Forward runs without allocating.
package model

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-highway/rtneural/hwy"
	"github.com/go-highway/rtneural/hwy/contrib/nn"
)

var (
	// ErrSizeMismatch is returned when a layer's input size does not match
	// the output size of the layer before it.
	ErrSizeMismatch = errors.New("model: layer size mismatch")

	// ErrUnknownLayer is returned when a model file names a layer type that
	// cannot be built.
	ErrUnknownLayer = errors.New("model: layer type not recognized")
)

// Option configures New, ParseJSON and LoadJSON.
type Option[T hwy.Floats] func(*config[T])

type config[T hwy.Floats] struct {
	logger    *slog.Logger
	static    bool
	layerOpts []nn.Option[T]
}

func buildConfig[T hwy.Floats](opts []Option[T]) config[T] {
	c := config[T]{logger: slog.Default()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithLogger sets the logger used for debug output. It defaults to
// slog.Default().
func WithLogger[T hwy.Floats](logger *slog.Logger) Option[T] {
	return func(c *config[T]) { c.logger = logger }
}

// WithStatic makes the loader use a generated size-specialized layer from
// package static whenever one exists for a layer's shape.
func WithStatic[T hwy.Floats](enabled bool) Option[T] {
	return func(c *config[T]) { c.static = enabled }
}

// WithLayerOptions passes options to every dynamic layer the loader builds.
func WithLayerOptions[T hwy.Floats](opts ...nn.Option[T]) Option[T] {
	return func(c *config[T]) { c.layerOpts = append(c.layerOpts, opts...) }
}

// Model runs a chain of layers, one frame at a time.
type Model[T hwy.Floats] struct {
	inSize int
	layers []nn.Layer[T]
	bufs   [][]T

	// last input frame, used as the output of an empty model
	passthru []T
	logger   *slog.Logger
}

// New creates an empty model taking inSize inputs per frame.
func New[T hwy.Floats](inSize int, opts ...Option[T]) *Model[T] {
	if inSize <= 0 {
		panic(fmt.Sprintf("model: input size must be positive, got %d", inSize))
	}
	c := buildConfig(opts)
	return &Model[T]{inSize: inSize, passthru: make([]T, inSize), logger: c.logger}
}

// Add appends a layer. Its input size must equal the current output size.
func (m *Model[T]) Add(l nn.Layer[T]) error {
	if l.InSize() != m.OutSize() {
		return fmt.Errorf("%w: layer %d (%s) takes %d inputs, previous output has %d",
			ErrSizeMismatch, len(m.layers), l.Name(), l.InSize(), m.OutSize())
	}
	m.layers = append(m.layers, l)
	m.bufs = append(m.bufs, make([]T, l.OutSize()))
	m.logger.Debug("model: added layer", "index", len(m.layers)-1, "layer", l.Name(), "in", l.InSize(), "out", l.OutSize())
	return nil
}

func (m *Model[T]) InSize() int { return m.inSize }

// OutSize is the output size of the last layer, or InSize for an empty model.
func (m *Model[T]) OutSize() int {
	if len(m.layers) == 0 {
		return m.inSize
	}
	return m.layers[len(m.layers)-1].OutSize()
}

// Layers returns the model's layers. The slice aliases the model.
func (m *Model[T]) Layers() []nn.Layer[T] { return m.layers }

// Reset resets every layer's state.
func (m *Model[T]) Reset() {
	for _, l := range m.layers {
		l.Reset()
	}
}

// Forward runs one frame through every layer and returns the first output
// element. An empty model passes its input through.
func (m *Model[T]) Forward(input []T) T {
	if len(m.layers) == 0 {
		copy(m.passthru, input[:m.inSize])
		return m.passthru[0]
	}
	in := input[:m.inSize]
	for i, l := range m.layers {
		l.Forward(in, m.bufs[i])
		in = m.bufs[i]
	}
	return in[0]
}

// Outputs returns the last layer's output from the most recent Forward.
// The slice aliases the model and is overwritten by the next call. For an
// empty model it holds the last input.
func (m *Model[T]) Outputs() []T {
	if len(m.bufs) == 0 {
		return m.passthru
	}
	return m.bufs[len(m.bufs)-1]
}

// Clone returns a deep copy of the model, including layer state.
func (m *Model[T]) Clone() *Model[T] {
	c := &Model[T]{
		inSize:   m.inSize,
		layers:   make([]nn.Layer[T], len(m.layers)),
		bufs:     make([][]T, len(m.bufs)),
		passthru: append([]T(nil), m.passthru...),
		logger:   m.logger,
	}
	for i, l := range m.layers {
		c.layers[i] = l.Clone()
		c.bufs[i] = make([]T, len(m.bufs[i]))
	}
	return c
}
