// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package voice runs independent copies of a model side by side, one per
// processing voice, such as the channels of a multichannel plugin.
//
// Each voice is a deep copy of a prototype model, so voices never share
// state and can run on different workers of a workerpool.Pool.
package voice

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-highway/rtneural/hwy"
	"github.com/go-highway/rtneural/hwy/contrib/model"
	"github.com/go-highway/rtneural/hwy/contrib/workerpool"
)

// ErrBlockSize is returned by Process when a block does not hold a whole
// number of frames for every voice.
var ErrBlockSize = errors.New("voice: bad block size")

// Option configures NewBank.
type Option func(*options)

type options struct {
	workers int
	pool    *workerpool.Pool
	logger  *slog.Logger
}

// WithWorkers sets the number of workers of the bank's own pool. One worker
// runs every voice on the calling goroutine. It defaults to
// min(voices, GOMAXPROCS).
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithPool shares an existing pool. The bank does not close it.
func WithPool(p *workerpool.Pool) Option {
	return func(o *options) { o.pool = p }
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// Bank holds one model per voice.
type Bank[T hwy.Floats] struct {
	voices  []*model.Model[T]
	pool    *workerpool.Pool
	ownPool bool

	// Block being processed; set by Process and read by processRange.
	in, out [][]T

	process func(start, end int)
}

// NewBank clones proto once per voice. The prototype itself is not used by
// the bank.
func NewBank[T hwy.Floats](proto *model.Model[T], numVoices int, opts ...Option) (*Bank[T], error) {
	if numVoices <= 0 {
		return nil, fmt.Errorf("voice: number of voices must be positive, got %d", numVoices)
	}
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	b := &Bank[T]{voices: make([]*model.Model[T], numVoices)}
	for i := range b.voices {
		b.voices[i] = proto.Clone()
	}
	b.process = b.processRange

	switch {
	case o.pool != nil:
		b.pool = o.pool
	default:
		workers := o.workers
		if workers <= 0 {
			workers = min(numVoices, runtime.GOMAXPROCS(0))
		}
		b.pool = workerpool.New(workers)
		b.ownPool = true
	}
	o.logger.Debug("voice: bank created", "voices", numVoices, "workers", b.pool.NumWorkers(), "in", proto.InSize(), "out", proto.OutSize())
	return b, nil
}

func (b *Bank[T]) NumVoices() int { return len(b.voices) }

// Voice returns the model of voice i.
func (b *Bank[T]) Voice(i int) *model.Model[T] { return b.voices[i] }

// Reset resets every voice.
func (b *Bank[T]) Reset() {
	for _, v := range b.voices {
		v.Reset()
	}
}

// Process runs a block through every voice. in[v] holds whole frames of
// the model's input size and out[v] receives the matching frames of its
// output size. Voices run in parallel; frames within a voice run in order.
func (b *Bank[T]) Process(in, out [][]T) error {
	if len(in) != len(b.voices) || len(out) != len(b.voices) {
		return fmt.Errorf("%w: got %d input and %d output blocks for %d voices", ErrBlockSize, len(in), len(out), len(b.voices))
	}
	for v, m := range b.voices {
		if len(in[v])%m.InSize() != 0 {
			return fmt.Errorf("%w: voice %d: %d samples is not a multiple of %d", ErrBlockSize, v, len(in[v]), m.InSize())
		}
		if frames := len(in[v]) / m.InSize(); len(out[v]) < frames*m.OutSize() {
			return fmt.Errorf("%w: voice %d: output holds %d samples, want %d", ErrBlockSize, v, len(out[v]), frames*m.OutSize())
		}
	}

	b.in, b.out = in, out
	b.pool.ParallelFor(len(b.voices), b.process)
	b.in, b.out = nil, nil
	return nil
}

func (b *Bank[T]) processRange(start, end int) {
	for v := start; v < end; v++ {
		m := b.voices[v]
		inSize, outSize := m.InSize(), m.OutSize()
		in, out := b.in[v], b.out[v]
		for f := 0; f*inSize < len(in); f++ {
			m.Forward(in[f*inSize : (f+1)*inSize])
			copy(out[f*outSize:(f+1)*outSize], m.Outputs())
		}
	}
}

// Close releases the bank's pool if the bank created it.
func (b *Bank[T]) Close() {
	if b.ownPool {
		b.pool.Close()
	}
}
