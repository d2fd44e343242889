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

package nn

import "github.com/go-highway/rtneural/hwy"

// gate holds the parameters of one gate of a recurrent layer.
type gate[T hwy.Floats] struct {
	w  []T // kernel, row-major [out, in]
	u  []T // recurrent, row-major [out, out]
	b0 []T // kernel-side bias
	b1 []T // recurrent-side bias; nil unless splitBias
}

func newGate[T hwy.Floats](in, out int, splitBias bool) gate[T] {
	g := gate[T]{
		w:  make([]T, out*in),
		u:  make([]T, out*out),
		b0: make([]T, out),
	}
	if splitBias {
		g.b1 = make([]T, out)
	}
	return g
}

func (g gate[T]) clone() gate[T] {
	return gate[T]{
		w:  append([]T(nil), g.w...),
		u:  append([]T(nil), g.u...),
		b0: append([]T(nil), g.b0...),
		b1: append([]T(nil), g.b1...),
	}
}

// GRU is a gated recurrent unit using the split bias convention: the
// candidate gate applies the reset gate to the recurrent contribution plus
// its own bias.
//
//	z = σ(Wz·x + Uz·h + bz0 + bz1)
//	r = σ(Wr·x + Ur·h + br0 + br1)
//	c = tanh(Wc·x + bc0 + r ⊙ (Uc·h + bc1))
//	h = (1 - z) ⊙ c + z ⊙ h
type GRU[T hwy.Floats] struct {
	inSize, outSize int

	z, r, c gate[T]

	state []T

	// scratch, allocated at construction
	zVec, rVec, cVec []T
	cTmp, prod, ones []T

	k Kernels[T]
}

// NewGRU creates a GRU with zero weights, bias and state.
func NewGRU[T hwy.Floats](inSize, outSize int, opts ...Option[T]) *GRU[T] {
	mustPositive("gru", inSize, outSize)
	o := buildOptions(opts)
	l := &GRU[T]{
		inSize:  inSize,
		outSize: outSize,
		z:       newGate[T](inSize, outSize, true),
		r:       newGate[T](inSize, outSize, true),
		c:       newGate[T](inSize, outSize, true),
		state:   make([]T, outSize),
		zVec:    make([]T, outSize),
		rVec:    make([]T, outSize),
		cVec:    make([]T, outSize),
		cTmp:    make([]T, outSize),
		prod:    make([]T, outSize),
		ones:    make([]T, outSize),
		k:       o.kernels,
	}
	for i := range l.ones {
		l.ones[i] = 1
	}
	return l
}

func (l *GRU[T]) Name() string { return "gru" }
func (l *GRU[T]) InSize() int  { return l.inSize }
func (l *GRU[T]) OutSize() int { return l.outSize }

// Reset zeroes the hidden state.
func (l *GRU[T]) Reset() { clear(l.state) }

// State returns the hidden state. It aliases the layer's storage.
func (l *GRU[T]) State() []T { return l.state }

// gateIn writes W·x + U·h + b0 + b1 into dst.
func (l *GRU[T]) gateIn(g *gate[T], input, dst []T) {
	l.k.MatVec(g.w, l.outSize, l.inSize, input, dst)
	l.k.MatVec(g.u, l.outSize, l.outSize, l.state, l.prod)
	l.k.AddTo(dst, dst, l.prod)
	l.k.AddTo(dst, dst, g.b0)
	l.k.AddTo(dst, dst, g.b1)
}

// Forward advances the hidden state by one frame and writes it to output.
func (l *GRU[T]) Forward(input, output []T) {
	input = input[:l.inSize]
	output = output[:l.outSize]

	l.gateIn(&l.z, input, l.zVec)
	l.k.Sigmoid(l.zVec, l.zVec)
	l.gateIn(&l.r, input, l.rVec)
	l.k.Sigmoid(l.rVec, l.rVec)

	l.k.MatVec(l.c.u, l.outSize, l.outSize, l.state, l.cTmp)
	l.k.AddTo(l.cTmp, l.cTmp, l.c.b1)
	l.k.MulTo(l.cTmp, l.cTmp, l.rVec)
	l.k.MatVec(l.c.w, l.outSize, l.inSize, input, l.cVec)
	l.k.AddTo(l.cVec, l.cVec, l.c.b0)
	l.k.AddTo(l.cVec, l.cVec, l.cTmp)
	l.k.Tanh(l.cVec, l.cVec)

	// h = (1 - z) * c + z * h
	l.k.SubTo(l.prod, l.ones, l.zVec)
	l.k.MulTo(l.prod, l.prod, l.cVec)
	l.k.MulTo(l.state, l.zVec, l.state)
	l.k.AddTo(l.state, l.state, l.prod)
	copy(output, l.state)
}

func (l *GRU[T]) gates() [3]*gate[T] { return [3]*gate[T]{&l.z, &l.r, &l.c} }

// SetWVals copies kernel weights laid out as [inSize][3*outSize], with the
// columns grouped as update, reset, candidate.
func (l *GRU[T]) SetWVals(w [][]T) error {
	if err := CheckMatrix("gru", "kernel weights", w, l.inSize, 3*l.outSize); err != nil {
		return err
	}
	gs := l.gates()
	setGateColumns(gs[:], w, func(g *gate[T]) []T { return g.w }, l.inSize, l.outSize)
	return nil
}

// SetUVals copies recurrent weights laid out as [outSize][3*outSize].
func (l *GRU[T]) SetUVals(u [][]T) error {
	if err := CheckMatrix("gru", "recurrent weights", u, l.outSize, 3*l.outSize); err != nil {
		return err
	}
	gs := l.gates()
	setGateColumns(gs[:], u, func(g *gate[T]) []T { return g.u }, l.outSize, l.outSize)
	return nil
}

// SetBVals copies biases laid out as [2][3*outSize]. Row 0 is the
// kernel-side bias and row 1 the recurrent-side bias.
func (l *GRU[T]) SetBVals(b [][]T) error {
	if err := CheckMatrix("gru", "bias", b, 2, 3*l.outSize); err != nil {
		return err
	}
	for gi, g := range l.gates() {
		copy(g.b0, b[0][gi*l.outSize:(gi+1)*l.outSize])
		copy(g.b1, b[1][gi*l.outSize:(gi+1)*l.outSize])
	}
	return nil
}

// WVal returns the kernel weight at [i][k] in the SetWVals layout.
func (l *GRU[T]) WVal(i, k int) T {
	g := l.gates()[k/l.outSize]
	return g.w[(k%l.outSize)*l.inSize+i]
}

// UVal returns the recurrent weight at [i][k] in the SetUVals layout.
func (l *GRU[T]) UVal(i, k int) T {
	g := l.gates()[k/l.outSize]
	return g.u[(k%l.outSize)*l.outSize+i]
}

// BVal returns the bias at [i][k] in the SetBVals layout.
func (l *GRU[T]) BVal(i, k int) T {
	g := l.gates()[k/l.outSize]
	if i == 0 {
		return g.b0[k%l.outSize]
	}
	return g.b1[k%l.outSize]
}

// Clone returns a deep copy of the layer, including its hidden state.
func (l *GRU[T]) Clone() Layer[T] {
	c := *l
	c.z, c.r, c.c = l.z.clone(), l.r.clone(), l.c.clone()
	c.state = append([]T(nil), l.state...)
	c.zVec = make([]T, l.outSize)
	c.rVec = make([]T, l.outSize)
	c.cVec = make([]T, l.outSize)
	c.cTmp = make([]T, l.outSize)
	c.prod = make([]T, l.outSize)
	c.ones = append([]T(nil), l.ones...)
	return &c
}

// setGateColumns transposes a [rows][len(gates)*out] matrix into the
// row-major [out, rows] storage of each gate.
func setGateColumns[T hwy.Floats](gates []*gate[T], m [][]T, field func(*gate[T]) []T, rows, out int) {
	for gi, g := range gates {
		dst := field(g)
		for i := range rows {
			for j := range out {
				dst[j*rows+i] = m[i][gi*out+j]
			}
		}
	}
}
