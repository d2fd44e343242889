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

// Package randweights fills layers with reproducible uniform random weights
// for tests and benchmarks. Every Source is explicitly seeded; there is no
// package-level generator.
package randweights

import (
	"fmt"
	"math/rand/v2"

	"github.com/go-highway/rtneural/hwy"
	"gonum.org/v1/gonum/stat/distuv"
)

// Source draws values uniformly from [-1, 1).
type Source struct {
	dist distuv.Uniform
}

// New returns a Source seeded with seed.
func New(seed uint64) *Source {
	return &Source{dist: distuv.Uniform{
		Min: -1,
		Max: 1,
		Src: rand.NewPCG(seed, seed^0x9e3779b97f4a7c15),
	}}
}

// Float returns the next value.
func (s *Source) Float() float64 { return s.dist.Rand() }

func Vector[T hwy.Floats](s *Source, n int) []T {
	v := make([]T, n)
	for i := range v {
		v[i] = T(s.Float())
	}
	return v
}

func Matrix[T hwy.Floats](s *Source, rows, cols int) [][]T {
	m := make([][]T, rows)
	for i := range m {
		m[i] = Vector[T](s, cols)
	}
	return m
}

func Tensor3[T hwy.Floats](s *Source, d0, d1, d2 int) [][][]T {
	t := make([][][]T, d0)
	for i := range t {
		t[i] = Matrix[T](s, d1, d2)
	}
	return t
}

type sized interface {
	InSize() int
	OutSize() int
}

type denseSetter[T hwy.Floats] interface {
	sized
	SetWeights(w [][]T) error
	SetBias(b []T) error
}

type convSetter[T hwy.Floats] interface {
	sized
	KernelSize() int
	SetWeights(w [][][]T) error
	SetBias(b []T) error
}

type gruSetter[T hwy.Floats] interface {
	sized
	SetWVals(w [][]T) error
	SetUVals(u [][]T) error
	SetBVals(b [][]T) error
}

type lstmSetter[T hwy.Floats] interface {
	sized
	SetWVals(w [][]T) error
	SetUVals(u [][]T) error
	SetBVals(b []T) error
}

// Randomise sets every weight and bias of layer. Layers without weights,
// such as activations, are left alone so callers can pass every layer of a
// model.
func Randomise[T hwy.Floats](s *Source, layer any) error {
	switch l := layer.(type) {
	case denseSetter[T]:
		if err := l.SetWeights(Matrix[T](s, l.OutSize(), l.InSize())); err != nil {
			return err
		}
		return l.SetBias(Vector[T](s, l.OutSize()))
	case convSetter[T]:
		if err := l.SetWeights(Tensor3[T](s, l.OutSize(), l.InSize(), l.KernelSize())); err != nil {
			return err
		}
		return l.SetBias(Vector[T](s, l.OutSize()))
	case gruSetter[T]:
		in, out := l.InSize(), l.OutSize()
		if err := l.SetWVals(Matrix[T](s, in, 3*out)); err != nil {
			return err
		}
		if err := l.SetUVals(Matrix[T](s, out, 3*out)); err != nil {
			return err
		}
		return l.SetBVals(Matrix[T](s, 2, 3*out))
	case lstmSetter[T]:
		in, out := l.InSize(), l.OutSize()
		if err := l.SetWVals(Matrix[T](s, in, 4*out)); err != nil {
			return err
		}
		if err := l.SetUVals(Matrix[T](s, out, 4*out)); err != nil {
			return err
		}
		return l.SetBVals(Vector[T](s, 4*out))
	case sized:
		return nil
	default:
		return fmt.Errorf("randweights: %T is not a layer", layer)
	}
}
