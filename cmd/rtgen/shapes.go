package main

import (
	"fmt"
	"slices"
	"strings"
)

// Shape identifies one generated layer type.
type Shape struct {
	Kind     string
	In, Out  int
	Kernel   int
	Dilation int
}

func dense(in, out int) Shape { return Shape{Kind: "dense", In: in, Out: out} }
func gru(in, out int) Shape   { return Shape{Kind: "gru", In: in, Out: out} }
func lstm(in, out int) Shape  { return Shape{Kind: "lstm", In: in, Out: out} }

func conv1d(in, out, kernel, dilation int) Shape {
	return Shape{Kind: "conv1d", In: in, Out: out, Kernel: kernel, Dilation: dilation}
}

// defaultShapes covers the sizes common in real-time audio models, plus
// sizes that are not a multiple of the tile width.
var defaultShapes = func() []Shape {
	shapes := []Shape{
		dense(3, 5), dense(8, 1), dense(8, 8), dense(12, 1), dense(12, 12),
		dense(16, 1), dense(16, 16), dense(24, 1), dense(24, 24),
		conv1d(2, 3, 3, 2), conv1d(4, 4, 3, 1), conv1d(8, 8, 7, 2),
		gru(1, 2), gru(1, 3), gru(1, 8), gru(1, 12), gru(1, 16), gru(1, 24),
		gru(5, 7), gru(8, 8), gru(12, 12), gru(16, 16), gru(24, 24),
		lstm(1, 3), lstm(1, 8), lstm(1, 12), lstm(1, 16), lstm(1, 24),
		lstm(5, 7), lstm(8, 8), lstm(12, 12), lstm(16, 16), lstm(24, 24),
	}
	for _, kind := range activationKinds {
		for _, n := range []int{3, 4, 5, 8, 16} {
			shapes = append(shapes, Shape{Kind: kind, In: n, Out: n})
		}
	}
	return shapes
}()

var activationKinds = []string{"tanh", "fast_tanh", "relu", "sigmoid", "softmax", "elu"}

func allKinds() []string {
	return append([]string{"dense", "conv1d", "gru", "lstm"}, activationKinds...)
}

func filterShapes(shapes []Shape, kinds string) ([]Shape, error) {
	if kinds == "all" || kinds == "" {
		return shapes, nil
	}
	var want []string
	for _, k := range strings.Split(kinds, ",") {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		if !slices.Contains(allKinds(), k) {
			return nil, fmt.Errorf("unknown layer kind %q", k)
		}
		want = append(want, k)
	}
	var out []Shape
	for _, s := range shapes {
		if slices.Contains(want, s.Kind) {
			out = append(out, s)
		}
	}
	return out, nil
}
