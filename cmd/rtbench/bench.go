package main

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/pflag"

	"github.com/go-highway/rtneural/hwy"
	"github.com/go-highway/rtneural/hwy/contrib/nn"
	"github.com/go-highway/rtneural/internal/randweights"
)

// sampleRate is used to express timings as a real-time factor.
const sampleRate = 48000

// createLayer builds a dynamic layer of the given type with random weights.
// A zero kernel size for conv1d means in-1, with a minimum of 1.
func createLayer[T hwy.Floats](src *randweights.Source, layerType string, in, out, kernel, dilation int, opts ...nn.Option[T]) (nn.Layer[T], error) {
	var l nn.Layer[T]
	switch layerType {
	case "dense":
		l = nn.NewDense(in, out, opts...)
	case "conv1d":
		if kernel <= 0 {
			kernel = max(in-1, 1)
		}
		l = nn.NewConv1D(in, out, kernel, max(dilation, 1), opts...)
	case "gru":
		l = nn.NewGRU(in, out, opts...)
	case "lstm":
		l = nn.NewLSTM(in, out, opts...)
	default:
		kind, err := nn.ParseActivation(layerType)
		if err != nil {
			return nil, fmt.Errorf("layer type: %s not found", layerType)
		}
		l = nn.NewActivation(kind, in, opts...)
	}
	if err := randweights.Randomise[T](src, l); err != nil {
		return nil, err
	}
	return l, nil
}

// signal returns n frames of a test signal of the given width.
func signal[T hwy.Floats](src *randweights.Source, n, width int) [][]T {
	frames := make([][]T, n)
	for i := range frames {
		frames[i] = make([]T, width)
		for j := range frames[i] {
			frames[i][j] = T(math.Sin(2*math.Pi*440*float64(i)/sampleRate) + 0.1*src.Float())
		}
	}
	return frames
}

type result struct {
	name    string
	elapsed time.Duration
	samples int
	outputs [][]float64
}

func (r result) realtimeFactor() float64 {
	audio := float64(r.samples) / sampleRate
	return audio / r.elapsed.Seconds()
}

// timeLayer runs every frame through l and records the outputs.
func timeLayer[T hwy.Floats](name string, l nn.Layer[T], frames [][]T) result {
	out := make([][]T, len(frames))
	for i := range out {
		out[i] = make([]T, l.OutSize())
	}
	start := time.Now()
	for i, f := range frames {
		l.Forward(f, out[i])
	}
	elapsed := time.Since(start)

	r := result{name: name, elapsed: elapsed, samples: len(frames), outputs: make([][]float64, len(out))}
	for i, o := range out {
		r.outputs[i] = make([]float64, len(o))
		for j, v := range o {
			r.outputs[i][j] = float64(v)
		}
	}
	return r
}

func maxAbsDiff(a, b [][]float64) float64 {
	var d float64
	for i := range a {
		for j := range a[i] {
			d = max(d, math.Abs(a[i][j]-b[i][j]))
		}
	}
	return d
}

func kernelsByName[T hwy.Floats](name string) (nn.Kernels[T], error) {
	switch name {
	case "default":
		return nn.DefaultKernels[T](), nil
	case "scalar":
		return nn.ScalarKernels[T](), nil
	case "lanes":
		return nn.LaneKernels[T](), nil
	case "blas":
		return nn.BLASKernels[T](), nil
	}
	return nn.Kernels[T]{}, fmt.Errorf("unknown kernels %q (want default, scalar, lanes or blas)", name)
}

// addCommonFlags registers the flags shared by the layer and model commands.
func addCommonFlags(fl *pflag.FlagSet, samples *int, seed *uint64, precision *string) {
	fl.IntVarP(samples, "samples", "n", sampleRate, "Number of frames to process")
	fl.Uint64Var(seed, "seed", 1, "Seed for weights and input noise")
	fl.StringVar(precision, "precision", "float32", "float32 or float64")
}
