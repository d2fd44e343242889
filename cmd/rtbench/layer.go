package main

import (
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/go-highway/rtneural/hwy"
	"github.com/go-highway/rtneural/hwy/contrib/nn"
	"github.com/go-highway/rtneural/hwy/contrib/nn/static"
	"github.com/go-highway/rtneural/internal/randweights"
)

type layerFlags struct {
	layer     string
	in, out   int
	kernel    int
	dilation  int
	samples   int
	seed      uint64
	precision string
	kernels   string
	tolerance float64
}

func newLayerCmd() *cobra.Command {
	f := layerFlags{}
	cmd := &cobra.Command{
		Use:   "layer",
		Short: "Time one layer, dynamic and static",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch f.precision {
			case "float32":
				return runLayer[float32](cmd.OutOrStdout(), f)
			case "float64":
				return runLayer[float64](cmd.OutOrStdout(), f)
			}
			return fmt.Errorf("--precision: want float32 or float64, got %q", f.precision)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.layer, "layer", "l", "gru", "Layer type: dense, conv1d, gru, lstm or an activation name")
	fl.IntVar(&f.in, "in", 1, "Input size")
	fl.IntVar(&f.out, "out", 8, "Output size (ignored for activations)")
	fl.IntVar(&f.kernel, "kernel", 0, "Conv1D kernel size, 0 for in-1")
	fl.IntVar(&f.dilation, "dilation", 1, "Conv1D dilation")
	addCommonFlags(fl, &f.samples, &f.seed, &f.precision)
	fl.StringVar(&f.kernels, "kernels", "default", "Dynamic kernels: default, scalar, lanes or blas")
	fl.Float64Var(&f.tolerance, "tolerance", 1e-4, "Largest allowed difference between dynamic and static outputs")
	return cmd
}

func runLayer[T hwy.Floats](w io.Writer, f layerFlags) error {
	if f.in <= 0 || f.out <= 0 || f.samples <= 0 {
		return fmt.Errorf("--in, --out and --samples must be positive")
	}
	k, err := kernelsByName[T](f.kernels)
	if err != nil {
		return err
	}

	shape := static.Shape{Kind: f.layer, In: f.in, Out: f.out}
	switch f.layer {
	case "conv1d":
		shape.Kernel, shape.Dilation = f.kernel, max(f.dilation, 1)
		if shape.Kernel <= 0 {
			shape.Kernel = max(f.in-1, 1)
		}
	case "dense", "gru", "lstm":
	default:
		shape.Out = f.in
	}

	dynamic, err := createLayer(randweights.New(f.seed), f.layer, shape.In, shape.Out, shape.Kernel, shape.Dilation, nn.WithKernels(k))
	if err != nil {
		return err
	}
	frames := signal[T](randweights.New(f.seed+1), f.samples, f.in)
	results := []result{timeLayer("dynamic/"+f.kernels, dynamic, frames)}

	fixed, err := static.New[T](shape)
	switch {
	case err == nil:
		if err := randweights.Randomise[T](randweights.New(f.seed), fixed); err != nil {
			return err
		}
		results = append(results, timeLayer("static", fixed, frames))
	default:
		slog.Info("no static layer", "shape", shape, "error", err)
	}

	fmt.Fprintf(w, "%s, %d frames, %s\n", shape, f.samples, f.precision)
	writeResults(w, results)

	if len(results) == 2 {
		d := maxAbsDiff(results[0].outputs, results[1].outputs)
		fmt.Fprintf(w, "max abs difference: %.3g\n", d)
		if d > f.tolerance {
			return fmt.Errorf("dynamic and static outputs differ by %g (tolerance %g)", d, f.tolerance)
		}
	}
	return nil
}

func writeResults(w io.Writer, results []result) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "variant\tseconds\tns/frame\trealtime x\t")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%.4f\t%.1f\t%.1f\t\n",
			r.name, r.elapsed.Seconds(), float64(r.elapsed.Nanoseconds())/float64(r.samples), r.realtimeFactor())
	}
	tw.Flush()
}
