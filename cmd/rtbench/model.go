package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-highway/rtneural/hwy"
	"github.com/go-highway/rtneural/hwy/contrib/model"
	"github.com/go-highway/rtneural/hwy/contrib/voice"
	"github.com/go-highway/rtneural/internal/randweights"
)

type modelFlags struct {
	samples   int
	block     int
	voices    int
	workers   int
	static    bool
	precision string
	seed      uint64
}

func newModelCmd() *cobra.Command {
	f := modelFlags{}
	cmd := &cobra.Command{
		Use:   "model FILE",
		Short: "Time a JSON model over a bank of voices",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch f.precision {
			case "float32":
				return runModel[float32](cmd.OutOrStdout(), args[0], f)
			case "float64":
				return runModel[float64](cmd.OutOrStdout(), args[0], f)
			}
			return fmt.Errorf("--precision: want float32 or float64, got %q", f.precision)
		},
	}
	fl := cmd.Flags()
	fl.IntVar(&f.block, "block", 256, "Frames per processing block")
	fl.IntVar(&f.voices, "voices", 1, "Number of voices")
	fl.IntVar(&f.workers, "workers", 0, "Worker goroutines, 0 for min(voices, GOMAXPROCS)")
	fl.BoolVar(&f.static, "static", true, "Use generated static layers where available")
	addCommonFlags(fl, &f.samples, &f.seed, &f.precision)
	return cmd
}

func runModel[T hwy.Floats](w io.Writer, path string, f modelFlags) error {
	if f.samples <= 0 || f.block <= 0 {
		return fmt.Errorf("--samples and --block must be positive")
	}
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	proto, err := model.LoadJSON[T](file, model.WithStatic[T](f.static), model.WithLogger[T](slog.Default()))
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	bank, err := voice.NewBank(proto, f.voices, voice.WithWorkers(f.workers), voice.WithLogger(slog.Default()))
	if err != nil {
		return err
	}
	defer bank.Close()

	inSize, outSize := proto.InSize(), proto.OutSize()
	frames := signal[T](randweights.New(f.seed), f.block, inSize)
	in := make([][]T, f.voices)
	out := make([][]T, f.voices)
	for v := range in {
		in[v] = make([]T, 0, f.block*inSize)
		for _, fr := range frames {
			in[v] = append(in[v], fr...)
		}
		out[v] = make([]T, f.block*outSize)
	}

	var done int
	start := time.Now()
	for done < f.samples {
		n := min(f.block, f.samples-done)
		for v := range in {
			in[v] = in[v][:n*inSize]
		}
		if err := bank.Process(in, out); err != nil {
			return err
		}
		done += n
	}
	r := result{name: fmt.Sprintf("%d voices", f.voices), elapsed: time.Since(start), samples: f.samples}

	fmt.Fprintf(w, "%s: %d layers, %d -> %d, %d frames per voice, %s\n", path, len(proto.Layers()), inSize, outSize, f.samples, f.precision)
	for i, l := range proto.Layers() {
		fmt.Fprintf(w, "  %d: %s %T\n", i, l.Name(), l)
	}
	writeResults(w, []result{r})
	return nil
}
