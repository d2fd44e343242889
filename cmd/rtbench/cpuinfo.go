package main

import (
	"fmt"
	"io"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"

	"github.com/go-highway/rtneural/hwy"
)

func newCPUInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cpuinfo",
		Short: "Show the detected CPU features and the kernels layers will use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			writeCPUInfo(cmd.OutOrStdout())
			return nil
		},
	}
}

func writeCPUInfo(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	defer tw.Flush()

	fmt.Fprintf(tw, "GOOS/GOARCH:\t%s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(tw, "NumCPU:\t%d\n", runtime.NumCPU())
	fmt.Fprintf(tw, "GOMAXPROCS:\t%d\n", runtime.GOMAXPROCS(0))
	fmt.Fprintf(tw, "Dispatch level:\t%s\n", hwy.CurrentLevel())
	fmt.Fprintf(tw, "Vector width:\t%d bytes\n", hwy.CurrentWidth())
	fmt.Fprintf(tw, "Target:\t%s\n", hwy.CurrentName())
	fmt.Fprintf(tw, "Default kernels:\t%s\n", defaultKernelsName())

	switch runtime.GOARCH {
	case "arm64":
		fmt.Fprintf(tw, "ASIMD:\t%v\n", cpu.ARM64.HasASIMD)
		fmt.Fprintf(tw, "FP:\t%v\n", cpu.ARM64.HasFP)
		fmt.Fprintf(tw, "FPHP:\t%v\n", cpu.ARM64.HasFPHP)
		fmt.Fprintf(tw, "ASIMDHP:\t%v\n", cpu.ARM64.HasASIMDHP)
		fmt.Fprintf(tw, "ASIMDDP:\t%v\n", cpu.ARM64.HasASIMDDP)
		fmt.Fprintf(tw, "SVE:\t%v\n", cpu.ARM64.HasSVE)
		fmt.Fprintf(tw, "SVE2:\t%v\n", cpu.ARM64.HasSVE2)
	case "amd64", "386":
		fmt.Fprintf(tw, "SSE4.1:\t%v\n", cpu.X86.HasSSE41)
		fmt.Fprintf(tw, "AVX:\t%v\n", cpu.X86.HasAVX)
		fmt.Fprintf(tw, "AVX2:\t%v\n", cpu.X86.HasAVX2)
		fmt.Fprintf(tw, "FMA:\t%v\n", cpu.X86.HasFMA)
		fmt.Fprintf(tw, "AVX512F:\t%v\n", cpu.X86.HasAVX512F)
		fmt.Fprintf(tw, "AVX512BW:\t%v\n", cpu.X86.HasAVX512BW)
		fmt.Fprintf(tw, "AVX512VL:\t%v\n", cpu.X86.HasAVX512VL)
	}
}

func defaultKernelsName() string {
	if hwy.CurrentLevel() == hwy.DispatchScalar {
		return "scalar"
	}
	return "blas"
}
