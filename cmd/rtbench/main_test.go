package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-highway/rtneural/hwy/contrib/nn"
	"github.com/go-highway/rtneural/internal/randweights"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLayerWithStatic(t *testing.T) {
	for _, precision := range []string{"float32", "float64"} {
		t.Run(precision, func(t *testing.T) {
			out, err := execute(t, "layer", "--layer", "gru", "--in", "1", "--out", "8", "--samples", "200", "--precision", precision)
			require.NoError(t, err)
			assert.Contains(t, out, "gru 1x8, 200 frames, "+precision)
			assert.Contains(t, out, "dynamic/default")
			assert.Contains(t, out, "static")
			assert.Contains(t, out, "max abs difference")
		})
	}
}

func TestLayerWithoutStatic(t *testing.T) {
	out, err := execute(t, "layer", "--layer", "dense", "--in", "3", "--out", "7", "--samples", "50", "--kernels", "scalar")
	require.NoError(t, err)
	assert.Contains(t, out, "dynamic/scalar")
	assert.NotContains(t, out, "static")
}

func TestLayerActivationAndConv(t *testing.T) {
	out, err := execute(t, "layer", "-l", "fast_tanh", "--in", "8", "-n", "64")
	require.NoError(t, err)
	assert.Contains(t, out, "fast_tanh 8x8")
	assert.Contains(t, out, "static")

	out, err = execute(t, "layer", "-l", "conv1d", "--in", "2", "--out", "3", "--kernel", "3", "--dilation", "2", "-n", "64", "--kernels", "lanes")
	require.NoError(t, err)
	assert.Contains(t, out, "conv1d 2x3 k3 d2")
	assert.Contains(t, out, "static")
}

func TestLayerErrors(t *testing.T) {
	_, err := execute(t, "layer", "--layer", "transformer")
	require.EqualError(t, err, "layer type: transformer not found")

	_, err = execute(t, "layer", "--precision", "float16")
	require.ErrorContains(t, err, "--precision")

	_, err = execute(t, "layer", "--kernels", "gpu")
	require.ErrorContains(t, err, "unknown kernels")

	_, err = execute(t, "layer", "--samples", "0")
	require.Error(t, err)
}

func TestCreateLayerConvDefaultKernel(t *testing.T) {
	l, err := createLayer[float32](randweights.New(3), "conv1d", 4, 2, 0, 0)
	require.NoError(t, err)
	conv := l.(*nn.Conv1D[float32])
	assert.Equal(t, 3, conv.KernelSize())
	assert.Equal(t, 1, conv.Dilation())
}

func TestModel(t *testing.T) {
	out, err := execute(t, "model", "../../hwy/contrib/model/testdata/gru_dense.json", "--voices", "3", "--workers", "2", "--samples", "300", "--block", "64")
	require.NoError(t, err)
	assert.Contains(t, out, "3 layers, 1 -> 1, 300 frames per voice")
	assert.Contains(t, out, "static.GRU1x2")
	assert.Contains(t, out, "3 voices")

	out, err = execute(t, "model", "../../hwy/contrib/model/testdata/gru_dense.json", "--static=false", "--samples", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "nn.GRU[float32]")
}

func TestModelErrors(t *testing.T) {
	_, err := execute(t, "model")
	require.Error(t, err)

	_, err = execute(t, "model", "testdata/does-not-exist.json")
	require.Error(t, err)
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Gru (11): 1x2, 1x3")
	assert.Contains(t, out, "Fast Tanh (5): ")
	assert.Contains(t, out, "Conv1d (3): 2x3 k3 d2")

	out, err = execute(t, "list", "--kind", "lstm")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "\n"))

	_, err = execute(t, "list", "--kind", "attention")
	require.Error(t, err)
}

func TestCPUInfo(t *testing.T) {
	out, err := execute(t, "cpuinfo")
	require.NoError(t, err)
	assert.Contains(t, out, "Dispatch level:")
	assert.Contains(t, out, "Default kernels:")
}

func TestLogLevel(t *testing.T) {
	_, err := execute(t, "--log-level", "loud", "list")
	require.ErrorContains(t, err, "--log-level")
}
