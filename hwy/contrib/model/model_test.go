package model

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/go-highway/rtneural/hwy/contrib/nn"
	"github.com/go-highway/rtneural/hwy/contrib/nn/static"
	"github.com/go-highway/rtneural/internal/randweights"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var gruGolden = []float64{0.04734437178909115, 0.026151407209174495, 0.014417456753273317}

func TestAddChecksSizes(t *testing.T) {
	m := New[float32](3)
	require.NoError(t, m.Add(nn.NewDense[float32](3, 4)))
	err := m.Add(nn.NewGRU[float32](3, 2))
	assert.True(t, errors.Is(err, ErrSizeMismatch), "got %v", err)
	require.NoError(t, m.Add(nn.NewGRU[float32](4, 2)))
	assert.Equal(t, 3, m.InSize())
	assert.Equal(t, 2, m.OutSize())
	assert.Len(t, m.Layers(), 2)
}

func TestEmptyModel(t *testing.T) {
	m := New[float64](2)
	assert.Equal(t, 2, m.OutSize())
	assert.Equal(t, 1.5, m.Forward([]float64{1.5, 2}))
	assert.Equal(t, []float64{1.5, 2}, m.Outputs())

	c := m.Clone()
	m.Forward([]float64{-3, 4})
	assert.Equal(t, []float64{-3, 4}, m.Outputs())
	assert.Equal(t, []float64{1.5, 2}, c.Outputs(), "clone keeps its own frame")
}

func TestLoadJSONFile(t *testing.T) {
	f, err := os.Open("testdata/gru_dense.json")
	require.NoError(t, err)
	defer f.Close()

	m, err := LoadJSON[float32](f)
	require.NoError(t, err)
	require.Len(t, m.Layers(), 3)
	assert.Equal(t, []string{"gru", "dense", "tanh"}, []string{m.Layers()[0].Name(), m.Layers()[1].Name(), m.Layers()[2].Name()})

	for step, x := range []float32{1, 0, 0} {
		h := gruGolden[step]
		want := math.Tanh(1.5*h - 0.5*h + 0.25)
		got := m.Forward([]float32{x})
		assert.InDelta(t, want, got, 1e-6, "step %d", step)
		assert.Equal(t, got, m.Outputs()[0])
	}
}

func TestStaticLoaderMatchesDynamic(t *testing.T) {
	data, err := os.ReadFile("testdata/gru_dense.json")
	require.NoError(t, err)
	dyn, err := ParseJSON[float32](data)
	require.NoError(t, err)
	st, err := ParseJSON(data, WithStatic[float32](true))
	require.NoError(t, err)

	_, isStatic := st.Layers()[0].(*static.GRU1x2[float32])
	assert.True(t, isStatic, "gru 1x2 should load as a static layer")
	_, isDynamic := st.Layers()[1].(*nn.Dense[float32])
	assert.True(t, isDynamic, "dense 2x1 has no static shape")

	for _, x := range []float32{1, 0, 0, 0.5, -1} {
		assert.InDelta(t, dyn.Forward([]float32{x}), st.Forward([]float32{x}), 1e-6)
	}
}

const eluModel = `{"in_shape": [null, 1], "layers": [
	{"type": "dense", "activation": "elu", "shape": [null, 4],
	 "weights": [[[1, 1, 1, 1]], [-1, -2, 0.5, -3]]}
]}`

func TestStaticELUKeepsAlpha(t *testing.T) {
	opts := WithLayerOptions(nn.WithAlpha[float32](0.5))
	dyn, err := ParseJSON([]byte(eluModel), opts)
	require.NoError(t, err)
	st, err := ParseJSON([]byte(eluModel), opts, WithStatic[float32](true))
	require.NoError(t, err)

	elu, ok := st.Layers()[1].(*static.ELU4[float32])
	require.True(t, ok, "elu 4 should load as a static layer")
	assert.Equal(t, float32(0.5), elu.Alpha())

	for _, x := range []float32{0, 1, -0.5, 2} {
		dyn.Forward([]float32{x})
		st.Forward([]float32{x})
		assert.InDeltaSlice(t, dyn.Outputs(), st.Outputs(), 1e-5, "input %g", x)
	}

	st.Forward([]float32{0})
	assert.InDelta(t, 0.5*(math.Exp(-1)-1), float64(st.Outputs()[0]), 1e-5)
}

const convModel = `{
  "in_shape": [null, null, 1],
  "layers": [
    {
      "type": "conv1d",
      "activation": "",
      "shape": [null, null, 1],
      "kernel_size": [3],
      "dilation": [2],
      "weights": [
        [[[1]], [[2]], [[3]]],
        [0]
      ]
    }
  ]
}`

func TestConv1DKernelIsReversed(t *testing.T) {
	m, err := ParseJSON[float64]([]byte(convModel))
	require.NoError(t, err)
	conv := m.Layers()[0].(*nn.Conv1D[float64])
	assert.Equal(t, 3.0, conv.Weight(0, 0, 0), "newest tap comes last in the file")
	assert.Equal(t, 1.0, conv.Weight(0, 0, 2))

	var got []float64
	for step := range 6 {
		x := 0.0
		if step == 0 {
			x = 1
		}
		got = append(got, m.Forward([]float64{x}))
	}
	assert.Equal(t, []float64{3, 0, 2, 0, 1, 0}, got)
}

func TestLoadLSTMAndActivations(t *testing.T) {
	src := randweights.New(1)
	js := `{"in_shape": [null, 2], "layers": [
		{"type": "lstm", "activation": "", "shape": [null, 3], "weights": [` +
		matrixJSON(randweights.Matrix[float64](src, 2, 12)) + `,` +
		matrixJSON(randweights.Matrix[float64](src, 3, 12)) + `,` +
		vectorJSON(randweights.Vector[float64](src, 12)) + `]},
		{"type": "activation", "activation": "softmax", "shape": [null, 3]},
		{"type": "time-distributed-dense", "activation": "relu", "shape": [null, 2], "weights": [[[1, 0], [0, 1], [1, 1]], [0, -10]]}
	]}`
	m, err := ParseJSON[float64]([]byte(js))
	require.NoError(t, err)
	names := make([]string, 0, len(m.Layers()))
	for _, l := range m.Layers() {
		names = append(names, l.Name())
	}
	assert.Equal(t, []string{"lstm", "softmax", "dense", "relu"}, names)

	m.Forward([]float64{0.3, -0.2})
	out := m.Outputs()
	assert.Greater(t, out[0], 0.0)
	assert.Equal(t, 0.0, out[1], "relu clamps the shifted output")
}

func TestLoaderErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
		err  error
	}{
		{"bad json", `{"in_shape": [`, ErrFormat},
		{"missing in_shape", `{"layers": []}`, ErrFormat},
		{"unknown type", `{"in_shape": [null, 1], "layers": [{"type": "prelu", "shape": [null, 1], "weights": []}]}`, ErrUnknownLayer},
		{"unknown activation", `{"in_shape": [null, 1], "layers": [{"type": "activation", "activation": "swish"}]}`, ErrUnknownLayer},
		{"weight count", `{"in_shape": [null, 1], "layers": [{"type": "dense", "shape": [null, 1], "weights": [[[1]]]}]}`, ErrFormat},
		{"kernel shape", `{"in_shape": [null, 2], "layers": [{"type": "dense", "shape": [null, 1], "weights": [[[1]], [0]]}]}`, nn.ErrShape},
		{"gru bias shape", `{"in_shape": [null, 1], "layers": [{"type": "gru", "shape": [null, 1], "weights": [[[1, 1, 1]], [[1, 1, 1]], [[0, 0, 0]]]}]}`, nn.ErrShape},
		{"conv kernel_size", `{"in_shape": [null, 1], "layers": [{"type": "conv1d", "shape": [null, 1], "weights": [[[[1]]], [0]]}]}`, ErrFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSON[float32]([]byte(tt.json))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestUnknownLayerMessage(t *testing.T) {
	_, err := ParseJSON[float32]([]byte(`{"in_shape": [null, 1], "layers": [{"type": "batchnorm", "shape": [null, 1]}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "layer type not recognized")
	assert.Contains(t, err.Error(), `"batchnorm"`)
}

func TestCloneAndReset(t *testing.T) {
	data, err := os.ReadFile("testdata/gru_dense.json")
	require.NoError(t, err)
	m, err := ParseJSON[float32](data)
	require.NoError(t, err)

	m.Forward([]float32{1})
	c := m.Clone()
	a, b := m.Forward([]float32{0}), c.Forward([]float32{0})
	assert.Equal(t, a, b)

	m.Reset()
	fresh, err := ParseJSON[float32](data)
	require.NoError(t, err)
	assert.Equal(t, fresh.Forward([]float32{1}), m.Forward([]float32{1}))
	assert.NotEqual(t, m.Forward([]float32{0}), c.Forward([]float32{0}), "clone keeps its own state")
}

func TestForwardNoAllocs(t *testing.T) {
	data, err := os.ReadFile("testdata/gru_dense.json")
	require.NoError(t, err)
	m, err := ParseJSON[float32](data)
	require.NoError(t, err)
	in := []float32{0.5}
	assert.Zero(t, testing.AllocsPerRun(100, func() { m.Forward(in) }))
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := ParseJSON([]byte(convModel), WithLogger[float32](logger))
	require.NoError(t, err)
	assert.True(t, strings.Contains(buf.String(), "model: loaded"), buf.String())
}

func matrixJSON(m [][]float64) string {
	rows := make([]string, len(m))
	for i, r := range m {
		rows[i] = vectorJSON(r)
	}
	return "[" + strings.Join(rows, ",") + "]"
}

func vectorJSON(v []float64) string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, x := range v {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	sb.WriteString("]")
	return sb.String()
}
