package nn

import (
	"math"
	"testing"

	"github.com/go-highway/rtneural/hwy/contrib/activation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseActivation(t *testing.T) {
	for _, k := range []ActivationKind{ActivationTanh, ActivationFastTanh, ActivationReLU, ActivationSigmoid, ActivationSoftmax, ActivationELU} {
		got, err := ParseActivation(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseActivation("swish")
	assert.Error(t, err)
	assert.Equal(t, "ActivationKind(42)", ActivationKind(42).String())
}

func TestActivationForward(t *testing.T) {
	in := sineInput[float32](1, 11)[0]
	for i := range in {
		in[i] *= 3
	}
	tests := []struct {
		kind ActivationKind
		ref  func(in, out []float32)
	}{
		{ActivationTanh, activation.TanhScalar[float32]},
		{ActivationFastTanh, activation.FastTanhScalar[float32]},
		{ActivationReLU, activation.ReLUScalar[float32]},
		{ActivationSigmoid, activation.SigmoidScalar[float32]},
		{ActivationSoftmax, activation.SoftmaxScalar[float32]},
		{ActivationELU, func(in, out []float32) { activation.ELUScalar(in, out, 0.3) }},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			a := NewActivation(tt.kind, len(in), WithAlpha[float32](0.3))
			assert.Equal(t, tt.kind.String(), a.Name())
			want := make([]float32, len(in))
			got := make([]float32, len(in))
			tt.ref(in, want)
			a.Forward(in, got)
			assert.InDeltaSlice(t, want, got, 3e-6)
		})
	}
}

func TestSoftmaxLayerProperties(t *testing.T) {
	a := NewActivation[float64](ActivationSoftmax, 7)
	in := []float64{1, -3, 700, 2.5, 0, 699, -1e3}
	out := make([]float64, 7)
	a.Forward(in, out)
	sum := 0.0
	for _, v := range out {
		assert.False(t, math.IsNaN(v))
		sum += v
	}
	assert.InDelta(t, 1, sum, 1e-12)

	shifted := make([]float64, 7)
	for i := range in {
		shifted[i] = in[i] - 50
	}
	out2 := make([]float64, 7)
	a.Forward(shifted, out2)
	assert.InDeltaSlice(t, out, out2, 1e-12)
}
