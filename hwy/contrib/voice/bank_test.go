package voice

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/go-highway/rtneural/hwy/contrib/model"
	"github.com/go-highway/rtneural/hwy/contrib/nn"
	"github.com/go-highway/rtneural/hwy/contrib/workerpool"
	"github.com/go-highway/rtneural/internal/randweights"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModel(t testing.TB) *model.Model[float32] {
	t.Helper()
	src := randweights.New(42)
	m := model.New[float32](1)
	gru := nn.NewGRU[float32](1, 8)
	dense := nn.NewDense[float32](8, 1)
	require.NoError(t, randweights.Randomise[float32](src, gru))
	require.NoError(t, randweights.Randomise[float32](src, dense))
	require.NoError(t, m.Add(gru))
	require.NoError(t, m.Add(dense))
	require.NoError(t, m.Add(nn.NewActivation[float32](nn.ActivationTanh, 1)))
	return m
}

func blocks(voices, frames int) [][]float32 {
	in := make([][]float32, voices)
	for v := range in {
		in[v] = make([]float32, frames)
		for f := range in[v] {
			in[v][f] = float32(math.Sin(float64(f) * 0.05 * float64(v+1)))
		}
	}
	return in
}

func TestBankMatchesSequential(t *testing.T) {
	proto := newModel(t)
	for _, workers := range []int{1, 2, 4} {
		b, err := NewBank(proto, 4, WithWorkers(workers))
		require.NoError(t, err)

		in := blocks(4, 64)
		out := make([][]float32, 4)
		for v := range out {
			out[v] = make([]float32, 64)
		}
		require.NoError(t, b.Process(in, out))
		b.Close()

		for v := range in {
			ref := proto.Clone()
			for f, x := range in[v] {
				assert.Equal(t, ref.Forward([]float32{x}), out[v][f], "workers %d voice %d frame %d", workers, v, f)
			}
		}
	}
}

func TestVoicesAreIndependent(t *testing.T) {
	b, err := NewBank(newModel(t), 2)
	require.NoError(t, err)
	defer b.Close()

	in := [][]float32{{1, 1, 1}, {0, 0, 0}}
	out := [][]float32{make([]float32, 3), make([]float32, 3)}
	require.NoError(t, b.Process(in, out))

	// Voice 1 only ever saw zeros, so it matches a fresh copy.
	fresh := newModel(t)
	for f := range 3 {
		assert.Equal(t, fresh.Forward([]float32{0}), out[1][f])
	}
	assert.NotEqual(t, out[0], out[1])

	b.Reset()
	require.NoError(t, b.Process([][]float32{{0}, {0}}, [][]float32{make([]float32, 1), make([]float32, 1)}))
	assert.Equal(t, b.Voice(0).Outputs(), b.Voice(1).Outputs())
}

func TestSharedPool(t *testing.T) {
	pool := workerpool.New(3)
	defer pool.Close()
	b, err := NewBank(newModel(t), 5, WithPool(pool))
	require.NoError(t, err)
	b.Close()
	assert.Equal(t, 5, b.NumVoices())

	// The shared pool stays usable after the bank is closed.
	out := make([][]float32, 5)
	for v := range out {
		out[v] = make([]float32, 8)
	}
	require.NoError(t, b.Process(blocks(5, 8), out))
}

func TestProcessErrors(t *testing.T) {
	m := model.New[float32](2)
	require.NoError(t, m.Add(nn.NewDense[float32](2, 3)))
	b, err := NewBank(m, 2)
	require.NoError(t, err)
	defer b.Close()

	tests := []struct {
		name    string
		in, out [][]float32
	}{
		{"voice count", [][]float32{{1, 2}}, [][]float32{make([]float32, 3)}},
		{"partial frame", [][]float32{{1, 2, 3}, {1, 2}}, [][]float32{make([]float32, 6), make([]float32, 3)}},
		{"short output", [][]float32{{1, 2, 3, 4}, {1, 2}}, [][]float32{make([]float32, 3), make([]float32, 3)}},
	}
	for _, tt := range tests {
		err := b.Process(tt.in, tt.out)
		assert.True(t, errors.Is(err, ErrBlockSize), "%s: got %v", tt.name, err)
	}

	_, err = NewBank(m, 0)
	assert.Error(t, err)
}

func TestProcessNoAllocs(t *testing.T) {
	b, err := NewBank(newModel(t), 4, WithWorkers(1))
	require.NoError(t, err)
	defer b.Close()
	in := blocks(4, 32)
	out := blocks(4, 32)
	allocs := testing.AllocsPerRun(50, func() { _ = b.Process(in, out) })
	assert.Zero(t, allocs)
}

func BenchmarkBank(b *testing.B) {
	for _, voices := range []int{1, 8} {
		bank, err := NewBank(newModel(b), voices)
		require.NoError(b, err)
		in := blocks(voices, 256)
		out := blocks(voices, 256)
		b.Run(fmt.Sprintf("voices=%d", voices), func(b *testing.B) {
			for b.Loop() {
				_ = bank.Process(in, out)
			}
		})
		bank.Close()
	}
}

func TestEmptyModelPassesThrough(t *testing.T) {
	b, err := NewBank(model.New[float32](2), 2, WithWorkers(1))
	require.NoError(t, err)
	defer b.Close()

	in := [][]float32{{1, 2, 3, 4}, {-1, -2, -3, -4}}
	out := [][]float32{make([]float32, 4), make([]float32, 4)}
	require.NoError(t, b.Process(in, out))
	assert.Equal(t, in, out)
}
