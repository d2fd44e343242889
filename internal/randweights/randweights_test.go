package randweights

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDeterministic(t *testing.T) {
	a := Matrix[float32](New(7), 3, 5)
	b := Matrix[float32](New(7), 3, 5)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed gave different values (-a +b):\n%s", diff)
	}
	c := Matrix[float32](New(8), 3, 5)
	if cmp.Equal(a, c) {
		t.Error("different seeds gave identical values")
	}
}

func TestRange(t *testing.T) {
	s := New(1)
	for range 10000 {
		v := s.Float()
		if v < -1 || v >= 1 {
			t.Fatalf("value %v outside [-1, 1)", v)
		}
	}
}

func TestShapes(t *testing.T) {
	tt := Tensor3[float64](New(3), 2, 3, 4)
	if len(tt) != 2 || len(tt[1]) != 3 || len(tt[1][2]) != 4 {
		t.Errorf("Tensor3 shape = %d,%d,%d", len(tt), len(tt[1]), len(tt[1][2]))
	}
}

type notALayer struct{}

func TestRandomiseRejectsNonLayer(t *testing.T) {
	if err := Randomise[float32](New(1), notALayer{}); err == nil {
		t.Error("expected error")
	}
}
