package hwy

import "testing"

func TestTiles4(t *testing.T) {
	tests := []struct {
		size, want int
	}{
		{1, 1}, {3, 1}, {4, 1}, {5, 2}, {8, 2}, {24, 6},
	}
	for _, tt := range tests {
		if got := Tiles4(tt.size); got != tt.want {
			t.Errorf("Tiles4(%d): got %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestLoadStoreTiles4(t *testing.T) {
	src := []float32{1, 2, 3, 4, 5, 6}
	tiles := make([]Vec4[float32], Tiles4(len(src)))
	LoadTiles4(tiles, src)

	want := []Vec4[float32]{{1, 2, 3, 4}, {5, 6, 0, 0}}
	for i := range want {
		if tiles[i] != want[i] {
			t.Errorf("tile %d: got %v, want %v", i, tiles[i], want[i])
		}
	}

	out := make([]float32, 5)
	StoreTiles4(out, tiles)
	for i := range out {
		if out[i] != src[i] {
			t.Errorf("StoreTiles4: element %d: got %v, want %v", i, out[i], src[i])
		}
	}
}

func TestVec4Ops(t *testing.T) {
	a := Vec4[float64]{1, 2, 3, 4}
	b := Set4[float64](2)

	if got := MulAdd4(a, b, Set4[float64](1)); got != (Vec4[float64]{3, 5, 7, 9}) {
		t.Errorf("MulAdd4: got %v", got)
	}
	if got := Sub4(a, b); got != (Vec4[float64]{-1, 0, 1, 2}) {
		t.Errorf("Sub4: got %v", got)
	}
	if got := Div4(a, b); got != (Vec4[float64]{0.5, 1, 1.5, 2}) {
		t.Errorf("Div4: got %v", got)
	}
	if got := Max4(a, b); got != (Vec4[float64]{2, 2, 3, 4}) {
		t.Errorf("Max4: got %v", got)
	}
	if got := Min4(a, b); got != (Vec4[float64]{1, 2, 2, 2}) {
		t.Errorf("Min4: got %v", got)
	}
	if got := ReduceSum4(a); got != 10 {
		t.Errorf("ReduceSum4: got %v, want 10", got)
	}
	if got := ReduceMax4(Neg4(a)); got != -1 {
		t.Errorf("ReduceMax4: got %v, want -1", got)
	}
}

func TestVec4NoAllocs(t *testing.T) {
	src := []float32{1, 2, 3, 4, 5}
	dst := make([]float32, 5)
	var tiles [2]Vec4[float32]
	allocs := testing.AllocsPerRun(100, func() {
		LoadTiles4(tiles[:], src)
		tiles[0] = MulAdd4(tiles[0], tiles[1], tiles[0])
		StoreTiles4(dst, tiles[:])
	})
	if allocs != 0 {
		t.Errorf("got %v allocs per run, want 0", allocs)
	}
}
