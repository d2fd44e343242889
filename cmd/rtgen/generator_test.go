package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLayerNames(t *testing.T) {
	tests := []struct {
		shape    Shape
		name     string
		template string
	}{
		{dense(3, 5), "Dense3x5", "dense.tmpl"},
		{conv1d(2, 3, 3, 2), "Conv1D2x3K3D2", "conv1d.tmpl"},
		{gru(1, 8), "GRU1x8", "gru_in1.tmpl"},
		{gru(5, 7), "GRU5x7", "gru.tmpl"},
		{lstm(1, 3), "LSTM1x3", "lstm_in1.tmpl"},
		{lstm(8, 8), "LSTM8x8", "lstm.tmpl"},
		{Shape{Kind: "fast_tanh", In: 8, Out: 8}, "FastTanh8", "pointwise.tmpl"},
		{Shape{Kind: "relu", In: 5, Out: 5}, "ReLU5", "relu.tmpl"},
		{Shape{Kind: "softmax", In: 3, Out: 3}, "Softmax3", "softmax.tmpl"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := newLayerData(tt.shape)
			if err != nil {
				t.Fatal(err)
			}
			if d.Name != tt.name {
				t.Errorf("Name = %q, want %q", d.Name, tt.name)
			}
			if got := d.template(); got != tt.template {
				t.Errorf("template() = %q, want %q", got, tt.template)
			}
		})
	}
}

func TestLayerDataSizes(t *testing.T) {
	d, err := newLayerData(conv1d(5, 7, 4, 3))
	if err != nil {
		t.Fatal(err)
	}
	if d.VIn != 2 || d.VOut != 2 || d.Padded != 8 {
		t.Errorf("tiles = %d/%d padded %d, want 2/2 padded 8", d.VIn, d.VOut, d.Padded)
	}
	if d.StateSize != 10 {
		t.Errorf("StateSize = %d, want 10", d.StateSize)
	}
	g, _ := newLayerData(gru(5, 7))
	if g.Gates != 21 || g.Out2 != 14 {
		t.Errorf("gru gates = %d, out2 = %d", g.Gates, g.Out2)
	}
}

func TestInvalidShapes(t *testing.T) {
	for _, s := range []Shape{
		dense(0, 3),
		conv1d(2, 2, 3, 0),
		{Kind: "tanh", In: 3, Out: 4},
		{Kind: "swish", In: 3, Out: 3},
	} {
		if _, err := newLayerData(s); err == nil {
			t.Errorf("newLayerData(%+v) succeeded, want error", s)
		}
	}
	g := &Generator{Shapes: []Shape{gru(1, 8), gru(1, 8)}}
	if _, err := g.layers(); err == nil {
		t.Error("duplicate shapes accepted")
	}
}

func TestFilterShapes(t *testing.T) {
	got, err := filterShapes(defaultShapes, "gru, lstm")
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range got {
		if s.Kind != "gru" && s.Kind != "lstm" {
			t.Errorf("unexpected kind %q", s.Kind)
		}
	}
	if len(got) != 21 {
		t.Errorf("got %d shapes, want 21", len(got))
	}
	if _, err := filterShapes(defaultShapes, "gru,mlp"); err == nil {
		t.Error("unknown kind accepted")
	}
}

func TestRunWritesParsableFiles(t *testing.T) {
	dir := t.TempDir()
	g := &Generator{OutputDir: dir, Package: "static", Shapes: defaultShapes}
	files, err := g.Run()
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != len(families)+1 {
		t.Errorf("wrote %v", files)
	}

	fset := token.NewFileSet()
	types := 0
	for _, name := range files {
		src, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(string(src), "// Code generated by rtgen. DO NOT EDIT.") {
			t.Errorf("%s: missing generated header", name)
		}
		f, err := parser.ParseFile(fset, name, src, 0)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		for _, decl := range f.Decls {
			if gd, ok := decl.(*ast.GenDecl); ok && gd.Tok == token.TYPE {
				types += len(gd.Specs)
			}
		}
	}
	if types != len(defaultShapes) {
		t.Errorf("generated %d types, want %d", types, len(defaultShapes))
	}
}

func TestRunSkipsEmptyFamilies(t *testing.T) {
	dir := t.TempDir()
	g := &Generator{OutputDir: dir, Package: "static", Shapes: []Shape{dense(2, 2)}}
	files, err := g.Run()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"dense_gen.go", "registry_gen.go"}
	if strings.Join(files, ",") != strings.Join(want, ",") {
		t.Errorf("files = %v, want %v", files, want)
	}
}

// TestCheckedInFilesUpToDate regenerates the static package and compares it
// with the files in the repository.
func TestCheckedInFilesUpToDate(t *testing.T) {
	const staticDir = "../../hwy/contrib/nn/static"
	if _, err := os.Stat(staticDir); err != nil {
		t.Skip("static package not found")
	}
	dir := t.TempDir()
	g := &Generator{OutputDir: dir, Package: "static", Shapes: defaultShapes}
	files, err := g.Run()
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range files {
		got, _ := os.ReadFile(filepath.Join(dir, name))
		want, err := os.ReadFile(filepath.Join(staticDir, name))
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if string(got) != string(want) {
			t.Errorf("%s is stale; run go generate ./hwy/contrib/nn/static", name)
		}
	}
}
