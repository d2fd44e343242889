package main

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"slices"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

const (
	pkgHwy  = "github.com/go-highway/rtneural/hwy"
	pkgMath = "github.com/go-highway/rtneural/hwy/contrib/math"
	pkgNN   = "github.com/go-highway/rtneural/hwy/contrib/nn"
)

// family groups the layer kinds written to one output file.
type family struct {
	file    string
	imports []string
	kinds   []string
}

var families = []family{
	{"dense_gen.go", []string{pkgHwy, pkgNN}, []string{"dense"}},
	{"conv1d_gen.go", []string{pkgHwy, pkgNN}, []string{"conv1d"}},
	{"gru_gen.go", []string{pkgHwy, pkgMath, pkgNN}, []string{"gru"}},
	{"lstm_gen.go", []string{pkgHwy, pkgMath, pkgNN}, []string{"lstm"}},
	{"activation_gen.go", []string{pkgHwy, pkgMath, pkgNN}, activationKinds},
}

// layerData is the template input for one layer type.
type layerData struct {
	Shape
	Name string

	// Tile counts and padded element count.
	VIn, VOut, Padded int

	// Gate column offsets and width.
	Out2, Out3, Gates int

	StateSize int
	Func      string
}

func newLayerData(s Shape) (layerData, error) {
	if s.In <= 0 || s.Out <= 0 {
		return layerData{}, fmt.Errorf("%s: sizes must be positive, got %dx%d", s.Kind, s.In, s.Out)
	}
	d := layerData{
		Shape:  s,
		VIn:    tiles(s.In),
		VOut:   tiles(s.Out),
		Padded: 4 * tiles(s.Out),
		Out2:   2 * s.Out,
		Out3:   3 * s.Out,
	}
	switch s.Kind {
	case "dense":
		d.Name = fmt.Sprintf("Dense%dx%d", s.In, s.Out)
	case "conv1d":
		if s.Kernel <= 0 || s.Dilation <= 0 {
			return layerData{}, fmt.Errorf("conv1d: kernel and dilation must be positive, got %d and %d", s.Kernel, s.Dilation)
		}
		d.Name = fmt.Sprintf("Conv1D%dx%dK%dD%d", s.In, s.Out, s.Kernel, s.Dilation)
		d.StateSize = (s.Kernel-1)*s.Dilation + 1
	case "gru":
		d.Name = fmt.Sprintf("GRU%dx%d", s.In, s.Out)
		d.Gates = 3 * s.Out
	case "lstm":
		d.Name = fmt.Sprintf("LSTM%dx%d", s.In, s.Out)
		d.Gates = 4 * s.Out
	case "tanh", "fast_tanh", "relu", "sigmoid", "softmax", "elu":
		if s.In != s.Out {
			return layerData{}, fmt.Errorf("%s: input and output sizes differ: %d != %d", s.Kind, s.In, s.Out)
		}
		prefix := map[string]string{
			"tanh":      "Tanh",
			"fast_tanh": "FastTanh",
			"relu":      "ReLU",
			"sigmoid":   "Sigmoid",
			"softmax":   "Softmax",
			"elu":       "ELU",
		}[s.Kind]
		d.Name = fmt.Sprintf("%s%d", prefix, s.Out)
		d.Func = prefix + "4"
	default:
		return layerData{}, fmt.Errorf("unknown layer kind %q", s.Kind)
	}
	return d, nil
}

func tiles(n int) int { return (n + 3) / 4 }

// ShapeLit is the Go literal of the layer's static.Shape.
func (d layerData) ShapeLit() string {
	if d.Kind == "conv1d" {
		return fmt.Sprintf("Shape{Kind: %q, In: %d, Out: %d, Kernel: %d, Dilation: %d}", d.Kind, d.In, d.Out, d.Kernel, d.Dilation)
	}
	return fmt.Sprintf("Shape{Kind: %q, In: %d, Out: %d}", d.Kind, d.In, d.Out)
}

func (d layerData) template() string {
	switch d.Kind {
	case "gru", "lstm":
		if d.In == 1 {
			return d.Kind + "_in1.tmpl"
		}
		return d.Kind + ".tmpl"
	case "tanh", "fast_tanh", "sigmoid":
		return "pointwise.tmpl"
	}
	return d.Kind + ".tmpl"
}

// Generator renders layer types into Go source files.
type Generator struct {
	OutputDir string
	Package   string
	Shapes    []Shape
}

func (g *Generator) layers() ([]layerData, error) {
	var layers []layerData
	seen := make(map[string]bool)
	for _, s := range g.Shapes {
		d, err := newLayerData(s)
		if err != nil {
			return nil, err
		}
		if seen[d.Name] {
			return nil, fmt.Errorf("duplicate layer %s", d.Name)
		}
		seen[d.Name] = true
		layers = append(layers, d)
	}
	return layers, nil
}

// Run writes every non-empty family file and the registry, returning the
// names of the files written.
func (g *Generator) Run() ([]string, error) {
	layers, err := g.layers()
	if err != nil {
		return nil, err
	}
	var written []string
	for _, f := range families {
		src, err := g.renderFamily(f, layers)
		if err != nil {
			return nil, err
		}
		if src == nil {
			continue
		}
		if err := g.write(f.file, src); err != nil {
			return nil, err
		}
		written = append(written, f.file)
	}

	src, err := g.renderRegistry(layers)
	if err != nil {
		return nil, err
	}
	if err := g.write("registry_gen.go", src); err != nil {
		return nil, err
	}
	return append(written, "registry_gen.go"), nil
}

// renderFamily returns nil if no layer belongs to f.
func (g *Generator) renderFamily(f family, layers []layerData) ([]byte, error) {
	var buf bytes.Buffer
	g.header(&buf, nil, f.imports)
	n := 0
	for _, d := range layers {
		if !slices.Contains(f.kinds, d.Kind) {
			continue
		}
		buf.WriteString("\n")
		if err := templates.ExecuteTemplate(&buf, d.template(), d); err != nil {
			return nil, fmt.Errorf("%s: %w", d.Name, err)
		}
		n++
	}
	if n == 0 {
		return nil, nil
	}
	return formatSource(f.file, buf.Bytes())
}

func (g *Generator) renderRegistry(layers []layerData) ([]byte, error) {
	var buf bytes.Buffer
	g.header(&buf, []string{"fmt"}, []string{pkgHwy, pkgNN})
	buf.WriteString("\n")
	if err := templates.ExecuteTemplate(&buf, "registry.tmpl", layers); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	return formatSource("registry_gen.go", buf.Bytes())
}

func (g *Generator) header(buf *bytes.Buffer, std, imports []string) {
	fmt.Fprintf(buf, "// Code generated by rtgen. DO NOT EDIT.\n\npackage %s\n\nimport (\n", g.Package)
	for _, p := range std {
		fmt.Fprintf(buf, "\t%q\n", p)
	}
	if len(std) > 0 {
		buf.WriteString("\n")
	}
	for _, p := range imports {
		fmt.Fprintf(buf, "\t%q\n", p)
	}
	buf.WriteString(")\n")
}

func formatSource(name string, src []byte) ([]byte, error) {
	out, err := format.Source(src)
	if err != nil {
		return nil, fmt.Errorf("formatting %s: %w", name, err)
	}
	return out, nil
}

func (g *Generator) write(name string, src []byte) error {
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(g.OutputDir, name), src, 0o644)
}
