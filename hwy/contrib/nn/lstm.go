package nn

import "github.com/go-highway/rtneural/hwy"

// LSTM is a long short-term memory layer with gates ordered input, forget,
// candidate, output.
//
//	i = σ(Wi·x + Ui·h + bi)
//	f = σ(Wf·x + Uf·h + bf)
//	c = tanh(Wc·x + Uc·h + bc)
//	o = σ(Wo·x + Uo·h + bo)
//	C = f ⊙ C + i ⊙ c
//	h = o ⊙ tanh(C)
type LSTM[T hwy.Floats] struct {
	inSize, outSize int

	i, f, c, o gate[T]

	hidden, cell []T

	iVec, fVec, cVec, oVec []T
	prod                   []T

	k Kernels[T]
}

// NewLSTM creates an LSTM with zero weights, bias and state.
func NewLSTM[T hwy.Floats](inSize, outSize int, opts ...Option[T]) *LSTM[T] {
	mustPositive("lstm", inSize, outSize)
	o := buildOptions(opts)
	return &LSTM[T]{
		inSize:  inSize,
		outSize: outSize,
		i:       newGate[T](inSize, outSize, false),
		f:       newGate[T](inSize, outSize, false),
		c:       newGate[T](inSize, outSize, false),
		o:       newGate[T](inSize, outSize, false),
		hidden:  make([]T, outSize),
		cell:    make([]T, outSize),
		iVec:    make([]T, outSize),
		fVec:    make([]T, outSize),
		cVec:    make([]T, outSize),
		oVec:    make([]T, outSize),
		prod:    make([]T, outSize),
		k:       o.kernels,
	}
}

func (l *LSTM[T]) Name() string { return "lstm" }
func (l *LSTM[T]) InSize() int  { return l.inSize }
func (l *LSTM[T]) OutSize() int { return l.outSize }

// Reset zeroes the hidden and cell state.
func (l *LSTM[T]) Reset() {
	clear(l.hidden)
	clear(l.cell)
}

// State returns the hidden and cell state. Both alias the layer's storage.
func (l *LSTM[T]) State() (hidden, cell []T) { return l.hidden, l.cell }

func (l *LSTM[T]) gateIn(g *gate[T], input, dst []T) {
	l.k.MatVec(g.w, l.outSize, l.inSize, input, dst)
	l.k.MatVec(g.u, l.outSize, l.outSize, l.hidden, l.prod)
	l.k.AddTo(dst, dst, l.prod)
	l.k.AddTo(dst, dst, g.b0)
}

// Forward advances both states by one frame and writes the hidden state to
// output.
func (l *LSTM[T]) Forward(input, output []T) {
	input = input[:l.inSize]
	output = output[:l.outSize]

	l.gateIn(&l.i, input, l.iVec)
	l.k.Sigmoid(l.iVec, l.iVec)
	l.gateIn(&l.f, input, l.fVec)
	l.k.Sigmoid(l.fVec, l.fVec)
	l.gateIn(&l.c, input, l.cVec)
	l.k.Tanh(l.cVec, l.cVec)
	l.gateIn(&l.o, input, l.oVec)
	l.k.Sigmoid(l.oVec, l.oVec)

	l.k.MulTo(l.cell, l.fVec, l.cell)
	l.k.MulTo(l.prod, l.iVec, l.cVec)
	l.k.AddTo(l.cell, l.cell, l.prod)

	l.k.Tanh(l.cell, l.prod)
	l.k.MulTo(l.hidden, l.oVec, l.prod)
	copy(output, l.hidden)
}

func (l *LSTM[T]) gates() [4]*gate[T] { return [4]*gate[T]{&l.i, &l.f, &l.c, &l.o} }

// SetWVals copies kernel weights laid out as [inSize][4*outSize].
func (l *LSTM[T]) SetWVals(w [][]T) error {
	if err := CheckMatrix("lstm", "kernel weights", w, l.inSize, 4*l.outSize); err != nil {
		return err
	}
	gs := l.gates()
	setGateColumns(gs[:], w, func(g *gate[T]) []T { return g.w }, l.inSize, l.outSize)
	return nil
}

// SetUVals copies recurrent weights laid out as [outSize][4*outSize].
func (l *LSTM[T]) SetUVals(u [][]T) error {
	if err := CheckMatrix("lstm", "recurrent weights", u, l.outSize, 4*l.outSize); err != nil {
		return err
	}
	gs := l.gates()
	setGateColumns(gs[:], u, func(g *gate[T]) []T { return g.u }, l.outSize, l.outSize)
	return nil
}

// SetBVals copies a [4*outSize] bias vector.
func (l *LSTM[T]) SetBVals(b []T) error {
	if err := CheckVector("lstm", "bias", b, 4*l.outSize); err != nil {
		return err
	}
	for gi, g := range l.gates() {
		copy(g.b0, b[gi*l.outSize:(gi+1)*l.outSize])
	}
	return nil
}

func (l *LSTM[T]) WVal(i, k int) T {
	g := l.gates()[k/l.outSize]
	return g.w[(k%l.outSize)*l.inSize+i]
}

func (l *LSTM[T]) UVal(i, k int) T {
	g := l.gates()[k/l.outSize]
	return g.u[(k%l.outSize)*l.outSize+i]
}

func (l *LSTM[T]) BVal(k int) T {
	return l.gates()[k/l.outSize].b0[k%l.outSize]
}

// Clone returns a deep copy of the layer, including its state.
func (l *LSTM[T]) Clone() Layer[T] {
	c := *l
	c.i, c.f, c.c, c.o = l.i.clone(), l.f.clone(), l.c.clone(), l.o.clone()
	c.hidden = append([]T(nil), l.hidden...)
	c.cell = append([]T(nil), l.cell...)
	c.iVec = make([]T, l.outSize)
	c.fVec = make([]T, l.outSize)
	c.cVec = make([]T, l.outSize)
	c.oVec = make([]T, l.outSize)
	c.prod = make([]T, l.outSize)
	return &c
}
