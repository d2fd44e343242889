package matvec

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
)

// MatVecFloat32 computes result = M * v with blas32.Gemv.
func MatVecFloat32(m []float32, rows, cols int, v, result []float32) {
	checkSizes(len(m), rows, cols, len(v), len(result))
	blas32.Gemv(blas.NoTrans, 1,
		blas32.General{Rows: rows, Cols: cols, Stride: cols, Data: m},
		blas32.Vector{N: cols, Inc: 1, Data: v},
		0,
		blas32.Vector{N: rows, Inc: 1, Data: result})
}

// MatVecFloat64 computes result = M * v with blas64.Gemv.
func MatVecFloat64(m []float64, rows, cols int, v, result []float64) {
	checkSizes(len(m), rows, cols, len(v), len(result))
	blas64.Gemv(blas.NoTrans, 1,
		blas64.General{Rows: rows, Cols: cols, Stride: cols, Data: m},
		blas64.Vector{N: cols, Inc: 1, Data: v},
		0,
		blas64.Vector{N: rows, Inc: 1, Data: result})
}
