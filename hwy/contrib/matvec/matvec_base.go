package matvec

import "github.com/go-highway/rtneural/hwy"

func checkSizes(mLen, rows, cols, vLen, resultLen int) {
	if mLen < rows*cols {
		panic("matrix slice too small")
	}
	if vLen < cols {
		panic("vector slice too small")
	}
	if resultLen < rows {
		panic("result slice too small")
	}
}

// MatVec computes the matrix-vector product: result = M * v
//
// Parameters:
//   - m: matrix in row-major order with shape [rows, cols]
//   - rows: number of rows in the matrix
//   - cols: number of columns in the matrix
//   - v: input vector of length cols
//   - result: output vector of length rows (must be pre-allocated)
//
// Panics if:
//   - len(m) < rows * cols
//   - len(v) < cols
//   - len(result) < rows
func MatVec[T hwy.Floats](m []T, rows, cols int, v, result []T) {
	checkSizes(len(m), rows, cols, len(v), len(result))
	lanes := hwy.MaxLanes[T]()

	for i := range rows {
		row := m[i*cols : (i+1)*cols]

		sum := hwy.Zero[T]()
		var j int
		for j = 0; j+lanes <= cols; j += lanes {
			sum = hwy.MulAdd(hwy.Load(row[j:]), hwy.Load(v[j:]), sum)
		}

		// Reduce and add scalar tail
		acc := hwy.ReduceSum(sum)
		for ; j < cols; j++ {
			acc += row[j] * v[j]
		}
		result[i] = acc
	}
}

// MatVecScalar is the reference form of MatVec.
func MatVecScalar[T hwy.Floats](m []T, rows, cols int, v, result []T) {
	checkSizes(len(m), rows, cols, len(v), len(result))
	for i := range rows {
		row := m[i*cols : (i+1)*cols]
		var acc T
		for j, w := range row {
			acc += w * v[j]
		}
		result[i] = acc
	}
}
