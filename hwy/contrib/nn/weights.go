package nn

import (
	"errors"
	"fmt"
)

// ErrShape is wrapped by every weight setter that receives a slice whose
// dimensions do not match the layer.
var ErrShape = errors.New("nn: weight shape mismatch")

// CheckMatrix reports whether w has exactly rows rows of cols elements.
// layer and what name the offending argument in the error.
func CheckMatrix[T any](layer, what string, w [][]T, rows, cols int) error {
	if len(w) != rows {
		return fmt.Errorf("%s: %s: got %d rows, want %d: %w", layer, what, len(w), rows, ErrShape)
	}
	for i, row := range w {
		if len(row) != cols {
			return fmt.Errorf("%s: %s: row %d has %d columns, want %d: %w", layer, what, i, len(row), cols, ErrShape)
		}
	}
	return nil
}

// CheckVector reports whether b has exactly n elements.
func CheckVector[T any](layer, what string, b []T, n int) error {
	if len(b) != n {
		return fmt.Errorf("%s: %s: got %d elements, want %d: %w", layer, what, len(b), n, ErrShape)
	}
	return nil
}

// CheckTensor3 reports whether w has shape [d0][d1][d2].
func CheckTensor3[T any](layer, what string, w [][][]T, d0, d1, d2 int) error {
	if len(w) != d0 {
		return fmt.Errorf("%s: %s: got %d outer elements, want %d: %w", layer, what, len(w), d0, ErrShape)
	}
	for i, m := range w {
		if err := CheckMatrix(layer, fmt.Sprintf("%s[%d]", what, i), m, d1, d2); err != nil {
			return err
		}
	}
	return nil
}
