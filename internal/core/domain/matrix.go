// Package domain contains the core dataset types and their transformations.
package domain

// Matrix is a row-major matrix. For sequence data each row is one time step.
type Matrix [][]float64

// NewMatrix allocates a zeroed rows x cols matrix.
func NewMatrix(rows, cols int) Matrix {
	backing := make([]float64, rows*cols)
	m := make(Matrix, rows)
	for i := range m {
		m[i] = backing[i*cols : (i+1)*cols : (i+1)*cols]
	}
	return m
}

// Rows returns the number of rows.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns, or 0 for an empty matrix.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Clone returns a deep copy of m.
func (m Matrix) Clone() Matrix {
	c := NewMatrix(m.Rows(), m.Cols())
	for i, row := range m {
		copy(c[i], row)
	}
	return c
}

// Transpose returns the cols x rows transpose of m.
func (m Matrix) Transpose() Matrix {
	t := NewMatrix(m.Cols(), m.Rows())
	for i, row := range m {
		for j, v := range row {
			t[j][i] = v
		}
	}
	return t
}

// Column returns a copy of column j.
func (m Matrix) Column(j int) []float64 {
	col := make([]float64, len(m))
	for i, row := range m {
		col[i] = row[j]
	}
	return col
}

// flatten collects the rows of the selected instances. The rows alias the
// instance storage, so transforming them in place updates the instances.
func flatten(x []Matrix, idx []int) Matrix {
	total := 0
	for _, i := range idx {
		total += len(x[i])
	}
	flat := make(Matrix, 0, total)
	for _, i := range idx {
		flat = append(flat, x[i]...)
	}
	return flat
}
