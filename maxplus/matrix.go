// SPDX-License-Identifier: MIT

package maxplus

import (
	"fmt"
	"strings"
)

// Matrix is a dense row-major max-plus matrix.
// Entry (i,j) holds the delay from input token j to output token i,
// MinusInfinity when output i does not depend on input j.
type Matrix struct {
	r, c int
	data []float64
}

var _ fmt.Stringer = (*Matrix)(nil)

// NewMatrix returns a rows×cols matrix filled with MinusInfinity.
// Zero-sized matrices are legal; they describe scenarios without tokens.
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewMatrix(%d,%d): %w", rows, cols, ErrBadShape)
	}
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = MinusInfinity
	}

	return &Matrix{r: rows, c: cols, data: data}, nil
}

// FromColumns assembles a matrix whose j-th column is cols[j].
// Every column must have length rows.
func FromColumns(rows int, cols []Vector) (*Matrix, error) {
	m, err := NewMatrix(rows, len(cols))
	if err != nil {
		return nil, err
	}
	for j, col := range cols {
		if len(col) != rows {
			return nil, fmt.Errorf("FromColumns: column %d has %d rows, want %d: %w", j, len(col), rows, ErrDimensionMismatch)
		}
		for i, t := range col {
			m.data[i*m.c+j] = t
		}
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.c }

// IsSquare reports whether Rows == Cols.
func (m *Matrix) IsSquare() bool { return m.r == m.c }

// At returns entry (i,j).
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, fmt.Errorf("Matrix.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return m.data[i*m.c+j], nil
}

// Set assigns entry (i,j).
func (m *Matrix) Set(i, j int, t float64) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return fmt.Errorf("Matrix.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	m.data[i*m.c+j] = t

	return nil
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &Matrix{r: m.r, c: m.c, data: data}
}

// MulVector returns m ⊗ v: out_i = max_j (m_ij + v_j).
func (m *Matrix) MulVector(v Vector) (Vector, error) {
	if len(v) != m.c {
		return nil, fmt.Errorf("Matrix.MulVector(%dx%d, %d): %w", m.r, m.c, len(v), ErrDimensionMismatch)
	}
	out := NewVector(m.r, MinusInfinity)
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			out[i] = Max(out[i], Add(m.data[base+j], v[j]))
		}
	}

	return out, nil
}

// Mul returns m ⊗ b.
func (m *Matrix) Mul(b *Matrix) (*Matrix, error) {
	if m.c != b.r {
		return nil, fmt.Errorf("Matrix.Mul(%dx%d, %dx%d): %w", m.r, m.c, b.r, b.c, ErrDimensionMismatch)
	}
	out, _ := NewMatrix(m.r, b.c)
	var i, j, k int
	var mik float64
	// i → k → j keeps the inner loop on contiguous rows of b.
	for i = 0; i < m.r; i++ {
		for k = 0; k < m.c; k++ {
			mik = m.data[i*m.c+k]
			if IsMinusInfinity(mik) {
				continue
			}
			for j = 0; j < b.c; j++ {
				out.data[i*out.c+j] = Max(out.data[i*out.c+j], Add(mik, b.data[k*b.c+j]))
			}
		}
	}

	return out, nil
}

// Finite calls fn for every finite entry in row-major order.
func (m *Matrix) Finite(fn func(i, j int, t float64)) {
	for idx, t := range m.data {
		if !IsMinusInfinity(t) {
			fn(idx/m.c, idx%m.c, t)
		}
	}
}

// Equal reports whether m and b have the same shape and Close entries.
func (m *Matrix) Equal(b *Matrix, eps float64) bool {
	if m.r != b.r || m.c != b.c {
		return false
	}
	for i := range m.data {
		if !Close(m.data[i], b.data[i], eps) {
			return false
		}
	}

	return true
}

// String renders m one row per line.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(formatTime(m.data[i*m.c+j]))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
