// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package matrix implements a two dimensional matrix
// of real values
// with labeled rows and columns.
//
// It is used to store presence-absence matrices
// (sites by species),
// phylogenetic encodings
// (tips by internal nodes),
// and distance matrices.
package matrix

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// Axis is a matrix dimension.
type Axis int

// Valid axes.
const (
	Rows    Axis = 0
	Columns Axis = 1
)

func (a Axis) String() string {
	switch a {
	case Rows:
		return "rows"
	case Columns:
		return "columns"
	}
	return fmt.Sprintf("axis(%d)", int(a))
}

// A Matrix is a matrix with labeled axes.
type Matrix struct {
	// data is nil
	// if any dimension is empty.
	data *mat.Dense

	headers [2][]string
}

// New creates a new matrix filled with zeros,
// using the indicated headers.
// The size of the matrix is defined by the number of headers.
func New(rows, cols []string) *Matrix {
	m := &Matrix{
		headers: [2][]string{
			slices.Clone(rows),
			slices.Clone(cols),
		},
	}
	if len(rows) > 0 && len(cols) > 0 {
		m.data = mat.NewDense(len(rows), len(cols), nil)
	}
	return m
}

// FromDense creates a new matrix from a gonum dense matrix.
// The matrix data is copied.
// The number of headers must match the matrix dimensions.
func FromDense(d mat.Matrix, rows, cols []string) (*Matrix, error) {
	r, c := d.Dims()
	if len(rows) != r {
		return nil, fmt.Errorf("matrix: got %d row headers, want %d", len(rows), r)
	}
	if len(cols) != c {
		return nil, fmt.Errorf("matrix: got %d column headers, want %d", len(cols), c)
	}
	m := New(rows, cols)
	if m.data != nil {
		m.data.Copy(d)
	}
	return m, nil
}

// Dims returns the number of rows and columns
// of the matrix.
func (m *Matrix) Dims() (r, c int) {
	return len(m.headers[Rows]), len(m.headers[Columns])
}

// At returns the value at a given row and column.
func (m *Matrix) At(i, j int) float64 {
	m.check(i, j)
	return m.data.At(i, j)
}

// Set sets the value at a given row and column.
func (m *Matrix) Set(i, j int, v float64) {
	m.check(i, j)
	m.data.Set(i, j, v)
}

func (m *Matrix) check(i, j int) {
	r, c := m.Dims()
	if i < 0 || i >= r || j < 0 || j >= c {
		panic(fmt.Sprintf("matrix: index [%d, %d] out of range [%d, %d]", i, j, r, c))
	}
}

// Row returns a copy of the values of a row.
func (m *Matrix) Row(i int) []float64 {
	m.check(i, 0)
	return mat.Row(nil, i, m.data)
}

// Col returns a copy of the values of a column.
func (m *Matrix) Col(j int) []float64 {
	m.check(0, j)
	return mat.Col(nil, j, m.data)
}

// Dense returns a copy of the matrix data
// as a gonum dense matrix.
// It returns nil if the matrix is empty.
func (m *Matrix) Dense() *mat.Dense {
	if m.data == nil {
		return nil
	}
	return mat.DenseCopyOf(m.data)
}

// Headers returns the headers of an axis.
func (m *Matrix) Headers(a Axis) []string {
	return slices.Clone(m.headers[a])
}

// RowHeaders returns the row headers.
func (m *Matrix) RowHeaders() []string {
	return m.Headers(Rows)
}

// ColumnHeaders returns the column headers.
func (m *Matrix) ColumnHeaders() []string {
	return m.Headers(Columns)
}

// SetHeaders replace the headers of an axis.
func (m *Matrix) SetHeaders(a Axis, h []string) error {
	if len(h) != len(m.headers[a]) {
		return fmt.Errorf("matrix: got %d %s headers, want %d", len(h), a, len(m.headers[a]))
	}
	m.headers[a] = slices.Clone(h)
	return nil
}

// Append adds the values of another matrix
// at the end of the indicated axis.
// The other axis must be of the same size.
func (m *Matrix) Append(a Axis, o *Matrix) error {
	r, c := m.Dims()
	or, oc := o.Dims()

	var nr, nc int
	switch a {
	case Rows:
		if c != oc {
			return fmt.Errorf("matrix: append rows: got %d columns, want %d", oc, c)
		}
		nr, nc = r+or, c
	case Columns:
		if r != or {
			return fmt.Errorf("matrix: append columns: got %d rows, want %d", or, r)
		}
		nr, nc = r, c+oc
	default:
		return fmt.Errorf("matrix: invalid axis %d", int(a))
	}

	var data *mat.Dense
	if nr > 0 && nc > 0 {
		data = mat.NewDense(nr, nc, nil)
		if m.data != nil {
			data.Slice(0, r, 0, c).(*mat.Dense).Copy(m.data)
		}
		if o.data != nil {
			switch a {
			case Rows:
				data.Slice(r, nr, 0, nc).(*mat.Dense).Copy(o.data)
			case Columns:
				data.Slice(0, nr, c, nc).(*mat.Dense).Copy(o.data)
			}
		}
	}
	m.data = data
	m.headers[a] = append(m.headers[a], o.headers[a]...)
	return nil
}

// AppendColumn adds a new column
// at the end of the matrix.
func (m *Matrix) AppendColumn(header string, vals []float64) error {
	r, _ := m.Dims()
	if len(vals) != r {
		return fmt.Errorf("matrix: column %q: got %d values, want %d", header, len(vals), r)
	}
	o := New(m.headers[Rows], []string{header})
	if o.data != nil {
		o.data.SetCol(0, vals)
	}
	return m.Append(Columns, o)
}
