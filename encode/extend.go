// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package encode

import (
	"fmt"

	"github.com/js-arias/phylopam/matrix"
	"github.com/js-arias/phylopam/tree"
)

// ExtendPAM returns a new presence-absence matrix
// with a new column for each terminal of the tree
// without a matrix index.
//
// The new column is the union of the columns
// of the terminals of the sister clade of the terminal
// (a site is 1 if any of the sister terminals is present).
// The matrix index of the terminal is set to the new column
// (the tree is modified),
// in preorder,
// starting from the number of columns of the original matrix.
// The header of the new column is the squid of the terminal,
// or its name if it has no squid.
//
// The tree must be binary.
func ExtendPAM(t *tree.Tree, pam *matrix.Matrix) (*matrix.Matrix, error) {
	if !t.IsBinary() {
		return nil, &Error{Err: ErrNotBinary}
	}

	rows, cols := pam.Dims()
	ext := matrix.New(pam.RowHeaders(), pam.ColumnHeaders())
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			ext.Set(r, c, pam.At(r, c))
		}
	}

	type newColumn struct {
		tip    int
		header string
		sister []int
	}
	var add []newColumn
	for _, l := range t.Labels() {
		if _, ok := t.MatrixIndex(l.ID); ok {
			continue
		}
		p := t.Parent(l.ID)
		if p < 0 {
			return nil, &Error{
				Err: ErrIndexMismatch,
				Msg: fmt.Sprintf("terminal %d without sister", l.ID),
			}
		}

		var sister []int
		for _, c := range t.Children(p) {
			if c == l.ID {
				continue
			}
			idx, err := t.MatrixIndices(c)
			if err != nil {
				return nil, err
			}
			for _, i := range idx {
				if i < 0 || i >= cols {
					return nil, &Error{
						Err: ErrIndexMismatch,
						Msg: fmt.Sprintf("matrix index %d out of range [0, %d)", i, cols),
					}
				}
			}
			sister = append(sister, idx...)
		}

		h := l.Name
		if sq, ok := t.Squid(l.ID); ok {
			h = sq
		}
		add = append(add, newColumn{
			tip:    l.ID,
			header: h,
			sister: sister,
		})
	}

	for i, nc := range add {
		vals := make([]float64, rows)
		for r := range vals {
			for _, c := range nc.sister {
				if pam.At(r, c) != 0 {
					vals[r] = 1
					break
				}
			}
		}
		if err := ext.AppendColumn(nc.header, vals); err != nil {
			return nil, err
		}
		if err := t.SetMatrixIndex(nc.tip, cols+i); err != nil {
			return nil, err
		}
	}
	return ext, nil
}
