// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package matrix

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// labelField is the name of the first column
// of a matrix file.
const labelField = "label"

// ReadTSV reads a matrix from a TSV file.
//
// The first row is the header,
// its first field must be "label",
// and the rest of the fields are the column headers.
// Each following row is a matrix row:
// the first field is the row header
// and the rest are the values of the row.
// Lines starting with '#' are ignored.
//
// Here is an example file:
//
//	# presence-absence matrix
//	label	sp-1	sp-2	sp-3
//	17319	1	0	1
//	17320	0	1	1
func ReadTSV(r io.Reader) (*Matrix, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	if len(head) == 0 || strings.ToLower(head[0]) != labelField {
		return nil, fmt.Errorf("expecting field %q", labelField)
	}
	cols := head[1:]

	var rows []string
	var vals [][]float64
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		v := make([]float64, 0, len(cols))
		for i, s := range row[1:] {
			x, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("on row %d: field %q: %v", ln, cols[i], err)
			}
			v = append(v, x)
		}
		rows = append(rows, row[0])
		vals = append(vals, v)
	}

	m := New(rows, cols)
	for i, v := range vals {
		for j, x := range v {
			m.Set(i, j, x)
		}
	}
	return m, nil
}

// TSV writes a matrix as a TSV file.
func (m *Matrix) TSV(w io.Writer) error {
	bw := bufio.NewWriter(w)
	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	_, c := m.Dims()
	head := make([]string, 0, c+1)
	head = append(head, labelField)
	head = append(head, m.headers[Columns]...)
	if err := tsv.Write(head); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}

	for i, h := range m.headers[Rows] {
		row := make([]string, 0, c+1)
		row = append(row, h)
		for j := 0; j < c; j++ {
			row = append(row, strconv.FormatFloat(m.data.At(i, j), 'g', -1, 64))
		}
		if err := tsv.Write(row); err != nil {
			return fmt.Errorf("on row %q: %v", h, err)
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}
