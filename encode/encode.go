// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package encode implements the phylogenetic encoding
// of a tree whose terminals are linked
// to the columns of a presence-absence matrix.
//
// The encoding (the P-matrix)
// is a matrix of terminals by internal nodes,
// in which each cell describes the relation
// between the terminal and the node.
// If the tree has branch lengths,
// the values are weighted by the branch lengths,
// otherwise the values are based only on the topology.
//
// See Leibold, M.A., Economo, E.P., Peres-Neto, P. (2010)
// Metacommunity phylogenetics:
// separating the roles of environmental filters and historical biogeography.
// Ecology Letters 13: 1290-1299.
package encode

import (
	"fmt"
	"strconv"

	"github.com/js-arias/phylopam/matrix"
	"github.com/js-arias/phylopam/tree"
	"gonum.org/v1/gonum/floats"
)

// Validate returns an error
// if the tree and the presence-absence matrix
// can not be encoded.
//
// A tree can be encoded if it is binary,
// ultrametric if it has branch lengths,
// and if the number of distinct matrix indices
// in the range of matrix columns,
// as well as the number of matrix indices in the tree,
// are equal to the number of columns.
// A tree with a single terminal can be encoded
// (the encoding has no columns),
// but an empty tree can not.
func Validate(t *tree.Tree, pam *matrix.Matrix) error {
	if t.Root() < 0 {
		return &Error{Err: ErrEmptyTree}
	}
	if t.HasBranchLengths() && !t.IsUltrametric() {
		return &Error{Err: ErrNotUltrametric}
	}
	if !t.IsBinary() {
		return &Error{Err: ErrNotBinary}
	}

	_, cols := pam.Dims()
	idx, err := t.MatrixIndices(t.Root())
	if err != nil {
		return err
	}
	in := make(map[int]bool, len(idx))
	for _, i := range idx {
		if i < 0 || i >= cols {
			continue
		}
		in[i] = true
	}
	if len(in) != cols || len(idx) != cols {
		return &Error{
			Err: ErrIndexMismatch,
			Msg: fmt.Sprintf("got %d indices (%d in range), want %d", len(idx), len(in), cols),
		}
	}
	return nil
}

// Encode returns the phylogenetic encoding
// of a tree
// whose terminals are linked to the columns
// of a presence-absence matrix.
//
// The rows of the encoding are the terminals,
// ordered by its matrix index,
// and labeled with the column headers of the presence-absence matrix.
// The columns are the internal nodes,
// ordered by ID,
// and labeled with the node ID.
func Encode(t *tree.Tree, pam *matrix.Matrix) (*matrix.Matrix, error) {
	if err := Validate(t, pam); err != nil {
		return nil, err
	}

	nodes := t.InternalNodes()
	cols := make([]string, 0, len(nodes))
	colPos := make(map[int]int, len(nodes))
	for i, id := range nodes {
		cols = append(cols, strconv.Itoa(id))
		colPos[id] = i
	}
	p := matrix.New(pam.ColumnHeaders(), cols)

	var vals map[int]map[int]float64
	if t.HasBranchLengths() {
		vals = weighted(t)
	} else {
		vals = unweighted(t)
	}

	for tip, row := range vals {
		idx, ok := t.MatrixIndex(tip)
		if !ok {
			continue
		}
		for node, v := range row {
			p.Set(idx, colPos[node], v)
		}
	}
	return p, nil
}

// A step is an internal node
// and its weight for a terminal.
type step struct {
	node   int
	weight float64
}

// unweighted returns the encoding values of each terminal
// using only the tree topology.
//
// The tree is traversed from the root,
// at each internal node
// the weights of the previous nodes are halved,
// and the node is added with a weight of -1
// for the left child,
// and 1 for the right child.
func unweighted(t *tree.Tree) map[int]map[int]float64 {
	vals := make(map[int]map[int]float64)

	var walk func(id int, visited []step)
	walk = func(id int, visited []step) {
		children := t.Children(id)
		if len(children) == 0 {
			row := make(map[int]float64, len(visited))
			for _, s := range visited {
				row[s.node] = s.weight
			}
			vals[id] = row
			return
		}

		half := make([]step, 0, len(visited)+1)
		for _, s := range visited {
			half = append(half, step{node: s.node, weight: s.weight / 2})
		}
		left := append(half[:len(half):len(half)], step{node: id, weight: -1})
		right := append(half[:len(half):len(half)], step{node: id, weight: 1})
		walk(children[0], left)
		walk(children[1], right)
	}
	walk(t.Root(), nil)
	return vals
}

// A branchSum is the result of the weighted encoding
// of a clade.
type branchSum struct {
	// terms are the branch length terms
	// from each terminal of the clade
	// to the clade.
	terms map[int][]float64

	// sum is the sum of all branch lengths
	// in the clade,
	// including the length of the clade.
	sum float64

	// values are the encoding values
	// for each internal node of the clade
	// (the first key)
	// and each terminal of the node.
	values map[int]map[int]float64
}

// weighted returns the encoding values of each terminal
// using the branch lengths.
//
// The value of a terminal for a node is
//
//	P = (l1 + l2/2 + l3/3 + ... + ln/n) / S
//
// where each l is the length of a branch
// in the path from the terminal to the node,
// divided by the number of terminals that share the branch,
// and S is the sum of the branch lengths
// of the child of the node that includes the terminal.
// The value is negative for terminals of the left child,
// and positive for terminals of the right child.
func weighted(t *tree.Tree) map[int]map[int]float64 {
	bs := weightedClade(t, t.Root())

	vals := make(map[int]map[int]float64)
	for node, tips := range bs.values {
		for tip, v := range tips {
			row, ok := vals[tip]
			if !ok {
				row = make(map[int]float64)
				vals[tip] = row
			}
			row[node] = v
		}
	}
	return vals
}

func weightedClade(t *tree.Tree, id int) branchSum {
	// the root edge is ignored
	var length float64
	if id != t.Root() {
		length, _ = t.Length(id)
	}

	bs := branchSum{
		terms:  make(map[int][]float64),
		sum:    length,
		values: make(map[int]map[int]float64),
	}

	children := t.Children(id)
	if len(children) == 0 {
		bs.terms[id] = nil
		return bs
	}

	node := make(map[int]float64)
	for i, c := range children {
		sign := -1.0
		if i > 0 {
			sign = 1.0
		}

		cs := weightedClade(t, c)
		for n, v := range cs.values {
			bs.values[n] = v
		}
		bs.sum += cs.sum

		cl, _ := t.Length(c)
		add := cl / float64(len(cs.terms))
		for tip, terms := range cs.terms {
			terms = append(terms, add)
			if cs.sum > 0 {
				node[tip] = sign * floats.Sum(terms) / cs.sum
			}
			bs.terms[tip] = terms
		}
	}
	bs.values[id] = node
	return bs
}
