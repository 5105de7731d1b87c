// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"slices"
	"strconv"

	"github.com/js-arias/phylopam/matrix"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// A Clade is a snapshot of the values of a clade.
type Clade struct {
	ID     int
	Parent int // -1 for the root
	Name   string

	// Optional values,
	// nil if undefined.
	Length      *float64
	MatrixIndex *int
	Squid       *string

	Children []int
	Path     []int
}

// Clade returns a clade by its path ID.
func (t *Tree) Clade(id int) (Clade, error) {
	path, ok := t.paths[id]
	if !ok {
		return Clade{}, &StructureError{ID: id, Err: ErrNotFound}
	}

	// the clade is found following the stored path
	c := t.nodes[path[0]]
	for _, p := range path[1:] {
		if !slices.Contains(c.children, p) {
			return Clade{}, &StructureError{ID: id, Err: ErrNotFound}
		}
		c = t.nodes[p]
	}

	cl := Clade{
		ID:       c.id,
		Parent:   c.parent,
		Name:     c.name,
		Children: slices.Clone(c.children),
		Path:     slices.Clone(path),
	}
	if c.hasLength {
		l := c.length
		cl.Length = &l
	}
	if c.hasIndex {
		i := c.index
		cl.MatrixIndex = &i
	}
	if c.hasSquid {
		s := c.squid
		cl.Squid = &s
	}
	return cl, nil
}

// A Label is the name of a terminal
// and its path ID.
type Label struct {
	Name string
	ID   int
}

// Labels returns the labels of the terminals
// in preorder,
// from left to right.
func (t *Tree) Labels() []Label {
	var ls []Label
	t.preorder(t.root, func(c *clade) {
		if len(c.children) > 0 {
			return
		}
		ls = append(ls, Label{Name: c.name, ID: c.id})
	})
	return ls
}

// BranchLengths returns the branch length of each clade.
// If the root has no length it is reported as 0.
// It returns an error if a non-root clade has no length.
func (t *Tree) BranchLengths() (map[int]float64, error) {
	bl := make(map[int]float64, len(t.nodes))
	for _, id := range t.Nodes() {
		c := t.nodes[id]
		if !c.hasLength && id != t.root {
			return nil, &StructureError{ID: id, Err: ErrNoLength}
		}
		bl[id] = c.length
	}
	return bl, nil
}

// HasBranchLengths returns true
// if every clade,
// other than the root,
// has a branch length.
func (t *Tree) HasBranchLengths() bool {
	if t.root < 0 {
		return false
	}
	for id, c := range t.nodes {
		if id == t.root {
			continue
		}
		if !c.hasLength {
			return false
		}
	}
	return true
}

// HasPolytomies returns true
// if any clade has more than two children.
func (t *Tree) HasPolytomies() bool {
	for _, c := range t.nodes {
		if len(c.children) > 2 {
			return true
		}
	}
	return false
}

// IsBinary returns true
// if every clade has either zero or two children.
func (t *Tree) IsBinary() bool {
	for _, c := range t.nodes {
		if n := len(c.children); n != 0 && n != 2 {
			return false
		}
	}
	return true
}

// IsUltrametric returns true
// if the sum of branch lengths from the root
// to each terminal is the same for all terminals,
// using a precision of three decimals.
// The length of the root is not used.
// A tree without branch lengths is not ultrametric.
func (t *Tree) IsUltrametric() bool {
	if !t.HasBranchLengths() {
		return false
	}

	first := true
	var depth float64
	for _, tip := range t.Tips() {
		path := t.paths[tip]
		ls := make([]float64, 0, len(path))
		for _, id := range path[1:] {
			ls = append(ls, t.nodes[id].length)
		}
		d := scalar.Round(floats.Sum(ls), 3)
		if first {
			depth = d
			first = false
			continue
		}
		if d != depth {
			return false
		}
	}
	return true
}

// MatrixIndices returns the matrix indices
// of all clades in a clade
// (including the clade itself),
// in preorder.
// Repeated indices are kept.
func (t *Tree) MatrixIndices(id int) ([]int, error) {
	if _, ok := t.nodes[id]; !ok {
		return nil, &StructureError{ID: id, Err: ErrNotFound}
	}

	var idx []int
	t.preorder(id, func(c *clade) {
		if c.hasIndex {
			idx = append(idx, c.index)
		}
	})
	return idx, nil
}

// DistanceMatrix returns the patristic distances
// between all clades with a matrix index.
// Rows and columns are ordered by matrix index,
// and labeled with the clade name,
// or the clade squid if useSquids is true.
// The tree must have branch lengths.
func (t *Tree) DistanceMatrix(useSquids bool) (*matrix.Matrix, error) {
	if t.root < 0 {
		return matrix.New(nil, nil), nil
	}
	if _, err := t.BranchLengths(); err != nil {
		return nil, err
	}

	var indexed []*clade
	t.preorder(t.root, func(c *clade) {
		if c.hasIndex {
			indexed = append(indexed, c)
		}
	})
	slices.SortStableFunc(indexed, func(a, b *clade) int {
		if a.index != b.index {
			return a.index - b.index
		}
		return a.id - b.id
	})

	pos := make(map[int]int, len(indexed))
	labels := make([]string, 0, len(indexed))
	for i, c := range indexed {
		pos[c.id] = i
		l := c.name
		if useSquids && c.hasSquid {
			l = c.squid
		}
		if l == "" {
			l = strconv.Itoa(c.id)
		}
		labels = append(labels, l)
	}

	m := matrix.New(labels, labels)
	set := func(a, b int, d float64) {
		i, j := pos[a], pos[b]
		m.Set(i, j, d)
		m.Set(j, i, d)
	}
	t.distances(t.root, set)
	return m, nil
}

// distances returns the distance
// from a clade node
// to each indexed clade it contains,
// and stores the distance of each pair of indexed clades
// found in the clade.
func (t *Tree) distances(id int, set func(a, b int, d float64)) map[int]float64 {
	c := t.nodes[id]
	to := make(map[int]float64)
	if c.hasIndex {
		to[id] = 0
	}

	for _, d := range c.children {
		child := t.distances(d, set)
		l := t.nodes[d].length
		for x, dx := range child {
			child[x] = dx + l
		}

		// pairs between this child
		// and the clades already visited
		for x, dx := range child {
			for y, dy := range to {
				set(x, y, dx+dy)
			}
		}
		for x, dx := range child {
			to[x] = dx
		}
	}
	return to
}
