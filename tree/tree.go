// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tree implements a mutable phylogenetic tree
// whose terminals can be linked to the columns
// of a presence-absence matrix.
//
// Clades are identified by a path ID,
// an integer unique in the tree.
// Each clade stores the path of IDs from the root,
// and the tree keeps the set of terminals.
// Both are rebuilt after each structural change.
package tree

import (
	"slices"

	"github.com/js-arias/phylopam/newick"
)

// A Tree is a phylogenetic tree.
type Tree struct {
	root  int // -1 if the tree is empty
	nodes map[int]*clade

	paths map[int][]int
	tips  map[int]bool

	// next ID to be assigned
	next int
}

type clade struct {
	id     int
	parent int // -1 for the root
	name   string

	length    float64
	hasLength bool

	index    int
	hasIndex bool

	squid    string
	hasSquid bool

	children []int
}

func newTree() *Tree {
	return &Tree{
		root:  -1,
		nodes: make(map[int]*clade),
		paths: make(map[int][]int),
		tips:  make(map[int]bool),
	}
}

// New creates a new tree
// from the root of a tree read from a Newick string.
func New(root *newick.Node) (*Tree, error) {
	t := newTree()
	if root == nil {
		return t, nil
	}

	if err := t.seed(root.ID); err != nil {
		return nil, err
	}
	var seedNodes func(n *newick.Node) error
	seedNodes = func(n *newick.Node) error {
		for _, c := range n.Children {
			if err := t.seed(c.ID); err != nil {
				return err
			}
			if err := seedNodes(c); err != nil {
				return err
			}
		}
		return nil
	}
	if err := seedNodes(root); err != nil {
		return nil, err
	}

	var add func(n *newick.Node, parent int) int
	add = func(n *newick.Node, parent int) int {
		c := &clade{
			id:        n.ID,
			parent:    parent,
			name:      n.Name,
			length:    n.Length,
			hasLength: n.HasLength,
		}
		t.nodes[c.id] = c
		for _, d := range n.Children {
			c.children = append(c.children, add(d, c.id))
		}
		return c.id
	}
	t.root = add(root, -1)
	t.cleanUp()
	return t, nil
}

// seed registers an existing ID
// during tree construction,
// and updates the next ID to be assigned.
// The registered IDs are kept in the paths map
// until the first clean up.
func (t *Tree) seed(id int) error {
	if _, dup := t.paths[id]; dup {
		return &StructureError{ID: id, Err: ErrDuplicateID}
	}
	t.paths[id] = nil
	if id >= t.next {
		t.next = id + 1
	}
	return nil
}

// newID returns a new unused ID.
func (t *Tree) newID() int {
	id := t.next
	t.next++
	return id
}

// cleanUp rebuilds the paths
// and the terminal set of the tree,
// and removes any clade not reachable from the root.
func (t *Tree) cleanUp() {
	t.paths = make(map[int][]int, len(t.nodes))
	t.tips = make(map[int]bool)

	if t.root >= 0 {
		t.setPath(t.root, nil)
	}

	for id := range t.nodes {
		if _, ok := t.paths[id]; !ok {
			delete(t.nodes, id)
		}
	}
	for id := range t.nodes {
		if id >= t.next {
			t.next = id + 1
		}
	}
}

func (t *Tree) setPath(id int, parent []int) {
	c := t.nodes[id]
	path := make([]int, len(parent), len(parent)+1)
	copy(path, parent)
	path = append(path, id)
	t.paths[id] = path

	if len(c.children) == 0 {
		t.tips[id] = true
		return
	}
	for _, d := range c.children {
		t.nodes[d].parent = id
		t.setPath(d, path)
	}
}

// Copy returns a deep copy of the tree.
func (t *Tree) Copy() *Tree {
	nt := newTree()
	nt.root = t.root
	nt.next = t.next
	for id, c := range t.nodes {
		nc := *c
		nc.children = slices.Clone(c.children)
		nt.nodes[id] = &nc
	}
	nt.cleanUp()
	return nt
}

// Root returns the ID of the root.
// It returns -1 if the tree is empty.
func (t *Tree) Root() int {
	return t.root
}

// Len returns the number of clades in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Nodes returns the IDs of all clades in the tree,
// in preorder.
func (t *Tree) Nodes() []int {
	ids := make([]int, 0, len(t.nodes))
	t.preorder(t.root, func(c *clade) {
		ids = append(ids, c.id)
	})
	return ids
}

// Tips returns the IDs of the terminals,
// sorted by ID.
func (t *Tree) Tips() []int {
	ids := make([]int, 0, len(t.tips))
	for id := range t.tips {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// InternalNodes returns the IDs of the clades
// with descendants,
// sorted by ID.
func (t *Tree) InternalNodes() []int {
	ids := make([]int, 0, len(t.nodes)-len(t.tips))
	for id := range t.nodes {
		if t.tips[id] {
			continue
		}
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// IsTip returns true if the clade is a terminal.
func (t *Tree) IsTip(id int) bool {
	return t.tips[id]
}

// Children returns the IDs of the children of a clade.
func (t *Tree) Children(id int) []int {
	c, ok := t.nodes[id]
	if !ok {
		return nil
	}
	return slices.Clone(c.children)
}

// Parent returns the ID of the parent of a clade.
// It returns -1 for the root
// or if the clade is not in the tree.
func (t *Tree) Parent(id int) int {
	c, ok := t.nodes[id]
	if !ok {
		return -1
	}
	return c.parent
}

// Path returns the IDs of the clades
// from the root to the indicated clade.
func (t *Tree) Path(id int) []int {
	return slices.Clone(t.paths[id])
}

// Name returns the name of a clade.
func (t *Tree) Name(id int) string {
	c, ok := t.nodes[id]
	if !ok {
		return ""
	}
	return c.name
}

// Length returns the branch length of a clade.
// The boolean is false if the clade has no length.
func (t *Tree) Length(id int) (float64, bool) {
	c, ok := t.nodes[id]
	if !ok {
		return 0, false
	}
	return c.length, c.hasLength
}

// MatrixIndex returns the matrix index of a clade.
// The boolean is false if the clade has no index.
func (t *Tree) MatrixIndex(id int) (int, bool) {
	c, ok := t.nodes[id]
	if !ok {
		return 0, false
	}
	return c.index, c.hasIndex
}

// Squid returns the species identifier of a clade.
// The boolean is false if the clade has no squid.
func (t *Tree) Squid(id int) (string, bool) {
	c, ok := t.nodes[id]
	if !ok {
		return "", false
	}
	return c.squid, c.hasSquid
}

func (t *Tree) preorder(id int, fn func(c *clade)) {
	c, ok := t.nodes[id]
	if !ok {
		return
	}
	fn(c)
	for _, d := range c.children {
		t.preorder(d, fn)
	}
}
