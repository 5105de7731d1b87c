// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"math/rand/v2"
	"strings"
	"unicode"
	"unicode/utf8"
)

// AddMatrixIndices sets the matrix index of each clade
// whose name is in the indicated map.
// Clades without a name are ignored.
func (t *Tree) AddMatrixIndices(idx map[string]int) {
	t.preorder(t.root, func(c *clade) {
		if c.name == "" {
			return
		}
		i, ok := idx[c.name]
		if !ok {
			return
		}
		c.index = i
		c.hasIndex = true
	})
}

// CanonName returns the canonical form of a taxon name:
// underscores are blanks,
// blanks are collapsed,
// and the name is lowercased
// with its first letter in uppercase
// (for example "homo_sapiens" becomes "Homo sapiens").
func CanonName(name string) string {
	name = strings.Join(strings.Fields(strings.ReplaceAll(name, "_", " ")), " ")
	if name == "" {
		return ""
	}
	name = strings.ToLower(name)
	r, n := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[n:]
}

// AddCanonMatrixIndices sets the matrix index of each clade
// whose canonical name
// is equal to the canonical form of a key of the map.
// Clades without a name are ignored.
func (t *Tree) AddCanonMatrixIndices(idx map[string]int) {
	canon := make(map[string]int, len(idx))
	for n, i := range idx {
		canon[CanonName(n)] = i
	}
	t.preorder(t.root, func(c *clade) {
		if c.name == "" {
			return
		}
		i, ok := canon[CanonName(c.name)]
		if !ok {
			return
		}
		c.index = i
		c.hasIndex = true
	})
}

// AddSquidMatrixIndices sets the matrix index of each clade
// whose squid is in the indicated map.
func (t *Tree) AddSquidMatrixIndices(idx map[string]int) {
	t.preorder(t.root, func(c *clade) {
		if !c.hasSquid {
			return
		}
		i, ok := idx[c.squid]
		if !ok {
			return
		}
		c.index = i
		c.hasIndex = true
	})
}

// AddSquids sets the squid of each clade
// whose name is in the indicated map
// (a map of names to squids).
func (t *Tree) AddSquids(squids map[string]string) {
	t.preorder(t.root, func(c *clade) {
		if c.name == "" {
			return
		}
		s, ok := squids[c.name]
		if !ok {
			return
		}
		c.squid = s
		c.hasSquid = true
	})
}

// RemoveMatrixIndices removes the matrix index
// of all clades.
func (t *Tree) RemoveMatrixIndices() {
	for _, c := range t.nodes {
		c.index = 0
		c.hasIndex = false
	}
}

// SetLength sets the branch length of a clade.
func (t *Tree) SetLength(id int, l float64) error {
	c, ok := t.nodes[id]
	if !ok {
		return &StructureError{ID: id, Err: ErrNotFound}
	}
	c.length = l
	c.hasLength = true
	return nil
}

// SetMatrixIndex sets the matrix index of a clade.
func (t *Tree) SetMatrixIndex(id, idx int) error {
	c, ok := t.nodes[id]
	if !ok {
		return &StructureError{ID: id, Err: ErrNotFound}
	}
	c.index = idx
	c.hasIndex = true
	return nil
}

// SetSquid sets the squid of a clade.
func (t *Tree) SetSquid(id int, squid string) error {
	c, ok := t.nodes[id]
	if !ok {
		return &StructureError{ID: id, Err: ErrNotFound}
	}
	c.squid = squid
	c.hasSquid = true
	return nil
}

// PruneTipsWithoutMatrixIndex removes all terminals
// without a matrix index.
//
// An internal clade with a single surviving child
// is merged with that child:
// the branch lengths are added,
// the matrix index and squid are taken from the child,
// the name is taken from the child
// only if the clade has no name,
// and the children are replaced by the children of the child.
// If no terminal has a matrix index,
// the tree will be empty.
func (t *Tree) PruneTipsWithoutMatrixIndex() {
	if t.root < 0 {
		return
	}
	if t.prunable(t.root) {
		t.root = -1
		t.nodes = make(map[int]*clade)
	}
	t.cleanUp()
}

// prunable removes the prunable descendants of a clade
// and returns true if the clade itself
// should be removed.
func (t *Tree) prunable(id int) bool {
	c := t.nodes[id]
	if len(c.children) == 0 {
		return !c.hasIndex
	}

	var keep []int
	for _, d := range c.children {
		if t.prunable(d) {
			continue
		}
		keep = append(keep, d)
	}

	switch len(keep) {
	case 0:
		return true
	case 1:
		t.merge(c, t.nodes[keep[0]])
	default:
		c.children = keep
	}
	return false
}

// merge merges a surviving child into a clade.
func (t *Tree) merge(c, child *clade) {
	switch {
	case c.hasLength && child.hasLength:
		c.length += child.length
	case child.hasLength:
		c.length = child.length
		c.hasLength = true
	}

	c.index, c.hasIndex = child.index, child.hasIndex
	c.squid, c.hasSquid = child.squid, child.hasSquid
	if c.name == "" {
		c.name = child.name
	}
	c.children = child.children
	for _, d := range c.children {
		t.nodes[d].parent = c.id
	}
	delete(t.nodes, child.id)
}

// Prune removes the clades
// (with all of its descendants)
// with a name in the indicated list.
// If onlyTips is true,
// only terminals will be removed.
// Branch lengths are not modified,
// so a clade can be left with a single child.
func (t *Tree) Prune(labels []string, onlyTips bool) {
	if t.root < 0 {
		return
	}
	rm := make(map[string]bool, len(labels))
	for _, l := range labels {
		if l == "" {
			continue
		}
		rm[l] = true
	}
	remove := func(c *clade) bool {
		if !rm[c.name] {
			return false
		}
		if onlyTips && len(c.children) > 0 {
			return false
		}
		return true
	}

	if remove(t.nodes[t.root]) {
		t.root = -1
		t.nodes = make(map[int]*clade)
		t.cleanUp()
		return
	}

	var prune func(c *clade)
	prune = func(c *clade) {
		keep := c.children[:0]
		for _, d := range c.children {
			if remove(t.nodes[d]) {
				continue
			}
			keep = append(keep, d)
		}
		c.children = keep
		for _, d := range c.children {
			prune(t.nodes[d])
		}
	}
	prune(t.nodes[t.root])
	t.cleanUp()
}

// ResolvePolytomies resolves all polytomies of the tree,
// by taking two random children of a polytomy
// and making them the children of a new clade,
// until the polytomy is binary.
// The new clades do not have a name,
// and, if the tree has branch lengths,
// the new clades will have a length of 0.
//
// The source must be seeded by the caller
// to make the result reproducible.
// If rng is nil,
// an unseeded source is used,
// and the result is not reproducible.
func (t *Tree) ResolvePolytomies(rng *rand.Rand) {
	if t.root < 0 {
		return
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	withLength := t.HasBranchLengths()

	var resolve func(c *clade)
	resolve = func(c *clade) {
		for len(c.children) > 2 {
			i := rng.IntN(len(c.children))
			a := c.children[i]
			c.children = append(c.children[:i], c.children[i+1:]...)
			j := rng.IntN(len(c.children))
			b := c.children[j]
			c.children = append(c.children[:j], c.children[j+1:]...)

			n := &clade{
				id:        t.newID(),
				parent:    c.id,
				hasLength: withLength,
				children:  []int{a, b},
			}
			t.nodes[n.id] = n
			t.nodes[a].parent = n.id
			t.nodes[b].parent = n.id
			c.children = append(c.children, n.id)
		}
		for _, d := range c.children {
			resolve(t.nodes[d])
		}
	}
	resolve(t.nodes[t.root])
	t.cleanUp()
}
