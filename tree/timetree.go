// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import "github.com/js-arias/timetree"

// millionYears is the number of years in a million years.
const millionYears = 1_000_000

// FromTimeTree creates a new tree from a time calibrated tree.
// Each node keeps its ID,
// its name is the node taxon,
// and its branch length is the difference
// between the age of its parent and its own age,
// in million years.
// The root has a length of 0.
func FromTimeTree(tt *timetree.Tree) *Tree {
	t := newTree()

	var add func(id, parent int) int
	add = func(id, parent int) int {
		c := &clade{
			id:        id,
			parent:    parent,
			name:      tt.Taxon(id),
			hasLength: true,
		}
		if parent >= 0 {
			c.length = float64(tt.Age(parent)-tt.Age(id)) / millionYears
		}
		t.nodes[id] = c
		for _, d := range tt.Children(id) {
			c.children = append(c.children, add(d, id))
		}
		return id
	}
	t.root = add(tt.Root(), -1)
	t.cleanUp()
	return t
}
