// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package matrix

import (
	"slices"
	"strconv"

	"github.com/js-arias/ranges"
)

// FromRanges returns a presence-absence matrix
// from a collection of geographic ranges.
// Rows are the pixels with at least one taxon,
// in ascending order,
// and columns are the taxa,
// in alphabetical order.
// Column headers are the canonical taxon names
// used by the range collection
// (for example "Homo sapiens").
// A cell is 1 if the taxon is present at the pixel.
func FromRanges(coll *ranges.Collection) *Matrix {
	taxa := coll.Taxa()
	slices.Sort(taxa)

	seen := make(map[int]bool)
	for _, tax := range taxa {
		for px := range coll.Range(tax) {
			seen[px] = true
		}
	}
	pixels := make([]int, 0, len(seen))
	for px := range seen {
		pixels = append(pixels, px)
	}
	slices.Sort(pixels)

	rows := make([]string, 0, len(pixels))
	pos := make(map[int]int, len(pixels))
	for i, px := range pixels {
		rows = append(rows, strconv.Itoa(px))
		pos[px] = i
	}

	m := New(rows, taxa)
	for j, tax := range taxa {
		for px := range coll.Range(tax) {
			m.Set(pos[px], j, 1)
		}
	}
	return m
}
