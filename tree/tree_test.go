// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree_test

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/js-arias/phylopam/tree"
	"github.com/js-arias/timetree"
	"gonum.org/v1/gonum/floats/scalar"
)

// baseTree is the tree
// 3(2(1(0(A,B),C),D),4(E,F))
// with ultrametric branch lengths.
const baseTree = `{
	"path_id": 3,
	"name": "",
	"children": [
		{
			"path_id": 2,
			"name": "",
			"branch_length": 0.4,
			"children": [
				{
					"path_id": 1,
					"name": "",
					"branch_length": 0.15,
					"children": [
						{
							"path_id": 0,
							"name": "",
							"branch_length": 0.65,
							"children": [
								{"path_id": 5, "name": "A", "branch_length": 0.2, "children": []},
								{"path_id": 6, "name": "B", "branch_length": 0.2, "children": []}
							]
						},
						{"path_id": 7, "name": "C", "branch_length": 0.85, "children": []}
					]
				},
				{"path_id": 8, "name": "D", "branch_length": 1.0, "children": []}
			]
		},
		{
			"path_id": 4,
			"name": "",
			"branch_length": 0.9,
			"children": [
				{"path_id": 9, "name": "E", "branch_length": 0.5, "children": []},
				{"path_id": 10, "name": "F", "branch_length": 0.5}
			]
		}
	]
}`

func readBase(t testing.TB) *tree.Tree {
	t.Helper()

	tr, err := tree.ReadJSON(strings.NewReader(baseTree))
	if err != nil {
		t.Fatalf("unable to read tree: %v", err)
	}
	return tr
}

func TestReadJSON(t *testing.T) {
	tr := readBase(t)

	if r := tr.Root(); r != 3 {
		t.Errorf("root: got %d, want %d", r, 3)
	}
	if n := tr.Len(); n != 11 {
		t.Errorf("nodes: got %d, want %d", n, 11)
	}
	if tips := tr.Tips(); !reflect.DeepEqual(tips, []int{5, 6, 7, 8, 9, 10}) {
		t.Errorf("tips: got %v, want %v", tips, []int{5, 6, 7, 8, 9, 10})
	}
	if in := tr.InternalNodes(); !reflect.DeepEqual(in, []int{0, 1, 2, 3, 4}) {
		t.Errorf("internal nodes: got %v, want %v", in, []int{0, 1, 2, 3, 4})
	}
	if p := tr.Path(6); !reflect.DeepEqual(p, []int{3, 2, 1, 0, 6}) {
		t.Errorf("path: got %v, want %v", p, []int{3, 2, 1, 0, 6})
	}
	if p := tr.Parent(9); p != 4 {
		t.Errorf("parent: got %d, want %d", p, 4)
	}
	if p := tr.Parent(3); p != -1 {
		t.Errorf("root parent: got %d, want %d", p, -1)
	}

	var names []string
	for _, l := range tr.Labels() {
		names = append(names, l.Name)
	}
	if want := []string{"A", "B", "C", "D", "E", "F"}; !reflect.DeepEqual(names, want) {
		t.Errorf("labels: got %v, want %v", names, want)
	}

	if !tr.IsBinary() {
		t.Errorf("binary: got false, want true")
	}
	if tr.HasPolytomies() {
		t.Errorf("polytomies: got true, want false")
	}
	if !tr.HasBranchLengths() {
		t.Errorf("branch lengths: got false, want true")
	}
	if !tr.IsUltrametric() {
		t.Errorf("ultrametric: got false, want true")
	}
}

func TestReadNewick(t *testing.T) {
	tr, err := tree.ReadNewick(strings.NewReader("((A:1,B:1)x:1,C:2);"))
	if err != nil {
		t.Fatalf("unable to read tree: %v", err)
	}

	want := map[int]string{
		0: "",
		1: "x",
		2: "A",
		3: "B",
		4: "C",
	}
	for id, n := range want {
		if got := tr.Name(id); got != n {
			t.Errorf("node %d: got name %q, want %q", id, got, n)
		}
	}
	if l, ok := tr.Length(4); !ok || l != 2 {
		t.Errorf("node 4: got length %.6f, want %.6f", l, 2.0)
	}
	if _, ok := tr.Length(0); ok {
		t.Errorf("root: unexpected length")
	}
	if !tr.HasBranchLengths() {
		t.Errorf("branch lengths: got false, want true")
	}
	if !tr.IsUltrametric() {
		t.Errorf("ultrametric: got false, want true")
	}
}

func TestCleanUp(t *testing.T) {
	tr := readBase(t)
	cp := tr.Copy()
	cp2 := cp.Copy()

	for _, id := range tr.Nodes() {
		if p, q := cp.Path(id), cp2.Path(id); !reflect.DeepEqual(p, q) {
			t.Errorf("node %d: got path %v, want %v", id, q, p)
		}
	}
	if !reflect.DeepEqual(cp.Tips(), cp2.Tips()) {
		t.Errorf("tips: got %v, want %v", cp2.Tips(), cp.Tips())
	}
	if !reflect.DeepEqual(tr.Record(), cp2.Record()) {
		t.Errorf("copy: records are different")
	}

	// a copy is independent
	if err := cp.SetLength(5, 10); err != nil {
		t.Fatalf("unable to set length: %v", err)
	}
	if l, _ := tr.Length(5); l != 0.2 {
		t.Errorf("copy: original length changed to %.6f", l)
	}
}

func TestFromRecord(t *testing.T) {
	id := 5
	rec := &tree.Record{
		PathID: &id,
		Children: []*tree.Record{
			{Name: "A"},
			{Name: "B"},
		},
	}
	tr, err := tree.FromRecord(rec)
	if err != nil {
		t.Fatalf("unable to build tree: %v", err)
	}
	if r := tr.Root(); r != 5 {
		t.Errorf("root: got %d, want %d", r, 5)
	}
	if c := tr.Children(5); !reflect.DeepEqual(c, []int{6, 7}) {
		t.Errorf("children: got %v, want %v", c, []int{6, 7})
	}
	if n := tr.Name(7); n != "B" {
		t.Errorf("node 7: got name %q, want %q", n, "B")
	}

	// duplicated IDs
	dup := 1
	rec = &tree.Record{
		PathID: &dup,
		Children: []*tree.Record{
			{PathID: &dup, Name: "A"},
			{Name: "B"},
		},
	}
	_, err = tree.FromRecord(rec)
	if !errors.Is(err, tree.ErrDuplicateID) {
		t.Errorf("duplicated ID: got error %v, want %v", err, tree.ErrDuplicateID)
	}

	// empty tree
	tr, err = tree.ReadJSON(strings.NewReader("null"))
	if err != nil {
		t.Fatalf("unable to read empty tree: %v", err)
	}
	if tr.Root() != -1 || tr.Len() != 0 {
		t.Errorf("empty tree: got root %d, %d nodes", tr.Root(), tr.Len())
	}
}

func TestClade(t *testing.T) {
	tr := readBase(t)
	tr.AddMatrixIndices(map[string]int{"D": 3})
	tr.AddSquids(map[string]string{"D": "sq-d"})

	c, err := tr.Clade(8)
	if err != nil {
		t.Fatalf("unable to get clade: %v", err)
	}
	if c.Name != "D" {
		t.Errorf("clade: got name %q, want %q", c.Name, "D")
	}
	if c.Length == nil || *c.Length != 1.0 {
		t.Errorf("clade: got length %v, want %.6f", c.Length, 1.0)
	}
	if c.MatrixIndex == nil || *c.MatrixIndex != 3 {
		t.Errorf("clade: got matrix index %v, want %d", c.MatrixIndex, 3)
	}
	if c.Squid == nil || *c.Squid != "sq-d" {
		t.Errorf("clade: got squid %v, want %q", c.Squid, "sq-d")
	}
	if !reflect.DeepEqual(c.Path, []int{3, 2, 8}) {
		t.Errorf("clade: got path %v, want %v", c.Path, []int{3, 2, 8})
	}

	c, err = tr.Clade(0)
	if err != nil {
		t.Fatalf("unable to get clade: %v", err)
	}
	if c.MatrixIndex != nil || c.Squid != nil {
		t.Errorf("clade 0: unexpected matrix index or squid")
	}

	_, err = tr.Clade(100)
	var se *tree.StructureError
	if !errors.As(err, &se) {
		t.Fatalf("not found: got error %v, want a StructureError", err)
	}
	if se.ID != 100 {
		t.Errorf("not found: got ID %d, want %d", se.ID, 100)
	}
	if !errors.Is(err, tree.ErrNotFound) {
		t.Errorf("not found: got error %v, want %v", err, tree.ErrNotFound)
	}
}

func TestBranchLengths(t *testing.T) {
	tr := readBase(t)
	bl, err := tr.BranchLengths()
	if err != nil {
		t.Fatalf("unable to get branch lengths: %v", err)
	}
	if len(bl) != tr.Len() {
		t.Errorf("branch lengths: got %d, want %d", len(bl), tr.Len())
	}
	if bl[3] != 0 {
		t.Errorf("root: got length %.6f, want %.6f", bl[3], 0.0)
	}
	if bl[4] != 0.9 {
		t.Errorf("node 4: got length %.6f, want %.6f", bl[4], 0.9)
	}

	nl, err := tree.ReadNewick(strings.NewReader("((A,B),C);"))
	if err != nil {
		t.Fatalf("unable to read tree: %v", err)
	}
	if nl.HasBranchLengths() {
		t.Errorf("branch lengths: got true, want false")
	}
	if _, err := nl.BranchLengths(); !errors.Is(err, tree.ErrNoLength) {
		t.Errorf("branch lengths: got error %v, want %v", err, tree.ErrNoLength)
	}
	if nl.IsUltrametric() {
		t.Errorf("ultrametric: got true, want false")
	}

	if err := tr.SetLength(100, 1); !errors.Is(err, tree.ErrNotFound) {
		t.Errorf("set length: got error %v, want %v", err, tree.ErrNotFound)
	}
}

func TestIsUltrametric(t *testing.T) {
	tests := map[string]struct {
		newick string
		want   bool
	}{
		"zero lengths": {
			newick: "((A:0,B:0):0,(C:0,D:0):0);",
			want:   true,
		},
		"different siblings": {
			newick: "((A:0.3,B:0.1):0.2,(C:0.2,D:0.2):0.3);",
			want:   false,
		},
		"rounded": {
			newick: "((A:0.1,B:0.1):0.2,C:0.3001);",
			want:   true,
		},
		"root length": {
			newick: "((A:1,B:1):1,C:2):5;",
			want:   true,
		},
	}

	for name, test := range tests {
		tr, err := tree.ReadNewick(strings.NewReader(test.newick))
		if err != nil {
			t.Fatalf("%s: unable to read tree: %v", name, err)
		}
		if got := tr.IsUltrametric(); got != test.want {
			t.Errorf("%s: got %v, want %v", name, got, test.want)
		}
	}
}

func TestCanonName(t *testing.T) {
	tests := map[string]string{
		"homo_sapiens":       "Homo sapiens",
		"Homo Sapiens":       "Homo sapiens",
		"  HOMO   sapiens  ": "Homo sapiens",
		"sp-a":               "Sp-a",
		"ñandú":              "Ñandú",
		"":                   "",
	}
	for in, want := range tests {
		if got := tree.CanonName(in); got != want {
			t.Errorf("canon %q: got %q, want %q", in, got, want)
		}
	}
}

func TestAddCanonMatrixIndices(t *testing.T) {
	tr, err := tree.ReadNewick(strings.NewReader("((homo_sapiens,'Pan Troglodytes'),Gorilla_gorilla);"))
	if err != nil {
		t.Fatalf("unable to read tree: %v", err)
	}
	tr.AddCanonMatrixIndices(map[string]int{
		"Homo sapiens":    0,
		"Pan troglodytes": 1,
		"gorilla gorilla": 2,
	})

	got := make(map[string]int)
	for _, l := range tr.Labels() {
		i, ok := tr.MatrixIndex(l.ID)
		if !ok {
			t.Errorf("terminal %q: without matrix index", l.Name)
			continue
		}
		got[l.Name] = i
	}
	want := map[string]int{
		"homo sapiens":    0,
		"Pan Troglodytes": 1,
		"Gorilla gorilla": 2,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("indices: got %v, want %v", got, want)
	}

	// exact matching does not link the names
	tr.RemoveMatrixIndices()
	tr.AddMatrixIndices(map[string]int{"Homo sapiens": 0})
	idx, _ := tr.MatrixIndices(tr.Root())
	if len(idx) != 0 {
		t.Errorf("exact names: got indices %v", idx)
	}
}

func TestMatrixIndices(t *testing.T) {
	tr := readBase(t)
	tr.AddMatrixIndices(map[string]int{
		"A": 0,
		"B": 1,
		"C": 2,
		"D": 3,
		"E": 4,
		"F": 5,
		"G": 6,
	})

	idx, err := tr.MatrixIndices(tr.Root())
	if err != nil {
		t.Fatalf("unable to get indices: %v", err)
	}
	if want := []int{0, 1, 2, 3, 4, 5}; !reflect.DeepEqual(idx, want) {
		t.Errorf("root indices: got %v, want %v", idx, want)
	}

	idx, err = tr.MatrixIndices(1)
	if err != nil {
		t.Fatalf("unable to get indices: %v", err)
	}
	if want := []int{0, 1, 2}; !reflect.DeepEqual(idx, want) {
		t.Errorf("clade 1 indices: got %v, want %v", idx, want)
	}

	if _, err := tr.MatrixIndices(100); !errors.Is(err, tree.ErrNotFound) {
		t.Errorf("not found: got error %v, want %v", err, tree.ErrNotFound)
	}

	tr.RemoveMatrixIndices()
	idx, _ = tr.MatrixIndices(tr.Root())
	if len(idx) != 0 {
		t.Errorf("removed indices: got %v", idx)
	}

	// by squid
	tr.AddSquids(map[string]string{"A": "sq-a", "F": "sq-f"})
	tr.AddSquidMatrixIndices(map[string]int{"sq-a": 1, "sq-f": 0})
	idx, _ = tr.MatrixIndices(tr.Root())
	if want := []int{1, 0}; !reflect.DeepEqual(idx, want) {
		t.Errorf("squid indices: got %v, want %v", idx, want)
	}
}

func TestDistanceMatrix(t *testing.T) {
	tr := readBase(t)
	tr.AddMatrixIndices(map[string]int{
		"A": 0,
		"B": 1,
		"C": 2,
		"D": 3,
		"E": 4,
		"F": 5,
	})
	tr.AddSquids(map[string]string{"A": "sq-a"})

	m, err := tr.DistanceMatrix(false)
	if err != nil {
		t.Fatalf("unable to build distance matrix: %v", err)
	}
	if r, c := m.Dims(); r != 6 || c != 6 {
		t.Fatalf("dims: got %d x %d, want 6 x 6", r, c)
	}
	if h := m.RowHeaders(); !reflect.DeepEqual(h, []string{"A", "B", "C", "D", "E", "F"}) {
		t.Errorf("headers: got %v", h)
	}

	want := map[[2]int]float64{
		{0, 1}: 0.4,
		{0, 2}: 1.7,
		{2, 3}: 2.0,
		{0, 4}: 2.8,
		{4, 5}: 1.0,
		{3, 5}: 2.8,
	}
	for p, w := range want {
		if got := m.At(p[0], p[1]); !scalar.EqualWithinAbs(got, w, 1e-9) {
			t.Errorf("distance %v: got %.6f, want %.6f", p, got, w)
		}
	}
	for i := 0; i < 6; i++ {
		if d := m.At(i, i); d != 0 {
			t.Errorf("distance [%d, %d]: got %.6f, want 0", i, i, d)
		}
		for j := 0; j < 6; j++ {
			if m.At(i, j) != m.At(j, i) {
				t.Errorf("asymmetric distance [%d, %d]: %.6f, %.6f", i, j, m.At(i, j), m.At(j, i))
			}
		}
	}

	sm, err := tr.DistanceMatrix(true)
	if err != nil {
		t.Fatalf("unable to build distance matrix: %v", err)
	}
	if h := sm.ColumnHeaders(); h[0] != "sq-a" || h[1] != "B" {
		t.Errorf("squid headers: got %v", h)
	}

	nl, _ := tree.ReadNewick(strings.NewReader("(A,B);"))
	if _, err := nl.DistanceMatrix(false); !errors.Is(err, tree.ErrNoLength) {
		t.Errorf("without lengths: got error %v, want %v", err, tree.ErrNoLength)
	}
}

func TestPruneTipsWithoutMatrixIndex(t *testing.T) {
	tr := readBase(t)
	tr.AddMatrixIndices(map[string]int{
		"A": 0,
		"C": 1,
		"E": 2,
		"F": 3,
	})
	tr.PruneTipsWithoutMatrixIndex()

	for _, id := range tr.InternalNodes() {
		if n := len(tr.Children(id)); n != 2 {
			t.Errorf("node %d: got %d children, want 2", id, n)
		}
	}
	if tips := tr.Tips(); !reflect.DeepEqual(tips, []int{0, 7, 9, 10}) {
		t.Errorf("tips: got %v, want %v", tips, []int{0, 7, 9, 10})
	}
	for _, id := range []int{1, 5, 6, 8} {
		if _, err := tr.Clade(id); !errors.Is(err, tree.ErrNotFound) {
			t.Errorf("node %d: got error %v, want %v", id, err, tree.ErrNotFound)
		}
	}

	c, err := tr.Clade(0)
	if err != nil {
		t.Fatalf("unable to get clade: %v", err)
	}
	if c.Name != "A" {
		t.Errorf("merged clade: got name %q, want %q", c.Name, "A")
	}
	if c.Length == nil || !scalar.EqualWithinAbs(*c.Length, 0.85, 1e-9) {
		t.Errorf("merged clade: got length %v, want %.6f", c.Length, 0.85)
	}
	if c.MatrixIndex == nil || *c.MatrixIndex != 0 {
		t.Errorf("merged clade: got index %v, want %d", c.MatrixIndex, 0)
	}
	if l, _ := tr.Length(2); !scalar.EqualWithinAbs(l, 0.55, 1e-9) {
		t.Errorf("node 2: got length %.6f, want %.6f", l, 0.55)
	}
	if !reflect.DeepEqual(tr.Children(2), []int{0, 7}) {
		t.Errorf("node 2: got children %v, want %v", tr.Children(2), []int{0, 7})
	}
	if !tr.IsUltrametric() {
		t.Errorf("ultrametric: got false, want true")
	}

	// without indices
	tr.RemoveMatrixIndices()
	tr.PruneTipsWithoutMatrixIndex()
	if tr.Root() != -1 || tr.Len() != 0 {
		t.Errorf("empty tree: got root %d, %d nodes", tr.Root(), tr.Len())
	}
}

func TestPrunePolytomy(t *testing.T) {
	tr, err := tree.ReadNewick(strings.NewReader("((A:1,B:1,C:1,D:1):1,E:2);"))
	if err != nil {
		t.Fatalf("unable to read tree: %v", err)
	}

	tr.AddMatrixIndices(map[string]int{"A": 0, "C": 1, "E": 2})
	tr.PruneTipsWithoutMatrixIndex()
	if c := tr.Children(1); len(c) != 2 {
		t.Errorf("polytomy: got children %v, want 2 children", c)
	}

	tr.RemoveMatrixIndices()
	tr.AddMatrixIndices(map[string]int{"A": 0, "E": 2})
	tr.PruneTipsWithoutMatrixIndex()
	if !tr.IsTip(1) || tr.Name(1) != "A" {
		t.Errorf("merged polytomy: got clade 1 %q, tip %v", tr.Name(1), tr.IsTip(1))
	}
	if l, _ := tr.Length(1); l != 2 {
		t.Errorf("merged polytomy: got length %.6f, want %.6f", l, 2.0)
	}
}

const labeledTree = "(((((4:0.2,5:0.2)3:0.65,6:0.85)2:0.15,7:1.0)1:0.4,(9:0.5,10:0.5)8:0.9)0:0.0);"

func TestPrune(t *testing.T) {
	tr, err := tree.ReadNewick(strings.NewReader(labeledTree))
	if err != nil {
		t.Fatalf("unable to read tree: %v", err)
	}
	tr.Prune([]string{"7", "8", ""}, false)

	var names []string
	for _, id := range tr.Nodes() {
		names = append(names, tr.Name(id))
	}
	for _, n := range []string{"7", "8", "9", "10"} {
		if slices.Contains(names, n) {
			t.Errorf("prune: clade %q not removed", n)
		}
	}
	for _, n := range []string{"", "0", "1", "2", "3", "4", "5", "6"} {
		if !slices.Contains(names, n) {
			t.Errorf("prune: clade %q removed", n)
		}
	}

	tr, _ = tree.ReadNewick(strings.NewReader(labeledTree))
	n := tr.Len()
	tr.Prune([]string{"2", "5"}, true)
	names = names[:0]
	for _, id := range tr.Nodes() {
		names = append(names, tr.Name(id))
	}
	if slices.Contains(names, "5") {
		t.Errorf("prune tips: tip %q not removed", "5")
	}
	if !slices.Contains(names, "2") {
		t.Errorf("prune tips: clade %q removed", "2")
	}
	if tr.Len() != n-1 {
		t.Errorf("prune tips: got %d nodes, want %d", tr.Len(), n-1)
	}
}

func TestResolvePolytomies(t *testing.T) {
	tests := map[string]string{
		"star":      "(A,B,C,D,E);",
		"lengths":   "(A:1,B:1,(C:0.5,D:0.5,E:0.5,F:0.5):0.5,G:1);",
		"binary":    "((A,B),C);",
		"two stars": "((A,B,C),(D,E,F,G));",
	}

	for name, nw := range tests {
		for seed := uint64(1); seed <= 5; seed++ {
			tr, err := tree.ReadNewick(strings.NewReader(nw))
			if err != nil {
				t.Fatalf("%s: unable to read tree: %v", name, err)
			}
			lengths := tr.HasBranchLengths()
			want := tipNames(tr)

			tr.ResolvePolytomies(rand.New(rand.NewPCG(seed, seed)))
			if !tr.IsBinary() {
				t.Errorf("%s [seed %d]: tree is not binary", name, seed)
			}
			if tr.HasPolytomies() {
				t.Errorf("%s [seed %d]: tree has polytomies", name, seed)
			}
			if got := tipNames(tr); !reflect.DeepEqual(got, want) {
				t.Errorf("%s [seed %d]: got tips %v, want %v", name, seed, got, want)
			}
			if tr.HasBranchLengths() != lengths {
				t.Errorf("%s [seed %d]: branch lengths: got %v, want %v", name, seed, tr.HasBranchLengths(), lengths)
			}
			if lengths && !tr.IsUltrametric() {
				t.Errorf("%s [seed %d]: resolved tree is not ultrametric", name, seed)
			}
		}
	}

	// same seed, same tree
	a, _ := tree.ReadNewick(strings.NewReader(tests["star"]))
	b := a.Copy()
	a.ResolvePolytomies(rand.New(rand.NewPCG(10, 11)))
	b.ResolvePolytomies(rand.New(rand.NewPCG(10, 11)))
	if !reflect.DeepEqual(a.Record(), b.Record()) {
		t.Errorf("resolve: same seed produces different trees")
	}
}

func TestResolvePolytomiesUnseeded(t *testing.T) {
	tr, err := tree.ReadNewick(strings.NewReader("(A,B,C,D,E);"))
	if err != nil {
		t.Fatalf("unable to read tree: %v", err)
	}
	want := tipNames(tr)

	tr.ResolvePolytomies(nil)
	if !tr.IsBinary() {
		t.Errorf("unseeded: tree is not binary")
	}
	if got := tipNames(tr); !reflect.DeepEqual(got, want) {
		t.Errorf("unseeded: got tips %v, want %v", got, want)
	}
	if got := len(tr.InternalNodes()); got != 4 {
		t.Errorf("unseeded: got %d internal nodes, want %d", got, 4)
	}
}

func tipNames(tr *tree.Tree) []string {
	var names []string
	for _, l := range tr.Labels() {
		names = append(names, l.Name)
	}
	slices.Sort(names)
	return names
}

func TestWrite(t *testing.T) {
	tr := readBase(t)
	tr.AddMatrixIndices(map[string]int{"A": 0, "F": 1})
	tr.AddSquids(map[string]string{"A": "sq-a"})

	for _, f := range []tree.Format{tree.JSON, tree.YAML} {
		var w bytes.Buffer
		if err := tr.Write(&w, f); err != nil {
			t.Fatalf("%s: unable to write tree: %v", f, err)
		}
		t.Logf("%s:\n%s", f, w.String())

		nt, err := tree.Read(strings.NewReader(w.String()), f)
		if err != nil {
			t.Fatalf("%s: unable to read tree: %v", f, err)
		}
		if !reflect.DeepEqual(nt.Record(), tr.Record()) {
			t.Errorf("%s: trees are different", f)
		}
	}

	var w bytes.Buffer
	if err := tr.Newick(&w); err != nil {
		t.Fatalf("newick: unable to write tree: %v", err)
	}
	nt, err := tree.ReadNewick(strings.NewReader(w.String()))
	if err != nil {
		t.Fatalf("newick: unable to read tree: %v", err)
	}
	if !reflect.DeepEqual(tipNames(nt), tipNames(tr)) {
		t.Errorf("newick: got tips %v, want %v", tipNames(nt), tipNames(tr))
	}
	if !nt.IsUltrametric() {
		t.Errorf("newick: tree is not ultrametric")
	}

	if f := tree.FormatFromName("data/tree.YML"); f != tree.YAML {
		t.Errorf("format: got %q, want %q", f, tree.YAML)
	}
	if f := tree.FormatFromName("tree.nwk"); f != tree.Newick {
		t.Errorf("format: got %q, want %q", f, tree.Newick)
	}
}

const timeTreeTSV = `# time tree
tree	node	parent	age	taxon
dummy	0	-1	10000000	
dummy	1	0	5000000	
dummy	2	1	0	A
dummy	3	1	0	B
dummy	4	0	0	C
`

func TestFromTimeTree(t *testing.T) {
	c, err := timetree.ReadTSV(strings.NewReader(timeTreeTSV))
	if err != nil {
		t.Fatalf("unable to read time tree: %v", err)
	}
	tt := c.Tree("dummy")
	if tt == nil {
		t.Fatalf("tree %q not found", "dummy")
	}

	tr := tree.FromTimeTree(tt)
	if tr.Root() != tt.Root() {
		t.Errorf("root: got %d, want %d", tr.Root(), tt.Root())
	}
	if n := tr.Len(); n != 5 {
		t.Errorf("nodes: got %d, want %d", n, 5)
	}
	if got := tipNames(tr); !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Errorf("tips: got %v", got)
	}
	for _, l := range tr.Labels() {
		want := 5.0
		if l.Name == "C" {
			want = 10
		}
		if got, _ := tr.Length(l.ID); !scalar.EqualWithinAbs(got, want, 1e-9) {
			t.Errorf("tip %q: got length %.6f, want %.6f", l.Name, got, want)
		}
	}
	if !tr.IsUltrametric() {
		t.Errorf("ultrametric: got false, want true")
	}
}
