// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"fmt"
	"os"

	"github.com/js-arias/phylopam/matrix"
	"github.com/js-arias/phylopam/tree"
	"github.com/js-arias/ranges"
	"github.com/js-arias/timetree"
)

// Tree reads the phylogenetic tree
// as defined in a project.
// The format of the tree file
// is defined by its extension.
func (p *Project) Tree() (*tree.Tree, error) {
	name := p.Path(Tree)
	if name == "" {
		return nil, fmt.Errorf("tree not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := tree.Read(f, tree.FormatFromName(name))
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return t, nil
}

// WriteTree writes a tree
// into the tree file defined in a project.
func (p *Project) WriteTree(t *tree.Tree) (err error) {
	name := p.Path(Tree)
	if name == "" {
		return fmt.Errorf("tree not defined in project %q", p.name)
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := t.Write(f, tree.FormatFromName(name)); err != nil {
		return fmt.Errorf("on file %q: %v", name, err)
	}
	return nil
}

// PAM reads the presence-absence matrix
// as defined in a project.
func (p *Project) PAM() (*matrix.Matrix, error) {
	return p.readMatrix(PAM, "presence-absence matrix")
}

// PMatrix reads the phylogenetic encoding
// as defined in a project.
func (p *Project) PMatrix() (*matrix.Matrix, error) {
	return p.readMatrix(PMatrix, "phylogenetic encoding")
}

func (p *Project) readMatrix(set Dataset, desc string) (*matrix.Matrix, error) {
	name := p.Path(set)
	if name == "" {
		return nil, fmt.Errorf("%s not defined in project %q", desc, p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := matrix.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return m, nil
}

// WriteMatrix writes a matrix into a file.
func WriteMatrix(name string, m *matrix.Matrix) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := m.TSV(f); err != nil {
		return fmt.Errorf("on file %q: %v", name, err)
	}
	return nil
}

// Ranges reads a range collection file
// as defined in a project.
func (p *Project) Ranges() (*ranges.Collection, error) {
	name := p.Path(Ranges)
	if name == "" {
		return nil, fmt.Errorf("ranges not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	coll, err := ranges.ReadTSV(f, nil)
	if err != nil {
		return nil, fmt.Errorf("when reading %q: %v", name, err)
	}
	return coll, nil
}

// TimeTrees reads a collection of time calibrated trees
// as defined in a project.
func (p *Project) TimeTrees() (*timetree.Collection, error) {
	name := p.Path(TimeTrees)
	if name == "" {
		return nil, fmt.Errorf("time trees not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := timetree.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return c, nil
}
