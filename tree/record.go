// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/js-arias/phylopam/newick"
	"gopkg.in/yaml.v3"
)

// A Record is a clade in the nested record format
// used to store trees as JSON or YAML documents.
type Record struct {
	PathID       *int      `json:"path_id,omitempty" yaml:"path_id,omitempty"`
	Name         string    `json:"name" yaml:"name"`
	BranchLength *float64  `json:"branch_length,omitempty" yaml:"branch_length,omitempty"`
	MatrixIndex  *int      `json:"matrix_index,omitempty" yaml:"matrix_index,omitempty"`
	Squid        *string   `json:"squid,omitempty" yaml:"squid,omitempty"`
	Children     []*Record `json:"children" yaml:"children"`
}

// FromRecord creates a new tree from a nested record.
// Clades without a path ID
// receive a new ID
// larger than any ID already defined in the record.
func FromRecord(r *Record) (*Tree, error) {
	t := newTree()
	if r == nil {
		return t, nil
	}

	var seedIDs func(r *Record) error
	seedIDs = func(r *Record) error {
		if r.PathID != nil {
			if *r.PathID < 0 {
				return &StructureError{ID: *r.PathID, Err: fmt.Errorf("invalid path ID")}
			}
			if err := t.seed(*r.PathID); err != nil {
				return err
			}
		}
		for _, c := range r.Children {
			if c == nil {
				continue
			}
			if err := seedIDs(c); err != nil {
				return err
			}
		}
		return nil
	}
	if err := seedIDs(r); err != nil {
		return nil, err
	}

	var add func(r *Record, parent int) int
	add = func(r *Record, parent int) int {
		c := &clade{
			parent: parent,
			name:   r.Name,
		}
		if r.PathID != nil {
			c.id = *r.PathID
		} else {
			c.id = t.newID()
		}
		if r.BranchLength != nil {
			c.length = *r.BranchLength
			c.hasLength = true
		}
		if r.MatrixIndex != nil {
			c.index = *r.MatrixIndex
			c.hasIndex = true
		}
		if r.Squid != nil {
			c.squid = *r.Squid
			c.hasSquid = true
		}
		t.nodes[c.id] = c
		for _, d := range r.Children {
			if d == nil {
				continue
			}
			c.children = append(c.children, add(d, c.id))
		}
		return c.id
	}
	t.root = add(r, -1)
	t.cleanUp()
	return t, nil
}

// Record returns the tree as a nested record.
// It returns nil if the tree is empty.
func (t *Tree) Record() *Record {
	if t.root < 0 {
		return nil
	}
	return t.record(t.root)
}

func (t *Tree) record(id int) *Record {
	c := t.nodes[id]
	pid := c.id
	r := &Record{
		PathID:   &pid,
		Name:     c.name,
		Children: make([]*Record, 0, len(c.children)),
	}
	if c.hasLength {
		l := c.length
		r.BranchLength = &l
	}
	if c.hasIndex {
		i := c.index
		r.MatrixIndex = &i
	}
	if c.hasSquid {
		s := c.squid
		r.Squid = &s
	}
	for _, d := range c.children {
		r.Children = append(r.Children, t.record(d))
	}
	return r
}

// Node returns the tree as a raw Newick node.
// It returns nil if the tree is empty.
func (t *Tree) Node() *newick.Node {
	if t.root < 0 {
		return nil
	}
	return t.node(t.root)
}

func (t *Tree) node(id int) *newick.Node {
	c := t.nodes[id]
	n := &newick.Node{
		ID:        c.id,
		Name:      c.name,
		Length:    c.length,
		HasLength: c.hasLength,
	}
	for _, d := range c.children {
		n.Children = append(n.Children, t.node(d))
	}
	return n
}

// Format is a tree file format.
type Format string

// Valid tree formats.
const (
	Newick Format = "newick"
	JSON   Format = "json"
	YAML   Format = "yaml"
)

// FormatFromName returns the format of a tree file
// based on its extension.
// Files that are neither JSON nor YAML
// are assumed to be Newick files.
func FormatFromName(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return JSON
	case ".yaml", ".yml":
		return YAML
	}
	return Newick
}

// Read reads a tree in the indicated format.
func Read(r io.Reader, f Format) (*Tree, error) {
	switch f {
	case Newick:
		return ReadNewick(r)
	case JSON:
		return ReadJSON(r)
	case YAML:
		return ReadYAML(r)
	}
	return nil, fmt.Errorf("unknown tree format %q", f)
}

// Write writes a tree in the indicated format.
func (t *Tree) Write(w io.Writer, f Format) error {
	switch f {
	case Newick:
		return t.Newick(w)
	case JSON:
		return t.JSON(w)
	case YAML:
		return t.YAML(w)
	}
	return fmt.Errorf("unknown tree format %q", f)
}

// ReadNewick reads a tree in Newick format.
func ReadNewick(r io.Reader) (*Tree, error) {
	root, _, err := newick.Parse(r)
	if err != nil {
		return nil, err
	}
	return New(root)
}

// Newick writes a tree in Newick format.
func (t *Tree) Newick(w io.Writer) error {
	if t.root < 0 {
		_, err := io.WriteString(w, ";\n")
		return err
	}
	return newick.Write(w, t.Node())
}

// ReadJSON reads a tree from a JSON nested record.
func ReadJSON(r io.Reader) (*Tree, error) {
	var rec *Record
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("while decoding JSON: %v", err)
	}
	return FromRecord(rec)
}

// JSON writes a tree as an indented JSON nested record.
func (t *Tree) JSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(t.Record()); err != nil {
		return fmt.Errorf("while encoding JSON: %v", err)
	}
	return nil
}

// ReadYAML reads a tree from a YAML nested record.
func ReadYAML(r io.Reader) (*Tree, error) {
	var rec *Record
	if err := yaml.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("while decoding YAML: %v", err)
	}
	return FromRecord(rec)
}

// YAML writes a tree as a YAML nested record.
func (t *Tree) YAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t.Record()); err != nil {
		return fmt.Errorf("while encoding YAML: %v", err)
	}
	return enc.Close()
}
