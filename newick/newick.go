// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package newick implements reading and writing
// of phylogenetic trees in Newick
// (parenthetical)
// format.
//
// Only a single tree is read from an input.
// Comments in square brackets are recognized
// and discarded,
// and values in node labels are never interpreted
// as support values.
package newick

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A Node is a raw clade read from a Newick string.
type Node struct {
	// ID is the identifier of the node,
	// assigned in order of creation
	// starting with 0 at the root.
	ID int

	Name string

	// Length is the length of the branch
	// that connects the node with its parent.
	// It is only valid if HasLength is true.
	Length    float64
	HasLength bool

	Children []*Node
}

// IsTerm returns true if the node is a terminal.
func (n *Node) IsTerm() bool {
	return len(n.Children) == 0
}

// A ParseError is returned when a Newick string is malformed.
type ParseError struct {
	Line  int    // line of the offending token
	Pos   int    // byte offset of the offending token
	Token string // offending token, if any
	Msg   string
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("newick: line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("newick: line %d: token %q at offset %d: %s", e.Line, e.Token, e.Pos, e.Msg)
}

// Parse reads a tree in Newick format.
// It returns the root of the tree,
// and a map of node IDs to their parents
// (the root is not in the map).
//
// Parsing ends at the first semicolon,
// or at the end of the input.
func Parse(r io.Reader) (*Node, map[int]*Node, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}
	return ParseString(string(b))
}

// ParseString reads a tree in Newick format
// from a string.
func ParseString(text string) (*Node, map[int]*Node, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil, &ParseError{Line: 1, Msg: "empty input"}
	}

	p := &parser{
		parents: make(map[int]*Node),
	}
	root := p.newNode(nil)
	if err := p.parse(root, lex(text)); err != nil {
		return nil, nil, err
	}
	return root, p.parents, nil
}

type parser struct {
	nextID  int
	parents map[int]*Node
}

// newNode creates a new node as a child of the parent node.
func (p *parser) newNode(parent *Node) *Node {
	n := &Node{ID: p.nextID}
	p.nextID++
	if parent != nil {
		parent.Children = append(parent.Children, n)
		p.parents[n.ID] = parent
	}
	return n
}

func (p *parser) parse(root *Node, tokens []token) error {
	var open, closed int
	var last token

	current := root
	for _, tk := range tokens {
		last = tk
		switch tk.kind {
		case tokOpen:
			open++
			current = p.newNode(current)
		case tokComma:
			parent, ok := p.parents[current.ID]
			if !ok {
				return &ParseError{Line: tk.line, Pos: tk.pos, Token: tk.val, Msg: "comma outside of parentheses"}
			}
			current = p.newNode(parent)
		case tokClose:
			closed++
			parent, ok := p.parents[current.ID]
			if !ok {
				return &ParseError{Line: tk.line, Pos: tk.pos, Token: tk.val, Msg: "unmatched close parenthesis"}
			}
			current = parent
		case tokLength:
			v, err := strconv.ParseFloat(tk.val[1:], 64)
			if err != nil {
				return &ParseError{Line: tk.line, Pos: tk.pos, Token: tk.val, Msg: "invalid branch length"}
			}
			current.Length = v
			current.HasLength = true
		case tokLabel:
			current.Name = strings.ReplaceAll(tk.val, "_", " ")
		case tokQuoted:
			current.Name = strings.ReplaceAll(tk.val[1:len(tk.val)-1], `\'`, "'")
		case tokSemicolon:
			return checkParens(open, closed, tk)
		case tokComment, tokNewline:
		}
	}
	return checkParens(open, closed, last)
}

func checkParens(open, closed int, tk token) error {
	if open == closed {
		return nil
	}
	line := tk.line
	if line == 0 {
		line = 1
	}
	return &ParseError{
		Line: line,
		Pos:  tk.pos,
		Msg:  fmt.Sprintf("unbalanced parentheses: %d open, %d close", open, closed),
	}
}
