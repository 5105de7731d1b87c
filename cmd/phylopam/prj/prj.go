// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package prj implements a command to print
// the basic information of a project.
package prj

import (
	"fmt"
	"io"
	"math"

	"github.com/js-arias/command"
	"github.com/js-arias/phylopam/project"
)

var Command = &command.Command{
	Usage: "prj <project-file>",
	Short: "print information about a project",
	Long: `
Command prj reads a PhyloPAM project and prints the information of the
different project elements into the standard output.

The argument of the command is the name of the project file.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	w := c.Stdout()
	if p.Path(project.Tree) != "" {
		if err := printTree(w, p); err != nil {
			return err
		}
	}
	if p.Path(project.PAM) != "" {
		if err := printMatrix(w, p, project.PAM); err != nil {
			return err
		}
	}
	if p.Path(project.PMatrix) != "" {
		if err := printMatrix(w, p, project.PMatrix); err != nil {
			return err
		}
	}
	if p.Path(project.Ranges) != "" {
		if err := printRanges(w, p); err != nil {
			return err
		}
	}
	if p.Path(project.TimeTrees) != "" {
		if err := printTimeTrees(w, p); err != nil {
			return err
		}
	}
	return nil
}

func printTree(w io.Writer, p *project.Project) error {
	t, err := p.Tree()
	if err != nil {
		return err
	}

	var indexed int
	for _, id := range t.Tips() {
		if _, ok := t.MatrixIndex(id); ok {
			indexed++
		}
	}

	fmt.Fprintf(w, "Tree:\n")
	fmt.Fprintf(w, "\tfile: %s\n", p.Path(project.Tree))
	fmt.Fprintf(w, "\tterminals: %d\n", len(t.Tips()))
	fmt.Fprintf(w, "\tinternal nodes: %d\n", len(t.InternalNodes()))
	fmt.Fprintf(w, "\tbinary: %v\n", t.IsBinary())
	fmt.Fprintf(w, "\tbranch lengths: %v\n", t.HasBranchLengths())
	fmt.Fprintf(w, "\tterminals with matrix index: %d\n", indexed)
	fmt.Fprintf(w, "\n")
	return nil
}

func printMatrix(w io.Writer, p *project.Project, set project.Dataset) error {
	var title, rows, cols string
	switch set {
	case project.PAM:
		m, err := p.PAM()
		if err != nil {
			return err
		}
		r, c := m.Dims()
		title = "Presence-absence matrix"
		rows = fmt.Sprintf("sites: %d", r)
		cols = fmt.Sprintf("species: %d", c)
	case project.PMatrix:
		m, err := p.PMatrix()
		if err != nil {
			return err
		}
		r, c := m.Dims()
		title = "Phylogenetic encoding"
		rows = fmt.Sprintf("terminals: %d", r)
		cols = fmt.Sprintf("nodes: %d", c)
	}

	fmt.Fprintf(w, "%s:\n", title)
	fmt.Fprintf(w, "\tfile: %s\n", p.Path(set))
	fmt.Fprintf(w, "\t%s\n", rows)
	fmt.Fprintf(w, "\t%s\n", cols)
	fmt.Fprintf(w, "\n")
	return nil
}

func printRanges(w io.Writer, p *project.Project) error {
	coll, err := p.Ranges()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Ranges:\n")
	fmt.Fprintf(w, "\tfile: %s\n", p.Path(project.Ranges))
	fmt.Fprintf(w, "\tdefined taxa: %d\n", len(coll.Taxa()))
	fmt.Fprintf(w, "\n")
	return nil
}

func printTimeTrees(w io.Writer, p *project.Project) error {
	c, err := p.TimeTrees()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Time trees:\n")
	fmt.Fprintf(w, "\tfile: %s\n", p.Path(project.TimeTrees))

	terms := make(map[string]bool)
	min := math.MaxFloat64
	var max float64
	for _, tn := range c.Names() {
		t := c.Tree(tn)
		if t == nil {
			continue
		}
		ra := float64(t.Age(t.Root())) / 1_000_000
		if ra > max {
			max = ra
		}
		for _, tax := range t.Terms() {
			terms[tax] = true
			id, ok := t.TaxNode(tax)
			if !ok {
				continue
			}
			ta := float64(t.Age(id)) / 1_000_000
			if ta < min {
				min = ta
			}
		}
	}
	if len(terms) == 0 {
		min = 0
	}
	fmt.Fprintf(w, "\ttrees: %d\n", len(c.Names()))
	fmt.Fprintf(w, "\tterminals: %d\n", len(terms))
	fmt.Fprintf(w, "\tage range: %.3f-%.3f Ma\n", min, max)
	fmt.Fprintf(w, "\n")
	return nil
}
