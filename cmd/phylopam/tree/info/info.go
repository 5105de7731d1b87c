// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package info implements a command to print
// the structural properties of the tree of a PhyloPAM project.
package info

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/phylopam/project"
)

var Command = &command.Command{
	Usage: "info <project-file>",
	Short: "print information about a tree",
	Long: `
Command info reads the tree of a PhyloPAM project and prints its structural
properties into the standard output: the number of terminals and internal
nodes, whether the tree is binary, whether the tree has polytomies or branch
lengths, and whether the tree is ultrametric.

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
	t, err := p.Tree()
	if err != nil {
		return err
	}

	idx, _ := t.MatrixIndices(t.Root())
	w := c.Stdout()
	fmt.Fprintf(w, "tree: %s\n", p.Path(project.Tree))
	fmt.Fprintf(w, "\tterminals: %d\n", len(t.Tips()))
	fmt.Fprintf(w, "\tinternal nodes: %d\n", len(t.InternalNodes()))
	fmt.Fprintf(w, "\tbinary: %v\n", t.IsBinary())
	fmt.Fprintf(w, "\tpolytomies: %v\n", t.HasPolytomies())
	fmt.Fprintf(w, "\tbranch lengths: %v\n", t.HasBranchLengths())
	fmt.Fprintf(w, "\tultrametric: %v\n", t.IsUltrametric())
	fmt.Fprintf(w, "\tmatrix indices: %d\n", len(idx))
	return nil
}
