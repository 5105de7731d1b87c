// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package dist implements a command to print
// the patristic distances between the terminals
// of the tree of a PhyloPAM project.
package dist

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phylopam/project"
)

var Command = &command.Command{
	Usage: "dist [--squids] [-o|--output <file>] <project-file>",
	Short: "print a matrix of patristic distances",
	Long: `
Command dist reads the tree of a PhyloPAM project and prints the patristic
distances (the sum of branch lengths in the path between two clades) between
all clades with a matrix index. The tree must have branch lengths.

The argument of the command is the name of the project file.

The distances are printed as a tab-delimited matrix, in which the rows and
columns are ordered by the matrix index of the clades. By default the rows and
columns are labeled with the clade names; use the flag --squids to label them
with the species identifier of the clades.

By default the matrix is printed in the standard output. Use the flag
--output, or -o, to define an output file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var useSquids bool
var output string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&useSquids, "squids", false, "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
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

	m, err := t.DistanceMatrix(useSquids)
	if err != nil {
		return err
	}

	if output != "" {
		return project.WriteMatrix(output, m)
	}
	return m.TSV(c.Stdout())
}
