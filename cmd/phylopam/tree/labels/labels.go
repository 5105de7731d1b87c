// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package labels implements a command to print
// the terminals of the tree of a PhyloPAM project.
package labels

import (
	"fmt"
	"strconv"

	"github.com/js-arias/command"
	"github.com/js-arias/phylopam/project"
)

var Command = &command.Command{
	Usage: "labels <project-file>",
	Short: "print a list of tree terminals",
	Long: `
Command labels reads the tree of a PhyloPAM project and prints the terminals
of the tree into the standard output, from left to right.

For each terminal it prints its path ID, its name, its matrix index, and its
squid, separated by tabs. If the terminal does not have a matrix index or a
squid, a dash is printed.

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

	for _, l := range t.Labels() {
		idx := "-"
		if i, ok := t.MatrixIndex(l.ID); ok {
			idx = strconv.Itoa(i)
		}
		squid := "-"
		if s, ok := t.Squid(l.ID); ok {
			squid = s
		}
		fmt.Fprintf(c.Stdout(), "%d\t%s\t%s\t%s\n", l.ID, l.Name, idx, squid)
	}
	return nil
}
