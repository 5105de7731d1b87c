// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package extend implements a command to add columns
// to the presence-absence matrix of a PhyloPAM project
// for the terminals of the tree without a matrix index.
package extend

import (
	"fmt"
	"log/slog"

	"github.com/js-arias/command"
	"github.com/js-arias/phylopam/encode"
	"github.com/js-arias/phylopam/project"
	"github.com/js-arias/phylopam/tree"
)

var Command = &command.Command{
	Usage: "extend [-o|--output <file>] <project-file>",
	Short: "add columns for terminals without matrix index",
	Long: `
Command extend reads the tree and the presence-absence matrix of a PhyloPAM
project, and adds a new column to the matrix for each terminal of the tree
without a matrix index. A site of the new column is present if the site is
present in any terminal of the sister clade of the terminal. The tree must be
binary.

The new columns are assigned to the terminals in preorder, and the header of
each new column is the squid of the terminal, or its name if the terminal does
not have a squid. The matrix indices of the tree are updated, so the tree file
must be a JSON or YAML file.

The argument of the command is the name of the project file.

By default, the extended matrix replaces the matrix file of the project. Use
the flag --output, or -o, to define a different matrix file; this file will be
set as the presence-absence matrix of the project.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var output string

func setFlags(c *command.Command) {
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
	if tree.FormatFromName(p.Path(project.Tree)) == tree.Newick {
		return fmt.Errorf("tree file %q: matrix indices require a JSON or YAML file", p.Path(project.Tree))
	}
	t, err := p.Tree()
	if err != nil {
		return err
	}
	pam, err := p.PAM()
	if err != nil {
		return err
	}

	_, prev := pam.Dims()
	ext, err := encode.ExtendPAM(t, pam)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(c.Stderr(), nil))
	_, cols := ext.Dims()
	if cols == prev {
		logger.Info("all terminals with matrix index")
		return nil
	}
	hs := ext.ColumnHeaders()
	for i := prev; i < cols; i++ {
		logger.Info("column added", "column", hs[i], "index", i)
	}

	if output == "" {
		output = p.Path(project.PAM)
	}
	if err := project.WriteMatrix(output, ext); err != nil {
		return err
	}
	if err := p.WriteTree(t); err != nil {
		return err
	}
	if output != p.Path(project.PAM) {
		p.Add(project.PAM, output)
		if err := p.Write(); err != nil {
			return err
		}
	}
	logger.Info("matrix extended", "file", output, "species", cols)
	return nil
}
