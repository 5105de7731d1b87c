// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package encode implements a command to build
// the phylogenetic encoding of a PhyloPAM project.
package encode

import (
	"errors"
	"log/slog"

	"github.com/js-arias/command"
	"github.com/js-arias/phylopam/encode"
	"github.com/js-arias/phylopam/project"
)

var Command = &command.Command{
	Usage: "encode [--check] [-o|--output <file>] <project-file>",
	Short: "build a phylogenetic encoding matrix",
	Long: `
Command encode reads the tree and the presence-absence matrix of a PhyloPAM
project and builds the phylogenetic encoding (P-matrix) of the tree, as
defined by Leibold et al. (2010). See 'phylopam help encoding' for the details
of the encoding.

The argument of the command is the name of the project file.

The rows of the P-matrix are the species of the presence-absence matrix, in
the same order as the matrix columns, and the columns are the internal nodes
of the tree. To be encoded, the tree must be binary, and ultrametric if it has
branch lengths, and each column of the presence-absence matrix must be linked
to a single terminal of the tree (see 'phylopam tree index').

If the flag --check is defined, the tree and the matrix will be validated,
but no encoding will be produced.

By default, the encoding will be stored in the P-matrix file currently defined
for the project. If the project does not have a P-matrix file, a new one will
be created with the name 'pmatrix.tab'. A different file name can be defined
using the flag --output, or -o.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var output string
var checkOnly bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&checkOnly, "check", false, "")
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
	pam, err := p.PAM()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(c.Stderr(), nil))
	if checkOnly {
		if err := encode.Validate(t, pam); err != nil {
			if errors.Is(err, encode.ErrIndexMismatch) {
				logger.Warn("use 'phylopam tree index' or 'phylopam pam extend' to link the matrix columns")
			}
			return err
		}
		logger.Info("tree and matrix can be encoded")
		return nil
	}

	pm, err := encode.Encode(t, pam)
	if err != nil {
		return err
	}

	if output == "" {
		output = p.Path(project.PMatrix)
		if output == "" {
			output = "pmatrix.tab"
		}
	}
	if err := project.WriteMatrix(output, pm); err != nil {
		return err
	}
	p.Add(project.PMatrix, output)
	if err := p.Write(); err != nil {
		return err
	}

	r, cols := pm.Dims()
	logger.Info("tree encoded",
		"file", output,
		"weighted", t.HasBranchLengths(),
		"terminals", r,
		"nodes", cols,
	)
	return nil
}
