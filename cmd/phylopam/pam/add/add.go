// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add
// a presence-absence matrix to a PhyloPAM project.
package add

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phylopam/matrix"
	"github.com/js-arias/phylopam/project"
	"github.com/js-arias/ranges"
)

var Command = &command.Command{
	Usage: `add [-f|--file <matrix-file>] [--ranges]
	<project-file> [<input-file>]`,
	Short: "add a presence-absence matrix to a PhyloPAM project",
	Long: `
Command add reads a presence-absence matrix from an input file and adds the
matrix to a PhyloPAM project. If the project already has a presence-absence
matrix, it will be replaced.

The first argument of the command is the name of the project file. If no
project file exists, a new project will be created.

The second argument is the file that contains the matrix. If no file is given,
or the file is '-', the matrix will be read from the standard input. By
default, the input is expected to be a tab-delimited matrix file (see
'phylopam help matrix-files').

If the flag --ranges is defined, the input will be read as a collection of
geographic ranges (a tab-delimited file of PhyGeo ranges), and the matrix will
be built using the pixels as sites and the taxa as species. A site is set as
present for a taxon if the pixel is part of the taxon range. If the flag is
defined, and no input file is given, the ranges file of the project will be
used; otherwise the input file will be added as the ranges file of the
project.

By default the matrix will be stored in the matrix file currently defined for
the project. If the project does not have a matrix file, a new one will be
created with the name 'pam.tab'. A different file name can be defined using
the flag --file, or -f.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var pamFile string
var fromRanges bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&pamFile, "file", "", "")
	c.Flags().StringVar(&pamFile, "f", "", "")
	c.Flags().BoolVar(&fromRanges, "ranges", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	p, err := openProject(args[0])
	if err != nil {
		return err
	}

	in := ""
	if len(args) > 1 && args[1] != "-" {
		in = args[1]
	}

	var m *matrix.Matrix
	if fromRanges {
		m, err = readRanges(c.Stdin(), p, in)
	} else {
		m, err = readMatrix(c.Stdin(), in)
	}
	if err != nil {
		return err
	}

	if pamFile == "" {
		pamFile = p.Path(project.PAM)
		if pamFile == "" {
			pamFile = "pam.tab"
		}
	}
	if err := project.WriteMatrix(pamFile, m); err != nil {
		return err
	}
	p.Add(project.PAM, pamFile)
	if err := p.Write(); err != nil {
		return err
	}

	r, cols := m.Dims()
	logger := slog.New(slog.NewTextHandler(c.Stderr(), nil))
	logger.Info("matrix added", "file", pamFile, "sites", r, "species", cols)
	return nil
}

func openProject(name string) (*project.Project, error) {
	p, err := project.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		p := project.New()
		p.SetName(name)
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open project %q: %v", name, err)
	}
	return p, nil
}

func readMatrix(r io.Reader, name string) (*matrix.Matrix, error) {
	if name != "" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		name = "stdin"
	}

	m, err := matrix.ReadTSV(r)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return m, nil
}

func readRanges(r io.Reader, p *project.Project, name string) (*matrix.Matrix, error) {
	if name == "" && p.Path(project.Ranges) != "" {
		coll, err := p.Ranges()
		if err != nil {
			return nil, err
		}
		return matrix.FromRanges(coll), nil
	}

	if name != "" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
		p.Add(project.Ranges, name)
	} else {
		name = "stdin"
	}

	coll, err := ranges.ReadTSV(r, nil)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return matrix.FromRanges(coll), nil
}
