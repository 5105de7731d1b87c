// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package index implements a command to link
// the terminals of a tree
// to the columns of a presence-absence matrix.
package index

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/phylopam/project"
	"github.com/js-arias/phylopam/tree"
)

var Command = &command.Command{
	Usage: "index [--squids <file>] <project-file>",
	Short: "link tree terminals to matrix columns",
	Long: `
Command index reads the tree and the presence-absence matrix of a PhyloPAM
project, and sets the matrix index of each clade of the tree whose name is
equal to the header of a matrix column. Previous matrix indices are removed.

Names are compared in their canonical form: underscores are read as blanks,
consecutive blanks are collapsed, and the case is ignored except for the
first letter, so 'homo_sapiens' and 'Homo Sapiens' both match the column
'Homo sapiens'. This is the form used for taxon names in range files.

The argument of the command is the name of the project file.

If the flag --squids is defined, the indicated file will be used to assign
species identifiers (squids) to the clades, and the columns of the matrix will
be matched against the squids instead of the clade names. The squid file is a
tab-delimited file with the following fields:

	- name   the name of the clade
	- squid  the species identifier of the clade

As matrix indices are only stored in JSON or YAML tree files, the tree file of
the project must be a JSON or YAML file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var squidFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&squidFile, "squids", "", "")
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

	cols := pam.ColumnHeaders()
	idx := make(map[string]int, len(cols))
	for i, h := range cols {
		idx[h] = i
	}

	t.RemoveMatrixIndices()
	if squidFile != "" {
		squids, err := readSquids(squidFile)
		if err != nil {
			return err
		}
		t.AddSquids(squids)
		t.AddSquidMatrixIndices(idx)
	} else {
		t.AddCanonMatrixIndices(idx)
	}

	logger := slog.New(slog.NewTextHandler(c.Stderr(), nil))
	found := make(map[int]bool)
	for _, id := range t.Nodes() {
		if i, ok := t.MatrixIndex(id); ok {
			found[i] = true
		}
	}
	for i, h := range cols {
		if !found[i] {
			logger.Warn("matrix column without clade", "column", h, "index", i)
		}
	}
	for _, l := range t.Labels() {
		if _, ok := t.MatrixIndex(l.ID); !ok {
			logger.Warn("terminal without matrix index", "terminal", l.Name, "id", l.ID)
		}
	}

	if err := p.WriteTree(t); err != nil {
		return err
	}
	logger.Info("matrix indices added", "columns", len(cols), "linked", len(found))
	return nil
}

func readSquids(name string) (map[string]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tsv := csv.NewReader(f)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("on file %q: header: %v", name, err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		fields[strings.ToLower(h)] = i
	}
	for _, h := range []string{"name", "squid"} {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("on file %q: expecting field %q", name, h)
		}
	}

	squids := make(map[string]string)
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on file %q: on row %d: %v", name, ln, err)
		}

		nm := row[fields["name"]]
		if nm == "" {
			continue
		}
		squids[nm] = row[fields["squid"]]
	}
	return squids, nil
}
