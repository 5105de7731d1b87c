// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add a tree
// to a PhyloPAM project.
package add

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phylopam/project"
	"github.com/js-arias/phylopam/tree"
)

var Command = &command.Command{
	Usage: `add [-f|--file <tree-file>] [--format <format>]
	[--timetree <name>]
	<project-file> [<input-file>]`,
	Short: "add a phylogenetic tree to a PhyloPAM project",
	Long: `
Command add reads a tree from an input file and adds the tree to a PhyloPAM
project. If the project already has a tree, it will be replaced.

The first argument of the command is the name of the project file. If no
project file exists, a new project will be created.

The second argument is the file that contains the tree. If no file is given,
or the file is '-', the tree will be read from the standard input.

By default, the format of the input file is defined by its extension ('.json'
for JSON files, '.yaml' or '.yml' for YAML files, and any other extension for
Newick files), or Newick if the tree is read from the standard input. Use the
flag --format to define the format explicitly. Valid values are 'newick',
'json', and 'yaml'.

The flag --timetree imports a tree from a collection of time calibrated trees
(a tab-delimited file of PhyGeo trees), using the indicated tree name. If an
input file is given, it will be added as the time trees file of the project;
otherwise the time trees file already defined in the project will be used.
The branch lengths of the imported tree will be in million years.

By default the tree will be stored in the tree file currently defined for the
project. If the project does not have a tree file, a new one will be created
with the name 'tree.json'. A different tree file name can be defined using the
flag --file, or -f. The format of the output file is defined by its
extension.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeFile string
var format string
var timeTree string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeFile, "file", "", "")
	c.Flags().StringVar(&treeFile, "f", "", "")
	c.Flags().StringVar(&format, "format", "", "")
	c.Flags().StringVar(&timeTree, "timetree", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	pFile := args[0]
	p, err := openProject(pFile)
	if err != nil {
		return err
	}

	in := ""
	if len(args) > 1 && args[1] != "-" {
		in = args[1]
	}

	var t *tree.Tree
	if timeTree != "" {
		if in != "" {
			p.Add(project.TimeTrees, in)
		}
		t, err = readTimeTree(p)
	} else {
		f := tree.Format(format)
		if format == "" {
			f = tree.FormatFromName(in)
		}
		t, err = readTree(c.Stdin(), in, f)
	}
	if err != nil {
		return err
	}

	if treeFile == "" {
		treeFile = p.Path(project.Tree)
		if treeFile == "" {
			treeFile = "tree.json"
		}
	}
	p.Add(project.Tree, treeFile)
	if err := p.WriteTree(t); err != nil {
		return err
	}
	if err := p.Write(); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(c.Stderr(), nil))
	logger.Info("tree added",
		"file", treeFile,
		"clades", t.Len(),
		"terminals", len(t.Tips()),
	)
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

func readTree(r io.Reader, name string, f tree.Format) (*tree.Tree, error) {
	if name != "" {
		fl, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer fl.Close()
		r = fl
	} else {
		name = "stdin"
	}

	t, err := tree.Read(r, f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return t, nil
}

func readTimeTree(p *project.Project) (*tree.Tree, error) {
	tc, err := p.TimeTrees()
	if err != nil {
		return nil, err
	}
	tt := tc.Tree(timeTree)
	if tt == nil {
		return nil, fmt.Errorf("tree %q not found in %q", timeTree, p.Path(project.TimeTrees))
	}
	return tree.FromTimeTree(tt), nil
}
