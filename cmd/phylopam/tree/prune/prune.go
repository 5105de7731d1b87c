// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package prune implements a command to remove clades
// from the tree of a PhyloPAM project.
package prune

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/phylopam/project"
)

var Command = &command.Command{
	Usage: `prune [--labels <file>] [--only-tips] [--tips]
	<project-file> [<label>...]`,
	Short: "remove clades from a tree",
	Long: `
Command prune reads the tree of a PhyloPAM project and removes the clades
with the indicated names, including all of their descendants. The branch
lengths of the remaining clades are not modified, so this operation can leave
nodes with a single descendant.

The first argument of the command is the name of the project file. The
following arguments are the names of the clades to be removed. Additional
names can be read from a file using the flag --labels. In that file, each line
is a name, and lines starting with '#' are ignored. If the flag --only-tips is
defined, only terminals will be removed.

If the flag --tips is defined, the terminals without a matrix index will be
removed. In this case, if a node is left with a single descendant, the node
and the descendant are merged: the branch lengths are added, the node takes
the matrix index and squid of the descendant, and the name of the descendant
if the node does not have a name.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var labelsFile string
var onlyTips bool
var noIndex bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&labelsFile, "labels", "", "")
	c.Flags().BoolVar(&onlyTips, "only-tips", false, "")
	c.Flags().BoolVar(&noIndex, "tips", false, "")
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

	labels := args[1:]
	if labelsFile != "" {
		ls, err := readLabels(labelsFile)
		if err != nil {
			return err
		}
		labels = append(labels, ls...)
	}
	if len(labels) == 0 && !noIndex {
		return c.UsageError("expecting clades to be removed")
	}

	logger := slog.New(slog.NewTextHandler(c.Stderr(), nil))
	prev := len(t.Tips())
	if len(labels) > 0 {
		t.Prune(labels, onlyTips)
	}
	if noIndex {
		for _, l := range t.Labels() {
			if _, ok := t.MatrixIndex(l.ID); !ok {
				logger.Info("terminal removed", "terminal", l.Name, "id", l.ID)
			}
		}
		t.PruneTipsWithoutMatrixIndex()
	}
	if t.Root() < 0 {
		logger.Warn("all clades were removed")
	}

	if err := p.WriteTree(t); err != nil {
		return err
	}
	logger.Info("tree pruned", "terminals", len(t.Tips()), "removed", prev-len(t.Tips()))
	return nil
}

func readLabels(name string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var ls []string
	s := bufio.NewScanner(f)
	for s.Scan() {
		l := strings.TrimSpace(s.Text())
		if l == "" || strings.HasPrefix(l, "#") {
			continue
		}
		ls = append(ls, l)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return ls, nil
}
