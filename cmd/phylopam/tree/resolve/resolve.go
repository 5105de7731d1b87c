// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package resolve implements a command to resolve
// the polytomies of the tree of a PhyloPAM project.
package resolve

import (
	"log/slog"
	"math/rand/v2"

	"github.com/js-arias/command"
	"github.com/js-arias/phylopam/project"
)

var Command = &command.Command{
	Usage: "resolve [--seed <value>] <project-file>",
	Short: "resolve tree polytomies",
	Long: `
Command resolve reads the tree of a PhyloPAM project and resolves all of its
polytomies at random. At each polytomy, two descendants are selected and
joined into a new node, until the polytomy is binary. The new nodes do not
have a name, and if the tree has branch lengths, the new nodes will have a
length of 0.

The argument of the command is the name of the project file.

By default, a random seed will be used, and the result will not be
reproducible unless the same seed is given again; the seed used is always
reported in the log. To use a given seed (for example, to reproduce a previous
analysis) use the flag --seed.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var seed int64

func setFlags(c *command.Command) {
	c.Flags().Int64Var(&seed, "seed", -1, "")
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

	logger := slog.New(slog.NewTextHandler(c.Stderr(), nil))
	if !t.HasPolytomies() {
		logger.Info("tree without polytomies")
		return nil
	}

	s := uint64(seed)
	if seed < 0 {
		s = rand.Uint64() >> 1
	}
	prev := t.Len()
	t.ResolvePolytomies(rand.New(rand.NewPCG(s, s)))

	if err := p.WriteTree(t); err != nil {
		return err
	}
	logger.Info("polytomies resolved", "seed", s, "new_nodes", t.Len()-prev)
	return nil
}
