// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tree is a metapackage for commands
// that dealt with phylogenetic trees.
package tree

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phylopam/cmd/phylopam/tree/add"
	"github.com/js-arias/phylopam/cmd/phylopam/tree/dist"
	"github.com/js-arias/phylopam/cmd/phylopam/tree/index"
	"github.com/js-arias/phylopam/cmd/phylopam/tree/info"
	"github.com/js-arias/phylopam/cmd/phylopam/tree/labels"
	"github.com/js-arias/phylopam/cmd/phylopam/tree/prune"
	"github.com/js-arias/phylopam/cmd/phylopam/tree/resolve"
)

var Command = &command.Command{
	Usage: "tree <command> [<argument>...]",
	Short: "commands for phylogenetic trees",
}

func init() {
	Command.Add(add.Command)
	Command.Add(dist.Command)
	Command.Add(index.Command)
	Command.Add(info.Command)
	Command.Add(labels.Command)
	Command.Add(prune.Command)
	Command.Add(resolve.Command)
}
