// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package pam is a metapackage for commands
// that dealt with presence-absence matrices.
package pam

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phylopam/cmd/phylopam/pam/add"
	"github.com/js-arias/phylopam/cmd/phylopam/pam/extend"
)

var Command = &command.Command{
	Usage: "pam <command> [<argument>...]",
	Short: "commands for presence-absence matrices",
}

func init() {
	Command.Add(add.Command)
	Command.Add(extend.Command)
}
