// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// PhyloPAM is a tool for the phylogenetic encoding
// of presence-absence matrices.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phylopam/cmd/phylopam/encode"
	"github.com/js-arias/phylopam/cmd/phylopam/pam"
	"github.com/js-arias/phylopam/cmd/phylopam/prj"
	"github.com/js-arias/phylopam/cmd/phylopam/tree"
)

var app = &command.Command{
	Usage: "phylopam <command> [<argument>...]",
	Short: "a tool for the phylogenetic encoding of presence-absence matrices",
}

func init() {
	app.Add(encode.Command)
	app.Add(pam.Command)
	app.Add(prj.Command)
	app.Add(tree.Command)
}

func main() {
	app.Main()
}
