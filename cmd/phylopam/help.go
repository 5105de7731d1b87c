// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(encodingGuide)
	app.Add(matrixFilesGuide)
	app.Add(projectsGuide)
	app.Add(treeFilesGuide)
}

var projectsGuide = &command.Command{
	Usage: "projects",
	Short: "about project files",
	Long: `
PhyloPAM requires several files to read and process phylogenetic and
distribution data. To reduce the burden of keeping track of many files, a
single project file is used to hold the reference of all files required in the
analysis. This guide explains the structure of the file, but most of the time,
the best way to edit or view this file is by using phylopam commands.

A project file is a tab-delimited file with the following fields:

	- dataset  for the kind of file
	- path     for the path of the file

Here is an example file:

	# phylopam project files
	dataset	path
	tree	tree.json
	pam	pam.tab
	pmatrix	pmatrix.tab

The valid file types are:

- Phylogenetic tree. Defined by the dataset keyword "tree". This file contains
  a single tree in Newick, JSON, or YAML format. The recommended way to add a
  tree is by using the command 'phylopam tree add'.
- Presence-absence matrix. Defined by the dataset keyword "pam". This file
  contains a matrix of sites by species in the form of a tab-delimited file.
  The recommended way to add a presence-absence matrix is by using the
  command 'phylopam pam add'.
- Phylogenetic encoding. Defined by the dataset keyword "pmatrix". This file
  contains the encoding of the tree as a matrix of terminals by internal nodes
  in the form of a tab-delimited file. It is created with the command
  'phylopam encode'.
- Range models. Defined by the dataset keyword "ranges". This file contains
  the distribution ranges of one or more taxa in the form of a tab-delimited
  file. It is used to build a presence-absence matrix with the command
  'phylopam pam add --ranges'.
- Time-calibrated trees. Defined by the dataset keyword "timetrees". This
  file contains one or more trees in the form of a tab-delimited file. It is
  used to import a tree with the command 'phylopam tree add --timetree'.
	`,
}

var treeFilesGuide = &command.Command{
	Usage: "tree-files",
	Short: "about tree files",
	Long: `
A PhyloPAM project stores a single phylogenetic tree. The format of the tree
file is defined by its extension: files ending in '.json' are JSON files,
files ending in '.yaml' or '.yml' are YAML files, and any other file is
a Newick file.

In a Newick file the tree is defined by nested parenthesis, for example:

	((A:0.2,B:0.2):0.65,C_c:0.85)root;

Underscores in unquoted names are read as blanks. Names can be quoted with
single quotes, and comments in square brackets are ignored. Only the first
tree of the file is read.

In JSON and YAML files each clade is an object with the following fields:

	- path_id        an integer that identifies the clade
	- name           the name of the clade
	- branch_length  the length of the branch of the clade (optional)
	- matrix_index   the column of the clade in the presence-absence
	                 matrix (optional)
	- squid          a species identifier (optional)
	- children       the list of descendant clades

Here is an example of a JSON file:

	{
	    "path_id": 0,
	    "name": "",
	    "children": [
	        {
	            "path_id": 1,
	            "name": "A",
	            "branch_length": 0.2,
	            "matrix_index": 0,
	            "children": []
	        },
	        {
	            "path_id": 2,
	            "name": "B",
	            "branch_length": 0.2,
	            "matrix_index": 1,
	            "children": []
	        }
	    ]
	}

Only JSON and YAML files keep matrix indices and squids.
	`,
}

var matrixFilesGuide = &command.Command{
	Usage: "matrix-files",
	Short: "about matrix files",
	Long: `
Presence-absence matrices, phylogenetic encodings, and distance matrices are
stored as tab-delimited files. The first field of the header must be 'label',
the other fields are the column headers. Each following row starts with the
row header, followed by the values of the row. Lines starting with '#' are
ignored.

Here is an example of a presence-absence matrix:

	# presence-absence matrix
	label	sp-1	sp-2	sp-3
	17319	1	0	1
	17320	0	1	1

In a presence-absence matrix the rows are sites, and the columns are species.
The column headers are matched against the names (or squids) of the tree
terminals.
	`,
}

var encodingGuide = &command.Command{
	Usage: "encoding",
	Short: "about the phylogenetic encoding",
	Long: `
The phylogenetic encoding (or P-matrix) is a matrix of terminals by internal
nodes, as defined by Leibold et al. (2010). Each value indicates the relation
of the terminal with the internal node: negative values for terminals of the
left descendant of the node, positive values for terminals of the right
descendant, and zero for terminals outside of the node.

If the tree does not have branch lengths, the value for the node immediately
ancestral to a terminal is 1 (or -1), and it is halved for each node in the
path to the root.

If the tree has branch lengths, the value of a terminal for a node is

	P = (l1 + l2/2 + l3/3 + ... + ln/n) / S

in which each l is the length of a branch in the path from the terminal to the
node, divided by the number of terminals that share that branch, and S is the
sum of all branch lengths of the descendant of the node that includes the
terminal.

To be encoded, the tree must be binary, and ultrametric if it has branch
lengths, and each column of the presence-absence matrix must be assigned to a
single terminal of the tree.

Reference:

Leibold, M.A., Economo, E.P., Peres-Neto, P. (2010) Metacommunity
	phylogenetics: separating the roles of environmental filters and
	historical biogeography. Ecology Letters 13: 1290-1299.
	`,
}
