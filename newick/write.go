// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package newick

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Write writes a tree in Newick format,
// terminated by a semicolon and a new line.
func Write(w io.Writer, root *Node) error {
	bw := bufio.NewWriter(w)
	writeNode(bw, root)
	bw.WriteString(";\n")
	return bw.Flush()
}

func writeNode(bw *bufio.Writer, n *Node) {
	if len(n.Children) > 0 {
		bw.WriteByte('(')
		for i, c := range n.Children {
			if i > 0 {
				bw.WriteByte(',')
			}
			writeNode(bw, c)
		}
		bw.WriteByte(')')
	}
	bw.WriteString(label(n.Name))
	if n.HasLength {
		bw.WriteByte(':')
		bw.WriteString(strconv.FormatFloat(n.Length, 'g', -1, 64))
	}
}

// label returns a node name
// in a form that can be read back.
// Names with underscores or delimiters are quoted,
// otherwise blanks are replaced by underscores.
func label(name string) string {
	if name == "" {
		return ""
	}
	if strings.ContainsAny(name, "_()[]':;,\t\n") {
		return "'" + strings.ReplaceAll(name, "'", `\'`) + "'"
	}
	return strings.ReplaceAll(name, " ", "_")
}
