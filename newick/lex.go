// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package newick

import (
	"regexp"
	"strings"
)

// tokenKind is the kind of a lexical token
// of a Newick string.
type tokenKind int

const (
	tokOpen tokenKind = iota
	tokClose
	tokLabel
	tokLength
	tokComma
	tokComment
	tokQuoted
	tokSemicolon
	tokNewline
)

var kindNames = map[tokenKind]string{
	tokOpen:      "open parenthesis",
	tokClose:     "close parenthesis",
	tokLabel:     "unquoted label",
	tokLength:    "edge length",
	tokComma:     "comma",
	tokComment:   "comment",
	tokQuoted:    "quoted label",
	tokSemicolon: "semicolon",
	tokNewline:   "newline",
}

func (k tokenKind) String() string {
	return kindNames[k]
}

// Token patterns,
// in priority order.
// The edge length pattern accepts any run of non-delimiters
// after the colon,
// so a malformed number is caught by the parser
// instead of being silently skipped.
var patterns = []string{
	`\(`,
	`\)`,
	`[^\s\(\)\[\]'\:\;\,]+`,
	`\:[^\s\(\)\[\]'\:\;\,]*`,
	`\,`,
	`\[(?:\\.|[^\]])*\]`,
	`'(?:\\.|[^'])*'`,
	`\;`,
	`\n`,
}

var tokenizer = regexp.MustCompile(strings.Join(patterns, "|"))

type token struct {
	kind tokenKind
	val  string
	pos  int // byte offset
	line int
}

// lex splits the input into tokens.
// Characters not matched by any pattern
// (blanks, stray quotes)
// are skipped.
func lex(text string) []token {
	idx := tokenizer.FindAllStringIndex(text, -1)
	tokens := make([]token, 0, len(idx))

	line := 1
	last := 0
	for _, m := range idx {
		line += strings.Count(text[last:m[0]], "\n")
		last = m[0]

		v := text[m[0]:m[1]]
		tokens = append(tokens, token{
			kind: classify(v),
			val:  v,
			pos:  m[0],
			line: line,
		})
	}
	return tokens
}

func classify(v string) tokenKind {
	switch v[0] {
	case '(':
		return tokOpen
	case ')':
		return tokClose
	case ':':
		return tokLength
	case ',':
		return tokComma
	case '[':
		return tokComment
	case '\'':
		return tokQuoted
	case ';':
		return tokSemicolon
	case '\n':
		return tokNewline
	}
	return tokLabel
}
