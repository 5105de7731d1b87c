// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package encode

import (
	"errors"
	"fmt"
)

// Reasons for an encoding failure.
var (
	ErrIndexMismatch  = errors.New("matrix indices do not match the matrix columns")
	ErrNotBinary      = errors.New("tree is not binary")
	ErrNotUltrametric = errors.New("tree with branch lengths is not ultrametric")
	ErrEmptyTree      = errors.New("empty tree")
)

// An Error is returned when a tree and a matrix
// can not be encoded.
type Error struct {
	// Err is the reason of the failure.
	Err error

	// Msg is an optional description.
	Msg string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return "encode: " + e.Err.Error()
	}
	return fmt.Sprintf("encode: %v: %s", e.Err, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}
