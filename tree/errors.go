// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"errors"
	"fmt"
)

// Common structural errors.
var (
	ErrNotFound    = errors.New("clade not found")
	ErrDuplicateID = errors.New("duplicated path ID")
	ErrNoLength    = errors.New("clade without branch length")
)

// A StructureError is returned
// when a clade required by an operation
// is missing or malformed.
type StructureError struct {
	ID  int
	Err error
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("tree: clade %d: %v", e.ID, e.Err)
}

func (e *StructureError) Unwrap() error {
	return e.Err
}
