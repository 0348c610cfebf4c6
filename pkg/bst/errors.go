package bst

import "errors"

var (
	ErrNilComparator = errors.New("bst: comparator must not be nil")
)
