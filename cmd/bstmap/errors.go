package main

import "errors"

var (
	ErrUnknownCommand = errors.New("bstmap: unknown command")
	ErrBadArity       = errors.New("bstmap: wrong number of arguments")
	ErrBadKey         = errors.New("bstmap: invalid key")
)
