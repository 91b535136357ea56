package main

import (
	"errors"

	"github.com/katalvlaran/lcsfe/adapters/muald"
	"github.com/katalvlaran/lcsfe/adapters/pg"
	"github.com/katalvlaran/lcsfe/parser"
	"github.com/katalvlaran/lcsfe/pgame"
)

// Exit codes, one per error kind from spec.md §7. Stable and
// implementation-defined: the spec only requires "non-zero on error".
const (
	exitOK         = 0
	exitParseError = 2
	exitRefError   = 3
	exitIndexError = 4
	exitIOError    = 5
	exitShapeError = 6
	exitUsageError = 64 // conventional EX_USAGE, not part of spec.md's taxonomy
)

// exitCodeFor classifies err against the sentinel errors exposed by
// parser, pgame, and the adapters, and returns the exit code cmd/lcsfe
// reports for it.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, parser.ErrIO):
		return exitIOError
	case errors.Is(err, parser.ErrIndex):
		return exitIndexError
	case errors.Is(err, parser.ErrReference):
		return exitRefError
	case errors.Is(err, parser.ErrParse):
		return exitParseError
	case errors.Is(err, pgame.ErrStartIndexOutOfRange):
		return exitIndexError
	case errors.Is(err, pgame.ErrUnknownStartBasisElem):
		return exitRefError
	case errors.Is(err, pg.ErrIO), errors.Is(err, muald.ErrIO):
		return exitIOError
	case errors.Is(err, pg.ErrUnknownNode):
		return exitRefError
	case errors.Is(err, muald.ErrUnboundVar):
		return exitRefError
	case errors.Is(err, muald.ErrNotFixpoint):
		return exitRefError
	case errors.Is(err, pg.ErrDuplicateNode), errors.Is(err, pg.ErrInvalidOwner), errors.Is(err, pg.ErrParse):
		return exitParseError
	case errors.Is(err, muald.ErrParse), errors.Is(err, muald.ErrMuParse):
		return exitParseError
	default:
		return exitShapeError
	}
}
