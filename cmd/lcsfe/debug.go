package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/lcsfe/compose"
	"github.com/katalvlaran/lcsfe/normalizer"
	"github.com/katalvlaran/lcsfe/parser"
	"github.com/katalvlaran/lcsfe/pgame"
)

// runDebug implements the debug subcommand: it loads a raw
// (arity, fix_system, basis, moves_system) quadruple from disk and
// runs a local check against the given basis element and equation
// index, exactly as spec.md §6 specifies.
func runDebug(args []string) error {
	fs := flag.NewFlagSet("debug", flag.ContinueOnError)
	normalize := fs.Bool("normalize", false, "run the normalizer before composing")
	explain := fs.Bool("explain", false, "dump the system, moves, and composed table before the result")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("debug: %w", err)
	}
	rest := fs.Args()
	if len(rest) != 6 {
		return fmt.Errorf("debug: expected <arity> <fix_system> <basis> <moves_system> <basis-elem> <index>, got %d args", len(rest))
	}
	arityPath, fixPath, basisPath, movesPath, basisElem, indexArg := rest[0], rest[1], rest[2], rest[3], rest[4], rest[5]

	index, convErr := strconv.Atoi(indexArg)
	if convErr != nil {
		return fmt.Errorf("debug: invalid <index> %q: %w", indexArg, parser.ErrParse)
	}

	arityFile, err := os.Open(arityPath)
	if err != nil {
		return fmt.Errorf("debug: %w", joinIO(err))
	}
	defer arityFile.Close()
	arities, err := parser.ParseArity(arityFile)
	if err != nil {
		return err
	}

	basisFile, err := os.Open(basisPath)
	if err != nil {
		return fmt.Errorf("debug: %w", joinIO(err))
	}
	defer basisFile.Close()
	basis, err := parser.ParseBasis(basisFile)
	if err != nil {
		return err
	}

	fixFile, err := os.Open(fixPath)
	if err != nil {
		return fmt.Errorf("debug: %w", joinIO(err))
	}
	defer fixFile.Close()
	sys, err := parser.ParseEquationSystem(fixFile, arities)
	if err != nil {
		return err
	}

	movesFile, err := os.Open(movesPath)
	if err != nil {
		return fmt.Errorf("debug: %w", joinIO(err))
	}
	defer movesFile.Close()
	store, err := parser.ParseMoveSystem(movesFile, basis, arities)
	if err != nil {
		return err
	}

	dump := explainDump{w: os.Stdout}
	if *explain {
		dump.system("system", sys)
	}

	composeSys := sys
	if *normalize {
		canon, rename, nErr := normalizer.Normalize(sys)
		if nErr != nil {
			return nErr
		}
		composeSys = canon
		if *explain {
			dump.system("normalized system", canon)
			dump.renameMap(rename)
		}
	}

	if index < 1 || index > composeSys.Len() {
		return fmt.Errorf("debug: index %d out of range [1,%d]: %w", index, composeSys.Len(), parser.ErrIndex)
	}

	if *explain {
		dump.moves("uncomposed moves", store, basis)
	}

	table, err := compose.Compose(composeSys, store, basis)
	if err != nil {
		return err
	}
	if *explain {
		dump.composed("composed moves", table, composeSys, basis)
	}

	arena := pgame.NewArena(composeSys, basis, table)
	winner, err := pgame.NewEngine(arena).LocalCheck(basisElem, index)
	if err != nil {
		return err
	}

	fmt.Println(winnerMessage(winner))
	return nil
}

// winnerMessage renders the debug/mu-ald result sentence of spec.md §6.
func winnerMessage(winner pgame.Player) string {
	if winner == pgame.Eve {
		return "The winner is the existential player"
	}
	return "The winner is the universal player"
}

// joinIO wraps a raw os file error with parser.ErrIO so cmd/lcsfe's
// exit-code classification treats every file-open failure uniformly,
// the same way parser's own readers wrap scanner errors.
func joinIO(err error) error {
	return errors.Join(parser.ErrIO, err)
}
