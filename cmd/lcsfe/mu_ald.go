package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/lcsfe/adapters/muald"
	"github.com/katalvlaran/lcsfe/compose"
	"github.com/katalvlaran/lcsfe/normalizer"
	"github.com/katalvlaran/lcsfe/pgame"
)

// runMuAld implements the mu-ald subcommand: it reads an
// Aldebaran-format LTS and a μ-calculus formula, translates them to a
// fixpoint equation system via adapters/muald, and reports which
// player wins the formula at the named start state.
func runMuAld(args []string) error {
	fs := flag.NewFlagSet("mu-ald", flag.ContinueOnError)
	normalize := fs.Bool("normalize", false, "run the normalizer before composing")
	explain := fs.Bool("explain", false, "dump the system, moves, and composed table before the result")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("mu-ald: %w", err)
	}
	rest := fs.Args()
	if len(rest) != 3 {
		return fmt.Errorf("mu-ald: expected <ald-file> <formula> <start-state>, got %d args", len(rest))
	}
	ltsPath, formulaSrc, startState := rest[0], rest[1], rest[2]

	ltsFile, err := os.Open(ltsPath)
	if err != nil {
		return fmt.Errorf("mu-ald: %w", joinIO(err))
	}
	defer ltsFile.Close()

	lts, err := muald.ParseAldebaran(ltsFile)
	if err != nil {
		return err
	}
	formula, err := muald.ParseMuCalc(formulaSrc)
	if err != nil {
		return err
	}
	sys, basis, store, queryIdx, err := muald.ToEquations(formula, lts)
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
	winner, err := pgame.NewEngine(arena).LocalCheck(startState, queryIdx)
	if err != nil {
		return err
	}

	fmt.Println(winnerMessage(winner))
	return nil
}
