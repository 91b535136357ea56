package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/lcsfe/adapters/pg"
	"github.com/katalvlaran/lcsfe/compose"
	"github.com/katalvlaran/lcsfe/normalizer"
	"github.com/katalvlaran/lcsfe/pgame"
)

// runPG implements the pg subcommand: it reads a PGSolver-format
// parity-game file, translates it to a fixpoint equation system via
// adapters/pg, and reports which player wins from the named vertex.
func runPG(args []string) error {
	fs := flag.NewFlagSet("pg", flag.ContinueOnError)
	normalize := fs.Bool("normalize", false, "run the normalizer before composing")
	explain := fs.Bool("explain", false, "dump the system, moves, and composed table before the result")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("pg: %w", err)
	}
	rest := fs.Args()
	if len(rest) != 2 {
		return fmt.Errorf("pg: expected <pgsolver-file> <start-node>, got %d args", len(rest))
	}
	gamePath, startNode := rest[0], rest[1]

	gameFile, err := os.Open(gamePath)
	if err != nil {
		return fmt.Errorf("pg: %w", joinIO(err))
	}
	defer gameFile.Close()

	nodes, err := pg.ParsePGSolver(gameFile)
	if err != nil {
		return err
	}
	sys, store, index, err := pg.ToEquations(nodes)
	if err != nil {
		return err
	}
	startIdx, ok := index[startNode]
	if !ok {
		return fmt.Errorf("pg: start node %q: %w", startNode, pg.ErrUnknownNode)
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
		dump.moves("uncomposed moves", store, pg.Basis)
	}

	table, err := compose.Compose(composeSys, store, pg.Basis)
	if err != nil {
		return err
	}
	if *explain {
		dump.composed("composed moves", table, composeSys, pg.Basis)
	}

	arena := pgame.NewArena(composeSys, pg.Basis, table)
	winner, err := pgame.NewEngine(arena).LocalCheck("true", startIdx)
	if err != nil {
		return err
	}

	fmt.Println(pg.FormatResult(startNode, winner))
	return nil
}
