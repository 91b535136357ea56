// Command lcsfe is a local model checker for symbolic fixpoint
// equation systems: it decides, via the local-check algorithm of
// pgame, whether one designated basis element satisfies one
// designated equation of a fixpoint system, without solving the
// system globally.
//
// Three subcommands share that core but differ in how they obtain the
// (arity, equations, basis, moves) input:
//
//	lcsfe debug   <arity> <fix_system> <basis> <moves_system> <basis-elem> <index>
//	lcsfe pg      <pgsolver-file> <start-node>
//	lcsfe mu-ald  <ald-file> <formula> <start-state>
//
// Global flags --normalize and --explain are accepted by all three and
// must appear before the positional arguments.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
)

// diag logs CLI-boundary diagnostics to stderr, undecorated — the only
// place in the module that writes a log line, per spec.md §7's
// propagation policy ("all errors surface at the CLI boundary with a
// textual message").
var diag = log.New(os.Stderr, "", 0)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		diag.Print("usage: lcsfe <debug|pg|mu-ald> [flags] ...")
		return exitUsageError
	}

	cmd, rest := args[0], args[1:]
	var err error
	switch cmd {
	case "debug":
		err = runDebug(rest)
	case "pg":
		err = runPG(rest)
	case "mu-ald":
		err = runMuAld(rest)
	case "-h", "--help", "help":
		printUsage()
		return exitOK
	default:
		diag.Printf("lcsfe: unknown subcommand %q", cmd)
		return exitUsageError
	}

	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		diag.Printf("lcsfe %s: %v", cmd, err)
		return exitCodeFor(err)
	}
	return exitOK
}

func printUsage() {
	fmt.Fprintln(os.Stdout, "usage:")
	fmt.Fprintln(os.Stdout, "  lcsfe debug  [--normalize] [--explain] <arity> <fix_system> <basis> <moves_system> <basis-elem> <index>")
	fmt.Fprintln(os.Stdout, "  lcsfe pg     [--normalize] [--explain] <pgsolver-file> <start-node>")
	fmt.Fprintln(os.Stdout, "  lcsfe mu-ald [--normalize] [--explain] <ald-file> <formula> <start-state>")
}
