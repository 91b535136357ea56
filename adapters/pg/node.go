package pg

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lcsfe/pgame"
)

// Sentinel errors for PGSolver parsing and construction. Callers
// branch with errors.Is.
var (
	// ErrParse indicates a malformed PGSolver line.
	ErrParse = errors.New("pg: syntax error")
	// ErrUnknownNode indicates a successor or start-node name with no
	// matching declaration.
	ErrUnknownNode = errors.New("pg: reference to an undeclared node")
	// ErrDuplicateNode indicates two nodes share an identifier.
	ErrDuplicateNode = errors.New("pg: duplicate node identifier")
	// ErrInvalidOwner indicates a node's owner field is not 0 or 1.
	ErrInvalidOwner = errors.New("pg: owner must be 0 or 1")
	// ErrIO wraps an underlying read failure.
	ErrIO = errors.New("pg: I/O error")
)

// Node is one PGSolver vertex: an identifier, its parity, its owner
// (0 = Eve/existential, 1 = Adam/universal), the identifiers of its
// successors, and an optional display name.
type Node struct {
	ID         string
	Parity     int
	Owner      int
	Successors []string
	Name       string
}

// ParsePGSolver reads the PGSolver text format: an optional header
// line (declaring the highest node index; skipped when the first
// non-blank line starts with "parity", otherwise that line is parsed
// as a node) followed by one line per node, "identifier priority owner successors name ;",
// successors being a comma-separated list of identifiers and name an
// optional quoted string. Hand-rolled line-oriented scanning, in the
// style of parser.ParseArity: no parser-combinator dependency exists
// anywhere in the retrieved corpus to ground one on.
func ParsePGSolver(r io.Reader) ([]Node, error) {
	sc := bufio.NewScanner(r)
	lineNo := 0
	var nodes []Node
	seenHeader := false

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if !seenHeader {
			seenHeader = true
			if strings.HasPrefix(line, "parity") {
				continue
			}
		}
		n, err := parseNodeLine(line, lineNo)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("pg.ParsePGSolver: %w", errors.Join(ErrIO, err))
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("pg.ParsePGSolver: no nodes declared: %w", ErrParse)
	}
	return nodes, nil
}

// parseNodeLine parses one "identifier priority owner successors name ;"
// line. name is optional; a trailing ';' is required.
func parseNodeLine(line string, lineNo int) (Node, error) {
	if !strings.HasSuffix(line, ";") {
		return Node{}, fmt.Errorf("pg.ParsePGSolver: line %d: missing terminating ';': %w", lineNo, ErrParse)
	}
	line = strings.TrimSpace(strings.TrimSuffix(line, ";"))
	if line == "" {
		return Node{}, fmt.Errorf("pg.ParsePGSolver: line %d: empty node declaration: %w", lineNo, ErrParse)
	}

	var name string
	if q := strings.IndexByte(line, '"'); q >= 0 {
		end := strings.LastIndexByte(line, '"')
		if end <= q {
			return Node{}, fmt.Errorf("pg.ParsePGSolver: line %d: unterminated quoted name: %w", lineNo, ErrParse)
		}
		name = line[q+1 : end]
		line = strings.TrimSpace(line[:q])
	}

	fields := strings.Fields(line)
	if len(fields) < 4 {
		return Node{}, fmt.Errorf("pg.ParsePGSolver: line %d: expected \"id priority owner successors\": %w", lineNo, ErrParse)
	}

	priority, err := strconv.Atoi(fields[1])
	if err != nil {
		return Node{}, fmt.Errorf("pg.ParsePGSolver: line %d: invalid priority %q: %w", lineNo, fields[1], ErrParse)
	}
	owner, err := strconv.Atoi(fields[2])
	if err != nil {
		return Node{}, fmt.Errorf("pg.ParsePGSolver: line %d: invalid owner %q: %w", lineNo, fields[2], ErrParse)
	}
	if owner != 0 && owner != 1 {
		return Node{}, fmt.Errorf("pg.ParsePGSolver: line %d: owner %d: %w", lineNo, owner, ErrInvalidOwner)
	}

	var successors []string
	for _, s := range strings.Split(fields[3], ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			successors = append(successors, s)
		}
	}
	if len(successors) == 0 {
		return Node{}, fmt.Errorf("pg.ParsePGSolver: line %d: node %q has no successors: %w", lineNo, fields[0], ErrParse)
	}

	return Node{ID: fields[0], Parity: priority, Owner: owner, Successors: successors, Name: name}, nil
}

// FormatResult renders the result line the pg command prints on
// stdout, per spec.md §6: "Player 0 wins from vertex <name>" when Eve
// wins, "Player 1 wins from vertex <name>" when Adam does.
func FormatResult(startName string, winner pgame.Player) string {
	player := 0
	if winner == pgame.Adam {
		player = 1
	}
	return fmt.Sprintf("Player %d wins from vertex %s", player, startName)
}
