package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseArity reads the arity file — one "identifier integer" pair per
// line, blank lines ignored — and returns the declared operator names
// mapped to their arity.
func ParseArity(r io.Reader) (map[string]int, error) {
	out := make(map[string]int)
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("parser.ParseArity: line %d: expected \"name arity\": %w", lineNo, ErrParse)
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("parser.ParseArity: line %d: invalid arity %q: %w", lineNo, fields[1], ErrParse)
		}
		if _, dup := out[fields[0]]; dup {
			return nil, fmt.Errorf("parser.ParseArity: line %d: duplicate operator %q: %w", lineNo, fields[0], ErrReference)
		}
		out[fields[0]] = n
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parser.ParseArity: %w", errors.Join(ErrIO, err))
	}
	return out, nil
}
