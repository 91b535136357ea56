package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lcsfe/ast"
)

// ParseBasis reads the basis file — one basis element per line, blank
// lines ignored — preserving file order, which is the basis order
// used everywhere else in this module.
func ParseBasis(r io.Reader) (ast.Basis, error) {
	var out ast.Basis
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parser.ParseBasis: %w", errors.Join(ErrIO, err))
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("parser.ParseBasis: %w", err)
	}
	return out, nil
}
