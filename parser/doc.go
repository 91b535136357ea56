// Package parser implements the hand-rolled recursive-descent readers
// for every on-disk grammar in this module: the arity file, the basis
// file, the equation-system grammar, and the moves-system grammar.
// adapters/muald builds its μ-calculus reader on top of the same Lexer;
// its Aldebaran reader scans lines with the strings package instead.
//
// No parser-combinator or lexer-generator dependency is used: none
// appears anywhere in the retrieved reference corpus, so these readers
// follow the corpus's own hand-rolled lexer/recursive-descent style.
package parser
