// Package asm implements the two-pass Pep/8 assembler.
//
// Pass one runs a character-level lexer and a token-level parser over each
// source line, producing one code item per line and filling the symbol,
// equate, undeclared-reference, and comment tables. Between the passes every
// unresolved reference becomes an error and, when a .BURN directive was seen,
// all addresses and non-equate symbols are shifted so the final byte lands on
// the burn operand. Pass two renders the fixed-width listing and the bare-hex
// object stream.
package asm
