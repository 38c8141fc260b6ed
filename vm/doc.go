// Package vm models the Pep/8 computer: 65,536 bytes of byte-addressed
// memory with a write-protected operating system at the top, the A, X, SP,
// and PC registers with the four status flags, an eight-mode address
// resolver, the trap mechanism, and the fetch-decode-execute loop with
// tracing hooks.
package vm
