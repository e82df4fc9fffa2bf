// Package sequence implements the deterministic bounded-sequence core:
// a Generator that produces integer sequences where every element lies
// in [0, size), and an Average over them with truncating division.
//
// Determinism contract: the Generator resets its pseudo-random source to
// its seed on every Generate call, so equal sizes always produce equal
// output. The stream is Go's math/rand v1 stream, which is stable across
// Go releases for a given seed.
package sequence
