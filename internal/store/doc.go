// Package store provides durable storage for generated sequence runs.
//
// A run records everything needed to reproduce a sequence (size and seed)
// alongside what was actually produced (elements and mean), so a later
// verify pass can detect divergence.
package store
