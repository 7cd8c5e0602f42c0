// Package rng provides the seedable random source shared by every
// stochastic pass in lvldraw: SGD term shuffling, pivot sampling, and any
// randomized initial placement.
//
// All layout algorithms take a *Rng by pointer and consume it; none of them
// create randomness on their own. Seeding with NewSeeded makes the whole
// pipeline reproducible: identical seed and identical graph yield
// bit-identical term lists, pivot sets and η sequences.
//
// The underlying generator is golang.org/x/exp/rand (PCG), so a single
// uint64 seed fully determines the stream.
package rng
