// Package palette generates lists of unique random hex colors.
//
// # Overview
//
// Graph viewers color nodes by indexing a palette with the node's cluster
// number (cluster % len(palette)). This package produces those palettes as
// JSON fixtures of the form:
//
//	{"colors":["#A1B2C3","#00FF11","#FEDCBA"]}
//
// Each [Color] is six symbols drawn uniformly from 0-9A-F. Within one
// [Palette] all colors are pairwise distinct.
//
// # Termination
//
// The color space holds exactly [Capacity] (16^6) values. [Generate] rejects
// requests above that bound before sampling. Each slot is sampled at most a
// fixed number of times; once a slot exceeds that budget the remaining colors
// are drawn from an exhaustive enumeration of the unused space, so generation
// always finishes even when the palette is close to full.
//
// # Randomness
//
// Callers pass a *rand.Rand. Seeding it identically yields identical palettes:
//
//	rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
//	p, err := palette.Generate(rng, 40)
package palette
