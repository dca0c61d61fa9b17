// Package pipeline derives the visible rows of the grid from the full record
// set. It is a set of pure functions applied in a fixed order:
//
//	Search → Filter → Sort → Paginate
//
// The order matters for which records land on a page, not only for how they
// are arranged. None of the stages mutate their input. Search, Filter and
// Sort return the input slice itself when they impose nothing; otherwise they
// return a new slice. Paginate returns a capacity-limited view of its input.
package pipeline
