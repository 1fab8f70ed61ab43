// Package banddist computes incremental, diagonally-banded
// Damerau-Levenshtein edit distance between two growing rune sequences.
//
// 🚀 What is banddist?
//
//	A pure-Go immutable value type that ranks a match
//	string against a growing input (e.g. a typed prefix) cheaply, by:
//
//	  • reusing prior work when either sequence grows by one symbol
//	  • confining the DP matrix to a narrow band around the main diagonal
//	  • widening that band on demand only when a query needs a wider view
//
// ✨ Key features:
//
//   - Incremental  — AppendInput/AppendMatch touch only O(w) cells
//   - Banded       — O(m·w) memory instead of O(m·n)
//   - Exact        — FinalCost widens until the band can no longer hide
//     a cheaper alignment; the result is always the true distance
//   - Immutable    — every operation returns a new Snapshot; the callee
//     is left untouched and safe to keep observing
//
// ⚙️ Usage:
//
//	import "github.com/avl-dsa/banddist"
//
//	s := banddist.New()
//	for _, r := range "teh" {
//	    s = s.AppendInput(r)
//	}
//	for _, r := range "the" {
//	    s = s.AppendMatch(r)
//	}
//	dist, _ := s.FinalCost() // 1 (transpose "eh" -> "he")
//
// Adjacent transpositions are supported, including chained transpositions
// separated by other edits (e.g. "abc" -> "cab" costs 2). Only the scalar
// distance and the within-threshold predicate are exposed: there is no
// alignment traceback, no weighted costs, and no cross-thread mutation of
// a shared Snapshot.
//
// See example_test.go for runnable scenarios.
package banddist
