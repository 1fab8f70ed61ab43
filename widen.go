package banddist

// cellCoord names a materialized cell on the worklist that drives the
// second propagation phase of Widen.
type cellCoord struct {
	r, c int
}

// Widen returns a new snapshot at half-width w+1. Previously resolved
// cells only ever improve (monotone under widening); the two new outer
// diagonals are computed directly (phase one), and their effect on
// already-resolved interior cells is propagated with a worklist-driven
// min-relaxation (phase two) rather than naive recursion, to avoid deep
// call stacks on long sequences.
func (s Snapshot) Widen() Snapshot {
	newMatrix := s.matrix.clone()
	newMatrix.widen()
	w := newMatrix.w
	m, n := len(s.input), len(s.match)

	worklist := make([]cellCoord, 0, 2*m)

	// Phase one — direct computation of the two new outer diagonals, one
	// row at a time so each row's substitution predecessor (the same
	// diagonal, previous row) is already resolved when it is needed.
	// read already encodes the virtual-boundary and out-of-band rules, so
	// the "insertion/deletion unavailable, except at the sequence
	// boundary where the virtual value applies" behavior falls out of
	// cellCost/read directly — no separate special-casing is required
	// here.
	for r := 0; r < m; r++ {
		if c := r - w; c >= 0 && c < n {
			cost := cellCost(s.input, s.match, r, c, newMatrix.read)
			newMatrix.write(r, c, cost)
			if !cost.IsInfinite() {
				worklist = append(worklist, cellCoord{r, c})
			}
		}
		if c := r + w; c >= 0 && c < n {
			cost := cellCost(s.input, s.match, r, c, newMatrix.read)
			newMatrix.write(r, c, cost)
			if !cost.IsInfinite() {
				worklist = append(worklist, cellCoord{r, c})
			}
		}
	}

	// Phase two — propagate every improvement to its neighbors in the new
	// band. A neighbor is only visited, and only re-enqueued, when the
	// candidate value strictly lowers what is stored; since costs are
	// bounded non-negative integers this terminates.
	relax := func(r, c int, v Cost) {
		if r < 0 || r >= m || c < 0 || c >= n || !newMatrix.inBand(r, c) {
			return
		}
		if v < newMatrix.read(r, c) {
			newMatrix.write(r, c, v)
			worklist = append(worklist, cellCoord{r, c})
		}
	}

	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]
		r, c := cur.r, cur.c
		v := newMatrix.read(r, c)

		relax(r, c+1, v.AddInt(1)) // insertion source
		relax(r+1, c, v.AddInt(1)) // deletion source
		if r+1 < m && c+1 < n {
			step := Cost(1)
			if s.input[r+1] == s.match[c+1] {
				step = 0
			}
			relax(r+1, c+1, v.Add(step)) // substitution source

			// Transposition source: the next occurrence (forward) of
			// each side's partner character, mirroring the backward
			// lookup in the cost recurrence.
			nextRow := firstOccurrenceAfter(s.input, r+1, s.match[c+1])
			nextCol := firstOccurrenceAfter(s.match, c+1, s.input[r+1])
			if nextRow >= 0 && nextCol >= 0 {
				hops := (nextRow - r - 2) + 1 + (nextCol - c - 2)
				relax(nextRow, nextCol, v.AddInt(hops))
			}
		}
	}

	return Snapshot{
		input:  append([]rune(nil), s.input...),
		match:  append([]rune(nil), s.match...),
		matrix: newMatrix,
	}
}
