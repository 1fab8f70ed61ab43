package banddist

// HeuristicFinalCost reads the cost at (m-1, n-1): an upper bound on the
// true Damerau-Levenshtein distance, exact iff the optimal alignment
// never strays outside the band. Falling through to the matrix's
// virtual-boundary rule means an empty-vs-non-empty comparison correctly
// yields the other sequence's length rather than +∞.
func (s Snapshot) HeuristicFinalCost() Cost {
	m, n := s.Len()

	return s.matrix.read(m-1, n-1)
}

// FinalCost returns the exact Damerau-Levenshtein distance, widening the
// band as many times as needed. Termination is guaranteed: once w >=
// max(m, n) the band covers the entire matrix, and no Damerau-Levenshtein
// distance between sequences of these lengths can exceed max(m, n).
func (s Snapshot) FinalCost() (int, Snapshot) {
	for {
		cost := s.HeuristicFinalCost()
		if int(cost) <= s.Width() {
			return int(cost), s
		}
		s = s.Widen()
	}
}

// WithinThreshold reports whether the true distance is <= t, widening the
// band as needed to decide. It returns ErrNegativeThreshold if t < 0.
//
// The decision procedure: if the heuristic is already <= t, the answer is
// yes regardless of band width, since the heuristic is an upper bound. If
// w >= t, the band is wide enough that any alignment of cost <= t would
// have been found, so a heuristic > t proves the answer is no. Otherwise
// the band is too narrow to decide yet; widen and retry.
func (s Snapshot) WithinThreshold(t int) (bool, Snapshot, error) {
	if t < 0 {
		return false, Snapshot{}, ErrNegativeThreshold
	}

	for {
		cost := s.HeuristicFinalCost()
		if int(cost) <= t {
			return true, s, nil
		}
		if s.Width() >= t {
			return false, s, nil
		}
		s = s.Widen()
	}
}
