package banddist

// AppendInput returns a new snapshot with x appended to the input
// sequence. Only the new row m = len(input) is materialized, for columns
// c in [max(0, m-w), min(n-1, m+w)]; no existing row is mutated.
// Complexity: O(w) cells computed.
func (s Snapshot) AppendInput(x rune) Snapshot {
	newInput := append(s.InputSeq(), x)
	newMatch := s.match
	r := len(newInput) - 1
	n := len(s.match)

	newMatrix := s.matrix.clone()
	newMatrix.appendRow()
	w := newMatrix.w

	lo := max(0, r-w)
	hi := min(n-1, r+w)
	for c := lo; c <= hi; c++ {
		cost := cellCost(newInput, newMatch, r, c, newMatrix.read)
		newMatrix.write(r, c, cost)
	}

	return Snapshot{input: newInput, match: append([]rune(nil), s.match...), matrix: newMatrix}
}

// AppendMatch returns a new snapshot with y appended to the match
// sequence. Only the new column n = len(match) is materialized, for rows
// r in [max(0, n-w), min(m-1, n+w)]; every row touched already exists
// (AppendMatch never grows the row count) and already has room for this
// column, since rows are always allocated at their owning snapshot's
// current band width. Complexity: O(w) cells.
func (s Snapshot) AppendMatch(y rune) Snapshot {
	newInput := s.input
	newMatch := append(s.MatchSeq(), y)
	c := len(newMatch) - 1
	m := len(s.input)

	newMatrix := s.matrix.clone()
	w := newMatrix.w

	lo := max(0, c-w)
	hi := min(m-1, c+w)
	for r := lo; r <= hi; r++ {
		cost := cellCost(newInput, newMatch, r, c, newMatrix.read)
		newMatrix.write(r, c, cost)
	}

	return Snapshot{input: append([]rune(nil), s.input...), match: newMatch, matrix: newMatrix}
}
