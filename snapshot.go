package banddist

import (
	"strconv"
	"strings"
)

// Snapshot is the immutable value at the heart of this package: the two
// rune sequences under comparison, the current band half-width, and the
// banded cost storage resolved so far. Every operation on a Snapshot
// returns a new Snapshot; the receiver is left untouched and remains
// safely observable, including across goroutines for read-only use.
type Snapshot struct {
	input  []rune
	match  []rune
	matrix *bandedMatrix
}

// New returns an empty snapshot (m = n = 0) with the default band
// half-width of 1.
func New() Snapshot {
	return Snapshot{matrix: newBandedMatrix(1)}
}

// NewWithOptions returns an empty snapshot honoring opts.InitialBand.
// It returns ErrNegativeBand if opts fails validation.
func NewWithOptions(opts Options) (Snapshot, error) {
	if err := opts.Validate(); err != nil {
		return Snapshot{}, err
	}

	return Snapshot{matrix: newBandedMatrix(opts.InitialBand)}, nil
}

// Symbols converts a Go string to the rune sequence this package treats
// as a sequence of comparable symbols — a single Unicode code point each.
// Grapheme clusters spanning multiple code points are not decomposed.
func Symbols(s string) []rune {
	return []rune(s)
}

// Rebuild constructs a snapshot from two complete strings in one call,
// for callers that are not driving the engine character-by-character
// (e.g. a test harness comparing against an external oracle). It appends
// every input symbol and then every match symbol; by the order
// independence of append, the interleaving does not affect the resulting
// costs.
func Rebuild(a, b string, w int) (Snapshot, error) {
	s, err := NewWithOptions(Options{InitialBand: w})
	if err != nil {
		return Snapshot{}, err
	}
	for _, r := range Symbols(a) {
		s = s.AppendInput(r)
	}
	for _, r := range Symbols(b) {
		s = s.AppendMatch(r)
	}

	return s, nil
}

// Width returns the current band half-width w.
func (s Snapshot) Width() int {
	return s.matrix.w
}

// Len returns the lengths of the input and match sequences, m and n.
func (s Snapshot) Len() (m, n int) {
	return len(s.input), len(s.match)
}

// InputSeq returns a copy of the input sequence.
func (s Snapshot) InputSeq() []rune {
	return append([]rune(nil), s.input...)
}

// MatchSeq returns a copy of the match sequence.
func (s Snapshot) MatchSeq() []rune {
	return append([]rune(nil), s.match...)
}

// WithBand returns a snapshot whose half-width is at least w. If the
// receiver's band is already >= w, the receiver's cells are returned
// unchanged (cells are only ever widened, never narrowed — narrowing
// would discard resolved, band-optimal costs for no benefit). Otherwise
// it widens repeatedly until reaching w. It returns ErrNegativeBand if
// w < 0.
func (s Snapshot) WithBand(w int) (Snapshot, error) {
	if w < 0 {
		return Snapshot{}, ErrNegativeBand
	}
	for s.Width() < w {
		s = s.Widen()
	}

	return s, nil
}

// String renders the materialized band for debugging and test failure
// messages: finite cells as their integer cost, unresolved or
// out-of-band cells as "∞". It is never consulted by the engine itself.
func (s Snapshot) String() string {
	m, n := s.Len()
	var b strings.Builder
	for r := 0; r < m; r++ {
		for c := 0; c < n; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			cost := s.matrix.read(r, c)
			if cost.IsInfinite() {
				b.WriteRune('∞')
			} else {
				b.WriteString(strconv.Itoa(int(cost)))
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
