// Package powser computes with formal power series: infinite coefficient
// sequences representing Taylor expansions around zero, manipulated purely
// combinatorially and never materialized.
//
// Design goals:
//   - Lazy, memoized coefficients: each term is computed once, on demand
//   - Self-referential definitions (exp, reciprocal, inverse, sqrt) that
//     terminate because coefficient n only ever needs coefficients < n
//   - Generic over any field-like scalar type (exact rationals, float64)
//   - Defective recursive formulas surface as a cycle error, not a hang
//
// Evaluation is single-threaded and depth-first; the call stack is the
// evaluation order. A Series is not safe for concurrent use.
package powser

import "github.com/pkg/errors"

// ============================================================
// Series — lazy memoized coefficient sequence
// ============================================================

// Series is a logically infinite sequence of coefficients over a Field.
// Coefficients are produced by a rule closure and cached in an append-only
// memo table, always filled in increasing index order. Operators never
// mutate their operands; they build new Series whose rules pull from the
// operands' memo tables.
type Series[T any] struct {
	field Field[T]
	rule  func(n int) T
	memo  []T
	busy  bool
}

// cyclePanic travels from the reentrancy guard to the Coefficient boundary,
// where it becomes ErrEvaluationCycle.
type cyclePanic struct{ index int }

// New builds a Series from a coefficient rule. The rule is called at most
// once per index, in increasing index order, and may read coefficients of
// other Series (or already-cached lower coefficients of this one).
func New[T any](field Field[T], rule func(n int) T) *Series[T] {
	return &Series[T]{field: field, rule: rule}
}

// FromCoefficients builds a Series from a finite literal list, implicitly
// zero-padded beyond its length.
func FromCoefficients[T any](field Field[T], coeffs ...T) *Series[T] {
	c := make([]T, len(coeffs))
	copy(c, coeffs)
	return New(field, func(n int) T {
		if n < len(c) {
			return c[n]
		}
		return field.Zero()
	})
}

// Constant builds the series with k as its only nonzero term.
func Constant[T any](field Field[T], k T) *Series[T] {
	return FromCoefficients(field, k)
}

// Field returns the scalar field this series computes over.
func (s *Series[T]) Field() Field[T] { return s.field }

// Coefficient returns the coefficient at index n (n >= 0, panics
// otherwise). The result is memoized: repeated access is idempotent and
// returns the identical value. If evaluating index n transitively requires
// index n of this same series before it is cached, the recursive definition
// is defective and ErrEvaluationCycle is returned.
func (s *Series[T]) Coefficient(n int) (coeff T, err error) {
	defer func() {
		r := recover()
		switch v := r.(type) {
		case nil:
		case cyclePanic:
			err = errors.Wrapf(ErrEvaluationCycle, "coefficient %d", v.index)
		case error:
			// A rule that reads through At re-wraps the cycle as an error
			// panic; keep converting it at every boundary on the way out.
			if !errors.Is(v, ErrEvaluationCycle) {
				panic(r)
			}
			err = v
		default:
			panic(r)
		}
	}()
	return s.at(n), nil
}

// At is Coefficient without the error return; it panics on a cycle. Meant
// for series known to be well-formed, e.g. catalog series in tests.
func (s *Series[T]) At(n int) T {
	c, err := s.Coefficient(n)
	if err != nil {
		panic(err)
	}
	return c
}

// at serves cached coefficients and extends the memo table, in strictly
// increasing index order, up to n. The busy flag is the reentrancy guard:
// while the table is being extended, nested reads may only touch indices
// already cached. A read past the cache from inside the extension would
// recurse forever, so it panics with cyclePanic instead.
func (s *Series[T]) at(n int) T {
	if n < 0 {
		panic("powser: negative coefficient index")
	}
	if n < len(s.memo) {
		return s.memo[n]
	}
	if s.busy {
		panic(cyclePanic{index: n})
	}
	s.busy = true
	defer func() { s.busy = false }()
	for k := len(s.memo); k <= n; k++ {
		s.memo = append(s.memo, s.rule(k))
	}
	return s.memo[n]
}

// Head returns the constant term, coefficient 0.
func (s *Series[T]) Head() (T, error) { return s.Coefficient(0) }

// Tail returns the series with the constant term dropped and the remaining
// coefficients shifted down one index. It is a lazy index-shifted view of
// the original, not a copy.
func (s *Series[T]) Tail() *Series[T] {
	return New(s.field, func(n int) T { return s.at(n + 1) })
}

// Coefficients returns the first n coefficients. This is the truncation
// surface a partial-sum evaluation layer consumes.
func (s *Series[T]) Coefficients(n int) ([]T, error) {
	out := make([]T, 0, n)
	for k := 0; k < n; k++ {
		c, err := s.Coefficient(k)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// AgreesWith reports whether s and g have equal coefficients at every index
// below terms. Termwise equality over a truncation is the only equality a
// formal power series supports.
func (s *Series[T]) AgreesWith(g *Series[T], terms int) (bool, error) {
	for k := 0; k < terms; k++ {
		a, err := s.Coefficient(k)
		if err != nil {
			return false, err
		}
		b, err := g.Coefficient(k)
		if err != nil {
			return false, err
		}
		if !s.field.Equal(a, b) {
			return false, nil
		}
	}
	return true, nil
}
