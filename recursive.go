package powser

import "github.com/pkg/errors"

// ============================================================
// Recursive derived operators
// ============================================================
//
// Each operator here is defined in terms of itself or of the same operator
// on tails of its operands. The definitions terminate because coefficient n
// of every result depends only on coefficients < n of any self-referenced
// series; the Integrate constant and the explicit leading terms below are
// what bottom the recursion out.
//
// The exported methods validate preconditions eagerly, reading only
// coefficient 0 (and, for Inverse, coefficient 1) of the operands, and wrap
// the sentinel errors with the operator name. The unexported builders
// assume preconditions hold.

// Mul returns the product s*g, via the convolution identity
//
//	F*G = f0*g0 + x*(f0*G1 + g0*F1 + x*(F1*G1))
//
// where F1, G1 are the tails. The recursive call operates on tails, so each
// level of recursion handles one lower coefficient index.
func (s *Series[T]) Mul(g *Series[T]) *Series[T] {
	fl := s.field
	var rest *Series[T]
	return New(fl, func(n int) T {
		if n == 0 {
			return fl.Mul(s.at(0), g.at(0))
		}
		if rest == nil {
			f0, g0 := s.at(0), g.at(0)
			rest = s.Tail().Mul(g.Tail()).ShiftX().
				Add(g.Tail().Scale(f0)).
				Add(s.Tail().Scale(g0))
		}
		return rest.at(n - 1)
	})
}

// Compose returns s(g), substituting g for the variable of s. The inner
// series must have a zero constant term; anything else would need an
// infinite sum just for the constant term of the result.
func (s *Series[T]) Compose(g *Series[T]) (*Series[T], error) {
	g0, err := g.Coefficient(0)
	if err != nil {
		return nil, errors.Wrap(err, "compose")
	}
	if !s.field.IsZero(g0) {
		return nil, errors.Wrap(ErrZeroConstantRequired, "compose")
	}
	return composeSeries(s, g), nil
}

// composeSeries builds F(G) = f0 + x*(G1 * (tail F)(G)). Each level peels
// one coefficient off F while G stays fixed, so coefficient n of the result
// needs only coefficients <= n of G.
func composeSeries[T any](s, g *Series[T]) *Series[T] {
	var rest *Series[T]
	return New(s.field, func(n int) T {
		if n == 0 {
			return s.at(0)
		}
		if rest == nil {
			rest = g.Tail().Mul(composeSeries(s.Tail(), g))
		}
		return rest.at(n - 1)
	})
}

// Exp returns e**s for a series with zero constant term. From dE/dx = E*s'
// and E(0) = 1:
//
//	E = Integrate(E * s', 1)
//
// The self-reference is safe because the integral's constant term needs
// nothing, and coefficient n of the integral needs only coefficients < n
// of E.
func (s *Series[T]) Exp() (*Series[T], error) {
	if err := requireZeroHead(s, "exp"); err != nil {
		return nil, err
	}
	fl := s.field
	var e, body *Series[T]
	e = New(fl, func(n int) T {
		if body == nil {
			body = e.Mul(s.Differentiate()).Integrate(fl.One())
		}
		return body.at(n)
	})
	return e, nil
}

// Reciprocal returns 1/s for a series with nonzero constant term.
func (s *Series[T]) Reciprocal() (*Series[T], error) {
	c0, err := s.Coefficient(0)
	if err != nil {
		return nil, errors.Wrap(err, "reciprocal")
	}
	if s.field.IsZero(c0) {
		return nil, errors.Wrap(ErrNonzeroConstantRequired, "reciprocal")
	}
	return recipSeries(s), nil
}

// recipSeries builds R = (1/f0) * (1 - x*(F1*R)): coefficient 0 is 1/f0,
// coefficient n is -1/f0 times coefficient n-1 of F1*R, which only needs
// coefficients < n of R.
func recipSeries[T any](s *Series[T]) *Series[T] {
	fl := s.field
	var r, rest *Series[T]
	r = New(fl, func(n int) T {
		if n == 0 {
			return fl.Div(fl.One(), s.at(0))
		}
		if rest == nil {
			rest = s.Tail().Mul(r).Scale(fl.Neg(r.at(0)))
		}
		return rest.at(n - 1)
	})
	return r
}

// Div returns s/g, as s * (1/g); g needs a nonzero constant term.
func (s *Series[T]) Div(g *Series[T]) (*Series[T], error) {
	r, err := g.Reciprocal()
	if err != nil {
		return nil, errors.Wrap(err, "div")
	}
	return s.Mul(r), nil
}

// Inverse returns the functional inverse I of s, the series with
// s(I(x)) = x. Requires a zero constant term and a nonzero first-order
// coefficient. Writing F = x*F1 and I = x*I1 and expanding F(I) = x gives
//
//	I1 = (1/f1) * (1 - x * I1*I1 * (tail F1)(I))
//
// so coefficient n of I needs coefficient n-2 of I1*I1*(tail F1)(I), i.e.
// only coefficients < n of I. The composition runs against I while I is
// still under construction; that is legal because composition never needs
// high-order coefficients of its inner argument to produce low-order ones.
func (s *Series[T]) Inverse() (*Series[T], error) {
	if err := requireZeroHead(s, "inverse"); err != nil {
		return nil, err
	}
	f1, err := s.Coefficient(1)
	if err != nil {
		return nil, errors.Wrap(err, "inverse")
	}
	if s.field.IsZero(f1) {
		return nil, errors.Wrap(ErrDegenerateInverse, "inverse")
	}
	fl := s.field
	recip := fl.Div(fl.One(), f1)
	var inv, rest *Series[T]
	inv = New(fl, func(n int) T {
		switch n {
		case 0:
			return fl.Zero()
		case 1:
			return recip
		}
		if rest == nil {
			i1 := inv.Tail()
			f2 := s.Tail().Tail()
			rest = i1.Mul(i1).Mul(composeSeries(f2, inv)).Scale(fl.Neg(recip))
		}
		return rest.at(n - 2)
	})
	return inv, nil
}

// Sqrt returns the principal square root S of s, with S*S = s. The constant
// term must be nonzero (the construction divides by s0 + S, whose constant
// term is 2*s0) and must have a principal root in the scalar domain. From
// S = s0 + x*S1 and S*S = F:
//
//	S1 = F1 / (s0 + S)
func (s *Series[T]) Sqrt() (*Series[T], error) {
	c0, err := s.Coefficient(0)
	if err != nil {
		return nil, errors.Wrap(err, "sqrt")
	}
	fl := s.field
	if fl.IsZero(c0) {
		return nil, errors.Wrap(ErrNonzeroConstantRequired, "sqrt")
	}
	s0, err := fl.Sqrt(c0)
	if err != nil {
		return nil, errors.Wrap(err, "sqrt")
	}
	var root, rest *Series[T]
	root = New(fl, func(n int) T {
		if n == 0 {
			return s0
		}
		if rest == nil {
			rest = s.Tail().Mul(recipSeries(root.AddScalar(s0)))
		}
		return rest.at(n - 1)
	})
	return root, nil
}

// Log1p returns log(1+s) for a series with zero constant term (log itself
// diverges at zero, so the expansion is taken around 1). Defined as
//
//	L = Integrate(s' / (1+s), 0)
//
// with an exact zero constant because 1+s is 1 at x = 0. No self-reference
// is needed: 1+s has a nonzero constant term, so its reciprocal is direct.
func (s *Series[T]) Log1p() (*Series[T], error) {
	if err := requireZeroHead(s, "log1p"); err != nil {
		return nil, err
	}
	fl := s.field
	denom := recipSeries(s.AddScalar(fl.One()))
	return s.Differentiate().Mul(denom).Integrate(fl.Zero()), nil
}

func requireZeroHead[T any](s *Series[T], op string) error {
	c0, err := s.Coefficient(0)
	if err != nil {
		return errors.Wrap(err, op)
	}
	if !s.field.IsZero(c0) {
		return errors.Wrap(ErrZeroConstantRequired, op)
	}
	return nil
}
