package powser

// ============================================================
// Elementary operators
// ============================================================
//
// Structural transforms with no recursion-termination argument to make:
// coefficient n of the result reads a fixed coefficient of the operand.
// All of them are pure; none can fail.

// ShiftX returns x*s: a zero constant term, then the coefficients of s
// shifted up one index. Inverse of Tail up to the dropped head.
func (s *Series[T]) ShiftX() *Series[T] {
	return New(s.field, func(n int) T {
		if n == 0 {
			return s.field.Zero()
		}
		return s.at(n - 1)
	})
}

// AddScalar returns s + k: only the constant term changes.
func (s *Series[T]) AddScalar(k T) *Series[T] {
	return New(s.field, func(n int) T {
		if n == 0 {
			return s.field.Add(s.at(0), k)
		}
		return s.at(n)
	})
}

// Scale returns k*s. Scaling by zero or one short-circuits: the zero series
// needs no reads of s at all, and scaling by one is the identity.
func (s *Series[T]) Scale(k T) *Series[T] {
	fl := s.field
	if fl.IsZero(k) {
		return New(fl, func(int) T { return fl.Zero() })
	}
	if fl.Equal(k, fl.One()) {
		return s
	}
	return New(fl, func(n int) T { return fl.Mul(k, s.at(n)) })
}

// Add returns the termwise sum s + g.
func (s *Series[T]) Add(g *Series[T]) *Series[T] {
	return New(s.field, func(n int) T { return s.field.Add(s.at(n), g.at(n)) })
}

// Sub returns s - g.
func (s *Series[T]) Sub(g *Series[T]) *Series[T] {
	return New(s.field, func(n int) T { return s.field.Sub(s.at(n), g.at(n)) })
}

// Neg returns -s.
func (s *Series[T]) Neg() *Series[T] {
	return New(s.field, func(n int) T { return s.field.Neg(s.at(n)) })
}

// Differentiate returns ds/dx: coefficient n is (n+1) * s[n+1].
func (s *Series[T]) Differentiate() *Series[T] {
	fl := s.field
	return New(fl, func(n int) T {
		return fl.Mul(fl.FromInt(int64(n+1)), s.at(n+1))
	})
}

// Integrate returns the antiderivative of s with the given integration
// constant: coefficient 0 is the constant, coefficient n is s[n-1]/n.
//
// The constant term is available before any coefficient of s is touched.
// Every self-referential operator in this package (exp, the ODE-defined
// catalog series) threads its self-reference through an Integrate for
// exactly that reason.
func (s *Series[T]) Integrate(constant T) *Series[T] {
	fl := s.field
	return New(fl, func(n int) T {
		if n == 0 {
			return constant
		}
		return fl.Div(s.at(n-1), fl.FromInt(int64(n)))
	})
}
