package powser

// ============================================================
// Catalog — well-known series
// ============================================================
//
// Constructors for the classic series, built out of the engine itself. The
// transcendental ones are defined by the differential equation they solve,
// as self-referential integrals, rather than by factorial term formulas:
// the integral yields its constant immediately, so each series can appear
// inside its own definition.

// Zero returns the zero series.
func Zero[T any](field Field[T]) *Series[T] {
	return New(field, func(int) T { return field.Zero() })
}

// One returns the constant series 1.
func One[T any](field Field[T]) *Series[T] {
	return Constant(field, field.One())
}

// X returns the identity series x, the unit of composition.
func X[T any](field Field[T]) *Series[T] {
	return Monomial(field, 1, field.One())
}

// Monomial returns coeff * x**n.
func Monomial[T any](field Field[T], n int, coeff T) *Series[T] {
	return New(field, func(k int) T {
		if k == n {
			return coeff
		}
		return field.Zero()
	})
}

// Geometric returns 1 + x + x**2 + ..., the expansion of 1/(1-x).
func Geometric[T any](field Field[T]) *Series[T] {
	return New(field, func(int) T { return field.One() })
}

// AltGeometric returns 1 - x + x**2 - ..., the expansion of 1/(1+x).
func AltGeometric[T any](field Field[T]) *Series[T] {
	return New(field, func(n int) T {
		if n%2 == 1 {
			return field.Neg(field.One())
		}
		return field.One()
	})
}

// Naturals returns the series with coefficient n at index n.
func Naturals[T any](field Field[T]) *Series[T] {
	return New(field, func(n int) T { return field.FromInt(int64(n)) })
}

// Harmonic returns 0, 1, 1/2, 1/3, ..., the expansion of -log(1-x).
func Harmonic[T any](field Field[T]) *Series[T] {
	return Geometric(field).Integrate(field.Zero())
}

// AltHarmonic returns 0, 1, -1/2, 1/3, ..., the expansion of log(1+x).
func AltHarmonic[T any](field Field[T]) *Series[T] {
	return AltGeometric(field).Integrate(field.Zero())
}

// ExpSeries returns the exponential series: the unique solution of
// dy/dx = y with y(0) = 1.
func ExpSeries[T any](field Field[T]) *Series[T] {
	var e, body *Series[T]
	e = New(field, func(n int) T {
		if body == nil {
			body = e.Integrate(field.One())
		}
		return body.at(n)
	})
	return e
}

// SinSeries returns the sine series: d2y/dx2 = -y, y(0) = 0, y'(0) = 1.
func SinSeries[T any](field Field[T]) *Series[T] {
	var sin, body *Series[T]
	sin = New(field, func(n int) T {
		if body == nil {
			body = sin.Neg().Integrate(field.One()).Integrate(field.Zero())
		}
		return body.at(n)
	})
	return sin
}

// CosSeries returns the cosine series: d2y/dx2 = -y, y(0) = 1, y'(0) = 0.
func CosSeries[T any](field Field[T]) *Series[T] {
	var cos, body *Series[T]
	cos = New(field, func(n int) T {
		if body == nil {
			body = cos.Neg().Integrate(field.Zero()).Integrate(field.One())
		}
		return body.at(n)
	})
	return cos
}

// TanSeries returns the tangent series: dy/dx = 1 + y**2, y(0) = 0.
func TanSeries[T any](field Field[T]) *Series[T] {
	var tan, body *Series[T]
	tan = New(field, func(n int) T {
		if body == nil {
			body = tan.Mul(tan).AddScalar(field.One()).Integrate(field.Zero())
		}
		return body.at(n)
	})
	return tan
}

// SecSeries returns the secant series, from d(sec)/dx = sec * tan.
func SecSeries[T any](field Field[T]) *Series[T] {
	tan := TanSeries(field)
	var sec, body *Series[T]
	sec = New(field, func(n int) T {
		if body == nil {
			body = sec.Mul(tan).Integrate(field.One())
		}
		return body.at(n)
	})
	return sec
}

// SinhSeries returns the hyperbolic sine: d2y/dx2 = y, y(0) = 0, y'(0) = 1.
func SinhSeries[T any](field Field[T]) *Series[T] {
	var sinh, body *Series[T]
	sinh = New(field, func(n int) T {
		if body == nil {
			body = sinh.Integrate(field.One()).Integrate(field.Zero())
		}
		return body.at(n)
	})
	return sinh
}

// CoshSeries returns the hyperbolic cosine: d2y/dx2 = y, y(0) = 1, y'(0) = 0.
func CoshSeries[T any](field Field[T]) *Series[T] {
	var cosh, body *Series[T]
	cosh = New(field, func(n int) T {
		if body == nil {
			body = cosh.Integrate(field.Zero()).Integrate(field.One())
		}
		return body.at(n)
	})
	return cosh
}

// TanhSeries returns the hyperbolic tangent: dy/dx = 1 - y**2, y(0) = 0.
func TanhSeries[T any](field Field[T]) *Series[T] {
	var tanh, body *Series[T]
	tanh = New(field, func(n int) T {
		if body == nil {
			body = tanh.Mul(tanh).Neg().AddScalar(field.One()).Integrate(field.Zero())
		}
		return body.at(n)
	})
	return tanh
}

// SechSeries returns the hyperbolic secant, from d(sech)/dx = -sech * tanh.
func SechSeries[T any](field Field[T]) *Series[T] {
	tanh := TanhSeries(field)
	var sech, body *Series[T]
	sech = New(field, func(n int) T {
		if body == nil {
			body = sech.Mul(tanh).Neg().Integrate(field.One())
		}
		return body.at(n)
	})
	return sech
}

// ArcsinSeries returns arcsin, the integral of 1/sqrt(1 - x**2).
func ArcsinSeries[T any](field Field[T]) *Series[T] {
	one := field.One()
	oneMinusX2 := FromCoefficients(field, one, field.Zero(), field.Neg(one))
	return recipSeries(mustSeries(oneMinusX2.Sqrt())).Integrate(field.Zero())
}

// ArctanSeries returns arctan, the integral of 1/(1 + x**2).
func ArctanSeries[T any](field Field[T]) *Series[T] {
	one := field.One()
	onePlusX2 := FromCoefficients(field, one, field.Zero(), one)
	return recipSeries(onePlusX2).Integrate(field.Zero())
}

// ArcsinhSeries returns arcsinh, the integral of 1/sqrt(1 + x**2).
func ArcsinhSeries[T any](field Field[T]) *Series[T] {
	one := field.One()
	onePlusX2 := FromCoefficients(field, one, field.Zero(), one)
	return recipSeries(mustSeries(onePlusX2.Sqrt())).Integrate(field.Zero())
}

// ArctanhSeries returns arctanh, the integral of 1/(1 - x**2).
func ArctanhSeries[T any](field Field[T]) *Series[T] {
	one := field.One()
	oneMinusX2 := FromCoefficients(field, one, field.Zero(), field.Neg(one))
	return recipSeries(oneMinusX2).Integrate(field.Zero())
}

// mustSeries unwraps operators whose preconditions hold by construction.
func mustSeries[T any](s *Series[T], err error) *Series[T] {
	if err != nil {
		panic(err)
	}
	return s
}
