package powser

import (
	"math"
	"math/big"

	"github.com/pkg/errors"
)

// ============================================================
// Field — scalar arithmetic contract
// ============================================================

// Field describes the scalar arithmetic a Series needs: a field-like type
// with addition, subtraction, multiplication, division, an exact test for
// zero, and a principal square root. Exactness of IsZero matters: the
// precondition checks in the recursive operators rely on it.
//
// Div panics on a zero divisor. Every division performed by the engine sits
// behind an eagerly checked precondition, so a zero divisor inside a
// coefficient rule is a programming error, not a recoverable condition.
type Field[T any] interface {
	Zero() T
	One() T
	FromInt(n int64) T
	Add(a, b T) T
	Sub(a, b T) T
	Neg(a T) T
	Mul(a, b T) T
	Div(a, b T) T
	IsZero(a T) bool
	Equal(a, b T) bool
	Sqrt(a T) (T, error)
}

// ============================================================
// Rationals — exact arithmetic over *big.Rat
// ============================================================

// ratSqrtPrec is the mantissa precision used when a rational square root is
// not exact and has to go through big.Float.
const ratSqrtPrec = 128

type ratOps struct{}

// Rationals returns the exact rational field over *big.Rat. Values are
// treated as immutable; every operation allocates a fresh *big.Rat.
func Rationals() Field[*big.Rat] { return ratOps{} }

func (ratOps) Zero() *big.Rat            { return new(big.Rat) }
func (ratOps) One() *big.Rat             { return big.NewRat(1, 1) }
func (ratOps) FromInt(n int64) *big.Rat  { return big.NewRat(n, 1) }
func (ratOps) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }
func (ratOps) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }
func (ratOps) Neg(a *big.Rat) *big.Rat    { return new(big.Rat).Neg(a) }
func (ratOps) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }
func (ratOps) IsZero(a *big.Rat) bool     { return a.Sign() == 0 }
func (ratOps) Equal(a, b *big.Rat) bool   { return a.Cmp(b) == 0 }

func (ratOps) Div(a, b *big.Rat) *big.Rat {
	if b.Sign() == 0 {
		panic("powser: division by zero")
	}
	return new(big.Rat).Quo(a, b)
}

// Sqrt returns the principal square root. It is exact whenever numerator
// and denominator are perfect squares; otherwise the root is irrational and
// a 128-bit big.Float approximation is converted back to a rational.
func (ratOps) Sqrt(a *big.Rat) (*big.Rat, error) {
	if a.Sign() < 0 {
		return nil, errors.Wrap(ErrNoPrincipalRoot, "negative rational")
	}
	if a.Sign() == 0 {
		return new(big.Rat), nil
	}
	if num, ok := exactIntSqrt(a.Num()); ok {
		if den, ok := exactIntSqrt(a.Denom()); ok {
			return new(big.Rat).SetFrac(num, den), nil
		}
	}
	f := new(big.Float).SetPrec(ratSqrtPrec).SetRat(a)
	r, _ := f.Sqrt(f).Rat(nil)
	return r, nil
}

func exactIntSqrt(n *big.Int) (*big.Int, bool) {
	r := new(big.Int).Sqrt(n)
	if new(big.Int).Mul(r, r).Cmp(n) == 0 {
		return r, true
	}
	return nil, false
}

// ============================================================
// Reals — float64 arithmetic
// ============================================================

type realOps struct{}

// Reals returns the float64 field. The zero test is exact (== 0), so the
// precondition failures in the recursive operators stay sharp; callers who
// feed in rounded data should clean it up first.
func Reals() Field[float64] { return realOps{} }

func (realOps) Zero() float64           { return 0 }
func (realOps) One() float64            { return 1 }
func (realOps) FromInt(n int64) float64 { return float64(n) }
func (realOps) Add(a, b float64) float64 { return a + b }
func (realOps) Sub(a, b float64) float64 { return a - b }
func (realOps) Neg(a float64) float64    { return -a }
func (realOps) Mul(a, b float64) float64 { return a * b }
func (realOps) IsZero(a float64) bool    { return a == 0 }
func (realOps) Equal(a, b float64) bool  { return a == b }

func (realOps) Div(a, b float64) float64 {
	if b == 0 {
		panic("powser: division by zero")
	}
	return a / b
}

func (realOps) Sqrt(a float64) (float64, error) {
	if a < 0 {
		return 0, errors.Wrap(ErrNoPrincipalRoot, "negative real")
	}
	return math.Sqrt(a), nil
}
