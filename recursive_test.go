package powser_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	powser "github.com/njchilds90/go-powser"
)

// ============================================================
// Mul
// ============================================================

func TestMul_Convolution(t *testing.T) {
	// (1 + 2x + 3x^2)(4 + 5x + 6x^2) = 4 + 13x + 28x^2 + 27x^3 + 18x^4
	p := ratSeries(1, 2, 3).Mul(ratSeries(4, 5, 6))
	requireAgrees(t, ratSeries(4, 13, 28, 27, 18), p, 8)
}

func TestMul_ByOne(t *testing.T) {
	s := ratSeries(7, -2, 5)
	requireAgrees(t, s, s.Mul(powser.One(powser.Rationals())), 8)
}

func TestMul_Commutes(t *testing.T) {
	f, g := ratSeries(1, 1, 2, 3), ratSeries(2, 0, -1)
	requireAgrees(t, f.Mul(g), g.Mul(f), 10)
}

func TestMul_MatchesConvolutionSum(t *testing.T) {
	fl := powser.Rationals()
	f, g := ratSeries(2, -1, 3, 0, 5), ratSeries(1, 4, -2, 6)
	p := f.Mul(g)
	for n := 0; n < 10; n++ {
		want := rat(0, 1)
		for k := 0; k <= n; k++ {
			want = fl.Add(want, fl.Mul(f.At(k), g.At(n-k)))
		}
		requireRatEqual(t, want, p.At(n), "coefficient %d", n)
	}
}

// ============================================================
// Compose
// ============================================================

func TestCompose_WithX_IsIdentity(t *testing.T) {
	s := ratSeries(3, 1, 4, 1, 5)
	c, err := s.Compose(powser.X(powser.Rationals()))
	require.NoError(t, err)
	requireAgrees(t, s, c, 10)
}

func TestCompose_SubstitutesInner(t *testing.T) {
	// (1 + y^2) with y = 2x gives 1 + 4x^2.
	f := ratSeries(1, 0, 1)
	g := ratSeries(0, 2)
	c, err := f.Compose(g)
	require.NoError(t, err)
	requireAgrees(t, ratSeries(1, 0, 4), c, 6)
}

func TestCompose_NonzeroInnerHead_FailsEagerly(t *testing.T) {
	// Scenario: the precondition fires at Compose time, before any
	// coefficient past index 0 is touched.
	fl := powser.Rationals()
	reads := 0
	g := powser.New(fl, func(n int) *big.Rat {
		reads++
		return rat(1, 1)
	})
	_, err := ratSeries(1, 1).Compose(g)
	require.ErrorIs(t, err, powser.ErrZeroConstantRequired)
	require.Equal(t, 1, reads, "only the constant term may be read")
}

// ============================================================
// Exp
// ============================================================

func TestExp_OfX_IsFactorialReciprocals(t *testing.T) {
	e, err := ratSeries(0, 1).Exp()
	require.NoError(t, err)
	factorial := big.NewInt(1)
	for n := 0; n < 10; n++ {
		if n > 0 {
			factorial.Mul(factorial, big.NewInt(int64(n)))
		}
		want := new(big.Rat).SetFrac(big.NewInt(1), new(big.Int).Set(factorial))
		requireRatEqual(t, want, e.At(n), "coefficient %d", n)
	}
}

func TestExp_OfZero_IsOne(t *testing.T) {
	e, err := powser.Zero(powser.Rationals()).Exp()
	require.NoError(t, err)
	requireAgrees(t, ratSeries(1), e, 8)
}

func TestExp_NonzeroHead(t *testing.T) {
	_, err := ratSeries(1, 1).Exp()
	require.ErrorIs(t, err, powser.ErrZeroConstantRequired)
}

// ============================================================
// Reciprocal / Div
// ============================================================

func TestReciprocal_OfOneMinusX_IsGeometric(t *testing.T) {
	// 1/(1-x) = 1 + x + x^2 + ...
	r, err := ratSeries(1, -1).Reciprocal()
	require.NoError(t, err)
	requireAgrees(t, powser.Geometric(powser.Rationals()), r, 12)
}

func TestReciprocal_Law(t *testing.T) {
	f := ratSeries(2, 5, -3, 7)
	r, err := f.Reciprocal()
	require.NoError(t, err)
	requireAgrees(t, powser.One(powser.Rationals()), f.Mul(r), 12)
}

func TestReciprocal_ZeroHead(t *testing.T) {
	_, err := ratSeries(0, 1).Reciprocal()
	require.ErrorIs(t, err, powser.ErrNonzeroConstantRequired)
}

func TestDiv_BySelf_IsOne(t *testing.T) {
	f := ratSeries(3, 1, 4)
	q, err := f.Div(f)
	require.NoError(t, err)
	requireAgrees(t, powser.One(powser.Rationals()), q, 10)
}

func TestDiv_ZeroHeadDivisor(t *testing.T) {
	_, err := ratSeries(1).Div(ratSeries(0, 1))
	require.ErrorIs(t, err, powser.ErrNonzeroConstantRequired)
}

// ============================================================
// Inverse
// ============================================================

func TestInverse_OfX_IsX(t *testing.T) {
	x := powser.X(powser.Rationals())
	inv, err := x.Inverse()
	require.NoError(t, err)
	requireAgrees(t, x, inv, 10)
}

func TestInverse_Law(t *testing.T) {
	// compose(F, inverse(F)) = x
	f := ratSeries(0, 1, 1)
	inv, err := f.Inverse()
	require.NoError(t, err)
	c, err := f.Compose(inv)
	require.NoError(t, err)
	requireAgrees(t, powser.X(powser.Rationals()), c, 8)
}

func TestInverse_Involution(t *testing.T) {
	f := ratSeries(0, 2, -1, 3)
	inv, err := f.Inverse()
	require.NoError(t, err)
	back, err := inv.Inverse()
	require.NoError(t, err)
	requireAgrees(t, f, back, 8)
}

func TestInverse_NonzeroHead(t *testing.T) {
	_, err := ratSeries(1, 1).Inverse()
	require.ErrorIs(t, err, powser.ErrZeroConstantRequired)
}

func TestInverse_ZeroFirstOrder(t *testing.T) {
	_, err := ratSeries(0, 0, 1).Inverse()
	require.ErrorIs(t, err, powser.ErrDegenerateInverse)
}

// ============================================================
// Sqrt
// ============================================================

func TestSqrt_PerfectSquareConstant(t *testing.T) {
	// sqrt(4) = 2; squaring recovers the original.
	f := ratSeries(4)
	s, err := f.Sqrt()
	require.NoError(t, err)
	requireRatEqual(t, rat(2, 1), s.At(0))
	requireAgrees(t, f, s.Mul(s), 8)
}

func TestSqrt_Squares(t *testing.T) {
	f := ratSeries(1, 2, 1) // (1+x)^2
	s, err := f.Sqrt()
	require.NoError(t, err)
	requireAgrees(t, ratSeries(1, 1), s, 8)
}

func TestSqrt_ZeroHead(t *testing.T) {
	_, err := ratSeries(0, 1).Sqrt()
	require.ErrorIs(t, err, powser.ErrNonzeroConstantRequired)
}

func TestSqrt_NegativeHead(t *testing.T) {
	_, err := ratSeries(-4).Sqrt()
	require.ErrorIs(t, err, powser.ErrNoPrincipalRoot)
}

func TestSqrt_Reals_IrrationalRoot(t *testing.T) {
	fl := powser.Reals()
	f := powser.FromCoefficients(fl, 2, 1, 0.5)
	s, err := f.Sqrt()
	require.NoError(t, err)
	sq := s.Mul(s)
	for n := 0; n < 8; n++ {
		require.InDelta(t, f.At(n), sq.At(n), 1e-12, "coefficient %d", n)
	}
}

// ============================================================
// Log1p
// ============================================================

func TestLog1p_OfX_IsAltHarmonic(t *testing.T) {
	// log(1+x) = x - x^2/2 + x^3/3 - ...
	l, err := ratSeries(0, 1).Log1p()
	require.NoError(t, err)
	requireAgrees(t, powser.AltHarmonic(powser.Rationals()), l, 12)
}

func TestLog1p_OfZero_IsZero(t *testing.T) {
	l, err := powser.Zero(powser.Rationals()).Log1p()
	require.NoError(t, err)
	requireAgrees(t, powser.Zero(powser.Rationals()), l, 8)
}

func TestLog1p_NonzeroHead(t *testing.T) {
	_, err := ratSeries(2, 1).Log1p()
	require.ErrorIs(t, err, powser.ErrZeroConstantRequired)
}

func TestExpLog_RoundTrips(t *testing.T) {
	f := ratSeries(0, 1, -2, 3)

	// log1p(exp(F) - 1) = F
	e, err := f.Exp()
	require.NoError(t, err)
	back, err := e.AddScalar(rat(-1, 1)).Log1p()
	require.NoError(t, err)
	requireAgrees(t, f, back, 10)

	// exp(log1p(F)) = 1 + F
	l, err := f.Log1p()
	require.NoError(t, err)
	el, err := l.Exp()
	require.NoError(t, err)
	requireAgrees(t, f.AddScalar(rat(1, 1)), el, 10)
}
