package powser

import "github.com/pkg/errors"

// Operator preconditions are checked eagerly, when the operator is applied,
// by reading at most coefficients 0 and 1 of the operands. Callers match
// these with errors.Is; wrapped variants carry the operator name.
var (
	// ErrZeroConstantRequired is returned by Compose (inner argument), Exp,
	// Inverse and Log1p when the operand's constant term is not zero.
	ErrZeroConstantRequired = errors.New("powser: constant term must be zero")

	// ErrNonzeroConstantRequired is returned by Reciprocal, Div and Sqrt
	// when the operand's constant term is exactly zero.
	ErrNonzeroConstantRequired = errors.New("powser: constant term must be nonzero")

	// ErrNoPrincipalRoot is returned by Sqrt when the constant term has no
	// principal square root in the scalar domain.
	ErrNoPrincipalRoot = errors.New("powser: constant term has no principal square root")

	// ErrDegenerateInverse is returned by Inverse when the first-order
	// coefficient is zero; no functional inverse exists.
	ErrDegenerateInverse = errors.New("powser: first-order coefficient must be nonzero")

	// ErrEvaluationCycle is returned by Coefficient when computing index n
	// re-enters the evaluation of index n on the same series before it is
	// cached. This marks a defective recursive definition, not normal use.
	ErrEvaluationCycle = errors.New("powser: coefficient evaluation cycle")
)
