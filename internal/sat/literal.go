package sat

import "fmt"

// Literal is a literal code: a nonnegative integer naming either a variable
// or its negation. For the 0-based variable v, the positive literal is
// 2*v and the negative literal is 2*v+1, so the two differ only in their
// low bit and negation is a bit flip.
type Literal int

// VarID returns the 0-based index of the variable l belongs to.
func (l Literal) VarID() int {
	return int(l) >> 1
}

// IsPositive returns true if and only if the literal represents the value of
// its boolean variable (i.e. not its negation).
func (l Literal) IsPositive() bool {
	return l&1 == 0
}

// Negate returns the literal's negation. Negate is an involution:
// l.Negate().Negate() == l for every l.
func (l Literal) Negate() Literal {
	return l ^ 1
}

func (l Literal) String() string {
	if l.IsPositive() {
		return fmt.Sprintf("%d", l.VarID()+1)
	}
	return fmt.Sprintf("-%d", l.VarID()+1)
}

// PositiveLiteral returns the unnegated literal of the 0-based variable v.
func PositiveLiteral(v int) Literal {
	return Literal(v << 1)
}

// NegativeLiteral returns the negated literal of the 0-based variable v.
func NegativeLiteral(v int) Literal {
	return PositiveLiteral(v).Negate()
}

// LitFromInt converts a signed DIMACS literal representation into its
// Literal code. repr must be nonzero: positive values map to the positive
// literal of variable repr-1, negative values to the negative literal of
// variable -repr-1.
func LitFromInt(repr int) Literal {
	if repr == 0 {
		panic("sat: LitFromInt called with repr == 0")
	}
	if repr > 0 {
		return PositiveLiteral(repr - 1)
	}
	return NegativeLiteral(-repr - 1)
}

// IntFromLit is the inverse of LitFromInt: IntFromLit(LitFromInt(n)) == n for
// every nonzero n in range.
func IntFromLit(l Literal) int {
	if l.IsPositive() {
		return l.VarID() + 1
	}
	return -(l.VarID() + 1)
}
