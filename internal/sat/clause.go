package sat

import (
	"strings"
)

// ClauseState is a single clause's literals plus the three O(1) counters
// that classify it as satisfied, unit, or contradictory without rescanning
// its literals:
//
//	satisfied    iff nAssignedTrue > 0
//	contradicted iff nAssignedTrue == 0 && nFreeLits == 0
//	unit         iff nAssignedTrue == 0 && nFreeLits == 1
//
// nAssignedTrue + nAssignedFalse + nFreeLits == len(lits) always holds.
type ClauseState struct {
	lits []Literal

	nAssignedTrue  int
	nAssignedFalse int
	nFreeLits      int
}

func newClauseState() ClauseState {
	return ClauseState{lits: make([]Literal, 0, 4)}
}

// addLiteral appends lit to the clause unless it already appears in it, so
// that a clause never holds two copies of the same literal. It reports
// whether lit was actually added.
func (c *ClauseState) addLiteral(lit Literal) bool {
	for _, l := range c.lits {
		if l == lit {
			return false
		}
	}
	c.lits = append(c.lits, lit)
	c.nFreeLits++
	return true
}

func (c *ClauseState) isSatisfied() bool {
	return c.nAssignedTrue > 0
}

func (c *ClauseState) isContradicted() bool {
	return c.nAssignedTrue == 0 && c.nFreeLits == 0
}

func (c *ClauseState) isUnit() bool {
	return c.nAssignedTrue == 0 && c.nFreeLits == 1
}

func (c *ClauseState) String() string {
	if len(c.lits) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c.lits[0].String())
	for _, l := range c.lits[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
