package sat

import "time"

// Solver owns the entire mutable state of a CNF instance: literal states,
// clause states, the running satisfied/contradicted clause counters, the
// unit-propagation stack, and the assignment trail.
//
// A Solver is constructed with known (numVars, numClauses), populated
// clause by clause via AddLiteralToClause, solved exactly once via Solve,
// then inspected. Re-solving the same Solver is undefined.
type Solver struct {
	numVars int
	lits    []LitState
	clauses []ClauseState

	numSatClauses   int
	numUnsatClauses int

	unitStack *stack[Literal]
	trail     *stack[Literal]

	admitted bool

	// Solution is the verdict of the last call to Solve, or Unknown if the
	// Solver has not been solved yet.
	Solution Solution

	// Statistics.
	TotalBranches  int64
	TotalUnitProps int64
	startTime      time.Time
	stopTime       time.Time
}

// NewSolver returns a Solver for a formula over numVars variables with
// numClauses clauses, all initially empty. numVars must be positive; there
// may be zero clauses.
func NewSolver(numVars, numClauses int) *Solver {
	if numVars <= 0 {
		panic("sat: NewSolver requires at least one variable")
	}
	if numClauses < 0 {
		panic("sat: NewSolver requires a nonnegative clause count")
	}

	clauses := make([]ClauseState, numClauses)
	for i := range clauses {
		clauses[i] = newClauseState()
	}

	return &Solver{
		numVars:   numVars,
		lits:      make([]LitState, numVars<<1),
		clauses:   clauses,
		unitStack: newStack[Literal]((numVars << 1) + numClauses),
		trail:     newStack[Literal](numVars << 1),
	}
}

// NumVars returns the number of variables the Solver was constructed with.
func (s *Solver) NumVars() int {
	return s.numVars
}

// NumClauses returns the number of clauses the Solver was constructed with.
func (s *Solver) NumClauses() int {
	return len(s.clauses)
}

// IsAssigned reports whether the 0-based variable v currently has a value.
func (s *Solver) IsAssigned(v int) bool {
	return s.lits[PositiveLiteral(v)].fixed
}

// Model reports the value assigned to the 0-based variable v. Its result is
// meaningful only if IsAssigned(v) is true.
func (s *Solver) Model(v int) bool {
	return s.lits[PositiveLiteral(v)].assigned
}

// Elapsed returns the wall-clock duration of the last call to Solve.
func (s *Solver) Elapsed() time.Duration {
	return s.stopTime.Sub(s.startTime)
}

// AddLiteralToClause appends lit to clause clauseIdx, wiring it into lit's
// occurrence list. It is a no-op if lit already appears in the clause
// (clauses never hold duplicate literals).
func (s *Solver) AddLiteralToClause(clauseIdx int, lit Literal) {
	c := &s.clauses[clauseIdx]
	if !c.addLiteral(lit) {
		return
	}
	s.lits[lit].addContClause(clauseIdx)
}

// admitEmptyClauses is the one-time admission check called before the first
// search: a clause with zero literals is simultaneously satisfied-free and
// free-free, so it never passes through addFalseAssignment's contradiction
// transition. It must be counted as contradicted directly, once, before
// search begins.
func (s *Solver) admitEmptyClauses() {
	if s.admitted {
		return
	}
	s.admitted = true
	for i := range s.clauses {
		if len(s.clauses[i].lits) == 0 {
			s.numUnsatClauses++
		}
	}
}

// Solve runs the search to completion and records the verdict in
// s.Solution. Calling Solve more than once on the same Solver is undefined.
func (s *Solver) Solve() Solution {
	s.admitEmptyClauses()
	s.startTime = time.Now()
	s.Solution = s.SearchAssignments()
	s.stopTime = time.Now()
	return s.Solution
}

// addTrueAssignment records that one of c's literals has just been assigned
// true. Precondition: c.nFreeLits > 0.
func (s *Solver) addTrueAssignment(c *ClauseState) {
	if c.nAssignedTrue == 0 {
		s.numSatClauses++
	}
	c.nAssignedTrue++
	c.nFreeLits--
}

// addFalseAssignment records that one of clause clauses[clauseIdx]'s
// literals has just been assigned false. Precondition: nFreeLits > 0. The
// contradiction transition is checked before nFreeLits is decremented, and
// the resulting unit transition is checked after, because a single event
// can move a clause from 2-free to unit or from 1-free (unit) to
// contradicted.
func (s *Solver) addFalseAssignment(clauseIdx int) {
	c := &s.clauses[clauseIdx]

	if c.nAssignedTrue == 0 && c.nFreeLits == 1 {
		s.numUnsatClauses++
	}

	c.nAssignedFalse++
	c.nFreeLits--

	if c.nAssignedTrue == 0 && c.nFreeLits == 1 {
		s.unitStack.push(s.getUnit(clauseIdx))
	}
}

// undoTrueAssignment is the exact inverse of addTrueAssignment.
func (s *Solver) undoTrueAssignment(c *ClauseState) {
	c.nAssignedTrue--
	c.nFreeLits++
	if c.nAssignedTrue == 0 {
		s.numSatClauses--
	}
}

// undoFalseAssignment is the exact inverse of addFalseAssignment. It does
// not pop the unit stack; that is drained separately by the search loop.
func (s *Solver) undoFalseAssignment(c *ClauseState) {
	c.nAssignedFalse--
	c.nFreeLits++
	if c.nAssignedTrue == 0 && c.nFreeLits == 1 {
		s.numUnsatClauses--
	}
}

// getUnit returns the single free literal of the unit clause
// clauses[clauseIdx]. Precondition: the clause is unit (nFreeLits == 1 and
// nAssignedTrue == 0). Correctness depends on clauses never holding
// duplicate literals: with duplicates, nFreeLits could disagree with what
// this scan finds.
func (s *Solver) getUnit(clauseIdx int) Literal {
	c := &s.clauses[clauseIdx]
	for _, lit := range c.lits {
		if !s.lits[lit].fixed {
			return lit
		}
	}
	panic("sat: getUnit called on a clause with no free literal")
}

// makeAssignment assigns lit true (and its negation false), then propagates
// the consequences into every clause containing lit or its negation.
// Preconditions: neither lit nor lit.Negate() is currently fixed. The fixed
// flags are set before any counter updates because getUnit consults fixed
// while addFalseAssignment is updating counters.
func (s *Solver) makeAssignment(lit Literal) {
	neg := lit.Negate()

	s.lits[lit].fixed = true
	s.lits[lit].assigned = true
	s.lits[neg].fixed = true
	s.lits[neg].assigned = false

	for _, idx := range s.lits[lit].contClauses {
		s.addTrueAssignment(&s.clauses[idx])
	}
	for _, idx := range s.lits[neg].contClauses {
		s.addFalseAssignment(idx)
	}
}

// undoAssignment is the exact inverse of makeAssignment. The order in which
// true- and false-assignments are undone is not semantically required
// (these operations commute on the counters) but mirrors makeAssignment for
// ease of diffing.
func (s *Solver) undoAssignment(lit Literal) {
	neg := lit.Negate()

	for _, idx := range s.lits[lit].contClauses {
		s.undoTrueAssignment(&s.clauses[idx])
	}
	for _, idx := range s.lits[neg].contClauses {
		s.undoFalseAssignment(&s.clauses[idx])
	}

	s.lits[lit].fixed = false
	s.lits[lit].assigned = false
	s.lits[neg].fixed = false
	s.lits[neg].assigned = false
}
