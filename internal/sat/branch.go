package sat

// weight approximates MOMS / Jeroslow-Wang, biased toward variables that
// appear in many short active clauses: a crude but cheap proxy for how
// constraining a branch is likely to be.
func weight(nFreeLits int) int {
	switch nFreeLits {
	case 2:
		return 4
	case 3:
		return 2
	default:
		return 1
	}
}

// updateScores recomputes every non-fixed literal's branching score from
// scratch, as the sum over its unsatisfied occurrence-list clauses of
// weight(nFreeLits). Satisfied clauses and fixed literals contribute
// nothing. Scores are scratch state: nothing persists across calls.
func (s *Solver) updateScores() {
	for i := range s.lits {
		s.lits[i].score = 0
	}

	for i := range s.lits {
		ls := &s.lits[i]
		if ls.fixed {
			continue
		}
		for _, idx := range ls.contClauses {
			c := &s.clauses[idx]
			if c.nAssignedTrue != 0 {
				continue
			}
			ls.score += weight(c.nFreeLits)
		}
	}
}

// chooseBranch refreshes the scores and selects the next branching literal.
// The combined score of variable v is (score(+v)+1) * (score(-v)+1); the
// first variable to strictly improve on the running maximum wins, and ties
// between a variable's two polarities favor the positive literal.
//
// Precondition: at least one variable is unassigned and at least one clause
// is unsatisfied.
func (s *Solver) chooseBranch() Literal {
	s.updateScores()

	var bestLit Literal
	bestScore := 0

	for v := 0; v < s.numVars; v++ {
		pos := PositiveLiteral(v)
		if s.lits[pos].fixed {
			continue
		}

		neg := pos.Negate()
		a := s.lits[pos].score
		b := s.lits[neg].score
		score := (a + 1) * (b + 1)

		if score > bestScore {
			bestScore = score
			if a >= b {
				bestLit = pos
			} else {
				bestLit = neg
			}
		}
	}

	return bestLit
}
