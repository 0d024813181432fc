package sat

import "testing"

func TestClauseState_AddLiteral_DedupIsNoOp(t *testing.T) {
	c := newClauseState()

	if !c.addLiteral(Literal(4)) {
		t.Fatalf("addLiteral(4) on an empty clause = false, want true")
	}
	if c.addLiteral(Literal(4)) {
		t.Errorf("addLiteral(4) a second time = true, want false (C1 dedup)")
	}
	if len(c.lits) != 1 {
		t.Errorf("len(lits) = %d, want 1", len(c.lits))
	}
	if c.nFreeLits != 1 {
		t.Errorf("nFreeLits = %d, want 1", c.nFreeLits)
	}
}

func TestClauseState_Classification(t *testing.T) {
	tests := []struct {
		name           string
		nAssignedTrue  int
		nAssignedFalse int
		nFreeLits      int
		wantSatisfied  bool
		wantUnit       bool
		wantContra     bool
	}{
		{"all free", 0, 0, 3, false, false, false},
		{"satisfied", 1, 1, 1, true, false, false},
		{"unit", 0, 2, 1, false, true, false},
		{"contradicted", 0, 3, 0, false, false, true},
		{"empty clause", 0, 0, 0, false, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := ClauseState{
				nAssignedTrue:  tc.nAssignedTrue,
				nAssignedFalse: tc.nAssignedFalse,
				nFreeLits:      tc.nFreeLits,
			}
			if got := c.isSatisfied(); got != tc.wantSatisfied {
				t.Errorf("isSatisfied() = %v, want %v", got, tc.wantSatisfied)
			}
			if got := c.isUnit(); got != tc.wantUnit {
				t.Errorf("isUnit() = %v, want %v", got, tc.wantUnit)
			}
			if got := c.isContradicted(); got != tc.wantContra {
				t.Errorf("isContradicted() = %v, want %v", got, tc.wantContra)
			}
		})
	}
}
