package dimacs

import (
	"fmt"
	"os"

	extdimacs "github.com/rhartert/dimacs"
)

// modelBuilder implements extdimacs.Builder to read a ".cnf.models" fixture:
// a DIMACS-clause-shaped file with no problem line, where each "clause" is
// really one enumerated model, one variable's signed literal per entry.
type modelBuilder struct {
	models [][]bool
}

func (b *modelBuilder) Problem(_ string, _, _ int) error {
	return fmt.Errorf("model files should not have problem lines")
}

func (b *modelBuilder) Comment(_ string) error {
	return nil // ignore comments
}

func (b *modelBuilder) Clause(tmpClause []int) error {
	model := make([]bool, len(tmpClause))
	for i, l := range tmpClause {
		model[i] = l > 0
	}
	b.models = append(b.models, model)
	return nil
}

// ParseModels reads every model enumerated in a golden ".cnf.models" fixture
// file, used only by tests to check a solved instance's model set.
func ParseModels(filename string) ([][]bool, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	b := &modelBuilder{}
	if err := extdimacs.ReadBuilder(file, b); err != nil {
		return nil, err
	}

	return b.models, nil
}
