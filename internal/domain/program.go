package domain

// Sense of the objective.
type Sense int

const (
	Maximize Sense = iota
	Minimize
)

// Variable is a binary decision: "this candidate's driver takes this candidate's route".
type Variable struct {
	Name      string
	Candidate Candidate
	Objective float64
}

// Constraint bounds the sum of the referenced binary variables from above.
// Vars are zero-based indexes into Program.Variables.
type Constraint struct {
	Name  string
	Vars  []int
	Upper float64
}

// Program is the integer assignment program handed to a solver.
// It is built once per run and never mutated after construction.
type Program struct {
	Name        string
	Sense       Sense
	Variables   []Variable
	Constraints []Constraint
}

// Empty reports whether the program has no decision variables.
// An empty program is trivially solved by selecting nothing.
func (p *Program) Empty() bool {
	return p == nil || len(p.Variables) == 0
}

// SolveStatus is the solver's verdict on the returned values.
type SolveStatus int

const (
	StatusOptimal SolveStatus = iota
	StatusFeasible
)

func (s SolveStatus) String() string {
	if s == StatusFeasible {
		return "feasible"
	}
	return "optimal"
}

// SolverResult carries one value per program variable, in the same order.
type SolverResult struct {
	Status    SolveStatus
	Values    []float64
	Objective float64
}
