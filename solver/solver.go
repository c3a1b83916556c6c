package solver

import (
	"context"
	"errors"
	"fmt"
	"strings"
	customerrors "workforce-planner/errors"
	"workforce-planner/models"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// Sense is the relation between a constraint row and its right-hand side.
type Sense int

const (
	Equal Sense = iota
	AtMost
	AtLeast
)

// Constraint is a single linear row: Coeffs · x  (Sense)  RHS.
// Coeffs must have one entry per problem variable.
type Constraint struct {
	Name   string
	Coeffs []float64
	Sense  Sense
	RHS    float64
}

// Problem is a linear program in minimization form over non-negative
// variables. VarNames is parallel to Minimize and exists for reporting only.
type Problem struct {
	Minimize    []float64
	VarNames    []string
	Constraints []Constraint
}

func (p *Problem) validate() error {
	if p == nil || len(p.Minimize) == 0 {
		return fmt.Errorf("problem has no variables")
	}
	if len(p.Constraints) == 0 {
		return fmt.Errorf("problem has no constraints")
	}
	for _, con := range p.Constraints {
		if len(con.Coeffs) != len(p.Minimize) {
			return fmt.Errorf("constraint %q has %d coefficients for %d variables",
				con.Name, len(con.Coeffs), len(p.Minimize))
		}
	}
	return nil
}

// Solution is the outcome of a solve. X holds one value per problem variable
// and is populated only when Status is Optimal.
type Solution struct {
	Status    models.Status
	Objective float64
	X         []float64
}

// Value returns the i'th variable of the solution, or 0 when the solution
// carries no variable vector.
func (s *Solution) Value(i int) float64 {
	if s == nil || i < 0 || i >= len(s.X) {
		return 0
	}
	return s.X[i]
}

// Solver turns a Problem into a Solution. Implementations must treat
// infeasible and unbounded programs as statuses, not errors.
type Solver interface {
	Solve(ctx context.Context, p *Problem) (*Solution, error)
}

// Simplex solves problems with gonum's dense simplex method. The zero value
// is ready to use: Tol 0 selects gonum's default tolerance and a nil Logger
// disables logging.
type Simplex struct {
	Tol    float64
	Logger *zap.Logger
}

type outcome struct {
	obj float64
	x   []float64
	err error
}

// Solve runs the simplex method on p. Cancellation of ctx abandons the solve
// and yields a NotSolved solution; the only error condition is the solver
// itself becoming unavailable.
func (s *Simplex) Solve(ctx context.Context, p *Problem) (*Solution, error) {
	log := s.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return &Solution{Status: models.StatusNotSolved}, nil
	}

	ch := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- outcome{err: recoveredError(r)}
			}
		}()
		c, a, b := standardize(p)
		obj, x, err := lp.Simplex(c, a, b, s.Tol, nil)
		ch <- outcome{obj: obj, x: x, err: err}
	}()

	select {
	case <-ctx.Done():
		log.Warn("solve abandoned", zap.Error(ctx.Err()))
		return &Solution{Status: models.StatusNotSolved}, nil
	case out := <-ch:
		return s.interpret(log, p, out)
	}
}

func (s *Simplex) interpret(log *zap.Logger, p *Problem, out outcome) (*Solution, error) {
	switch {
	case out.err == nil:
		// Slack values beyond the problem's own variables are dropped.
		return &Solution{
			Status:    models.StatusOptimal,
			Objective: out.obj,
			X:         out.x[:len(p.Minimize)],
		}, nil
	case errors.Is(out.err, lp.ErrInfeasible):
		return &Solution{Status: models.StatusInfeasible}, nil
	case errors.Is(out.err, lp.ErrUnbounded):
		return &Solution{Status: models.StatusUnbounded}, nil
	case errors.Is(out.err, customerrors.ErrSolverUnavailable):
		return nil, out.err
	default:
		log.Warn("simplex gave up", zap.Error(out.err))
		return &Solution{Status: models.StatusNotSolved}, nil
	}
}

// recoveredError converts a recovered panic into an error. The lp package
// panics with "lp:"-prefixed values on numerical failures in its phase I
// setup; those are ordinary solver give-ups and never mark the backend
// unavailable. Any other panic value does.
func recoveredError(r any) error {
	if msg := fmt.Sprint(r); strings.HasPrefix(msg, "lp:") {
		return fmt.Errorf("simplex panicked: %s", msg)
	}
	return fmt.Errorf("%w: %v", customerrors.ErrSolverUnavailable, r)
}

// standardize rewrites p as min c·x subject to A·x = b, x >= 0, b >= 0,
// adding one slack variable per inequality row. Slack columns carry zero
// cost, so the reported objective is unchanged.
func standardize(p *Problem) (c []float64, a *mat.Dense, b []float64) {
	n := len(p.Minimize)
	slacks := 0
	for _, con := range p.Constraints {
		if con.Sense != Equal {
			slacks++
		}
	}
	rows, cols := len(p.Constraints), n+slacks

	c = make([]float64, cols)
	copy(c, p.Minimize)
	b = make([]float64, rows)
	data := make([]float64, rows*cols)

	slack := n
	for i, con := range p.Constraints {
		row := data[i*cols : (i+1)*cols]
		sign := 1.0
		if con.Sense == AtLeast {
			sign = -1
		}
		for j, v := range con.Coeffs {
			row[j] = sign * v
		}
		rhs := sign * con.RHS
		if con.Sense != Equal {
			row[slack] = 1
			slack++
		}
		if rhs < 0 {
			for j := range row {
				row[j] = -row[j]
			}
			rhs = -rhs
		}
		b[i] = rhs
	}
	return c, mat.NewDense(rows, cols, data), b
}
