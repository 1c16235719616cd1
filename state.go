package bracket

import (
	"fmt"
	"log"
)

// Kind identifies the semantic category of a solver error, in the
// spirit of gonum/optimize.Status's enum-with-String() shape.
type Kind int

const (
	// NotABracket means sign(f(a))*sign(f(b)) > 0 on input.
	NotABracket Kind = iota + 1
	// UnboundedBracket means an endpoint was still infinite after the
	// +-Inf adjustment step.
	UnboundedBracket
	// BadTolerance means a negative tolerance was supplied.
	BadTolerance
	// MaxIterations means the iteration or function-evaluation cap was
	// hit without convergence.
	MaxIterations
)

func (k Kind) String() string {
	switch k {
	case NotABracket:
		return "not a bracket"
	case UnboundedBracket:
		return "unbounded bracket"
	case BadTolerance:
		return "bad tolerance"
	case MaxIterations:
		return "max iterations"
	default:
		return "unknown error kind"
	}
}

// SolverError reports an unrecoverable condition raised by a
// bracketing solver. Recoverable conditions — degenerate
// interpolation, a NaN secant step, a candidate leaving the bracket —
// are repaired internally by falling back to a safer step and never
// surface as a SolverError.
type SolverError struct {
	Kind    Kind
	A, B    float64
	Message string
}

func (e *SolverError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("bracket: %s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("bracket: %s [%g, %g]", e.Kind, e.A, e.B)
}

// HistoryPoint is one recorded solver iteration, captured when
// Options.Verbose is set. It feeds the trace package's convergence
// plots.
type HistoryPoint struct {
	Step   int
	A, B   float64
	Fa, Fb float64
}

// SolverState is the mutable state a bracketing solver carries between
// iterations: the current bracket, cached function values, and
// evaluation/convergence bookkeeping. A solver owns its SolverState
// exclusively for the duration of one call; the zero value is ready to
// use.
type SolverState struct {
	A, B      float64
	Fa, Fb    float64
	Steps     int
	FnEvals   int
	Converged bool
	Stopped   bool
	Message   string
	History   []HistoryPoint
}

func (st *SolverState) capExceeded(opts Options) bool {
	return opts.MaxFnEvals > 0 && st.FnEvals > opts.MaxFnEvals
}

func (st *SolverState) record(step int, a, b, fa, fb float64, opts Options) {
	st.Steps = step
	st.A, st.B, st.Fa, st.Fb = a, b, fa, fb
	if opts.Verbose {
		st.History = append(st.History, HistoryPoint{Step: step, A: a, B: b, Fa: fa, Fb: fb})
	}
	if opts.Logger != nil {
		opts.Logger.Printf("%d a=%.10g fa=%.5g b=%.10g fb=%.5g", step, a, fa, b, fb)
	}
}

const (
	defaultMaxEvals = 1000
)

// Options configures a solver: tolerances, iteration caps, and
// diagnostics. The zero value selects package defaults, the same
// convention gonum/optimize.Settings{} uses for "defaults".
type Options struct {
	// XTol is the absolute bracket-width tolerance; 0 means "tightest
	// representable".
	XTol float64
	// XRelTol is a relative tolerance applied against |current estimate|.
	XRelTol float64
	// FTol bounds |f(x)| for FalsePosition's generic assess_convergence
	// rule; 0 disables the function-value check.
	FTol float64
	// MaxEvals caps the iteration count; exceeding it raises MaxIterations.
	MaxEvals int
	// MaxFnEvals optionally caps the number of calls to f; 0 means no cap.
	MaxFnEvals int
	// Logger, when non-nil, receives one line per iteration.
	Logger *log.Logger
	// Verbose additionally accumulates SolverState.History.
	Verbose bool
	// Reduction selects the Galdino reduction factor FalsePosition uses.
	// Zero value defaults to AndersonBjork.
	Reduction Reduction
}

func (o Options) withDefaults() Options {
	if o.MaxEvals <= 0 {
		o.MaxEvals = defaultMaxEvals
	}
	if o.Reduction == 0 {
		o.Reduction = AndersonBjork
	}
	return o
}
