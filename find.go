package bracket

// Method selects which bracketing solver FindZeroBracket dispatches to.
type Method int

const (
	// MethodBisection uses the bitwise Bisection solver.
	MethodBisection Method = iota
	// MethodA42 uses the Alefeld-Potra-Shi Algorithm 748 solver.
	MethodA42
	// MethodFalsePosition uses regula falsi with Options.Reduction.
	MethodFalsePosition
)

// FindZeroBracket locates a root of f within [a,b] using the selected
// method, returning the estimated root or a typed SolverError. This is
// the package's single-root entry point; a higher-level fzero/fzeros
// API is an external collaborator built on top of it, not part of this
// package.
func FindZeroBracket(f func(float64) float64, a, b float64, method Method, opts Options) (float64, error) {
	switch method {
	case MethodBisection:
		x, _, err := Bisection(f, a, b, opts)
		return x, err
	case MethodFalsePosition:
		x, _, err := FalsePosition(f, a, b, opts)
		return x, err
	default:
		x, _, err := A42(f, a, b, opts)
		return x, err
	}
}
