// Package bracket implements bracketed root-finding algorithms for
// real-valued continuous scalar functions of one real variable.
//
// Given a function f and an interval [a,b] with f(a)·f(b) <= 0, a
// solver in this package locates a point x such that f(x) = 0, or the
// tightest representable bracket around such a point. Three solvers
// are provided: bitwise Bisection, the Alefeld-Potra-Shi Algorithm 748
// (A42), and FalsePosition (regula falsi with a pluggable Galdino
// reduction factor). FindZeros subdivides an interval and dispatches
// bracketed sub-intervals to Bisection to locate more than one root.
//
// The package is entirely synchronous: a solver owns its SolverState
// exclusively for the duration of one call, evaluates f at most once
// per logical step, and never spawns a goroutine.
package bracket
