package csp

// Constraint restricts which combinations of values its variables may take.
//
// Satisfied must accept partial assignments: only bound variables appear as
// keys, and implementations cannot assume every declared variable is present.
// It must be a pure predicate with no side effects.
type Constraint[V comparable, D any] interface {
	Variables() []V
	Satisfied(assignment map[V]D) bool
}
