package csp

import (
	"errors"
	"fmt"
	"maps"
)

// ErrInvalidConstraint reports a constraint declared over a variable that does
// not belong to the CSP.
var ErrInvalidConstraint = errors.New("constraint variable not in CSP")

// CSP holds the variables of a constraint-satisfaction problem, their
// candidate domains and the constraints indexed per variable.
type CSP[V comparable, D any] struct {
	variables   []V
	domains     map[V][]D
	constraints map[V][]Constraint[V, D]
}

// New builds a CSP over the given variables and domains. A variable with an
// empty domain is a legal degenerate input: any search involving it fails.
func New[V comparable, D any](variables []V, domains map[V][]D) *CSP[V, D] {
	constraints := make(map[V][]Constraint[V, D], len(variables))
	for _, variable := range variables {
		constraints[variable] = []Constraint[V, D]{}
	}

	return &CSP[V, D]{
		variables:   variables,
		domains:     domains,
		constraints: constraints,
	}
}

// AddConstraint indexes the constraint under each of its variables. Every
// variable the constraint mentions must be declared on the CSP; otherwise the
// index is left untouched and an error wrapping ErrInvalidConstraint is
// returned.
func (c *CSP[V, D]) AddConstraint(constraint Constraint[V, D]) error {
	for _, variable := range constraint.Variables() {
		if _, ok := c.constraints[variable]; !ok {
			return fmt.Errorf("%w: %v", ErrInvalidConstraint, variable)
		}
	}

	for _, variable := range constraint.Variables() {
		c.constraints[variable] = append(c.constraints[variable], constraint)
	}
	return nil
}

// Consistent reports whether every constraint mentioning the variable is
// satisfied by the assignment.
func (c *CSP[V, D]) Consistent(variable V, assignment map[V]D) bool {
	for _, constraint := range c.constraints[variable] {
		if !constraint.Satisfied(assignment) {
			return false
		}
	}
	return true
}

// BacktrackingSearch runs a depth-first search for a complete assignment,
// returning the first one found. The second return value is false when the
// search exhausts every branch without a solution; that is an expected
// outcome, not an error.
func (c *CSP[V, D]) BacktrackingSearch() (map[V]D, bool) {
	return c.backtrack(map[V]D{})
}

func (c *CSP[V, D]) backtrack(assignment map[V]D) (map[V]D, bool) {
	if len(assignment) == len(c.variables) {
		return assignment, true
	}

	//** Select the unassigned variable with the fewest remaining values (MRV),
	//** ties broken by declaration order
	var first V
	selected := false
	for _, variable := range c.variables {
		if _, bound := assignment[variable]; bound {
			continue
		}
		if !selected || len(c.domains[variable]) < len(c.domains[first]) {
			first = variable
			selected = true
		}
	}

	//** Try candidate values in stored domain order. Each level extends its
	//** own copy, so callers never observe in-progress mutation
	for _, value := range c.domains[first] {
		local := maps.Clone(assignment)
		local[first] = value

		if c.Consistent(first, local) {
			if result, ok := c.backtrack(local); ok {
				return result, true
			}
		}
	}
	return nil, false
}
