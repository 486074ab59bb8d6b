package csp

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

// allDifferent forbids two of its variables from sharing a value.
type allDifferent struct {
	variables []string
}

func (c allDifferent) Variables() []string {
	return c.variables
}

func (c allDifferent) Satisfied(assignment map[string]int) bool {
	seen := map[int]bool{}
	for _, value := range assignment {
		if seen[value] {
			return false
		}
		seen[value] = true
	}
	return true
}

// recorder notes the order in which variables get bound.
type recorder struct {
	variables []string
	order     *[]string
}

func (c recorder) Variables() []string {
	return c.variables
}

func (c recorder) Satisfied(assignment map[string]int) bool {
	for _, variable := range c.variables {
		if _, bound := assignment[variable]; bound && !slices.Contains(*c.order, variable) {
			*c.order = append(*c.order, variable)
		}
	}
	return true
}

func TestAddConstraint(t *testing.T) {
	t.Run("Rejects undeclared variable", func(t *testing.T) {
		// Arrange
		problem := New([]string{"a", "b"}, map[string][]int{"a": {1}, "b": {2}})

		// Act
		err := problem.AddConstraint(allDifferent{variables: []string{"a", "z"}})

		// Assert
		assert.ErrorIs(t, err, ErrInvalidConstraint)
	})

	t.Run("Failed registration leaves index untouched", func(t *testing.T) {
		// Arrange
		problem := New([]string{"a"}, map[string][]int{"a": {1}})
		_ = problem.AddConstraint(allDifferent{variables: []string{"a", "z"}})

		// Act
		solution, ok := problem.BacktrackingSearch()

		// Assert
		assert.True(t, ok)
		assert.Equal(t, map[string]int{"a": 1}, solution)
	})

	t.Run("Accepts declared variables", func(t *testing.T) {
		// Arrange
		problem := New([]string{"a", "b"}, map[string][]int{"a": {1}, "b": {2}})

		// Act
		err := problem.AddConstraint(allDifferent{variables: []string{"a", "b"}})

		// Assert
		assert.Nil(t, err)
	})
}

func TestBacktrackingSearch(t *testing.T) {
	t.Run("Single variable with non-empty domain", func(t *testing.T) {
		// Arrange
		problem := New([]string{"a"}, map[string][]int{"a": {7}})

		// Act
		solution, ok := problem.BacktrackingSearch()

		// Assert
		assert.True(t, ok)
		assert.Equal(t, map[string]int{"a": 7}, solution)
	})

	t.Run("Empty domain yields no solution", func(t *testing.T) {
		// Arrange
		problem := New([]string{"a", "b"}, map[string][]int{"a": {1}, "b": {}})

		// Act
		solution, ok := problem.BacktrackingSearch()

		// Assert
		assert.False(t, ok)
		assert.Nil(t, solution)
	})

	t.Run("Backtracks over conflicting candidates", func(t *testing.T) {
		// Arrange
		problem := New([]string{"a", "b", "c"}, map[string][]int{
			"a": {1, 2},
			"b": {1, 2, 3},
			"c": {1},
		})
		err := problem.AddConstraint(allDifferent{variables: []string{"a", "b", "c"}})
		assert.Nil(t, err)

		// Act
		solution, ok := problem.BacktrackingSearch()

		// Assert
		assert.True(t, ok)
		assert.Len(t, solution, 3)
		assert.NotEqual(t, solution["a"], solution["b"])
		assert.NotEqual(t, solution["a"], solution["c"])
		assert.NotEqual(t, solution["b"], solution["c"])
	})

	t.Run("Identical singleton domains are unsatisfiable", func(t *testing.T) {
		// Arrange
		problem := New([]string{"a", "b"}, map[string][]int{"a": {5}, "b": {5}})
		err := problem.AddConstraint(allDifferent{variables: []string{"a", "b"}})
		assert.Nil(t, err)

		// Act
		solution, ok := problem.BacktrackingSearch()

		// Assert
		assert.False(t, ok)
		assert.Nil(t, solution)
	})

	t.Run("MRV binds shortest domain first", func(t *testing.T) {
		// Arrange
		order := []string{}
		problem := New([]string{"long", "short"}, map[string][]int{
			"long":  {1, 2, 3},
			"short": {4},
		})
		err := problem.AddConstraint(recorder{variables: []string{"long", "short"}, order: &order})
		assert.Nil(t, err)

		// Act
		_, ok := problem.BacktrackingSearch()

		// Assert
		assert.True(t, ok)
		assert.Equal(t, []string{"short", "long"}, order)
	})

	t.Run("MRV ties break by declaration order", func(t *testing.T) {
		// Arrange
		order := []string{}
		problem := New([]string{"first", "second"}, map[string][]int{
			"first":  {1, 2},
			"second": {3, 4},
		})
		err := problem.AddConstraint(recorder{variables: []string{"first", "second"}, order: &order})
		assert.Nil(t, err)

		// Act
		_, ok := problem.BacktrackingSearch()

		// Assert
		assert.True(t, ok)
		assert.Equal(t, []string{"first", "second"}, order)
	})
}

func BenchmarkBacktrackingSearch(b *testing.B) {
	variables := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	domains := map[string][]int{}
	for i, variable := range variables {
		domain := make([]int, len(variables))
		for j := range domain {
			domain[j] = (i + j) % len(variables)
		}
		domains[variable] = domain
	}

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		problem := New(variables, domains)
		_ = problem.AddConstraint(allDifferent{variables: variables})
		if _, ok := problem.BacktrackingSearch(); !ok {
			b.Fatal("expected a solution")
		}
	}
}
