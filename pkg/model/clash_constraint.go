package model

import "unitimetable/pkg/csp"

// clashConstraint forbids two courses from sharing a group, teacher or room
// in the same day and period.
type clashConstraint struct {
	variables []Variable
}

func newClashConstraint(variables []Variable) csp.Constraint[Variable, Slot] {
	return clashConstraint{variables: variables}
}

func (c clashConstraint) Variables() []Variable {
	return c.variables
}

func (c clashConstraint) Satisfied(assignment map[Variable]Slot) bool {
	groupAssignments := make(map[[3]string]bool, len(assignment))
	teacherAssignments := make(map[[3]string]bool, len(assignment))
	roomAssignments := make(map[[3]string]bool, len(assignment))

	for variable, slot := range assignment {
		groupKey := [3]string{variable.Group, slot.Day, slot.Period}
		if groupAssignments[groupKey] {
			return false
		}
		groupAssignments[groupKey] = true

		teacherKey := [3]string{slot.Teacher, slot.Day, slot.Period}
		if teacherAssignments[teacherKey] {
			return false
		}
		teacherAssignments[teacherKey] = true

		roomKey := [3]string{slot.Room, slot.Day, slot.Period}
		if roomAssignments[roomKey] {
			return false
		}
		roomAssignments[roomKey] = true
	}
	return true
}
