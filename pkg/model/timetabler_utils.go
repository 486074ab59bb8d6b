package model

import (
	"slices"
	"strings"
)

// verify checks the defining invariant of a produced timetable: no two
// entries in the same day and period share a group, a teacher or a room.
func verify(timetable []Entry) bool {
	groupAssistance := make(map[[3]string]bool, len(timetable))
	teacherAssistance := make(map[[3]string]bool, len(timetable))
	roomAssistance := make(map[[3]string]bool, len(timetable))

	for _, entry := range timetable {
		groupKey := [3]string{entry.Program, entry.Day, entry.Period}
		teacherKey := [3]string{entry.Teacher, entry.Day, entry.Period}
		roomKey := [3]string{entry.Room, entry.Day, entry.Period}

		if groupAssistance[groupKey] || teacherAssistance[teacherKey] || roomAssistance[roomKey] {
			return false
		}

		groupAssistance[groupKey] = true     // Store group assistance
		teacherAssistance[teacherKey] = true // Store teacher assistance
		roomAssistance[roomKey] = true       // Store room assistance
	}
	return true
}

// sortTimetable orders entries by weekday then period string, giving every
// successful request a deterministic presentation order regardless of the
// engine's assignment iteration order.
func sortTimetable(timetable []Entry) {
	slices.SortStableFunc(timetable, func(a, b Entry) int {
		if dayComparison := slices.Index(Days, a.Day) - slices.Index(Days, b.Day); dayComparison != 0 {
			return dayComparison
		}
		return strings.Compare(a.Period, b.Period)
	})
}
