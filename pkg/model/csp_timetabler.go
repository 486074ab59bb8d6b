package model

import (
	"math/rand"
	"time"

	"unitimetable/pkg/csp"
)

type cspTimetabler struct {
	catalog Catalog
	rng     *rand.Rand
	slots   []Slot
}

func newCspTimetabler(catalog Catalog, rng *rand.Rand) Timetabler {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &cspTimetabler{
		catalog: catalog,
		rng:     rng,
		slots:   generateSlots(rng),
	}
}

func (timetabler *cspTimetabler) Generate(programs []string) Result {
	//** Derive variables for the selected programs
	variables := timetabler.generateVariables(programs)

	if len(variables) == 0 {
		return Result{
			Solved: false,
			Reason: "No valid programs selected or no courses found",
		}
	}

	stats := Stats{
		TotalCourses:   len(variables),
		AvailableSlots: len(timetabler.slots),
		Programs:       len(programs),
	}
	if len(programs) == 0 {
		stats.Programs = len(timetabler.catalog.Programs())
	}

	//** Build per-variable domains: an independent shuffle of the slot
	//** universe, so every variable can reach every slot in its own order
	domains := make(map[Variable][]Slot, len(variables))
	for _, variable := range variables {
		shuffled := make([]Slot, len(timetabler.slots))
		copy(shuffled, timetabler.slots)
		timetabler.rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		domains[variable] = shuffled
	}

	//** Build and solve the CSP instance
	problem := csp.New(variables, domains)
	if err := problem.AddConstraint(newClashConstraint(variables)); err != nil {
		return Result{
			Solved: false,
			Reason: err.Error(),
			Stats:  &stats,
		}
	}

	solution, ok := problem.BacktrackingSearch()
	if !ok {
		return Result{
			Solved: false,
			Reason: "No valid timetable found. Try with fewer programs or courses.",
			Stats:  &stats,
		}
	}

	//** Flatten and order the solution for presentation
	timetable := make([]Entry, 0, len(solution))
	for variable, slot := range solution {
		timetable = append(timetable, Entry{
			Program: variable.Group,
			Course:  variable.Course,
			Day:     slot.Day,
			Period:  slot.Period,
			Room:    slot.Room,
			Teacher: slot.Teacher,
		})
	}
	sortTimetable(timetable)

	stats.ScheduledCourses = len(solution)
	return Result{
		Solved:    true,
		Timetable: timetable,
		Stats:     &stats,
	}
}

func (timetabler *cspTimetabler) Verify(timetable []Entry) bool {
	return verify(timetable)
}

// generateVariables lists one variable per course of the selected programs:
// programs in the requested order (all catalog programs in lexical order when
// none are requested), sections by their leading integer, courses as declared.
// Unknown program names are skipped.
func (timetabler *cspTimetabler) generateVariables(programs []string) []Variable {
	if len(programs) == 0 {
		programs = timetabler.catalog.Programs()
	}

	variables := make([]Variable, 0)
	for _, program := range programs {
		for _, section := range timetabler.catalog.Sections(program) {
			group := program + "-" + section
			for _, course := range timetabler.catalog.Courses(program, section) {
				variables = append(variables, Variable{Group: group, Course: course})
			}
		}
	}
	return variables
}
