package model

import "math/rand"

type Timetabler interface {
	Generate(programs []string) Result

	Verify(timetable []Entry) bool
}

// NewTimetabler builds a timetabler over the given catalog. The slot universe
// is generated once from rng and reused read-only by every Generate call; a
// nil rng selects a time-seeded source, tests pass a fixed seed for
// reproducible searches.
func NewTimetabler(catalog Catalog, rng *rand.Rand) Timetabler {
	return newCspTimetabler(catalog, rng)
}
