package model

import (
	"encoding/json"
	"os"

	"github.com/mitchellh/mapstructure"
)

// Variable identifies one schedulable unit: a course taught to a
// program-section group, e.g. {Group: "BCS-3A", Course: "AI"}.
type Variable struct {
	Group  string
	Course string
}

// Slot is a candidate assignment value. Slots are plain values: two slots with
// identical fields are interchangeable.
type Slot struct {
	Day     string
	Period  string
	Room    string
	Teacher string
}

// Entry is one scheduled course in a produced timetable. Program carries the
// program-section label (e.g. "BCS-1A").
type Entry struct {
	Program string
	Course  string
	Day     string
	Period  string
	Room    string
	Teacher string
}

type Stats struct {
	TotalCourses     int
	ScheduledCourses int
	AvailableSlots   int
	Programs         int
}

// Result is the outcome of a timetable request. Stats is nil only when no
// variables could be derived from the selection.
type Result struct {
	Solved    bool
	Reason    string
	Timetable []Entry
	Stats     *Stats
}

// CatalogInput is the on-disk catalog representation: program name to section
// label to ordered course list.
type CatalogInput struct {
	Programs map[string]map[string][]string
}

// Apply registers every program of the input on the catalog and returns how
// many were added. Already-present programs are skipped.
func (input CatalogInput) Apply(catalog Catalog) int {
	added := 0
	for name, sections := range input.Programs {
		if catalog.RegisterProgram(name, sections) {
			added++
		}
	}
	return added
}

func InputFromJson(file string) (CatalogInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return CatalogInput{}, err
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return CatalogInput{}, err
	}

	var input CatalogInput
	mapstructure.Decode(inputJson, &input)

	return input, nil
}
