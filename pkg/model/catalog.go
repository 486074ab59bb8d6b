package model

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Catalog is the program -> section -> course structure driving variable
// derivation. Mutations report failure as a boolean and never leave partial
// state behind.
type Catalog interface {
	RegisterProgram(name string, sections map[string][]string) bool
	AddCourse(program, section, course string) bool
	Programs() []string
	Sections(program string) []string
	Courses(program, section string) []string
}

func NewCatalog() Catalog {
	return &catalogImplementation{programs: map[string]map[string][]string{}}
}

// NewDefaultCatalog returns a catalog pre-seeded with the stock university
// programs.
func NewDefaultCatalog() Catalog {
	catalog := NewCatalog()
	for name, sections := range defaultPrograms {
		catalog.RegisterProgram(name, sections)
	}
	return catalog
}

type catalogImplementation struct {
	programs map[string]map[string][]string
}

func (c *catalogImplementation) RegisterProgram(name string, sections map[string][]string) bool {
	if _, ok := c.programs[name]; ok {
		return false
	}

	copied := make(map[string][]string, len(sections))
	for section, courses := range sections {
		copied[section] = slices.Clone(courses)
	}
	c.programs[name] = copied
	return true
}

func (c *catalogImplementation) AddCourse(program, section, course string) bool {
	sections, ok := c.programs[program]
	if !ok {
		return false
	}
	if slices.Contains(sections[section], course) {
		return false
	}

	sections[section] = append(sections[section], course)
	return true
}

func (c *catalogImplementation) Programs() []string {
	names := lo.Keys(c.programs)
	slices.Sort(names)
	return names
}

func (c *catalogImplementation) Sections(program string) []string {
	sections, ok := c.programs[program]
	if !ok {
		return []string{}
	}

	labels := lo.Keys(sections)
	slices.SortFunc(labels, compareSections)
	return labels
}

func (c *catalogImplementation) Courses(program, section string) []string {
	sections, ok := c.programs[program]
	if !ok {
		return []string{}
	}
	return slices.Clone(sections[section])
}

// compareSections orders section labels by their leading integer ("1A" < "2A"
// < "10A"); labels without one sort first, equal numbers fall back to lexical
// order.
func compareSections(a, b string) int {
	numberA, numberB := sectionNumber(a), sectionNumber(b)
	if numberA != numberB {
		return numberA - numberB
	}
	return strings.Compare(a, b)
}

func sectionNumber(label string) int {
	number, digits := 0, 0
	for _, r := range label {
		if r < '0' || r > '9' {
			break
		}
		number = number*10 + int(r-'0')
		digits++
	}
	if digits == 0 {
		return -1
	}
	return number
}

var defaultPrograms = map[string]map[string][]string{
	"BCS": {
		"1A": {"Programming Fundamentals", "Mathematics", "English", "Physics"},
		"2A": {"Data Structures", "OOP", "Database", "Statistics", "Deep Learning"},
		"3A": {"AI", "Software Engineering", "Operating Systems", "Computer Networks"},
		"4A": {"Machine Learning", "Compiler Design", "Web Development", "Final Year Project"},
	},
	"BSE": {
		"1A": {"Programming Fundamentals", "Mathematics", "English", "Physics"},
		"2A": {"DLD", "PF Lab", "PF", "OOP"},
		"3A": {"Software Engineering", "Database Systems", "Web Technologies", "Mobile Development"},
		"4A": {"Software Testing", "Project Management", "DevOps", "Final Year Project"},
	},
	"AI": {
		"1A": {"Programming Fundamentals", "Mathematics", "Statistics", "Logic"},
		"2A": {"DS", "AI Lab", "Machine Learning Basics", "Python Programming"},
		"3A": {"Deep Learning", "NLP", "Computer Vision", "Robotics"},
		"4A": {"Advanced AI", "Neural Networks", "AI Ethics", "Research Project"},
	},
	"CS": {
		"1A": {"Programming Fundamentals", "Mathematics", "English", "Computer Science Basics"},
		"2A": {"Data Structures", "Algorithms", "Computer Architecture", "Assembly Language"},
		"3A": {"Operating Systems", "Database Systems", "Computer Networks", "Software Engineering"},
		"4A": {"Distributed Systems", "Cybersecurity", "Cloud Computing", "Capstone Project"},
	},
	"SE": {
		"1A": {"Programming Fundamentals", "Mathematics", "English", "Software Basics"},
		"2A": {"OOP", "Software Design", "Requirements Engineering", "Testing Fundamentals"},
		"3A": {"Software Architecture", "Project Management", "Quality Assurance", "Agile Methods"},
		"4A": {"Advanced Software Engineering", "DevOps", "Software Metrics", "Industry Project"},
	},
	"DS": {
		"1A": {"Programming Fundamentals", "Mathematics", "Statistics", "Data Science Intro"},
		"2A": {"Data Analysis", "Database Systems", "Python for Data Science", "Visualization"},
		"3A": {"Machine Learning", "Big Data", "Data Mining", "Statistical Analysis"},
		"4A": {"Deep Learning", "Advanced Analytics", "Data Ethics", "Capstone Project"},
	},
}
