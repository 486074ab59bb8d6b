package generate

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"unitimetable/pkg/model"
)

var (
	file string
	seed int64
)

func NewGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [programs...]",
		Short: "Generates a timetable for the selected programs",
		Long: `Generates a clash-free timetable for the named programs, or for every
catalog program when none are given. Exits with code 20 when no valid
timetable exists.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "Path to a catalog json file; if empty, the built-in catalog is used")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for slot generation and domain shuffling; 0 means time-seeded")
	return cmd
}

func run(programs []string) error {
	catalog, err := loadCatalog(file)
	if err != nil {
		return err
	}

	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewSource(seed))
	}
	timetabler := model.NewTimetabler(catalog, rng)

	result := timetabler.Generate(programs)
	if !result.Solved {
		fmt.Println(result.Reason)
		if result.Stats != nil {
			printStats(result.Stats)
		}
		os.Exit(20)
	}

	for _, entry := range result.Timetable {
		fmt.Printf("Day: %v, Period: %v, Program: %v, Course: %v, Room: %v, Teacher: %v\n",
			entry.Day, entry.Period, entry.Program, entry.Course, entry.Room, entry.Teacher)
	}
	printStats(result.Stats)
	return nil
}

func loadCatalog(file string) (model.Catalog, error) {
	if file == "" {
		return model.NewDefaultCatalog(), nil
	}

	input, err := model.InputFromJson(file)
	if err != nil {
		return nil, fmt.Errorf("cannot parse catalog file: %w", err)
	}

	catalog := model.NewCatalog()
	input.Apply(catalog)
	return catalog, nil
}

func printStats(stats *model.Stats) {
	fmt.Printf("Courses: %v\n", stats.TotalCourses)
	fmt.Printf("Scheduled: %v\n", stats.ScheduledCourses)
	fmt.Printf("Slots: %v\n", stats.AvailableSlots)
	fmt.Printf("Programs: %v\n", stats.Programs)
}
