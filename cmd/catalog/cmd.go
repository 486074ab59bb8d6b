package catalog

import (
	"fmt"

	"github.com/spf13/cobra"

	"unitimetable/pkg/model"
)

var file string

func NewCatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Lists the programs, sections and courses of the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "Path to a catalog json file; if empty, the built-in catalog is used")
	return cmd
}

func run() error {
	catalog := model.NewDefaultCatalog()
	if file != "" {
		input, err := model.InputFromJson(file)
		if err != nil {
			return fmt.Errorf("cannot parse catalog file: %w", err)
		}
		catalog = model.NewCatalog()
		input.Apply(catalog)
	}

	for _, program := range catalog.Programs() {
		fmt.Println(program)
		for _, section := range catalog.Sections(program) {
			fmt.Printf("  %v-%v\n", program, section)
			for _, course := range catalog.Courses(program, section) {
				fmt.Printf("    %v\n", course)
			}
		}
	}
	return nil
}
