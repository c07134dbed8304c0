package main

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ringflight/internal/registry"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List available courses",
	Long:  `Shows every course that can be passed to --course.`,
	Args:  cobra.NoArgs,
	Run:   runCourses,
}

func runCourses(_ *cobra.Command, _ []string) {
	courses := registry.List()

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"ID", "Title", "Description"})
	for _, c := range courses {
		t.AppendRow(table.Row{c.ID, c.Title, c.Description})
	}
	t.Render()
}
