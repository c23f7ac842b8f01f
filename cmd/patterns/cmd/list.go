package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gopatterns/runner"
)

func init() {
	RegisterCommand(&Command{
		Name:  "list",
		Short: "List every demo in the catalog",
		Long: `List every pattern demonstration in the catalog, grouped by family
(creational, behavioral, structural) in the original teaching order.`,
		Usage: "patterns list",
		Run: func([]string) error {
			listCatalog(os.Stdout)

			return nil
		},
	})
}

var (
	familyStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	nameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Width(12)
	summaryStyle = lipgloss.NewStyle().Faint(true)
)

// listCatalog renders the catalog grouped by family, preserving order.
func listCatalog(w io.Writer) {
	var family runner.Category
	for _, d := range runner.All() {
		if d.Category != family {
			family = d.Category
			fmt.Fprintln(w, familyStyle.Render(string(family)))
		}
		fmt.Fprintf(w, "  %s %s\n", nameStyle.Render(d.Name), summaryStyle.Render(d.Summary))
	}
}
