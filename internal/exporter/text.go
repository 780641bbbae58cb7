package exporter

import (
	"fmt"
	"strings"

	"github.com/nikbrunner/kbtest/internal/model"
	"github.com/nikbrunner/kbtest/internal/state"
)

// ExportText renders a state snapshot as an indented project/suite tree.
// Current selections are marked with "*". Suites whose project is missing
// are listed in a separate section after the tree.
func ExportText(s state.State) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Projects (%d)\n", len(s.Projects))
	if len(s.Projects) == 0 {
		b.WriteString("  (none)\n")
	}

	for _, p := range s.Projects {
		marker := " "
		if s.CurrentProject != nil && s.CurrentProject.ID == p.ID {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s %s [%s]\n", marker, p.Name, p.ID)

		suites := state.SuitesForProject(s, p.ID)
		if len(suites) == 0 {
			b.WriteString("    (no suites)\n")
		}
		for _, su := range suites {
			writeSuite(&b, s, su)
		}
	}

	if orphans := state.OrphanSuites(s); len(orphans) > 0 {
		fmt.Fprintf(&b, "\nOrphan suites (%d)\n", len(orphans))
		for _, su := range orphans {
			fmt.Fprintf(&b, "  - %s [%s] project=%s\n", su.Name, su.ID, su.ProjectID)
		}
	}

	if s.Loading {
		b.WriteString("\nLoading...\n")
	}
	if s.Error != nil {
		fmt.Fprintf(&b, "\nError: %s\n", *s.Error)
	}

	return b.String()
}

func writeSuite(b *strings.Builder, s state.State, su model.Suite) {
	marker := "-"
	if s.CurrentSuite != nil && s.CurrentSuite.ID == su.ID {
		marker = "*"
	}
	fmt.Fprintf(b, "    %s %s [%s]", marker, su.Name, su.ID)
	if su.Stats.Passed+su.Stats.Failed > 0 {
		fmt.Fprintf(b, " %d%% pass", su.Stats.PassRate())
	}
	b.WriteString("\n")
}
