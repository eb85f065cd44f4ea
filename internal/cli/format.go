package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/modstack/pkg/types"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	indexStyle    = lipgloss.NewStyle().Faint(true)
	nameStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	disabledStyle = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	metaStyle     = lipgloss.NewStyle().Faint(true)
)

// renderList formats a profile's mod list in activation order
func renderList(profile types.Profile, list types.ModList) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("%s (%d mods)", profile.Name, len(list))))
	b.WriteString("\n")

	if len(list) == 0 {
		b.WriteString(metaStyle.Render("  empty — add one with: modstack add <name>"))
		b.WriteString("\n")
		return b.String()
	}

	for i, rec := range list {
		name := nameStyle.Render(rec.Name)
		if enabled, ok := rec.Field("enabled"); ok && enabled == false {
			name = disabledStyle.Render(rec.Name)
		}

		line := fmt.Sprintf("  %s %s", indexStyle.Render(fmt.Sprintf("%2d.", i+1)), name)
		if v, ok := rec.Field("version"); ok {
			line += " " + metaStyle.Render(fmt.Sprintf("v%v", v))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

// renderProfiles formats the discovered profiles
func renderProfiles(found []types.Profile) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("%d profiles", len(found))))
	b.WriteString("\n")

	for _, profile := range found {
		line := fmt.Sprintf("  %s", nameStyle.Render(profile.Name))
		if desc, ok := profile.Metadata["description"]; ok {
			line += " " + metaStyle.Render(fmt.Sprintf("%v", desc))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
