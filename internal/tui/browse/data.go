package browse

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dami/hope/internal/output"
)

// fetchPage loads the current page through the cached resource layer.
func (m Model) fetchPage() tea.Cmd {
	store := m.Store
	filter := m.Filter
	return func() tea.Msg {
		list, err := store.Projects(filter)
		return ProjectsMsg{List: list, Err: err}
	}
}

// fetchDetail loads one project and pre-renders its markdown description.
func (m Model) fetchDetail(id int) tea.Cmd {
	store := m.Store
	width := m.Width - 4
	return func() tea.Msg {
		p, err := store.Project(id)
		if err != nil {
			return DetailMsg{Err: err}
		}
		rendered, err := output.RenderMarkdownWithWidth(p.Description, width)
		if err != nil {
			// Fall back to the raw text rather than failing the view.
			rendered = p.Description
		}
		return DetailMsg{Project: p, Rendered: rendered}
	}
}
