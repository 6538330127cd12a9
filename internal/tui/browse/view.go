package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/dami/hope/internal/models"
)

// renderView draws either the list or the detail overlay.
func (m Model) renderView() string {
	width := m.Width
	if width <= 0 {
		width = 80
	}
	if width < MinWidth || (m.Height > 0 && m.Height < MinHeight) {
		return "window too small\n"
	}

	if m.Detail != nil {
		return m.renderDetail(width)
	}
	return m.renderList(width)
}

func (m Model) renderList(width int) string {
	var b strings.Builder

	title := "Projects"
	if m.Filter.Search != "" {
		title = fmt.Sprintf("Projects — %q", m.Filter.Search)
	}
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n\n")

	if m.Searching {
		b.WriteString("  " + m.search.View() + "\n\n")
	}

	switch {
	case m.Err != nil:
		b.WriteString("  " + errStyle.Render(m.Err.Error()) + "\n")
	case m.Loading && m.List == nil:
		b.WriteString("  " + m.spinner.View() + " loading projects...\n")
	case m.List == nil || len(m.List.Data) == 0:
		b.WriteString("  " + subtleStyle.Render("no projects found") + "\n")
	default:
		for i := range m.List.Data {
			b.WriteString(m.renderRow(i, width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.List != nil && m.List.TotalPages > 1 {
		b.WriteString("  " + m.paginator.View())
		b.WriteString(subtleStyle.Render(fmt.Sprintf("  page %d/%d", m.Filter.Page, m.List.TotalPages)))
		b.WriteString("\n")
	}
	if m.Loading && m.List != nil {
		b.WriteString("  " + m.spinner.View() + "\n")
	}
	b.WriteString(helpStyle.Render("  j/k move · h/l page · enter open · / search · r refresh · q quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderRow(i, width int) string {
	p := &m.List.Data[i]

	marker := "  "
	if i == m.Cursor {
		marker = selectedStyle.Render("> ")
	}

	status := statusLabel(p.Status)
	progress := ""
	if p.Goal != "" {
		raised := p.Raised
		if raised == "" {
			raised = "0"
		}
		progress = subtleStyle.Render(fmt.Sprintf(" %s/%s", raised, p.Goal))
	}

	title := p.Title
	if i == m.Cursor {
		title = selectedStyle.Render(title)
	} else {
		title = rowStyle.Render(title)
	}

	line := fmt.Sprintf("%s%s %s%s %s", marker, subtleStyle.Render(fmt.Sprintf("#%-4d", p.ID)), title, progress, status)
	return ansi.Truncate(line, width-1, "…")
}

func (m Model) renderDetail(width int) string {
	var b strings.Builder

	p := m.Detail
	b.WriteString(detailTitleStyle.Render(fmt.Sprintf("#%d %s", p.ID, p.Title)))
	b.WriteString("\n\n")

	meta := []string{statusLabel(p.Status)}
	if p.Category != "" {
		meta = append(meta, subtleStyle.Render(p.Category))
	}
	if p.Goal != "" {
		raised := p.Raised
		if raised == "" {
			raised = "0"
		}
		meta = append(meta, subtleStyle.Render(fmt.Sprintf("%s raised of %s", raised, p.Goal)))
	}
	b.WriteString("  " + strings.Join(meta, "  ") + "\n\n")

	body := m.DetailRendered
	if strings.TrimSpace(body) == "" {
		body = subtleStyle.Render("(no description)")
	}
	b.WriteString(scrollLines(body, m.DetailScroll, m.bodyHeight()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("  j/k scroll · esc back · q close"))
	b.WriteString("\n")

	return b.String()
}

// bodyHeight is the number of description lines visible in the detail view.
func (m Model) bodyHeight() int {
	if m.Height <= 0 {
		return 20
	}
	h := m.Height - 7
	if h < 4 {
		h = 4
	}
	return h
}

// scrollLines clips text to a window of at most height lines starting at offset.
func scrollLines(text string, offset, height int) string {
	lines := strings.Split(text, "\n")
	if offset >= len(lines) {
		offset = maxInt(len(lines)-1, 0)
	}
	end := offset + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[offset:end], "\n")
}

func statusLabel(s models.ProjectStatus) string {
	switch s {
	case models.ProjectActive:
		return statusActiveStyle.Render("[active]")
	case models.ProjectCompleted:
		return statusCompletedStyle.Render("[completed]")
	case models.ProjectPaused:
		return statusPausedStyle.Render("[paused]")
	default:
		return string(s)
	}
}
