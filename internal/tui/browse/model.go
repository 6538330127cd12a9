// Package browse is the interactive project browser TUI: paged fetches
// through the cached resource layer, search, and a markdown detail view.
package browse

import (
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dami/hope/internal/api"
	"github.com/dami/hope/internal/models"
	"github.com/dami/hope/internal/resource"
)

// MinWidth is the minimum terminal width for proper display
const MinWidth = 40

// MinHeight is the minimum terminal height for proper display
const MinHeight = 10

// ProjectsMsg carries a fetched page of projects
type ProjectsMsg struct {
	List *api.ProjectList
	Err  error
}

// DetailMsg carries a fetched project detail with its rendered description
type DetailMsg struct {
	Project  *models.Project
	Rendered string
	Err      error
}

// Model is the Bubble Tea model for the project browser
type Model struct {
	Store  *resource.Store
	Filter api.ProjectFilter

	// Window dimensions
	Width  int
	Height int

	// Page data
	List   *api.ProjectList
	Cursor int

	// Detail view; non-nil means the detail overlay is open
	Detail         *models.Project
	DetailRendered string
	DetailScroll   int

	// UI state
	Loading   bool
	Searching bool
	Err       error

	spinner   spinner.Model
	paginator paginator.Model
	search    textinput.Model
}

// NewModel creates a browser over the given resource store.
func NewModel(store *resource.Store, pageSize int) Model {
	if pageSize <= 0 {
		pageSize = 10
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	pg := paginator.New()
	pg.Type = paginator.Dots
	pg.ActiveDot = activeDotStyle.Render("•")
	pg.InactiveDot = inactiveDotStyle.Render("•")

	ti := textinput.New()
	ti.Placeholder = "search projects..."
	ti.CharLimit = 80

	return Model{
		Store:     store,
		Filter:    api.ProjectFilter{Page: 1, PageSize: pageSize},
		Loading:   true,
		spinner:   sp,
		paginator: pg,
		search:    ti,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchPage())
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ProjectsMsg:
		m.Loading = false
		if msg.Err != nil {
			m.Err = msg.Err
			return m, nil
		}
		m.Err = nil
		m.List = msg.List
		m.paginator.SetTotalPages(maxInt(msg.List.TotalPages, 1))
		m.paginator.Page = m.Filter.Page - 1
		if m.Cursor >= len(msg.List.Data) {
			m.Cursor = maxInt(len(msg.List.Data)-1, 0)
		}
		return m, nil

	case DetailMsg:
		m.Loading = false
		if msg.Err != nil {
			m.Err = msg.Err
			return m, nil
		}
		m.Err = nil
		m.Detail = msg.Project
		m.DetailRendered = msg.Rendered
		m.DetailScroll = 0
		return m, nil
	}

	return m, nil
}

// handleKey processes key input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Search input swallows everything except enter/esc
	if m.Searching {
		switch msg.String() {
		case "enter":
			m.Searching = false
			m.search.Blur()
			m.Filter.Search = m.search.Value()
			m.Filter.Page = 1
			m.Cursor = 0
			m.Loading = true
			return m, tea.Batch(m.spinner.Tick, m.fetchPage())
		case "esc":
			m.Searching = false
			m.search.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return m, cmd
		}
	}

	// Detail view keys
	if m.Detail != nil {
		switch msg.String() {
		case "esc", "q", "enter":
			m.Detail = nil
			m.DetailRendered = ""
			return m, nil
		case "j", "down":
			m.DetailScroll++
			return m, nil
		case "k", "up":
			if m.DetailScroll > 0 {
				m.DetailScroll--
			}
			return m, nil
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "j", "down":
		if m.List != nil && m.Cursor < len(m.List.Data)-1 {
			m.Cursor++
		}
		return m, nil

	case "k", "up":
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil

	case "l", "right":
		if m.List != nil && m.Filter.Page < m.List.TotalPages {
			m.Filter.Page++
			m.Cursor = 0
			m.Loading = true
			return m, tea.Batch(m.spinner.Tick, m.fetchPage())
		}
		return m, nil

	case "h", "left":
		if m.Filter.Page > 1 {
			m.Filter.Page--
			m.Cursor = 0
			m.Loading = true
			return m, tea.Batch(m.spinner.Tick, m.fetchPage())
		}
		return m, nil

	case "/":
		m.Searching = true
		m.search.SetValue(m.Filter.Search)
		return m, m.search.Focus()

	case "enter":
		if m.List != nil && m.Cursor < len(m.List.Data) {
			m.Loading = true
			return m, tea.Batch(m.spinner.Tick, m.fetchDetail(m.List.Data[m.Cursor].ID))
		}
		return m, nil

	case "r":
		m.Loading = true
		return m, tea.Batch(m.spinner.Tick, m.fetchPage())
	}

	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	return m.renderView()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
