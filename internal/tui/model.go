package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/heartmarshall/miaudota/internal/domain"
	"github.com/heartmarshall/miaudota/internal/service/gallery"
)

// Filter is the part of gallery.Controller the model drives.
type Filter interface {
	SetQuery(q string)
	SetStatus(status string)
	SetSpecies(species string)
	SetSex(sex string)
	Clear()
	Apply()
	State() gallery.State
	Close()
}

var _ Filter = (*gallery.Controller)(nil)

// ResultsMsg delivers one filter result to the model.
type ResultsMsg struct {
	Items []domain.Candidate
}

// Focus targets, in tab order.
const (
	focusQuery = iota
	focusStatus
	focusSpecies
	focusSex
	focusCount
)

// Model is the interactive gallery screen.
type Model struct {
	title     string
	filter    Filter
	input     textinput.Model
	selectors [focusCount - 1]selector
	table     table.Model
	focus     int
	results   []domain.Candidate
	loaded    bool
	width     int
	styles    styles
}

// New creates the gallery model on top of f.
func New(f Filter, title string) Model {
	in := textinput.New()
	in.Placeholder = "Buscar por nome ou descrição..."
	in.Prompt = "🔎 "
	in.CharLimit = 80
	in.Width = 40
	in.Focus()

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Nome", Width: 18},
			{Title: "Espécie", Width: 10},
			{Title: "Sexo", Width: 8},
			{Title: "Status", Width: 14},
			{Title: "ID", Width: 8},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	return Model{
		title:     title,
		filter:    f,
		input:     in,
		selectors: [focusCount - 1]selector{statusSelector(), speciesSelector(), sexSelector()},
		table:     t,
		styles:    defaultStyles(),
	}
}

// Init loads the unfiltered gallery.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.applyCmd())
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ResultsMsg:
		m.results = msg.Items
		m.loaded = true
		m.table.SetRows(rows(msg.Items))
		m.table.GotoTop()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.table.SetHeight(max(msg.Height-12, 3))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		return m.moveFocus(1), nil
	case "shift+tab":
		return m.moveFocus(-1), nil
	case "ctrl+l":
		return m.clear()
	case "enter":
		return m, m.applyCmd()
	case "up", "down", "pgup", "pgdown":
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	if m.focus == focusQuery {
		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if v := m.input.Value(); v != before {
			m.filter.SetQuery(v)
		}
		return m, cmd
	}

	switch msg.String() {
	case "left", "h":
		m.cycle(-1)
	case "right", "l", " ":
		m.cycle(1)
	}
	return m, nil
}

func (m Model) moveFocus(delta int) Model {
	m.focus = ((m.focus+delta)%focusCount + focusCount) % focusCount
	if m.focus == focusQuery {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	return m
}

// cycle changes the focused selector and forwards the new value.
func (m *Model) cycle(delta int) {
	s := &m.selectors[m.focus-1]
	s.move(delta)

	switch m.focus {
	case focusStatus:
		m.filter.SetStatus(s.value())
	case focusSpecies:
		m.filter.SetSpecies(s.value())
	case focusSex:
		m.filter.SetSex(s.value())
	}
}

// clear resets the inputs at once; the controller is cleared from a command
// because its result callback re-enters the program.
func (m Model) clear() (tea.Model, tea.Cmd) {
	m.input.SetValue("")
	for i := range m.selectors {
		m.selectors[i].reset()
	}
	f := m.filter
	return m, func() tea.Msg {
		f.Clear()
		return nil
	}
}

func (m Model) applyCmd() tea.Cmd {
	f := m.filter
	return func() tea.Msg {
		f.Apply()
		return nil
	}
}

func rows(items []domain.Candidate) []table.Row {
	out := make([]table.Row, 0, len(items))
	for _, c := range items {
		out = append(out, table.Row{
			c.Name,
			domain.Species(strings.ToUpper(c.Species)).Label(),
			domain.Sex(strings.ToUpper(c.Sex)).Label(),
			domain.PetStatus(strings.ToUpper(c.Status)).Label(),
			c.ID,
		})
	}
	return out
}

// View renders the screen.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	boxes := make([]string, 0, len(m.selectors))
	for i, s := range m.selectors {
		style := m.styles.selector
		if m.focus == i+1 {
			style = m.styles.focused
		}
		boxes = append(boxes, style.Render(m.styles.label.Render(s.name+": ")+s.label()))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	b.WriteString("\n")

	b.WriteString(m.styles.status.Render(m.statusLine()))
	b.WriteString("\n")

	if m.loaded && len(m.results) == 0 {
		b.WriteString(m.styles.empty.Render("Nenhum pet encontrado com esses filtros."))
	} else {
		b.WriteString(m.table.View())
	}
	b.WriteString("\n")

	b.WriteString(m.styles.help.Render("tab: próximo filtro • ←/→: opção • ↑/↓: rolar • enter: aplicar • ctrl+l: limpar • esc: sair"))
	return b.String()
}

func (m Model) statusLine() string {
	switch {
	case m.filter.State() != gallery.StateIdle:
		return "filtrando..."
	case !m.loaded:
		return "carregando..."
	case len(m.results) == 1:
		return "1 pet"
	default:
		return fmt.Sprintf("%d pets", len(m.results))
	}
}
