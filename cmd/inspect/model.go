package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/moznion/go-optional"

	"github.com/rxtech-lab/argo-indicators/internal/datasource"
	"github.com/rxtech-lab/argo-indicators/internal/indicator"
	"github.com/rxtech-lab/argo-indicators/internal/logger"
	"github.com/rxtech-lab/argo-indicators/internal/types"
)

// Application states.
const (
	StatePathInput = iota
	StateIndicatorSelect
	StateTableDisplay
)

// Model is the main Bubble Tea model for the enriched bar inspector.
type Model struct {
	state         int
	pathInput     textinput.Model
	indicatorList list.Model
	barTable      table.Model
	enriched      []types.EnrichedBar
	fields        []types.FieldName
	path          string
	selection     string
	err           error
	width         int
	height        int
}

// NewModel creates a new Model with initial state.
func NewModel() Model {
	return Model{
		state:         StatePathInput,
		pathInput:     NewPathInput(),
		indicatorList: NewIndicatorList(),
		barTable:      NewBarTable(nil),
	}
}

// NewModelWithPath creates a Model that skips the path prompt.
func NewModelWithPath(path string) Model {
	m := NewModel()
	m.path = path
	m.state = StateIndicatorSelect
	m.pathInput.SetValue(path)
	m.pathInput.Blur()

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			// Only quit on 'q' if not in text input mode
			if m.state != StatePathInput {
				return m, tea.Quit
			}
		case "esc":
			return m.handleEsc()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.indicatorList.SetSize(msg.Width, msg.Height-4)
		m.barTable.SetWidth(msg.Width)
		m.barTable.SetHeight(msg.Height - 6)

		return m, nil

	case BarsLoadedMsg:
		m.enriched = msg.Enriched
		m.barTable = NewBarTable(m.fields)
		m.barTable = UpdateTableRows(m.barTable, m.enriched, m.fields)
		m.err = nil
		m.state = StateTableDisplay

		return m, nil

	case LoadErrorMsg:
		m.err = msg.Err
		m.state = StateIndicatorSelect

		return m, nil
	}

	switch m.state {
	case StatePathInput:
		return m.updatePathInput(msg)
	case StateIndicatorSelect:
		return m.updateIndicatorSelect(msg)
	case StateTableDisplay:
		return m.updateTableDisplay(msg)
	}

	return m, nil
}

func (m Model) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case StateIndicatorSelect:
		m.state = StatePathInput
		m.pathInput.Focus()

		return m, textinput.Blink
	case StateTableDisplay:
		m.enriched = nil
		m.fields = nil
		m.selection = ""
		m.err = nil
		m.state = StateIndicatorSelect
	}

	return m, nil
}

func (m Model) updatePathInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
		path := strings.TrimSpace(m.pathInput.Value())
		if path != "" {
			m.path = path
			m.state = StateIndicatorSelect
			m.pathInput.Blur()

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)

	return m, cmd
}

func (m Model) updateIndicatorSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
		if item, ok := m.indicatorList.SelectedItem().(listItem); ok {
			m.selection = item.id
			m.fields = FieldsForSelection(item.id)

			return m, loadBars(m.path)
		}
	}

	var cmd tea.Cmd
	m.indicatorList, cmd = m.indicatorList.Update(msg)

	return m, cmd
}

func (m Model) updateTableDisplay(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.barTable, cmd = m.barTable.Update(msg)

	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	var s strings.Builder

	switch m.state {
	case StatePathInput:
		s.WriteString(TitleStyle.Render("Argo Indicators - Bar Inspector"))
		s.WriteString("\n\n")
		s.WriteString("Enter the path of a bar file (.csv or .parquet):\n\n")
		s.WriteString(m.pathInput.View())
		s.WriteString("\n\n")
		s.WriteString(HelpStyle.Render("Press Enter to confirm, Ctrl+C to quit"))

	case StateIndicatorSelect:
		s.WriteString(TitleStyle.Render("Select Indicator"))
		s.WriteString("\n\n")

		if m.err != nil {
			s.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
			s.WriteString("\n\n")
		}

		s.WriteString(m.indicatorList.View())
		s.WriteString("\n")
		s.WriteString(HelpStyle.Render("Press Enter to select, Esc to go back, q to quit"))

	case StateTableDisplay:
		s.WriteString(TitleStyle.Render(fmt.Sprintf("Enriched Bars - %s (%s)", m.path, m.selection)))
		s.WriteString("\n\n")

		if len(m.enriched) == 0 {
			s.WriteString("No bars loaded.\n")
		} else {
			s.WriteString(m.barTable.View())
		}

		s.WriteString("\n")
		s.WriteString(HelpStyle.Render("q: quit | Esc: back"))
	}

	return s.String()
}

// loadBars returns a command that loads and enriches the bar file.
func loadBars(path string) tea.Cmd {
	return func() tea.Msg {
		log, err := logger.NewLogger()
		if err != nil {
			return LoadErrorMsg{Err: err}
		}

		source, err := datasource.NewFromPath(path, log)
		if err != nil {
			return LoadErrorMsg{Err: err}
		}
		defer source.Close()

		bars, err := source.Load(optional.None[time.Time](), optional.None[time.Time]())
		if err != nil {
			return LoadErrorMsg{Err: err}
		}

		return BarsLoadedMsg{Enriched: indicator.Compute(bars)}
	}
}
