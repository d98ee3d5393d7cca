package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/rxtech-lab/argo-indicators/internal/indicator"
	"github.com/rxtech-lab/argo-indicators/internal/types"
)

const allIndicatorsItem = "all"

// listItem implements list.Item for the indicator list.
type listItem struct {
	id          string
	description string
}

func (i listItem) Title() string       { return i.id }
func (i listItem) Description() string { return i.description }
func (i listItem) FilterValue() string { return i.id }

// NewPathInput creates a text input for the bar file path.
func NewPathInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "./data/BTCUSDT_2024-01-01_2024-02-01_1_day.csv"
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 70
	ti.Prompt = "> "

	return ti
}

// NewIndicatorList creates the indicator selection list from the catalog.
func NewIndicatorList() list.Model {
	catalog := indicator.Catalog()

	items := make([]list.Item, 0, len(catalog)+1)
	items = append(items, listItem{
		id:          allIndicatorsItem,
		description: "Show every indicator column",
	})

	for _, def := range catalog {
		items = append(items, listItem{
			id:          string(def.ID),
			description: fmt.Sprintf("%s (%s, %s)", def.Label, def.Category, def.Kind),
		})
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true

	l := list.New(items, delegate, 0, 0)
	l.Title = "Select Indicator"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return l
}

// FieldsForSelection resolves the selected list item to indicator fields.
func FieldsForSelection(id string) []types.FieldName {
	if id == allIndicatorsItem {
		return types.AllFields()
	}

	return indicator.FieldsFor([]types.IndicatorType{types.IndicatorType(id)})
}

// NewBarTable creates a table for enriched bars with one column per selected
// field.
func NewBarTable(fields []types.FieldName) table.Model {
	columns := []table.Column{
		{Title: "Time", Width: 16},
		{Title: "Close", Width: 12},
	}

	for _, field := range fields {
		columns = append(columns, table.Column{Title: string(field), Width: 14})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	t.SetStyles(s)

	return t
}

// UpdateTableRows fills the table with enriched bar rows.
func UpdateTableRows(t table.Model, enriched []types.EnrichedBar, fields []types.FieldName) table.Model {
	rows := make([]table.Row, 0, len(enriched))

	for i := range enriched {
		bar := &enriched[i]

		row := table.Row{
			bar.Time.Format("2006-01-02 15:04"),
			fmt.Sprintf("%.4f", bar.Close),
		}

		for _, field := range fields {
			row = append(row, FormatOptionValue(bar.Field(field)))
		}

		rows = append(rows, row)
	}

	t.SetRows(rows)

	return t
}
