package main

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxtech-lab/argo-indicators/internal/indicator"
	"github.com/rxtech-lab/argo-indicators/internal/types"
)

func testEnrichedBars(t *testing.T, n int) []types.EnrichedBar {
	t.Helper()

	bars := make([]types.Bar, n)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := range bars {
		price := 100.0 + float64(i)
		bars[i] = types.Bar{
			Time:   base.AddDate(0, 0, i),
			Open:   price,
			High:   price + 1,
			Low:    price - 1,
			Close:  price,
			Volume: 1000,
		}
	}

	return indicator.Compute(bars)
}

func TestNewModel(t *testing.T) {
	m := NewModel()

	assert.Equal(t, StatePathInput, m.state)
	assert.Empty(t, m.path)
	assert.Empty(t, m.enriched)
	assert.NoError(t, m.err)
}

func TestNewModelWithPath(t *testing.T) {
	m := NewModelWithPath("./data/bars.csv")

	assert.Equal(t, StateIndicatorSelect, m.state)
	assert.Equal(t, "./data/bars.csv", m.path)
	assert.Equal(t, "./data/bars.csv", m.pathInput.Value())
}

func TestPathInputView(t *testing.T) {
	m := NewModel()
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))

	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("Bar Inspector"))
	}, teatest.WithDuration(2*time.Second))

	tm.Quit()
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))
}

func TestPathInputAdvancesToIndicatorSelect(t *testing.T) {
	m := NewModel()
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))

	tm.Type("./data/bars.csv")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("Select Indicator"))
	}, teatest.WithDuration(2*time.Second))

	tm.Quit()
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))
}

func TestPathInputEnterRequiresPath(t *testing.T) {
	m := NewModel()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next, ok := updated.(Model)
	require.True(t, ok)

	assert.Equal(t, StatePathInput, next.state)
}

func TestBarsLoadedMsgShowsTable(t *testing.T) {
	m := NewModelWithPath("./data/bars.csv")
	m.selection = string(types.IndicatorTypeSMA5)
	m.fields = FieldsForSelection(string(types.IndicatorTypeSMA5))

	enriched := testEnrichedBars(t, 30)

	updated, _ := m.Update(BarsLoadedMsg{Enriched: enriched})
	next, ok := updated.(Model)
	require.True(t, ok)

	assert.Equal(t, StateTableDisplay, next.state)
	assert.Len(t, next.enriched, 30)
	assert.Len(t, next.barTable.Rows(), 30)
	assert.NoError(t, next.err)

	view := next.View()
	assert.Contains(t, view, "Enriched Bars")
	assert.Contains(t, view, "./data/bars.csv")
}

func TestLoadErrorMsgReturnsToIndicatorSelect(t *testing.T) {
	m := NewModelWithPath("./missing.csv")

	updated, _ := m.Update(LoadErrorMsg{Err: fmt.Errorf("file not found")})
	next, ok := updated.(Model)
	require.True(t, ok)

	assert.Equal(t, StateIndicatorSelect, next.state)
	assert.Error(t, next.err)
	assert.Contains(t, next.View(), "file not found")
}

func TestEscFromTableClearsState(t *testing.T) {
	m := NewModelWithPath("./data/bars.csv")
	m.selection = allIndicatorsItem
	m.fields = types.AllFields()
	m.enriched = testEnrichedBars(t, 5)
	m.state = StateTableDisplay

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	next, ok := updated.(Model)
	require.True(t, ok)

	assert.Equal(t, StateIndicatorSelect, next.state)
	assert.Empty(t, next.enriched)
	assert.Empty(t, next.fields)
	assert.Empty(t, next.selection)
}

func TestEscFromIndicatorSelectReturnsToPathInput(t *testing.T) {
	m := NewModelWithPath("./data/bars.csv")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	next, ok := updated.(Model)
	require.True(t, ok)

	assert.Equal(t, StatePathInput, next.state)
}

func TestQuitFromTableDisplay(t *testing.T) {
	m := NewModelWithPath("./data/bars.csv")
	m.state = StateTableDisplay

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestQTypesIntoPathInput(t *testing.T) {
	m := NewModel()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	next, ok := updated.(Model)
	require.True(t, ok)

	assert.Equal(t, StatePathInput, next.state)
	assert.Equal(t, "q", next.pathInput.Value())
}

func TestWindowSizeResizesViews(t *testing.T) {
	m := NewModel()

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	next, ok := updated.(Model)
	require.True(t, ok)

	assert.Equal(t, 120, next.width)
	assert.Equal(t, 40, next.height)
}

func TestFieldsForSelection(t *testing.T) {
	all := FieldsForSelection(allIndicatorsItem)
	assert.Len(t, all, len(types.AllFields()))

	single := FieldsForSelection(string(types.IndicatorTypeRSI14))
	assert.Equal(t, []types.FieldName{types.FieldRSI14}, single)
}

func TestFormatOptionValue(t *testing.T) {
	tests := []struct {
		name     string
		value    optional.Option[float64]
		expected string
	}{
		{
			name:     "none renders dash",
			value:    optional.None[float64](),
			expected: "-",
		},
		{
			name:     "some renders four decimals",
			value:    optional.Some(101.5),
			expected: "101.5000",
		},
		{
			name:     "zero is a real value",
			value:    optional.Some(0.0),
			expected: "0.0000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatOptionValue(tt.value))
		})
	}
}

func TestUpdateTableRowsWarmup(t *testing.T) {
	enriched := testEnrichedBars(t, 6)
	fields := []types.FieldName{types.FieldSMA5}

	tbl := NewBarTable(fields)
	tbl = UpdateTableRows(tbl, enriched, fields)

	rows := tbl.Rows()
	require.Len(t, rows, 6)

	// sma5 is undefined for the first four bars.
	assert.Equal(t, "-", rows[0][2])
	assert.Equal(t, "-", rows[3][2])
	assert.Equal(t, "102.0000", rows[4][2])
}
