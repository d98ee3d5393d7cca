package indicator

import (
	"github.com/rxtech-lab/argo-indicators/internal/types"
)

// Definition is one catalog entry: display metadata plus the EnrichedBar
// fields the indicator populates. The catalog is configuration data, built
// once and never mutated; the engine itself does not read it.
type Definition struct {
	ID       types.IndicatorType
	Label    string
	Category types.IndicatorCategory
	Kind     types.IndicatorKind
	Fields   []types.FieldName
	Colors   []string
}

var catalog = []Definition{
	{
		ID:       types.IndicatorTypeSMA5,
		Label:    "SMA (5)",
		Category: types.CategoryMovingAverage,
		Kind:     types.KindOverlay,
		Fields:   []types.FieldName{types.FieldSMA5},
		Colors:   []string{"#f59e0b"},
	},
	{
		ID:       types.IndicatorTypeSMA20,
		Label:    "SMA (20)",
		Category: types.CategoryMovingAverage,
		Kind:     types.KindOverlay,
		Fields:   []types.FieldName{types.FieldSMA20},
		Colors:   []string{"#3b82f6"},
	},
	{
		ID:       types.IndicatorTypeEMA20,
		Label:    "EMA (20)",
		Category: types.CategoryMovingAverage,
		Kind:     types.KindOverlay,
		Fields:   []types.FieldName{types.FieldEMA20},
		Colors:   []string{"#8b5cf6"},
	},
	{
		ID:       types.IndicatorTypeWMA20,
		Label:    "WMA (20)",
		Category: types.CategoryMovingAverage,
		Kind:     types.KindOverlay,
		Fields:   []types.FieldName{types.FieldWMA20},
		Colors:   []string{"#ec4899"},
	},
	{
		ID:       types.IndicatorTypeHMA20,
		Label:    "Hull MA (20)",
		Category: types.CategoryMovingAverage,
		Kind:     types.KindOverlay,
		Fields:   []types.FieldName{types.FieldHMA20},
		Colors:   []string{"#14b8a6"},
	},
	{
		ID:       types.IndicatorTypeBollinger,
		Label:    "Bollinger Bands (20, 2)",
		Category: types.CategoryTrendBands,
		Kind:     types.KindOverlay,
		Fields:   []types.FieldName{types.FieldBBUpper, types.FieldBBLower},
		Colors:   []string{"#64748b", "#64748b"},
	},
	{
		ID:       types.IndicatorTypeDonchian,
		Label:    "Donchian Channel (20)",
		Category: types.CategoryTrendBands,
		Kind:     types.KindOverlay,
		Fields:   []types.FieldName{types.FieldDonchianHigh, types.FieldDonchianLow},
		Colors:   []string{"#0ea5e9", "#0ea5e9"},
	},
	{
		ID:       types.IndicatorTypeRSI14,
		Label:    "RSI (14)",
		Category: types.CategoryMomentum,
		Kind:     types.KindOscillator,
		Fields:   []types.FieldName{types.FieldRSI14},
		Colors:   []string{"#a855f7"},
	},
	{
		ID:       types.IndicatorTypeMACD,
		Label:    "MACD (12, 26, 9)",
		Category: types.CategoryMomentum,
		Kind:     types.KindOscillator,
		Fields:   []types.FieldName{types.FieldMACD, types.FieldMACDSignal},
		Colors:   []string{"#22c55e", "#ef4444"},
	},
	{
		ID:       types.IndicatorTypeMomentum10,
		Label:    "Momentum (10)",
		Category: types.CategoryMomentum,
		Kind:     types.KindOscillator,
		Fields:   []types.FieldName{types.FieldMomentum10},
		Colors:   []string{"#eab308"},
	},
	{
		ID:       types.IndicatorTypeROC10,
		Label:    "ROC (10)",
		Category: types.CategoryMomentum,
		Kind:     types.KindOscillator,
		Fields:   []types.FieldName{types.FieldROC10},
		Colors:   []string{"#f97316"},
	},
	{
		ID:       types.IndicatorTypeATR14,
		Label:    "ATR (14)",
		Category: types.CategoryMomentum,
		Kind:     types.KindOscillator,
		Fields:   []types.FieldName{types.FieldATR14},
		Colors:   []string{"#06b6d4"},
	},
	{
		ID:       types.IndicatorTypeCCI20,
		Label:    "CCI (20)",
		Category: types.CategoryMomentum,
		Kind:     types.KindOscillator,
		Fields:   []types.FieldName{types.FieldCCI20},
		Colors:   []string{"#d946ef"},
	},
	{
		ID:       types.IndicatorTypeOBV,
		Label:    "On-Balance Volume",
		Category: types.CategoryVolume,
		Kind:     types.KindOscillator,
		Fields:   []types.FieldName{types.FieldOBV},
		Colors:   []string{"#84cc16"},
	},
}

var catalogByID = func() map[types.IndicatorType]Definition {
	m := make(map[types.IndicatorType]Definition, len(catalog))
	for _, def := range catalog {
		m[def.ID] = def
	}

	return m
}()

// Catalog returns every indicator definition in display order. The returned
// slice is a copy; mutating it does not affect the catalog.
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)

	return out
}

// Lookup returns the definition for the given indicator id.
func Lookup(id types.IndicatorType) (Definition, bool) {
	def, ok := catalogByID[id]

	return def, ok
}

// FieldsFor resolves a list of indicator ids to the EnrichedBar fields they
// populate, preserving catalog order within each indicator. Unknown ids are
// skipped. An empty id list selects every field.
func FieldsFor(ids []types.IndicatorType) []types.FieldName {
	if len(ids) == 0 {
		return types.AllFields()
	}

	fields := make([]types.FieldName, 0, len(ids)*2)

	for _, id := range ids {
		def, ok := catalogByID[id]
		if !ok {
			continue
		}

		fields = append(fields, def.Fields...)
	}

	return fields
}
