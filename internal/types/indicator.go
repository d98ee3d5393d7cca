package types

// IndicatorType identifies an indicator in the catalog.
type IndicatorType string

const (
	IndicatorTypeSMA5       IndicatorType = "sma5"
	IndicatorTypeSMA20      IndicatorType = "sma20"
	IndicatorTypeEMA20      IndicatorType = "ema20"
	IndicatorTypeWMA20      IndicatorType = "wma20"
	IndicatorTypeHMA20      IndicatorType = "hma20"
	IndicatorTypeBollinger  IndicatorType = "bollinger"
	IndicatorTypeRSI14      IndicatorType = "rsi14"
	IndicatorTypeMACD       IndicatorType = "macd"
	IndicatorTypeOBV        IndicatorType = "obv"
	IndicatorTypeDonchian   IndicatorType = "donchian"
	IndicatorTypeMomentum10 IndicatorType = "momentum10"
	IndicatorTypeROC10      IndicatorType = "roc10"
	IndicatorTypeATR14      IndicatorType = "atr14"
	IndicatorTypeCCI20      IndicatorType = "cci20"
)

// IndicatorCategory groups indicators for display purposes.
type IndicatorCategory string

const (
	CategoryMovingAverage IndicatorCategory = "moving_average"
	CategoryTrendBands    IndicatorCategory = "trend_bands"
	CategoryMomentum      IndicatorCategory = "momentum"
	CategoryVolume        IndicatorCategory = "volume"
)

// IndicatorKind determines which chart pane an indicator renders on.
type IndicatorKind string

const (
	// KindOverlay indicators share the price pane.
	KindOverlay IndicatorKind = "overlay"
	// KindOscillator indicators render on a secondary pane.
	KindOscillator IndicatorKind = "oscillator"
)

// FieldName names a computed field on EnrichedBar.
type FieldName string

const (
	FieldSMA5         FieldName = "sma5"
	FieldSMA20        FieldName = "sma20"
	FieldEMA20        FieldName = "ema20"
	FieldWMA20        FieldName = "wma20"
	FieldHMA20        FieldName = "hma20"
	FieldBBUpper      FieldName = "bb_upper"
	FieldBBLower      FieldName = "bb_lower"
	FieldRSI14        FieldName = "rsi14"
	FieldMACD         FieldName = "macd"
	FieldMACDSignal   FieldName = "macd_signal"
	FieldOBV          FieldName = "obv"
	FieldDonchianHigh FieldName = "donchian_high"
	FieldDonchianLow  FieldName = "donchian_low"
	FieldMomentum10   FieldName = "momentum10"
	FieldROC10        FieldName = "roc10"
	FieldATR14        FieldName = "atr14"
	FieldCCI20        FieldName = "cci20"
)

// AllFields lists every computed field in catalog order.
func AllFields() []FieldName {
	return []FieldName{
		FieldSMA5, FieldSMA20, FieldEMA20, FieldWMA20, FieldHMA20,
		FieldBBUpper, FieldBBLower, FieldRSI14, FieldMACD, FieldMACDSignal,
		FieldOBV, FieldDonchianHigh, FieldDonchianLow,
		FieldMomentum10, FieldROC10, FieldATR14, FieldCCI20,
	}
}
