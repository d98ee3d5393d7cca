package types

import (
	"time"

	"github.com/moznion/go-optional"
)

// Bar is a single OHLCV price bar. Bars handed to the indicator engine are
// expected to be sorted ascending by time with unique timestamps; the engine
// does not verify this.
type Bar struct {
	Time   time.Time `csv:"time"   json:"time"`
	Open   float64   `csv:"open"   json:"open"`
	High   float64   `csv:"high"   json:"high"`
	Low    float64   `csv:"low"    json:"low"`
	Close  float64   `csv:"close"  json:"close"`
	Volume float64   `csv:"volume" json:"volume"`
}

// EnrichedBar is a Bar plus the computed indicator fields. Every field is
// optional: None until the indicator has enough history at that index, and
// None for guarded degenerate cases (see the per-indicator rules in the
// indicator package). None marshals to JSON null.
type EnrichedBar struct {
	Bar

	SMA5         optional.Option[float64] `json:"sma5"`
	SMA20        optional.Option[float64] `json:"sma20"`
	EMA20        optional.Option[float64] `json:"ema20"`
	WMA20        optional.Option[float64] `json:"wma20"`
	HMA20        optional.Option[float64] `json:"hma20"`
	BBUpper      optional.Option[float64] `json:"bb_upper"`
	BBLower      optional.Option[float64] `json:"bb_lower"`
	RSI14        optional.Option[float64] `json:"rsi14"`
	MACD         optional.Option[float64] `json:"macd"`
	MACDSignal   optional.Option[float64] `json:"macd_signal"`
	OBV          optional.Option[float64] `json:"obv"`
	DonchianHigh optional.Option[float64] `json:"donchian_high"`
	DonchianLow  optional.Option[float64] `json:"donchian_low"`
	Momentum10   optional.Option[float64] `json:"momentum10"`
	ROC10        optional.Option[float64] `json:"roc10"`
	ATR14        optional.Option[float64] `json:"atr14"`
	CCI20        optional.Option[float64] `json:"cci20"`
}

// Field returns the indicator field with the given name. Unknown names
// return None so callers can iterate catalog field lists without guards.
func (b *EnrichedBar) Field(name FieldName) optional.Option[float64] {
	switch name {
	case FieldSMA5:
		return b.SMA5
	case FieldSMA20:
		return b.SMA20
	case FieldEMA20:
		return b.EMA20
	case FieldWMA20:
		return b.WMA20
	case FieldHMA20:
		return b.HMA20
	case FieldBBUpper:
		return b.BBUpper
	case FieldBBLower:
		return b.BBLower
	case FieldRSI14:
		return b.RSI14
	case FieldMACD:
		return b.MACD
	case FieldMACDSignal:
		return b.MACDSignal
	case FieldOBV:
		return b.OBV
	case FieldDonchianHigh:
		return b.DonchianHigh
	case FieldDonchianLow:
		return b.DonchianLow
	case FieldMomentum10:
		return b.Momentum10
	case FieldROC10:
		return b.ROC10
	case FieldATR14:
		return b.ATR14
	case FieldCCI20:
		return b.CCI20
	default:
		return optional.None[float64]()
	}
}
