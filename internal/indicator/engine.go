// Package indicator computes technical indicators over ordered OHLCV bar
// series. Compute is a pure batch transform: it takes bars sorted ascending
// by time and returns the same bars augmented with one optional field per
// indicator. A field is None until the indicator has enough history at that
// index; no indicator ever forward-fills or defaults to zero.
package indicator

import (
	"github.com/rxtech-lab/argo-indicators/internal/types"
)

// Default periods for every catalog indicator. The engine computes a fixed
// field set; callers select columns through the catalog, not by
// reconfiguring the engine.
const (
	smaShortPeriod  = 5
	smaLongPeriod   = 20
	emaPeriod       = 20
	wmaPeriod       = 20
	hmaPeriod       = 20
	bollingerPeriod = 20
	bollingerWidth  = 2.0
	rsiPeriod       = 14
	macdFastPeriod  = 12
	macdSlowPeriod  = 26
	macdSignalSpan  = 9
	donchianPeriod  = 20
	momentumPeriod  = 10
	rocPeriod       = 10
	atrPeriod       = 14
	cciPeriod       = 20
)

// Compute enriches bars with the full indicator field set. The result has
// the same length and order as the input; bars[i] and the returned slice's
// element i describe the same instant. The input is read-only and no state
// is carried between calls.
//
// Preconditions (not verified): bars sorted ascending by time, unique
// timestamps, finite prices. Non-finite input flows through the arithmetic
// unchecked.
func Compute(bars []types.Bar) []types.EnrichedBar {
	if len(bars) == 0 {
		return []types.EnrichedBar{}
	}

	closes := closePrices(bars)

	sma5 := smaSeries(closes, smaShortPeriod)
	sma20 := smaSeries(closes, smaLongPeriod)
	ema20 := emaSeries(closes, emaPeriod)
	wma20 := wmaSeries(closes, wmaPeriod)
	hma20 := hmaSeries(closes, hmaPeriod)
	bbUpper, bbLower := bollingerSeries(closes, bollingerPeriod, bollingerWidth)
	rsi14 := rsiSeries(closes, rsiPeriod)
	macd, macdSignal := macdSeries(closes)
	obv := obvSeries(bars)
	donchianHigh, donchianLow := donchianSeries(bars, donchianPeriod)
	momentum10 := momentumSeries(closes, momentumPeriod)
	roc10 := rocSeries(closes, rocPeriod)
	atr14 := atrSeries(bars, atrPeriod)
	cci20 := cciSeries(bars, cciPeriod)

	enriched := make([]types.EnrichedBar, len(bars))
	for i, bar := range bars {
		enriched[i] = types.EnrichedBar{
			Bar:          bar,
			SMA5:         sma5[i],
			SMA20:        sma20[i],
			EMA20:        some(ema20[i]),
			WMA20:        wma20[i],
			HMA20:        hma20[i],
			BBUpper:      bbUpper[i],
			BBLower:      bbLower[i],
			RSI14:        rsi14[i],
			MACD:         some(macd[i]),
			MACDSignal:   some(macdSignal[i]),
			OBV:          some(obv[i]),
			DonchianHigh: donchianHigh[i],
			DonchianLow:  donchianLow[i],
			Momentum10:   momentum10[i],
			ROC10:        roc10[i],
			ATR14:        atr14[i],
			CCI20:        cci20[i],
		}
	}

	return enriched
}

// MinBars returns the number of bars needed before every indicator field has
// a value. The slowest field is HMA20: its final smoothing pass adds three
// more indices on top of the WMA20 warm-up.
func MinBars() int {
	smooth := hmaSmoothPeriod(hmaPeriod)

	return hmaPeriod + smooth - 1
}

func closePrices(bars []types.Bar) []float64 {
	closes := make([]float64, len(bars))
	for i, bar := range bars {
		closes[i] = bar.Close
	}

	return closes
}
