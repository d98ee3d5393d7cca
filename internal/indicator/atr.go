package indicator

import (
	"math"

	"github.com/rxtech-lab/argo-indicators/internal/types"
)

// atrSeries computes the Wilder-smoothed average true range. The first
// period true ranges are averaged to seed the ATR at index period-1; after
// that atr = (prev*(period-1) + tr)/period. Defined from index period-1
// onward.
func atrSeries(bars []types.Bar, period int) optionSeries {
	out := noneSeries(len(bars))
	if len(bars) < period {
		return out
	}

	var sum, atr float64

	for i, bar := range bars {
		tr := trueRange(bar, bars, i)

		switch {
		case i < period-1:
			sum += tr
		case i == period-1:
			atr = (sum + tr) / float64(period)
			out[i] = some(atr)
		default:
			atr = (atr*float64(period-1) + tr) / float64(period)
			out[i] = some(atr)
		}
	}

	return out
}

// trueRange is max(high-low, |high-prevClose|, |low-prevClose|). The first
// bar has no previous close and uses high-low alone.
func trueRange(bar types.Bar, bars []types.Bar, i int) float64 {
	if i == 0 {
		return bar.High - bar.Low
	}

	prevClose := bars[i-1].Close

	return math.Max(bar.High-bar.Low,
		math.Max(math.Abs(bar.High-prevClose), math.Abs(bar.Low-prevClose)))
}
