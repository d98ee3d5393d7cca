package indicator

import (
	"github.com/rxtech-lab/argo-indicators/internal/types"
)

// donchianSeries computes Donchian channel bounds: the rolling max of highs
// and min of lows over the trailing period bars, inclusive of the current
// bar. Defined from index period-1 onward.
func donchianSeries(bars []types.Bar, period int) (high, low optionSeries) {
	high = noneSeries(len(bars))
	low = noneSeries(len(bars))

	if len(bars) < period {
		return high, low
	}

	for i := period - 1; i < len(bars); i++ {
		maxHigh := bars[i-period+1].High
		minLow := bars[i-period+1].Low

		for j := i - period + 2; j <= i; j++ {
			if bars[j].High > maxHigh {
				maxHigh = bars[j].High
			}

			if bars[j].Low < minLow {
				minLow = bars[j].Low
			}
		}

		high[i] = some(maxHigh)
		low[i] = some(minLow)
	}

	return high, low
}
