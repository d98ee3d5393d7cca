package indicator

import (
	"math"

	"github.com/rxtech-lab/argo-indicators/internal/types"
)

// cciSeries computes the commodity channel index over typical prices
// (high+low+close)/3: the deviation of the current typical price from its
// rolling SMA, scaled by 0.015 times the mean absolute deviation. Defined
// from index period-1 onward; a zero mean deviation (flat window) yields
// None, never Inf or NaN.
func cciSeries(bars []types.Bar, period int) optionSeries {
	out := noneSeries(len(bars))
	if len(bars) < period {
		return out
	}

	typical := make([]float64, len(bars))
	for i, bar := range bars {
		typical[i] = (bar.High + bar.Low + bar.Close) / 3
	}

	for i := period - 1; i < len(bars); i++ {
		window := typical[i-period+1 : i+1]

		mean := 0.0
		for _, v := range window {
			mean += v
		}
		mean /= float64(period)

		meanDeviation := 0.0
		for _, v := range window {
			meanDeviation += math.Abs(v - mean)
		}
		meanDeviation /= float64(period)

		if meanDeviation == 0 {
			continue
		}

		out[i] = some((typical[i] - mean) / (0.015 * meanDeviation))
	}

	return out
}
