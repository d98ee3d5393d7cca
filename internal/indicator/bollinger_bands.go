package indicator

import "math"

// bollingerSeries computes Bollinger bands: a rolling mean of closes plus
// and minus width population standard deviations (divide by N, not N-1).
// Defined from index period-1 onward.
func bollingerSeries(closes []float64, period int, width float64) (upper, lower optionSeries) {
	upper = noneSeries(len(closes))
	lower = noneSeries(len(closes))

	if len(closes) < period {
		return upper, lower
	}

	for i := period - 1; i < len(closes); i++ {
		window := closes[i-period+1 : i+1]

		mean := 0.0
		for _, v := range window {
			mean += v
		}
		mean /= float64(period)

		variance := 0.0
		for _, v := range window {
			d := v - mean
			variance += d * d
		}

		sigma := math.Sqrt(variance / float64(period))

		upper[i] = some(mean + width*sigma)
		lower[i] = some(mean - width*sigma)
	}

	return upper, lower
}
