package indicator

// momentumSeries computes close[i] - close[i-period]. Defined from index
// period onward.
func momentumSeries(closes []float64, period int) optionSeries {
	out := noneSeries(len(closes))

	for i := period; i < len(closes); i++ {
		out[i] = some(closes[i] - closes[i-period])
	}

	return out
}

// rocSeries computes the rate of change (close[i]/close[i-period] - 1)*100.
// Defined from index period onward; a zero reference close yields None.
func rocSeries(closes []float64, period int) optionSeries {
	out := noneSeries(len(closes))

	for i := period; i < len(closes); i++ {
		if closes[i-period] == 0 {
			continue
		}

		out[i] = some((closes[i]/closes[i-period] - 1) * 100)
	}

	return out
}
