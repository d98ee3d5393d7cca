package indicator

// macdSeries computes the MACD line EMA(12)-EMA(26) and its signal line,
// an EMA(9) of the MACD values seeded with the first MACD value. Both
// series follow the EMA seeding convention and are therefore defined from
// index 0.
func macdSeries(closes []float64) (macd, signal []float64) {
	fast := emaSeries(closes, macdFastPeriod)
	slow := emaSeries(closes, macdSlowPeriod)

	macd = make([]float64, len(closes))
	for i := range closes {
		macd[i] = fast[i] - slow[i]
	}

	signal = emaSeries(macd, macdSignalSpan)

	return macd, signal
}
