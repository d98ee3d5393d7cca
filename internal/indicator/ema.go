package indicator

// emaSeries computes an exponential moving average seeded with the first
// value of the series, alpha = 2/(period+1). Seeding with the raw first
// value instead of an SMA keeps the series defined from index 0, matching
// the charting contract; see the catalog notes on MACD.
func emaSeries(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}

	alpha := 2.0 / float64(period+1)

	prev := values[0]
	out[0] = prev

	for i := 1; i < len(values); i++ {
		prev = values[i]*alpha + prev*(1-alpha)
		out[i] = prev
	}

	return out
}
