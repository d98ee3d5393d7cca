package indicator

// rsiSeries computes Wilder's RSI. The first period-1 price changes
// accumulate raw gain/loss sums; at index period-1 the sums are divided by
// period to seed the averages, and from index period onward each average is
// smoothed as (avg*(period-1) + x)/period. Values are emitted from index
// period onward. A zero average loss yields RSI 100, never a division by
// zero.
func rsiSeries(closes []float64, period int) optionSeries {
	out := noneSeries(len(closes))
	if len(closes) <= period {
		return out
	}

	var avgGain, avgLoss float64

	for i := 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]

		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}

		switch {
		case i < period-1:
			avgGain += gain
			avgLoss += loss
		case i == period-1:
			// Seed: raw sums over the warm-up divided by the full period.
			avgGain = (avgGain + gain) / float64(period)
			avgLoss = (avgLoss + loss) / float64(period)
		default:
			avgGain = (avgGain*float64(period-1) + gain) / float64(period)
			avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)

			if avgLoss == 0 {
				out[i] = some(100)
			} else {
				rs := avgGain / avgLoss
				out[i] = some(100 - 100/(1+rs))
			}
		}
	}

	return out
}
