package indicator

import (
	"math"

	"github.com/moznion/go-optional"
)

// smaSeries computes a simple moving average with a running-sum sliding
// window. Defined from index period-1 onward.
func smaSeries(values []float64, period int) optionSeries {
	out := noneSeries(len(values))
	if len(values) < period {
		return out
	}

	sum := 0.0
	for i := 0; i < period; i++ {
		sum += values[i]
	}

	out[period-1] = some(sum / float64(period))

	for i := period; i < len(values); i++ {
		sum += values[i] - values[i-period]
		out[i] = some(sum / float64(period))
	}

	return out
}

// wmaSeries computes a linearly weighted moving average: weights 1..period
// with the most recent value weighted highest, normalized by
// period*(period+1)/2. Defined from index period-1 onward.
func wmaSeries(values []float64, period int) optionSeries {
	out := noneSeries(len(values))
	if len(values) < period {
		return out
	}

	denominator := float64(period*(period+1)) / 2.0

	for i := period - 1; i < len(values); i++ {
		sum := 0.0
		for j := 0; j < period; j++ {
			weight := float64(j + 1)
			sum += values[i-period+1+j] * weight
		}

		out[i] = some(sum / denominator)
	}

	return out
}

// hmaSeries computes the Hull moving average: the difference series
// 2*WMA(period/2) - WMA(period) smoothed by a WMA over round(sqrt(period))
// bars. An index is defined only when its entire smoothing window of the
// difference series is defined; missingness never propagates past that
// window.
func hmaSeries(values []float64, period int) optionSeries {
	half := wmaSeries(values, period/2)
	full := wmaSeries(values, period)

	diff := make(optionSeries, len(values))
	for i := range values {
		if half[i].IsNone() || full[i].IsNone() {
			diff[i] = optional.None[float64]()
			continue
		}

		diff[i] = some(2*half[i].Unwrap() - full[i].Unwrap())
	}

	return wmaOverOptions(diff, hmaSmoothPeriod(period))
}

// hmaSmoothPeriod is the length of the final Hull smoothing window,
// round(sqrt(period)).
func hmaSmoothPeriod(period int) int {
	return int(math.Round(math.Sqrt(float64(period))))
}

// wmaOverOptions applies a weighted moving average to an already-sparse
// series. The window is defined only when every entry in it is defined.
func wmaOverOptions(values optionSeries, period int) optionSeries {
	out := noneSeries(len(values))
	if len(values) < period {
		return out
	}

	denominator := float64(period*(period+1)) / 2.0

	for i := period - 1; i < len(values); i++ {
		sum := 0.0
		complete := true

		for j := 0; j < period; j++ {
			v := values[i-period+1+j]
			if v.IsNone() {
				complete = false
				break
			}

			sum += v.Unwrap() * float64(j+1)
		}

		if complete {
			out[i] = some(sum / denominator)
		}
	}

	return out
}
