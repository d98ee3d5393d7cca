package indicator

import (
	"github.com/rxtech-lab/argo-indicators/internal/types"
)

// obvSeries computes on-balance volume: starting at 0, each bar adds its
// volume when the close rose, subtracts it when the close fell, and carries
// the running total forward when the close is flat. Always defined.
func obvSeries(bars []types.Bar) []float64 {
	out := make([]float64, len(bars))
	if len(bars) == 0 {
		return out
	}

	obv := 0.0
	out[0] = obv

	for i := 1; i < len(bars); i++ {
		switch {
		case bars[i].Close > bars[i-1].Close:
			obv += bars[i].Volume
		case bars[i].Close < bars[i-1].Close:
			obv -= bars[i].Volume
		}

		out[i] = obv
	}

	return out
}
