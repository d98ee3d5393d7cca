package indicator

import (
	"github.com/moznion/go-optional"
)

// optionSeries is a per-index numeric series where None marks indices that
// have not accumulated enough history yet.
type optionSeries = []optional.Option[float64]

func some(v float64) optional.Option[float64] {
	return optional.Some(v)
}

func noneSeries(n int) optionSeries {
	out := make(optionSeries, n)
	for i := range out {
		out[i] = optional.None[float64]()
	}

	return out
}
