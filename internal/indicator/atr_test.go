package indicator

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-indicators/internal/types"
)

type ATRTestSuite struct {
	suite.Suite
}

func TestATRSuite(t *testing.T) {
	suite.Run(t, new(ATRTestSuite))
}

func (suite *ATRTestSuite) TestTrueRangeFirstBarUsesHighLow() {
	bars := testBars(100)

	suite.Equal(2.0, trueRange(bars[0], bars, 0))
}

func (suite *ATRTestSuite) TestTrueRangeGapUp() {
	bars := []types.Bar{
		{High: 101, Low: 99, Close: 100},
		{High: 111, Low: 109, Close: 110},
	}

	// Gap from the previous close dominates the bar's own range.
	suite.Equal(11.0, trueRange(bars[1], bars, 1))
}

func (suite *ATRTestSuite) TestWarmupAndSeed() {
	bars := testBars(scenarioCloses()...)
	out := atrSeries(bars, 14)

	for i := 0; i < 13; i++ {
		suite.True(out[i].IsNone(), "ATR should be None at index %d", i)
	}

	sum := 0.0
	for i := 0; i < 14; i++ {
		sum += trueRange(bars[i], bars, i)
	}

	suite.InDelta(sum/14, out[13].Unwrap(), 1e-9)
}

func (suite *ATRTestSuite) TestWilderUpdate() {
	bars := testBars(scenarioCloses()...)
	out := atrSeries(bars, 14)

	prev := out[13].Unwrap()
	for i := 14; i < len(bars); i++ {
		tr := trueRange(bars[i], bars, i)
		expected := (prev*13 + tr) / 14

		suite.InDelta(expected, out[i].Unwrap(), 1e-9)
		prev = out[i].Unwrap()
	}
}

func (suite *ATRTestSuite) TestConstantRange() {
	// Flat closes with constant 2-point ranges: every TR is 2, so ATR is 2.
	bars := testBars(50, 50, 50, 50, 50, 50, 50, 50, 50, 50, 50, 50, 50, 50, 50, 50)
	out := atrSeries(bars, 14)

	for i := 13; i < len(bars); i++ {
		suite.InDelta(2.0, out[i].Unwrap(), 1e-9)
	}
}

func (suite *ATRTestSuite) TestTooShort() {
	out := atrSeries(testBars(1, 2, 3), 14)

	for _, v := range out {
		suite.True(v.IsNone())
	}
}
