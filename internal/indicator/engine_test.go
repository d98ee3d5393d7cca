package indicator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-indicators/internal/types"
)

// testBars builds a daily bar series from close prices. Highs and lows
// bracket the close by one point so channel indicators have real ranges.
func testBars(closes ...float64) []types.Bar {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]types.Bar, len(closes))

	for i, c := range closes {
		bars[i] = types.Bar{
			Time:   start.AddDate(0, 0, i),
			Open:   c,
			High:   c + 1,
			Low:    c - 1,
			Close:  c,
			Volume: 1000,
		}
	}

	return bars
}

// scenarioCloses is the 25-point daily series used by the scenario tests.
func scenarioCloses() []float64 {
	return []float64{
		100, 101, 99, 102, 98, 103, 97, 104, 96, 105,
		95, 106, 94, 107, 93, 108, 92, 109, 91, 110,
		90, 111, 89, 112, 88,
	}
}

type EngineTestSuite struct {
	suite.Suite
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (suite *EngineTestSuite) TestEmptyInput() {
	enriched := Compute([]types.Bar{})

	suite.NotNil(enriched)
	suite.Empty(enriched)
}

func (suite *EngineTestSuite) TestLengthAndOrderPreserved() {
	bars := testBars(scenarioCloses()...)
	enriched := Compute(bars)

	suite.Len(enriched, len(bars))

	for i := range bars {
		suite.Equal(bars[i].Time, enriched[i].Time, "timestamp mismatch at index %d", i)
		suite.Equal(bars[i].Close, enriched[i].Close)
	}
}

func (suite *EngineTestSuite) TestInputNotMutated() {
	bars := testBars(scenarioCloses()...)

	before := make([]types.Bar, len(bars))
	copy(before, bars)

	Compute(bars)

	suite.Equal(before, bars)
}

func (suite *EngineTestSuite) TestWarmupBoundaries() {
	enriched := Compute(testBars(scenarioCloses()...))

	// field -> first defined index
	boundaries := map[types.FieldName]int{
		types.FieldSMA5:         4,
		types.FieldSMA20:        19,
		types.FieldEMA20:        0,
		types.FieldWMA20:        19,
		types.FieldHMA20:        22, // WMA(20) from 19, plus WMA(4) smoothing
		types.FieldBBUpper:      19,
		types.FieldBBLower:      19,
		types.FieldRSI14:        14,
		types.FieldMACD:         0,
		types.FieldMACDSignal:   0,
		types.FieldOBV:          0,
		types.FieldDonchianHigh: 19,
		types.FieldDonchianLow:  19,
		types.FieldMomentum10:   10,
		types.FieldROC10:        10,
		types.FieldATR14:        13,
		types.FieldCCI20:        19,
	}

	for field, first := range boundaries {
		for i := range enriched {
			value := enriched[i].Field(field)
			if i < first {
				suite.True(value.IsNone(), "%s should be None at index %d", field, i)
			} else {
				suite.True(value.IsSome(), "%s should be defined at index %d", field, i)
			}
		}
	}
}

func (suite *EngineTestSuite) TestScenarioSMA20AndDonchian() {
	closes := scenarioCloses()
	bars := testBars(closes...)
	enriched := Compute(bars)

	sum := 0.0
	for _, c := range closes[:20] {
		sum += c
	}

	suite.InDelta(sum/20, enriched[19].SMA20.Unwrap(), 1e-9)

	maxHigh := bars[0].High
	minLow := bars[0].Low

	for _, bar := range bars[1:20] {
		if bar.High > maxHigh {
			maxHigh = bar.High
		}

		if bar.Low < minLow {
			minLow = bar.Low
		}
	}

	suite.Equal(maxHigh, enriched[19].DonchianHigh.Unwrap())
	suite.Equal(minLow, enriched[19].DonchianLow.Unwrap())
}

func (suite *EngineTestSuite) TestMACDConsistentWithEMA() {
	closes := scenarioCloses()
	enriched := Compute(testBars(closes...))

	ema12 := emaSeries(closes, 12)
	ema26 := emaSeries(closes, 26)

	for i := range closes {
		suite.InDelta(ema12[i]-ema26[i], enriched[i].MACD.Unwrap(), 1e-9,
			"macd should equal ema12-ema26 at index %d", i)
	}
}

func (suite *EngineTestSuite) TestDeterministic() {
	bars := testBars(scenarioCloses()...)

	first := Compute(bars)
	second := Compute(bars)

	suite.Equal(first, second)
}

func (suite *EngineTestSuite) TestMinBars() {
	suite.Equal(23, MinBars())

	bars := testBars(scenarioCloses()...)
	suite.Require().GreaterOrEqual(len(bars), MinBars())

	enriched := Compute(bars)
	last := enriched[MinBars()-1]

	for _, field := range types.AllFields() {
		suite.True(last.Field(field).IsSome(), "field %s should be defined after MinBars bars", field)
	}
}
