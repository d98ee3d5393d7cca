package indicator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type OBVTestSuite struct {
	suite.Suite
}

func TestOBVSuite(t *testing.T) {
	suite.Run(t, new(OBVTestSuite))
}

func (suite *OBVTestSuite) TestStartsAtZero() {
	bars := testBars(100, 101)
	out := obvSeries(bars)

	suite.Equal(0.0, out[0])
}

func (suite *OBVTestSuite) TestStrictlyRisingClosesSumAllVolume() {
	bars := testBars(100, 101, 102, 103, 104)
	out := obvSeries(bars)

	// Every close rises, so OBV accumulates every volume after the first bar.
	expected := 0.0
	for i := 1; i < len(bars); i++ {
		expected += bars[i].Volume
		suite.Equal(expected, out[i])
	}
}

func (suite *OBVTestSuite) TestFallingCloseSubtracts() {
	bars := testBars(100, 99)
	out := obvSeries(bars)

	suite.Equal(-bars[1].Volume, out[1])
}

func (suite *OBVTestSuite) TestFlatCloseCarriesForward() {
	bars := testBars(100, 101, 101, 100)
	out := obvSeries(bars)

	suite.Equal(out[1], out[2])
	suite.Equal(out[2]-bars[3].Volume, out[3])
}

func (suite *OBVTestSuite) TestEmpty() {
	suite.Empty(obvSeries(nil))
}
