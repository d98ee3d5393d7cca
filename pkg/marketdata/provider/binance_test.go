package provider

import (
	"testing"

	"github.com/polygon-io/client-go/rest/models"
	"github.com/stretchr/testify/suite"
)

type BinanceTestSuite struct {
	suite.Suite
}

func TestBinanceSuite(t *testing.T) {
	suite.Run(t, new(BinanceTestSuite))
}

func (suite *BinanceTestSuite) TestConvertTimespanToBinanceInterval() {
	tests := []struct {
		timespan   models.Timespan
		multiplier int
		expected   string
		expectErr  bool
	}{
		{models.Minute, 1, "1m", false},
		{models.Minute, 15, "15m", false},
		{models.Hour, 4, "4h", false},
		{models.Day, 1, "1d", false},
		{models.Day, 3, "3d", false},
		{models.Week, 1, "1w", false},
		{models.Week, 2, "", true},
		{models.Month, 1, "1M", false},
		{models.Month, 6, "", true},
		{models.Second, 1, "", true},
	}

	for _, tt := range tests {
		interval, err := convertTimespanToBinanceInterval(tt.timespan, tt.multiplier)
		if tt.expectErr {
			suite.Error(err, "timespan %s multiplier %d", tt.timespan, tt.multiplier)
		} else {
			suite.Require().NoError(err)
			suite.Equal(tt.expected, interval)
		}
	}
}

func (suite *BinanceTestSuite) TestDownloadRequiresWriter() {
	client, err := NewBinanceClient()
	suite.Require().NoError(err)

	_, err = client.Download(suite.T().Context(), "BTCUSDT",
		testTime(2024, 1, 1), testTime(2024, 1, 2), 1, models.Day, nil)
	suite.Error(err)
}
