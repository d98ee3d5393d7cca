package marketdata

import (
	"testing"

	"github.com/polygon-io/client-go/rest/models"
	"github.com/stretchr/testify/suite"
)

type DownloadConfigTestSuite struct {
	suite.Suite
}

func TestDownloadConfigSuite(t *testing.T) {
	suite.Run(t, new(DownloadConfigTestSuite))
}

func validBaseConfig() BaseDownloadConfig {
	return BaseDownloadConfig{
		Ticker:    "BTCUSDT",
		StartDate: "2024-01-01T00:00:00Z",
		EndDate:   "2024-02-01T00:00:00Z",
		Interval:  "1d",
	}
}

func (suite *DownloadConfigTestSuite) TestBaseValidate() {
	config := validBaseConfig()
	suite.NoError(config.Validate())
}

func (suite *DownloadConfigTestSuite) TestBaseValidateMissingTicker() {
	config := validBaseConfig()
	config.Ticker = ""
	suite.Error(config.Validate())
}

func (suite *DownloadConfigTestSuite) TestBaseValidateBadInterval() {
	config := validBaseConfig()
	config.Interval = "7m"
	suite.Error(config.Validate())
}

func (suite *DownloadConfigTestSuite) TestBaseValidateBadDate() {
	config := validBaseConfig()
	config.StartDate = "01/02/2024"
	suite.Error(config.Validate())
}

func (suite *DownloadConfigTestSuite) TestPolygonValidateRequiresApiKey() {
	config := PolygonDownloadConfig{
		BaseDownloadConfig: validBaseConfig(),
		ApiKey:             "",
	}
	suite.Error(config.Validate())

	config.ApiKey = "key"
	suite.NoError(config.Validate())
}

func (suite *DownloadConfigTestSuite) TestToDownloadParams() {
	config := validBaseConfig()
	config.Interval = "15m"

	params, err := config.ToDownloadParams()
	suite.Require().NoError(err)

	suite.Equal("BTCUSDT", params.Ticker)
	suite.Equal(15, params.Multiplier)
	suite.Equal(models.Minute, params.Timespan)
	suite.True(params.EndDate.After(params.StartDate))
}

func (suite *DownloadConfigTestSuite) TestToClientConfig() {
	polygonConfig := PolygonDownloadConfig{
		BaseDownloadConfig: validBaseConfig(),
		ApiKey:             "key",
	}

	clientConfig := polygonConfig.ToClientConfig("./data", WriterDuckDB)
	suite.Equal(ProviderPolygon, clientConfig.ProviderType)
	suite.Equal(WriterDuckDB, clientConfig.WriterType)
	suite.Equal("key", clientConfig.PolygonApiKey)

	binanceConfig := BinanceDownloadConfig{BaseDownloadConfig: validBaseConfig()}
	clientConfig = binanceConfig.ToClientConfig("./data", WriterCSV)
	suite.Equal(ProviderBinance, clientConfig.ProviderType)
	suite.Equal(WriterCSV, clientConfig.WriterType)
	suite.Empty(clientConfig.PolygonApiKey)
}

func (suite *DownloadConfigTestSuite) TestParsePolygonConfig() {
	config, err := ParsePolygonConfig(`{
		"ticker": "SPY",
		"startDate": "2024-01-01T00:00:00Z",
		"endDate": "2024-02-01T00:00:00Z",
		"interval": "1h",
		"apiKey": "key"
	}`)
	suite.Require().NoError(err)
	suite.Equal("SPY", config.Ticker)
	suite.Equal("1h", config.Interval)
}

func (suite *DownloadConfigTestSuite) TestParseBinanceConfig() {
	config, err := ParseBinanceConfig(`{
		"ticker": "ETHUSDT",
		"startDate": "2024-01-01T00:00:00Z",
		"endDate": "2024-02-01T00:00:00Z",
		"interval": "5m"
	}`)
	suite.Require().NoError(err)
	suite.Equal("ETHUSDT", config.Ticker)
}

func (suite *DownloadConfigTestSuite) TestParseInvalidJSON() {
	_, err := ParsePolygonConfig(`{not json`)
	suite.Error(err)

	_, err = ParseBinanceConfig(`{"ticker": "ETHUSDT"}`)
	suite.Error(err)
}
