package marketdata

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ProviderRegistryTestSuite struct {
	suite.Suite
}

func TestProviderRegistrySuite(t *testing.T) {
	suite.Run(t, new(ProviderRegistryTestSuite))
}

func (suite *ProviderRegistryTestSuite) TestGetSupportedProviders() {
	providers := GetSupportedProviders()

	suite.Len(providers, 2)
	suite.Contains(providers, "polygon")
	suite.Contains(providers, "binance")
}

func (suite *ProviderRegistryTestSuite) TestGetProviderInfo() {
	info, err := GetProviderInfo("polygon")
	suite.Require().NoError(err)
	suite.Equal("Polygon.io", info.DisplayName)
	suite.True(info.RequiresAuth)

	info, err = GetProviderInfo("binance")
	suite.Require().NoError(err)
	suite.False(info.RequiresAuth)

	_, err = GetProviderInfo("yahoo")
	suite.Error(err)
}

func (suite *ProviderRegistryTestSuite) TestGetDownloadConfigSchema() {
	schema, err := GetDownloadConfigSchema("polygon")
	suite.Require().NoError(err)

	var result map[string]interface{}
	suite.Require().NoError(json.Unmarshal([]byte(schema), &result))
	suite.Contains(schema, "apiKey")

	schema, err = GetDownloadConfigSchema("binance")
	suite.Require().NoError(err)
	suite.NotContains(schema, "apiKey")

	_, err = GetDownloadConfigSchema("yahoo")
	suite.Error(err)
}

func (suite *ProviderRegistryTestSuite) TestParseDownloadConfig() {
	parsed, err := ParseDownloadConfig("binance", `{
		"ticker": "BTCUSDT",
		"startDate": "2024-01-01T00:00:00Z",
		"endDate": "2024-02-01T00:00:00Z",
		"interval": "1d"
	}`)
	suite.Require().NoError(err)

	config, ok := parsed.(*BinanceDownloadConfig)
	suite.Require().True(ok)
	suite.Equal("BTCUSDT", config.Ticker)

	_, err = ParseDownloadConfig("yahoo", `{}`)
	suite.Error(err)
}
