package indicator

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-indicators/internal/types"
)

type CatalogTestSuite struct {
	suite.Suite
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (suite *CatalogTestSuite) TestUniqueIDs() {
	seen := make(map[types.IndicatorType]bool)

	for _, def := range Catalog() {
		suite.False(seen[def.ID], "duplicate catalog id %s", def.ID)
		seen[def.ID] = true
	}
}

func (suite *CatalogTestSuite) TestEveryEntryHasFieldsAndColors() {
	for _, def := range Catalog() {
		suite.NotEmpty(def.Label, "catalog entry %s has no label", def.ID)
		suite.NotEmpty(def.Fields, "catalog entry %s populates no fields", def.ID)
		suite.LessOrEqual(len(def.Fields), 2)
		suite.Len(def.Colors, len(def.Fields), "catalog entry %s colors should match fields", def.ID)
	}
}

func (suite *CatalogTestSuite) TestFieldsCoverEveryEnrichedColumn() {
	covered := make(map[types.FieldName]bool)

	for _, def := range Catalog() {
		for _, field := range def.Fields {
			suite.False(covered[field], "field %s claimed by two catalog entries", field)
			covered[field] = true
		}
	}

	for _, field := range types.AllFields() {
		suite.True(covered[field], "field %s not claimed by any catalog entry", field)
	}
}

func (suite *CatalogTestSuite) TestLookup() {
	def, ok := Lookup(types.IndicatorTypeMACD)
	suite.True(ok)
	suite.Equal(types.KindOscillator, def.Kind)
	suite.Equal([]types.FieldName{types.FieldMACD, types.FieldMACDSignal}, def.Fields)

	_, ok = Lookup("nope")
	suite.False(ok)
}

func (suite *CatalogTestSuite) TestFieldsFor() {
	fields := FieldsFor([]types.IndicatorType{
		types.IndicatorTypeBollinger,
		types.IndicatorTypeRSI14,
		"unknown",
	})

	suite.Equal([]types.FieldName{types.FieldBBUpper, types.FieldBBLower, types.FieldRSI14}, fields)
}

func (suite *CatalogTestSuite) TestFieldsForEmptySelectsEverything() {
	suite.Equal(types.AllFields(), FieldsFor(nil))
}

func (suite *CatalogTestSuite) TestCatalogCopyIsIsolated() {
	first := Catalog()
	first[0].Label = "mutated"

	second := Catalog()
	suite.NotEqual("mutated", second[0].Label)
}

func (suite *CatalogTestSuite) TestOverlayOscillatorSplit() {
	overlays, oscillators := 0, 0

	for _, def := range Catalog() {
		switch def.Kind {
		case types.KindOverlay:
			overlays++
		case types.KindOscillator:
			oscillators++
		default:
			suite.Failf("unexpected kind", "catalog entry %s has kind %s", def.ID, def.Kind)
		}
	}

	suite.Equal(7, overlays)
	suite.Equal(7, oscillators)
}
