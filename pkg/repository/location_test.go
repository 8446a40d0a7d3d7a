package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"

	"droscher.com/BeerHall/pkg/model"
)

type LocationTestSuite struct {
	RepositorySuite
}

func TestLocationTestSuite(t *testing.T) {
	suite.Run(t, new(LocationTestSuite))
}

func (suite *LocationTestSuite) TestGetAll_GetsLocations() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "locations"`)).
		WillReturnRows(sqlmock.NewRows([]string{"postal_code", "name"}).
			AddRow("9000", "Gent").
			AddRow("8531", "Bavikhove"))

	locations, err := suite.repository.Locations().GetAll(context.Background())

	suite.Require().NoError(err)
	suite.Len(locations, 2)
	suite.Equal("9000", locations[0].PostalCode)
	suite.Equal("Gent", locations[0].Name)
	suite.Equal("8531", locations[1].PostalCode)
	suite.Equal("Bavikhove", locations[1].Name)
}

func (suite *LocationTestSuite) TestGetBy_GetsLocation() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "locations" WHERE postal_code = $1 ORDER BY "locations"."postal_code" LIMIT $2`)).
		WithArgs("8531", 1).
		WillReturnRows(sqlmock.NewRows([]string{"postal_code", "name"}).AddRow("8531", "Bavikhove"))

	location, err := suite.repository.Locations().GetBy(context.Background(), "8531")

	suite.Require().NoError(err)
	suite.Require().NotNil(location)
	suite.Equal("Bavikhove", location.Name)
}

func (suite *LocationTestSuite) TestGetBy_UnknownPostalCodeIsAbsent() {
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "locations"`).
		WithArgs("0000", 1).
		WillReturnRows(sqlmock.NewRows([]string{"postal_code", "name"}))

	location, err := suite.repository.Locations().GetBy(context.Background(), "0000")

	suite.Require().NoError(err)
	suite.Nil(location)
}

func (suite *LocationTestSuite) TestGetBy_ReturnsStoreError() {
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "locations"`).WillReturnError(errors.New("connection reset"))

	location, err := suite.repository.Locations().GetBy(context.Background(), "9000")

	suite.Require().EqualError(err, "connection reset")
	suite.Nil(location)
}

func (suite *LocationTestSuite) TestSeedLocations_IgnoresExisting() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "locations" ("postal_code","name") VALUES ($1,$2),($3,$4) ON CONFLICT DO NOTHING`)).
		WithArgs("8531", "Bavikhove", "9000", "Gent").
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	err := suite.repository.SeedLocations(context.Background(), []model.Location{
		{PostalCode: "8531", Name: "Bavikhove"},
		{PostalCode: "9000", Name: "Gent"},
	})

	suite.Require().NoError(err)
	suite.Equal(1, suite.observedLogs.FilterMessage("seeded locations").Len())
}

func (suite *LocationTestSuite) TestSeedLocations_NothingToSeed() {
	err := suite.repository.SeedLocations(context.Background(), nil)

	suite.Require().NoError(err)
}

func (suite *LocationTestSuite) TestPing_PingsDatabase() {
	suite.Require().NoError(suite.repository.Ping(context.Background()))
}
