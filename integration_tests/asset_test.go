package integration_tests

import (
	"log"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/vaulthive/vaulthive.go/controllers"
	"github.com/vaulthive/vaulthive.go/db/models"
	"github.com/vaulthive/vaulthive.go/lib/service"
)

type AssetTestSuite struct {
	TestSuite
	service *service.VaulthiveService
	users   []testUser
}

func (suite *AssetTestSuite) SetupSuite() {
	svc, err := VaultHiveTestServiceInit(&chainClientMock{})
	if err != nil {
		log.Fatalf("Error initializing test service: %v", err)
	}
	users, err := createUsers(svc, 2)
	if err != nil {
		log.Fatalf("Error creating test users: %v", err)
	}
	suite.service = svc
	suite.users = users
	suite.echo = newTestEcho(svc)
}

func (suite *AssetTestSuite) TearDownSuite() {
	err := clearAllTables(suite.service)
	assert.NoError(suite.T(), err)
}

func (suite *AssetTestSuite) TestCreateAsset() {
	rec := suite.request(http.MethodPost, "/api/assets", suite.users[0].Token, &controllers.CreateAssetRequestBody{
		Name:        "Manhattan Loft",
		Description: "A loft in Manhattan",
		Category:    "property",
		Valuation:   250000,
	})
	assert.Equal(suite.T(), http.StatusCreated, rec.Code)
	asset := &models.Asset{}
	decodeData(&suite.TestSuite, rec, asset)
	assert.NotEmpty(suite.T(), asset.ID)
	assert.Equal(suite.T(), suite.users[0].ID, asset.OwnerID)
	assert.Equal(suite.T(), "property", asset.Category)
	assert.False(suite.T(), asset.Tokenized)
}

func (suite *AssetTestSuite) TestCreateAssetDefaultCategory() {
	rec := suite.request(http.MethodPost, "/api/assets", suite.users[0].Token, &controllers.CreateAssetRequestBody{
		Name:      "Mystery Box",
		Valuation: 100,
	})
	assert.Equal(suite.T(), http.StatusCreated, rec.Code)
	asset := &models.Asset{}
	decodeData(&suite.TestSuite, rec, asset)
	assert.Equal(suite.T(), "miscellaneous", asset.Category)
}

func (suite *AssetTestSuite) TestCreateAssetBadArguments() {
	rec := suite.request(http.MethodPost, "/api/assets", suite.users[0].Token, &controllers.CreateAssetRequestBody{
		Name:      "Submarine",
		Category:  "vehicles",
		Valuation: 100,
	})
	checkErrResponse(&suite.TestSuite, rec, http.StatusBadRequest)

	rec = suite.request(http.MethodPost, "/api/assets", suite.users[0].Token, &controllers.CreateAssetRequestBody{
		Name:      "Upside Down House",
		Valuation: -1,
	})
	checkErrResponse(&suite.TestSuite, rec, http.StatusBadRequest)
}

func (suite *AssetTestSuite) TestGetUserAssets() {
	rec := suite.request(http.MethodPost, "/api/assets", suite.users[1].Token, &controllers.CreateAssetRequestBody{
		Name:      "Monet Painting",
		Category:  "paintings",
		Valuation: 1000000,
	})
	assert.Equal(suite.T(), http.StatusCreated, rec.Code)

	rec = suite.request(http.MethodGet, "/api/assets/user/"+suite.users[1].ID, suite.users[1].Token, nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assets := []models.Asset{}
	decodeData(&suite.TestSuite, rec, &assets)
	assert.Len(suite.T(), assets, 1)
	assert.Equal(suite.T(), "Monet Painting", assets[0].Name)

	// other users' listings do not include it
	rec = suite.request(http.MethodGet, "/api/assets/user/"+suite.users[0].ID, suite.users[0].Token, nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	ownAssets := []models.Asset{}
	decodeData(&suite.TestSuite, rec, &ownAssets)
	for _, a := range ownAssets {
		assert.NotEqual(suite.T(), "Monet Painting", a.Name)
	}
}

func (suite *AssetTestSuite) TestGetUnknownAsset() {
	rec := suite.request(http.MethodGet, "/api/assets/00000000-0000-0000-0000-000000000000", suite.users[0].Token, nil)
	checkErrResponse(&suite.TestSuite, rec, http.StatusNotFound)
}

func TestAssetTestSuite(t *testing.T) {
	suite.Run(t, new(AssetTestSuite))
}
