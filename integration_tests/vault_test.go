package integration_tests

import (
	"context"
	"log"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/vaulthive/vaulthive.go/controllers"
	"github.com/vaulthive/vaulthive.go/db/models"
	"github.com/vaulthive/vaulthive.go/lib/service"
)

type VaultTestSuite struct {
	TestSuite
	service *service.VaulthiveService
	users   []testUser
}

func (suite *VaultTestSuite) SetupSuite() {
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

func (suite *VaultTestSuite) TearDownSuite() {
	err := clearAllTables(suite.service)
	assert.NoError(suite.T(), err)
}

func (suite *VaultTestSuite) TestBalanceWithEmptyLedger() {
	rec := suite.request(http.MethodGet, "/api/vault/balance/"+suite.users[0].ID, suite.users[0].Token, nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	balance := &controllers.VaultBalanceResponseBody{}
	decodeData(&suite.TestSuite, rec, balance)
	assert.Equal(suite.T(), int64(0), balance.Balance)
	assert.Equal(suite.T(), "VAULT", balance.Symbol)
}

func (suite *VaultTestSuite) TestBalanceUnknownUser() {
	rec := suite.request(http.MethodGet, "/api/vault/balance/00000000-0000-0000-0000-000000000000", suite.users[0].Token, nil)
	checkErrResponse(&suite.TestSuite, rec, http.StatusNotFound)
}

func (suite *VaultTestSuite) TestBalanceSumsLedgerEntries() {
	userId := suite.users[1].ID
	ctx := context.Background()

	_, err := suite.service.CreditVault(ctx, suite.service.DB, userId, 100, "asset_tokenization", "", "")
	assert.NoError(suite.T(), err)
	_, err = suite.service.CreditVault(ctx, suite.service.DB, userId, 50, "referral", "", "")
	assert.NoError(suite.T(), err)

	rec := suite.request(http.MethodGet, "/api/vault/balance/"+userId, suite.users[1].Token, nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	balance := &controllers.VaultBalanceResponseBody{}
	decodeData(&suite.TestSuite, rec, balance)
	assert.Equal(suite.T(), int64(150), balance.Balance)

	rec = suite.request(http.MethodGet, "/api/vault/rewards/"+userId, suite.users[1].Token, nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	rewards := []models.VaultReward{}
	decodeData(&suite.TestSuite, rec, &rewards)
	assert.Len(suite.T(), rewards, 2)
}

func (suite *VaultTestSuite) TestCreditRejectsNonPositiveAmounts() {
	ctx := context.Background()
	_, err := suite.service.CreditVault(ctx, suite.service.DB, suite.users[0].ID, 0, "nothing", "", "")
	assert.ErrorIs(suite.T(), err, service.ErrInvalidRewardAmount)
	_, err = suite.service.CreditVault(ctx, suite.service.DB, suite.users[0].ID, -5, "debit", "", "")
	assert.ErrorIs(suite.T(), err, service.ErrInvalidRewardAmount)
}

func TestVaultTestSuite(t *testing.T) {
	suite.Run(t, new(VaultTestSuite))
}
