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

type UserAuthTestSuite struct {
	TestSuite
	service *service.VaulthiveService
}

func (suite *UserAuthTestSuite) SetupSuite() {
	svc, err := VaultHiveTestServiceInit(&chainClientMock{})
	if err != nil {
		log.Fatalf("Error initializing test service: %v", err)
	}
	suite.service = svc
	suite.echo = newTestEcho(svc)
}

func (suite *UserAuthTestSuite) TearDownSuite() {
	err := clearAllTables(suite.service)
	assert.NoError(suite.T(), err)
}

func (suite *UserAuthTestSuite) TestRegisterAndLogin() {
	rec := suite.request(http.MethodPost, "/api/auth/register", "", &controllers.RegisterRequestBody{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	assert.Equal(suite.T(), http.StatusCreated, rec.Code)
	registered := &controllers.RegisterResponseBody{}
	decodeData(&suite.TestSuite, rec, registered)
	assert.NotEmpty(suite.T(), registered.UserID)
	assert.Equal(suite.T(), "alice@example.com", registered.Email)

	rec = suite.request(http.MethodPost, "/api/auth/login", "", &controllers.LoginRequestBody{
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	login := &controllers.LoginResponseBody{}
	decodeData(&suite.TestSuite, rec, login)
	assert.Equal(suite.T(), registered.UserID, login.UserID)
	assert.NotEmpty(suite.T(), login.SessionToken)

	// password hash never leaves the service
	assert.NotContains(suite.T(), rec.Body.String(), "supersecret")
}

func (suite *UserAuthTestSuite) TestRegisterAcceptsNameField() {
	// clients send the display name under the "name" key
	rec := suite.request(http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "carol",
		"email":    "carol@example.com",
		"password": "supersecret",
	})
	assert.Equal(suite.T(), http.StatusCreated, rec.Code)
	registered := &controllers.RegisterResponseBody{}
	decodeData(&suite.TestSuite, rec, registered)
	assert.Equal(suite.T(), "carol", registered.Username)
}

func (suite *UserAuthTestSuite) TestRegisterDuplicateEmail() {
	body := &controllers.RegisterRequestBody{
		Name:     "bob",
		Email:    "bob@example.com",
		Password: "supersecret",
	}
	rec := suite.request(http.MethodPost, "/api/auth/register", "", body)
	assert.Equal(suite.T(), http.StatusCreated, rec.Code)

	rec = suite.request(http.MethodPost, "/api/auth/register", "", body)
	checkErrResponse(&suite.TestSuite, rec, http.StatusConflict)
}

func (suite *UserAuthTestSuite) TestLoginWrongPassword() {
	users, err := createUsers(suite.service, 1)
	assert.NoError(suite.T(), err)

	rec := suite.request(http.MethodPost, "/api/auth/login", "", &controllers.LoginRequestBody{
		Email:    users[0].Email,
		Password: "wrongpassword",
	})
	checkErrResponse(&suite.TestSuite, rec, http.StatusUnauthorized)
}

func (suite *UserAuthTestSuite) TestProfileRequiresToken() {
	rec := suite.request(http.MethodGet, "/api/auth/profile", "", nil)
	assert.Equal(suite.T(), http.StatusUnauthorized, rec.Code)

	rec = suite.request(http.MethodGet, "/api/auth/profile", "notavalidtoken", nil)
	assert.Equal(suite.T(), http.StatusUnauthorized, rec.Code)
}

func (suite *UserAuthTestSuite) TestProfile() {
	users, err := createUsers(suite.service, 1)
	assert.NoError(suite.T(), err)

	rec := suite.request(http.MethodGet, "/api/auth/profile", users[0].Token, nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	profile := &models.User{}
	decodeData(&suite.TestSuite, rec, profile)
	assert.Equal(suite.T(), users[0].ID, profile.ID)
	assert.Equal(suite.T(), users[0].Email, profile.Email)
}

func TestUserAuthTestSuite(t *testing.T) {
	suite.Run(t, new(UserAuthTestSuite))
}
