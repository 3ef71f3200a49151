package v1_test

import (
	"net/http"
	"strings"
	"testing"

	v1 "github.com/finance-tracker/backend/internal/controllers/v1"
	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestUsersCreate() {
	suite.createTestUser("taken@example.com")

	tests := []struct {
		name     string
		body     v1.UserRegistration
		status   int
		errorMsg string
	}{
		{"Valid", v1.UserRegistration{Username: "alex", Email: "alex@example.com", Password: "correct horse"}, http.StatusCreated, ""},
		{"Email in use", v1.UserRegistration{Username: "alex", Email: "taken@example.com", Password: "correct horse"}, http.StatusBadRequest, models.ErrEmailInUse.Error()},
		{"Email in use, different case", v1.UserRegistration{Username: "alex", Email: "Taken@Example.com", Password: "correct horse"}, http.StatusBadRequest, models.ErrEmailInUse.Error()},
		{"Invalid email", v1.UserRegistration{Username: "alex", Email: "not an email", Password: "correct horse"}, http.StatusBadRequest, models.ErrEmailInvalid.Error()},
		{"Empty username", v1.UserRegistration{Username: " ", Email: "empty@example.com", Password: "correct horse"}, http.StatusBadRequest, models.ErrUsernameInvalid.Error()},
		{"Password too short", v1.UserRegistration{Username: "alex", Email: "short@example.com", Password: "horse"}, http.StatusBadRequest, models.ErrPasswordLength.Error()},
		{"Password too long", v1.UserRegistration{Username: "alex", Email: "long@example.com", Password: strings.Repeat("a", 51)}, http.StatusBadRequest, models.ErrPasswordLength.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodPost, "http://example.com/v1/users", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var user v1.UserResponse
			test.DecodeResponse(t, &r, &user)

			if tt.status != http.StatusCreated {
				assert.Nil(t, user.Data)
				assert.Equal(t, tt.errorMsg, *user.Error)
				return
			}

			assert.NotEqual(t, uuid.Nil, user.Data.ID)
			assert.Equal(t, "alex@example.com", user.Data.Email)
			assert.Equal(t, "http://example.com/v1/users/me", user.Data.Links.Self)
			assert.NotContains(t, r.Body.String(), "correct horse")
		})
	}
}

func (suite *TestSuiteStandard) TestUsersMe() {
	id, headers := suite.createTestUser("me@example.com")

	r := suite.request(http.MethodGet, "http://example.com/v1/users/me", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var user v1.UserResponse
	test.DecodeResponse(suite.T(), &r, &user)
	assert.Equal(suite.T(), id, user.Data.ID)
	assert.Equal(suite.T(), "me@example.com", user.Data.Email)
	assert.Equal(suite.T(), "Test User", user.Data.Username)

	r = suite.request(http.MethodGet, "http://example.com/v1/users/me", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	r = suite.request(http.MethodGet, "http://example.com/v1/users/me", nil, auth(uuid.New()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
