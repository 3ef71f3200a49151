package service_test

import (
	"context"

	"github.com/finance-tracker/backend/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func (suite *TestSuiteStandard) TestRegister() {
	user, err := suite.users.Register(context.Background(), "jane", "Jane@Example.com", "s3cret-password")
	suite.Require().Nil(err)

	suite.Assert().NotEqual(uuid.Nil, user.ID)
	suite.Assert().Equal("jane@example.com", user.Email)
	suite.Assert().NotEqual("s3cret-password", user.PasswordHash)
	suite.Assert().Nil(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-password")))
	suite.Assert().ErrorIs(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("wrong-password")), bcrypt.ErrMismatchedHashAndPassword)

	found, err := suite.users.Get(context.Background(), user.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(user.Email, found.Email)
}

func (suite *TestSuiteStandard) TestRegisterEmailInUse() {
	_, err := suite.users.Register(context.Background(), "jane", "jane@example.com", "s3cret-password")
	suite.Require().Nil(err)

	_, err = suite.users.Register(context.Background(), "john", "JANE@example.com", "another-password")
	suite.Assert().ErrorIs(err, models.ErrEmailInUse)
}

func (suite *TestSuiteStandard) TestRegisterPasswordLength() {
	for _, password := range []string{"short", "0123456789012345678901234567890123456789012345678901"} {
		_, err := suite.users.Register(context.Background(), "jane", "jane@example.com", password)
		suite.Assert().ErrorIs(err, models.ErrPasswordLength)
	}
}

func (suite *TestSuiteStandard) TestGetUserUnauthenticated() {
	_, err := suite.users.Get(context.Background(), uuid.Nil)
	suite.Assert().ErrorIs(err, models.ErrUnauthenticated)
}
