package models_test

import (
	"strings"

	"github.com/finance-tracker/backend/internal/models"
	"gorm.io/gorm/clause"
)

func (suite *TestSuiteStandard) TestUserEmailNormalised() {
	user := suite.createTestUser(models.User{Email: "  Jane.Doe@Example.COM "})
	suite.Assert().Equal("jane.doe@example.com", user.Email)
}

func (suite *TestSuiteStandard) TestUserEmailInUse() {
	_ = suite.createTestUser(models.User{Email: "taken@example.com"})

	duplicate := models.User{Username: "other", Email: "TAKEN@example.com", PasswordHash: "x"}
	err := suite.db.Omit(clause.Associations).Create(&duplicate).Error

	suite.Assert().ErrorIs(err, models.ErrEmailInUse)
	suite.Assert().ErrorIs(err, models.ErrValidation)
}

func (suite *TestSuiteStandard) TestUserValidation() {
	tests := []struct {
		name string
		user models.User
		err  error
	}{
		{"Blank username", models.User{Username: "   ", Email: "a@example.com"}, models.ErrUsernameInvalid},
		{"Username too long", models.User{Username: strings.Repeat("u", 51), Email: "a@example.com"}, models.ErrUsernameInvalid},
		{"Not an email", models.User{Username: "jane", Email: "jane"}, models.ErrEmailInvalid},
		{"Display name is not accepted", models.User{Username: "jane", Email: "Jane <jane@example.com>"}, models.ErrEmailInvalid},
		{"Email too long", models.User{Username: "jane", Email: strings.Repeat("a", 40) + "@example.com"}, models.ErrEmailInvalid},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			tt.user.PasswordHash = "x"
			err := suite.db.Omit(clause.Associations).Create(&tt.user).Error
			suite.Assert().ErrorIs(err, tt.err)
		})
	}
}
