package models_test

import (
	"strings"

	"github.com/finance-tracker/backend/internal/models"
	"gorm.io/gorm/clause"
)

func (suite *TestSuiteStandard) TestCategoryTrimAndNormalise() {
	category := suite.createTestCategory(models.Category{
		// "e" followed by a combining acute accent
		Name:        "  Cafe\u0301  ",
		Description: " Coffee and cake ",
	})

	suite.Assert().Equal("Caf\u00e9", category.Name)
	suite.Assert().Equal("Coffee and cake", category.Description)
}

func (suite *TestSuiteStandard) TestCategoryValidation() {
	user := suite.createTestUser(models.User{})

	tests := []struct {
		name     string
		category models.Category
		err      error
	}{
		{"Blank name", models.Category{Name: " \t ", Type: models.TypeIncome}, models.ErrCategoryNameBlank},
		{"Name too long", models.Category{Name: strings.Repeat("n", 51), Type: models.TypeIncome}, models.ErrCategoryNameTooLong},
		{"Description too long", models.Category{Name: "Salary", Description: strings.Repeat("d", 256), Type: models.TypeIncome}, models.ErrDescriptionTooLong},
		{"Invalid type", models.Category{Name: "Salary", Type: "TRANSFER"}, models.ErrTypeInvalid},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			tt.category.UserID = user.ID
			err := suite.db.Omit(clause.Associations).Create(&tt.category).Error
			suite.Assert().ErrorIs(err, tt.err)
			suite.Assert().ErrorIs(err, models.ErrValidation)
		})
	}
}

// TestCategoryNameLengthInRunes verifies that the name limit counts characters, not bytes.
func (suite *TestSuiteStandard) TestCategoryNameLengthInRunes() {
	category := suite.createTestCategory(models.Category{Name: strings.Repeat("ü", 50)})
	suite.Assert().Equal(50, len([]rune(category.Name)))
}

func (suite *TestSuiteStandard) TestCategoryDeleteClearsTransactions() {
	category := suite.createTestCategory(models.Category{})
	transaction := suite.createTestTransaction(models.Transaction{UserID: category.UserID, CategoryID: &category.ID})

	suite.Require().Nil(suite.db.Delete(&category).Error)

	var reloaded models.Transaction
	suite.Require().Nil(suite.db.First(&reloaded, "id = ?", transaction.ID).Error)
	suite.Assert().Nil(reloaded.CategoryID)
}

func (suite *TestSuiteStandard) TestUserDeleteCascades() {
	category := suite.createTestCategory(models.Category{})
	_ = suite.createTestTransaction(models.Transaction{UserID: category.UserID, CategoryID: &category.ID})

	suite.Require().Nil(suite.db.Delete(&models.User{}, "id = ?", category.UserID).Error)

	var count int64
	suite.Require().Nil(suite.db.Model(&models.Transaction{}).Count(&count).Error)
	suite.Assert().Zero(count)

	suite.Require().Nil(suite.db.Model(&models.Category{}).Count(&count).Error)
	suite.Assert().Zero(count)
}
