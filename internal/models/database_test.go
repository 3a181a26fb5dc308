package models_test

import (
	"github.com/expenseflow/backend/internal/models"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestConnectInvalidDSN() {
	err := models.Connect("/this/directory/does/not/exist/database.db")

	suite.Assert().NotNil(err)
}

func (suite *TestSuiteStandard) TestGeneralErrorOnClosedDB() {
	suite.CloseDB()

	err := models.DB.First(&models.Payee{}, uuid.New()).Error

	suite.Assert().ErrorIs(err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestNotFoundNaming() {
	tests := []struct {
		model any
		name  string
	}{
		{&models.Payee{}, "there is no payee matching your query"},
		{&models.PayoutMethod{}, "there is no payout method matching your query"},
		{&models.Expense{}, "there is no expense matching your query"},
		{&models.ExpenseItem{}, "there is no expense item matching your query"},
		{&models.TagRule{}, "there is no tag rule matching your query"},
		{&models.Invite{}, "there is no invite matching your query"},
	}

	for _, tt := range tests {
		err := models.DB.First(tt.model, uuid.New()).Error

		suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
		suite.Assert().Equal(tt.name, err.Error())
	}
}
