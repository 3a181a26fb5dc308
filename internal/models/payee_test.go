package models_test

import (
	"github.com/expenseflow/backend/internal/models"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestPayeeTrimWhitespace() {
	payee := suite.createTestPayee(models.Payee{
		Name: " Open Streets Collective\t",
		Note: "  Prefers quarterly payouts ",
	})

	suite.Assert().Equal("Open Streets Collective", payee.Name)
	suite.Assert().Equal("Prefers quarterly payouts", payee.Note)
}

func (suite *TestSuiteStandard) TestPayeeInvalidType() {
	err := models.DB.Create(&models.Payee{Name: "No type"}).Error

	suite.Assert().ErrorIs(err, models.ErrAccountTypeInvalid)
}

func (suite *TestSuiteStandard) TestPayeeDuplicateName() {
	_ = suite.createTestPayee(models.Payee{Name: "Unique"})

	err := models.DB.Create(&models.Payee{
		Name: "Unique",
		Type: models.AccountTypeIndividual,
	}).Error

	suite.Assert().ErrorIs(err, models.ErrPayeeNameNotUnique)
}

func (suite *TestSuiteStandard) TestPayeeSavedPayoutMethods() {
	payee := suite.createTestPayee(models.Payee{})

	first := suite.createTestPayoutMethod(models.PayoutMethod{
		PayeeID: payee.ID,
		Saved:   true,
	})
	_ = suite.createTestPayoutMethod(models.PayoutMethod{
		PayeeID: payee.ID,
		Saved:   false,
	})
	second := suite.createTestPayoutMethod(models.PayoutMethod{
		PayeeID: payee.ID,
		Type:    models.PayoutMethodTypePaypal,
		Saved:   true,
	})

	methods, err := payee.SavedPayoutMethods(models.DB)
	suite.Assert().Nil(err)

	if !suite.Assert().Len(methods, 2) {
		return
	}

	suite.Assert().Equal(first.ID, methods[0].ID)
	suite.Assert().Equal(second.ID, methods[1].ID)
}

func (suite *TestSuiteStandard) TestPayeeExpenses() {
	payee := suite.createTestPayee(models.Payee{})

	_ = suite.createTestExpense(models.Expense{
		Description: "For the payee",
		PayeeID:     &payee.ID,
	})
	_ = suite.createTestExpense(models.Expense{
		Description: "Without a payee",
	})

	suite.Assert().Len(payee.Expenses(models.DB), 1)
}

func (suite *TestSuiteStandard) TestPayeeNotFoundMessage() {
	err := models.DB.First(&models.Payee{}, uuid.New()).Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Equal("there is no payee matching your query", err.Error())
}
