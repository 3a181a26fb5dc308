package models_test

import (
	"github.com/expenseflow/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestExpenseDefaultStatus() {
	expense := suite.createTestExpense(models.Expense{
		Description: "No explicit status",
	})

	suite.Assert().Equal(models.ExpenseStatusDraft, expense.Status)
}

func (suite *TestSuiteStandard) TestExpenseInvalidType() {
	err := models.DB.Create(&models.Expense{
		Description: "Invalid",
		Type:        "REIMBURSEMENT",
	}).Error

	suite.Assert().ErrorIs(err, models.ErrExpenseTypeInvalid)
}

func (suite *TestSuiteStandard) TestExpenseTrimWhitespace() {
	expense := suite.createTestExpense(models.Expense{
		Description: " Team dinner ",
		Currency:    " EUR ",
		PayeeLocation: models.Location{
			Country: " DE ",
			Address: " Willy-Brandt-Straße 1 ",
		},
	})

	suite.Assert().Equal("Team dinner", expense.Description)
	suite.Assert().Equal("EUR", expense.Currency)
	suite.Assert().Equal("DE", expense.PayeeLocation.Country)
	suite.Assert().Equal("Willy-Brandt-Straße 1", expense.PayeeLocation.Address)
}

func (suite *TestSuiteStandard) TestExpenseNonexistentPayee() {
	payeeID := uuid.New()

	err := models.DB.Create(&models.Expense{
		Description: "Orphaned",
		Type:        models.ExpenseTypeReceipt,
		PayeeID:     &payeeID,
	}).Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestExpenseNonexistentPayoutMethod() {
	methodID := uuid.New()

	err := models.DB.Create(&models.Expense{
		Description:    "Orphaned",
		Type:           models.ExpenseTypeReceipt,
		PayoutMethodID: &methodID,
	}).Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestExpenseUpdateIntegrity() {
	expense := suite.createTestExpense(models.Expense{
		Description: "Integrity",
	})

	payeeID := uuid.New()
	err := models.DB.Model(&expense).Updates(models.Expense{
		Type:    expense.Type,
		PayeeID: &payeeID,
	}).Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestExpenseSubmittedImmutable() {
	expense := suite.createTestExpense(models.Expense{
		Description: "To be submitted",
	})

	err := models.DB.Model(&expense).Select("Status").Updates(models.Expense{
		Status: models.ExpenseStatusSubmitted,
	}).Error
	suite.Assert().Nil(err)

	expense.Status = models.ExpenseStatusSubmitted
	err = models.DB.Model(&expense).Updates(models.Expense{
		Type:        expense.Type,
		Description: "Changed after submission",
	}).Error

	suite.Assert().ErrorIs(err, models.ErrExpenseAlreadySubmitted)
}

func (suite *TestSuiteStandard) TestExpenseTotalAmount() {
	expense := suite.createTestExpense(models.Expense{
		Description: "With items",
	})

	_ = suite.createTestExpenseItem(models.ExpenseItem{
		ExpenseID:   expense.ID,
		Description: "Dinner",
		Amount:      decimal.NewFromFloat(52.80),
	})
	_ = suite.createTestExpenseItem(models.ExpenseItem{
		ExpenseID:   expense.ID,
		Description: "Taxi",
		Amount:      decimal.NewFromFloat(14.50),
	})

	expense, err := expense.WithRelations(models.DB)
	suite.Assert().Nil(err)

	suite.Assert().True(decimal.NewFromFloat(67.30).Equal(expense.TotalAmount()), "Total is %s", expense.TotalAmount())
}

func (suite *TestSuiteStandard) TestExpenseWithRelations() {
	payee := suite.createTestPayee(models.Payee{})
	method := suite.createTestPayoutMethod(models.PayoutMethod{
		PayeeID: payee.ID,
		Saved:   true,
	})

	expense := suite.createTestExpense(models.Expense{
		Description:    "Loaded",
		PayeeID:        &payee.ID,
		PayoutMethodID: &method.ID,
	})

	first := suite.createTestExpenseItem(models.ExpenseItem{
		ExpenseID:   expense.ID,
		Description: "First",
		Amount:      decimal.NewFromFloat(1),
	})
	second := suite.createTestExpenseItem(models.ExpenseItem{
		ExpenseID:   expense.ID,
		Description: "Second",
		Amount:      decimal.NewFromFloat(2),
	})

	expense, err := expense.WithRelations(models.DB)
	suite.Assert().Nil(err)

	if suite.Assert().NotNil(expense.Payee) {
		suite.Assert().Equal(payee.ID, expense.Payee.ID)
	}

	if suite.Assert().NotNil(expense.PayoutMethod) {
		suite.Assert().Equal(method.ID, expense.PayoutMethod.ID)
	}

	if suite.Assert().Len(expense.Items, 2) {
		suite.Assert().Equal(first.ID, expense.Items[0].ID)
		suite.Assert().Equal(second.ID, expense.Items[1].ID)
	}
}

func (suite *TestSuiteStandard) TestExpenseItemNonexistentExpense() {
	err := models.DB.Create(&models.ExpenseItem{
		ExpenseID:   uuid.New(),
		Description: "Orphaned",
		Amount:      decimal.NewFromFloat(1),
	}).Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestExpenseTagsRoundTrip() {
	expense := suite.createTestExpense(models.Expense{
		Description: "Tagged",
		Tags:        models.Tags{"food", "offsite"},
	})

	var reloaded models.Expense
	err := models.DB.First(&reloaded, expense.ID).Error
	suite.Assert().Nil(err)
	suite.Assert().Equal(models.Tags{"food", "offsite"}, reloaded.Tags)
}
