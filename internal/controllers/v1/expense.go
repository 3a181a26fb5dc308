package v1

import (
	"net/http"

	"github.com/expenseflow/backend/internal/httputil"
	"github.com/expenseflow/backend/internal/models"
	"github.com/expenseflow/backend/internal/submission"
	"github.com/expenseflow/backend/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", GetExpenses)
		r.POST("", CreateExpenses)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", OptionsExpenseDetail)
		r.GET("/:id", GetExpense)
		r.PATCH("/:id", UpdateExpense)
		r.DELETE("/:id", DeleteExpense)
	}

	// Validation and submission
	{
		r.OPTIONS("/:id/validate", OptionsExpenseValidate)
		r.POST("/:id/validate", ValidateExpense)
		r.OPTIONS("/:id/submit", OptionsExpenseSubmit)
		r.POST("/:id/submit", SubmitExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Expense{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create expenses
// @Description	Creates new expense drafts, including their line items
// @Tags			Expenses
// @Produce		json
// @Success		201			{object}	ExpenseCreateResponse
// @Failure		400			{object}	ExpenseCreateResponse
// @Failure		404			{object}	ExpenseCreateResponse
// @Failure		500			{object}	ExpenseCreateResponse
// @Param			expenses	body		[]ExpenseEditable	true	"Expenses"
// @Router			/v1/expenses [post]
func CreateExpenses(c *gin.Context) {
	var editables []ExpenseEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ExpenseCreateResponse{}

	for _, editable := range editables {
		expense := editable.model()

		err = models.DB.Create(&expense).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newExpense(c, expense)
		r.Data = append(r.Data, ExpenseResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get expenses
// @Description	Returns a list of expenses
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseListResponse
// @Failure		400	{object}	ExpenseListResponse
// @Failure		500	{object}	ExpenseListResponse
// @Router			/v1/expenses [get]
// @Param			description		query	string	false	"Filter by description"
// @Param			type			query	string	false	"Filter by expense type"
// @Param			status			query	string	false	"Filter by lifecycle state"
// @Param			currency		query	string	false	"Filter by ISO 4217 code"
// @Param			payee			query	string	false	"Filter by payee ID"
// @Param			payoutMethod	query	string	false	"Filter by payout method ID"
// @Param			search			query	string	false	"Search for this text in the description"
// @Param			offset			query	uint	false	"The offset of the first expense returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of expenses to return. Defaults to 50."
func GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a model struct
	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("created_at DESC").
		Where(&filterModel, queryFields...)

	// Expenses have no note, only the description is searched
	if slices.Contains(setFields, "Description") {
		q = q.Where("description LIKE ?", "%"+filter.Description+"%")
	}

	if filter.Search != "" {
		q = q.Where("description LIKE ?", "%"+filter.Search+"%")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 expenses and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var expenses []models.Expense
	err = q.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("expense_items.created_at ASC")
	}).Find(&expenses).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Expense, 0, len(expenses))
	for _, expense := range expenses {
		data = append(data, newExpense(c, expense))
	}

	c.JSON(http.StatusOK, ExpenseListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get expense
// @Description	Returns a specific expense with its line items
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseResponse
// @Failure		400	{object}	ExpenseResponse
// @Failure		404	{object}	ExpenseResponse
// @Failure		500	{object}	ExpenseResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [get]
func GetExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	expense := models.Expense{DefaultModel: models.DefaultModel{ID: uri.ID.UUID}}
	expense, err = expense.WithRelations(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	data := newExpense(c, expense)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &data})
}

// @Summary		Update expense
// @Description	Update an expense draft. Only values to be updated need to be specified. When items are specified, the item list is replaced as a whole.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		404		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses/{id} [patch]
func UpdateExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ExpenseEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	var data ExpenseEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	// Items are replaced wholesale and are handled separately from the
	// partial update of the expense itself
	replaceItems := false
	fields := make([]any, 0, len(updateFields))
	for _, field := range updateFields {
		if field == "Items" {
			replaceItems = true
			continue
		}

		fields = append(fields, field)
	}

	// Use a transaction so that we can roll back if errors happen
	tx := models.DB.Begin()

	if len(fields) > 0 {
		err = tx.Model(&expense).Select("", fields...).Updates(data.model()).Error
		if err != nil {
			tx.Rollback()
			s := err.Error()
			c.JSON(status(err), ExpenseResponse{
				Error: &s,
			})
			return
		}
	}

	if replaceItems {
		err = replaceExpenseItems(tx, expense.ID, data.Items)
		if err != nil {
			tx.Rollback()
			s := err.Error()
			c.JSON(status(err), ExpenseResponse{
				Error: &s,
			})
			return
		}
	}

	tx.Commit()

	expense, err = expense.WithRelations(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	r := newExpense(c, expense)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &r})
}

// replaceExpenseItems replaces the line items of an expense with the
// ones from the request. Items with an ID are updated, items without one
// are created and persisted items missing from the request are deleted.
func replaceExpenseItems(tx *gorm.DB, expenseID uuid.UUID, items []ExpenseItemEditable) error {
	keep := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		if item.ID != uuid.Nil {
			keep = append(keep, item.ID)
		}
	}

	q := tx.Unscoped().Where("expense_id = ?", expenseID)
	if len(keep) > 0 {
		q = q.Where("id NOT IN ?", keep)
	}

	err := q.Delete(&models.ExpenseItem{}).Error
	if err != nil {
		return err
	}

	for _, editable := range items {
		item := editable.model()
		item.ExpenseID = expenseID

		if editable.ID == uuid.Nil {
			err = tx.Create(&item).Error
		} else {
			err = tx.Model(&models.ExpenseItem{DefaultModel: models.DefaultModel{ID: editable.ID}}).
				Where("expense_id = ?", expenseID).
				Select("Description", "Amount", "URL", "IncurredAt").
				Updates(item).Error
		}

		if err != nil {
			return err
		}
	}

	return nil
}

// @Summary		Delete expense
// @Description	Deletes an expense and its line items
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [delete]
func DeleteExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	// Use a transaction so that we can roll back if errors happen
	tx := models.DB.Begin()

	err = tx.Where("expense_id = ?", expense.ID).Delete(&models.ExpenseItem{}).Error
	if err != nil {
		tx.Rollback()
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = tx.Delete(&expense).Error
	if err != nil {
		tx.Rollback()
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	tx.Commit()
	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id}/validate [options]
func OptionsExpenseValidate(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Expense{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Validate expense
// @Description	Runs all submission checks on the expense without submitting it. The result is empty when the expense is submittable.
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseValidationResponse
// @Failure		400	{object}	ExpenseValidationResponse
// @Failure		404	{object}	ExpenseValidationResponse
// @Failure		500	{object}	ExpenseValidationResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id}/validate [post]
func ValidateExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseValidationResponse{
			Error: &s,
		})
		return
	}

	expense := models.Expense{DefaultModel: models.DefaultModel{ID: uri.ID.UUID}}
	expense, err = expense.WithRelations(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseValidationResponse{
			Error: &s,
		})
		return
	}

	result := validation.Validate(expense)
	c.JSON(http.StatusOK, ExpenseValidationResponse{
		Data: &ExpenseValidation{
			Valid:  result.Empty(),
			Result: result,
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id}/submit [options]
func OptionsExpenseSubmit(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Expense{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Submit expense
// @Description	Validates the expense and submits it. On success, tag rules are applied, the expense becomes immutable and the submission payload is returned. When validation fails, the failed checks are returned and nothing is changed.
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseSubmitResponse
// @Failure		400	{object}	ExpenseSubmitResponse
// @Failure		404	{object}	ExpenseSubmitResponse
// @Failure		422	{object}	ExpenseSubmitResponse
// @Failure		500	{object}	ExpenseSubmitResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id}/submit [post]
func SubmitExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseSubmitResponse{
			Error: &s,
		})
		return
	}

	expense := models.Expense{DefaultModel: models.DefaultModel{ID: uri.ID.UUID}}
	expense, err = expense.WithRelations(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseSubmitResponse{
			Error: &s,
		})
		return
	}

	if expense.Status == models.ExpenseStatusSubmitted {
		s := models.ErrExpenseAlreadySubmitted.Error()
		c.JSON(http.StatusBadRequest, ExpenseSubmitResponse{
			Error: &s,
		})
		return
	}

	result := validation.Validate(expense)
	if !result.Empty() {
		s := errExpenseNotSubmittable.Error()
		c.JSON(http.StatusUnprocessableEntity, ExpenseSubmitResponse{
			Validation: &result,
			Error:      &s,
		})
		return
	}

	err = models.ApplyTagRules(models.DB, &expense)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseSubmitResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&expense).
		Select("Status", "Tags").
		Updates(models.Expense{Status: models.ExpenseStatusSubmitted, Tags: expense.Tags}).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseSubmitResponse{
			Error: &s,
		})
		return
	}

	expense.Status = models.ExpenseStatusSubmitted
	payload := submission.Prepare(expense)
	c.JSON(http.StatusOK, ExpenseSubmitResponse{Data: &payload})
}
