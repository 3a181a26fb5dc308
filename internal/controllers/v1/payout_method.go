package v1

import (
	"net/http"

	"github.com/expenseflow/backend/internal/httputil"
	"github.com/expenseflow/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterPayoutMethodRoutes registers the routes for payout methods with
// the RouterGroup that is passed.
func RegisterPayoutMethodRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsPayoutMethodList)
		r.GET("", GetPayoutMethods)
		r.POST("", CreatePayoutMethods)
	}

	// PayoutMethod with ID
	{
		r.OPTIONS("/:id", OptionsPayoutMethodDetail)
		r.GET("/:id", GetPayoutMethod)
		r.PATCH("/:id", UpdatePayoutMethod)
		r.DELETE("/:id", DeletePayoutMethod)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			PayoutMethods
// @Success		204
// @Router			/v1/payout-methods [options]
func OptionsPayoutMethodList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			PayoutMethods
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/payout-methods/{id} [options]
func OptionsPayoutMethodDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.PayoutMethod{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create payout methods
// @Description	Creates new payout methods
// @Tags			PayoutMethods
// @Produce		json
// @Success		201				{object}	PayoutMethodCreateResponse
// @Failure		400				{object}	PayoutMethodCreateResponse
// @Failure		404				{object}	PayoutMethodCreateResponse
// @Failure		500				{object}	PayoutMethodCreateResponse
// @Param			payoutMethods	body		[]PayoutMethodEditable	true	"Payout methods"
// @Router			/v1/payout-methods [post]
func CreatePayoutMethods(c *gin.Context) {
	var editables []PayoutMethodEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PayoutMethodCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := PayoutMethodCreateResponse{}

	for _, editable := range editables {
		method := editable.model()

		err = models.DB.Create(&method).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newPayoutMethod(c, method)
		r.Data = append(r.Data, PayoutMethodResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get payout methods
// @Description	Returns a list of payout methods
// @Tags			PayoutMethods
// @Produce		json
// @Success		200	{object}	PayoutMethodListResponse
// @Failure		400	{object}	PayoutMethodListResponse
// @Failure		500	{object}	PayoutMethodListResponse
// @Router			/v1/payout-methods [get]
// @Param			payee	query	string	false	"Filter by payee ID"
// @Param			name	query	string	false	"Filter by name"
// @Param			type	query	string	false	"Filter by type"
// @Param			isSaved	query	bool	false	"Is the method persisted for reuse?"
// @Param			search	query	string	false	"Search for this text in the name"
// @Param			offset	query	uint	false	"The offset of the first payout method returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of payout methods to return. Defaults to 50."
func GetPayoutMethods(c *gin.Context) {
	var filter PayoutMethodQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a model struct
	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PayoutMethodListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("created_at ASC").
		Where(&filterModel, queryFields...)

	// Payout methods have no note, only the name is searched
	if slices.Contains(setFields, "Name") {
		q = q.Where("name LIKE ?", "%"+filter.Name+"%")
	}

	if filter.Search != "" {
		q = q.Where("name LIKE ?", "%"+filter.Search+"%")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 payout methods and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var methods []models.PayoutMethod
	err = q.Find(&methods).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PayoutMethodListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PayoutMethodListResponse{
			Error: &e,
		})
		return
	}

	data := make([]PayoutMethod, 0, len(methods))
	for _, method := range methods {
		data = append(data, newPayoutMethod(c, method))
	}

	c.JSON(http.StatusOK, PayoutMethodListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get payout method
// @Description	Returns a specific payout method
// @Tags			PayoutMethods
// @Produce		json
// @Success		200	{object}	PayoutMethodResponse
// @Failure		400	{object}	PayoutMethodResponse
// @Failure		404	{object}	PayoutMethodResponse
// @Failure		500	{object}	PayoutMethodResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/payout-methods/{id} [get]
func GetPayoutMethod(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PayoutMethodResponse{
			Error: &s,
		})
		return
	}

	var method models.PayoutMethod
	err = models.DB.First(&method, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PayoutMethodResponse{
			Error: &s,
		})
		return
	}

	data := newPayoutMethod(c, method)
	c.JSON(http.StatusOK, PayoutMethodResponse{Data: &data})
}

// @Summary		Update payout method
// @Description	Update an existing payout method. Only values to be updated need to be specified.
// @Tags			PayoutMethods
// @Accept			json
// @Produce		json
// @Success		200				{object}	PayoutMethodResponse
// @Failure		400				{object}	PayoutMethodResponse
// @Failure		404				{object}	PayoutMethodResponse
// @Failure		500				{object}	PayoutMethodResponse
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			payoutMethod	body		PayoutMethodEditable	true	"Payout method"
// @Router			/v1/payout-methods/{id} [patch]
func UpdatePayoutMethod(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PayoutMethodResponse{
			Error: &s,
		})
		return
	}

	var method models.PayoutMethod
	err = models.DB.First(&method, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PayoutMethodResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, PayoutMethodEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PayoutMethodResponse{
			Error: &s,
		})
		return
	}

	var data PayoutMethodEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PayoutMethodResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&method).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PayoutMethodResponse{
			Error: &s,
		})
		return
	}

	r := newPayoutMethod(c, method)
	c.JSON(http.StatusOK, PayoutMethodResponse{Data: &r})
}

// @Summary		Delete payout method
// @Description	Deletes a payout method
// @Tags			PayoutMethods
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/payout-methods/{id} [delete]
func DeletePayoutMethod(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var method models.PayoutMethod
	err = models.DB.First(&method, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&method).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
