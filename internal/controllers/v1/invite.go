package v1

import (
	"net/http"

	"github.com/expenseflow/backend/internal/httputil"
	"github.com/expenseflow/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterInviteRoutes registers the routes for invites with
// the RouterGroup that is passed.
func RegisterInviteRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsInviteList)
		r.GET("", GetInvites)
		r.POST("", CreateInvites)
	}

	// Invite with ID
	{
		r.OPTIONS("/:id", OptionsInviteDetail)
		r.GET("/:id", GetInvite)
		r.DELETE("/:id", DeleteInvite)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Invites
// @Success		204
// @Router			/v1/invites [options]
func OptionsInviteList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Invites
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/invites/{id} [options]
func OptionsInviteDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Invite{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Create invites
// @Description	Invites third parties to complete an expense as its payee
// @Tags			Invites
// @Produce		json
// @Success		201		{object}	InviteCreateResponse
// @Failure		400		{object}	InviteCreateResponse
// @Failure		404		{object}	InviteCreateResponse
// @Failure		500		{object}	InviteCreateResponse
// @Param			invites	body		[]InviteEditable	true	"Invites"
// @Router			/v1/invites [post]
func CreateInvites(c *gin.Context) {
	var editables []InviteEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InviteCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := InviteCreateResponse{}

	for _, editable := range editables {
		invite := editable.model()

		err = models.DB.Create(&invite).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newInvite(c, invite)
		r.Data = append(r.Data, InviteResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get invites
// @Description	Returns a list of invites
// @Tags			Invites
// @Produce		json
// @Success		200	{object}	InviteListResponse
// @Failure		400	{object}	InviteListResponse
// @Failure		500	{object}	InviteListResponse
// @Router			/v1/invites [get]
// @Param			expense	query	string	false	"Filter by expense ID"
// @Param			email	query	string	false	"Filter by email address"
// @Param			status	query	string	false	"Filter by lifecycle state"
// @Param			offset	query	uint	false	"The offset of the first invite returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of invites to return. Defaults to 50."
func GetInvites(c *gin.Context) {
	var filter InviteQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a model struct
	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InviteListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("created_at ASC").
		Where(&filterModel, queryFields...)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 invites and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var invites []models.Invite
	err = q.Find(&invites).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InviteListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InviteListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Invite, 0, len(invites))
	for _, invite := range invites {
		data = append(data, newInvite(c, invite))
	}

	c.JSON(http.StatusOK, InviteListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get invite
// @Description	Returns a specific invite
// @Tags			Invites
// @Produce		json
// @Success		200	{object}	InviteResponse
// @Failure		400	{object}	InviteResponse
// @Failure		404	{object}	InviteResponse
// @Failure		500	{object}	InviteResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/invites/{id} [get]
func GetInvite(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InviteResponse{
			Error: &s,
		})
		return
	}

	var invite models.Invite
	err = models.DB.First(&invite, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InviteResponse{
			Error: &s,
		})
		return
	}

	data := newInvite(c, invite)
	c.JSON(http.StatusOK, InviteResponse{Data: &data})
}

// @Summary		Delete invite
// @Description	Withdraws an invite
// @Tags			Invites
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/invites/{id} [delete]
func DeleteInvite(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var invite models.Invite
	err = models.DB.First(&invite, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&invite).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
