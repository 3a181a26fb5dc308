package v1

import (
	"net/http"

	"github.com/expenseflow/backend/internal/httputil"
	"github.com/expenseflow/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterTagRuleRoutes registers the routes for tag rules with
// the RouterGroup that is passed.
func RegisterTagRuleRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTagRuleList)
		r.GET("", GetTagRules)
		r.POST("", CreateTagRules)
	}

	// TagRule with ID
	{
		r.OPTIONS("/:id", OptionsTagRuleDetail)
		r.GET("/:id", GetTagRule)
		r.PATCH("/:id", UpdateTagRule)
		r.DELETE("/:id", DeleteTagRule)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			TagRules
// @Success		204
// @Router			/v1/tag-rules [options]
func OptionsTagRuleList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			TagRules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/tag-rules/{id} [options]
func OptionsTagRuleDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.TagRule{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create tag rules
// @Description	Creates new tag rules
// @Tags			TagRules
// @Produce		json
// @Success		201			{object}	TagRuleCreateResponse
// @Failure		400			{object}	TagRuleCreateResponse
// @Failure		500			{object}	TagRuleCreateResponse
// @Param			tagRules	body		[]TagRuleEditable	true	"Tag rules"
// @Router			/v1/tag-rules [post]
func CreateTagRules(c *gin.Context) {
	var editables []TagRuleEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TagRuleCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := TagRuleCreateResponse{}

	for _, editable := range editables {
		rule := editable.model()

		err = models.DB.Create(&rule).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newTagRule(c, rule)
		r.Data = append(r.Data, TagRuleResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get tag rules
// @Description	Returns a list of tag rules
// @Tags			TagRules
// @Produce		json
// @Success		200	{object}	TagRuleListResponse
// @Failure		400	{object}	TagRuleListResponse
// @Failure		500	{object}	TagRuleListResponse
// @Router			/v1/tag-rules [get]
// @Param			priority	query	uint	false	"Filter by priority"
// @Param			tag			query	string	false	"Filter by assigned tag"
// @Param			offset		query	uint	false	"The offset of the first tag rule returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of tag rules to return. Defaults to 50."
func GetTagRules(c *gin.Context) {
	var filter TagRuleQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a model struct
	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TagRuleListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("priority ASC, created_at ASC").
		Where(&filterModel, queryFields...)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 tag rules and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var rules []models.TagRule
	err = q.Find(&rules).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TagRuleListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TagRuleListResponse{
			Error: &e,
		})
		return
	}

	data := make([]TagRule, 0, len(rules))
	for _, rule := range rules {
		data = append(data, newTagRule(c, rule))
	}

	c.JSON(http.StatusOK, TagRuleListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get tag rule
// @Description	Returns a specific tag rule
// @Tags			TagRules
// @Produce		json
// @Success		200	{object}	TagRuleResponse
// @Failure		400	{object}	TagRuleResponse
// @Failure		404	{object}	TagRuleResponse
// @Failure		500	{object}	TagRuleResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/tag-rules/{id} [get]
func GetTagRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TagRuleResponse{
			Error: &s,
		})
		return
	}

	var rule models.TagRule
	err = models.DB.First(&rule, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TagRuleResponse{
			Error: &s,
		})
		return
	}

	data := newTagRule(c, rule)
	c.JSON(http.StatusOK, TagRuleResponse{Data: &data})
}

// @Summary		Update tag rule
// @Description	Update an existing tag rule. Only values to be updated need to be specified.
// @Tags			TagRules
// @Accept			json
// @Produce		json
// @Success		200		{object}	TagRuleResponse
// @Failure		400		{object}	TagRuleResponse
// @Failure		404		{object}	TagRuleResponse
// @Failure		500		{object}	TagRuleResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			tagRule	body		TagRuleEditable	true	"Tag rule"
// @Router			/v1/tag-rules/{id} [patch]
func UpdateTagRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TagRuleResponse{
			Error: &s,
		})
		return
	}

	var rule models.TagRule
	err = models.DB.First(&rule, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TagRuleResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, TagRuleEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TagRuleResponse{
			Error: &s,
		})
		return
	}

	var data TagRuleEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TagRuleResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&rule).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TagRuleResponse{
			Error: &s,
		})
		return
	}

	r := newTagRule(c, rule)
	c.JSON(http.StatusOK, TagRuleResponse{Data: &r})
}

// @Summary		Delete tag rule
// @Description	Deletes a tag rule
// @Tags			TagRules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/tag-rules/{id} [delete]
func DeleteTagRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var rule models.TagRule
	err = models.DB.First(&rule, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&rule).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
