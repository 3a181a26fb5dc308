package v1

import (
	"fmt"

	"github.com/expenseflow/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// TagRuleEditable represents all user configurable parameters
type TagRuleEditable struct {
	Priority uint   `json:"priority" example:"10" default:"0"`   // Rules are applied in ascending priority order
	Pattern  string `json:"pattern" example:"*taxi*" default:""` // Glob pattern matched against the expense description
	Tag      string `json:"tag" example:"travel" default:""`     // Tag assigned to matching expenses
}

func (editable TagRuleEditable) model() models.TagRule {
	return models.TagRule{
		Priority: editable.Priority,
		Pattern:  editable.Pattern,
		Tag:      editable.Tag,
	}
}

type TagRuleLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/tag-rules/b4e217e2-6607-45ea-b588-90a9d4581fcd"` // The tag rule itself
}

// TagRule is the API representation of a tag rule.
type TagRule struct {
	models.DefaultModel
	TagRuleEditable
	Links TagRuleLinks `json:"links"`
}

func newTagRule(c *gin.Context, model models.TagRule) TagRule {
	url := c.GetString(string(models.DBContextURL))

	return TagRule{
		DefaultModel: model.DefaultModel,
		TagRuleEditable: TagRuleEditable{
			Priority: model.Priority,
			Pattern:  model.Pattern,
			Tag:      model.Tag,
		},
		Links: TagRuleLinks{
			Self: fmt.Sprintf("%s/v1/tag-rules/%s", url, model.ID),
		},
	}
}

type TagRuleListResponse struct {
	Data       []TagRule   `json:"data"`                                                          // List of tag rules
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type TagRuleCreateResponse struct {
	Data  []TagRuleResponse `json:"data"`                                                          // List of the created tag rules or their respective error
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (t *TagRuleCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TagRuleResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TagRuleResponse struct {
	Data  *TagRule `json:"data"`                                                          // Data for the tag rule
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TagRuleQueryFilter struct {
	Priority uint   `form:"priority"`                   // By priority
	Tag      string `form:"tag"`                        // By assigned tag
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first tag rule returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of tag rules to return. Defaults to 50.
}

func (f TagRuleQueryFilter) model() (models.TagRule, error) {
	return models.TagRule{
		Priority: f.Priority,
		Tag:      f.Tag,
	}, nil
}
