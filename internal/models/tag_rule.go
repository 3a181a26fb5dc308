package models

import (
	"strings"

	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// TagRule automatically assigns a tag to expenses whose description
// matches the glob pattern.
type TagRule struct {
	DefaultModel
	Priority uint
	Pattern  string `gorm:"uniqueIndex:tag_rule_pattern"`
	Tag      string
}

// BeforeSave trims whitespace.
func (r *TagRule) BeforeSave(_ *gorm.DB) error {
	r.Pattern = strings.TrimSpace(r.Pattern)
	r.Tag = strings.TrimSpace(r.Tag)

	return nil
}

// Matches reports whether the rule applies to the expense.
func (r TagRule) Matches(e Expense) bool {
	return glob.Glob(r.Pattern, e.Description)
}

// ApplyTagRules adds the tags of all matching rules to the expense.
// Rules are applied in priority order, tags that are already set are
// not duplicated.
func ApplyTagRules(db *gorm.DB, e *Expense) error {
	var rules []TagRule

	err := db.Order("priority ASC, created_at ASC").Find(&rules).Error
	if err != nil {
		return err
	}

	for _, rule := range rules {
		if !rule.Matches(*e) {
			continue
		}

		if slices.Contains(e.Tags, rule.Tag) {
			continue
		}

		e.Tags = append(e.Tags, rule.Tag)
	}

	return nil
}
