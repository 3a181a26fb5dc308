package models_test

import (
	"github.com/expenseflow/backend/internal/models"
)

func (suite *TestSuiteStandard) TestTagRuleMatches() {
	rule := models.TagRule{Pattern: "*taxi*", Tag: "travel"}

	suite.Assert().True(rule.Matches(models.Expense{Description: "Airport taxi"}))
	suite.Assert().True(rule.Matches(models.Expense{Description: "taxi"}))
	suite.Assert().False(rule.Matches(models.Expense{Description: "Team dinner"}))
}

func (suite *TestSuiteStandard) TestTagRuleDuplicatePattern() {
	_ = suite.createTestTagRule(models.TagRule{Pattern: "*catering*", Tag: "food"})

	err := models.DB.Create(&models.TagRule{Pattern: "*catering*", Tag: "events"}).Error

	suite.Assert().ErrorIs(err, models.ErrTagRulePatternNotUnique)
}

func (suite *TestSuiteStandard) TestApplyTagRules() {
	_ = suite.createTestTagRule(models.TagRule{Priority: 2, Pattern: "*dinner*", Tag: "food"})
	_ = suite.createTestTagRule(models.TagRule{Priority: 1, Pattern: "Team*", Tag: "team"})
	_ = suite.createTestTagRule(models.TagRule{Priority: 3, Pattern: "*conference*", Tag: "events"})

	expense := models.Expense{Description: "Team dinner"}

	err := models.ApplyTagRules(models.DB, &expense)
	suite.Assert().Nil(err)

	// Tags are applied in priority order
	suite.Assert().Equal(models.Tags{"team", "food"}, expense.Tags)
}

func (suite *TestSuiteStandard) TestApplyTagRulesNoDuplicates() {
	_ = suite.createTestTagRule(models.TagRule{Pattern: "*dinner*", Tag: "food"})

	expense := models.Expense{
		Description: "Team dinner",
		Tags:        models.Tags{"food"},
	}

	err := models.ApplyTagRules(models.DB, &expense)
	suite.Assert().Nil(err)

	suite.Assert().Equal(models.Tags{"food"}, expense.Tags)
}

func (suite *TestSuiteStandard) TestTagRuleTrimWhitespace() {
	rule := suite.createTestTagRule(models.TagRule{Pattern: " *taxi* ", Tag: " travel "})

	suite.Assert().Equal("*taxi*", rule.Pattern)
	suite.Assert().Equal("travel", rule.Tag)
}
