package v1

import (
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// stringFilters adds filters for strings to a query. Strings are always
// matched case-insensitively and as substrings.
func stringFilters(db, query *gorm.DB, setFields []string, name, note, search string) *gorm.DB {
	if slices.Contains(setFields, "Name") {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}

	if slices.Contains(setFields, "Note") {
		query = query.Where("note LIKE ?", "%"+note+"%")
	}

	if search != "" {
		query = query.Where(
			db.Where("name LIKE ?", "%"+search+"%").
				Or(db.Where("note LIKE ?", "%"+search+"%")),
		)
	}

	return query
}
