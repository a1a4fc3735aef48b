package db

import (
	"slices"
	"strings"

	"gorm.io/gorm"
)

// likeEscape is portable across MySQL (where backslash is special inside
// string literals), PostgreSQL and SQLite.
const likeEscape = "!"

var likeEscaper = strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")

// EscapeLike quotes LIKE wildcards so the term is matched literally.
func EscapeLike(term string) string {
	return likeEscaper.Replace(term)
}

// ContainsAny matches rows where any of columns contains any of terms,
// ignoring case. Both sides are lowered by the database, so a term always
// matches text spelled exactly like it, even where LOWER only folds ASCII
// (SQLite). Empty and repeated terms are skipped.
func ContainsAny(columns []string, terms ...string) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		patterns := make([]string, 0, len(terms))
		for _, term := range terms {
			if term == "" {
				continue
			}
			pattern := "%" + EscapeLike(term) + "%"
			if !slices.Contains(patterns, pattern) {
				patterns = append(patterns, pattern)
			}
		}
		if len(patterns) == 0 || len(columns) == 0 {
			return tx
		}

		clauses := make([]string, 0, len(columns)*len(patterns))
		args := make([]any, 0, len(columns)*len(patterns))
		for _, col := range columns {
			for _, pattern := range patterns {
				clauses = append(clauses, "LOWER(COALESCE("+col+", '')) LIKE LOWER(?) ESCAPE '"+likeEscape+"'")
				args = append(args, pattern)
			}
		}
		return tx.Where("("+strings.Join(clauses, " OR ")+")", args...)
	}
}

// Paginate applies limit and offset; a non-positive limit leaves the query unbounded.
func Paginate(limit, offset int) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if limit > 0 {
			tx = tx.Limit(limit)
		}
		if offset > 0 {
			tx = tx.Offset(offset)
		}
		return tx
	}
}
