package db

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ForUpdate adds SELECT ... FOR UPDATE. SQLite has no row locks and drops
// the clause.
func ForUpdate() func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// HasPrefix matches rows whose column starts with prefix taken literally.
// An empty prefix matches everything.
func HasPrefix(column, prefix string) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if prefix == "" {
			return tx
		}
		return tx.Where(column+" LIKE ?", likeEscaper.Replace(prefix)+"%")
	}
}
