package repository

import (
	"gorm.io/gorm"
)

// PaginationScope returns a GORM scope that applies limit and offset.
// A non-positive limit leaves the query unbounded.
func PaginationScope(limit, offset int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if limit > 0 {
			db = db.Limit(limit)
		}
		if offset > 0 {
			db = db.Offset(offset)
		}
		return db
	}
}

// OrderScope returns a GORM scope that orders by the given clauses in turn.
func OrderScope(clauses ...string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, c := range clauses {
			db = db.Order(c)
		}
		return db
	}
}

// PreloadScope returns a GORM scope that eagerly loads the named associations.
func PreloadScope(associations ...string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, a := range associations {
			db = db.Preload(a, func(db *gorm.DB) *gorm.DB {
				return db.Order("id ASC")
			})
		}
		return db
	}
}

// YearRangeScope restricts movies to release years in [from, to].
func YearRangeScope(from, to int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("year BETWEEN ? AND ?", from, to)
	}
}
