package db

import (
	"gorm.io/gorm"
)

// NullableEquals compares column with value using null-safe equality:
// a nil value matches only NULL rows.
//
//	db.Scopes(db.NullableEquals("epoch_id", req.EpochID)).Find(&rows)
func NullableEquals(column string, value *uint) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if value == nil {
			return tx.Where(column + " IS NULL")
		}
		return tx.Where(column+" = ?", *value)
	}
}

// Paginate applies LIMIT/OFFSET for a 1-based page. Non-positive sizes disable paging.
func Paginate(page, pageSize int) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if pageSize <= 0 {
			return tx
		}
		if page < 1 {
			page = 1
		}
		return tx.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}
