package utils

import (
	"time"

	"gorm.io/gorm"
)

// Paginate is a gorm scope applying page/size windows to list queries.
func Paginate(page, size int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page <= 0 {
			page = 1
		}
		if size <= 0 {
			size = 10
		}
		offset := (page - 1) * size
		return db.Offset(offset).Limit(size)
	}
}

// UnixToTime converts API unix-second timestamps into time.Time.
func UnixToTime(value int64) time.Time {
	return time.Unix(value, 0).UTC()
}
