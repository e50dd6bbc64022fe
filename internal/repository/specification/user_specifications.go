package specification

import "gorm.io/gorm"

// ByEmail filters users by their unique email.
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// UnreadOnly keeps unread notifications.
type UnreadOnly struct{}

func (s UnreadOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_read = ?", false)
}
