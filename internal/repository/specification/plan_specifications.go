package specification

import "gorm.io/gorm"

// BySlug filters plans by their slug across versions.
type BySlug struct {
	Slug string
}

func (s BySlug) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("slug = ?", s.Slug)
}

// CurrentOnly keeps the live version of each plan.
type CurrentOnly struct{}

func (s CurrentOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_current = ?", true)
}

// ActiveOnly keeps plans that can still be sold.
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}
