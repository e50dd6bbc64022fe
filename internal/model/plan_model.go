package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SubscriptionPlan struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Slug      string    `gorm:"type:varchar(255);not null;index:idx_plan_slug_version,unique,priority:1"`
	Version   int       `gorm:"not null;default:1;index:idx_plan_slug_version,unique,priority:2"`
	IsCurrent bool      `gorm:"not null;default:true;index"`
	IsActive  bool      `gorm:"not null;default:true"`

	PriceType string `gorm:"type:varchar(50);not null;default:'flat_rate'"`
	Price     int64  `gorm:"not null;default:0"`
	Currency  string `gorm:"type:varchar(3);not null;default:'USD'"`
	MeterName string `gorm:"type:varchar(100)"`

	IntervalCount      int    `gorm:"not null;default:1"`
	IntervalUnit       string `gorm:"type:varchar(10);not null;default:'month'"`
	TrialIntervalCount int    `gorm:"not null;default:0"`
	TrialIntervalUnit  string `gorm:"type:varchar(10)"`

	PriceTiers datatypes.JSON

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (SubscriptionPlan) TableName() string {
	return "subscription_plans"
}
