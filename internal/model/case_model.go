package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type LegalCase struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(255);not null"`
	CaseNumber   *string   `gorm:"type:varchar(100);uniqueIndex"`
	Type         string    `gorm:"type:varchar(100);not null"`
	Jurisdiction string    `gorm:"type:varchar(100);not null"`
	Venue        string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text;not null"`
	Status       string    `gorm:"type:varchar(50);not null;default:'pending'"`
	Metadata     datatypes.JSON
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (LegalCase) TableName() string {
	return "cases"
}

type CaseParty struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CaseId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Type      string    `gorm:"type:varchar(50);not null"`
	Category  string    `gorm:"type:varchar(50);not null"`
	Email     string    `gorm:"type:varchar(255)"`
	Phone     string    `gorm:"type:varchar(20)"`
	Address   string    `gorm:"type:varchar(500)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (CaseParty) TableName() string {
	return "case_parties"
}

type CaseDeadline struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CaseId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Date        time.Time `gorm:"type:date;not null;index"`
	Time        string    `gorm:"type:varchar(5)"`
	Type        string    `gorm:"type:varchar(50);not null"`
	Priority    string    `gorm:"type:varchar(20);not null;default:'medium'"`
	Description string    `gorm:"type:varchar(500)"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (CaseDeadline) TableName() string {
	return "case_deadlines"
}

type CaseDocument struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CaseId       uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title        string     `gorm:"type:varchar(255);not null"`
	Type         string     `gorm:"type:varchar(50);not null"`
	Category     string     `gorm:"type:varchar(50);not null"`
	Description  string     `gorm:"type:varchar(500)"`
	ReceivedDate *time.Time `gorm:"type:date"`
	DueDate      *time.Time `gorm:"type:date"`
	Status       string     `gorm:"type:varchar(20);not null;default:'placeholder'"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
}

func (CaseDocument) TableName() string {
	return "case_documents"
}
