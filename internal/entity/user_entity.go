package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserType string

const (
	UserTypeProSe             UserType = "pro_se"
	UserTypeLegalProfessional UserType = "legal_professional"
)

func (t UserType) Display() string {
	if t == UserTypeLegalProfessional {
		return "Legal Professional"
	}
	return "Pro-Se Litigant"
}

type User struct {
	Id           uuid.UUID
	Email        string
	PasswordHash *string
	FullName     string
	UserType     UserType
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
