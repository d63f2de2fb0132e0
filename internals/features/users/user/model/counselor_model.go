package model

import (
	"github.com/google/uuid"
)

// CounselorModel is the 1:1 profile extension for users with the counselor role
type CounselorModel struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;unique;not null" json:"user_id"`
	User   UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Email  string    `gorm:"size:255;not null" json:"email"`
}

func (CounselorModel) TableName() string {
	return "counselors"
}
