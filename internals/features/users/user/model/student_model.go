package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentModel is the 1:1 profile extension for users with the student role
type StudentModel struct {
	ID                uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID            uuid.UUID `gorm:"type:uuid;unique;not null" json:"user_id"`
	User              UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Course            string    `gorm:"size:100;not null" json:"course"`
	Year              int       `gorm:"not null;default:1" json:"year"`
	ContactNumber     *string   `gorm:"size:15" json:"contact_number,omitempty"`
	ReasonForReferral *string   `gorm:"type:text" json:"reason_for_referral,omitempty"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (StudentModel) TableName() string {
	return "students"
}
