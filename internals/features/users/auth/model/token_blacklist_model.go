package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenBlacklistModel stores access tokens invalidated by logout. Rows are
// swept by the cleanup scheduler once the token itself has expired.
type TokenBlacklistModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Token     string         `gorm:"type:text;uniqueIndex;not null" json:"token"`
	ExpiredAt time.Time      `gorm:"not null" json:"expired_at"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (TokenBlacklistModel) TableName() string {
	return "token_blacklist"
}
