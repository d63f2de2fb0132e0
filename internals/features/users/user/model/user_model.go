package model

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"guidanceku_backend/internals/constants"
)

// Validator instance
var validate = validator.New()

// Approval status values for newly registered accounts
const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

// UserModel represents the users table
type UserModel struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName       string         `gorm:"size:50;unique;not null" json:"user_name" validate:"required,min=3,max=50"`
	Email          string         `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password       string         `gorm:"not null" json:"-" validate:"required,min=8"`
	FirstName      string         `gorm:"size:50;not null" json:"first_name" validate:"required,max=50"`
	LastName       string         `gorm:"size:50;not null" json:"last_name" validate:"required,max=50"`
	Role           constants.Role `gorm:"type:varchar(20);not null" json:"role" validate:"required"`
	ApprovalStatus string         `gorm:"type:varchar(10);not null;default:'pending'" json:"approval_status" validate:"omitempty,oneof=pending approved rejected"`
	IsActive       bool           `gorm:"not null;default:false" json:"is_active"`
	IsSuperuser    bool           `gorm:"not null;default:false" json:"-"`
	ProfilePicture *string        `gorm:"size:255" json:"profile_picture,omitempty"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) FullName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.UserName
	}
	return u.FirstName + " " + u.LastName
}

// SetDefaultValues fills defaults before validation
func (u *UserModel) SetDefaultValues() {
	if u.ApprovalStatus == "" {
		u.ApprovalStatus = ApprovalPending
	}
}

// BeforeSave keeps the superuser invariant: always active and approved.
func (u *UserModel) BeforeSave(tx *gorm.DB) error {
	if u.IsSuperuser {
		u.IsActive = true
		u.ApprovalStatus = ApprovalApproved
	}
	return nil
}

// Validate checks the input against the rules defined on the struct
func (u *UserModel) Validate() error {
	u.SetDefaultValues()

	if !u.Role.Valid() {
		return errors.New("Role: must be one of admin, counselor, student.")
	}

	if err := validate.Struct(u); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError turns validator errors into a readable message
func formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		errorMessages := make(map[string]string)
		for _, fieldErr := range validationErrs {
			switch fieldErr.Tag() {
			case "required":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " is required."
			case "email":
				errorMessages[fieldErr.Field()] = "Invalid email format."
			case "min":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " must be at least " + fieldErr.Param() + " characters."
			case "max":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " must be under " + fieldErr.Param() + " characters."
			case "oneof":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " must be one of " + fieldErr.Param() + "."
			default:
				errorMessages[fieldErr.Field()] = "Invalid format."
			}
		}
		return errors.New(formatErrorMessage(errorMessages))
	}
	return err
}

func formatErrorMessage(errs map[string]string) string {
	var msg string
	for field, errorMsg := range errs {
		msg += field + ": " + errorMsg + "\n"
	}
	return msg
}
