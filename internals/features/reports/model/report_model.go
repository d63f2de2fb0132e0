package model

import (
	"time"

	"github.com/google/uuid"

	userModel "guidanceku_backend/internals/features/users/user/model"
)

const (
	TypeStudentSummary       = "student_summary"
	TypeSessionAnalytics     = "session_analytics"
	TypeCounselorPerformance = "counselor_performance"
	TypeCaseManagement       = "case_management"
)

const (
	FormatPDF   = "pdf"
	FormatExcel = "excel"
	FormatCSV   = "csv"
)

// ValidType reports whether t names a known report type.
func ValidType(t string) bool {
	switch t {
	case TypeStudentSummary, TypeSessionAnalytics, TypeCounselorPerformance, TypeCaseManagement:
		return true
	}
	return false
}

// ValidFormat reports whether f names a known output format.
func ValidFormat(f string) bool {
	return f == FormatPDF || f == FormatExcel || f == FormatCSV
}

// ReportModel is one generated report file. The row and the file live and
// die together: a failed generation leaves neither, deleting the row
// removes the file.
type ReportModel struct {
	ID            uuid.UUID           `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ReportType    string              `gorm:"type:varchar(30);not null;index" json:"report_type"`
	Format        string              `gorm:"type:varchar(10);not null" json:"format"`
	PeriodStart   time.Time           `gorm:"type:date;not null" json:"period_start"`
	PeriodEnd     time.Time           `gorm:"type:date;not null" json:"period_end"`
	FilePath      string              `gorm:"size:255;not null" json:"file_path"`
	GeneratedByID uuid.UUID           `gorm:"type:uuid;not null" json:"generated_by_id"`
	GeneratedBy   userModel.UserModel `gorm:"foreignKey:GeneratedByID;constraint:OnDelete:CASCADE" json:"generated_by,omitempty"`
	CreatedAt     time.Time           `gorm:"autoCreateTime" json:"created_at"`
}

func (ReportModel) TableName() string {
	return "reports"
}

// Extension of the backing file for a format.
func Extension(format string) string {
	switch format {
	case FormatExcel:
		return ".xlsx"
	case FormatCSV:
		return ".csv"
	default:
		return ".pdf"
	}
}
