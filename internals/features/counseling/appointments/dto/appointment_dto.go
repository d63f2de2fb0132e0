package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"guidanceku_backend/internals/helpers/dbtime"
)

const dateLayout = "2006-01-02"

type CreateAppointmentInput struct {
	CounselorID string `json:"counselor_id" validate:"required,uuid4"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time" validate:"required"`
	Purpose     string `json:"purpose" validate:"required,min=5"`
}

// Parse turns the raw strings into typed values. Layouts are strict:
// "2006-01-02" for dates, "HH:MM" or "HH:MM:SS" for times.
func (in *CreateAppointmentInput) Parse() (uuid.UUID, time.Time, dbtime.Tod, error) {
	counselorID, err := uuid.Parse(in.CounselorID)
	if err != nil {
		return uuid.Nil, time.Time{}, dbtime.Tod{}, fmt.Errorf("counselor_id is not a valid UUID")
	}
	date, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return uuid.Nil, time.Time{}, dbtime.Tod{}, fmt.Errorf("date must use the YYYY-MM-DD format")
	}
	tod, err := dbtime.Parse(in.Time)
	if err != nil {
		return uuid.Nil, time.Time{}, dbtime.Tod{}, fmt.Errorf("time must use the HH:MM format")
	}
	return counselorID, date, tod, nil
}

type RescheduleAppointmentInput struct {
	Date string `json:"date" validate:"required"`
	Time string `json:"time" validate:"required"`
}

func (in *RescheduleAppointmentInput) Parse() (time.Time, dbtime.Tod, error) {
	date, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return time.Time{}, dbtime.Tod{}, fmt.Errorf("date must use the YYYY-MM-DD format")
	}
	tod, err := dbtime.Parse(in.Time)
	if err != nil {
		return time.Time{}, dbtime.Tod{}, fmt.Errorf("time must use the HH:MM format")
	}
	return date, tod, nil
}
