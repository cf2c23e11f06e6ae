// Package outcomerepo persists terminal booking outcomes. The table is
// append-only: every attempt produces exactly one row, success or failure,
// and rows are read back newest first for the outcomes endpoint.
package outcomerepo

import (
	"time"

	"shiftbooker/internal/core/domain/model/booking"

	"github.com/google/uuid"
)

// Outcome values stored in the outcome column.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// OutcomeDTO represents the database structure for one recorded booking
// outcome. Indexed by recording time since reads are always newest-first.
type OutcomeDTO struct {
	AttemptID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecordedAt    time.Time `gorm:"index"`
	JobID         string    `gorm:"index"`
	Title         string
	Location      string
	Outcome       string
	ErrorKind     string
	Message       string
	Tries         int
	ApplicationID string
	ScheduleName  string
	StartTime     string
	EndTime       string
	PayRate       string
}

// TableName specifies the database table name for outcome records.
// Overrides GORM's default naming convention to use "booking_outcomes".
func (OutcomeDTO) TableName() string {
	return "booking_outcomes"
}

// fromSuccessRecord converts a success record to its database representation.
func fromSuccessRecord(record booking.SuccessRecord) (OutcomeDTO, error) {
	attemptID, err := uuid.Parse(record.AttemptID)
	if err != nil {
		return OutcomeDTO{}, err
	}

	return OutcomeDTO{
		AttemptID:     attemptID,
		RecordedAt:    record.Timestamp,
		JobID:         record.JobID,
		Title:         record.Title,
		Location:      record.Location,
		Outcome:       OutcomeSuccess,
		Tries:         record.Tries,
		ApplicationID: record.Confirmation.ApplicationID,
		ScheduleName:  record.Shift.ScheduleName,
		StartTime:     record.Shift.StartTime,
		EndTime:       record.Shift.EndTime,
		PayRate:       record.Shift.PayRate,
	}, nil
}

// fromFailureRecord converts a failure record to its database representation.
func fromFailureRecord(record booking.FailureRecord) (OutcomeDTO, error) {
	attemptID, err := uuid.Parse(record.AttemptID)
	if err != nil {
		return OutcomeDTO{}, err
	}

	return OutcomeDTO{
		AttemptID:  attemptID,
		RecordedAt: record.Timestamp,
		JobID:      record.JobID,
		Location:   record.Location,
		Outcome:    OutcomeFailure,
		ErrorKind:  string(record.ErrorKind),
		Message:    record.Message,
		Tries:      record.Tries,
	}, nil
}
