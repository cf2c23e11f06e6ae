package booking

import (
	"time"

	"shiftbooker/internal/core/domain/model/job"
	"shiftbooker/internal/core/domain/model/stats"
)

// SuccessRecord is emitted exactly once for every attempt that reaches
// Succeeded. The shift detail is passed through from the source unmodified.
type SuccessRecord struct {
	Timestamp    time.Time
	AttemptID    string
	JobID        string
	Title        string
	Location     string
	Shift        job.ShiftDetail
	Tries        int
	Confirmation Confirmation
	Stats        stats.Snapshot
}

// FailureRecord is emitted exactly once for every attempt that reaches
// FailedTerminal.
type FailureRecord struct {
	Timestamp time.Time
	AttemptID string
	JobID     string
	Location  string
	ErrorKind ErrorKind
	Message   string
	Tries     int
}

// NewSuccessRecord builds the terminal record for a succeeded attempt.
func NewSuccessRecord(a *Attempt, snapshot stats.Snapshot) SuccessRecord {
	j := a.Job()
	return SuccessRecord{
		Timestamp:    time.Now(),
		AttemptID:    a.ID().String(),
		JobID:        j.ID(),
		Title:        j.Title(),
		Location:     j.Location().String(),
		Shift:        j.Shift(),
		Tries:        a.Count(),
		Confirmation: a.Confirmation(),
		Stats:        snapshot,
	}
}

// NewFailureRecord builds the terminal record for a terminally failed attempt.
func NewFailureRecord(a *Attempt) FailureRecord {
	j := a.Job()
	message := ""
	if a.LastError() != nil {
		message = a.LastError().Error()
	}

	return FailureRecord{
		Timestamp: time.Now(),
		AttemptID: a.ID().String(),
		JobID:     j.ID(),
		Location:  j.Location().String(),
		ErrorKind: KindOf(a.LastError()),
		Message:   message,
		Tries:     a.Count(),
	}
}
