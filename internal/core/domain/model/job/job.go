package job

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shiftbooker/internal/core/domain/model/kernel"
	"shiftbooker/internal/pkg/errs"
)

// ErrJobIsNotConstructed is returned when a Job instance was not created
// through the NewJob factory method.
var ErrJobIsNotConstructed = errors.New("Job must be created via NewJob constructor")

// Job represents a bookable shift discovered at the external job source.
// A Job is immutable once fetched: the poll cycle that discovered it owns it
// until it is handed to the dispatcher, at which point ownership transfers to
// a booking attempt.
//
// Invariants:
//   - Must have a non-empty listing identifier
//   - Location and shift detail are carried through unmodified
//   - Can only be created through the NewJob constructor
type Job struct {
	// id uniquely identifies this listing instance, composed from the
	// source's job and schedule identifiers.
	id string

	// title is the human-readable job title from the source.
	title string

	// location is where the shift takes place.
	location Location

	// shift carries the shift payload, opaque to the core.
	shift ShiftDetail

	// discoveredAt records when the poll cycle first saw this listing.
	discoveredAt time.Time

	isConstructed bool
}

// NewJob creates a Job with validation. The identifier is required; title,
// location, and shift detail are carried as provided by the source. A zero
// discoveredAt is replaced with the current time.
func NewJob(id, title string, location Location, shift ShiftDetail, discoveredAt time.Time) (*Job, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errs.NewValueIsRequiredError("id")
	}

	if discoveredAt.IsZero() {
		discoveredAt = time.Now()
	}

	return &Job{
		id:            id,
		title:         title,
		location:      location,
		shift:         shift,
		discoveredAt:  discoveredAt,
		isConstructed: true,
	}, nil
}

// ComposeID builds the listing identifier from the source's job and schedule
// identifiers. A listing is unique per (job, schedule) pair, so both take
// part in deduplication.
func ComposeID(jobID, scheduleID string) string {
	return fmt.Sprintf("%s-%s", jobID, scheduleID)
}

// Validate ensures the Job was properly constructed through NewJob.
func (j *Job) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrJobIsNotConstructed
	}

	return nil
}

// IsEqual compares two jobs by their listing identifiers.
func (j *Job) IsEqual(other *Job) bool {
	return other != nil && j.id == other.id
}

// ID returns the listing identifier.
func (j *Job) ID() string {
	return j.id
}

// Title returns the job title as reported by the source.
func (j *Job) Title() string {
	return j.title
}

// Location returns where the shift takes place.
func (j *Job) Location() Location {
	return j.location
}

// Shift returns the opaque shift payload.
func (j *Job) Shift() ShiftDetail {
	return j.shift
}

// DiscoveredAt returns when the listing was first seen.
func (j *Job) DiscoveredAt() time.Time {
	return j.discoveredAt
}

// Location describes where a shift takes place. The source may report a city
// name, coordinates, both, or neither; the location filter treats missing
// data as a non-match, so Location performs no validation of its own.
type Location struct {
	city   string
	coords *kernel.GeoPoint
}

// NewLocation creates a Location from a city name and optional coordinates.
// Pass nil coords when the source did not report a position.
func NewLocation(city string, coords *kernel.GeoPoint) Location {
	return Location{city: city, coords: coords}
}

// City returns the city name, which may be empty.
func (l Location) City() string {
	return l.city
}

// Coordinates returns the reported position and whether one was present.
func (l Location) Coordinates() (kernel.GeoPoint, bool) {
	if l.coords == nil {
		return kernel.GeoPoint{}, false
	}
	return *l.coords, true
}

// String renders the location for logging, preferring the city name.
func (l Location) String() string {
	switch {
	case l.city != "" && l.coords != nil:
		return fmt.Sprintf("%s %s", l.city, l.coords)
	case l.city != "":
		return l.city
	case l.coords != nil:
		return l.coords.String()
	default:
		return "unknown"
	}
}

// ShiftDetail carries the shift payload from the source. The core never
// interprets these fields; they are passed through to outcome records
// exactly as fetched.
type ShiftDetail struct {
	ScheduleID     string
	ScheduleName   string
	StartTime      string
	EndTime        string
	PayRate        string
	AvailableSlots int
}
