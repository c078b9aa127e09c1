package consultation

import (
	"net/url"
	"strings"
	"time"

	"mindcare-booking/internal/domain/availability"
	"mindcare-booking/internal/domain/reservation"
	"mindcare-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidDuration    = errs.Mark(errs.New("consultation duration must be positive"), errs.ErrValidation)
	ErrInvalidVideoLink   = errs.Mark(errs.New("video link must be an absolute http(s) URL"), errs.ErrValidation)
	ErrNotValidated       = errs.Mark(errs.New("consultation requires a validated reservation"), errs.ErrConflict)
	ErrAlreadyCancelled   = errs.Mark(errs.New("consultation is cancelled"), errs.ErrConflict)
	ErrReservationMissing = errs.Mark(errs.New("consultation requires a reservation"), errs.ErrValidation)
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusCancelled
}

// Consultation is the session record produced when a reservation is validated.
// Only the video link and the active/cancelled flag change after creation.
type Consultation struct {
	id              uuid.UUID
	reservationID   uuid.UUID
	date            availability.Date
	time            availability.TimeOfDay
	durationMinutes int
	priceCents      int64
	videoLink       string
	status          Status
	createdAt       time.Time
	updatedAt       time.Time
}

// Settings are the platform values a new consultation is derived with.
type Settings struct {
	DurationMinutes int
	VideoBaseURL    string
}

func NewFromReservation(
	r *reservation.Reservation,
	w *availability.Window,
	settings Settings,
	now time.Time,
) (*Consultation, error) {
	if r == nil || w == nil {
		return nil, ErrReservationMissing
	}
	if r.Status() != reservation.StatusValidated {
		return nil, ErrNotValidated
	}
	if settings.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	c := &Consultation{
		id:              uuid.New(),
		reservationID:   r.ID(),
		date:            w.Date(),
		time:            r.RequestedTime(),
		durationMinutes: settings.DurationMinutes,
		priceCents:      r.Price().Cents(),
		status:          StatusActive,
		createdAt:       now,
		updatedAt:       now,
	}
	if base := strings.TrimRight(settings.VideoBaseURL, "/"); base != "" {
		c.videoLink = base + "/" + c.id.String()
	}
	return c, nil
}

func Reconstruct(
	id, reservationID uuid.UUID,
	date availability.Date,
	at availability.TimeOfDay,
	durationMinutes int,
	priceCents int64,
	videoLink string,
	status Status,
	createdAt, updatedAt time.Time,
) *Consultation {
	return &Consultation{
		id:              id,
		reservationID:   reservationID,
		date:            date,
		time:            at,
		durationMinutes: durationMinutes,
		priceCents:      priceCents,
		videoLink:       videoLink,
		status:          status,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Invalidate flags the consultation cancelled. Calling it twice is a no-op.
func (c *Consultation) Invalidate(now time.Time) {
	if c.status == StatusCancelled {
		return
	}
	c.status = StatusCancelled
	c.updatedAt = now
}

func (c *Consultation) SetVideoLink(link string, now time.Time) error {
	if c.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	u, err := url.Parse(link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidVideoLink
	}
	c.videoLink = link
	c.updatedAt = now
	return nil
}

func (c *Consultation) ID() uuid.UUID                { return c.id }
func (c *Consultation) ReservationID() uuid.UUID     { return c.reservationID }
func (c *Consultation) Date() availability.Date      { return c.date }
func (c *Consultation) Time() availability.TimeOfDay { return c.time }
func (c *Consultation) DurationMinutes() int         { return c.durationMinutes }
func (c *Consultation) PriceCents() int64            { return c.priceCents }
func (c *Consultation) VideoLink() string            { return c.videoLink }
func (c *Consultation) Status() Status               { return c.status }
func (c *Consultation) CreatedAt() time.Time         { return c.createdAt }
func (c *Consultation) UpdatedAt() time.Time         { return c.updatedAt }
