package availability

import (
	"fmt"
	"time"

	"mindcare-booking/internal/pkg/errs"
)

const (
	TimeLayout = "15:04"
	DateLayout = "2006-01-02"

	minutesPerDay = 24 * 60
)

var (
	ErrInvalidTimeOfDay = errs.Mark(errs.New("time of day must be HH:MM between 00:00 and 24:00"), errs.ErrValidation)
	ErrInvalidDate      = errs.Mark(errs.New("date must be YYYY-MM-DD"), errs.ErrValidation)
)

// TimeOfDay is a wall-clock time with minute precision. 24:00 is allowed so a
// window can close at midnight.
type TimeOfDay struct {
	minutes int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDayFromMinutes(hour*60 + minute)
}

func TimeOfDayFromMinutes(m int) (TimeOfDay, error) {
	if m < 0 || m > minutesPerDay {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: m}, nil
}

// MustTimeOfDay panics on bad input; meant for constants and tests.
func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if s == "24:00" {
		return TimeOfDay{minutes: minutesPerDay}, nil
	}
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return TimeOfDay{}, errs.Mark(errs.Wrapf(err, "parse time of day %q", s), ErrInvalidTimeOfDay)
	}
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}, nil
}

func (t TimeOfDay) Minutes() int { return t.minutes }

func (t TimeOfDay) Hour() int { return t.minutes / 60 }

func (t TimeOfDay) Minute() int { return t.minutes % 60 }

func (t TimeOfDay) Before(o TimeOfDay) bool { return t.minutes < o.minutes }

func (t TimeOfDay) After(o TimeOfDay) bool { return t.minutes > o.minutes }

func (t TimeOfDay) Equal(o TimeOfDay) bool { return t.minutes == o.minutes }

// AddMinutes may step past 24:00; callers compare against a window end before using the result.
func (t TimeOfDay) AddMinutes(m int) TimeOfDay {
	return TimeOfDay{minutes: t.minutes + m}
}

// Sub returns t - o in minutes.
func (t TimeOfDay) Sub(o TimeOfDay) int {
	return t.minutes - o.minutes
}

func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(t.minutes) * time.Minute
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(b []byte) error {
	parsed, err := ParseTimeOfDay(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Date is a calendar day with no time zone attached.
type Date struct {
	year  int
	month time.Month
	day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf takes the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errs.Mark(errs.Wrapf(err, "parse date %q", s), ErrInvalidDate)
	}
	return DateOf(t), nil
}

func (d Date) Equal(o Date) bool  { return d == o }
func (d Date) Before(o Date) bool { return d.Midnight(time.UTC).Before(o.Midnight(time.UTC)) }

// At resolves the wall-clock time t on this date in loc.
func (d Date) At(t TimeOfDay, loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, 0, t.minutes, 0, 0, loc)
}

func (d Date) Midnight(loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

func (d Date) String() string {
	return d.Midnight(time.UTC).Format(DateLayout)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
