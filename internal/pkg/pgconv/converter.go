package pgconv

import (
	"errors"
	"time"

	"mindcare-booking/internal/domain/availability"

	"github.com/jackc/pgx/v5/pgtype"
)

var ErrInvalidTimeValue = errors.New("invalid time value in pgtype.Time")

const microsPerMinute = int64(time.Minute / time.Microsecond)

func StringPtrFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	return &pt.String
}

// OptionalText stores the empty string as NULL.
func OptionalText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func TimeOfDayToPgtype(t availability.TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: int64(t.Minutes()) * microsPerMinute, Valid: true}
}

func TimeOfDayFromPgtype(pt pgtype.Time) (availability.TimeOfDay, error) {
	if !pt.Valid || pt.Microseconds%microsPerMinute != 0 {
		return availability.TimeOfDay{}, ErrInvalidTimeValue
	}
	return availability.TimeOfDayFromMinutes(int(pt.Microseconds / microsPerMinute))
}

func DateToPgtype(d availability.Date) pgtype.Date {
	return pgtype.Date{Time: d.Midnight(time.UTC), Valid: true}
}

func DateFromPgtype(pd pgtype.Date) availability.Date {
	return availability.DateOf(pd.Time.UTC())
}
