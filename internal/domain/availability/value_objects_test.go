//go:build unit

package availability_test

import (
	"encoding/json"
	"testing"
	"time"

	"mindcare-booking/internal/domain/availability"
	"mindcare-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		minutes int
		wantErr bool
	}{
		{in: "00:00", minutes: 0},
		{in: "09:45", minutes: 585},
		{in: "23:59", minutes: 1439},
		{in: "24:00", minutes: 1440},
		{in: "24:01", wantErr: true},
		{in: "9h45", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := availability.ParseTimeOfDay(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errs.Is(err, errs.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.minutes, got.Minutes())
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestTimeOfDayArithmetic(t *testing.T) {
	start := availability.MustTimeOfDay("09:00")
	next := start.AddMinutes(45)

	assert.Equal(t, "09:45", next.String())
	assert.Equal(t, 45, next.Sub(start))
	assert.True(t, start.Before(next))
	assert.True(t, next.After(start))
	assert.Equal(t, 9*time.Hour, start.Duration())

	_, err := availability.NewTimeOfDay(10, 60)
	assert.ErrorIs(t, err, availability.ErrInvalidTimeOfDay)
}

func TestDate(t *testing.T) {
	d, err := availability.ParseDate("2031-03-10")
	require.NoError(t, err)
	assert.Equal(t, availability.NewDate(2031, time.March, 10), d)
	assert.Equal(t, "2031-03-10", d.String())

	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)
	at := d.At(availability.MustTimeOfDay("09:00"), paris)
	assert.Equal(t, 8, at.UTC().Hour())

	assert.True(t, d.Before(availability.NewDate(2031, time.March, 11)))
	assert.False(t, d.Before(d))

	_, err = availability.ParseDate("10/03/2031")
	assert.True(t, errs.Is(err, availability.ErrInvalidDate))
}

func TestTextMarshalling(t *testing.T) {
	type payload struct {
		Date availability.Date      `json:"date"`
		At   availability.TimeOfDay `json:"at"`
	}
	in := payload{Date: availability.NewDate(2031, time.March, 10), At: availability.MustTimeOfDay("24:00")}

	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2031-03-10","at":"24:00"}`, string(b))

	var out payload
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in, out)
}
