//go:build unit

package availability_test

import (
	"testing"
	"time"

	"mindcare-booking/internal/domain/availability"
	"mindcare-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type occupant struct {
	windowID uuid.UUID
	at       availability.TimeOfDay
	holds    bool
}

func (o occupant) WindowID() uuid.UUID                   { return o.windowID }
func (o occupant) RequestedTime() availability.TimeOfDay { return o.at }
func (o occupant) HoldsSlot() bool                       { return o.holds }

func strs(ts []availability.TimeOfDay) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.String()
	}
	return out
}

func TestComputeFreeSlots(t *testing.T) {
	b := builder.NewWindowBuilder().WithBounds("09:00", "10:30")
	w := b.BuildReconstructed()
	before := b.Date.At(availability.MustTimeOfDay("08:00"), time.UTC)

	tests := []struct {
		name      string
		occupants []availability.Occupant
		now       time.Time
		want      []string
	}{
		{
			name: "empty window before opening",
			now:  before,
			want: []string{"09:00", "09:45"},
		},
		{
			name:      "booked start removed",
			occupants: []availability.Occupant{occupant{w.ID(), availability.MustTimeOfDay("09:00"), true}},
			now:       before,
			want:      []string{"09:45"},
		},
		{
			name:      "terminal reservation frees the slot",
			occupants: []availability.Occupant{occupant{w.ID(), availability.MustTimeOfDay("09:00"), false}},
			now:       before,
			want:      []string{"09:00", "09:45"},
		},
		{
			name:      "other window ignored",
			occupants: []availability.Occupant{occupant{uuid.New(), availability.MustTimeOfDay("09:00"), true}},
			now:       before,
			want:      []string{"09:00", "09:45"},
		},
		{
			name: "slot starting now is gone",
			now:  b.Date.At(availability.MustTimeOfDay("09:00"), time.UTC),
			want: []string{"09:45"},
		},
		{
			name: "all elapsed",
			now:  b.Date.At(availability.MustTimeOfDay("10:00"), time.UTC),
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := availability.ComputeFreeSlots(w, tt.occupants, 45, tt.now)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, strs(got)); diff != "" {
				t.Errorf("free slots mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComputeFreeSlots_Properties(t *testing.T) {
	windows := [][2]string{{"09:00", "10:30"}, {"08:15", "17:40"}, {"00:00", "24:00"}, {"13:00", "13:45"}}
	durations := []int{15, 30, 45, 50, 60}
	now := builder.DefaultNow.Add(-24 * time.Hour)

	for _, bounds := range windows {
		w := builder.NewWindowBuilder().WithBounds(bounds[0], bounds[1]).BuildReconstructed()
		for _, d := range durations {
			got, err := availability.ComputeFreeSlots(w, nil, d, now)
			require.NoError(t, err)

			for i, s := range got {
				assert.False(t, s.Before(w.Start()))
				assert.False(t, s.AddMinutes(d).After(w.End()))
				assert.Zero(t, s.Sub(w.Start())%d, "slots are aligned on the window start")
				if i > 0 {
					assert.Equal(t, d, s.Sub(got[i-1]))
				}
			}

			again, err := availability.ComputeFreeSlots(w, nil, d, now)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		}
	}
}

func TestComputeFreeSlots_Errors(t *testing.T) {
	w := builder.NewWindowBuilder().BuildReconstructed()
	_, err := availability.ComputeFreeSlots(w, nil, 0, builder.DefaultNow)
	assert.ErrorIs(t, err, availability.ErrInvalidDuration)

	inverted := builder.NewWindowBuilder().WithBounds("12:00", "09:00").BuildReconstructed()
	_, err = availability.ComputeFreeSlots(inverted, nil, 45, builder.DefaultNow)
	assert.ErrorIs(t, err, availability.ErrInvalidWindow)
}

func TestGenerator_UsesConfiguredZone(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	w := builder.NewWindowBuilder().WithBounds("09:00", "10:30").BuildReconstructed()
	g := availability.NewGenerator(availability.Rules{SlotMinutes: 45, Location: paris})

	// 08:30 UTC is 09:30 in Paris in March before DST, so 09:00 local is over.
	now := w.Date().At(availability.MustTimeOfDay("08:30"), time.UTC)
	got, err := g.FreeSlots(w, nil, now)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:45"}, strs(got))
	assert.Equal(t, 45, g.Rules().SlotMinutes)
}

func TestIsFree(t *testing.T) {
	free := []availability.TimeOfDay{availability.MustTimeOfDay("09:00"), availability.MustTimeOfDay("09:45")}
	assert.True(t, availability.IsFree(free, availability.MustTimeOfDay("09:45")))
	assert.False(t, availability.IsFree(free, availability.MustTimeOfDay("09:30")))
	assert.False(t, availability.IsFree(nil, availability.MustTimeOfDay("09:00")))
}
