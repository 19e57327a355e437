package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMinutesUntil(t *testing.T) {
	now := time.Date(2026, 8, 23, 10, 0, 0, 0, time.Local)

	cases := []struct {
		name string
		at   time.Time
		want int
	}{
		{"ahead", now.Add(15 * time.Minute), 15},
		{"rounds down", now.Add(14*time.Minute + 59*time.Second), 14},
		{"exactly now", now, 0},
		{"overdue clamps to zero", now.Add(-30 * time.Minute), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := Appointment{At: tc.at}
			assert.Equal(t, tc.want, a.MinutesUntil(now))
		})
	}
}
