package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustPeriod(t *testing.T, start, end string) RentalPeriod {
	t.Helper()
	p, err := NewRentalPeriod(start, end)
	if err != nil {
		t.Fatalf("failed to build period %s -> %s: %v", start, end, err)
	}
	return p
}

func TestNewRentalPeriod(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		p, err := NewRentalPeriod("01-01-2025 09:00", "03-01-2025 09:00")
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC), p.Start)
		assert.Equal(t, time.Date(2025, 1, 3, 9, 0, 0, 0, time.UTC), p.End)
	})

	t.Run("Malformed Start", func(t *testing.T) {
		_, err := NewRentalPeriod("2025-01-01 09:00", "03-01-2025 09:00")
		assert.Error(t, err)
		var perr *InvalidPeriodError
		assert.ErrorAs(t, err, &perr)
	})

	t.Run("Malformed End", func(t *testing.T) {
		_, err := NewRentalPeriod("01-01-2025 09:00", "not-a-date")
		var perr *InvalidPeriodError
		assert.ErrorAs(t, err, &perr)
	})

	t.Run("End Equals Start", func(t *testing.T) {
		_, err := NewRentalPeriod("01-01-2025 09:00", "01-01-2025 09:00")
		var perr *InvalidPeriodError
		assert.ErrorAs(t, err, &perr)
	})

	t.Run("End Before Start", func(t *testing.T) {
		_, err := NewRentalPeriod("03-01-2025 09:00", "01-01-2025 09:00")
		var perr *InvalidPeriodError
		assert.ErrorAs(t, err, &perr)
	})
}

func TestRentalPeriod_Duration(t *testing.T) {
	t.Run("Same Day Counts As One", func(t *testing.T) {
		p := mustPeriod(t, "01-01-2025 09:00", "01-01-2025 18:00")
		assert.Equal(t, 1, p.Duration())
	})

	t.Run("Exactly 24 Hours", func(t *testing.T) {
		p := mustPeriod(t, "01-01-2025 09:00", "02-01-2025 09:00")
		assert.Equal(t, 1, p.Duration())
	})

	t.Run("25 Hours Rounds Up To Two", func(t *testing.T) {
		p := mustPeriod(t, "01-01-2025 09:00", "02-01-2025 10:00")
		assert.Equal(t, 2, p.Duration())
	})

	t.Run("Three Full Days", func(t *testing.T) {
		p := mustPeriod(t, "01-01-2025 09:00", "04-01-2025 09:00")
		assert.Equal(t, 3, p.Duration())
	})
}

func TestRentalPeriod_Overlaps(t *testing.T) {
	base := mustPeriod(t, "10-01-2025 09:00", "15-01-2025 09:00")

	t.Run("Contained", func(t *testing.T) {
		other := mustPeriod(t, "11-01-2025 09:00", "12-01-2025 09:00")
		assert.True(t, base.Overlaps(other))
		assert.True(t, other.Overlaps(base))
	})

	t.Run("Partial", func(t *testing.T) {
		other := mustPeriod(t, "14-01-2025 09:00", "16-01-2025 09:00")
		assert.True(t, base.Overlaps(other))
		assert.True(t, other.Overlaps(base))
	})

	t.Run("Touching Endpoints Do Not Overlap", func(t *testing.T) {
		before := mustPeriod(t, "08-01-2025 09:00", "10-01-2025 09:00")
		after := mustPeriod(t, "15-01-2025 09:00", "17-01-2025 09:00")
		assert.False(t, base.Overlaps(before))
		assert.False(t, before.Overlaps(base))
		assert.False(t, base.Overlaps(after))
		assert.False(t, after.Overlaps(base))
	})

	t.Run("Disjoint", func(t *testing.T) {
		other := mustPeriod(t, "20-01-2025 09:00", "22-01-2025 09:00")
		assert.False(t, base.Overlaps(other))
	})
}

func TestRentalPeriod_IsOverdue(t *testing.T) {
	p := mustPeriod(t, "10-01-2025 09:00", "15-01-2025 09:00")
	assert.False(t, p.IsOverdue(time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)))
	assert.True(t, p.IsOverdue(time.Date(2025, 1, 15, 9, 1, 0, 0, time.UTC)))
}

func TestRentalPeriod_JSONRoundTrip(t *testing.T) {
	p := mustPeriod(t, "10-01-2025 09:00", "15-01-2025 18:30")
	data, err := p.MarshalJSON()
	assert.NoError(t, err)
	assert.JSONEq(t, `{"start":"10-01-2025 09:00","end":"15-01-2025 18:30"}`, string(data))

	var parsed RentalPeriod
	assert.NoError(t, parsed.UnmarshalJSON(data))
	assert.True(t, parsed.Start.Equal(p.Start))
	assert.True(t, parsed.End.Equal(p.End))
}
