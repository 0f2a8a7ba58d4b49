package domain

import (
	"encoding/json"
	"math"
	"time"
)

// PeriodLayout is the canonical timestamp format for rental period boundaries.
// The surrounding web UI and persisted data both use it, so it must not change.
const PeriodLayout = "02-01-2006 15:04"

// RentalPeriod is a validated start/end time span. Construct it through
// NewRentalPeriod so the end-after-start invariant always holds.
type RentalPeriod struct {
	Start time.Time `json:"-"`
	End   time.Time `json:"-"`
}

// NewRentalPeriod parses the two boundary strings in PeriodLayout and validates
// that the end is strictly after the start. Zero-length periods are rejected.
func NewRentalPeriod(startStr, endStr string) (RentalPeriod, error) {
	start, err := time.Parse(PeriodLayout, startStr)
	if err != nil {
		return RentalPeriod{}, &InvalidPeriodError{Value: startStr, Reason: "expected " + PeriodLayout}
	}
	end, err := time.Parse(PeriodLayout, endStr)
	if err != nil {
		return RentalPeriod{}, &InvalidPeriodError{Value: endStr, Reason: "expected " + PeriodLayout}
	}
	return NewRentalPeriodFromTimes(start, end)
}

// NewRentalPeriodFromTimes builds a period from already-parsed timestamps.
func NewRentalPeriodFromTimes(start, end time.Time) (RentalPeriod, error) {
	if !end.After(start) {
		return RentalPeriod{}, &InvalidPeriodError{
			Value:  start.Format(PeriodLayout) + " -> " + end.Format(PeriodLayout),
			Reason: "end must be after start",
		}
	}
	return RentalPeriod{Start: start, End: end}, nil
}

// Duration returns the number of billable days. Any partial 24h block counts
// as a full day, with a minimum of one day. The count is based on elapsed
// wall-clock hours, not calendar-day boundaries.
func (p RentalPeriod) Duration() int {
	days := int(math.Ceil(p.End.Sub(p.Start).Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days
}

// Overlaps reports whether two periods share any time. The test is strict:
// a period ending exactly when another starts does not overlap it.
func (p RentalPeriod) Overlaps(other RentalPeriod) bool {
	latestStart := p.Start
	if other.Start.After(latestStart) {
		latestStart = other.Start
	}
	earliestEnd := p.End
	if other.End.Before(earliestEnd) {
		earliestEnd = other.End
	}
	return latestStart.Before(earliestEnd)
}

// IsOverdue reports whether now is past the period's end.
func (p RentalPeriod) IsOverdue(now time.Time) bool {
	return now.After(p.End)
}

func (p RentalPeriod) String() string {
	return p.Start.Format(PeriodLayout) + " -> " + p.End.Format(PeriodLayout)
}

type periodJSON struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (p RentalPeriod) MarshalJSON() ([]byte, error) {
	return json.Marshal(periodJSON{
		Start: p.Start.Format(PeriodLayout),
		End:   p.End.Format(PeriodLayout),
	})
}

func (p *RentalPeriod) UnmarshalJSON(data []byte) error {
	var raw periodJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewRentalPeriod(raw.Start, raw.End)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
