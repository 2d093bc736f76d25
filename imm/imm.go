// Package imm derives IMM dates: the third Wednesday of an eligible month.
package imm

import (
	"fmt"
	"strings"
	"time"

	"github.com/meenmo/datecalc/calendar"
)

// Period selects which months carry an IMM date.
type Period int

const (
	// Quarterly is the conventional March/June/September/December cycle.
	Quarterly Period = iota + 1
	// Monthly makes every month eligible.
	Monthly
)

func (p Period) String() string {
	switch p {
	case Quarterly:
		return "QUARTERLY"
	case Monthly:
		return "MONTHLY"
	default:
		return fmt.Sprintf("Period(%d)", int(p))
	}
}

// UnknownPeriodError reports an IMM period outside Monthly/Quarterly.
type UnknownPeriodError struct {
	Name string
}

func (e *UnknownPeriodError) Error() string {
	return fmt.Sprintf("unknown IMM period %q", e.Name)
}

// ParsePeriod maps MONTHLY or QUARTERLY (any case) to a Period.
func ParsePeriod(name string) (Period, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "QUARTERLY":
		return Quarterly, nil
	case "MONTHLY":
		return Monthly, nil
	}
	return 0, &UnknownPeriodError{Name: name}
}

func (p Period) eligible(m time.Month) (bool, error) {
	switch p {
	case Quarterly:
		return m%3 == 0, nil
	case Monthly:
		return true, nil
	default:
		return false, &UnknownPeriodError{Name: p.String()}
	}
}

// ThirdWednesday returns the third Wednesday of the given month.
func ThirdWednesday(year int, month time.Month) calendar.Date {
	first := calendar.MustDate(year, month, 1)
	offset := (int(time.Wednesday) - int(first.Weekday()) + 7) % 7
	return first.AddDays(offset + 14)
}

// IsIMMDate reports whether d is the third Wednesday of a month eligible
// under p.
func IsIMMDate(d calendar.Date, p Period) bool {
	ok, err := p.eligible(d.Month())
	if err != nil || !ok {
		return false
	}
	return d.Equal(ThirdWednesday(d.Year(), d.Month()))
}

// NextIMMDate returns the closest IMM date strictly after start (forward) or
// strictly before it (backward). start is never returned, even when it is
// itself an IMM date.
func NextIMMDate(forward bool, start calendar.Date, p Period) (calendar.Date, error) {
	step := 1
	if !forward {
		step = -1
	}
	month := calendar.MustDate(start.Year(), start.Month(), 1)
	for {
		ok, err := p.eligible(month.Month())
		if err != nil {
			return calendar.Date{}, err
		}
		if ok {
			candidate := ThirdWednesday(month.Year(), month.Month())
			if (forward && candidate.After(start)) || (!forward && candidate.Before(start)) {
				return candidate, nil
			}
		}
		month = month.AddMonths(step)
	}
}

// Next is NextIMMDate going forward.
func Next(start calendar.Date, p Period) (calendar.Date, error) {
	return NextIMMDate(true, start, p)
}

// Previous is NextIMMDate going backward.
func Previous(start calendar.Date, p Period) (calendar.Date, error) {
	return NextIMMDate(false, start, p)
}

// NextQuarterly returns the next conventional IMM date after start.
func NextQuarterly(start calendar.Date) calendar.Date {
	d, _ := NextIMMDate(true, start, Quarterly)
	return d
}

// PreviousQuarterly returns the previous conventional IMM date before start.
func PreviousQuarterly(start calendar.Date) calendar.Date {
	d, _ := NextIMMDate(false, start, Quarterly)
	return d
}

// Dates lists the IMM dates in (start, end] in ascending order. An inverted
// interval yields an empty slice.
func Dates(start, end calendar.Date, p Period) ([]calendar.Date, error) {
	out := []calendar.Date{}
	if start.After(end) {
		return out, nil
	}
	cursor := start
	for {
		next, err := NextIMMDate(true, cursor, p)
		if err != nil {
			return nil, err
		}
		if next.After(end) {
			return out, nil
		}
		out = append(out, next)
		cursor = next
	}
}
