package utils

import (
	"time"

	"github.com/meenmo/datecalc/calendar"
	"github.com/meenmo/datecalc/daycount"
)

// YearFraction computes year fraction between two times using a named day count
// convention (e.g. "ACT/360", "ACT/365F", "30/360", "30E/360").
func YearFraction(start, end time.Time, convention string) (float64, error) {
	basis, err := daycount.Resolve(convention)
	if err != nil {
		return 0, err
	}
	return daycount.YearFraction(calendar.FromTime(start), calendar.FromTime(end), basis)
}
