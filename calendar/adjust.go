package calendar

import "fmt"

// Convention is a business-day adjustment rule.
type Convention string

const (
	Unadjusted        Convention = "UNADJUSTED"
	Following         Convention = "FOLLOWING"
	ModifiedFollowing Convention = "MODIFIED_FOLLOWING"
	Preceding         Convention = "PRECEDING"
	ModifiedPreceding Convention = "MODIFIED_PRECEDING"
)

// ParseConvention validates an adjustment convention name.
func ParseConvention(name string) (Convention, error) {
	switch c := Convention(name); c {
	case Unadjusted, Following, ModifiedFollowing, Preceding, ModifiedPreceding:
		return c, nil
	}
	return "", fmt.Errorf("unknown business day convention %q", name)
}

// AdjustWith rolls d onto a business day of cal using conv.
func AdjustWith(cal BusinessDayChecker, d Date, conv Convention) (Date, error) {
	switch conv {
	case Unadjusted:
		return d, nil
	case Following:
		return roll(cal, d, 1), nil
	case Preceding:
		return roll(cal, d, -1), nil
	case ModifiedFollowing:
		return modified(cal, d, 1), nil
	case ModifiedPreceding:
		return modified(cal, d, -1), nil
	default:
		return d, fmt.Errorf("unknown business day convention %q", conv)
	}
}

// Adjust applies Modified Following.
func Adjust(id CalendarID, d Date) Date {
	return modified(HolidayCalendar{ID: id}, d, 1)
}

// AdjustFollowing applies a simple Following convention (no month preservation).
func AdjustFollowing(id CalendarID, d Date) Date {
	return roll(HolidayCalendar{ID: id}, d, 1)
}

// AdjustPreceding applies a simple Preceding convention.
func AdjustPreceding(id CalendarID, d Date) Date {
	return roll(HolidayCalendar{ID: id}, d, -1)
}

func roll(cal BusinessDayChecker, d Date, step int) Date {
	for !cal.IsBusinessDay(d) {
		d = d.AddDays(step)
	}
	return d
}

// modified rolls in the step direction and bounces back the other way when
// that would leave the month.
func modified(cal BusinessDayChecker, d Date, step int) Date {
	adjusted := roll(cal, d, step)
	if adjusted.Month() != d.Month() {
		return roll(cal, d, -step)
	}
	return adjusted
}

// AddBusinessDays advances n business days (n can be negative).
func AddBusinessDays(id CalendarID, d Date, n int) Date {
	return addBusinessDays(HolidayCalendar{ID: id}, d, n)
}

func addBusinessDays(cal BusinessDayChecker, d Date, n int) Date {
	step := 1
	if n < 0 {
		step = -1
	}
	for n != 0 {
		d = d.AddDays(step)
		if cal.IsBusinessDay(d) {
			n -= step
		}
	}
	return d
}

// BusinessDaysBetween counts business days in (start, end]. The result is
// negative when end is before start.
func BusinessDaysBetween(id CalendarID, start, end Date) int {
	if end.Before(start) {
		return -BusinessDaysBetween(id, end, start)
	}
	n := 0
	for d := start.AddDays(1); !d.After(end); d = d.AddDays(1) {
		if IsBusinessDay(id, d) {
			n++
		}
	}
	return n
}

// AddYearsWithRoll adds years and applies backward EOM adjustment then Modified Following.
func AddYearsWithRoll(id CalendarID, d Date, years int) Date {
	target := d.AddYears(years)
	if d.IsLastDayOfMonth() {
		target = MustDate(target.Year(), target.Month(), target.DaysInMonth())
	}
	return Adjust(id, target)
}

// LastBusinessDayOfMonth returns the last business day of the month containing d.
func LastBusinessDayOfMonth(id CalendarID, d Date) Date {
	firstOfNext := MustDate(d.Year(), d.Month(), 1).AddMonths(1)
	return AddBusinessDays(id, firstOfNext, -1)
}

// IsEndOfMonth checks if d is the last business day of its month.
func IsEndOfMonth(id CalendarID, d Date) bool {
	return d.Equal(LastBusinessDayOfMonth(id, d))
}
