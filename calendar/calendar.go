package calendar

import (
	"fmt"
	"sync"

	cal "github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
	exchange "github.com/scmhub/calendar"
)

// CalendarID identifies a holiday calendar.
type CalendarID string

const (
	// WEEKEND treats every Monday-Friday as a business day.
	WEEKEND CalendarID = "WEEKEND"
	// USD is the US federal (Fed) holiday calendar.
	USD CalendarID = "USD"
	// NYSE is the New York Stock Exchange trading calendar.
	NYSE   CalendarID = "NYSE"
	TARGET CalendarID = "TARGET"
	JPN    CalendarID = "JPN"
	KRW    CalendarID = "KRW"
)

// BusinessDayChecker is the predicate the date engines consume.
type BusinessDayChecker interface {
	IsBusinessDay(d Date) bool
}

// NYSE holidays are generated for this span of years. Dates outside it are
// checked for weekends only.
const (
	NYSEFirstYear = 1970
	NYSELastYear  = 2100
)

var (
	usFed = cal.NewBusinessCalendar()
	nyse  = exchange.XNYS(NYSEFirstYear, NYSELastYear)

	mu         sync.RWMutex
	holidaySet = map[CalendarID]map[Date]struct{}{
		WEEKEND: {},
		TARGET:  {},
		JPN:     {},
		KRW:     {},
	}
)

func init() {
	usFed.AddHoliday(
		us.NewYear,
		us.MlkDay,
		us.PresidentsDay,
		us.MemorialDay,
		us.Juneteenth,
		us.IndependenceDay,
		us.LaborDay,
		us.ColumbusDay,
		us.VeteransDay,
		us.ThanksgivingDay,
		us.ChristmasDay,
	)
}

// Known reports whether id names a calendar this package can evaluate.
func Known(id CalendarID) bool {
	switch id {
	case USD, NYSE:
		return true
	}
	mu.RLock()
	defer mu.RUnlock()
	_, ok := holidaySet[id]
	return ok
}

// ParseCalendarID validates a calendar name.
func ParseCalendarID(name string) (CalendarID, error) {
	id := CalendarID(name)
	if !Known(id) {
		return "", fmt.Errorf("unknown calendar %q", name)
	}
	return id, nil
}

// RegisterHolidays adds holidays to a set-backed calendar, creating it if
// needed. USD and NYSE are rule-based and cannot be extended.
func RegisterHolidays(id CalendarID, dates ...Date) error {
	if id == USD || id == NYSE {
		return fmt.Errorf("calendar %s is rule-based; holidays cannot be registered", id)
	}
	mu.Lock()
	defer mu.Unlock()
	set, ok := holidaySet[id]
	if !ok {
		set = make(map[Date]struct{}, len(dates))
		holidaySet[id] = set
	}
	for _, d := range dates {
		set[d] = struct{}{}
	}
	return nil
}

func isHoliday(id CalendarID, d Date) bool {
	switch id {
	case USD:
		_, observed, _ := usFed.IsHoliday(d.Time())
		return observed
	case NYSE:
		// nyse is read-only after init; never call SetYears on it.
		if d.Year() < NYSEFirstYear || d.Year() > NYSELastYear {
			return false
		}
		return nyse.IsHoliday(d.In(nyse.Loc))
	}
	mu.RLock()
	defer mu.RUnlock()
	_, ok := holidaySet[id][d]
	return ok
}

// IsBusinessDay checks weekends and holiday sets.
func IsBusinessDay(id CalendarID, d Date) bool {
	if d.IsWeekend() {
		return false
	}
	return !isHoliday(id, d)
}

// HolidayCalendar binds a CalendarID to the BusinessDayChecker interface.
type HolidayCalendar struct {
	ID CalendarID
}

func (h HolidayCalendar) IsBusinessDay(d Date) bool {
	return IsBusinessDay(h.ID, d)
}
