package daycount

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/meenmo/datecalc/calendar"
)

// Basis is a day-count convention.
type Basis int

const (
	Act365 Basis = iota + 1
	Act360
	// Conv30360 is 30/360 US (bond basis).
	Conv30360
	// Conv360EISDA is 30E/360 ISDA without maturity context.
	Conv360EISDA
	// Conv360EISMA is 30E/360 ISMA (Eurobond basis).
	Conv360EISMA
)

// YearFractionPrecision is the number of fractional digits kept by YearDiff.
const YearFractionPrecision = 16

var basisNames = map[Basis]string{
	Act365:       "ACT_365",
	Act360:       "ACT_360",
	Conv30360:    "CONV_30_360",
	Conv360EISDA: "CONV_360E_ISDA",
	Conv360EISMA: "CONV_360E_ISMA",
}

func (b Basis) String() string {
	if name, ok := basisNames[b]; ok {
		return name
	}
	return "Basis(" + strconv.Itoa(int(b)) + ")"
}

// Valid reports whether b is one of the defined conventions.
func (b Basis) Valid() bool {
	_, ok := basisNames[b]
	return ok
}

// DaysInYear is the denominator of the year fraction.
func (b Basis) DaysInYear() (int, error) {
	switch b {
	case Act365:
		return 365, nil
	case Act360, Conv30360, Conv360EISDA, Conv360EISMA:
		return 360, nil
	default:
		return 0, &UnknownConventionError{Name: b.String()}
	}
}

// DayDiff counts the days from start to end under b. The result is negative
// when end is before start.
func DayDiff(start, end calendar.Date, b Basis) (int, error) {
	switch b {
	case Act365, Act360:
		return start.DaysUntil(end), nil
	case Conv30360:
		return ordered(start, end, diff30360), nil
	case Conv360EISDA, Conv360EISMA:
		return ordered(start, end, diff30E360), nil
	default:
		return 0, &UnknownConventionError{Name: b.String()}
	}
}

// YearDiff is DayDiff divided by the basis year length. It is not rounded.
func YearDiff(start, end calendar.Date, b Basis) (decimal.Decimal, error) {
	days, err := DayDiff(start, end, b)
	if err != nil {
		return decimal.Zero, err
	}
	year, err := b.DaysInYear()
	if err != nil {
		return decimal.Zero, err
	}
	return fraction(days, year), nil
}

// YearFraction is YearDiff as a float64, for pricing code.
func YearFraction(start, end calendar.Date, b Basis) (float64, error) {
	yf, err := YearDiff(start, end, b)
	if err != nil {
		return 0, err
	}
	return yf.InexactFloat64(), nil
}

// DayDiff360EISDAWithMaturity is 30E/360 ISDA with the termination-date
// exception: the last day of February becomes 30 on either end, except on
// the end date when it is the maturity date.
func DayDiff360EISDAWithMaturity(start, end, maturity calendar.Date) int {
	return ordered(start, end, func(s, e calendar.Date) int {
		d1, d2 := s.Day(), e.Day()
		if d1 == 31 || isEndOfFebruary(s) {
			d1 = 30
		}
		if d2 == 31 || (isEndOfFebruary(e) && !e.Equal(maturity)) {
			d2 = 30
		}
		return thirty(s, e, d1, d2)
	})
}

// YearDiff360EISDAWithMaturity divides DayDiff360EISDAWithMaturity by 360.
func YearDiff360EISDAWithMaturity(start, end, maturity calendar.Date) decimal.Decimal {
	return fraction(DayDiff360EISDAWithMaturity(start, end, maturity), 360)
}

// diff30360 expects s <= e. The second-date rule depends on the first, so
// callers go through ordered to keep the count antisymmetric.
func diff30360(s, e calendar.Date) int {
	d1, d2 := s.Day(), e.Day()
	if d1 == 31 {
		d1 = 30
	}
	if d2 == 31 && d1 >= 30 {
		d2 = 30
	}
	return thirty(s, e, d1, d2)
}

func diff30E360(s, e calendar.Date) int {
	return thirty(s, e, min(s.Day(), 30), min(e.Day(), 30))
}

// thirty applies the 30/360 formula to already clamped day numbers. d1 and
// d2 need not be real days of their months.
func thirty(s, e calendar.Date, d1, d2 int) int {
	return 360*(e.Year()-s.Year()) + 30*int(e.Month()-s.Month()) + (d2 - d1)
}

func ordered(start, end calendar.Date, count func(s, e calendar.Date) int) int {
	if end.Before(start) {
		return -count(end, start)
	}
	return count(start, end)
}

func isEndOfFebruary(d calendar.Date) bool {
	return d.Month() == time.February && d.IsLastDayOfMonth()
}

func fraction(days, year int) decimal.Decimal {
	return decimal.NewFromInt(int64(days)).DivRound(decimal.NewFromInt(int64(year)), YearFractionPrecision)
}
