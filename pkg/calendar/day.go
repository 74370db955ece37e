package calendar

import (
	"fmt"
	"time"
)

// DateLayout is the textual form accepted by ParseDay and produced by Day.String.
const DateLayout = "2006-01-02"

// Day is a civil date without time of day or location.
// The zero value is not a valid date; build Days with NewDay, DayOf or ParseDay.
type Day struct {
	year  int
	month time.Month
	day   int
}

// NewDay returns the Day for the given date, normalizing out-of-range values
// the same way time.Date does (Feb 30 becomes early March).
func NewDay(year int, month time.Month, day int) Day {
	return DayOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DayOf returns the Day containing t, in t's location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{year: y, month: m, day: d}
}

// Today returns the current local date.
func Today() Day {
	return DayOf(time.Now())
}

// ParseDay parses a YYYY-MM-DD date.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DayOf(t), nil
}

// Date returns the year, month and day of d.
func (d Day) Date() (year int, month time.Month, day int) {
	return d.year, d.month, d.day
}

// Time returns midnight UTC of d.
func (d Day) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func (d Day) Kind() Kind { return KindDay }

func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

func (d Day) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// AddDays returns d shifted by n days (n may be negative).
func (d Day) AddDays(n int) Day {
	return NewDay(d.year, d.month, d.day+n)
}

// AddMonths returns d shifted by n calendar months. A day that does not
// exist in the target month is clamped to its last day (Jan 31 + 1 is
// Feb 29 in a leap year).
func (d Day) AddMonths(n int) Day {
	first := NewDay(d.year, d.month+time.Month(n), 1)
	if last := first.Month().Last(); d.day > last.day {
		return last
	}
	return NewDay(first.year, first.month, d.day)
}

func (d Day) Next() Day { return d.AddDays(1) }
func (d Day) Prev() Day { return d.AddDays(-1) }

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after o.
func (d Day) Compare(o Day) int {
	switch {
	case d.year != o.year:
		return sign(d.year - o.year)
	case d.month != o.month:
		return sign(int(d.month) - int(o.month))
	default:
		return sign(d.day - o.day)
	}
}

func (d Day) Before(o Day) bool { return d.Compare(o) < 0 }
func (d Day) After(o Day) bool  { return d.Compare(o) > 0 }

// Week returns the ISO week containing d.
func (d Day) Week() Week {
	y, w := d.Time().ISOWeek()
	return Week{Year: y, Number: w}
}

// Month returns the calendar month containing d.
func (d Day) Month() Month {
	return Month{Year: d.year, Month: d.month}
}

// Year returns the calendar year containing d.
func (d Day) Year() Year {
	return Year(d.year)
}

// Days returns every day from first to last, both included.
// It returns nil when last is before first.
func Days(first, last Day) []Day {
	var days []Day
	for d := first; !d.After(last); d = d.Next() {
		days = append(days, d)
	}
	return days
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
