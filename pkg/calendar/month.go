package calendar

import (
	"fmt"
	"time"
)

// Month is a calendar month of a given year.
type Month struct {
	Year  int
	Month time.Month
}

func (m Month) Kind() Kind { return KindMonth }

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Name returns the English month name, e.g. "September".
func (m Month) Name() string {
	return m.Month.String()
}

// First returns the first day of m.
func (m Month) First() Day {
	return NewDay(m.Year, m.Month, 1)
}

// Last returns the last day of m, accounting for month length and leap years.
func (m Month) Last() Day {
	// Day 0 of the following month is the last day of this one.
	return NewDay(m.Year, m.Month+1, 0)
}

func (m Month) Next() Month {
	return m.First().AddMonths(1).Month()
}

func (m Month) Prev() Month {
	return m.First().AddMonths(-1).Month()
}

// Days returns the number of days in m.
func (m Month) Days() int {
	_, _, d := m.Last().Date()
	return d
}

func (m Month) Compare(o Month) int {
	if m.Year != o.Year {
		return sign(m.Year - o.Year)
	}
	return sign(int(m.Month) - int(o.Month))
}

func (m Month) Before(o Month) bool { return m.Compare(o) < 0 }
func (m Month) After(o Month) bool  { return m.Compare(o) > 0 }
