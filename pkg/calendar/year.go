package calendar

import (
	"fmt"
	"time"
)

// Year is a calendar year.
type Year int

func (y Year) Kind() Kind { return KindYear }

func (y Year) String() string {
	return fmt.Sprintf("%04d", int(y))
}

// First returns January of y.
func (y Year) First() Month { return Month{Year: int(y), Month: time.January} }

// Last returns December of y.
func (y Year) Last() Month { return Month{Year: int(y), Month: time.December} }

func (y Year) Next() Year { return y + 1 }
func (y Year) Prev() Year { return y - 1 }

// Months returns January through December of y.
func (y Year) Months() []Month {
	months := make([]Month, 0, 12)
	for m := y.First(); !m.After(y.Last()); m = m.Next() {
		months = append(months, m)
	}
	return months
}
