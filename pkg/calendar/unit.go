package calendar

import "fmt"

// Kind identifies one of the four calendar units.
type Kind int

const (
	KindDay Kind = iota
	KindWeek
	KindMonth
	KindYear
)

func (k Kind) String() string {
	switch k {
	case KindDay:
		return "day"
	case KindWeek:
		return "week"
	case KindMonth:
		return "month"
	case KindYear:
		return "year"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Unit is implemented by Day, Week, Month and Year.
// The set is closed; callers switch on the concrete type or on Kind.
type Unit interface {
	fmt.Stringer
	Kind() Kind
}

var (
	_ Unit = Day{}
	_ Unit = Week{}
	_ Unit = Month{}
	_ Unit = Year(0)
)
