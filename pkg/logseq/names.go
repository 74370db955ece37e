package logseq

import (
	"fmt"
	"strings"
	"time"

	"github.com/aretw0/almanac/pkg/calendar"
)

// NamespaceSeparator separates namespace levels in page names ("2024/September").
const NamespaceSeparator = "/"

// fileNamespaceSeparator replaces NamespaceSeparator in file names (Logseq's
// :file/name-format :triple-lowbar).
const fileNamespaceSeparator = "___"

// Journal day page names use the ISO date; journal files use underscores.
const (
	dayNameLayout = "2006-01-02"
	dayFileLayout = "2006_01_02"
)

// Name returns the page name of u: "2024-09-01", "2024/W39",
// "2024/September" or "2024".
func Name(u calendar.Unit) string {
	switch v := u.(type) {
	case calendar.Day:
		return v.Time().Format(dayNameLayout)
	case calendar.Week:
		return fmt.Sprintf("%04d%sW%02d", v.Year, NamespaceSeparator, v.Number)
	case calendar.Month:
		return fmt.Sprintf("%04d%s%s", v.Year, NamespaceSeparator, v.Name())
	case calendar.Year:
		return v.String()
	default:
		panic(fmt.Sprintf("logseq: unsupported calendar unit %T", u))
	}
}

// FileName returns the base file name (without extension) under which u is
// stored: journals use "2024_09_01", pages escape namespaces ("2024___W39").
func FileName(u calendar.Unit) string {
	if d, ok := u.(calendar.Day); ok {
		return d.Time().Format(dayFileLayout)
	}
	return strings.ReplaceAll(Name(u), NamespaceSeparator, fileNamespaceSeparator)
}

// ParseDayFileName is the inverse of FileName for days. The extension, if
// any, must already be stripped.
func ParseDayFileName(name string) (calendar.Day, error) {
	t, err := time.Parse(dayFileLayout, name)
	if err != nil {
		return calendar.Day{}, fmt.Errorf("not a journal file name %q: %w", name, err)
	}
	return calendar.DayOf(t), nil
}
