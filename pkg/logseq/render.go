package logseq

import (
	"strconv"
	"strings"

	"github.com/aretw0/almanac/pkg/calendar"
)

// Link renders a page reference: [[name]].
func Link(name string) string {
	return "[[" + name + "]]"
}

// Embed renders an embed macro around a rendered link: {{embed [[name]]}}.
func Embed(link string) string {
	return "{{embed " + link + "}}"
}

// LinkTo is Link(Name(u)).
func LinkTo(u calendar.Unit) string {
	return Link(Name(u))
}

// EmbedOf is Embed(LinkTo(u)).
func EmbedOf(u calendar.Unit) string {
	return Embed(LinkTo(u))
}

type filter struct {
	name    string
	include bool
}

// Filters is the value of the "filters" page property, which hides or shows
// linked references by page name. Order of insertion is kept.
type Filters struct {
	items []filter
}

// Push adds or replaces the filter for name. Logseq stores page names lower-cased.
func (f Filters) Push(name string, include bool) Filters {
	name = strings.ToLower(name)
	items := make([]filter, 0, len(f.items)+1)
	replaced := false
	for _, it := range f.items {
		if it.name == name {
			it.include = include
			replaced = true
		}
		items = append(items, it)
	}
	if !replaced {
		items = append(items, filter{name: name, include: include})
	}
	return Filters{items: items}
}

// Len returns the number of filters.
func (f Filters) Len() int {
	return len(f.items)
}

// String renders {"week" false, "month" false}.
func (f Filters) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, it := range f.items {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Quote(it.name))
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatBool(it.include))
	}
	sb.WriteByte('}')
	return sb.String()
}
