// Package core holds the page model shared by the generator and the
// storage adapters, and the Service that merges generated pages into the
// pages already stored.
package core

import (
	"fmt"

	"github.com/aretw0/almanac/pkg/outline"
)

// Kind tells the store which area of the graph a page lives in.
type Kind int

const (
	// KindJournal pages are daily journals.
	KindJournal Kind = iota
	// KindPage pages are regular named pages (weeks, months, years).
	KindPage
)

func (k Kind) String() string {
	switch k {
	case KindJournal:
		return "journal"
	case KindPage:
		return "page"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Location identifies a page independently of the storage layout.
// Name is the file base name without extension.
type Location struct {
	Kind Kind
	Name string
}

func (l Location) String() string {
	return l.Kind.String() + ":" + l.Name
}

// Page is a document bound to a location.
type Page struct {
	Location
	Document outline.Document
}

// NewPage returns an empty page at the given location.
func NewPage(kind Kind, name string) *Page {
	return &Page{Location: Location{Kind: kind, Name: name}}
}

// SaveResult describes the outcome of writing a page.
type SaveResult struct {
	Path string
	// Changed is false when the stored content was already identical.
	Changed bool
}

// EventType represents the type of change observed in the graph.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a stored page.
type Event struct {
	Type      EventType
	Location  Location
	Path      string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Location)
}
