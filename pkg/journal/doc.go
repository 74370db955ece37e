// Package journal prepares the calendar pages of a Logseq graph.
//
// A Preparer walks a range of days and, for each day, stores the journal
// page of the day plus the week, month and year pages the day opens. Every
// page is merged into the one already on disk, so running the Preparer twice
// over the same range changes nothing the second time.
package journal
