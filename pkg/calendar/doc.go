// Package calendar provides the calendar units used to lay out journal pages.
//
// Four units exist: Day, Week, Month and Year. They are plain comparable
// values with navigation (Next/Prev) and decomposition (First/Last) into a
// finer unit. Weeks follow ISO 8601, so the week-year of a Week can differ
// from the calendar year of the days it contains.
//
// All date arithmetic of the module lives here; callers never touch
// time.Time directly.
package calendar
