// Package almanac is the composition root of the almanac calendar page
// generator for Logseq graphs.
//
// It wires the outline document model (pkg/outline), the calendar units
// (pkg/calendar) and the filesystem page store (pkg/adapters/fs) into the
// journal Preparer (pkg/journal).
//
// For every day of a range, almanac writes the day's journal page and the
// week, month and year pages the day belongs to. Each page carries
// navigation properties (next, prev, week, month) and embeds the days it
// covers. Pages that already exist are merged, never replaced: properties
// are refreshed and missing bullets appended, user bullets stay in place.
//
// Usage:
//
//	from, _ := almanac.ParseDay("2024-09-01")
//	to, _ := almanac.ParseDay("2024-10-01")
//
//	err := almanac.Prepare(ctx, "./graph", from, to,
//		almanac.WithOutput(os.Stdout),
//		almanac.WithLogger(logger),
//	)
package almanac
