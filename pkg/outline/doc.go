// Package outline reads, writes and merges outline pages.
//
// A page is a header of "key:: value" property lines, one blank line, and a
// body of top-level bullets. A bullet owns every following line until the
// next line that starts with the bullet marker and a space, so nested
// children, logbooks and folded blocks travel with their parent.
//
// Combine reconciles a page read from disk with freshly generated content:
// properties from the new content overwrite existing values in place, while
// bullets are only ever appended, and only when no identical bullet exists.
// Running the same generation twice therefore leaves the page unchanged.
package outline
