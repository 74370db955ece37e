package outline

import "slices"

// Entry is one header property.
type Entry struct {
	Key   string
	Value string
}

// Document is the parsed form of a page.
// Metadata keys are unique; Outline holds whole bullets including their
// continuation lines.
type Document struct {
	Metadata []Entry
	Outline  []string
}

// Get returns the value stored under key.
func (d *Document) Get(key string) (string, bool) {
	if i := d.index(key); i >= 0 {
		return d.Metadata[i].Value, true
	}
	return "", false
}

// Set overwrites the value of key in place, or appends a new entry.
func (d *Document) Set(key, value string) {
	if i := d.index(key); i >= 0 {
		d.Metadata[i].Value = value
		return
	}
	d.Metadata = append(d.Metadata, Entry{Key: key, Value: value})
}

// Append adds a bullet whose text is prefixed with the default bullet marker.
func (d *Document) Append(text string) {
	d.AppendRaw(DefaultSyntax.bulletPrefix() + text)
}

// AppendRaw adds a bullet exactly as given, marker included.
func (d *Document) AppendRaw(entry string) {
	d.Outline = append(d.Outline, entry)
}

// Contains reports whether an identical bullet is already present.
func (d *Document) Contains(entry string) bool {
	return slices.Contains(d.Outline, entry)
}

// Equal reports whether both documents hold the same entries in the same order.
func (d Document) Equal(o Document) bool {
	return slices.Equal(d.Metadata, o.Metadata) && slices.Equal(d.Outline, o.Outline)
}

// Clone returns a deep copy of d.
func (d Document) Clone() Document {
	return Document{
		Metadata: slices.Clone(d.Metadata),
		Outline:  slices.Clone(d.Outline),
	}
}

// String renders d with DefaultSyntax.
func (d Document) String() string {
	return DefaultSyntax.Format(d)
}

// Bytes renders d with DefaultSyntax.
func (d Document) Bytes() []byte {
	return []byte(d.String())
}

func (d *Document) index(key string) int {
	return slices.IndexFunc(d.Metadata, func(e Entry) bool { return e.Key == key })
}

// Combine folds incoming onto base and returns the result. Neither input is
// modified.
//
// Metadata is right-biased: a key already in base takes incoming's value but
// keeps its position; unknown keys are appended in incoming's order.
//
// The outline is left-biased and append-only: base's bullets are kept in
// order, and an incoming bullet is appended only if no bullet with the exact
// same text (continuation lines included) is already in the result.
func Combine(base, incoming Document) Document {
	out := base.Clone()
	for _, e := range incoming.Metadata {
		out.Set(e.Key, e.Value)
	}
	for _, entry := range incoming.Outline {
		if !out.Contains(entry) {
			out.AppendRaw(entry)
		}
	}
	return out
}
