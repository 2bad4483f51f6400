package devfolio

import "time"

// FrontMatter is the structured metadata block at the top of every content
// file. Fields the pipeline does not use (summary, category, cover) are
// carried through for templates untouched.
type FrontMatter struct {
	Title    string   `yaml:"title"`
	Date     RawDate  `yaml:"date"`
	Tags     []string `yaml:"tags"`
	Draft    bool     `yaml:"draft"`
	Summary  string   `yaml:"summary"`
	Category string   `yaml:"category"`
	Cover    string   `yaml:"cover"`
}

// ContentEntry is one article or project loaded from the content store.
// Published is the normalized timestamp stamped by Normalize; it is the only
// date value the rest of the pipeline compares.
type ContentEntry struct {
	FrontMatter

	Slug       string // stable per file, derived from the filename
	Collection string
	Link       string
	Content    string // rendered HTML body
	Published  time.Time
}

type dateKind int

const (
	dateAbsent dateKind = iota
	dateNative
	dateString
)

// RawDate holds the front-matter date exactly as the file supplied it: a
// native YAML timestamp, a quoted string, or nothing at all. The variants are
// collapsed into one comparable time.Time by resolve, and nowhere else.
type RawDate struct {
	kind dateKind
	t    time.Time
	s    string
}

// NativeDate builds a RawDate from an already-parsed time value.
func NativeDate(t time.Time) RawDate {
	return RawDate{kind: dateNative, t: t}
}

// StringDate builds a RawDate from an unparsed date string.
func StringDate(s string) RawDate {
	if s == "" {
		return RawDate{}
	}
	return RawDate{kind: dateString, s: s}
}

// UnmarshalYAML decodes a front-matter date. An unquoted ISO date arrives as
// a YAML timestamp and is kept as-is; anything else is kept as a string for
// the normalizer to parse later. A null or empty value means absent.
func (d *RawDate) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var t time.Time
	if err := unmarshal(&t); err == nil {
		*d = RawDate{kind: dateNative, t: t}
		return nil
	}
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	*d = StringDate(s)
	return nil
}

// IsAbsent reports whether the entry supplied no date at all.
func (d RawDate) IsAbsent() bool {
	return d.kind == dateAbsent
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}
