package devfolio

import (
	"fmt"
	"sort"
	"time"

	"github.com/araddon/dateparse"
)

// epoch is the timestamp assigned to entries with a missing or unparseable
// date. It sorts them to the oldest position instead of failing the build.
var epoch = time.Unix(0, 0).UTC()

// DateWarning flags an entry whose front matter carried no usable date.
// Warnings are advisory: the entry still renders, sorted oldest.
type DateWarning struct {
	Slug   string
	Detail string
}

func (w DateWarning) String() string {
	return fmt.Sprintf("entry %q: %s", w.Slug, w.Detail)
}

// Normalize removes draft entries, stamps every remaining entry with a single
// comparable timestamp, and orders the result newest first. A missing draft
// flag means published. Date precedence: native value, then parsed string,
// then epoch zero.
func Normalize(entries []ContentEntry) ([]ContentEntry, []DateWarning) {
	return normalize(entries, false)
}

// NormalizeAll stamps and sorts like Normalize but keeps drafts, for the
// author-only preview listing.
func NormalizeAll(entries []ContentEntry) ([]ContentEntry, []DateWarning) {
	return normalize(entries, true)
}

func normalize(entries []ContentEntry, keepDrafts bool) ([]ContentEntry, []DateWarning) {
	out := make([]ContentEntry, 0, len(entries))
	var warns []DateWarning
	for _, e := range entries {
		if e.Draft && !keepDrafts {
			continue
		}
		ts, warn := resolveDate(e.Date)
		e.Published = ts
		if warn != "" {
			warns = append(warns, DateWarning{Slug: e.Slug, Detail: warn})
		}
		out = append(out, e)
	}
	// Stable so that equal timestamps (epoch-dated entries in particular)
	// keep their load order and repeated runs stay identical.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Published.After(out[j].Published)
	})
	return out, warns
}

// resolveDate maps every RawDate variant to one canonical timestamp. The
// returned warning is empty when the date was usable.
func resolveDate(d RawDate) (time.Time, string) {
	switch d.kind {
	case dateNative:
		return d.t.UTC(), ""
	case dateString:
		t, err := dateparse.ParseAny(d.s)
		if err != nil {
			return epoch, fmt.Sprintf("unparseable date %q, sorting as oldest", d.s)
		}
		return t.UTC(), ""
	default:
		return epoch, "missing date, sorting as oldest"
	}
}
