package devfolio

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// TagIndex collects every distinct tag label across the given entries and
// returns them in ascending collation order. Labels are case-sensitive and
// matched exactly: "Flutter" and "flutter" are two tags. Entries without
// tags contribute nothing; no tags anywhere yields an empty index.
func TagIndex(entries []ContentEntry) []string {
	set := make(map[string]struct{})
	for _, e := range entries {
		for _, t := range e.Tags {
			if strings.TrimSpace(t) == "" {
				continue
			}
			set[t] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil
	}
	labels := make([]string, 0, len(set))
	for t := range set {
		labels = append(labels, t)
	}
	collate.New(language.Und).SortStrings(labels)
	return labels
}

// FilterByTag narrows entries to those carrying the exact tag. An empty tag
// returns the input unchanged.
func FilterByTag(entries []ContentEntry, tag string) []ContentEntry {
	if tag == "" {
		return entries
	}
	var out []ContentEntry
	for _, e := range entries {
		for _, t := range e.Tags {
			if t == tag {
				out = append(out, e)
				break
			}
		}
	}
	return out
}
