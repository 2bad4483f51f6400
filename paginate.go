package devfolio

// DefaultPageSize is the number of entries per blog listing page.
const DefaultPageSize = 9

// Page is an ephemeral slice of the full entry list. Pages are recomputed
// from the list and a page number on every request; nothing is persisted.
type Page struct {
	Number     int // 1-based
	Size       int
	TotalPages int
	Entries    []ContentEntry
}

// Paginate slices entries into the requested fixed-size page. Page numbers
// below 1 are clamped to 1; a page past the end yields an empty page rather
// than an error, with TotalPages still reflecting the full list.
func Paginate(entries []ContentEntry, size, number int) Page {
	if size <= 0 {
		size = DefaultPageSize
	}
	if number < 1 {
		number = 1
	}
	p := Page{
		Number:     number,
		Size:       size,
		TotalPages: (len(entries) + size - 1) / size,
	}
	start := (number - 1) * size
	if start >= len(entries) {
		return p
	}
	end := start + size
	if end > len(entries) {
		end = len(entries)
	}
	p.Entries = entries[start:end]
	return p
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool {
	return p.Number > 1
}

// HasNext reports whether a next page exists.
func (p Page) HasNext() bool {
	return p.Number < p.TotalPages
}
