package views

// Site holds the site-wide values templates render into headers, footers,
// feeds, and JSON-LD blocks.
type Site struct {
	Name        string
	URL         string
	Description string
	Author      string
}

// Entry is the display shape of a content entry. Dates arrive preformatted
// so templates never touch time values.
type Entry struct {
	Slug     string
	Title    string
	Date     string // human form, e.g. "Jun 15, 2024"; empty when unknown
	ISODate  string // machine form for <time datetime>
	Tags     []string
	Summary  string
	Category string
	Link     string
	Cover    string
	Content  string // rendered HTML body
	Draft    bool
}

// Page is one listing page plus the navigation state templates need to
// disable Prev/Next at the boundaries.
type Page struct {
	Number     int
	TotalPages int
	HasPrev    bool
	HasNext    bool
	PrevURL    string
	NextURL    string
	Entries    []Entry
}
