package rdio

// PageOptions are the optional arguments shared by paged listings.
type PageOptions struct {
	Start  *int     // offset of the first result
	Count  *int     // maximum number of results
	Extras []string // additional fields to include on each result
}

func (o *PageOptions) check() error {
	return checkPage(o.Start, o.Count)
}

// UserOptions scope a collection lookup to a user other than the caller.
type UserOptions struct {
	User   string   // user key, empty for the authenticated user
	Extras []string // additional fields to include on each result
}

func orDefault[T any](opts *T) *T {
	if opts == nil {
		return new(T)
	}
	return opts
}
