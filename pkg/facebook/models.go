package facebook

// FeedResponse represents one page of a Facebook page's post feed
type FeedResponse struct {
	Posts  []Post `json:"posts"`
	Paging Paging `json:"paging"`
}

// Paging contains pagination information for a feed page
type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next"`
}

// Cursors holds the opaque continuation cursor
type Cursors struct {
	After string `json:"after"`
}

// HasNextPage reports whether another feed page can be requested
func (r *FeedResponse) HasNextPage() bool {
	return r.Paging.Cursors.After != ""
}

// Post represents a single post as served by the feed.
// Fields may be missing in the wire data; absent strings decode to ""
// and an absent image list decodes to nil.
type Post struct {
	PostID  string   `json:"post_id"`
	Text    string   `json:"text"`
	Time    int64    `json:"time"`
	Image   string   `json:"image"`
	Images  []string `json:"images"`
	PostURL string   `json:"post_url"`
}
