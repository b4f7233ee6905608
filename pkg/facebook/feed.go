package facebook

import "time"

const (
	// DefaultFeedPages is the default pagination depth for one feed walk
	DefaultFeedPages = 3

	// DefaultFeedTimeout is the default per-request timeout for one feed walk
	DefaultFeedTimeout = 30 * time.Second
)

// FeedOptions bound a single feed walk
type FeedOptions struct {
	// Pages is the maximum number of feed pages requested before the
	// walk stops on its own.
	Pages int

	// Timeout overrides the client's request timeout for this walk
	// when greater than zero.
	Timeout time.Duration
}

// DefaultFeedOptions returns the standard walk bounds
func DefaultFeedOptions() FeedOptions {
	return FeedOptions{
		Pages:   DefaultFeedPages,
		Timeout: DefaultFeedTimeout,
	}
}

// Feed walks a page's post feed lazily. Feed pages are requested one at
// a time, only when the buffered posts run out, so a consumer that stops
// early never pays for the rest of the walk.
//
// Usage follows the scanner protocol:
//
//	feed := client.Posts("PhuketTimeNews", facebook.DefaultFeedOptions())
//	for feed.Next() {
//	    post := feed.Post()
//	    // ...
//	}
//	if err := feed.Err(); err != nil {
//	    // the walk failed partway
//	}
type Feed struct {
	client    *Client
	page      string
	after     string
	pagesLeft int
	buf       []Post
	cur       Post
	err       error
	done      bool
}

// Posts starts a lazy feed walk for the given page. No request is made
// until the first call to Next.
func (c *Client) Posts(page string, opts FeedOptions) *Feed {
	if opts.Pages <= 0 {
		opts.Pages = DefaultFeedPages
	}

	client := c
	if opts.Timeout > 0 && opts.Timeout != c.httpClient.Timeout {
		// Clone the client so the timeout override stays local to this walk
		httpClient := *c.httpClient
		httpClient.Timeout = opts.Timeout
		clone := *c
		clone.httpClient = &httpClient
		client = &clone
	}

	return &Feed{
		client:    client,
		page:      page,
		pagesLeft: opts.Pages,
	}
}

// Next advances the feed to the next post. It returns false when the
// feed is exhausted or a fetch failed; check Err to tell the two apart.
func (f *Feed) Next() bool {
	if f.err != nil {
		return false
	}

	for len(f.buf) == 0 {
		if f.done || f.pagesLeft <= 0 {
			return false
		}
		if err := f.fetchPage(); err != nil {
			f.err = err
			return false
		}
	}

	f.cur = f.buf[0]
	f.buf = f.buf[1:]
	return true
}

// Post returns the post produced by the most recent successful Next call
func (f *Feed) Post() Post {
	return f.cur
}

// Err returns the first fault encountered while walking the feed
func (f *Feed) Err() error {
	return f.err
}

// Page returns the page identifier this feed walks
func (f *Feed) Page() string {
	return f.page
}

// fetchPage requests the next feed page and refills the buffer
func (f *Feed) fetchPage() error {
	url := GetFeedURL(f.client.baseURL, f.page, f.after)

	f.client.logger.DebugWithFields("fetching feed page", map[string]interface{}{
		"page":  f.page,
		"after": f.after,
	})

	var resp FeedResponse
	if err := f.client.GetJSON(url, &resp); err != nil {
		return err
	}

	f.pagesLeft--
	f.buf = resp.Posts
	f.after = resp.Paging.Cursors.After

	// An empty page or a missing cursor ends the walk before the page
	// budget is spent.
	if len(resp.Posts) == 0 || !resp.HasNextPage() {
		f.done = true
	}

	f.client.logger.DebugWithFields("feed page fetched", map[string]interface{}{
		"page":       f.page,
		"posts":      len(resp.Posts),
		"pages_left": f.pagesLeft,
		"done":       f.done,
	})

	return nil
}
