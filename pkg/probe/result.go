package probe

// PostSummary is the trimmed projection of one feed post carried in a
// Result. Absent values are replaced with explicit defaults at the
// projection step so they never surface as JSON null.
type PostSummary struct {
	PostID  string   `json:"post_id"`
	Text    string   `json:"text"`
	Time    string   `json:"time"`
	Image   string   `json:"image"`
	Images  []string `json:"images"`
	PostURL string   `json:"post_url"`
}

// Stats buckets the examined posts by image count. The three buckets
// partition the examined posts, so they always sum to TotalPosts.
type Stats struct {
	TotalPosts              int `json:"total_posts"`
	PostsWithMultipleImages int `json:"posts_with_multiple_images"`
	PostsWithSingleImage    int `json:"posts_with_single_image"`
	PostsWithNoImages       int `json:"posts_with_no_images"`
}

// Result is the outcome of probing one page. A failed probe carries an
// empty post list, zeroed counters and a non-nil Error.
type Result struct {
	Success bool          `json:"success"`
	Page    string        `json:"page"`
	Posts   []PostSummary `json:"posts"`
	Stats   Stats         `json:"stats"`
	Error   *string       `json:"error"`
}

// newResult returns an empty result for the given page. Posts is
// allocated so an empty list serializes as [] rather than null.
func newResult(page string) *Result {
	return &Result{
		Page:  page,
		Posts: []PostSummary{},
	}
}
