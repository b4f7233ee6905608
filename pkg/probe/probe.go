package probe

import (
	"fmt"
	"time"

	"fbprobe/pkg/config"
	"fbprobe/pkg/facebook"
	"fbprobe/pkg/logger"
	"fbprobe/pkg/ui"
)

const (
	// maxTextLen bounds the post text carried in a result
	maxTextLen = 200

	// previewLen bounds the post text echoed on the diagnostic stream
	previewLen = 60
)

// Prober fetches recent posts from Facebook pages and classifies each
// post by how many images it carries.
type Prober struct {
	source PostSource
	config *config.Config
	logger logger.Logger
}

// New creates a new Prober instance
func New(cfg *config.Config) *Prober {
	log := logger.GetLogger()

	client := facebook.NewClientWithConfig(cfg, log)

	return &Prober{
		source: &feedSource{client: client},
		config: cfg,
		logger: log,
	}
}

// ProbePage fetches up to the configured number of posts from a page and
// classifies each one. The feed walk is bounded by the configured page
// depth and request timeout.
//
// Any fault raised while walking the feed is contained here: the
// returned result then has Success false, an empty post list, zeroed
// counters and the fault's description in Error. No retry is attempted.
func (p *Prober) ProbePage(page string) *Result {
	n := p.config.Probe.PostCount

	ui.PrintInfo("Probing page", page)
	ui.PrintDim(fmt.Sprintf("Fetching up to %d posts", n))

	p.logger.InfoWithFields("Starting page probe", map[string]interface{}{
		"page":       page,
		"post_count": n,
		"page_depth": p.config.Probe.PageDepth,
	})

	result := newResult(page)

	feed := p.source.Posts(page, facebook.FeedOptions{
		Pages:   p.config.Probe.PageDepth,
		Timeout: p.config.Probe.FetchTimeout,
	})

	// The probe enforces the post bound, not the feed. Once the list is
	// full the feed is not advanced again.
	for len(result.Posts) < n && feed.Next() {
		post := feed.Post()
		summary := projectPost(post)
		result.Posts = append(result.Posts, summary)

		// First match wins: a post lands in exactly one bucket.
		switch {
		case len(post.Images) > 1:
			result.Stats.PostsWithMultipleImages++
			ui.PrintSuccess(fmt.Sprintf("Found multi-image post: %d images", len(post.Images)))
			ui.PrintDim(fmt.Sprintf("  Text: %s...", truncateRunes(summary.Text, previewLen)))
			p.logger.DebugWithFields("Multi-image post found", map[string]interface{}{
				"page":    page,
				"post_id": summary.PostID,
				"images":  len(post.Images),
			})
		case len(post.Images) == 1:
			result.Stats.PostsWithSingleImage++
		case post.Image != "":
			result.Stats.PostsWithSingleImage++
		default:
			result.Stats.PostsWithNoImages++
		}
	}

	if err := feed.Err(); err != nil {
		p.logger.WithError(err).WithField("page", page).Error("Page probe failed")
		ui.PrintError("Probe failed", err)

		// Posts examined before the fault are discarded so a failed
		// result is always empty and zeroed.
		failed := newResult(page)
		msg := err.Error()
		failed.Error = &msg
		return failed
	}

	result.Stats.TotalPosts = len(result.Posts)
	result.Success = true

	p.logger.InfoWithFields("Page probe completed", map[string]interface{}{
		"page":        page,
		"total_posts": result.Stats.TotalPosts,
		"multi_image": result.Stats.PostsWithMultipleImages,
	})

	return result
}

// projectPost trims a feed post down to the fields carried in a result.
// Every absent value gets an explicit default here so absence never
// propagates past the projection step.
func projectPost(post facebook.Post) PostSummary {
	images := post.Images
	if images == nil {
		images = []string{}
	}

	return PostSummary{
		PostID:  post.PostID,
		Text:    truncateRunes(post.Text, maxTextLen),
		Time:    formatPostTime(post.Time),
		Image:   post.Image,
		Images:  images,
		PostURL: post.PostURL,
	}
}

// truncateRunes returns the first limit runes of s. Truncating an
// already short enough string returns it unchanged, so the operation is
// idempotent.
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// formatPostTime renders a post's unix timestamp for the report, or ""
// when the post carries none.
func formatPostTime(unix int64) string {
	if unix == 0 {
		return ""
	}
	return time.Unix(unix, 0).UTC().Format("2006-01-02 15:04:05")
}
