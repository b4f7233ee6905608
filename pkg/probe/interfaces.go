package probe

import "fbprobe/pkg/facebook"

// PostIterator yields posts one at a time following the scanner protocol.
// Next reports whether a post is available, Post returns it, and Err
// returns the fault that stopped the walk, if any.
type PostIterator interface {
	Next() bool
	Post() facebook.Post
	Err() error
}

// PostSource defines the interface for feed fetch operations
type PostSource interface {
	Posts(page string, opts facebook.FeedOptions) PostIterator
}

// feedSource adapts a facebook.Client to the PostSource interface
type feedSource struct {
	client *facebook.Client
}

func (s *feedSource) Posts(page string, opts facebook.FeedOptions) PostIterator {
	return s.client.Posts(page, opts)
}
