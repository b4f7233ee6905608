// Package facebook provides a client for reading a Facebook page's
// public post feed through the mobile endpoint.
//
// This package includes:
//   - A configurable HTTP client with browser-like headers and request pacing
//   - Type-safe models for feed responses
//   - Helper functions for constructing endpoints and normalizing page names
//   - A lazy Feed iterator that fetches pages only as posts are consumed
//
// Example usage:
//
//	client := facebook.NewClient(30*time.Second, nil)
//
//	feed := client.Posts("PhuketTimeNews", facebook.FeedOptions{Pages: 3})
//	for feed.Next() {
//	    post := feed.Post()
//	    fmt.Println(post.PostID, len(post.Images))
//	}
//	if err := feed.Err(); err != nil {
//	    var fbErr *errors.Error
//	    if stderrors.As(err, &fbErr) {
//	        switch fbErr.Type {
//	        case errors.ErrorTypeRateLimit:
//	            // Handle rate limit
//	        case errors.ErrorTypeNotFound:
//	            // Handle missing page
//	        }
//	    }
//	}
package facebook
