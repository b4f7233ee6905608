package facebook

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	// DefaultBaseURL is the base URL for the mobile feed endpoint
	DefaultBaseURL = "https://m.facebook.com"

	// FeedEndpoint is the endpoint pattern for page feeds
	FeedEndpoint = "/api/v1/pages/feed/"

	// PageURLBase is the public site used for display URLs
	PageURLBase = "https://www.facebook.com"

	// DefaultFeedLimit is the default number of posts requested per feed page
	DefaultFeedLimit = 20

	// MaxFeedLimit is the maximum number of posts that can be requested per feed page
	MaxFeedLimit = 100

	// MaxPageNameLength is the longest accepted page identifier
	MaxPageNameLength = 75
)

// GetFeedURL constructs the URL for fetching a page's feed
func GetFeedURL(baseURL, page, after string) string {
	return GetFeedURLWithLimit(baseURL, page, after, DefaultFeedLimit)
}

// GetFeedURLWithLimit constructs the URL for fetching a page's feed with a custom limit
func GetFeedURLWithLimit(baseURL, page, after string, limit int) string {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	// Ensure limit is within bounds
	if limit <= 0 {
		limit = DefaultFeedLimit
	} else if limit > MaxFeedLimit {
		limit = MaxFeedLimit
	}

	params := url.Values{}
	params.Set("page", page)
	params.Set("limit", strconv.Itoa(limit))
	if after != "" {
		params.Set("after", after)
	}

	return fmt.Sprintf("%s%s?%s", baseURL, FeedEndpoint, params.Encode())
}

// GetPageURL constructs the public URL for a page
func GetPageURL(page string) string {
	if page == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s/", PageURLBase, page)
}

// IsValidPageName checks if a page identifier is plausible.
// Page identifiers are vanity names or numeric page IDs; they contain
// letters, numbers, periods, underscores and hyphens.
func IsValidPageName(page string) bool {
	if page == "" || len(page) > MaxPageNameLength {
		return false
	}

	for _, char := range page {
		if !((char >= 'a' && char <= 'z') ||
			(char >= 'A' && char <= 'Z') ||
			(char >= '0' && char <= '9') ||
			char == '.' || char == '_' || char == '-') {
			return false
		}
	}

	return true
}

// SanitizePageName normalizes user input into a bare page identifier.
// It accepts a full page URL, an @-prefixed handle or a plain name.
func SanitizePageName(page string) string {
	page = strings.TrimSpace(page)
	if page == "" {
		return ""
	}

	// Strip a pasted page URL down to its path
	for _, prefix := range []string{
		"https://www.facebook.com/",
		"https://m.facebook.com/",
		"https://facebook.com/",
		"http://www.facebook.com/",
		"http://m.facebook.com/",
		"http://facebook.com/",
		"www.facebook.com/",
		"m.facebook.com/",
		"facebook.com/",
	} {
		if strings.HasPrefix(page, prefix) {
			page = page[len(prefix):]
			break
		}
	}

	// Remove @ symbol if present at the beginning
	if page != "" && page[0] == '@' {
		page = page[1:]
	}

	// Remove any trailing slashes or spaces
	for len(page) > 0 && (page[len(page)-1] == '/' || page[len(page)-1] == ' ') {
		page = page[:len(page)-1]
	}

	// Drop anything after a query string or sub-path
	if idx := strings.IndexAny(page, "/?"); idx >= 0 {
		page = page[:idx]
	}

	return page
}
