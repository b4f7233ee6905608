package facebook

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetFeedURL(t *testing.T) {
	tests := []struct {
		name  string
		base  string
		page  string
		after string
	}{
		{
			name: "simple page",
			base: DefaultBaseURL,
			page: "PhuketTimeNews",
		},
		{
			name:  "with cursor",
			base:  DefaultBaseURL,
			page:  "PhuketTimeNews",
			after: "cursor123",
		},
		{
			name: "custom base URL",
			base: "http://127.0.0.1:9999",
			page: "SomePage",
		},
		{
			name: "empty base falls back to default",
			base: "",
			page: "SomePage",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetFeedURL(tt.base, tt.page, tt.after)

			parsed, err := url.Parse(result)
			assert.NoError(t, err)
			assert.Equal(t, FeedEndpoint, parsed.Path)
			assert.Equal(t, tt.page, parsed.Query().Get("page"))
			assert.Equal(t, strconv.Itoa(DefaultFeedLimit), parsed.Query().Get("limit"))
			assert.Equal(t, tt.after, parsed.Query().Get("after"))

			wantBase := tt.base
			if wantBase == "" {
				wantBase = DefaultBaseURL
			}
			assert.Equal(t, wantBase, fmt.Sprintf("%s://%s", parsed.Scheme, parsed.Host))
		})
	}
}

func TestGetFeedURLWithLimit(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		expected int
	}{
		{
			name:     "default limit when zero",
			limit:    0,
			expected: DefaultFeedLimit,
		},
		{
			name:     "negative limit uses default",
			limit:    -5,
			expected: DefaultFeedLimit,
		},
		{
			name:     "custom limit within bounds",
			limit:    25,
			expected: 25,
		},
		{
			name:     "limit exceeds maximum",
			limit:    500,
			expected: MaxFeedLimit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetFeedURLWithLimit(DefaultBaseURL, "SomePage", "", tt.limit)

			parsed, err := url.Parse(result)
			assert.NoError(t, err)
			assert.Equal(t, strconv.Itoa(tt.expected), parsed.Query().Get("limit"))
		})
	}
}

func TestGetPageURL(t *testing.T) {
	assert.Equal(t, "https://www.facebook.com/PhuketTimeNews/", GetPageURL("PhuketTimeNews"))
	assert.Equal(t, "", GetPageURL(""))
}

func TestIsValidPageName(t *testing.T) {
	tests := []struct {
		name  string
		page  string
		valid bool
	}{
		{"simple name", "PhuketTimeNews", true},
		{"numeric page ID", "123456789", true},
		{"name with periods", "some.page", true},
		{"name with underscore", "some_page", true},
		{"name with hyphen", "some-page", true},
		{"empty", "", false},
		{"contains space", "some page", false},
		{"contains slash", "some/page", false},
		{"contains at sign", "@somepage", false},
		{"too long", strings.Repeat("a", MaxPageNameLength+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidPageName(tt.page))
		})
	}
}

func TestSanitizePageName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain name", "PhuketTimeNews", "PhuketTimeNews"},
		{"at-prefixed handle", "@PhuketTimeNews", "PhuketTimeNews"},
		{"trailing slash", "PhuketTimeNews/", "PhuketTimeNews"},
		{"surrounding spaces", "  PhuketTimeNews  ", "PhuketTimeNews"},
		{"full www URL", "https://www.facebook.com/PhuketTimeNews", "PhuketTimeNews"},
		{"full mobile URL", "https://m.facebook.com/PhuketTimeNews/", "PhuketTimeNews"},
		{"bare host URL", "facebook.com/PhuketTimeNews", "PhuketTimeNews"},
		{"URL with query string", "https://www.facebook.com/PhuketTimeNews?ref=page", "PhuketTimeNews"},
		{"URL with sub-path", "https://www.facebook.com/PhuketTimeNews/posts/123", "PhuketTimeNews"},
		{"empty", "", ""},
		{"only whitespace", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizePageName(tt.input))
		})
	}
}
