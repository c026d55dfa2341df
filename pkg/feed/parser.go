package feed

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"newsmap/pkg/domain"
)

// Parser fetches and parses RSS/Atom feeds into raw entries. It keeps at
// most maxItems entries per feed in the order the feed provides them.
type Parser struct {
	client    *http.Client
	userAgent string
	maxItems  int
	sanitizer *bluemonday.Policy
	now       func() time.Time
}

// NewParser creates a new feed parser
func NewParser(timeout time.Duration, userAgent string, maxItems int) *Parser {
	return &Parser{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
		maxItems:  maxItems,
		sanitizer: bluemonday.StrictPolicy(),
		now:       time.Now,
	}
}

// Parse fetches and parses a feed from the given URL. Any failure returns an
// error and no items; the caller decides whether that aborts anything (the
// aggregator treats it as an empty contribution).
func (p *Parser) Parse(ctx context.Context, url string) ([]domain.ParsedItem, error) {
	body, err := p.fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer body.Close()

	parser := gofeed.NewParser()
	feed, err := parser.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	items := feed.Items
	if len(items) > p.maxItems {
		items = items[:p.maxItems]
	}

	result := make([]domain.ParsedItem, 0, len(items))
	for _, item := range items {
		parsed := domain.ParsedItem{
			Title:       strings.TrimSpace(item.Title),
			Link:        item.Link,
			Description: p.snippet(item),
			ImageURL:    extractImageURL(item),
		}

		// set GUID, fall back to link
		if item.GUID != "" {
			parsed.GUID = item.GUID
		} else {
			parsed.GUID = item.Link
		}

		// set published time, fall back to fetch time
		switch {
		case item.PublishedParsed != nil:
			parsed.Published = *item.PublishedParsed
		case item.UpdatedParsed != nil:
			parsed.Published = *item.UpdatedParsed
		default:
			parsed.Published = p.now()
		}

		result = append(result, parsed)
	}

	return result, nil
}

// snippet returns the item description as plain text, markup stripped.
// Feed descriptions routinely carry HTML which would pollute keyword
// matching and translation.
func (p *Parser) snippet(item *gofeed.Item) string {
	text := p.sanitizer.Sanitize(item.Description)
	return strings.TrimSpace(html.UnescapeString(text))
}

// extractImageURL pulls an image from media:content, media:thumbnail,
// enclosure or the item image, in that order
func extractImageURL(item *gofeed.Item) string {
	if media, ok := item.Extensions["media"]; ok {
		for _, name := range []string{"content", "thumbnail"} {
			for _, ext := range media[name] {
				if url := ext.Attrs["url"]; url != "" {
					return url
				}
			}
		}
	}

	for _, enc := range item.Enclosures {
		if enc.URL != "" {
			return enc.URL
		}
	}

	if item.Image != nil {
		return item.Image.URL
	}

	return ""
}

// fetch retrieves content from a URL
func (p *Parser) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", p.userAgent)
	addBrowserHeaders(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}
