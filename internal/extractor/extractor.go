// Package extractor locates candidate event blocks in scraped markup and
// pulls structured event fields out of them.
//
// Block location works through a prioritized selector list: the first
// selector that matches any blocks wins and the rest are ignored. Field
// extraction inside a block is heuristic (heading tags for titles, datetime
// attributes over visible text for dates, class-name hints for location and
// description) with minimum-length thresholds to skip trivial matches.
package extractor

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/confscout/eventscout/internal/event"
	"github.com/confscout/eventscout/internal/logger"
)

// Minimum lengths below which a candidate field value is considered noise.
const (
	minTitleLen       = 5
	minDateLen        = 3
	minLocationLen    = 2
	minDescriptionLen = 10
)

// selectorsFor returns the prioritized block selectors for a source tag.
// Generic container classes come first; the source tag itself is the most
// specific fallback (KubeCon pages mark blocks with their own class).
func selectorsFor(source string) []string {
	sels := []string{
		"div[class*='event'], article[class*='event']",
		"div[class*='card'], article[class*='card']",
		"div[class*='item'], article[class*='item']",
	}
	if source != "" {
		sels = append(sels, fmt.Sprintf("div[class*='%s'], article[class*='%s']", source, source))
	}
	return sels
}

// Extract parses markup and returns the events found in it. Blocks without
// a title are dropped; every other missing field falls back to its sentinel.
// A failure inside one block is logged and skipped without aborting the rest.
func Extract(markup []byte, source, baseURL string) []*event.Event {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(markup))
	if err != nil {
		logger.Warn("Unparsable markup", logger.Fields{"source": source})
		return nil
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		base = nil
	}

	var blocks *goquery.Selection
	for _, sel := range selectorsFor(source) {
		if s := doc.Find(sel); s.Length() > 0 {
			blocks = s
			break
		}
	}
	if blocks == nil {
		return nil
	}

	events := make([]*event.Event, 0, blocks.Length())
	seen := make(map[string]bool)

	blocks.Each(func(i int, block *goquery.Selection) {
		evt, err := extractBlock(block, source, base, baseURL)
		if err != nil {
			logger.Warn("Skipping event block", logger.Fields{
				"source": source,
				"block":  i,
			})
			return
		}
		if evt == nil {
			return
		}
		// Nested containers can match the same listing twice; collapse
		// duplicates within a single source page.
		if seen[evt.ID] {
			return
		}
		seen[evt.ID] = true
		events = append(events, evt)
	})

	return events
}

// extractBlock pulls one event out of a container block. Returns (nil, nil)
// when the block has no usable title.
func extractBlock(block *goquery.Selection, source string, base *url.URL, baseURL string) (evt *event.Event, err error) {
	defer func() {
		if r := recover(); r != nil {
			evt = nil
			err = fmt.Errorf("block parse panic: %v", r)
		}
	}()

	title := extractTitle(block)
	if title == "" {
		return nil, nil
	}

	date := extractDate(block)
	location := firstText(block, "[class*='location'], [class*='venue'], [class*='place']", minLocationLen)
	description := firstText(block, "[class*='description'], [class*='summary'], [class*='excerpt']", minDescriptionLen)
	link := extractLink(block, base)

	return event.New(source, title, date, location, description, link, baseURL), nil
}

// extractTitle prefers nested heading tags, then title-like attributes on
// the block itself. Matches at or below the length threshold are skipped as
// trivial.
func extractTitle(block *goquery.Selection) string {
	title := ""
	block.Find("h1, h2, h3, h4, h5, h6").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		if text := cleanText(h.Text()); len(text) > minTitleLen {
			title = text
			return false
		}
		return true
	})
	if title != "" {
		return title
	}

	for _, attr := range []string{"title", "data-title", "data-name", "aria-label"} {
		if v, ok := block.Attr(attr); ok {
			if text := cleanText(v); len(text) > minTitleLen {
				return text
			}
		}
	}
	return ""
}

// extractDate prefers a machine-readable datetime attribute on a <time>
// element over its visible text, then falls back to date/time class hints.
func extractDate(block *goquery.Selection) string {
	date := ""
	block.Find("time").EachWithBreak(func(_ int, el *goquery.Selection) bool {
		if dt, ok := el.Attr("datetime"); ok {
			if v := cleanText(dt); len(v) > minDateLen {
				date = v
				return false
			}
		}
		if text := cleanText(el.Text()); len(text) > minDateLen {
			date = text
			return false
		}
		return true
	})
	if date != "" {
		return date
	}
	return firstText(block, "[class*='date'], [class*='time']", minDateLen)
}

// extractLink resolves the first anchor's href against the base URL.
func extractLink(block *goquery.Selection, base *url.URL) string {
	href, ok := block.Find("a[href]").First().Attr("href")
	if !ok {
		return ""
	}
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	if base == nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// firstText returns the first match of selector whose cleaned text exceeds
// minLen, or "".
func firstText(block *goquery.Selection, selector string, minLen int) string {
	result := ""
	block.Find(selector).EachWithBreak(func(_ int, el *goquery.Selection) bool {
		if text := cleanText(el.Text()); len(text) > minLen {
			result = text
			return false
		}
		return true
	})
	return result
}

// cleanText trims and collapses internal whitespace runs.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
