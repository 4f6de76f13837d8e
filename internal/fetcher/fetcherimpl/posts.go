package fetcherimpl

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/nberlot/menu-du-jour-bot/internal/domain"
	"github.com/nberlot/menu-du-jour-bot/pkg/errors"
	"github.com/nberlot/menu-du-jour-bot/pkg/retry"
)

// postSelectors are tried in order until one yields elements. The page
// markup drifts; keeping the whole list here isolates that churn from
// the rest of the pipeline.
var postSelectors = []string{
	"div[role='article']",
	"article",
	"div.userContentWrapper",
	"div[data-testid='post_container']",
}

// dateSelectors locate the best-effort date-ish substring inside a post.
var dateSelectors = []string{
	"abbr",
	"time",
	"span[title]",
	"a[aria-label]",
}

// FetchPosts downloads the page and extracts its posts in document
// order. The page renders most-recent-first, which the locator relies on.
func (f *FetcherImpl) FetchPosts(ctx context.Context, pageURL string) ([]domain.PostRecord, error) {
	var body []byte

	err := retry.Do(ctx, f.Logger, "fetch page", func() error {
		resp, err := f.http.R().SetContext(ctx).Get(pageURL)
		if err != nil {
			return err
		}
		if resp.IsError() {
			return fmt.Errorf("page returned status %d", resp.StatusCode())
		}
		body = resp.Body()
		return nil
	}, retry.DefaultConfig())
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch page")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse page html")
	}

	records := extractPosts(doc)
	f.Logger.Info("Fetched page", "url", pageURL, "posts", len(records))
	return records, nil
}

func extractPosts(doc *goquery.Document) []domain.PostRecord {
	var sel *goquery.Selection
	for _, s := range postSelectors {
		sel = doc.Find(s)
		if sel.Length() > 0 {
			break
		}
	}
	if sel == nil || sel.Length() == 0 {
		return nil
	}

	var records []domain.PostRecord
	sel.Each(func(_ int, post *goquery.Selection) {
		records = append(records, domain.PostRecord{
			RawText:           normalizeSpace(post.Text()),
			CandidateDateText: extractDateText(post),
			ImageRef:          extractImageRef(post),
		})
	})
	return records
}

func extractDateText(post *goquery.Selection) string {
	for _, s := range dateSelectors {
		node := post.Find(s).First()
		if node.Length() == 0 {
			continue
		}
		for _, attr := range []string{"title", "aria-label"} {
			if v, ok := node.Attr(attr); ok && strings.TrimSpace(v) != "" {
				return strings.TrimSpace(v)
			}
		}
		if t := normalizeSpace(node.Text()); t != "" {
			return t
		}
	}
	return ""
}

func extractImageRef(post *goquery.Selection) string {
	var ref string
	post.Find("img[src]").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		src, _ := img.Attr("src")
		if src == "" || strings.HasPrefix(src, "data:") {
			return true
		}
		// Profile pictures and reaction emoji are noise.
		if strings.Contains(src, "emoji") || strings.Contains(src, "profile") {
			return true
		}
		ref = src
		return false
	})
	return ref
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
