package view

import (
	"context"
	"log/slog"
	"net/url"
	"wishlist-scraper/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/PuerkitoBio/purell"
)

const normalizeFlags = purell.FlagsSafe |
	purell.FlagRemoveFragment |
	purell.FlagRemoveDuplicateSlashes

// ParseWishlist returns the product links of the wishlist in page order,
// resolved against `base`. It returns nil if there are none.
func ParseWishlist(ctx context.Context, doc *goquery.Document, base *url.URL) []string {
	anchors := htmlutil.GetAnchors(ctx, doc.Find(`a[class*="product-title"]`))

	var links []string
	for _, a := range anchors {
		if a.Href == "" {
			slog.WarnContext(ctx, "wishlist entry without a link", "name", a.Name)
			continue
		}
		link, err := base.Parse(a.Href)
		if err != nil {
			slog.WarnContext(ctx, "invalid wishlist link", "href", a.Href, "err", err)
			continue
		}
		links = append(links, purell.NormalizeURL(link, normalizeFlags))
	}
	return links
}
