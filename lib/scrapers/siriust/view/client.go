package view

import (
	"context"
	"fmt"
	"wishlist-scraper/lib/scrapers/siriust/core"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	ProfilePath  = "/profiles-update/"
	WishlistPath = "/wishlist/"
)

// MissingFieldError is returned when a page doesn't have the markup a
// parser depends on, usually because the session isn't logged in or the
// site's layout changed.
type MissingFieldError struct {
	Page  string
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s page: could not find %s", e.Page, e.Field)
}

// Client reads pages through an authenticated core client.
type Client struct {
	Core *core.Client
}

func NewClient(coreClient *core.Client) Client {
	return Client{Core: coreClient}
}

func (c Client) Profile(ctx context.Context) (Profile, error) {
	ctx, span := tracer.Start(ctx, "client:Profile")
	defer span.End()

	doc, err := c.Core.GetDocument(ctx, ProfilePath)
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch profile")
		return Profile{}, err
	}
	profile, err := ParseProfile(doc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse profile")
		return Profile{}, err
	}
	return profile, nil
}

func (c Client) WishlistLinks(ctx context.Context) ([]string, error) {
	ctx, span := tracer.Start(ctx, "client:WishlistLinks")
	defer span.End()

	doc, err := c.Core.GetDocument(ctx, WishlistPath)
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch wishlist")
		return nil, err
	}
	links := ParseWishlist(ctx, doc, c.Core.BaseUrl)
	span.SetAttributes(attribute.Int("links", len(links)))
	return links, nil
}

func (c Client) Product(ctx context.Context, link string) (Product, error) {
	ctx, span := tracer.Start(ctx, "client:Product", trace.WithAttributes(
		attribute.String("link", link),
	))
	defer span.End()

	doc, err := c.Core.GetDocument(ctx, link)
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch product")
		return Product{}, err
	}
	product, err := ParseProduct(doc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse product")
		return Product{}, fmt.Errorf("%s: %w", link, err)
	}
	product.Url = link
	span.SetAttributes(
		attribute.String("name", product.Name),
		attribute.Int("reviews", len(product.Reviews)),
		attribute.Int("in_stock", product.InStock),
	)
	return product, nil
}
