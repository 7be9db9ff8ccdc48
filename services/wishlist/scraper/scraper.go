package scraper

import (
	"context"
	"fmt"
	"log/slog"

	"wishlist-scraper/lib/scrapers/siriust/core"
	"wishlist-scraper/lib/scrapers/siriust/view"
	"wishlist-scraper/services/wishlist/store"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// CredentialSource supplies the account to log in with. It is only asked
// once per run.
type CredentialSource interface {
	Credentials(ctx context.Context) (core.Credentials, error)
}

// StaticCredentials is a CredentialSource that always returns itself.
type StaticCredentials core.Credentials

func (c StaticCredentials) Credentials(context.Context) (core.Credentials, error) {
	return core.Credentials(c), nil
}

type Options struct {
	Client      core.ClientOptions
	Credentials CredentialSource
	Store       store.Store
}

type Result struct {
	Profile  view.Profile
	Products []view.Product
	// zero when the profile could not be written
	UserID     int64
	ProfileErr error
	// one entry per product, empty when ProfileErr is set
	Writes []store.ProductWrite
}

// FailedWrites counts the rows of the run that could not be persisted.
func (r Result) FailedWrites() int {
	failed := 0
	if r.ProfileErr != nil {
		failed++
	}
	for _, w := range r.Writes {
		if w.Err != nil {
			failed++
		}
	}
	return failed
}

// Scrape logs in, reads the profile and every wishlist product and persists
// them. Network and extraction errors abort the run, database errors are
// recorded in the returned Result.
func Scrape(ctx context.Context, opts Options) (Result, error) {
	ctx, span := tracer.Start(ctx, "Scrape")
	defer span.End()

	result, err := scrape(ctx, opts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return result, err
	}

	failed := result.FailedWrites()
	if failed > 0 {
		failedWritesCounter.Add(ctx, int64(failed))
	}
	span.SetAttributes(
		attribute.Int64("user_id", result.UserID),
		attribute.Int("products", len(result.Products)),
		attribute.Int("failed_writes", failed),
	)
	return result, nil
}

func scrape(ctx context.Context, opts Options) (Result, error) {
	if opts.Credentials == nil {
		return Result{}, fmt.Errorf("no credential source")
	}
	creds, err := opts.Credentials.Credentials(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("get credentials: %w", err)
	}

	coreClient, err := core.NewClient(opts.Client)
	if err != nil {
		return Result{}, fmt.Errorf("create client: %w", err)
	}
	err = coreClient.Login(ctx, creds)
	if err != nil {
		return Result{}, fmt.Errorf("login: %w", err)
	}
	slog.InfoContext(ctx, "logged in", "base_url", coreClient.BaseUrl.String())

	client := view.NewClient(coreClient)

	var result Result
	result.Profile, err = client.Profile(ctx)
	if err != nil {
		return result, fmt.Errorf("profile: %w", err)
	}
	slog.InfoContext(ctx, "scraped profile", "email", result.Profile.Email)

	result.UserID, result.ProfileErr = opts.Store.InsertPersonalInfo(ctx, result.Profile)
	if result.ProfileErr != nil {
		slog.WarnContext(ctx, "failed to write profile, products will not be stored", "err", result.ProfileErr)
	}

	links, err := client.WishlistLinks(ctx)
	if err != nil {
		return result, fmt.Errorf("wishlist: %w", err)
	}
	slog.InfoContext(ctx, "scraped wishlist", "products", len(links))

	for _, link := range links {
		product, err := client.Product(ctx, link)
		if err != nil {
			return result, fmt.Errorf("product: %w", err)
		}
		productsCounter.Add(ctx, 1)
		reviewsCounter.Add(ctx, int64(len(product.Reviews)))
		slog.DebugContext(
			ctx, "scraped product",
			"name", product.Name,
			"in_stock", product.InStock,
			"reviews", len(product.Reviews),
		)
		result.Products = append(result.Products, product)
	}

	if result.ProfileErr != nil {
		return result, nil
	}
	result.Writes = opts.Store.InsertFavoriteProducts(ctx, result.UserID, result.Products)
	for _, w := range result.Writes {
		if w.Err != nil {
			slog.WarnContext(ctx, "failed to write product", "url", w.Url, "err", w.Err)
		}
	}
	return result, nil
}
