package store

import (
	"context"
	"database/sql"
	"fmt"

	"wishlist-scraper/lib/scrapers/siriust/view"
	"wishlist-scraper/services/wishlist/db"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/wishlist/store")

// ProductWrite is the outcome of persisting a single product and its
// reviews.
type ProductWrite struct {
	Url       string
	ProductID int64
	Reviews   int
	Err       error
}

type Store struct {
	db     *sql.DB
	qry    *db.Queries
	makeTx db.MakeTx
}

func New(database *sql.DB) Store {
	return Store{
		db:     database,
		qry:    db.New(database),
		makeTx: db.NewMakeTx(database),
	}
}

func (s Store) CreateSchema(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "CreateSchema")
	defer span.End()

	_, err := s.db.ExecContext(ctx, db.Schema)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

func nullString(value string) sql.NullString {
	return sql.NullString{
		String: value,
		Valid:  value != "",
	}
}

// InsertPersonalInfo writes the profile in its own transaction and returns
// the id of the new personal_info row.
func (s Store) InsertPersonalInfo(ctx context.Context, profile view.Profile) (int64, error) {
	ctx, span := tracer.Start(ctx, "InsertPersonalInfo")
	defer span.End()

	txqry, discard, commit, err := s.makeTx(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	defer discard()

	id, err := txqry.CreatePersonalInfo(ctx, db.CreatePersonalInfoParams{
		UserEmail: profile.Email,
		Firstname: profile.FirstName,
		Lastname:  profile.LastName,
		City:      nullString(profile.City),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, fmt.Errorf("insert personal info: %w", err)
	}
	err = commit()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, fmt.Errorf("commit personal info: %w", err)
	}

	span.SetAttributes(attribute.Int64("user_id", id))
	return id, nil
}

func (s Store) insertProduct(ctx context.Context, userID int64, product view.Product) (int64, error) {
	ctx, span := tracer.Start(ctx, "insertProduct")
	defer span.End()

	span.SetAttributes(
		attribute.String("url", product.Url),
		attribute.Int("reviews", len(product.Reviews)),
	)

	txqry, discard, commit, err := s.makeTx(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	defer discard()

	productID, err := txqry.CreateFavoriteProduct(ctx, db.CreateFavoriteProductParams{
		UserID:       userID,
		ProductName:  product.Name,
		RatingValue:  nullString(product.RatingValue),
		RetailPrice:  nullString(product.Price),
		TotalReviews: int64(product.ReviewCount),
		TotalInStock: int64(product.InStock),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, fmt.Errorf("insert product: %w", err)
	}

	for i, review := range product.Reviews {
		err = txqry.CreateReview(ctx, db.CreateReviewParams{
			ProductID:   productID,
			RatingValue: review.RatingValue,
			Content:     nullString(review.Content),
			Reviewer:    nullString(review.Reviewer),
			Published:   nullString(review.Published),
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return 0, fmt.Errorf("insert review %d: %w", i, err)
		}
	}

	err = commit()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, fmt.Errorf("commit product: %w", err)
	}
	return productID, nil
}

// InsertFavoriteProducts writes every product together with its reviews, one
// transaction per product. A failed product is rolled back and recorded in
// its ProductWrite, the remaining products are still written.
func (s Store) InsertFavoriteProducts(ctx context.Context, userID int64, products []view.Product) []ProductWrite {
	ctx, span := tracer.Start(ctx, "InsertFavoriteProducts")
	defer span.End()

	span.SetAttributes(
		attribute.Int64("user_id", userID),
		attribute.Int("products", len(products)),
	)

	writes := make([]ProductWrite, len(products))
	for i, product := range products {
		productID, err := s.insertProduct(ctx, userID, product)
		writes[i] = ProductWrite{
			Url:       product.Url,
			ProductID: productID,
			Err:       err,
		}
		if err != nil {
			continue
		}
		writes[i].Reviews = len(product.Reviews)
	}
	return writes
}

func (s Store) Users(ctx context.Context) ([]db.PersonalInfo, error) {
	ctx, span := tracer.Start(ctx, "Users")
	defer span.End()

	users, err := s.qry.GetAllPersonalInfo(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return users, nil
}

func (s Store) Products(ctx context.Context, userID int64) ([]db.FavoriteProduct, error) {
	ctx, span := tracer.Start(ctx, "Products")
	defer span.End()

	products, err := s.qry.GetUserFavoriteProducts(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return products, nil
}

func (s Store) Reviews(ctx context.Context, productID int64) ([]db.Review, error) {
	ctx, span := tracer.Start(ctx, "Reviews")
	defer span.End()

	reviews, err := s.qry.GetProductReviews(ctx, productID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return reviews, nil
}

// DeletePersonalInfo removes a user, their products and reviews are removed
// by the foreign key cascade. It reports whether a row was deleted.
func (s Store) DeletePersonalInfo(ctx context.Context, id int64) (bool, error) {
	ctx, span := tracer.Start(ctx, "DeletePersonalInfo")
	defer span.End()

	span.SetAttributes(attribute.Int64("user_id", id))

	affected, err := s.qry.DeletePersonalInfo(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return false, err
	}
	return affected > 0, nil
}
