package db

import (
	"context"
	"database/sql"
)

const createPersonalInfo = `
insert into personal_info (user_email, firstname, lastname, city)
values (?, ?, ?, ?)
returning id
`

type CreatePersonalInfoParams struct {
	UserEmail string
	Firstname string
	Lastname  string
	City      sql.NullString
}

func (q *Queries) CreatePersonalInfo(ctx context.Context, arg CreatePersonalInfoParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, createPersonalInfo,
		arg.UserEmail,
		arg.Firstname,
		arg.Lastname,
		arg.City,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const createFavoriteProduct = `
insert into favorite_products (user_id, product_name, rating_value, retail_price, total_reviews, total_in_stock)
values (?, ?, ?, ?, ?, ?)
returning id
`

type CreateFavoriteProductParams struct {
	UserID       int64
	ProductName  string
	RatingValue  sql.NullString
	RetailPrice  sql.NullString
	TotalReviews int64
	TotalInStock int64
}

func (q *Queries) CreateFavoriteProduct(ctx context.Context, arg CreateFavoriteProductParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, createFavoriteProduct,
		arg.UserID,
		arg.ProductName,
		arg.RatingValue,
		arg.RetailPrice,
		arg.TotalReviews,
		arg.TotalInStock,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const createReview = `
insert into reviews (product_id, rating_value, content, reviewer, published)
values (?, ?, ?, ?, ?)
`

type CreateReviewParams struct {
	ProductID   int64
	RatingValue string
	Content     sql.NullString
	Reviewer    sql.NullString
	Published   sql.NullString
}

func (q *Queries) CreateReview(ctx context.Context, arg CreateReviewParams) error {
	_, err := q.db.ExecContext(ctx, createReview,
		arg.ProductID,
		arg.RatingValue,
		arg.Content,
		arg.Reviewer,
		arg.Published,
	)
	return err
}

const deletePersonalInfo = `
delete from personal_info where id = ?
`

func (q *Queries) DeletePersonalInfo(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deletePersonalInfo, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const getAllPersonalInfo = `
select id, user_email, firstname, lastname, city from personal_info
order by id
`

func (q *Queries) GetAllPersonalInfo(ctx context.Context) ([]PersonalInfo, error) {
	rows, err := q.db.QueryContext(ctx, getAllPersonalInfo)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []PersonalInfo
	for rows.Next() {
		var i PersonalInfo
		if err := rows.Scan(
			&i.ID,
			&i.UserEmail,
			&i.Firstname,
			&i.Lastname,
			&i.City,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getUserFavoriteProducts = `
select id, user_id, product_name, rating_value, retail_price, total_reviews, total_in_stock
from favorite_products
where user_id = ?
order by id
`

func (q *Queries) GetUserFavoriteProducts(ctx context.Context, userID int64) ([]FavoriteProduct, error) {
	rows, err := q.db.QueryContext(ctx, getUserFavoriteProducts, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []FavoriteProduct
	for rows.Next() {
		var i FavoriteProduct
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.ProductName,
			&i.RatingValue,
			&i.RetailPrice,
			&i.TotalReviews,
			&i.TotalInStock,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getProductReviews = `
select id, product_id, rating_value, content, reviewer, published
from reviews
where product_id = ?
order by id
`

func (q *Queries) GetProductReviews(ctx context.Context, productID int64) ([]Review, error) {
	rows, err := q.db.QueryContext(ctx, getProductReviews, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Review
	for rows.Next() {
		var i Review
		if err := rows.Scan(
			&i.ID,
			&i.ProductID,
			&i.RatingValue,
			&i.Content,
			&i.Reviewer,
			&i.Published,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
