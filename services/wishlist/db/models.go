package db

import "database/sql"

type PersonalInfo struct {
	ID        int64
	UserEmail string
	Firstname string
	Lastname  string
	City      sql.NullString
}

type FavoriteProduct struct {
	ID           int64
	UserID       int64
	ProductName  string
	RatingValue  sql.NullString
	RetailPrice  sql.NullString
	TotalReviews sql.NullInt64
	TotalInStock sql.NullInt64
}

type Review struct {
	ID          int64
	ProductID   int64
	RatingValue string
	Content     sql.NullString
	Reviewer    sql.NullString
	Published   sql.NullString
}
