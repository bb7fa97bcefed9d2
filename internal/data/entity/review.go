package entity

type Review struct {
	ID         int64  `db:"id"`
	UserID     int64  `db:"user_id"`
	BusinessID int64  `db:"business_id"`
	Stars      int    `db:"stars"` // 0-5
	ReviewText string `db:"review_text"`
}
