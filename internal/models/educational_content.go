package models

// EducationalContent is an article shown to citizens.
type EducationalContent struct {
	ID           int64   `db:"content_id" json:"content_id"`
	AuthorUserID *int64  `db:"author_user_id" json:"author_user_id"`
	Title        *string `db:"title" json:"title"`
	Topic        *string `db:"topic" json:"topic"`
	ContentBody  *string `db:"content_body" json:"content_body"`
	CreatedAt    *string `db:"created_at" json:"created_at"`
}
