package dto

// EducationalContentRequest is the body of educational content create and update.
type EducationalContentRequest struct {
	AuthorUserID *int64  `json:"author_user_id" db:"author_user_id"`
	Title        *string `json:"title" db:"title"`
	Topic        *string `json:"topic" db:"topic"`
	ContentBody  *string `json:"content_body" db:"content_body"`
	CreatedAt    *string `json:"created_at" db:"created_at"`
}

// EducationalContentCreated is returned after an educational content insert.
type EducationalContentCreated struct {
	ContentID int64  `json:"content_id"`
	Message   string `json:"message"`
}
