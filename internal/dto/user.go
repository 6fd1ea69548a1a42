package dto

// UserRequest is the body of user create and update. The credential arrives in plain text under
// the column name and is hashed before it reaches the store.
type UserRequest struct {
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Email        *string `json:"email"`
	Password     *string `json:"hashed_password"`
	Role         *string `json:"user_role"`
	AddressLine1 *string `json:"address_line1"`
	City         *string `json:"city"`
}

// UserInput is the fixed column set written by user inserts and updates.
type UserInput struct {
	FirstName    *string `db:"first_name"`
	LastName     *string `db:"last_name"`
	Email        *string `db:"email"`
	PasswordHash *string `db:"hashed_password"`
	Role         *string `db:"user_role"`
	AddressLine1 *string `db:"address_line1"`
	City         *string `db:"city"`
}

// UserCreated is returned after a user insert.
type UserCreated struct {
	UserID  int64  `json:"user_id"`
	Message string `json:"message"`
}
