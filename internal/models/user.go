package models

import (
	"database/sql"
	"time"
)

// User is the persisted row of the users table.
type User struct {
	UserID    string         `db:"user_id"`
	Email     string         `db:"email"`
	FirstName sql.NullString `db:"first_name"`
	LastName  sql.NullString `db:"last_name"`
	CreatedAt time.Time      `db:"created_at"`
}
