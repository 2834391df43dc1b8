package models

import (
	"time"

	"github.com/veroshealth/intake/internal/intakesrv/db/dberror"
)

/*
   Column   |          Type          | Collation | Nullable |      Default
------------+------------------------+-----------+----------+--------------------
 id         | bigint                 |           | not null | generated identity
 name       | character varying(128) |           | not null |
 email      | character varying(256) |           | not null |
 username   | character varying(64)  |           | not null |
 setor_id   | bigint                 |           | not null |
 created_at | timestamptz            |           | not null | now()
*/

// User model definition
type User struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Username  string    `db:"username" json:"username"`
	SetorID   int64     `db:"setor_id" json:"setor_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

func (u *User) Validate() error {
	if u.Name == "" {
		return dberror.ErrInvalidInput.Msg("name is required")
	}
	if u.Email == "" {
		return dberror.ErrInvalidInput.Msg("email is required")
	}
	if u.Username == "" {
		return dberror.ErrInvalidInput.Msg("username is required")
	}
	if u.SetorID == 0 {
		return dberror.ErrInvalidInput.Msg("setor_id is required")
	}
	return nil
}
