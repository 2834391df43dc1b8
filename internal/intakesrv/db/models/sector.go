package models

import (
	"time"

	"github.com/veroshealth/intake/internal/intakesrv/db/dberror"
)

/*
   Column    |          Type          | Collation | Nullable |      Default
-------------+------------------------+-----------+----------+--------------------
 id          | bigint                 |           | not null | generated identity
 nome        | character varying(128) |           | not null |
 responsavel | character varying(128) |           | not null | ''
 created_at  | timestamptz            |           | not null | now()
*/

// Sector model definition
type Sector struct {
	ID          int64     `db:"id" json:"id"`
	Nome        string    `db:"nome" json:"nome"`
	Responsavel string    `db:"responsavel" json:"responsavel"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Validate checks the sector fields. Only nome is required; responsavel is
// optional and stored as given.
func (s *Sector) Validate() error {
	if s.Nome == "" {
		return dberror.ErrInvalidInput.Msg("nome is required")
	}
	return nil
}
