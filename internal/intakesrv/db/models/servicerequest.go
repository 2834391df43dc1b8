package models

import (
	"time"

	"github.com/veroshealth/intake/internal/intakesrv/db/dberror"
)

/*
      Column      |          Type           | Collation | Nullable |      Default
------------------+-------------------------+-----------+----------+--------------------
 id               | bigint                  |           | not null | generated identity
 usuario          | character varying(128)  |           | not null |
 descricao        | character varying(1024) |           | not null |
 data_solicitacao | timestamptz             |           | not null | now()
 status           | character varying(32)   |           | not null | 'Pendente'
*/

// ServiceRequest statuses.
const (
	RequestStatusPending = "Pendente"
	RequestStatusDone    = "Concluida"
)

// ServiceRequest model definition
type ServiceRequest struct {
	ID              int64     `db:"id" json:"id"`
	Usuario         string    `db:"usuario" json:"usuario"`
	Descricao       string    `db:"descricao" json:"descricao"`
	DataSolicitacao time.Time `db:"data_solicitacao" json:"data_solicitacao"`
	Status          string    `db:"status" json:"status"`
}

func (r *ServiceRequest) Validate() error {
	if r.Usuario == "" {
		return dberror.ErrInvalidInput.Msg("usuario is required")
	}
	if r.Descricao == "" {
		return dberror.ErrInvalidInput.Msg("descricao is required")
	}
	return nil
}
