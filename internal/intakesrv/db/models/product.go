package models

import (
	"time"

	"github.com/jackc/pgtype"

	"github.com/veroshealth/intake/internal/intakesrv/db/dberror"
)

/*
         Column           |          Type           | Collation | Nullable |      Default
--------------------------+-------------------------+-----------+----------+--------------------
 id                       | bigint                  |           | not null | generated identity
 codigo                   | character varying(64)   |           | not null | ''
 descricao                | character varying(1024) |           | not null | ''
 desc_resumida            | character varying(256)  |           | not null | ''
 kit                      | character varying(16)   |           | not null | ''
 consignado               | character varying(16)   |           | not null | ''
 opme                     | character varying(16)   |           | not null | ''
 especie                  | character varying(64)   |           | not null | ''
 classe                   | character varying(64)   |           | not null | ''
 sub_classe               | character varying(64)   |           | not null | ''
 curva_abc                | character varying(16)   |           | not null | ''
 lote                     | character varying(64)   |           | not null | ''
 serie                    | character varying(64)   |           | not null | ''
 registro_anvisa          | character varying(64)   |           | not null | ''
 etiqueta                 | character varying(16)   |           | not null | ''
 medicamento              | character varying(64)   |           | not null | ''
 carater                  | character varying(64)   |           | not null | ''
 atividade                | character varying(64)   |           | not null | ''
 procedimento_faturamento | character varying(128)  |           | not null | ''
 token                    | character varying(64)   |           | not null |
 auto_custo               | character varying(16)   |           | not null | ''
 aplicacao                | character varying(64)   |           | not null | ''
 valor                    | double precision        |           | not null | 0
 repasse                  | character varying(16)   |           | not null | ''
 tipo_atendimento         | jsonb                   |           |          |
 observacao               | text                    |           | not null | ''
 created_at               | timestamptz             |           | not null | now()
 updated_at               | timestamptz             |           | not null | now()
*/

// Product model definition. A product is pending until its required fields
// are written by the finalize phase; there is no separate status column.
type Product struct {
	ID                      int64        `db:"id"`
	Codigo                  string       `db:"codigo"`
	Descricao               string       `db:"descricao"`
	DescResumida            string       `db:"desc_resumida"`
	Kit                     string       `db:"kit"`
	Consignado              string       `db:"consignado"`
	Opme                    string       `db:"opme"`
	Especie                 string       `db:"especie"`
	Classe                  string       `db:"classe"`
	SubClasse               string       `db:"sub_classe"`
	CurvaABC                string       `db:"curva_abc"`
	Lote                    string       `db:"lote"`
	Serie                   string       `db:"serie"`
	RegistroAnvisa          string       `db:"registro_anvisa"`
	Etiqueta                string       `db:"etiqueta"`
	Medicamento             string       `db:"medicamento"`
	Carater                 string       `db:"carater"`
	Atividade               string       `db:"atividade"`
	ProcedimentoFaturamento string       `db:"procedimento_faturamento"`
	Token                   string       `db:"token"`
	AutoCusto               string       `db:"auto_custo"`
	Aplicacao               string       `db:"aplicacao"`
	Valor                   float64      `db:"valor"`
	Repasse                 string       `db:"repasse"`
	Atendimento             pgtype.JSONB `db:"tipo_atendimento"`
	Observacao              string       `db:"observacao"`
	CreatedAt               time.Time    `db:"created_at"`
	UpdatedAt               time.Time    `db:"updated_at"`
}

func (p *Product) Validate() error {
	if p.Token == "" {
		return dberror.ErrMissingToken.Msg("token is required")
	}
	return nil
}
