package registration

import (
	"github.com/go-playground/validator/v10"

	"github.com/veroshealth/intake/internal/intakesrv/db/models"
)

// ProductFields carries every descriptive field of a product submission. The
// attendance selector is a single string; the typed facet set is built from
// it at the workflow boundary and the raw selector travels no further.
// The validate tags express the finalize-phase requirement; begin accepts
// the same shape without validating it.
type ProductFields struct {
	Codigo                  string  `json:"codigo" validate:"required"`
	Descricao               string  `json:"descricao" validate:"required"`
	DescResumida            string  `json:"desc_resumida" validate:"required"`
	Kit                     string  `json:"kit"`
	Consignado              string  `json:"consignado"`
	Opme                    string  `json:"opme"`
	Especie                 string  `json:"especie"`
	Classe                  string  `json:"classe"`
	SubClasse               string  `json:"sub_classe"`
	CurvaABC                string  `json:"curva_abc"`
	Lote                    string  `json:"lote"`
	Serie                   string  `json:"serie"`
	RegistroAnvisa          string  `json:"registro_anvisa"`
	Etiqueta                string  `json:"etiqueta"`
	Medicamento             string  `json:"medicamento"`
	Carater                 string  `json:"carater"`
	Atividade               string  `json:"atividade"`
	ProcedimentoFaturamento string  `json:"procedimento_faturamento"`
	AutoCusto               string  `json:"auto_custo"`
	Aplicacao               string  `json:"aplicacao"`
	Valor                   float64 `json:"valor"`
	Repasse                 string  `json:"repasse"`
	TipoAtendimento         string  `json:"tipo_atendimento"`
	Observacao              string  `json:"observacao"`
}

// BeginRequest is the payload for the begin phase. Nothing is required
// beyond a shape sufficient to construct a record; the required-field policy
// is enforced at finalize.
type BeginRequest struct {
	ProductFields
}

// FinalizeRequest is the payload for the finalize phase.
type FinalizeRequest struct {
	Token string `json:"token"`
	ProductFields
}

// Record is the workflow's view of a stored product, returned by Resume.
type Record struct {
	ID    int64  `json:"id"`
	Token string `json:"token"`
	ProductFields
	Atendimento models.AttendanceType `json:"atendimento"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())
