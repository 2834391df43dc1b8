package models

import (
	"encoding/json"

	"github.com/jackc/pgtype"

	"github.com/veroshealth/intake/internal/intakesrv/db/dberror"
)

// AttendanceType records which care settings a product applies to. Exactly
// one flag is set when built from a selector; an empty selector leaves all
// flags false.
type AttendanceType struct {
	PS          bool `json:"ps"`
	Ambulatorio bool `json:"ambulatorio"`
	Externo     bool `json:"externo"`
	Internacao  bool `json:"internacao"`
	Todos       bool `json:"todos"`
}

// AttendanceFromSelector maps a form selector value to its facet set.
func AttendanceFromSelector(selector string) AttendanceType {
	return AttendanceType{
		PS:          selector == "ps",
		Ambulatorio: selector == "ambulatorio",
		Externo:     selector == "externo",
		Internacao:  selector == "internacao",
		Todos:       selector == "todos",
	}
}

// Selector returns the form selector value for the facet set, or "" when no
// flag is set.
func (a AttendanceType) Selector() string {
	switch {
	case a.PS:
		return "ps"
	case a.Ambulatorio:
		return "ambulatorio"
	case a.Externo:
		return "externo"
	case a.Internacao:
		return "internacao"
	case a.Todos:
		return "todos"
	}
	return ""
}

// ToJSONB serializes the facet set for storage.
func (a AttendanceType) ToJSONB() (pgtype.JSONB, error) {
	data, err := json.Marshal(a)
	if err != nil {
		return pgtype.JSONB{Status: pgtype.Null}, dberror.ErrInvalidInput.Msg("unable to serialize attendance type").Err(err)
	}
	return pgtype.JSONB{Bytes: data, Status: pgtype.Present}, nil
}

// AttendanceFromJSONB deserializes a stored facet set. A null column yields
// the zero value.
func AttendanceFromJSONB(j pgtype.JSONB) (AttendanceType, error) {
	var a AttendanceType
	if j.Status != pgtype.Present {
		return a, nil
	}
	if err := json.Unmarshal(j.Bytes, &a); err != nil {
		return a, dberror.ErrDatabase.Msg("unable to parse stored attendance type").Err(err)
	}
	return a, nil
}
