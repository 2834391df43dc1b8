package apperrors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorChaining(t *testing.T) {
	ErrBase := New("store error")
	assert.Equal(t, "store error", ErrBase.Error())
	assert.Equal(t, "msg", ErrBase.New("msg").Error())
	assert.ErrorIs(t, ErrBase, ErrBase)

	ErrDerived := ErrBase.New("record not found")
	assert.Equal(t, "record not found", ErrDerived.Error())
	assert.ErrorIs(t, ErrDerived, ErrBase)

	ErrOther := New("notify error")
	ErrOtherMsg := ErrOther.Msg("delivery rejected")
	ErrWrapped := ErrDerived.Err(ErrOtherMsg)
	assert.Equal(t, "record not found", ErrWrapped.Error())
	assert.ErrorIs(t, ErrWrapped, ErrBase)
	assert.ErrorIs(t, ErrWrapped, ErrDerived)
	assert.ErrorIs(t, ErrWrapped, ErrOther)
	assert.ErrorIs(t, ErrWrapped, ErrOtherMsg)

	err := errors.New("driver: bad connection")
	ErrWrapped = ErrDerived.Err(err)
	assert.Equal(t, "record not found", ErrWrapped.Error())
	assert.ErrorIs(t, ErrWrapped, ErrBase)
	assert.ErrorIs(t, ErrWrapped, err)

	ErrWrapped = ErrDerived.MsgErr("lookup failed", err)
	assert.Equal(t, "lookup failed", ErrWrapped.Error())
	assert.ErrorIs(t, ErrWrapped, ErrBase)
	assert.ErrorIs(t, ErrWrapped, err)

	goErrA := fmt.Errorf("first cause")
	goErrB := fmt.Errorf("second cause")
	ErrMulti := ErrDerived.Err(goErrA, goErrB)
	assert.Equal(t, "record not found", ErrMulti.Error())
	assert.ErrorIs(t, ErrMulti, goErrA)
	assert.ErrorIs(t, ErrMulti, goErrB)
}

func TestErrorStatusCode(t *testing.T) {
	ErrBase := New("workflow error").SetStatusCode(http.StatusInternalServerError)
	assert.Equal(t, http.StatusInternalServerError, ErrBase.StatusCode())

	// Derived errors inherit the status code until overridden.
	ErrChild := ErrBase.New("missing token")
	assert.Equal(t, http.StatusInternalServerError, ErrChild.StatusCode())

	ErrChild = ErrChild.SetStatusCode(http.StatusBadRequest)
	assert.Equal(t, http.StatusBadRequest, ErrChild.StatusCode())
	assert.Equal(t, http.StatusInternalServerError, ErrBase.StatusCode())
	assert.ErrorIs(t, ErrChild, ErrBase)
}

func TestErrorAll(t *testing.T) {
	ErrBase := New("validation failed")
	wrapped := ErrBase.Err(fmt.Errorf("codigo is required"), fmt.Errorf("descricao is required")).SetExpandError(true)
	all := wrapped.ErrorAll()
	assert.Contains(t, all, "validation failed")
	assert.Contains(t, all, "codigo is required")
	assert.Contains(t, all, "descricao is required")

	// Without expansion only the primary message is rendered.
	plain := New("validation failed").Err(fmt.Errorf("codigo is required"))
	assert.Equal(t, "validation failed", plain.ErrorAll())
}

func TestPrefixSuffix(t *testing.T) {
	err := New("token not found").Prefix("finalize").Suffix("op=update")
	assert.Equal(t, "finalize: token not found: op=update", err.Error())
}
