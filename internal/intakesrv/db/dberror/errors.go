package dberror

import (
	"net/http"

	"github.com/veroshealth/intake/internal/common/apperrors"
)

var (
	ErrDatabase       apperrors.Error = apperrors.New("db error").SetStatusCode(http.StatusInternalServerError)
	ErrAlreadyExists  apperrors.Error = ErrDatabase.New("already exists").SetStatusCode(http.StatusConflict)
	ErrNotFound       apperrors.Error = ErrDatabase.New("not found").SetStatusCode(http.StatusNotFound)
	ErrInvalidInput   apperrors.Error = ErrDatabase.New("invalid input").SetStatusCode(http.StatusBadRequest)
	ErrMissingToken   apperrors.Error = ErrInvalidInput.New("missing token").SetStatusCode(http.StatusBadRequest)
	ErrAmbiguousToken apperrors.Error = ErrDatabase.New("token matches multiple records").SetStatusCode(http.StatusInternalServerError)
)
