package registration

import (
	"net/http"

	"github.com/veroshealth/intake/internal/common/apperrors"
)

var (
	ErrRegistration    apperrors.Error = apperrors.New("registration error").SetStatusCode(http.StatusInternalServerError)
	ErrValidation      apperrors.Error = ErrRegistration.New("missing or invalid required fields").SetStatusCode(http.StatusBadRequest)
	ErrMissingToken    apperrors.Error = ErrRegistration.New("token is required").SetStatusCode(http.StatusBadRequest)
	ErrNotFound        apperrors.Error = ErrRegistration.New("pending product not found").SetStatusCode(http.StatusNotFound)
	ErrPersistence     apperrors.Error = ErrRegistration.New("unable to store product record").SetStatusCode(http.StatusInternalServerError)
	ErrTokenGeneration apperrors.Error = ErrRegistration.New("unable to generate continuation token").SetStatusCode(http.StatusInternalServerError)
)
