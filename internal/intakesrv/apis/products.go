package apis

import (
	"net/http"

	"github.com/veroshealth/intake/internal/common/httpx"
	"github.com/veroshealth/intake/internal/intakesrv/registration"
)

// beginProduct creates a provisional product record and returns the minted
// continuation token. The token also travels to the reviewer out-of-band.
func beginProduct(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	req := &registration.BeginRequest{}
	if err := httpx.GetRequestData(r, req); err != nil {
		return nil, err
	}

	token, err := registration.Begin(ctx, req)
	if err != nil {
		return nil, err
	}

	return &httpx.Response{
		StatusCode: http.StatusCreated,
		Location:   "/products/pending?token=" + token,
		Response:   map[string]string{"token": token},
	}, nil
}

// resumeProduct returns the provisional record for a continuation token.
func resumeProduct(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	token := r.URL.Query().Get("token")
	if token == "" {
		return nil, httpx.ErrMissingToken()
	}

	record, err := registration.Resume(ctx, token)
	if err != nil {
		return nil, err
	}

	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   record,
	}, nil
}

// finalizeProduct validates and writes back the completed record.
func finalizeProduct(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	req := &registration.FinalizeRequest{}
	if err := httpx.GetRequestData(r, req); err != nil {
		return nil, err
	}

	if err := registration.Finalize(ctx, req); err != nil {
		return nil, err
	}

	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   map[string]string{"status": "finalizado"},
	}, nil
}

// listProducts returns every product record.
func listProducts(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	records, err := registration.List(ctx)
	if err != nil {
		return nil, err
	}

	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   records,
	}, nil
}
