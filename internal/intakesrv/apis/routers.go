package apis

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/veroshealth/intake/internal/common/httpx"
	"github.com/veroshealth/intake/internal/intakesrv/auth"
)

type handlerParam struct {
	Method  string
	Path    string
	Handler httpx.RequestHandler
}

// sessionHandlers are the routes requiring a logged-in user: product
// submission and the directory endpoints.
var sessionHandlers = []handlerParam{
	{
		Method:  http.MethodPost,
		Path:    "/products",
		Handler: beginProduct,
	},
	{
		Method:  http.MethodGet,
		Path:    "/products",
		Handler: listProducts,
	},
	{
		Method:  http.MethodPost,
		Path:    "/sectors",
		Handler: createSector,
	},
	{
		Method:  http.MethodGet,
		Path:    "/sectors",
		Handler: listSectors,
	},
	{
		Method:  http.MethodPost,
		Path:    "/users",
		Handler: createUser,
	},
	{
		Method:  http.MethodGet,
		Path:    "/users",
		Handler: listUsers,
	},
	{
		Method:  http.MethodPost,
		Path:    "/requests",
		Handler: createServiceRequest,
	},
	{
		Method:  http.MethodGet,
		Path:    "/requests",
		Handler: listServiceRequests,
	},
}

// tokenHandlers are reachable with nothing but the continuation token; the
// reviewer completing a record follows an emailed link and has no session.
var tokenHandlers = []handlerParam{
	{
		Method:  http.MethodGet,
		Path:    "/products/pending",
		Handler: resumeProduct,
	},
	{
		Method:  http.MethodPost,
		Path:    "/products/finalize",
		Handler: finalizeProduct,
	},
}

// Router registers the API endpoints. Session-scoped routes go through the
// auth middleware; token-scoped routes are guarded by the token itself.
func Router(r chi.Router) chi.Router {
	r.Group(func(r chi.Router) {
		for _, handler := range tokenHandlers {
			r.Method(handler.Method, handler.Path, httpx.WrapHttpRsp(handler.Handler))
		}
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.SessionMiddleware)
		for _, handler := range sessionHandlers {
			r.Method(handler.Method, handler.Path, httpx.WrapHttpRsp(handler.Handler))
		}
	})
	return r
}
