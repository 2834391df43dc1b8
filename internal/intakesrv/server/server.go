package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	"github.com/veroshealth/intake/internal/common/httpx"
	"github.com/veroshealth/intake/internal/common/logtrace"
	commonmiddleware "github.com/veroshealth/intake/internal/common/middleware"
	"github.com/veroshealth/intake/internal/intakesrv/apis"
	"github.com/veroshealth/intake/internal/intakesrv/auth"
	"github.com/veroshealth/intake/internal/intakesrv/config"
	"github.com/veroshealth/intake/internal/intakesrv/db"
	"github.com/veroshealth/intake/internal/intakesrv/intakecommon"
)

type IntakeServer struct {
	Router *chi.Mux
}

func CreateNewServer() (*IntakeServer, error) {
	s := &IntakeServer{}
	s.Router = chi.NewRouter()
	return s, nil
}

func (s *IntakeServer) MountHandlers() {
	s.Router.Use(commonmiddleware.RequestLogger)
	s.Router.Use(commonmiddleware.PanicHandler)
	s.Router.Use(commonmiddleware.SetTimeout(30 * time.Second))
	s.Router.Use(limitRequestBody)
	s.Router.Use(db.LoadDBMiddleware)
	if config.Config().HandleCORS {
		s.Router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{config.Config().CORSOrigin},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}
	s.mountResourceHandlers(s.Router)
	if logtrace.IsTraceEnabled() {
		fmt.Println("Routes in intake router")
		walkFunc := func(method string, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
			fmt.Printf("%s %s\n", method, route)
			return nil
		}
		if err := chi.Walk(s.Router, walkFunc); err != nil {
			fmt.Printf("Logging err: %s\n", err.Error())
		}
	}
}

func limitRequestBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, config.Config().MaxRequestBodySize)
		}
		next.ServeHTTP(w, r)
	})
}

func (s *IntakeServer) mountResourceHandlers(r chi.Router) {
	apis.Router(r)
	r.Route("/auth", func(r chi.Router) {
		auth.Router(r)
	})
	r.Get("/version", s.getVersion)
	r.Get("/ready", s.getReadiness)
}

type GetVersionRsp struct {
	ServerVersion string `json:"serverVersion"`
	ApiVersion    string `json:"apiVersion"`
}

func (s *IntakeServer) getVersion(w http.ResponseWriter, r *http.Request) {
	log.Ctx(r.Context()).Debug().Msg("GetVersion")
	rsp := &GetVersionRsp{
		ServerVersion: "Veros Intake Server: " + intakecommon.ServerVersion,
		ApiVersion:    intakecommon.ApiVersion,
	}
	httpx.SendJsonRsp(r.Context(), w, http.StatusOK, rsp)
}

func (s *IntakeServer) getReadiness(w http.ResponseWriter, r *http.Request) {
	log.Ctx(r.Context()).Debug().Msg("Readiness check")

	// Check if we can get a database connection
	ctx, err := db.ConnCtx(r.Context())
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Database connection failed during readiness check")
		httpx.SendJsonRsp(r.Context(), w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  "database connection failed",
		})
		return
	}
	defer db.DB(ctx).Close(ctx)

	httpx.SendJsonRsp(r.Context(), w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}
