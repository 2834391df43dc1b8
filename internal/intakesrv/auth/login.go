package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/veroshealth/intake/internal/common/httpx"
	"github.com/veroshealth/intake/internal/intakesrv/config"
	"github.com/veroshealth/intake/internal/intakesrv/db"
	"github.com/veroshealth/intake/internal/intakesrv/db/dberror"
	"github.com/veroshealth/intake/internal/intakesrv/intakecommon"
)

type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type loginResponse struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Router registers the login and logout endpoints.
func Router(r chi.Router) chi.Router {
	r.Post("/login", loginHandler)
	r.Post("/logout", logoutHandler)
	return r
}

func loginHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := &loginRequest{}
	if err := httpx.GetRequestData(r, req); err != nil {
		if herr, ok := err.(*httpx.Error); ok {
			herr.Send(w)
		} else {
			httpx.ErrUnableToParseReqData().Send(w)
		}
		return
	}

	user, dbErr := db.DB(ctx).GetUserByLogin(ctx, req.Username, req.Email)
	if dbErr != nil {
		if errors.Is(dbErr, dberror.ErrNotFound) || errors.Is(dbErr, dberror.ErrInvalidInput) {
			httpx.ErrUnAuthorized("invalid username or email").Send(w)
			return
		}
		log.Ctx(ctx).Error().Err(dbErr).Msg("login lookup failed")
		httpx.ErrApplicationError("unable to service request at this time").Send(w)
		return
	}

	uc := &intakecommon.UserContext{
		Username: user.Username,
		Email:    user.Email,
	}
	token, err := newSessionToken(uc)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to mint session token")
		httpx.ErrApplicationError("unable to service request at this time").Send(w)
		return
	}

	cfg := config.Config()
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.Session.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(cfg.Session.GetExpirationTimeOrDefault()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	rsp := &loginResponse{
		Name:     user.Name,
		Username: user.Username,
		Email:    user.Email,
	}
	httpx.SendJsonRsp(ctx, w, http.StatusOK, rsp)
}

func logoutHandler(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     config.Config().Session.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	})
	w.WriteHeader(http.StatusNoContent)
}
