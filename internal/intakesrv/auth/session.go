// Package auth issues and validates session cookies for the intake service.
// The credential check is a directory lookup by username and email; the
// surrounding deployment sits on an internal network and does not use
// passwords.
package auth

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/veroshealth/intake/internal/common/apperrors"
	"github.com/veroshealth/intake/internal/common/httpx"
	"github.com/veroshealth/intake/internal/intakesrv/config"
	"github.com/veroshealth/intake/internal/intakesrv/intakecommon"
)

var (
	ErrAuth      apperrors.Error = apperrors.New("auth error").SetStatusCode(http.StatusUnauthorized)
	ErrNoSession apperrors.Error = ErrAuth.New("missing or expired session")
)

// newSessionToken mints a signed session token for the user.
func newSessionToken(user *intakecommon.UserContext) (string, error) {
	cfg := config.Config()
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.Username,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(cfg.Session.GetExpirationTimeOrDefault()).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Session.SigningSecret))
}

// parseSessionToken validates a session token and returns the user it was
// issued for.
func parseSessionToken(tokenStr string) (*intakecommon.UserContext, error) {
	cfg := config.Config()
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrNoSession.Msg("unexpected signing method")
		}
		return []byte(cfg.Session.SigningSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return nil, ErrNoSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrNoSession
	}
	username, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	if username == "" {
		return nil, ErrNoSession
	}

	return &intakecommon.UserContext{
		Username: username,
		Email:    email,
	}, nil
}

// SessionMiddleware requires a valid session cookie and loads the user into
// the request context.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(config.Config().Session.CookieName)
		if err != nil {
			httpx.ErrUnAuthorized("missing session").Send(w)
			return
		}

		user, err := parseSessionToken(cookie.Value)
		if err != nil {
			log.Ctx(r.Context()).Info().Err(err).Msg("rejected session token")
			httpx.ErrUnAuthorized("invalid session").Send(w)
			return
		}

		ctx := intakecommon.WithUser(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
