package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"droscher.com/BeerHall/configs"
)

const TokenCookie = "beerhall_token"

var ErrUnauthenticated = errors.New("unauthenticated")

type UserKey struct{}

// Claims identify an administrator by email.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type Manager struct {
	conf   configs.Auth
	logger *zap.Logger
}

func NewAuthManager(conf configs.Auth, logger *zap.Logger) *Manager {
	return &Manager{conf: conf, logger: logger}
}

// UserFromContext returns the email of the authenticated administrator.
func UserFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserKey{}).(string)

	return email, ok
}

// IssueToken signs a token for email that is valid from now for the configured TTL.
func (a *Manager) IssueToken(email string, now time.Time) (string, error) {
	if !a.conf.Enabled() {
		return "", fmt.Errorf("%w: auth secret key is not set", configs.ErrConfiguration)
	}

	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.conf.TokenTTL)),
		},
	}

	if len(a.conf.Domain) > 0 {
		claims.Issuer = a.conf.Domain
	}

	if len(a.conf.Audience) > 0 {
		claims.Audience = jwt.ClaimStrings{a.conf.Audience}
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(a.conf.SecretKey))
}

// Middleware rejects requests without a valid token. Without a secret key
// every request is let through.
func (a *Manager) Middleware(next http.Handler) http.Handler {
	if !a.conf.Enabled() {
		a.logger.Warn("authentication disabled, no secret key configured")

		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := r.URL.Query().Get("token"); len(token) > 0 {
			a.exchangeQueryToken(w, r, token)

			return
		}

		accessToken, err := a.extractToken(r)
		if err != nil {
			a.unauthorized(w, err)

			return
		}

		email, err := a.validate(accessToken)
		if err != nil {
			a.unauthorized(w, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), UserKey{}, email)))
	})
}

// exchangeQueryToken moves a token handed out by link into the cookie and
// redirects to the same address without it.
func (a *Manager) exchangeQueryToken(w http.ResponseWriter, r *http.Request, token string) {
	if _, err := a.validate(token); err != nil {
		a.unauthorized(w, err)

		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(a.conf.TokenTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	target := *r.URL
	query := target.Query()
	query.Del("token")
	target.RawQuery = query.Encode()

	http.Redirect(w, r, target.RequestURI(), http.StatusSeeOther)
}

func (a *Manager) validate(accessToken string) (string, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected signing method: %v", ErrUnauthenticated, token.Header["alg"])
		}

		return []byte(a.conf.SecretKey), nil
	}

	claims := &Claims{}

	token, err := jwt.ParseWithClaims(accessToken, claims, keyFunc)
	if err != nil {
		a.logger.Error("error parsing token", zap.Error(err))

		return "", fmt.Errorf("%w: error parsing token: %w", ErrUnauthenticated, err)
	}

	if !token.Valid {
		a.logger.Error("invalid token", zap.Any("claims", claims))

		return "", fmt.Errorf("%w: invalid token", ErrUnauthenticated)
	}

	if len(a.conf.Audience) > 0 && !claims.VerifyAudience(a.conf.Audience, true) {
		return "", fmt.Errorf("%w: token is not meant for %s", ErrUnauthenticated, a.conf.Audience)
	}

	if len(a.conf.Domain) > 0 && !claims.VerifyIssuer(a.conf.Domain, true) {
		return "", fmt.Errorf("%w: token was not issued by %s", ErrUnauthenticated, a.conf.Domain)
	}

	if len(claims.Email) == 0 {
		a.logger.Error("unable to get user email from token", zap.Any("claims", claims))

		return "", fmt.Errorf("%w: unable to get user email from token", ErrUnauthenticated)
	}

	return claims.Email, nil
}

func (a *Manager) extractToken(r *http.Request) (string, error) {
	authorization := r.Header.Get("Authorization")
	if len(authorization) == 0 {
		cookie, err := r.Cookie(TokenCookie)
		if err != nil || len(cookie.Value) == 0 {
			return "", fmt.Errorf("%w: no authorization header or token cookie found", ErrUnauthenticated)
		}

		return cookie.Value, nil
	}

	prefix := "Bearer "
	if !strings.HasPrefix(authorization, prefix) {
		prefix = "bearer "
	}

	token, found := strings.CutPrefix(authorization, prefix)
	if !found {
		return "", fmt.Errorf("%w: authorization format must be Bearer {token}", ErrUnauthenticated)
	}

	return token, nil
}

func (a *Manager) unauthorized(w http.ResponseWriter, err error) {
	a.logger.Warn("rejected request", zap.Error(err))

	w.Header().Set("WWW-Authenticate", `Bearer realm="beerhall"`)
	http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
}
