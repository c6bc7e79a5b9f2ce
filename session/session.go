// Package session issues and verifies the signed admin session that binds a
// browser to exactly one hotel.
package session

import (
	"context"
	"net/http"
	"time"

	"qrdine/apperr"
	"qrdine/httpx"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	CookieName = "qrdine_admin"
	issuer     = "qrdine"
)

// Revoker remembers explicitly invalidated tokens until they would have expired.
type Revoker interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type Claims struct {
	HotelID string `json:"hotel_id"`
	jwt.RegisteredClaims
}

type Manager struct {
	secret  []byte
	ttl     time.Duration
	secure  bool
	revoker Revoker
	now     func() time.Time
}

func NewManager(secret string, ttl time.Duration, secureCookie bool, revoker Revoker) *Manager {
	return &Manager{
		secret:  []byte(secret),
		ttl:     ttl,
		secure:  secureCookie,
		revoker: revoker,
		now:     time.Now,
	}
}

func (m *Manager) Issue(hotelID string) (string, error) {
	now := m.now()
	claims := Claims{
		HotelID: hotelID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   hotelID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Parse verifies the signature, expiry and revocation state of token.
func (m *Manager) Parse(ctx context.Context, token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(m.now))
	if err != nil || !parsed.Valid || claims.HotelID == "" {
		return nil, apperr.Unauthorized("invalid session")
	}

	if m.revoker != nil {
		revoked, err := m.revoker.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		if revoked {
			return nil, apperr.Unauthorized("session has been signed out")
		}
	}
	return claims, nil
}

// HotelID returns the hotel bound to the request's session cookie.
func (m *Manager) HotelID(r *http.Request) (string, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", apperr.Unauthorized("unauthorized")
	}
	claims, err := m.Parse(r.Context(), cookie.Value)
	if err != nil {
		return "", err
	}
	return claims.HotelID, nil
}

// Login issues a session for hotelID and sets it as an HTTP-only cookie.
func (m *Manager) Login(w http.ResponseWriter, hotelID string) error {
	token, err := m.Issue(hotelID)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(m.ttl.Seconds()),
	})
	return nil
}

// Logout revokes the request's session, if any, and clears the cookie.
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) error {
	var revokeErr error
	if cookie, err := r.Cookie(CookieName); err == nil && m.revoker != nil {
		if claims, err := m.Parse(r.Context(), cookie.Value); err == nil && claims.ExpiresAt != nil {
			revokeErr = m.revoker.Revoke(r.Context(), claims.ID, claims.ExpiresAt.Time)
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	return revokeErr
}

type contextKey struct{}

// Require rejects requests without a valid session and stores the session's
// hotel id in the request context.
func (m *Manager) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hotelID, err := m.HotelID(r)
		if err != nil {
			httpx.WriteError(w, nil, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithHotelID(r.Context(), hotelID)))
	})
}

func WithHotelID(ctx context.Context, hotelID string) context.Context {
	return context.WithValue(ctx, contextKey{}, hotelID)
}

// HotelIDFromContext returns the hotel stored by Require.
func HotelIDFromContext(ctx context.Context) (string, error) {
	hotelID, ok := ctx.Value(contextKey{}).(string)
	if !ok || hotelID == "" {
		return "", apperr.Unauthorized("unauthorized")
	}
	return hotelID, nil
}
