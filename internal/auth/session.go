package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"warga-portal-svc/pkg/logger"
)

// SessionCookieName is the cookie carrying the signed session token
const SessionCookieName = "session"

// SessionMaxAge bounds how long a login stays valid. It is enforced twice:
// once through the token's own expiry claim and again against the embedded
// login timestamp, so a mis-issued expiry cannot extend a session.
const SessionMaxAge = 7 * 24 * time.Hour

// ErrEncode is returned when a session token cannot be signed
var ErrEncode = errors.New("failed to encode session token")

// SessionUser represents the authenticated actor carried in the session cookie
type SessionUser struct {
	ID              uint      `json:"id"`
	Email           string    `json:"email"`
	Nama            string    `json:"nama"`
	Role            string    `json:"role"`
	RtAkses         string    `json:"rt_akses"`
	RwAkses         string    `json:"rw_akses"`
	StatusLangganan string    `json:"status_langganan"`
	AkhirLangganan  string    `json:"akhir_langganan"`
	LoginTime       time.Time `json:"login_time"`
}

// sessionClaims is the JWT claim set wrapping a SessionUser
type sessionClaims struct {
	User SessionUser `json:"user"`
	jwt.RegisteredClaims
}

// SessionCodec encodes and decodes signed session tokens
type SessionCodec struct {
	secret []byte
	logger *logger.Logger
}

// NewSessionCodec creates a codec signing with the given secret
func NewSessionCodec(secret string, logger *logger.Logger) *SessionCodec {
	return &SessionCodec{
		secret: []byte(secret),
		logger: logger,
	}
}

// Encode signs the session user into a compact token with a 7-day expiry
func (c *SessionCodec) Encode(user SessionUser) (string, error) {
	if len(c.secret) == 0 {
		return "", fmt.Errorf("%w: missing signing secret", ErrEncode)
	}

	now := time.Now()
	claims := sessionClaims{
		User: user,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionMaxAge)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncode, err)
	}

	return signed, nil
}

// Decode verifies signature, algorithm and expiry. Any failure yields
// (nil, false); callers must treat that the same as an absent session.
func (c *SessionCodec) Decode(tokenString string) (*SessionUser, bool) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		if c.logger != nil {
			c.logger.WithError(err).Debug("Session token rejected")
		}
		return nil, false
	}

	return &claims.User, true
}

// SessionFromRequest resolves the session user from the request cookie.
// Returns nil for absent, garbled, tampered or stale sessions, never an error.
func (c *SessionCodec) SessionFromRequest(ctx *gin.Context) *SessionUser {
	cookie, err := ctx.Cookie(SessionCookieName)
	if err != nil {
		return nil
	}

	user, ok := c.Decode(cookie)
	if !ok {
		return nil
	}

	// Freshness is checked against the login timestamp independently of the
	// token's exp claim.
	if time.Since(user.LoginTime) > SessionMaxAge {
		if c.logger != nil {
			c.logger.WithField("login_time", user.LoginTime).Debug("Session past max age, treating as absent")
		}
		return nil
	}

	return user
}
