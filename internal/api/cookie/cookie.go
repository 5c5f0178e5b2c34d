// Package cookie carries the opaque session token to the browser in a signed
// cookie. The cookie never holds claims; it only proves the token was issued
// by this server.
package cookie

import (
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Name is the session cookie name.
const Name = "clinic_session"

var ErrInvalidCookie = errors.New("invalid session cookie")

// Codec signs session tokens into cookie values and verifies them back.
type Codec struct {
	secret []byte
	secure bool
}

func NewCodec(secret []byte, secure bool) *Codec {
	return &Codec{secret: secret, secure: secure}
}

// RandomSecret returns a 32-byte signing key for processes started without
// a configured secret.
func RandomSecret() ([]byte, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("generate cookie secret: %w", err)
	}
	return b, nil
}

// Encode wraps token in an HS256 JWT whose jti is the token.
func (c *Codec) Encode(token string) (string, error) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:       token,
		IssuedAt: jwt.NewNumericDate(time.Now()),
	}).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign session cookie: %w", err)
	}
	return signed, nil
}

// Decode verifies value and returns the session token it carries.
func (c *Codec) Decode(value string) (string, error) {
	var claims jwt.RegisteredClaims
	tkn, err := jwt.ParseWithClaims(value, &claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tkn.Valid || claims.ID == "" {
		return "", ErrInvalidCookie
	}
	return claims.ID, nil
}

// Set writes the session cookie for token.
func (c *Codec) Set(ctx echo.Context, token string) error {
	value, err := c.Encode(token)
	if err != nil {
		return err
	}
	ctx.SetCookie(c.cookie(value, 0))
	return nil
}

// Clear expires the session cookie.
func (c *Codec) Clear(ctx echo.Context) {
	ctx.SetCookie(c.cookie("", -1))
}

// Read returns the session token of the request, or false when the cookie is
// missing or fails verification.
func (c *Codec) Read(ctx echo.Context) (string, bool) {
	ck, err := ctx.Cookie(Name)
	if err != nil || ck.Value == "" {
		return "", false
	}
	token, err := c.Decode(ck.Value)
	if err != nil {
		return "", false
	}
	return token, true
}

func (c *Codec) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     Name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
