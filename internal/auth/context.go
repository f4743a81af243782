package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is where the JWT middleware stores the parsed token.
const ContextKey = "user"

// CallerID resolves the authenticated caller id attached to the request
// context by the JWT middleware.
func CallerID(c echo.Context) (uuid.UUID, error) {
	token, ok := c.Get(ContextKey).(*jwt.Token)
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return id, nil
}
