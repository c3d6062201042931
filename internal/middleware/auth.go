package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/EricoBruner/drivent-back-fourth-sprint/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const userIDKey = "userId"

type Claims struct {
	UserID int `json:"userId"`
	jwt.RegisteredClaims
}

type sessionAuthenticator interface {
	Authenticate(ctx context.Context, userID int, token string) error
}

// Auth accepts an HS256 bearer token whose session still exists and puts
// the user id into the context.
func Auth(secret string, sessions sessionAuthenticator, log logger.Logger) ginext.HandlerFunc {
	keyFunc := func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}

	return func(c *ginext.Context) {
		raw, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || raw == "" {
			unauthorized(c)
			return
		}

		claims := &Claims{}
		tok, err := jwt.ParseWithClaims(raw, claims, keyFunc)
		if err != nil || !tok.Valid {
			unauthorized(c)
			return
		}

		if err = sessions.Authenticate(c.Request.Context(), claims.UserID, raw); err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				unauthorized(c)
				return
			}
			log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "session check failed",
				logger.Int("user_id", claims.UserID),
				logger.String("error", err.Error()),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				ginext.H{"error": "internal server error"},
			)
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Next()
	}
}

// UserID returns the id stored by Auth.
func UserID(c *ginext.Context) (int, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok && id > 0
}

func unauthorized(c *ginext.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "unauthorized"})
}
