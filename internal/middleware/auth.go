package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Nour-Ali/NodeBB-nour/internal/utils/jwt"
	"github.com/Nour-Ali/NodeBB-nour/pkg/apperrors"
	"github.com/Nour-Ali/NodeBB-nour/pkg/response"
)

const uidKey = "uid"

// AuthMiddleware resolves the caller's uid from a bearer token.
type AuthMiddleware struct {
	jwtSecret string
	logger    *slog.Logger
}

// NewAuthMiddleware creates an auth middleware. With an empty secret every
// request is anonymous and tokens are ignored.
func NewAuthMiddleware(jwtSecret string, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{jwtSecret: jwtSecret, logger: logger}
}

// Optional stores the caller's uid when a valid token is present. Requests
// without a token continue anonymously; a bad token is rejected.
func (m *AuthMiddleware) Optional() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.jwtSecret == "" {
			c.Next()
			return
		}

		token, present := bearerToken(c)
		if !present {
			c.Next()
			return
		}

		if !m.authenticate(c, token) {
			return
		}
		c.Next()
	}
}

// Require rejects requests without a valid token.
func (m *AuthMiddleware) Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetUIDFromContext(c); ok {
			c.Next()
			return
		}

		token, present := bearerToken(c)
		if !present || m.jwtSecret == "" {
			m.reject(c, "No token provided", nil)
			return
		}

		if !m.authenticate(c, token) {
			return
		}
		c.Next()
	}
}

func (m *AuthMiddleware) authenticate(c *gin.Context, token string) bool {
	claims, err := jwt.VerifyToken(token, m.jwtSecret)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrExpiredToken):
			m.reject(c, "Token expired", err)
		default:
			m.reject(c, "Invalid token", err)
		}
		return false
	}

	uid := strings.TrimSpace(claims.UID)
	if uid == "" {
		m.reject(c, "Invalid token payload", nil)
		return false
	}

	c.Set(uidKey, uid)
	return true
}

func (m *AuthMiddleware) reject(c *gin.Context, message string, cause error) {
	response.FromError(m.logger, c, apperrors.New(message, http.StatusUnauthorized, apperrors.ErrUnauthorized, cause))
	c.Abort()
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	return token, token != ""
}

// GetUIDFromContext returns the authenticated uid, if any.
func GetUIDFromContext(c *gin.Context) (string, bool) {
	value, exists := c.Get(uidKey)
	if !exists {
		return "", false
	}
	uid, ok := value.(string)
	return uid, ok && uid != ""
}
