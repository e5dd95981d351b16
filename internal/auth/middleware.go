package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gymslot/internal/api"
	"gymslot/internal/apperr"
	"gymslot/internal/directory"
)

const (
	ctxUserID    = "user_id"
	ctxUserEmail = "user_email"
	ctxUserRole  = "user_role"
)

func AuthMiddleware(accessTokenSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Authorization header required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid authorization header format"})
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Token is empty"})
			return
		}

		claims, err := ValidateToken(tokenString, accessTokenSecret)
		if err != nil {
			msg := "Invalid or malformed token"
			switch {
			case errors.Is(err, ErrTokenExpired):
				msg = "Token expired"
			case errors.Is(err, ErrInvalidTokenType):
				msg = "Access token required"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: msg})
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxUserEmail, claims.Email)
		c.Set(ctxUserRole, claims.Role)

		c.Next()
	}
}

// RequireRole lets the request through when the caller has any of roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User role not found"})
			return
		}

		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, api.ErrorResponse{Error: "Insufficient permissions"})
	}
}

func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(ctxUserID)
	if !exists {
		return "", false
	}

	id, ok := userID.(string)
	if !ok || id == "" {
		return "", false
	}

	return id, true
}

func GetUserRole(c *gin.Context) (string, bool) {
	role, exists := c.Get(ctxUserRole)
	if !exists {
		return "", false
	}

	r, ok := role.(string)
	return r, ok
}

// ActingFor resolves which member a request is about. Members may only act
// for themselves; an empty id means the caller.
func ActingFor(c *gin.Context, requested string) (string, error) {
	const op = "auth.ActingFor"

	callerID, _ := GetUserID(c)
	role, _ := GetUserRole(c)

	if requested == "" {
		if callerID == "" {
			return "", apperr.Validation(op, "member_id is required")
		}
		return callerID, nil
	}
	if role == string(directory.RoleMember) && requested != callerID {
		return "", apperr.Eligibility(op, "members can only act for themselves")
	}
	return requested, nil
}
