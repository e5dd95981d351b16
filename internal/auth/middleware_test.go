package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymslot/internal/apperr"
)

func TestAuthMiddlewareHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
	}{
		{"Empty header", "", http.StatusUnauthorized},
		{"Invalid format", "Token abc", http.StatusUnauthorized},
		{"Empty token", "Bearer ", http.StatusUnauthorized},
		{"Garbage token", "Bearer abc.def.ghi", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			req := httptest.NewRequest("GET", "/", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			c.Request = req

			handler := AuthMiddleware("secret")
			handler(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, c.IsAborted())
		})
	}
}

func TestAuthMiddlewareSetsIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	token, err := GenerateAccessToken("m1", "alex@example.com", "member", "secret")
	require.NoError(t, err)

	router := gin.New()
	router.GET("/me", AuthMiddleware("secret"), func(c *gin.Context) {
		id, _ := GetUserID(c)
		role, _ := GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "role": role})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"m1","role":"member"}`, w.Body.String())
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		userRole       any
		allowed        []string
		expectedStatus int
	}{
		{"Correct role", "admin", []string{"admin"}, http.StatusOK},
		{"One of several", "training_staff", []string{"admin", "training_staff"}, http.StatusOK},
		{"Missing role", nil, []string{"admin"}, http.StatusUnauthorized},
		{"Wrong role type", 123, []string{"admin"}, http.StatusUnauthorized},
		{"Insufficient role", "member", []string{"admin"}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			if tt.userRole != nil {
				c.Set("user_role", tt.userRole)
			}
			c.Request = httptest.NewRequest("GET", "/", nil)

			handler := RequireRole(tt.allowed...)
			handler(c)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestGetUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		userID   any
		expected string
		ok       bool
	}{
		{"Valid ID", "m42", "m42", true},
		{"Missing ID", nil, "", false},
		{"Wrong type", 42, "", false},
		{"Empty ID", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			if tt.userID != nil {
				c.Set("user_id", tt.userID)
			}
			c.Request = httptest.NewRequest("GET", "/", nil)

			id, ok := GetUserID(c)
			assert.Equal(t, tt.expected, id)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestActingFor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		callerID  string
		role      string
		requested string
		expected  string
		kind      apperr.Kind
	}{
		{"Member defaults to self", "m1", "member", "", "m1", 0},
		{"Member names self", "m1", "member", "m1", "m1", 0},
		{"Member for someone else", "m1", "member", "m2", "", apperr.KindEligibility},
		{"Staff for member", "s1", "training_staff", "m2", "m2", 0},
		{"No caller and no id", "", "admin", "", "", apperr.KindValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			if tt.callerID != "" {
				c.Set("user_id", tt.callerID)
			}
			c.Set("user_role", tt.role)

			id, err := ActingFor(c, tt.requested)
			if tt.kind != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.kind, apperr.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}
}
