package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bindTarget struct {
	Name     string `json:"name" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,min=1"`
}

func bind(body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var target bindTarget
	if err := c.ShouldBindJSON(&target); err != nil {
		BindError(c, err)
	}
	return w
}

func TestBindError_ListsFields(t *testing.T) {
	w := bind(`{"capacity": 0}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation", resp.Kind)
	require.Len(t, resp.Details, 2)
	assert.Equal(t, "Name", resp.Details[0].Field)
	assert.Equal(t, "Name is required", resp.Details[0].Message)
	assert.Equal(t, "required", resp.Details[1].Tag)
}

func TestBindError_MalformedBody(t *testing.T) {
	w := bind(`{"name": `)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "invalid request")
	assert.Equal(t, "validation", resp.Kind)
}

func TestBindError_MinMessage(t *testing.T) {
	w := bind(`{"name": "Yoga", "capacity": -3}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Details, 1)
	assert.Equal(t, "Capacity must be at least 1", resp.Details[0].Message)
}
