package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybernest/cybernest/utils"
)

func performAuth(t *testing.T, header string) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		ctx.Request.Header.Set("Authorization", header)
	}
	AuthRequired()(ctx)
	return w, ctx
}

func TestAuthRequired_MissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	w, ctx := performAuth(t, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.True(t, ctx.IsAborted())
}

func TestAuthRequired_BadScheme(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	w, _ := performAuth(t, "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequired_InvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	w, _ := performAuth(t, "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequired_ValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := utils.GenerateToken(42, "pat@example.com", time.Hour)
	require.NoError(t, err)

	w, ctx := performAuth(t, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, ctx.IsAborted())

	id, ok := UserID(ctx)
	require.True(t, ok)
	assert.Equal(t, uint(42), id)
}
