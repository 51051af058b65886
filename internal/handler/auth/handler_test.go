package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/romidental/reception-api/internal/config"
	"github.com/romidental/reception-api/pkg/auth"
	"github.com/romidental/reception-api/pkg/logger"
	"github.com/romidental/reception-api/pkg/security"
)

func setupLoginRouter(t *testing.T) (*gin.Engine, auth.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := security.NewBcryptHasher(4).Hash("correct-horse")
	require.NoError(t, err)

	tokens := auth.NewJWTService("test-secret", time.Hour)
	handler := NewHandler(config.AdminConfig{
		Username:     "admin",
		PasswordHash: hash,
	}, tokens, logger.NewLogger(nil))

	engine := gin.New()
	handler.RegisterRoutes(engine.Group("/api/v1"))
	return engine, tokens
}

func performLogin(t *testing.T, engine *gin.Engine, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(map[string]string{"username": username, "password": password})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestLogin_Success(t *testing.T) {
	engine, tokens := setupLoginRouter(t)

	w := performLogin(t, engine, "admin", "correct-horse")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)

	subject, err := tokens.ValidateToken(resp.Data.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)
}

func TestLogin_WrongPassword(t *testing.T) {
	engine, _ := setupLoginRouter(t)

	w := performLogin(t, engine, "admin", "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid credentials")
}

func TestLogin_UnknownUser(t *testing.T) {
	engine, _ := setupLoginRouter(t)

	w := performLogin(t, engine, "intruder", "correct-horse")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_MissingFields(t *testing.T) {
	engine, _ := setupLoginRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader([]byte(`{"username":"admin"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
