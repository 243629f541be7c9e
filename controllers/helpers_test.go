package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bapi/config"
	"bapi/controllers"
	"bapi/routes"
	"bapi/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewMemory()
	cfg := &config.Config{Env: "test", ResetEnabled: true}

	r := gin.New()
	routes.SetupRoutes(r, cfg, st,
		controllers.NewAuthController(st),
		controllers.NewPostController(st),
		controllers.NewCommentController(st),
	)
	return r
}

func perform(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var raw []byte
	if body != nil {
		raw, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func dataOf(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	data, ok := decode(t, w)["data"].(map[string]any)
	require.True(t, ok, "response data is not an object: %s", w.Body.String())
	return data
}

func messagesOf(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()
	raw, ok := decode(t, w)["message"].([]any)
	require.True(t, ok, "response message is not an array: %s", w.Body.String())

	messages := make([]string, 0, len(raw))
	for _, m := range raw {
		s, ok := m.(string)
		require.True(t, ok)
		messages = append(messages, s)
	}
	return messages
}

func register(t *testing.T, r *gin.Engine) {
	t.Helper()
	w := perform(r, http.MethodPost, "/auth/register", "", gin.H{
		"name":     "John Doe",
		"email":    "john@nest.test",
		"password": "Secret_123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()
	register(t, r)

	w := perform(r, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "john@nest.test",
		"password": "Secret_123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	token, _ := dataOf(t, w)["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func requireUnauthorized(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"success":false,"message":"Unauthorized"}`, w.Body.String())
}

func requireNotFound(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"success":false,"data":null}`, w.Body.String())
}
