package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"task_manager/internal/domain"
	"task_manager/internal/testutil"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "api-test-secret"

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
	redis  *miniredis.Miniredis
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	db := testutil.NewDB(t)
	router := NewRouter(Deps{DB: db, Redis: rdb, JWTSecret: testSecret, JWTTTL: time.Hour})
	return &testServer{router: router, db: db, redis: mr}
}

// do sends a JSON request and decodes the JSON response body
func (s *testServer) do(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w.Code, out
}

// register creates a user through the API and logs in
func (s *testServer) register(t *testing.T, username string) string {
	t.Helper()
	code, body := s.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": username,
		"email":    username + "@x.com",
		"password": "Passw0rd",
	})
	require.Equal(t, http.StatusCreated, code, body)
	return s.login(t, username, "Passw0rd")
}

func (s *testServer) login(t *testing.T, login, password string) string {
	t.Helper()
	code, body := s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"username": login, "password": password})
	require.Equal(t, http.StatusOK, code, body)
	token, ok := body["access_token"].(string)
	require.True(t, ok)
	return token
}

// admin seeds an administrator directly and logs in
func (s *testServer) admin(t *testing.T) string {
	t.Helper()
	testutil.CreateUser(t, s.db, "root", domain.RoleAdmin, "Adm1nPass")
	return s.login(t, "root", "Adm1nPass")
}

func (s *testServer) createTask(t *testing.T, token string, body gin.H) map[string]any {
	t.Helper()
	code, resp := s.do(t, http.MethodPost, "/api/tasks", token, body)
	require.Equal(t, http.StatusCreated, code, resp)
	task, ok := resp["task"].(map[string]any)
	require.True(t, ok)
	return task
}

func taskPath(task map[string]any) string {
	return "/api/tasks/" + jsonID(task)
}

func jsonID(v map[string]any) string {
	raw, _ := json.Marshal(v["id"])
	return string(raw)
}
