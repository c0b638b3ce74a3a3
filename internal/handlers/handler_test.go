package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"idcard/internal/auth"
	"idcard/internal/models"
	"idcard/internal/storage"
)

type testEnv struct {
	router *gin.Engine
	store  *fakeStore
	tokens *auth.TokenService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := auth.NewTokenService("handler_test_signing_secret", time.Hour)
	require.NoError(t, err)
	photos, err := storage.NewPhotoStore(t.TempDir())
	require.NoError(t, err)

	fs := newFakeStore()
	h := NewHandler(fs, tokens, photos)

	router := gin.New()
	h.Routes(router)

	return &testEnv{router: router, store: fs, tokens: tokens}
}

// seed inserts an employee with a real bcrypt hash for the given password.
func (env *testEnv) seed(t *testing.T, e models.Employee, password string) models.Employee {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	e.Password = hash
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
	if e.Photo == "" {
		e.Photo = models.DefaultPhotoURL
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	require.NoError(t, env.store.Create(t.Context(), &e))
	return e
}

func (env *testEnv) doJSON(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
