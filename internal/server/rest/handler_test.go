package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/resumerag/internal/common"
	"github.com/dmitrijs2005/resumerag/internal/logging"
	"github.com/dmitrijs2005/resumerag/internal/netx"
	"github.com/dmitrijs2005/resumerag/internal/pdfx/pdftest"
	"github.com/dmitrijs2005/resumerag/internal/server/auth"
	"github.com/dmitrijs2005/resumerag/internal/server/config"
	"github.com/dmitrijs2005/resumerag/internal/server/resumes"
	"github.com/dmitrijs2005/resumerag/internal/server/users"
)

const testFixtures = `
[[queries]]
query = "go developer"

  [[queries.results]]
  id = 10
  filename = "gopher.pdf"
  similarity = 0.9321
  snippet = "Builds Go services."
  skills = ["go", "grpc"]
`

type testEnv struct {
	router http.Handler
	cfg    *config.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.MaxUploadSize = 1 << 20

	fx, err := resumes.ParseFixtures(testFixtures)
	require.NoError(t, err)

	srv := NewHTTPServer(":0", logging.Discard(), users.NewService(users.NewMemoryRepository(), cfg), resumes.NewService(fx), cfg.MaxUploadSize)
	return &testEnv{router: srv.Router(), cfg: cfg}
}

func (e *testEnv) do(t *testing.T, path, token, contentType string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) postJSON(t *testing.T, path, token string, v any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return e.do(t, path, token, "application/json", bytes.NewReader(b))
}

func (e *testEnv) uploadPDF(t *testing.T, token, filename string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	body, ct, err := netx.MultipartFile(UploadField, filename, "application/pdf", bytes.NewReader(data))
	require.NoError(t, err)
	return e.do(t, "/api/upload", token, ct, body)
}

func (e *testEnv) signup(t *testing.T, email, password string) authResponse {
	t.Helper()
	rec := e.postJSON(t, "/api/signup", "", credentialsRequest{Email: email, Password: password})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var out authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func errorText(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var eb errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &eb), rec.Body.String())
	return eb.Error
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(common.RequestIDHeaderName))
}

func TestRequestIDEchoed(t *testing.T) {
	env := newTestEnv(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(common.RequestIDHeaderName, "req-1")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, "req-1", rec.Header().Get(common.RequestIDHeaderName))
}

func TestSignupAndLogin(t *testing.T) {
	env := newTestEnv(t)

	out := env.signup(t, "a@b.com", "x")
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, userResponse{ID: 1, Email: "a@b.com"}, out.User)

	rec := env.postJSON(t, "/api/login", "", credentialsRequest{Email: "a@b.com", Password: "x"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user":{"id":1,"email":"a@b.com"}`)
}

func TestAuthErrors(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "a@b.com", "x")

	tests := []struct {
		name   string
		path   string
		body   any
		status int
		msg    string
	}{
		{"wrong password", "/api/login", credentialsRequest{Email: "a@b.com", Password: "y"}, http.StatusUnauthorized, "Invalid credentials."},
		{"unknown user", "/api/login", credentialsRequest{Email: "z@b.com", Password: "x"}, http.StatusUnauthorized, "Invalid credentials."},
		{"missing fields", "/api/login", credentialsRequest{}, http.StatusBadRequest, "Email and password are required."},
		{"duplicate signup", "/api/signup", credentialsRequest{Email: "A@b.com", Password: "x"}, http.StatusConflict, "User with this email already exists."},
		{"bad body", "/api/signup", []int{1}, http.StatusBadRequest, "Invalid request body."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.postJSON(t, tt.path, "", tt.body)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.msg, errorText(t, rec))
		})
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.postJSON(t, "/api/search", "", searchRequest{Query: "go"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Authorization token required.", errorText(t, rec))

	rec = env.postJSON(t, "/api/search", "garbage", searchRequest{Query: "go"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid token.", errorText(t, rec))

	expired, err := auth.GenerateToken("1", []byte(env.cfg.SecretKey), -time.Minute)
	require.NoError(t, err)
	rec = env.uploadPDF(t, expired, "a.pdf", pdftest.Minimal(1))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token expired.", errorText(t, rec))
}

func TestUploadAndSearch(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "a@b.com", "x").Token

	rec := env.postJSON(t, "/api/search", token, searchRequest{Query: "go developer"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Please upload a resume first.", errorText(t, rec))

	rec = env.uploadPDF(t, token, "cv.pdf", pdftest.Minimal(2))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var up uploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &up))
	assert.Equal(t, "Resume uploaded and processed successfully!", up.Message)
	assert.NotEmpty(t, up.ID)

	rec = env.postJSON(t, "/api/search", token, searchRequest{Query: "Go Developer"})
	require.Equal(t, http.StatusOK, rec.Code)
	var results []resumes.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, int64(10), results[0].ID)
	assert.InDelta(t, 0.9321, results[0].Similarity, 1e-9)

	rec = env.postJSON(t, "/api/search", token, searchRequest{Query: "cobol"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = env.postJSON(t, "/api/search", token, searchRequest{Query: " "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Search query is required.", errorText(t, rec))
}

func TestUploadErrors(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "a@b.com", "x").Token

	rec := env.uploadPDF(t, token, "cv.txt", []byte("hello"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Only readable PDF files are accepted.", errorText(t, rec))

	rec = env.uploadPDF(t, token, "cv.pdf", []byte("%PDF-1.4 nope"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.uploadPDF(t, token, "big.pdf", bytes.Repeat([]byte("a"), int(env.cfg.MaxUploadSize)+1))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	rec = env.postJSON(t, "/api/upload", token, map[string]string{"resume": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No file uploaded.", errorText(t, rec))
}
