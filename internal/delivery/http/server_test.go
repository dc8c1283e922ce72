package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cabradar/config"
	"cabradar/internal/delivery/http/router"
	"cabradar/internal/delivery/http/router/handler"
	"cabradar/internal/infra/auth"
	"cabradar/internal/infra/credential"
	"cabradar/internal/infra/geodata"
	"cabradar/internal/infra/persistence/memory"
	"cabradar/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userBody struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type authBody struct {
	Token string   `json:"token"`
	User  userBody `json:"user"`
}

type verifyBody struct {
	User userBody `json:"user"`
}

type errorBody struct {
	Error string `json:"error"`
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{Access: "http-test-secret"},
		Auth: &config.AuthConfig{
			Hasher:      config.HasherSHA256,
			TokenTTL:    24 * time.Hour,
			DefaultName: "User",
			SeedUsers:   []config.SeedUser{{Email: "demo@test.com", Password: "password123", Name: "Demo User"}},
		},
	}
	cfg.HTTP.BasePath = "/api"
	cfg.HTTP.MaxRequestBodySize = "1KB"

	return cfg
}

// newTestServer wires the real components behind an echo instance, seeded
// with the demo account.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := newTestConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	hasher, err := auth.NewPasswordHasher(cfg)
	require.NoError(t, err)
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	store := credential.NewStore(credential.StoreParams{
		Repo:   memory.NewCredentialRepository(),
		Hasher: hasher,
		Logger: logger,
	})
	require.NoError(t, credential.Seed(context.Background(), store, cfg.Auth.SeedUsers, logger))

	authUC := impl.NewAuthService(impl.AuthServiceParams{
		Store:        store,
		Hasher:       hasher,
		TokenService: tokens,
		Config:       cfg,
		Logger:       logger,
	})
	locationUC := impl.NewLocationService(geodata.NewStaticProvider())

	return NewEcho(cfg, logger, router.RouterParams{
		AuthHandler:     handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: authUC, Logger: logger}),
		LocationHandler: handler.NewLocationHandler(handler.LocationHandlerParams{LocationUC: locationUC, Logger: logger}),
		Config:          cfg,
	})
}

func doRequest(e *echo.Echo, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())

	return out
}

func TestServer_Health(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServer_DemoLoginAndVerify(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/login", `{"email":"demo@test.com","password":"password123"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	login := decode[authBody](t, rec)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, userBody{Email: "demo@test.com", Name: "Demo User"}, login.User)

	rec = doRequest(e, http.MethodGet, "/api/verify", "", map[string]string{"Authorization": "Bearer " + login.Token})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"user":{"email":"demo@test.com","name":"Demo User"}}`, rec.Body.String())

	rec = doRequest(e, http.MethodGet, "/api/verify", "", map[string]string{"Authorization": login.Token})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_RegisterThenLogin(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/register", `{"email":"new@test.com","password":"pw"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	registered := decode[authBody](t, rec)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, userBody{Email: "new@test.com", Name: "User"}, registered.User)

	rec = doRequest(e, http.MethodPost, "/api/login", `{"email":"new@test.com","password":"pw"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, registered.User, decode[authBody](t, rec).User)

	rec = doRequest(e, http.MethodGet, "/api/verify", "", map[string]string{"Authorization": "Bearer " + registered.Token})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, registered.User, decode[verifyBody](t, rec).User)
}

func TestServer_RegisterNameDefaultsOnlyWhenAbsent(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/register", `{"email":"absent@test.com","password":"pw"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "User", decode[authBody](t, rec).User.Name)

	rec = doRequest(e, http.MethodPost, "/api/register", `{"email":"null@test.com","password":"pw","name":null}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "User", decode[authBody](t, rec).User.Name)

	rec = doRequest(e, http.MethodPost, "/api/register", `{"email":"blank@test.com","password":"pw","name":""}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Empty(t, decode[authBody](t, rec).User.Name)
}

func TestServer_Errors(t *testing.T) {
	e := newTestServer(t)

	tests := []struct {
		name    string
		method  string
		path    string
		body    string
		headers map[string]string
		code    int
		message string
	}{
		{name: "wrong password", method: http.MethodPost, path: "/api/login", body: `{"email":"demo@test.com","password":"wrong"}`, code: http.StatusUnauthorized, message: "Invalid credentials"},
		{name: "unknown email", method: http.MethodPost, path: "/api/login", body: `{"email":"ghost@test.com","password":"password123"}`, code: http.StatusUnauthorized, message: "Invalid credentials"},
		{name: "login missing password", method: http.MethodPost, path: "/api/login", body: `{"email":"demo@test.com"}`, code: http.StatusBadRequest, message: "Email and password required"},
		{name: "register missing email", method: http.MethodPost, path: "/api/register", body: `{"password":"pw"}`, code: http.StatusBadRequest, message: "Email and password required"},
		{name: "register duplicate", method: http.MethodPost, path: "/api/register", body: `{"email":"demo@test.com","password":"other"}`, code: http.StatusBadRequest, message: "User already exists"},
		{name: "malformed json", method: http.MethodPost, path: "/api/register", body: `{"email":`, code: http.StatusBadRequest, message: "Invalid request body"},
		{name: "wrong field type", method: http.MethodPost, path: "/api/login", body: `{"email":42,"password":"pw"}`, code: http.StatusBadRequest, message: "Invalid request body"},
		{name: "no token", method: http.MethodGet, path: "/api/verify", code: http.StatusUnauthorized, message: "No token provided"},
		{name: "garbage token", method: http.MethodGet, path: "/api/verify", headers: map[string]string{"Authorization": "Bearer not.a.jwt"}, code: http.StatusUnauthorized, message: "Invalid token"},
		{name: "bad cars query", method: http.MethodGet, path: "/api/cars?lat=abc&lng=1&radius=5", code: http.StatusBadRequest, message: "Invalid query parameters"},
		{name: "partial proximity", method: http.MethodGet, path: "/api/cars?lat=10.79", code: http.StatusBadRequest, message: "Invalid query parameters"},
		{name: "negative radius", method: http.MethodGet, path: "/api/cars?lat=10.79&lng=78.70&radius=-1", code: http.StatusBadRequest, message: "Invalid query parameters"},
		{name: "unknown route", method: http.MethodGet, path: "/api/nope", code: http.StatusNotFound, message: "Not Found"},
		{name: "body too large", method: http.MethodPost, path: "/api/search", body: `{"query":"` + strings.Repeat("a", 2048) + `"}`, code: http.StatusRequestEntityTooLarge, message: "Request Entity Too Large"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(e, tt.method, tt.path, tt.body, tt.headers)
			assert.Equal(t, tt.code, rec.Code, rec.Body.String())
			assert.Equal(t, errorBody{Error: tt.message}, decode[errorBody](t, rec))
		})
	}
}

func TestServer_DuplicateRegisterKeepsOriginalPassword(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/register", `{"email":"demo@test.com","password":"hijack","name":"Mallory"}`, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(e, http.MethodPost, "/api/login", `{"email":"demo@test.com","password":"password123"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Demo User", decode[authBody](t, rec).User.Name)
}

func TestServer_Cars(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/cars", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var cars []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cars))
	require.Len(t, cars, 6)
	assert.Equal(t, map[string]any{"id": float64(1), "lat": 10.7905, "lng": 78.7047, "type": "economy"}, cars[0])

	rec = doRequest(e, http.MethodGet, "/api/cars?type=suv", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":4,"lat":10.7925,"lng":78.7067,"type":"suv"}]`, rec.Body.String())

	rec = doRequest(e, http.MethodGet, "/api/cars?lat=10.7905&lng=78.7047&radius=200", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cars))
	require.Len(t, cars, 2)
	assert.Equal(t, float64(1), cars[0]["id"])
	assert.Equal(t, float64(2), cars[1]["id"])

	rec = doRequest(e, http.MethodGet, "/api/cars?type=limo", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestServer_Search(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/search", `{"query":"air"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"name":"Airport","lat":10.7654,"lng":78.7097}]`, rec.Body.String())

	rec = doRequest(e, http.MethodPost, "/api/search", `{}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var places []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &places))
	assert.Len(t, places, 5)

	rec = doRequest(e, http.MethodPost, "/api/search", `{"query":"xyz"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestServer_RequestIDHeader(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/health", "", map[string]string{echo.HeaderXRequestID: "abc-123"})
	assert.Equal(t, "abc-123", rec.Header().Get(echo.HeaderXRequestID))
}
