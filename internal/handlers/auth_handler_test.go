package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"storefront/internal/backend"
	"storefront/internal/models"
	"storefront/internal/router"
	"storefront/internal/session"
	"storefront/internal/views"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, backendURL string) (*mux.Router, *session.Manager) {
	t.Helper()

	logger := zerolog.Nop()
	renderer, err := views.NewRenderer(logger)
	require.NoError(t, err)

	client := backend.NewClient(backendURL, logger)
	sessions := session.NewManager("test-secret", logger)

	return router.SetupRouter(client, sessions, renderer, logger), sessions
}

func loginCookie(t *testing.T, sessions *session.Manager, payload session.Payload) *http.Cookie {
	t.Helper()

	var state session.State
	state.Login(payload)

	rec := httptest.NewRecorder()
	require.NoError(t, sessions.Issue(rec, state))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func postForm(r http.Handler, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestLoginRedirectsUserToDashboard(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users", r.URL.Path)
		json.NewEncoder(w).Encode([]models.User{{ID: "7", FullName: "Test User", Role: "user"}})
	}))
	defer srv.Close()

	app, _ := newTestApp(t, srv.URL)

	rec := postForm(app, "/login", url.Values{
		"email":    {"user@example.com"},
		"password": {"Abc123"},
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
	require.Len(t, rec.Result().Cookies(), 1)
	assert.Equal(t, session.CookieName, rec.Result().Cookies()[0].Name)
}

func TestLoginRedirectsAdminToProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.User{{ID: "1", FullName: "Admin", Role: "admin"}})
	}))
	defer srv.Close()

	app, _ := newTestApp(t, srv.URL)

	rec := postForm(app, "/login", url.Values{
		"email":    {"admin@test.com"},
		"password": {"Admin123"},
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/products", rec.Header().Get("Location"))
}

func TestLoginInvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.User{})
	}))
	defer srv.Close()

	app, _ := newTestApp(t, srv.URL)

	rec := postForm(app, "/login", url.Values{
		"email":    {"user@example.com"},
		"password": {"Wrong1pass"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), "Invalid Login, please try again")
	assert.Empty(t, rec.Result().Cookies())
}

func TestLoginBackendDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	app, _ := newTestApp(t, srv.URL)

	rec := postForm(app, "/login", url.Values{
		"email":    {"user@example.com"},
		"password": {"Abc123"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), "Unable to connect to server")
}

func TestLoginValidationBlocksSubmission(t *testing.T) {
	backendHit := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		backendHit = true
	}))
	defer srv.Close()

	app, _ := newTestApp(t, srv.URL)

	rec := postForm(app, "/login", url.Values{
		"email":    {"user@example.com"},
		"password": {"abc"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, backendHit, "invalid form must not reach the backend")
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), "Password should be 6 to 15 characters")
}

func TestRegisterForcesUserRole(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/users", r.URL.Path)

		var user models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&user))
		assert.Equal(t, "user", user.Role)

		user.ID = "9"
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(user)
	}))
	defer srv.Close()

	app, _ := newTestApp(t, srv.URL)

	rec := postForm(app, "/register", url.Values{
		"email":       {"new@example.com"},
		"password":    {"Abc123"},
		"fullName":    {"New User"},
		"dateOfBirth": {"1990-01-01"},
		"gender":      {"male"},
		"country":     {"Japan"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), "Successfully Registered")
	require.Len(t, rec.Result().Cookies(), 1)
}

func TestRegisterBackendFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	app, _ := newTestApp(t, srv.URL)

	rec := postForm(app, "/register", url.Values{
		"email":       {"new@example.com"},
		"password":    {"Abc123"},
		"fullName":    {"New User"},
		"dateOfBirth": {"1990-01-01"},
		"gender":      {"male"},
		"country":     {"Japan"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), "Errors in database connection")
	assert.Empty(t, rec.Result().Cookies())
}

func TestLogoutClearsSessionCookie(t *testing.T) {
	app, sessions := newTestApp(t, "http://127.0.0.1:1")
	cookie := loginCookie(t, sessions, session.Payload{UserID: "7", FullName: "Test User", Role: "user"})

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(cookie)

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, session.CookieName, cookies[0].Name)
	assert.Negative(t, cookies[0].MaxAge)
}
