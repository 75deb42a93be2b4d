package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tythe-barn/time-tracker/backend/internal/config"
	"github.com/tythe-barn/time-tracker/backend/internal/domain"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Expiration = 1

	h, err := NewHandler(cfg, nil, nil, nil)
	require.NoError(t, err)
	return h
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func withToken(t *testing.T, h *Handler, req *http.Request, userID int64, role domain.Role) {
	t.Helper()

	ss, err := h.signToken(userID, string(role), time.Now().Add(time.Hour))
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: authCookieName, Value: ss})
}

// echoPrincipal 把 context 中的调用者身份写回响应
func echoPrincipal(h *Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.successResponse(w, r, "ok", principalFromContext(r.Context()))
	})
}

func TestAuthRejectsMissingCookie(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.auth(echoPrincipal(h)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "not logged in", resp.Message)
}

func TestAuthRejectsForgedToken(t *testing.T) {
	h := newTestHandler(t)

	other := newTestHandler(t)
	other.config.JWT.Secret = "another-secret"

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	withToken(t, other, req, 1, domain.RoleManager)

	rec := httptest.NewRecorder()
	h.auth(echoPrincipal(h)).ServeHTTP(rec, req)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "invalid token", resp.Message)
}

func TestAuthAttachesPrincipal(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	withToken(t, h, req, 42, domain.RoleManager)

	rec := httptest.NewRecorder()
	h.auth(echoPrincipal(h)).ServeHTTP(rec, req)

	resp := decodeResponse(t, rec)
	require.True(t, resp.Success)
	data := resp.Data.(map[string]any)
	assert.EqualValues(t, 42, data["userId"])
	assert.Equal(t, "manager", data["role"])
}

func TestPrincipalAllowsAnonymous(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.principal(echoPrincipal(h)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Data)
}

func TestRequiredRole(t *testing.T) {
	h := newTestHandler(t)
	protected := h.auth(h.RequiredRole([]domain.Role{domain.RoleManager})(echoPrincipal(h)))

	t.Run("manager", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		withToken(t, h, req, 1, domain.RoleManager)

		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		assert.True(t, decodeResponse(t, rec).Success)
	})

	t.Run("other role", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		withToken(t, h, req, 2, domain.Role("staff"))

		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		resp := decodeResponse(t, rec)
		assert.False(t, resp.Success)
		assert.Equal(t, "permission denied", resp.Message)
	})

	t.Run("no principal", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.RequiredRole([]domain.Role{domain.RoleManager})(echoPrincipal(h)).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.False(t, decodeResponse(t, rec).Success)
	})
}

func TestRecovererTurnsPanicIntoServerError(t *testing.T) {
	h := newTestHandler(t)
	panicky := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	h.recoverer(panicky).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", decodeResponse(t, rec).Message)
}

func TestLogoutClearsCookie(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.Logout(rec, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, authCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.True(t, cookies[0].Expires.Before(time.Now()))
}

func TestLoginValidatesRequest(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", jsonBody(t, map[string]string{"username": "manager"}))
	h.Login(rec, req)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "Password is a required field", resp.Message)
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}
