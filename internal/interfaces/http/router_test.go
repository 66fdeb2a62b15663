package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiberops/subcore/internal/infrastructure/config"
	"github.com/fiberops/subcore/internal/infrastructure/persistence/testutil"
	sharedConfig "github.com/fiberops/subcore/internal/shared/config"
	"github.com/fiberops/subcore/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func newTestRouter(t *testing.T, redisClient *redis.Client) *Router {
	t.Helper()
	cfg := &config.Config{
		AAA: sharedConfig.AAAConfig{
			Scheme:         "https",
			Host:           "aaa.test",
			Port:           8443,
			Username:       "admin",
			Password:       "secret-password",
			TimeoutSeconds: 5,
			DisconnectMode: "rest",
		},
		Auth: sharedConfig.AuthConfig{
			Password: sharedConfig.PasswordConfig{BcryptCost: 4},
		},
		Provisioning: sharedConfig.ProvisioningConfig{UsernameRetryLimit: 20, LockTTLSeconds: 30},
	}

	router := NewRouter(NewContainer(testutil.NewTestDB(t), redisClient, cfg, logger.NewNopLogger()))
	router.SetupRoutes()
	return router
}

func serve(t *testing.T, r *Router, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.GetEngine().ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func TestRouter_Health(t *testing.T) {
	r := newTestRouter(t, nil)

	w, env := serve(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_SequenceAndAllocation(t *testing.T) {
	r := newTestRouter(t, nil)

	w, env := serve(t, r, http.MethodPost, "/api/v1/accounts/allocate", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"account_no":"0001","reserved":false}`, string(env.Data))

	w, env = serve(t, r, http.MethodPut, "/api/v1/settings/account-sequence", map[string]string{"prefix": "ATS1000"})
	require.Equal(t, http.StatusOK, w.Code)
	var seq struct {
		Configured bool   `json:"configured"`
		UpdatedBy  string `json:"updated_by"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &seq))
	assert.True(t, seq.Configured)
	assert.Equal(t, "system", seq.UpdatedBy)

	_, env = serve(t, r, http.MethodPost, "/api/v1/accounts/allocate", nil)
	assert.JSONEq(t, `{"account_no":"ATS1000","reserved":false}`, string(env.Data))

	w, _ = serve(t, r, http.MethodDelete, "/api/v1/settings/account-sequence", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	_, env = serve(t, r, http.MethodPost, "/api/v1/accounts/allocate", nil)
	assert.JSONEq(t, `{"account_no":"0001","reserved":false}`, string(env.Data))
}

func TestRouter_AAASettingsMaskSecrets(t *testing.T) {
	r := newTestRouter(t, nil)

	w, _ := serve(t, r, http.MethodGet, "/api/v1/settings/aaa", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "secret-password")
	assert.Contains(t, w.Body.String(), `"endpoint":"https://aaa.test:8443/rest/user-manage/user"`)

	w, _ = serve(t, r, http.MethodPut, "/api/v1/settings/aaa", map[string]any{"host": "10.0.0.9"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"host":"10.0.0.9"`)
}

func TestRouter_CredentialPatterns(t *testing.T) {
	r := newTestRouter(t, nil)

	_, env := serve(t, r, http.MethodGet, "/api/v1/settings/credential-patterns/username", nil)
	assert.Contains(t, string(env.Data), `"is_default":true`)

	w, _ := serve(t, r, http.MethodPut, "/api/v1/settings/credential-patterns/username", map[string]any{
		"tokens": []map[string]any{{"kind": "last_name"}, {"kind": "random_digits", "length": 4}},
	})
	require.Equal(t, http.StatusOK, w.Code)

	_, env = serve(t, r, http.MethodGet, "/api/v1/settings/credential-patterns/username", nil)
	assert.Contains(t, string(env.Data), `"is_default":false`)

	w, _ = serve(t, r, http.MethodGet, "/api/v1/settings/credential-patterns/pin", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_UnknownAccount(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	r := newTestRouter(t, client)
	t.Cleanup(r.Shutdown)

	w, env := serve(t, r, http.MethodPost, "/api/v1/accounts/NOPE/reconnect", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, string(env.Data), `"code":"not_found"`)

	w, env = serve(t, r, http.MethodGet, "/api/v1/accounts/NOPE/events", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var events []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &events))
	require.Len(t, events, 1)
	assert.Equal(t, "not_found", events[0]["result"])

	w, _ = serve(t, r, http.MethodPost, "/api/v1/applications/999/approve", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
