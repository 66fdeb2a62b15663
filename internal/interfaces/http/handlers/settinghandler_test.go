package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	credentialDto "github.com/fiberops/subcore/internal/application/credential/dto"
	sequenceDto "github.com/fiberops/subcore/internal/application/sequence/dto"
	settingDto "github.com/fiberops/subcore/internal/application/setting/dto"
	"github.com/fiberops/subcore/internal/interfaces/http/handlers/testutil"
	"github.com/fiberops/subcore/internal/shared/errors"
	"github.com/fiberops/subcore/internal/shared/logger"
)

type mockGetSequenceUC struct {
	result *sequenceDto.AccountSequenceDTO
	err    error
}

func (m *mockGetSequenceUC) Execute(ctx context.Context) (*sequenceDto.AccountSequenceDTO, error) {
	return m.result, m.err
}

type mockUpdateSequenceUC struct {
	gotReq sequenceDto.UpdateAccountSequenceRequest
	gotBy  string
	err    error
}

func (m *mockUpdateSequenceUC) Execute(ctx context.Context, req sequenceDto.UpdateAccountSequenceRequest, updatedBy string) error {
	m.gotReq = req
	m.gotBy = updatedBy
	return m.err
}

type mockDeleteSequenceUC struct {
	gotBy string
	err   error
}

func (m *mockDeleteSequenceUC) Execute(ctx context.Context, deletedBy string) error {
	m.gotBy = deletedBy
	return m.err
}

type mockGetPatternUC struct {
	result *credentialDto.CredentialPatternDTO
	err    error
}

func (m *mockGetPatternUC) Execute(ctx context.Context, kind string) (*credentialDto.CredentialPatternDTO, error) {
	return m.result, m.err
}

type mockUpdatePatternUC struct {
	gotKind string
	gotBy   string
	result  *credentialDto.CredentialPatternDTO
	err     error
}

func (m *mockUpdatePatternUC) Execute(ctx context.Context, kind string, req credentialDto.UpdateCredentialPatternRequest, updatedBy string) (*credentialDto.CredentialPatternDTO, error) {
	m.gotKind = kind
	m.gotBy = updatedBy
	return m.result, m.err
}

type mockGetAAAUC struct {
	result *settingDto.AAASettingsResponse
}

func (m *mockGetAAAUC) Execute(ctx context.Context) *settingDto.AAASettingsResponse {
	return m.result
}

type mockUpdateAAAUC struct {
	gotReq settingDto.UpdateAAASettingsRequest
	called bool
	result *settingDto.AAASettingsResponse
	err    error
}

func (m *mockUpdateAAAUC) Execute(ctx context.Context, req settingDto.UpdateAAASettingsRequest, updatedBy string) (*settingDto.AAASettingsResponse, error) {
	m.gotReq = req
	m.called = true
	return m.result, m.err
}

type settingHandlerMocks struct {
	getSequence    *mockGetSequenceUC
	updateSequence *mockUpdateSequenceUC
	deleteSequence *mockDeleteSequenceUC
	getPattern     *mockGetPatternUC
	updatePattern  *mockUpdatePatternUC
	getAAA         *mockGetAAAUC
	updateAAA      *mockUpdateAAAUC
}

func newTestSettingHandler() (*SettingHandler, *settingHandlerMocks) {
	m := &settingHandlerMocks{
		getSequence:    &mockGetSequenceUC{result: &sequenceDto.AccountSequenceDTO{Configured: true, Prefix: "ATS1000", EffectivePrefix: "ATS", StartValue: 1000, MinWidth: 4}},
		updateSequence: &mockUpdateSequenceUC{},
		deleteSequence: &mockDeleteSequenceUC{},
		getPattern:     &mockGetPatternUC{},
		updatePattern:  &mockUpdatePatternUC{},
		getAAA:         &mockGetAAAUC{result: &settingDto.AAASettingsResponse{Scheme: "https", Host: "aaa.local", Port: 443, Password: "***", PasswordSet: true}},
		updateAAA:      &mockUpdateAAAUC{},
	}
	h := NewSettingHandler(m.getSequence, m.updateSequence, m.deleteSequence, m.getPattern,
		m.updatePattern, m.getAAA, m.updateAAA, logger.NewNopLogger())
	return h, m
}

func TestSettingHandler_AccountSequence(t *testing.T) {
	t.Run("update returns the effective sequence", func(t *testing.T) {
		h, m := newTestSettingHandler()

		c, w := testutil.NewTestContext(http.MethodPut, "/api/v1/settings/account-sequence", map[string]string{"prefix": "ATS1000"})
		testutil.SetOperator(c, "maria")
		h.UpdateAccountSequence(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ATS1000", m.updateSequence.gotReq.Prefix)
		assert.Equal(t, "maria", m.updateSequence.gotBy)
		assert.Contains(t, w.Body.String(), `"effective_prefix":"ATS"`)
	})

	t.Run("update rejects non alphanumeric seeds", func(t *testing.T) {
		h, m := newTestSettingHandler()

		c, w := testutil.NewTestContext(http.MethodPut, "/api/v1/settings/account-sequence", map[string]string{"prefix": "AT-1"})
		h.UpdateAccountSequence(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, m.updateSequence.gotBy)
	})

	t.Run("update surfaces use case validation", func(t *testing.T) {
		h, m := newTestSettingHandler()
		m.updateSequence.err = errors.NewValidationError("invalid account sequence", "seed must end in digits")

		c, w := testutil.NewTestContext(http.MethodPut, "/api/v1/settings/account-sequence", map[string]string{"prefix": "ATS"})
		h.UpdateAccountSequence(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		h, m := newTestSettingHandler()

		c, w := testutil.NewTestContext(http.MethodDelete, "/api/v1/settings/account-sequence", nil)
		testutil.SetOperator(c, "maria")
		h.DeleteAccountSequence(c)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "maria", m.deleteSequence.gotBy)
	})
}

func TestSettingHandler_CredentialPattern(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		h, m := newTestSettingHandler()
		m.getPattern.result = &credentialDto.CredentialPatternDTO{Kind: "secret", IsDefault: true}

		c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/settings/credential-patterns/secret", nil)
		testutil.SetURLParam(c, "kind", "secret")
		h.GetCredentialPattern(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"is_default":true`)
	})

	t.Run("update requires tokens", func(t *testing.T) {
		h, m := newTestSettingHandler()

		c, w := testutil.NewTestContext(http.MethodPut, "/api/v1/settings/credential-patterns/username", map[string]any{"tokens": []any{}})
		testutil.SetURLParam(c, "kind", "username")
		h.UpdateCredentialPattern(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, m.updatePattern.gotKind)
	})

	t.Run("update", func(t *testing.T) {
		h, m := newTestSettingHandler()
		m.updatePattern.result = &credentialDto.CredentialPatternDTO{Kind: "username"}

		c, w := testutil.NewTestContext(http.MethodPut, "/api/v1/settings/credential-patterns/username", credentialDto.UpdateCredentialPatternRequest{
			Tokens: []credentialDto.TokenDTO{{Kind: "last_name"}, {Kind: "random_digits", Length: 4}},
		})
		testutil.SetURLParam(c, "kind", "username")
		testutil.SetOperator(c, "maria")
		h.UpdateCredentialPattern(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "username", m.updatePattern.gotKind)
		assert.Equal(t, "maria", m.updatePattern.gotBy)
	})
}

func TestSettingHandler_AAASettings(t *testing.T) {
	t.Run("get never echoes the password", func(t *testing.T) {
		h, _ := newTestSettingHandler()

		c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/settings/aaa", nil)
		h.GetAAASettings(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"password":"***"`)
		assert.Contains(t, w.Body.String(), `"password_set":true`)
	})

	t.Run("update validates the disconnect mode", func(t *testing.T) {
		h, m := newTestSettingHandler()

		c, w := testutil.NewTestContext(http.MethodPut, "/api/v1/settings/aaa", map[string]string{"disconnect_mode": "telnet"})
		h.UpdateAAASettings(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, m.updateAAA.called)
	})

	t.Run("update", func(t *testing.T) {
		h, m := newTestSettingHandler()
		m.updateAAA.result = &settingDto.AAASettingsResponse{Host: "10.0.0.9"}

		c, w := testutil.NewTestContext(http.MethodPut, "/api/v1/settings/aaa", map[string]any{"host": "10.0.0.9", "port": 8443})
		h.UpdateAAASettings(c)

		assert.Equal(t, http.StatusOK, w.Code)
		if assert.NotNil(t, m.updateAAA.gotReq.Host) {
			assert.Equal(t, "10.0.0.9", *m.updateAAA.gotReq.Host)
		}
		if assert.NotNil(t, m.updateAAA.gotReq.Port) {
			assert.Equal(t, 8443, *m.updateAAA.gotReq.Port)
		}
	})
}
