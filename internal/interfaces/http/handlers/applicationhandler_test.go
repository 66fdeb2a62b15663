package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiberops/subcore/internal/application/onboarding/dto"
	"github.com/fiberops/subcore/internal/application/onboarding/usecases"
	"github.com/fiberops/subcore/internal/interfaces/http/handlers/testutil"
	"github.com/fiberops/subcore/internal/shared/errors"
	"github.com/fiberops/subcore/internal/shared/logger"
)

type mockApproveUC struct {
	got    usecases.ApproveApplicationCommand
	called bool
	result *usecases.ApproveApplicationResult
	err    error
}

func (m *mockApproveUC) Execute(ctx context.Context, cmd usecases.ApproveApplicationCommand) (*usecases.ApproveApplicationResult, error) {
	m.got = cmd
	m.called = true
	return m.result, m.err
}

func TestApplicationHandler_Approve(t *testing.T) {
	planID := uint(3)

	t.Run("created and provisioned", func(t *testing.T) {
		uc := &mockApproveUC{result: &usecases.ApproveApplicationResult{
			AccountNo:          "0001",
			CustomerID:         7,
			Username:           "jdelacruz4567",
			Secret:             "a1b2c3",
			PlanID:             &planID,
			PlanName:           "Fiber 50",
			ProvisioningStatus: usecases.ProvisioningStatusProvisioned,
		}}
		h := NewApplicationHandler(uc, logger.NewNopLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/applications/12/approve", dto.ApproveApplicationRequest{
			Port:            "4",
			IPAddress:       "10.1.2.3",
			InstallationFee: "1,500.00",
		})
		testutil.SetURLParam(c, "id", "12")
		testutil.SetOperator(c, "maria")
		h.Approve(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, uint(12), uc.got.ApplicationID)
		assert.Equal(t, "maria", uc.got.Actor)
		assert.Equal(t, "1,500.00", uc.got.Facts.InstallationFee)
		assert.Equal(t, "10.1.2.3", uc.got.Facts.IPAddress)

		resp := testutil.DecodeEnvelope(t, w)
		body := testutil.DecodeData[dto.ApproveApplicationResponse](t, resp)
		assert.Equal(t, "jdelacruz4567", body.Username)
		assert.Equal(t, &planID, body.PlanID)
	})

	t.Run("network failure still creates", func(t *testing.T) {
		uc := &mockApproveUC{result: &usecases.ApproveApplicationResult{
			AccountNo:          "0002",
			ProvisioningStatus: usecases.ProvisioningStatusFailed,
			Detail:             "aaa: connection refused",
		}}
		h := NewApplicationHandler(uc, logger.NewNopLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/applications/12/approve", nil)
		testutil.SetURLParam(c, "id", "12")
		h.Approve(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := testutil.DecodeEnvelope(t, w)
		assert.Contains(t, resp.Message, "network provisioning failed")
		assert.Equal(t, "system", uc.got.Actor)
	})

	t.Run("invalid id", func(t *testing.T) {
		uc := &mockApproveUC{}
		h := NewApplicationHandler(uc, logger.NewNopLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/applications/abc/approve", nil)
		testutil.SetURLParam(c, "id", "abc")
		h.Approve(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, uc.called)
	})

	t.Run("invalid ip address", func(t *testing.T) {
		uc := &mockApproveUC{}
		h := NewApplicationHandler(uc, logger.NewNopLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/applications/12/approve", map[string]string{"ip_address": "not-an-ip"})
		testutil.SetURLParam(c, "id", "12")
		h.Approve(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, uc.called)
	})

	t.Run("missing link table is a validation error", func(t *testing.T) {
		uc := &mockApproveUC{err: errors.NewValidationError("application is missing required links", "mobile is required")}
		h := NewApplicationHandler(uc, logger.NewNopLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/applications/12/approve", nil)
		testutil.SetURLParam(c, "id", "12")
		h.Approve(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := testutil.DecodeEnvelope(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "mobile is required", resp.Error.Details)
	})
}
