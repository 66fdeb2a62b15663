package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/fiberops/subcore/internal/application/onboarding/dto"
	"github.com/fiberops/subcore/internal/application/onboarding/usecases"
	"github.com/fiberops/subcore/internal/shared/logger"
	"github.com/fiberops/subcore/internal/shared/utils"
)

type approveApplicationUseCase interface {
	Execute(ctx context.Context, cmd usecases.ApproveApplicationCommand) (*usecases.ApproveApplicationResult, error)
}

// ApplicationHandler turns approved applications into subscriber accounts.
type ApplicationHandler struct {
	approveUC approveApplicationUseCase
	logger    logger.Interface
}

func NewApplicationHandler(approveUC approveApplicationUseCase, logger logger.Interface) *ApplicationHandler {
	return &ApplicationHandler{
		approveUC: approveUC,
		logger:    logger,
	}
}

// Approve answers 201 once the account is committed, including when the AAA
// upsert failed; provisioning_status tells the two apart.
func (h *ApplicationHandler) Approve(c *gin.Context) {
	applicationID, err := utils.ParseUintParam(c, "id", "application")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.ApproveApplicationRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warnw("invalid request body for approve application", "application_id", applicationID, "error", err)
			utils.ErrorResponseWithError(c, utils.BindError(err))
			return
		}
	}

	result, err := h.approveUC.Execute(c.Request.Context(), usecases.ApproveApplicationCommand{
		ApplicationID: applicationID,
		Facts:         req.ToFacts(),
		Actor:         utils.OperatorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := "Subscriber account created and provisioned"
	if result.ProvisioningStatus != usecases.ProvisioningStatusProvisioned {
		message = "Subscriber account created; network provisioning failed"
	}

	utils.CreatedResponse(c, &dto.ApproveApplicationResponse{
		AccountNo:          result.AccountNo,
		CustomerID:         result.CustomerID,
		Username:           result.Username,
		Secret:             result.Secret,
		PlanID:             result.PlanID,
		PlanName:           result.PlanName,
		ProvisioningStatus: result.ProvisioningStatus,
		Detail:             result.Detail,
	}, message)
}
