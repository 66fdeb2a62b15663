package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fiberops/subcore/internal/application/provisioning/dto"
	"github.com/fiberops/subcore/internal/application/provisioning/usecases"
	"github.com/fiberops/subcore/internal/domain/connectivity"
	"github.com/fiberops/subcore/internal/shared/logger"
	"github.com/fiberops/subcore/internal/shared/utils"
)

const defaultEventLimit = 50

// AccountHandler serves account number allocation and connectivity transitions.
type AccountHandler struct {
	allocateUC          allocateAccountNumberUseCase
	reconnectUC         reconnectUseCase
	disconnectUC        disconnectUseCase
	suspendUC           disconnectUseCase
	pulloutUC           pulloutUseCase
	migrateUC           migrateUseCase
	updateCredentialsUC updateCredentialsUseCase
	listEventsUC        listConnectivityEventsUseCase
	logger              logger.Interface
}

func NewAccountHandler(
	allocateUC allocateAccountNumberUseCase,
	reconnectUC reconnectUseCase,
	disconnectUC disconnectUseCase,
	suspendUC disconnectUseCase,
	pulloutUC pulloutUseCase,
	migrateUC migrateUseCase,
	updateCredentialsUC updateCredentialsUseCase,
	listEventsUC listConnectivityEventsUseCase,
	logger logger.Interface,
) *AccountHandler {
	return &AccountHandler{
		allocateUC:          allocateUC,
		reconnectUC:         reconnectUC,
		disconnectUC:        disconnectUC,
		suspendUC:           suspendUC,
		pulloutUC:           pulloutUC,
		migrateUC:           migrateUC,
		updateCredentialsUC: updateCredentialsUC,
		listEventsUC:        listEventsUC,
		logger:              logger,
	}
}

func (h *AccountHandler) AllocateAccountNumber(c *gin.Context) {
	result, err := h.allocateUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *AccountHandler) Reconnect(c *gin.Context) {
	accountNo, err := utils.ParseAccountNoParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.reconnectUC.Execute(c.Request.Context(), usecases.ReconnectCommand{
		AccountNo: accountNo,
		Actor:     utils.OperatorFromContext(c),
	})
	h.respondTransition(c, result, err)
}

func (h *AccountHandler) Disconnect(c *gin.Context) {
	h.disconnect(c, h.disconnectUC)
}

func (h *AccountHandler) Suspend(c *gin.Context) {
	h.disconnect(c, h.suspendUC)
}

func (h *AccountHandler) disconnect(c *gin.Context, uc disconnectUseCase) {
	accountNo, err := utils.ParseAccountNoParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.RemarksRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warnw("invalid request body for disconnect", "account_no", accountNo, "error", err)
			utils.ErrorResponseWithError(c, utils.BindError(err))
			return
		}
	}

	result, err := uc.Execute(c.Request.Context(), usecases.DisconnectCommand{
		AccountNo: accountNo,
		Remarks:   req.Remarks,
		Actor:     utils.OperatorFromContext(c),
	})
	h.respondTransition(c, result, err)
}

func (h *AccountHandler) Pullout(c *gin.Context) {
	accountNo, err := utils.ParseAccountNoParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.pulloutUC.Execute(c.Request.Context(), usecases.PulloutCommand{
		AccountNo: accountNo,
		Actor:     utils.OperatorFromContext(c),
	})
	h.respondTransition(c, result, err)
}

func (h *AccountHandler) Migrate(c *gin.Context) {
	accountNo, err := utils.ParseAccountNoParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.MigrateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for migrate", "account_no", accountNo, "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.migrateUC.Execute(c.Request.Context(), usecases.MigrateCommand{
		AccountNo:     accountNo,
		NewHardwareID: req.NewHardwareID,
		LCP:           req.LCP,
		NAP:           req.NAP,
		Port:          req.Port,
		Actor:         utils.OperatorFromContext(c),
	})
	h.respondTransition(c, result, err)
}

func (h *AccountHandler) UpdateCredentials(c *gin.Context) {
	accountNo, err := utils.ParseAccountNoParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update credentials", "account_no", accountNo, "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.updateCredentialsUC.Execute(c.Request.Context(), usecases.UpdateCredentialsCommand{
		AccountNo:   accountNo,
		NewUsername: req.Username,
		NewSecret:   req.Secret,
		Actor:       utils.OperatorFromContext(c),
	})
	h.respondTransition(c, result, err)
}

func (h *AccountHandler) ListEvents(c *gin.Context) {
	accountNo, err := utils.ParseAccountNoParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	limit, err := utils.ParseIntQuery(c, "limit", defaultEventLimit)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	events, err := h.listEventsUC.Execute(c.Request.Context(), accountNo, limit)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", events)
}

// respondTransition always returns the outcome object when there is one.
// A network failure is a 502 and an unknown account a 404; every other code
// is a definite answer and returns 200.
func (h *AccountHandler) respondTransition(c *gin.Context, result *usecases.TransitionResult, err error) {
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	status := http.StatusOK
	switch result.Code {
	case connectivity.ResultFailed:
		status = http.StatusBadGateway
	case connectivity.ResultNotFound:
		status = http.StatusNotFound
	}

	utils.OutcomeResponse(c, status, result.Code == connectivity.ResultSuccess, transitionMessage(result.Code), &dto.TransitionResultDTO{
		AccountNo:          result.AccountNo,
		Code:               string(result.Code),
		ConnectivityStatus: string(result.ConnectivityStatus),
		Detail:             result.Detail,
	})
}

func transitionMessage(code connectivity.ResultCode) string {
	switch code {
	case connectivity.ResultSuccess:
		return "transition applied"
	case connectivity.ResultFailed:
		return "network provisioning failed"
	case connectivity.ResultNotFound:
		return "account not found"
	case connectivity.ResultBalancePositive:
		return "account has an outstanding balance"
	case connectivity.ResultAlreadyActive:
		return "account is already active"
	case connectivity.ResultNoUsername:
		return "account has no network username"
	case connectivity.ResultNoPlan:
		return "account has no plan"
	case connectivity.ResultSameUsername:
		return "username is unchanged"
	default:
		return string(code)
	}
}
