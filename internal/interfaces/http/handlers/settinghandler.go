package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	credentialDto "github.com/fiberops/subcore/internal/application/credential/dto"
	sequenceDto "github.com/fiberops/subcore/internal/application/sequence/dto"
	settingDto "github.com/fiberops/subcore/internal/application/setting/dto"
	"github.com/fiberops/subcore/internal/shared/logger"
	"github.com/fiberops/subcore/internal/shared/utils"
)

// SettingHandler exposes operator configuration: the account sequence,
// credential patterns and the AAA server.
type SettingHandler struct {
	getSequenceUC    getAccountSequenceUseCase
	updateSequenceUC updateAccountSequenceUseCase
	deleteSequenceUC deleteAccountSequenceUseCase
	getPatternUC     getCredentialPatternUseCase
	updatePatternUC  updateCredentialPatternUseCase
	getAAAUC         getAAASettingsUseCase
	updateAAAUC      updateAAASettingsUseCase
	logger           logger.Interface
}

func NewSettingHandler(
	getSequenceUC getAccountSequenceUseCase,
	updateSequenceUC updateAccountSequenceUseCase,
	deleteSequenceUC deleteAccountSequenceUseCase,
	getPatternUC getCredentialPatternUseCase,
	updatePatternUC updateCredentialPatternUseCase,
	getAAAUC getAAASettingsUseCase,
	updateAAAUC updateAAASettingsUseCase,
	logger logger.Interface,
) *SettingHandler {
	return &SettingHandler{
		getSequenceUC:    getSequenceUC,
		updateSequenceUC: updateSequenceUC,
		deleteSequenceUC: deleteSequenceUC,
		getPatternUC:     getPatternUC,
		updatePatternUC:  updatePatternUC,
		getAAAUC:         getAAAUC,
		updateAAAUC:      updateAAAUC,
		logger:           logger,
	}
}

func (h *SettingHandler) GetAccountSequence(c *gin.Context) {
	result, err := h.getSequenceUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *SettingHandler) UpdateAccountSequence(c *gin.Context) {
	var req sequenceDto.UpdateAccountSequenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update account sequence", "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	if err := h.updateSequenceUC.Execute(c.Request.Context(), req, utils.OperatorFromContext(c)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.GetAccountSequence(c)
}

func (h *SettingHandler) DeleteAccountSequence(c *gin.Context) {
	if err := h.deleteSequenceUC.Execute(c.Request.Context(), utils.OperatorFromContext(c)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

func (h *SettingHandler) GetCredentialPattern(c *gin.Context) {
	result, err := h.getPatternUC.Execute(c.Request.Context(), c.Param("kind"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *SettingHandler) UpdateCredentialPattern(c *gin.Context) {
	var req credentialDto.UpdateCredentialPatternRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update credential pattern", "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.updatePatternUC.Execute(c.Request.Context(), c.Param("kind"), req, utils.OperatorFromContext(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Credential pattern updated", result)
}

func (h *SettingHandler) GetAAASettings(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", h.getAAAUC.Execute(c.Request.Context()))
}

func (h *SettingHandler) UpdateAAASettings(c *gin.Context) {
	var req settingDto.UpdateAAASettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update AAA settings", "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.updateAAAUC.Execute(c.Request.Context(), req, utils.OperatorFromContext(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "AAA settings updated", result)
}
