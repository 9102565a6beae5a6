package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	assistanceUC "zelo/internal/application/assistance/usecases"
	"zelo/internal/application/reminder"
	"zelo/internal/shared/logger"
	"zelo/internal/shared/utils"
)

// SupplierActionRequest is the body of the public write endpoint. The token
// carries all authority; there is no session and no supplier identity beyond
// what the token resolves to.
type SupplierActionRequest struct {
	Action string                  `json:"action" binding:"required"`
	Token  string                  `json:"token" binding:"required"`
	Data   assistanceUC.ActionData `json:"data"`
}

type SupplierActionResponse struct {
	AssistanceID uint   `json:"assistance_id"`
	OldStatus    string `json:"old_status"`
	NewStatus    string `json:"new_status"`
}

// SupplierPortalHandler serves the unauthenticated, token-guarded endpoints
// suppliers reach from email links.
type SupplierPortalHandler struct {
	supplierActionUC   assistanceUC.SupplierActionExecutor
	viewByTokenUC      assistanceUC.ViewByTokenExecutor
	processRemindersUC *reminder.ProcessRemindersUseCase
	logger             logger.Interface
}

func NewSupplierPortalHandler(
	supplierActionUC assistanceUC.SupplierActionExecutor,
	viewByTokenUC assistanceUC.ViewByTokenExecutor,
	processRemindersUC *reminder.ProcessRemindersUseCase,
	logger logger.Interface,
) *SupplierPortalHandler {
	return &SupplierPortalHandler{
		supplierActionUC:   supplierActionUC,
		viewByTokenUC:      viewByTokenUC,
		processRemindersUC: processRemindersUC,
		logger:             logger,
	}
}

// ViewAssistance handles GET /supplier-route?action=...&token=...
func (h *SupplierPortalHandler) ViewAssistance(c *gin.Context) {
	query := assistanceUC.ViewByTokenQuery{
		Action:    c.Query("action"),
		Token:     c.Query("token"),
		ClientIP:  c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}

	result, err := h.viewByTokenUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// SubmitAction handles POST /submit-supplier-action
func (h *SupplierPortalHandler) SubmitAction(c *gin.Context) {
	var req SupplierActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for supplier action", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "pedido inválido")
		return
	}

	cmd := assistanceUC.SupplierActionCommand{
		Action:    req.Action,
		Token:     req.Token,
		ClientIP:  c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Data:      req.Data,
	}

	result, err := h.supplierActionUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result.Message, SupplierActionResponse{
		AssistanceID: result.AssistanceID,
		OldStatus:    result.OldStatus,
		NewStatus:    result.NewStatus,
	})
}

// ProcessReminders handles POST /process-reminders. It is reachable from the
// admin API so an external cron can drive reminders when the embedded
// scheduler is disabled.
func (h *SupplierPortalHandler) ProcessReminders(c *gin.Context) {
	result, err := h.processRemindersUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Lembretes processados", result)
}
