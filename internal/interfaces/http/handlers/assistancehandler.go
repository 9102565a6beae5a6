package handlers

import (
	"encoding/base64"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"zelo/internal/application/assistance/usecases"
	"zelo/internal/shared/constants"
	"zelo/internal/shared/errors"
	"zelo/internal/shared/logger"
	"zelo/internal/shared/utils"
)

type CreateAssistanceRequest struct {
	BuildingID  uint   `json:"building_id" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Priority    string `json:"priority"`
	Description string `json:"description" binding:"required"`
}

type AssignSupplierRequest struct {
	SupplierID uint `json:"supplier_id" binding:"required"`
}

type CancelAssistanceRequest struct {
	Reason string `json:"reason"`
}

type ReopenAssistanceRequest struct {
	TargetStatus string `json:"target_status"`
}

type AddCommunicationRequest struct {
	Message             string `json:"message" binding:"required"`
	AuthorName          string `json:"author_name"`
	VisibleToContractor bool   `json:"visible_to_contractor"`
	VisibleToTenant     bool   `json:"visible_to_tenant"`
	Internal            bool   `json:"internal"`
}

type UploadAttachmentRequest struct {
	PhotoBase64 string `json:"photoBase64" binding:"required"`
	MimeType    string `json:"mime_type"`
	Category    string `json:"category"`
}

type AssistanceHandler struct {
	createUC     usecases.CreateAssistanceExecutor
	getUC        usecases.GetAssistanceExecutor
	listUC       usecases.ListAssistancesExecutor
	assignUC     usecases.AssignSupplierExecutor
	cancelUC     usecases.CancelAssistanceExecutor
	validateUC   usecases.ValidateAssistanceExecutor
	reopenUC     usecases.ReopenAssistanceExecutor
	addCommUC    usecases.AddCommunicationExecutor
	listCommsUC  usecases.ListCommunicationsExecutor
	uploadUC     usecases.UploadAttachmentExecutor
	listAttachUC usecases.ListAttachmentsExecutor
	logger       logger.Interface
}

func NewAssistanceHandler(
	createUC usecases.CreateAssistanceExecutor,
	getUC usecases.GetAssistanceExecutor,
	listUC usecases.ListAssistancesExecutor,
	assignUC usecases.AssignSupplierExecutor,
	cancelUC usecases.CancelAssistanceExecutor,
	validateUC usecases.ValidateAssistanceExecutor,
	reopenUC usecases.ReopenAssistanceExecutor,
	addCommUC usecases.AddCommunicationExecutor,
	listCommsUC usecases.ListCommunicationsExecutor,
	uploadUC usecases.UploadAttachmentExecutor,
	listAttachUC usecases.ListAttachmentsExecutor,
	logger logger.Interface,
) *AssistanceHandler {
	return &AssistanceHandler{
		createUC:     createUC,
		getUC:        getUC,
		listUC:       listUC,
		assignUC:     assignUC,
		cancelUC:     cancelUC,
		validateUC:   validateUC,
		reopenUC:     reopenUC,
		addCommUC:    addCommUC,
		listCommsUC:  listCommsUC,
		uploadUC:     uploadUC,
		listAttachUC: listAttachUC,
		logger:       logger,
	}
}

// Create handles POST /assistances
func (h *AssistanceHandler) Create(c *gin.Context) {
	var req CreateAssistanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create assistance", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("pedido inválido"))
		return
	}

	cmd := usecases.CreateAssistanceCommand{
		BuildingID:  req.BuildingID,
		Category:    req.Category,
		Priority:    req.Priority,
		Description: req.Description,
	}

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Assistência criada com sucesso")
}

// Get handles GET /assistances/:id
func (h *AssistanceHandler) Get(c *gin.Context) {
	id, err := parseAssistanceID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetAssistanceQuery{AssistanceID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// List handles GET /assistances
func (h *AssistanceHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)
	query := usecases.ListAssistancesQuery{
		Status:    c.Query("status"),
		Priority:  c.Query("priority"),
		Category:  c.Query("category"),
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	if raw := c.Query("building_id"); raw != "" {
		if v, err := strconv.ParseUint(raw, 10, 32); err == nil {
			id := uint(v)
			query.BuildingID = &id
		}
	}
	if raw := c.Query("supplier_id"); raw != "" {
		if v, err := strconv.ParseUint(raw, 10, 32); err == nil {
			id := uint(v)
			query.SupplierID = &id
		}
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Assistances, result.Total, result.Page, result.PageSize)
}

// AssignSupplier handles POST /assistances/:id/assign
func (h *AssistanceHandler) AssignSupplier(c *gin.Context) {
	id, err := parseAssistanceID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for assign supplier", "assistance_id", id, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("pedido inválido"))
		return
	}

	result, err := h.assignUC.Execute(c.Request.Context(), usecases.AssignSupplierCommand{
		AssistanceID: id,
		SupplierID:   req.SupplierID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Fornecedor atribuído com sucesso", result)
}

// Cancel handles POST /assistances/:id/cancel
func (h *AssistanceHandler) Cancel(c *gin.Context) {
	id, err := parseAssistanceID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CancelAssistanceRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("pedido inválido"))
		return
	}

	result, err := h.cancelUC.Execute(c.Request.Context(), usecases.CancelAssistanceCommand{
		AssistanceID: id,
		Reason:       req.Reason,
		CancelledBy:  c.GetString(constants.ContextKeyUserEmail),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Assistência cancelada", result)
}

// Validate handles POST /assistances/:id/validate
func (h *AssistanceHandler) Validate(c *gin.Context) {
	id, err := parseAssistanceID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.validateUC.Execute(c.Request.Context(), usecases.ValidateAssistanceCommand{
		AssistanceID: id,
		ValidatedBy:  c.GetString(constants.ContextKeyUserEmail),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Assistência validada", result)
}

// Reopen handles POST /assistances/:id/reopen
func (h *AssistanceHandler) Reopen(c *gin.Context) {
	id, err := parseAssistanceID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ReopenAssistanceRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("pedido inválido"))
		return
	}

	result, err := h.reopenUC.Execute(c.Request.Context(), usecases.ReopenAssistanceCommand{
		AssistanceID: id,
		TargetStatus: req.TargetStatus,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Assistência reaberta", result)
}

// AddCommunication handles POST /assistances/:id/communications
func (h *AssistanceHandler) AddCommunication(c *gin.Context) {
	id, err := parseAssistanceID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommunicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("pedido inválido"))
		return
	}

	authorName := req.AuthorName
	if authorName == "" {
		authorName = c.GetString(constants.ContextKeyUserEmail)
	}

	result, err := h.addCommUC.Execute(c.Request.Context(), usecases.AddCommunicationCommand{
		AssistanceID:        id,
		Message:             req.Message,
		AuthorName:          authorName,
		AuthorRole:          c.GetString(constants.ContextKeyUserRole),
		VisibleToContractor: req.VisibleToContractor,
		VisibleToTenant:     req.VisibleToTenant,
		Internal:            req.Internal,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comunicação adicionada")
}

// ListCommunications handles GET /assistances/:id/communications
func (h *AssistanceHandler) ListCommunications(c *gin.Context) {
	id, err := parseAssistanceID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listCommsUC.Execute(c.Request.Context(), usecases.ListCommunicationsQuery{AssistanceID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UploadAttachment handles POST /assistances/:id/attachments
func (h *AssistanceHandler) UploadAttachment(c *gin.Context) {
	id, err := parseAssistanceID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UploadAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("pedido inválido"))
		return
	}

	content, err := decodeBase64Photo(req.PhotoBase64)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("fotografia inválida"))
		return
	}

	result, err := h.uploadUC.Execute(c.Request.Context(), usecases.UploadAttachmentCommand{
		AssistanceID: id,
		Content:      content,
		MimeType:     req.MimeType,
		Category:     req.Category,
		UploaderName: c.GetString(constants.ContextKeyUserEmail),
		UploaderRole: c.GetString(constants.ContextKeyUserRole),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Fotografia adicionada")
}

// ListAttachments handles GET /assistances/:id/attachments
func (h *AssistanceHandler) ListAttachments(c *gin.Context) {
	id, err := parseAssistanceID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listAttachUC.Execute(c.Request.Context(), usecases.ListAttachmentsQuery{AssistanceID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func parseAssistanceID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("identificador de assistência inválido")
	}
	return uint(id), nil
}

func decodeBase64Photo(raw string) ([]byte, error) {
	if idx := strings.Index(raw, ";base64,"); idx >= 0 {
		raw = raw[idx+len(";base64,"):]
	}
	return base64.StdEncoding.DecodeString(raw)
}
