package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"zelo/internal/application/supplier/usecases"
	"zelo/internal/shared/errors"
	"zelo/internal/shared/logger"
	"zelo/internal/shared/utils"
)

type CreateSupplierRequest struct {
	Name      string `json:"name" validate:"required,max=200"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"max=50"`
	Specialty string `json:"specialty" validate:"max=100"`
}

type UpdateSupplierRequest struct {
	Name   string `json:"name" validate:"max=200"`
	Email  string `json:"email" validate:"omitempty,email"`
	Phone  string `json:"phone" validate:"max=50"`
	Active *bool  `json:"active"`
}

type SupplierHandler struct {
	createUC *usecases.CreateSupplierUseCase
	updateUC *usecases.UpdateSupplierUseCase
	listUC   *usecases.ListSuppliersUseCase
	getUC    *usecases.GetSupplierUseCase
	logger   logger.Interface
}

func NewSupplierHandler(
	createUC *usecases.CreateSupplierUseCase,
	updateUC *usecases.UpdateSupplierUseCase,
	listUC *usecases.ListSuppliersUseCase,
	getUC *usecases.GetSupplierUseCase,
	logger logger.Interface,
) *SupplierHandler {
	return &SupplierHandler{
		createUC: createUC,
		updateUC: updateUC,
		listUC:   listUC,
		getUC:    getUC,
		logger:   logger,
	}
}

// Create handles POST /suppliers
func (h *SupplierHandler) Create(c *gin.Context) {
	var req CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create supplier", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("pedido inválido"))
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateSupplierCommand{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Specialty: req.Specialty,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Fornecedor criado com sucesso")
}

// Update handles PUT /suppliers/:id
func (h *SupplierHandler) Update(c *gin.Context) {
	id, err := parseSupplierID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("pedido inválido"))
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateSupplierCommand{
		SupplierID: id,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Active:     req.Active,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Fornecedor atualizado", result)
}

// List handles GET /suppliers
func (h *SupplierHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)
	query := usecases.ListSuppliersQuery{
		ActiveOnly: c.Query("active_only") == "true",
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Suppliers, result.Total, result.Page, result.PageSize)
}

// Get handles GET /suppliers/:id
func (h *SupplierHandler) Get(c *gin.Context) {
	id, err := parseSupplierID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetSupplierQuery{SupplierID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func parseSupplierID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("identificador de fornecedor inválido")
	}
	return uint(id), nil
}
