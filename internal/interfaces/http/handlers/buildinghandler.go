package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"zelo/internal/application/building/usecases"
	"zelo/internal/shared/errors"
	"zelo/internal/shared/logger"
	"zelo/internal/shared/utils"
)

type CreateBuildingRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Address  string `json:"address" validate:"required,max=500"`
	Postcode string `json:"postcode" validate:"max=20"`
	City     string `json:"city" validate:"max=100"`
}

type UpdateBuildingRequest struct {
	Name     string `json:"name" validate:"omitempty,max=200"`
	Address  string `json:"address" validate:"omitempty,max=500"`
	Postcode string `json:"postcode" validate:"omitempty,max=20"`
	City     string `json:"city" validate:"omitempty,max=100"`
	Active   *bool  `json:"active"`
}

type BuildingHandler struct {
	createUC *usecases.CreateBuildingUseCase
	updateUC *usecases.UpdateBuildingUseCase
	listUC   *usecases.ListBuildingsUseCase
	getUC    *usecases.GetBuildingUseCase
	logger   logger.Interface
}

func NewBuildingHandler(
	createUC *usecases.CreateBuildingUseCase,
	updateUC *usecases.UpdateBuildingUseCase,
	listUC *usecases.ListBuildingsUseCase,
	getUC *usecases.GetBuildingUseCase,
	logger logger.Interface,
) *BuildingHandler {
	return &BuildingHandler{
		createUC: createUC,
		updateUC: updateUC,
		listUC:   listUC,
		getUC:    getUC,
		logger:   logger,
	}
}

// Create handles POST /buildings
func (h *BuildingHandler) Create(c *gin.Context) {
	var req CreateBuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create building", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("pedido inválido"))
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateBuildingCommand{
		Name:     req.Name,
		Address:  req.Address,
		Postcode: req.Postcode,
		City:     req.City,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Edifício criado com sucesso")
}

// Update handles PUT /buildings/:id
func (h *BuildingHandler) Update(c *gin.Context) {
	id, err := parseBuildingID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateBuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("pedido inválido"))
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateBuildingCommand{
		BuildingID: id,
		Name:       req.Name,
		Address:    req.Address,
		Postcode:   req.Postcode,
		City:       req.City,
		Active:     req.Active,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Edifício atualizado", result)
}

// List handles GET /buildings
func (h *BuildingHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)
	query := usecases.ListBuildingsQuery{
		ActiveOnly: c.Query("active_only") == "true",
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Buildings, result.Total, result.Page, result.PageSize)
}

// Get handles GET /buildings/:id
func (h *BuildingHandler) Get(c *gin.Context) {
	id, err := parseBuildingID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetBuildingQuery{BuildingID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func parseBuildingID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("identificador de edifício inválido")
	}
	return uint(id), nil
}
