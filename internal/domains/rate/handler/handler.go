package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"giftcard-backend/internal/domains/rate/model"
	"giftcard-backend/internal/domains/rate/service"
	"giftcard-backend/internal/infrastructure/database"
	"giftcard-backend/internal/shared/response"
	"giftcard-backend/internal/shared/utils"
)

type RateHandler struct {
	service service.ServiceInterface
}

func NewRateHandler(service service.ServiceInterface) *RateHandler {
	return &RateHandler{
		service: service,
	}
}

// ListActiveRates handles GET /api/rates
func (h *RateHandler) ListActiveRates(c *gin.Context) {
	var req model.ListRatesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.InvalidQuery(c, err)
		return
	}

	rates, err := h.service.ListActiveRates(c.Request.Context(), &req)
	if err != nil {
		mapRateError(c, err)
		return
	}

	response.List(c, rates)
}

// CreateRate handles POST /api/admin/rates
func (h *RateHandler) CreateRate(c *gin.Context) {
	var req model.CreateRateRequest
	if err := utils.BindJSON(c, &req); err != nil {
		response.InvalidRequest(c, err)
		return
	}

	result, err := h.service.CreateRate(c.Request.Context(), &req)
	if err != nil {
		mapRateError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// ListRates handles GET /api/admin/rates
func (h *RateHandler) ListRates(c *gin.Context) {
	var req model.AdminListRatesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.InvalidQuery(c, err)
		return
	}

	rates, err := h.service.ListRates(c.Request.Context(), &req)
	if err != nil {
		mapRateError(c, err)
		return
	}

	response.List(c, rates)
}

// UpdateRate handles PATCH /api/admin/rates/:id
func (h *RateHandler) UpdateRate(c *gin.Context) {
	id := c.Param("id")
	if !database.IsValidID(id) {
		mapRateError(c, model.NewInvalidIDError(id))
		return
	}

	var req model.UpdateRateRequest
	if err := utils.BindJSON(c, &req); err != nil {
		response.InvalidRequest(c, err)
		return
	}

	updated, err := h.service.UpdateRate(c.Request.Context(), id, &req)
	if err != nil {
		mapRateError(c, err)
		return
	}

	response.Success(c, http.StatusOK, response.Updated{Updated: updated})
}

func mapRateError(c *gin.Context, err error) {
	var rateErr *model.RateError

	switch {
	case response.IsValidation(err):
		response.ValidationFailed(c, err)
	case errors.As(err, &rateErr) && rateErr.Code == model.ErrCodeInvalidID:
		response.BadRequest(c, response.CodeInvalidID, rateErr.Message)
	default:
		response.InternalServerError(c, err)
	}
}
