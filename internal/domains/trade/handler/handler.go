package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"giftcard-backend/internal/domains/trade/model"
	"giftcard-backend/internal/domains/trade/service"
	"giftcard-backend/internal/infrastructure/database"
	"giftcard-backend/internal/shared/response"
	"giftcard-backend/internal/shared/utils"
)

type TradeHandler struct {
	service service.ServiceInterface
}

func NewTradeHandler(service service.ServiceInterface) *TradeHandler {
	return &TradeHandler{
		service: service,
	}
}

// CreateTrade handles POST /api/trades
func (h *TradeHandler) CreateTrade(c *gin.Context) {
	var req model.CreateTradeRequest
	if err := utils.BindJSON(c, &req); err != nil {
		response.InvalidRequest(c, err)
		return
	}

	result, err := h.service.CreateTrade(c.Request.Context(), &req)
	if err != nil {
		mapTradeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// ListTrades handles GET /api/trades
func (h *TradeHandler) ListTrades(c *gin.Context) {
	var req model.ListTradesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.InvalidQuery(c, err)
		return
	}

	trades, err := h.service.ListTrades(c.Request.Context(), &req)
	if err != nil {
		mapTradeError(c, err)
		return
	}

	response.List(c, trades)
}

// AdminListTrades handles GET /api/admin/trades
func (h *TradeHandler) AdminListTrades(c *gin.Context) {
	var req model.AdminListTradesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.InvalidQuery(c, err)
		return
	}

	trades, err := h.service.AdminListTrades(c.Request.Context(), &req)
	if err != nil {
		mapTradeError(c, err)
		return
	}

	response.List(c, trades)
}

// UpdateTrade handles PATCH /api/admin/trades/:id
func (h *TradeHandler) UpdateTrade(c *gin.Context) {
	id := c.Param("id")
	if !database.IsValidID(id) {
		mapTradeError(c, model.NewInvalidIDError(id))
		return
	}

	var req model.UpdateTradeRequest
	if err := utils.BindJSON(c, &req); err != nil {
		response.InvalidRequest(c, err)
		return
	}

	updated, err := h.service.UpdateTrade(c.Request.Context(), id, &req)
	if err != nil {
		mapTradeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, response.Updated{Updated: updated})
}

func mapTradeError(c *gin.Context, err error) {
	var tradeErr *model.TradeError

	switch {
	case response.IsValidation(err):
		response.ValidationFailed(c, err)
	case errors.As(err, &tradeErr) && tradeErr.Code == model.ErrCodeInvalidID:
		response.BadRequest(c, response.CodeInvalidID, tradeErr.Message)
	default:
		response.InternalServerError(c, err)
	}
}
