package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"giftcard-backend/internal/domains/giftcard/model"
	"giftcard-backend/internal/domains/giftcard/service"
	"giftcard-backend/internal/infrastructure/database"
	"giftcard-backend/internal/shared/response"
	"giftcard-backend/internal/shared/utils"
)

type GiftcardHandler struct {
	service service.ServiceInterface
}

func NewGiftcardHandler(service service.ServiceInterface) *GiftcardHandler {
	return &GiftcardHandler{
		service: service,
	}
}

// ListBrands handles GET /api/brands
func (h *GiftcardHandler) ListBrands(c *gin.Context) {
	brands, err := h.service.ListActiveBrands(c.Request.Context())
	if err != nil {
		mapGiftcardError(c, err)
		return
	}

	response.List(c, brands)
}

// CreateGiftcard handles POST /api/admin/brands
func (h *GiftcardHandler) CreateGiftcard(c *gin.Context) {
	var req model.CreateGiftcardRequest
	if err := utils.BindJSON(c, &req); err != nil {
		response.InvalidRequest(c, err)
		return
	}

	result, err := h.service.CreateGiftcard(c.Request.Context(), &req)
	if err != nil {
		mapGiftcardError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// ListGiftcards handles GET /api/admin/brands
func (h *GiftcardHandler) ListGiftcards(c *gin.Context) {
	var req model.AdminListGiftcardsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.InvalidQuery(c, err)
		return
	}

	cards, err := h.service.ListGiftcards(c.Request.Context(), &req)
	if err != nil {
		mapGiftcardError(c, err)
		return
	}

	response.List(c, cards)
}

// UpdateGiftcard handles PATCH /api/admin/brands/:id
func (h *GiftcardHandler) UpdateGiftcard(c *gin.Context) {
	id := c.Param("id")
	if !database.IsValidID(id) {
		mapGiftcardError(c, model.NewInvalidIDError(id))
		return
	}

	var req model.UpdateGiftcardRequest
	if err := utils.BindJSON(c, &req); err != nil {
		response.InvalidRequest(c, err)
		return
	}

	updated, err := h.service.UpdateGiftcard(c.Request.Context(), id, &req)
	if err != nil {
		mapGiftcardError(c, err)
		return
	}

	response.Success(c, http.StatusOK, response.Updated{Updated: updated})
}

func mapGiftcardError(c *gin.Context, err error) {
	var cardErr *model.GiftcardError

	switch {
	case response.IsValidation(err):
		response.ValidationFailed(c, err)
	case errors.As(err, &cardErr) && cardErr.Code == model.ErrCodeInvalidID:
		response.BadRequest(c, response.CodeInvalidID, cardErr.Message)
	default:
		response.InternalServerError(c, err)
	}
}
