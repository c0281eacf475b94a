package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"giftcard-backend/internal/domains/admin/service"
	"giftcard-backend/internal/shared/response"
)

type AdminHandler struct {
	service service.ServiceInterface
}

func NewAdminHandler(service service.ServiceInterface) *AdminHandler {
	return &AdminHandler{service: service}
}

// Summary handles GET /api/admin/summary
func (h *AdminHandler) Summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("admin summary failed")
		response.InternalServerError(c, err)
		return
	}

	response.Success(c, http.StatusOK, summary)
}
