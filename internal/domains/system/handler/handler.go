package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"giftcard-backend/internal/shared/response"
	"giftcard-backend/pkg/cache"
)

const (
	maxCollections  = 20
	maxErrorRunes   = 80
	diagnosticsWait = 5 * time.Second
)

// Diagnostics is the read-only view of the database used by GET /test.
type Diagnostics interface {
	Initialized() bool
	Name() string
	ListCollectionNames(ctx context.Context) ([]string, error)
}

// Pinger reports cache reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// DiagnosticsResponse is the body of GET /test.
type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
	Cache            string   `json:"cache"`
}

type SystemHandler struct {
	db          Diagnostics
	cache       Pinger
	databaseURL bool
	schemas     map[string]string
}

// NewSystemHandler builds the handler. db may be nil when no database layer exists.
func NewSystemHandler(db Diagnostics, c Pinger, databaseURLSet bool, schemas map[string]string) *SystemHandler {
	return &SystemHandler{
		db:          db,
		cache:       c,
		databaseURL: databaseURLSet,
		schemas:     schemas,
	}
}

// Root handles GET /
func (h *SystemHandler) Root(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"message": "Gift Card Trading API is live"})
}

// Schema handles GET /schema
func (h *SystemHandler) Schema(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"schemas": h.schemas})
}

// Test handles GET /test. It always answers 200; failures become status text.
func (h *SystemHandler) Test(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), diagnosticsWait)
	defer cancel()

	response.Success(c, http.StatusOK, h.diagnose(ctx))
}

func (h *SystemHandler) diagnose(ctx context.Context) (resp DiagnosticsResponse) {
	resp = DiagnosticsResponse{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
		Cache:            h.cacheStatus(ctx),
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("diagnostics panicked")
			resp.Database = "❌ Error: " + truncate(fmt.Sprint(r))
		}
	}()

	if h.db == nil {
		return resp
	}
	if !h.db.Initialized() {
		resp.Database = "⚠️ Available but not initialized"
		return resp
	}

	resp.Database = "✅ Available"
	urlStatus := "❌ Not Set"
	if h.databaseURL {
		urlStatus = "✅ Set"
	}
	name := h.db.Name()
	if name == "" {
		name = "Unknown"
	}
	resp.DatabaseURL = &urlStatus
	resp.DatabaseName = &name
	resp.ConnectionStatus = "Connected"

	collections, err := h.db.ListCollectionNames(ctx)
	if err != nil {
		resp.Database = "⚠️ Connected but Error: " + truncate(err.Error())
		return resp
	}
	if len(collections) > maxCollections {
		collections = collections[:maxCollections]
	}
	if collections != nil {
		resp.Collections = collections
	}
	resp.Database = "✅ Connected & Working"
	return resp
}

func (h *SystemHandler) cacheStatus(ctx context.Context) string {
	if h.cache == nil {
		return "➖ Disabled"
	}
	err := h.cache.Ping(ctx)
	switch {
	case err == nil:
		return "✅ Connected"
	case errors.Is(err, cache.ErrDisabled):
		return "➖ Disabled"
	default:
		return "⚠️ Error: " + truncate(err.Error())
	}
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) > maxErrorRunes {
		return string(r[:maxErrorRunes])
	}
	return s
}
