package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"gamecatalog/backend/internal/catalog"
	"gamecatalog/backend/internal/hub"
	"gamecatalog/backend/internal/models"
	"gamecatalog/backend/internal/preferences"
	"gamecatalog/backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// StudioStore is the studio half of the record access layer.
type StudioStore interface {
	List(ctx context.Context) ([]models.Studio, error)
	GetByID(ctx context.Context, id uint) (models.Studio, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, f repository.StudioFields) (models.Studio, error)
	Update(ctx context.Context, id uint, f repository.StudioFields) error
	Delete(ctx context.Context, id uint) error
}

// GameStore is the game half of the record access layer.
type GameStore interface {
	List(ctx context.Context) ([]models.Game, error)
	ListByStudio(ctx context.Context, studioID uint) ([]models.Game, error)
	GetByID(ctx context.Context, id uint) (models.Game, error)
	Create(ctx context.Context, f repository.GameFields) (models.Game, error)
	Update(ctx context.Context, id uint, f repository.GameFields) error
	Delete(ctx context.Context, id uint) error
}

// Deps are the collaborators a Handler needs.
type Deps struct {
	Studios           StudioStore
	Games             GameStore
	Preferences       *preferences.Store
	Hub               *hub.Hub
	Policy            catalog.Policy
	Logger            zerolog.Logger
	JWTSecret         string
	AdminPasswordHash string
}

// Handler serves the catalog API.
type Handler struct {
	studios           StudioStore
	games             GameStore
	preferences       *preferences.Store
	hub               *hub.Hub
	policy            catalog.Policy
	log               zerolog.Logger
	jwtSecret         string
	adminPasswordHash string
}

func New(d Deps) *Handler {
	if d.Hub == nil {
		d.Hub = hub.New()
	}
	return &Handler{
		studios:           d.Studios,
		games:             d.Games,
		preferences:       d.Preferences,
		hub:               d.Hub,
		policy:            d.Policy,
		log:               d.Logger,
		jwtSecret:         d.JWTSecret,
		adminPasswordHash: d.AdminPasswordHash,
	}
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// FlexibleString accepts either a JSON string or a JSON number, so clients
// can post exactly what the user typed into a numeric field.
type FlexibleString string

func (f *FlexibleString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexibleString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number: %w", err)
	}
	*f = FlexibleString(n.String())
	return nil
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return 0, false
	}
	return uint(id), true
}

// internalError logs err and answers with a generic message.
func (h *Handler) internalError(c *gin.Context, msg string, err error) {
	h.log.Error().Err(err).Str("component", "handler").Str("path", c.FullPath()).Msg(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

func (h *Handler) broadcast(types ...string) {
	for _, t := range types {
		h.hub.Broadcast(hub.Event{Type: t})
	}
}
