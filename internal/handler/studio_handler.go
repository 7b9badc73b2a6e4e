package handler

import (
	"errors"
	"net/http"

	"gamecatalog/backend/internal/catalog"
	"gamecatalog/backend/internal/hub"
	"gamecatalog/backend/internal/models"
	"gamecatalog/backend/internal/repository"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

type StudioInput struct {
	Name        string         `json:"name" example:"Nova"`
	Description string         `json:"description" example:"Small indie team"`
	Rating      FlexibleString `json:"rating" swaggertype:"string" example:"4,9"`
}

type StudioResponse struct {
	ID          uint    `json:"id" example:"1"`
	Name        string  `json:"name" example:"Nova"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating" example:"4.9"`
}

func newStudioResponse(studio models.Studio) StudioResponse {
	return StudioResponse{
		ID:          studio.ID,
		Name:        studio.Name,
		Description: studio.Description,
		Rating:      studio.Rating,
	}
}

func (in StudioInput) draft() catalog.StudioDraft {
	return catalog.StudioDraft{
		Name:        in.Name,
		Description: in.Description,
		Rating:      string(in.Rating),
	}
}

// endregion

// GetStudios godoc
// @Summary      List studios
// @Description  Returns every studio ordered by name.
// @Tags         studios
// @Produce      json
// @Success      200  {array}   StudioResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /studios [get]
func (h *Handler) GetStudios(c *gin.Context) {
	studios, err := h.studios.List(c.Request.Context())
	if err != nil {
		h.internalError(c, "Failed to retrieve studios", err)
		return
	}

	response := make([]StudioResponse, 0, len(studios))
	for _, studio := range studios {
		response = append(response, newStudioResponse(studio))
	}
	c.JSON(http.StatusOK, response)
}

// GetStudioByID godoc
// @Summary      Get a studio
// @Tags         studios
// @Produce      json
// @Param        id   path      int  true  "Studio ID"
// @Success      200  {object}  StudioResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Studio not found"
// @Router       /studios/{id} [get]
func (h *Handler) GetStudioByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	studio, err := h.studios.GetByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Studio not found"})
		return
	}
	if err != nil {
		h.internalError(c, "Failed to retrieve studio", err)
		return
	}

	c.JSON(http.StatusOK, newStudioResponse(studio))
}

// GetStudioGames godoc
// @Summary      List a studio's games
// @Description  Returns the games of one studio ordered by title.
// @Tags         studios
// @Produce      json
// @Param        id   path      int  true  "Studio ID"
// @Success      200  {array}   GameResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Studio not found"
// @Router       /studios/{id}/games [get]
func (h *Handler) GetStudioGames(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	studio, err := h.studios.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Studio not found"})
		return
	}
	if err != nil {
		h.internalError(c, "Failed to retrieve studio", err)
		return
	}

	games, err := h.games.ListByStudio(ctx, id)
	if err != nil {
		h.internalError(c, "Failed to retrieve games", err)
		return
	}

	names := map[uint]string{studio.ID: studio.Name}
	response := make([]GameResponse, 0, len(games))
	for _, game := range games {
		response = append(response, newGameResponse(game, names))
	}
	c.JSON(http.StatusOK, response)
}

// CreateStudio godoc
// @Summary      Create a studio
// @Description  Rating accepts a comma or a period as decimal separator; it is clamped to [0, 5] and rounded to two decimals.
// @Tags         studios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body      StudioInput true "Studio Info"
// @Success      201   {object}  StudioResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Router       /studios [post]
func (h *Handler) CreateStudio(c *gin.Context) {
	var input StudioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields, err := h.policy.Studio(input.draft())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	studio, err := h.studios.Create(c.Request.Context(), fields)
	if err != nil {
		h.internalError(c, "Failed to create studio", err)
		return
	}

	h.broadcast(hub.EventStudiosChanged)
	c.JSON(http.StatusCreated, newStudioResponse(studio))
}

// UpdateStudio godoc
// @Summary      Update a studio
// @Description  Overwrites every field. Updating an unknown id succeeds without changing anything.
// @Tags         studios
// @Accept       json
// @Security     BearerAuth
// @Param        id    path      int         true  "Studio ID"
// @Param        input body      StudioInput true  "New Studio Info"
// @Success      204
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Router       /studios/{id} [put]
func (h *Handler) UpdateStudio(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input StudioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields, err := h.policy.Studio(input.draft())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.studios.Update(c.Request.Context(), id, fields); err != nil {
		h.internalError(c, "Failed to update studio", err)
		return
	}

	h.broadcast(hub.EventStudiosChanged)
	c.Status(http.StatusNoContent)
}

// DeleteStudio godoc
// @Summary      Delete a studio
// @Description  Deletes the studio and every game it developed.
// @Tags         studios
// @Security     BearerAuth
// @Param        id path int true "Studio ID"
// @Success      204
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Router       /studios/{id} [delete]
func (h *Handler) DeleteStudio(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.studios.Delete(c.Request.Context(), id); err != nil {
		h.internalError(c, "Failed to delete studio", err)
		return
	}

	h.broadcast(hub.EventStudiosChanged, hub.EventGamesChanged)
	c.Status(http.StatusNoContent)
}
