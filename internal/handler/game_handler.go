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

type GameInput struct {
	Title       string         `json:"title" example:"Orbit"`
	Genre       string         `json:"genre" example:"Puzzle"`
	ReleaseYear FlexibleString `json:"release_year" swaggertype:"string" example:"2023"`
	Rating      FlexibleString `json:"rating" swaggertype:"string" example:"4.5"`
	StudioID    uint           `json:"studio_id" example:"1"`
}

type GameResponse struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Genre       string  `json:"genre"`
	ReleaseYear int     `json:"release_year"`
	Rating      float64 `json:"rating"`
	StudioID    uint    `json:"studio_id"`
	StudioName  string  `json:"studio_name,omitempty"`
}

// newGameResponse resolves the studio name from studioNames; games whose
// studio is not in the map get no name.
func newGameResponse(game models.Game, studioNames map[uint]string) GameResponse {
	return GameResponse{
		ID:          game.ID,
		Title:       game.Title,
		Genre:       game.Genre,
		ReleaseYear: game.ReleaseYear,
		Rating:      game.Rating,
		StudioID:    game.StudioID,
		StudioName:  studioNames[game.StudioID],
	}
}

func (in GameInput) draft() catalog.GameDraft {
	return catalog.GameDraft{
		Title:       in.Title,
		Genre:       in.Genre,
		ReleaseYear: string(in.ReleaseYear),
		Rating:      string(in.Rating),
		StudioID:    in.StudioID,
	}
}

// endregion

// GetGames godoc
// @Summary      List games
// @Description  Returns every game ordered by title, with the name of its studio.
// @Tags         games
// @Produce      json
// @Success      200 {array}  GameResponse
// @Failure      500 {object} ErrorResponse
// @Router       /games [get]
func (h *Handler) GetGames(c *gin.Context) {
	ctx := c.Request.Context()

	games, err := h.games.List(ctx)
	if err != nil {
		h.internalError(c, "Failed to retrieve games", err)
		return
	}
	studios, err := h.studios.List(ctx)
	if err != nil {
		h.internalError(c, "Failed to retrieve studios", err)
		return
	}

	names := make(map[uint]string, len(studios))
	for _, studio := range studios {
		names[studio.ID] = studio.Name
	}

	response := make([]GameResponse, 0, len(games))
	for _, game := range games {
		response = append(response, newGameResponse(game, names))
	}
	c.JSON(http.StatusOK, response)
}

// GetGameByID godoc
// @Summary      Get a single game by ID
// @Tags         games
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200 {object} GameResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [get]
func (h *Handler) GetGameByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	game, err := h.games.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}
	if err != nil {
		h.internalError(c, "Failed to retrieve game", err)
		return
	}

	names := map[uint]string{}
	studio, err := h.studios.GetByID(ctx, game.StudioID)
	switch {
	case err == nil:
		names[studio.ID] = studio.Name
	case !errors.Is(err, repository.ErrNotFound):
		h.internalError(c, "Failed to retrieve studio", err)
		return
	}

	c.JSON(http.StatusOK, newGameResponse(game, names))
}

// CreateGame godoc
// @Summary      Create a new game
// @Description  Requires a title and an existing studio. An unparseable release year falls back to the default year.
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body GameInput true "Game Info"
// @Success      201  {object}  GameResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /games [post]
func (h *Handler) CreateGame(c *gin.Context) {
	fields, ok := h.bindGame(c)
	if !ok {
		return
	}

	game, err := h.games.Create(c.Request.Context(), fields)
	if err != nil {
		h.internalError(c, "Failed to create game", err)
		return
	}

	h.broadcast(hub.EventGamesChanged)
	c.JSON(http.StatusCreated, newGameResponse(game, nil))
}

// UpdateGame godoc
// @Summary      Update a game
// @Description  Overwrites every field. Updating an unknown id succeeds without changing anything.
// @Tags         games
// @Accept       json
// @Security     BearerAuth
// @Param        id    path      int       true  "Game ID"
// @Param        input body      GameInput true  "New Game Info"
// @Success      204
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Router       /games/{id} [put]
func (h *Handler) UpdateGame(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	fields, ok := h.bindGame(c)
	if !ok {
		return
	}

	if err := h.games.Update(c.Request.Context(), id, fields); err != nil {
		h.internalError(c, "Failed to update game", err)
		return
	}

	h.broadcast(hub.EventGamesChanged)
	c.Status(http.StatusNoContent)
}

// DeleteGame godoc
// @Summary      Delete a game
// @Tags         games
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      204
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Router       /games/{id} [delete]
func (h *Handler) DeleteGame(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.games.Delete(c.Request.Context(), id); err != nil {
		h.internalError(c, "Failed to delete game", err)
		return
	}

	h.broadcast(hub.EventGamesChanged)
	c.Status(http.StatusNoContent)
}

// bindGame decodes and normalizes a game body and checks that the selected
// studio exists. It writes the error response itself.
func (h *Handler) bindGame(c *gin.Context) (repository.GameFields, bool) {
	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return repository.GameFields{}, false
	}

	fields, err := h.policy.Game(input.draft())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return repository.GameFields{}, false
	}

	exists, err := h.studios.Exists(c.Request.Context(), fields.StudioID)
	if err != nil {
		h.internalError(c, "Failed to check studio", err)
		return repository.GameFields{}, false
	}
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Selected studio does not exist"})
		return repository.GameFields{}, false
	}

	return fields, true
}
