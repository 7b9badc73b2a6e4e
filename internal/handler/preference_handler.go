package handler

import (
	"errors"
	"net/http"

	"gamecatalog/backend/internal/hub"
	"gamecatalog/backend/internal/preferences"

	"github.com/gin-gonic/gin"
)

// PreferencesInput updates only the fields that are present.
type PreferencesInput struct {
	Theme    *string `json:"theme" example:"light"`
	Language *string `json:"language" example:"ru"`
}

// GetPreferences godoc
// @Summary      Get display preferences
// @Tags         preferences
// @Produce      json
// @Success      200 {object} preferences.Preferences
// @Router       /preferences [get]
func (h *Handler) GetPreferences(c *gin.Context) {
	c.JSON(http.StatusOK, h.preferences.Get())
}

// UpdatePreferences godoc
// @Summary      Update display preferences
// @Tags         preferences
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body PreferencesInput true "Preferences"
// @Success      200 {object} preferences.Preferences
// @Failure      400 {object} ErrorResponse
// @Router       /preferences [put]
func (h *Handler) UpdatePreferences(c *gin.Context) {
	var input PreferencesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var changes preferences.Preferences
	if input.Theme != nil {
		changes.Theme = preferences.Theme(*input.Theme)
		if !changes.Theme.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": preferences.ErrInvalidTheme.Error()})
			return
		}
	}
	if input.Language != nil {
		changes.Language = preferences.Language(*input.Language)
		if !changes.Language.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": preferences.ErrInvalidLanguage.Error()})
			return
		}
	}

	current, err := h.preferences.Update(changes)
	if err != nil {
		h.preferenceError(c, err)
		return
	}

	h.hub.Broadcast(hub.Event{Type: hub.EventPreferencesChanged, Payload: current})
	c.JSON(http.StatusOK, current)
}

// ToggleTheme godoc
// @Summary      Switch between light and dark theme
// @Tags         preferences
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} preferences.Preferences
// @Router       /preferences/theme/toggle [post]
func (h *Handler) ToggleTheme(c *gin.Context) {
	current, err := h.preferences.ToggleTheme()
	if err != nil {
		h.preferenceError(c, err)
		return
	}
	h.hub.Broadcast(hub.Event{Type: hub.EventPreferencesChanged, Payload: current})
	c.JSON(http.StatusOK, current)
}

// ToggleLanguage godoc
// @Summary      Switch between English and Russian
// @Tags         preferences
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} preferences.Preferences
// @Router       /preferences/language/toggle [post]
func (h *Handler) ToggleLanguage(c *gin.Context) {
	current, err := h.preferences.ToggleLanguage()
	if err != nil {
		h.preferenceError(c, err)
		return
	}
	h.hub.Broadcast(hub.Event{Type: hub.EventPreferencesChanged, Payload: current})
	c.JSON(http.StatusOK, current)
}

func (h *Handler) preferenceError(c *gin.Context, err error) {
	if errors.Is(err, preferences.ErrInvalidTheme) || errors.Is(err, preferences.ErrInvalidLanguage) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.internalError(c, "Failed to save preferences", err)
}
