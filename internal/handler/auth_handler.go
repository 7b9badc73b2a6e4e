package handler

import (
	"net/http"

	"gamecatalog/backend/internal/auth"
	"gamecatalog/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// LoginInput defines the structure for admin login.
type LoginInput struct {
	Password string `json:"password" binding:"required" example:"password123"`
}

// LoginUser godoc
// @Summary      Log in as the catalog admin
// @Description  Exchanges the admin password for a bearer token valid for seven days.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Credentials"
// @Success      200  {object}  map[string]string "{"token": "..."}"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Authentication is disabled"
// @Router       /auth/login [post]
func (h *Handler) LoginUser(c *gin.Context) {
	if h.adminPasswordHash == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Authentication is disabled"})
		return
	}

	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.adminPasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := jwt.GenerateToken(h.jwtSecret, auth.AdminSubject)
	if err != nil {
		h.internalError(c, "Failed to generate token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
