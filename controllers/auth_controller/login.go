package auth_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jupabego97/reportes-react-sub000/config"
	"github.com/jupabego97/reportes-react-sub000/models"
	"github.com/jupabego97/reportes-react-sub000/services"
	"github.com/jupabego97/reportes-react-sub000/utils"
)

// Login godoc
// @Summary Log in to the dashboard
// @Description Verifies credentials, sets the auth cookie and returns the session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.ApiResponse{data=models.LoginResponse}
// @Failure 400 {object} models.ApiResponse "Invalid request body"
// @Failure 401 {object} models.ApiResponse "Invalid credentials"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	resp, err := services.GetAuthService().Login(ctx, req.Email, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		log.Printf("[auth.login] rejected login for %s", req.Email)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}
	if err != nil {
		log.Printf("[auth.login] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	// cookie mirrors the token so browser sessions survive reloads
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("auth_token", resp.Token, 24*60*60, "/", "", false, true)

	if err := utils.LogLoginEvent(c, resp.User.ID); err != nil {
		log.Printf("[auth.login] failed to record login event: %v", err)
	}

	log.Printf("[auth.login] success for %s", resp.User.Email)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged in successfully", resp))
}
